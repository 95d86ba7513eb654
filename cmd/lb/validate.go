// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/littlebrand/littlebrand/internal/scale"
	"github.com/littlebrand/littlebrand/internal/themes"
	"github.com/rs/zerolog"
)

// parseConfigValue checks theme and log settings before they reach the
// config file and converts booleans.
func parseConfigValue(key, value string) (interface{}, error) {
	key = strings.ToLower(key)

	switch {
	case strings.HasPrefix(key, "theme.colors."):
		if !themes.IsHex(value) {
			return nil, fmt.Errorf("%s must be a #RRGGBB colour, got %q", key, value)
		}
	case key == "theme.background":
		if strings.HasPrefix(value, "#") && !themes.IsHex(value) {
			return nil, fmt.Errorf("theme.background must be a #RRGGBB colour or a role name, got %q", value)
		}
	case key == "theme.curve":
		if _, err := scale.ParseCurve(value); err != nil {
			return nil, err
		}
	case key == "theme.dark", key == "server.tls_enabled":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("%s must be true or false, got %q", key, value)
		}
		return b, nil
	case key == "backup.interval":
		if _, err := time.ParseDuration(value); err != nil {
			return nil, fmt.Errorf("backup.interval must be a duration such as 24h, got %q", value)
		}
	case key == "auth.jwt_expiry_hours", key == "backup.retention", key == "server.rate_limit":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%s must be a non-negative integer, got %q", key, value)
		}
		return n, nil
	case key == "log.level":
		if _, err := zerolog.ParseLevel(value); err != nil {
			return nil, fmt.Errorf("invalid log level %q", value)
		}
	case key == "database.type":
		switch value {
		case "sqlite", "mysql", "mariadb":
		default:
			return nil, fmt.Errorf("unsupported database type: %s", value)
		}
	}

	return value, nil
}
