// SPDX-License-Identifier: MIT
package scale

// Report is the JSON form of a generated scale.
type Report struct {
	Seed  string         `json:"seed"`
	Mode  string         `json:"mode"`
	Curve string         `json:"curve"`
	Steps map[int]string `json:"steps"`
	Alpha map[int]string `json:"alpha,omitempty"`
}

// NewReport describes s, generated from seed with curve. A nil alpha
// leaves the alpha steps out.
func NewReport(seed string, s Scale, curve Curve, alpha AlphaScale) Report {
	r := Report{
		Seed:  seed,
		Mode:  s.Mode.String(),
		Curve: string(curve),
		Steps: s.Map(),
	}
	if alpha != nil {
		r.Alpha = alpha.Map()
	}
	return r
}
