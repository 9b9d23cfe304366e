package harness

import (
	"fmt"
	"strings"
)

// Report summarizes one vector run.
type Report struct {
	RunID  string       `json:"run_id"`
	Vector string       `json:"vector"`
	Total  int          `json:"total"`
	Passed int          `json:"passed"`
	Failed int          `json:"failed"`
	Cases  []CaseResult `json:"cases"`
}

// CaseResult records one case's evaluation.
type CaseResult struct {
	Index   int     `json:"index"`
	Op      string  `json:"op"`
	Width   string  `json:"width"`
	Variant string  `json:"variant"`
	Passed  bool    `json:"passed"`
	Got     Outcome `json:"got"`
	Want    Outcome `json:"want"`
	Reason  string  `json:"reason,omitempty"`
}

// Ok reports whether every case passed.
func (r *Report) Ok() bool {
	return r.Failed == 0
}

// Render produces the deterministic text form of the report, one line per
// case. Golden snapshots compare against this form byte for byte.
func (r *Report) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "run %s\n", r.RunID)
	fmt.Fprintf(&b, "vector %s\n", r.Vector)
	fmt.Fprintf(&b, "cases %d passed %d failed %d\n", r.Total, r.Passed, r.Failed)
	for _, cr := range r.Cases {
		status := "ok"
		if !cr.Passed {
			status = "FAIL"
		}
		fmt.Fprintf(&b, "  [%02d] %s %s %s %s -> %s", cr.Index, cr.Width, cr.Op, cr.Variant, status, cr.Got.String())
		if !cr.Passed {
			fmt.Fprintf(&b, " (%s)", cr.Reason)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
