package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"
)

// RunWithGolden runs a vector file and compares the rendered report
// against testdata/golden/<vector name>.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Callers should build the harness with a fixed run-ID generator so the
// report header is stable.
func RunWithGolden(t *testing.T, h *Harness, path string) (*Report, error) {
	t.Helper()

	rep, err := h.RunFile(path)
	if err != nil {
		return nil, err
	}

	g := goldie.New(t, goldie.WithFixtureDir("testdata/golden"))
	g.Assert(t, rep.Vector, []byte(rep.Render()))
	return rep, nil
}
