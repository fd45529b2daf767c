package main

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/dimelords/skinlang/pkg/checker"
	"github.com/dimelords/skinlang/pkg/position"
)

// TestFormatDiagnostic_Golden pins the exact CLI output line shape
// (spec.md §6) against a golden file, run with -update to regenerate.
func TestFormatDiagnostic_Golden(t *testing.T) {
	g := goldie.New(t, goldie.WithFixtureDir("testdata/golden"), goldie.WithNameSuffix(".golden"))

	diags := []checker.Diagnostic{
		{
			Severity: checker.SeverityError,
			Code:     checker.CodeUndefinedReference,
			Range:    position.NewRange(position.New(4, 10), position.New(4, 18)),
			Message:  `undefined style "Missing"`,
		},
		{
			Severity: checker.SeverityWarning,
			Code:     checker.CodeUnknownAttribute,
			Range:    position.NewRange(position.New(9, 2), position.New(9, 9)),
			Message:  `unknown attribute "foo" on <Button>`,
			Related: []checker.RelatedInfo{
				{
					Location: position.Location{URI: "skin.xml", Range: position.NewRange(position.New(1, 0), position.New(1, 5))},
					Message:  "first defined here",
				},
			},
		},
	}

	var out string
	for _, d := range diags {
		out += formatDiagnostic("/repo/skins/Main/skin.xml", d)
	}

	g.Assert(t, "diagnostic_output", []byte(out))
}
