package main

import "testing"

func TestIgnored(t *testing.T) {
	patterns := []string{"vendor", "testdata"}

	cases := map[string]bool{
		"/repo/skins/Main/skin.xml":       false,
		"/repo/vendor/skin.xml":           true,
		"/repo/skins/Main/testdata/x.xml": true,
	}
	for path, want := range cases {
		if got := ignored(path, patterns); got != want {
			t.Errorf("ignored(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestIgnored_NoPatterns(t *testing.T) {
	if ignored("/repo/anything.xml", nil) {
		t.Error("expected no patterns to never ignore")
	}
}

func TestIgnored_GlobPattern(t *testing.T) {
	patterns := []string{"**/testdata/**"}

	cases := map[string]bool{
		"/repo/skins/Main/skin.xml":              false,
		"/repo/skins/Main/testdata/fixture.xml":  true,
		"/repo/testdata/deep/nested/fixture.xml": true,
	}
	for path, want := range cases {
		if got := ignored(path, patterns); got != want {
			t.Errorf("ignored(%q) = %v, want %v", path, got, want)
		}
	}
}
