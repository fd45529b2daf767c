// Package repoconfig decodes a repository's repo.json (spec.md §6) into
// fsutil.RepoConfig.
package repoconfig

import (
	"encoding/json"

	"github.com/dimelords/skinlang/pkg/fsutil"
	"github.com/dimelords/skinlang/pkg/skinerr"
)

type wireConfig struct {
	Skins        []string `json:"skins"`
	ClassModels  []string `json:"classmodels"`
	Translations []string `json:"translations"`
}

// Load reads and decodes repo.json at path through probe, returning a
// normalized fsutil.RepoConfig (empty keys filled with their defaults).
// A missing file is not an error — it decodes to the all-defaults
// config, matching spec.md §6 "missing entries default to ...".
func Load(probe fsutil.Probe, path string) (fsutil.RepoConfig, error) {
	if !probe.Exists(path) {
		return fsutil.DefaultRepoConfig(), nil
	}

	data, err := probe.ReadFile(path)
	if err != nil {
		return fsutil.RepoConfig{}, skinerr.WrapPath("repoconfig", "read", path, err)
	}

	var wire wireConfig
	if err := json.Unmarshal(data, &wire); err != nil {
		return fsutil.RepoConfig{}, skinerr.WrapPath("repoconfig", "parse", path, err)
	}

	cfg := fsutil.RepoConfig{
		Skins:        wire.Skins,
		ClassModels:  wire.ClassModels,
		Translations: wire.Translations,
	}
	return cfg.Normalize(), nil
}
