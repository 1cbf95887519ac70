// Package config loads the parameters spec.md §9 leaves open as a
// YAML build-settings file, in the style of the teacher's sibling
// navmesh build-settings loader.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yanrabe/isocontour/stitch"
)

// Config holds the tunables the core algorithm does not hardcode.
type Config struct {
	// CandidateRadius is the half-width of the stitching engine's
	// localized neighborhood search (spec.md §4.6's 5×5 window).
	CandidateRadius int `yaml:"candidate_radius"`

	// SpliceTopology selects the splice rewrite policy: "crossed"
	// (reference behavior) or "cheapest" (spec.md §9's open question).
	SpliceTopology string `yaml:"splice_topology"`

	// NaNPolicy selects how NaN grid samples binarize: "positive" or
	// "negative".
	NaNPolicy string `yaml:"nan_policy"`
}

// Default returns the reference configuration: radius 2, the
// always-crossed splice topology, and NaN treated as positive.
func Default() Config {
	return Config{
		CandidateRadius: 2,
		SpliceTopology:  "crossed",
		NaNPolicy:       "positive",
	}
}

// Load reads path as YAML and returns the parsed Config. Fields absent
// from the file keep Default's values.
func Load(path string) (Config, error) {
	cfg := Default()

	buf, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path as YAML, prefilled with Default's values if
// the caller passed a zero Config.
func Save(path string, cfg Config) error {
	if cfg == (Config{}) {
		cfg = Default()
	}
	buf, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: encoding: %w", err)
	}
	return os.WriteFile(path, buf, 0o644)
}

// StitchOptions translates cfg into a stitch.Options value.
func (cfg Config) StitchOptions() stitch.Options {
	topo := stitch.TopologyCrossed
	if cfg.SpliceTopology == "cheapest" {
		topo = stitch.TopologyCheapest
	}
	return stitch.Options{CandidateRadius: cfg.CandidateRadius, Topology: topo}
}

// NaNTreatedAsPositive reports whether cfg's NaN policy treats NaN
// grid samples as positive: any NaNPolicy other than "negative" does
// (spec.md §4.3).
func (cfg Config) NaNTreatedAsPositive() bool {
	return cfg.NaNPolicy != "negative"
}
