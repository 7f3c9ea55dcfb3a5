// Package nestcfg loads nesting configuration from YAML files, in the
// style of the recast command's config loading.
package nestcfg

import "fmt"

// Config enumerates every tunable of a nesting run (spec.md §6).
type Config struct {
	// CurveTolerance bounds the boolean engine's collinear/near-duplicate
	// point cleanup distance, in world units: distance = CurveTolerance *
	// ClipperScale.
	CurveTolerance float64 `yaml:"curveTolerance"`

	// Spacing is the gap enforced between parts (and part/bin), applied
	// via B.offset before the GA runs.
	Spacing float64 `yaml:"spacing"`

	// Rotations is the number of discrete rotation angles considered per
	// part: {0, 360/R, ...}.
	Rotations int `yaml:"rotations"`

	// PopulationSize is the GA population size. Must be >= 3.
	PopulationSize int `yaml:"populationSize"`

	// MutationRate is the GA per-position mutation probability, in
	// percent (0.01*MutationRate is the fired probability).
	MutationRate int `yaml:"mutationRate"`

	// UseHoles enables hole-aware inner NFP augmentation (spec.md §4.3).
	UseHoles bool `yaml:"useHoles"`

	// ExploreConcave makes outer (part-vs-part) NFPs use the orbiting search
	// with multiple-contour search instead of the Minkowski-difference fast
	// path. Inner (bin) NFPs are not affected by it.
	ExploreConcave bool `yaml:"exploreConcave"`

	// ClipperScale is the fixed-point scale used to stage floating point
	// coordinates into the integer-coordinate boolean engine.
	ClipperScale int `yaml:"clipperScale"`
}

// Validate checks the invariants spec.md §6 places on the GA parameters.
func (c Config) Validate() error {
	if c.PopulationSize < 3 {
		return fmt.Errorf("populationSize must be >= 3, got %d", c.PopulationSize)
	}
	if c.Rotations < 1 {
		return fmt.Errorf("rotations must be >= 1, got %d", c.Rotations)
	}
	return nil
}

// Default returns the documented default configuration (spec.md §6).
func Default() Config {
	return Config{
		CurveTolerance: 0.3,
		Spacing:        0,
		Rotations:      4,
		PopulationSize: 10,
		MutationRate:   10,
		UseHoles:       false,
		ExploreConcave: false,
		ClipperScale:   1e7,
	}
}
