package flake

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidTuning is returned by Tuning.Validate.
var ErrInvalidTuning = errors.New("flake: invalid tuning")

// Tuning holds every numeric constant of the generator, the stroke mapping
// and the relief. The shipped values are DefaultTuning; a YAML file can
// override any subset of them.
type Tuning struct {
	Skeleton SkeletonTuning `yaml:"skeleton"`
	Stroke   StrokeTuning   `yaml:"stroke"`
	Refine   RefineTuning   `yaml:"refine"`
	Relief   ReliefTuning   `yaml:"relief"`

	// Mirror generates the wedge's upper half only and reflects it across the
	// X axis before the six-fold rotation.
	Mirror bool `yaml:"mirror"`
}

// SkeletonTuning controls the wedge generator.
type SkeletonTuning struct {
	SpineLength    float64 `yaml:"spine_length"`
	ExtraNodes     int     `yaml:"extra_nodes"`
	StepJitter     float64 `yaml:"step_jitter"`
	Rails          bool    `yaml:"rails"`
	RailOffset     float64 `yaml:"rail_offset"`
	HeadExclusion  float64 `yaml:"head_exclusion"`
	TailExclusion  float64 `yaml:"tail_exclusion"`
	BranchBase     float64 `yaml:"branch_base"`
	BranchPerLevel float64 `yaml:"branch_per_level"`
	BranchAngleIn  float64 `yaml:"branch_angle_in"`
	BranchAngleOut float64 `yaml:"branch_angle_out"`
	AngleJitter    float64 `yaml:"angle_jitter"`
	BranchScale    float64 `yaml:"branch_scale"`
	BranchFalloff  float64 `yaml:"branch_falloff"`
	ThicknessGain  float64 `yaml:"thickness_gain"`
	TwigChance     float64 `yaml:"twig_chance"`
	TwigScale      float64 `yaml:"twig_scale"`
	TwigAngle      float64 `yaml:"twig_angle"`
	PlateChance    float64 `yaml:"plate_chance"`
	PlateScale     float64 `yaml:"plate_scale"`
	TipLength      float64 `yaml:"tip_length"`
	TipBevel       float64 `yaml:"tip_bevel"`
	MinFeature     float64 `yaml:"min_feature"`
}

// StrokeTuning maps thickness onto a physical stroke radius.
type StrokeTuning struct {
	MinMM float64 `yaml:"min_mm"`
	MaxMM float64 `yaml:"max_mm"`
}

// RefineTuning controls outline smoothing and simplification.
type RefineTuning struct {
	Iterations   int     `yaml:"iterations"`
	CutRatio     float64 `yaml:"cut_ratio"`
	MinEdgeCells float64 `yaml:"min_edge_cells"`
	Collinear    float64 `yaml:"collinear"`
}

// ReliefTuning controls the depth variation applied after extrusion.
type ReliefTuning struct {
	// Threshold selects the vertices that receive relief: those with
	// |z| > Threshold*halfDepth. Extrude emits only the two cap rings, which
	// sit at exactly +-halfDepth, so any value below 1 relieves every vertex
	// and 1 or more turns relief off.
	Threshold    float64 `yaml:"threshold"`
	SpineDepth   float64 `yaml:"spine_depth"`
	TwigDepth    float64 `yaml:"twig_depth"`
	JitterAmount float64 `yaml:"jitter_amount"`
	Falloff      float64 `yaml:"falloff"`
	MinHalfDepth float64 `yaml:"min_half_depth"`
}

// DefaultTuning returns the shipped constants. Angles are in degrees.
func DefaultTuning() Tuning {
	return Tuning{
		Skeleton: SkeletonTuning{
			SpineLength:    10,
			ExtraNodes:     4,
			StepJitter:     0.15,
			Rails:          true,
			RailOffset:     0.12,
			HeadExclusion:  0.28,
			TailExclusion:  0.03,
			BranchBase:     0.35,
			BranchPerLevel: 0.05,
			BranchAngleIn:  62,
			BranchAngleOut: 48,
			AngleJitter:    6,
			BranchScale:    0.55,
			BranchFalloff:  0.7,
			ThicknessGain:  0.25,
			TwigChance:     0.45,
			TwigScale:      0.4,
			TwigAngle:      35,
			PlateChance:    0.35,
			PlateScale:     0.22,
			TipLength:      0.45,
			TipBevel:       38,
			MinFeature:     0.06,
		},
		Stroke: StrokeTuning{
			MinMM: 0.9,
			MaxMM: 3.2,
		},
		Refine: RefineTuning{
			Iterations:   2,
			CutRatio:     0.14,
			MinEdgeCells: 0.25,
			Collinear:    0.01,
		},
		Relief: ReliefTuning{
			Threshold:    0.5,
			SpineDepth:   1.25,
			TwigDepth:    0.7,
			JitterAmount: 0.12,
			Falloff:      1.5,
			MinHalfDepth: 0.35,
		},
	}
}

// ParseTuning decodes YAML over DefaultTuning, so absent keys keep their
// default values, and validates the result.
func ParseTuning(data []byte) (Tuning, error) {
	t := DefaultTuning()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return t, err
	}
	return t, nil
}

// LoadTuning reads and parses a YAML tuning file.
func LoadTuning(path string) (Tuning, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return DefaultTuning(), fmt.Errorf("tuning: %w", err)
	}
	return ParseTuning(raw)
}

// Validate reports values that would make the pipeline degenerate.
func (t Tuning) Validate() error {
	s := t.Skeleton
	switch {
	case s.SpineLength <= 0:
		return fmt.Errorf("%w: skeleton.spine_length must be positive", ErrInvalidTuning)
	case s.ExtraNodes < 1:
		return fmt.Errorf("%w: skeleton.extra_nodes must be at least 1", ErrInvalidTuning)
	case s.StepJitter < 0 || s.StepJitter >= 1:
		return fmt.Errorf("%w: skeleton.step_jitter must be in [0,1)", ErrInvalidTuning)
	case s.HeadExclusion < 0 || s.TailExclusion < 0 || s.HeadExclusion+s.TailExclusion >= 1:
		return fmt.Errorf("%w: skeleton exclusion bands must leave part of the spine", ErrInvalidTuning)
	case s.MinFeature <= 0:
		return fmt.Errorf("%w: skeleton.min_feature must be positive", ErrInvalidTuning)
	case t.Stroke.MinMM <= 0 || t.Stroke.MaxMM < t.Stroke.MinMM:
		return fmt.Errorf("%w: stroke range must satisfy 0 < min_mm <= max_mm", ErrInvalidTuning)
	case t.Refine.Iterations < 0 || t.Refine.Iterations > 3:
		return fmt.Errorf("%w: refine.iterations must be in [0,3]", ErrInvalidTuning)
	case t.Refine.CutRatio <= 0 || t.Refine.CutRatio >= 0.5:
		return fmt.Errorf("%w: refine.cut_ratio must be in (0,0.5)", ErrInvalidTuning)
	case t.Relief.Falloff <= 0:
		return fmt.Errorf("%w: relief.falloff must be positive", ErrInvalidTuning)
	case t.Relief.MinHalfDepth <= 0 || t.Relief.MinHalfDepth > 1:
		return fmt.Errorf("%w: relief.min_half_depth must be in (0,1]", ErrInvalidTuning)
	}
	return nil
}
