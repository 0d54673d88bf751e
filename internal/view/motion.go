package view

// Ease identifies the easing curve for card transitions. When Points is set
// the curve is a cubic bezier; otherwise Name selects a stock curve.
type Ease struct {
	Name   string
	Points [4]float64
	Bezier bool
}

var (
	// EaseOut is the stock deceleration curve.
	EaseOut = Ease{Name: "easeOut"}
	// EaseInOut is the stock symmetric curve.
	EaseInOut = Ease{Name: "easeInOut"}
)

// Tuning is the animation timing profile derived from a primary type.
// Callers may scale DurationMultiplier further (e.g. by search confidence);
// that scaling is deliberately not this resolver's job.
type Tuning struct {
	DurationMultiplier float64
	FadeMultiplier     float64
	Ease               Ease
}

// DefaultTuning is the neutral profile every untuned type receives.
var DefaultTuning = Tuning{DurationMultiplier: 1, FadeMultiplier: 1, Ease: EaseOut}

// TuningForType resolves the timing profile for a primary type. Only fire,
// rock and ghost deviate from the neutral profile.
func TuningForType(typeName string) Tuning {
	switch typeName {
	case "fire":
		t := DefaultTuning
		t.DurationMultiplier = 0.9
		return t
	case "rock":
		t := DefaultTuning
		t.Ease = Ease{Points: [4]float64{0.2, 0.9, 0.25, 1}, Bezier: true}
		return t
	case "ghost":
		t := DefaultTuning
		t.FadeMultiplier = 1.15
		t.Ease = EaseInOut
		return t
	default:
		return DefaultTuning
	}
}
