package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTuningForType(t *testing.T) {
	tests := []struct {
		typeName string
		want     Tuning
	}{
		{"fire", Tuning{DurationMultiplier: 0.9, FadeMultiplier: 1, Ease: EaseOut}},
		{"rock", Tuning{DurationMultiplier: 1, FadeMultiplier: 1, Ease: Ease{Points: [4]float64{0.2, 0.9, 0.25, 1}, Bezier: true}}},
		{"ghost", Tuning{DurationMultiplier: 1, FadeMultiplier: 1.15, Ease: EaseInOut}},
		{"water", DefaultTuning},
		{"", DefaultTuning},
	}

	for _, tt := range tests {
		t.Run(tt.typeName, func(t *testing.T) {
			assert.Equal(t, tt.want, TuningForType(tt.typeName))
		})
	}
}

func TestTuningForTypeIsPure(t *testing.T) {
	first := TuningForType("fire")
	first.DurationMultiplier = 99
	assert.Equal(t, 0.9, TuningForType("fire").DurationMultiplier)
}
