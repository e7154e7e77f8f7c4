package strategy_test

import (
	"testing"

	"botbase/pkg/usecase/strategy"
)

func TestCrossedUp(t *testing.T) {
	tests := map[string]struct {
		shorts []float64
		longs  []float64
		want   bool
	}{
		"empty": {
			shorts: []float64{},
			longs:  []float64{},
			want:   false,
		},
		"single point": {
			shorts: []float64{100},
			longs:  []float64{100},
			want:   false,
		},
		"crossed up": {
			shorts: []float64{99, 101},
			longs:  []float64{100, 100},
			want:   true,
		},
		"crossed up from equal": {
			shorts: []float64{100, 101},
			longs:  []float64{100, 100},
			want:   true,
		},
		"still below": {
			shorts: []float64{98, 99},
			longs:  []float64{100, 100},
			want:   false,
		},
		"already above": {
			shorts: []float64{101, 102},
			longs:  []float64{100, 100},
			want:   false,
		},
		"crossed down": {
			shorts: []float64{101, 99},
			longs:  []float64{100, 100},
			want:   false,
		},
		"length mismatch": {
			shorts: []float64{99, 101},
			longs:  []float64{100},
			want:   false,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := strategy.CrossedUp(tt.shorts, tt.longs); got != tt.want {
				t.Errorf("CrossedUp() = %v, want %v", got, tt.want)
			}
		})
	}
}
