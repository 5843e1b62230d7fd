package labelcolor

import (
	"math"
	"reflect"
	"testing"
)

func TestValidateRGB(t *testing.T) {
	colors := [][3]float64{
		{0, 1, 1},
		{1.1, 0, -0.03},
		{1.2, 1, 0.5},
	}

	tests := []struct {
		name      string
		tolerance float64
		want      [][3]float64
	}{
		{
			name:      "zero tolerance keeps only legal RGB",
			tolerance: 0,
			want:      [][3]float64{{0, 1, 1}},
		},
		{
			name:      "tolerance 0.15 clips the near miss",
			tolerance: 0.15,
			want:      [][3]float64{{0, 1, 1}, {1, 0, 0}},
		},
		{
			name:      "tolerance 0.25 keeps everything",
			tolerance: 0.25,
			want:      [][3]float64{{0, 1, 1}, {1, 0, 0}, {1, 1, 0.5}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateRGB(colors, tt.tolerance)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ValidateRGB(tolerance=%g) = %v, want %v", tt.tolerance, got, tt.want)
			}
		})
	}
}

func TestValidateRGB_PreservesOrder(t *testing.T) {
	colors := [][3]float64{
		{0.9, 0.1, 0.1},
		{2, 2, 2},
		{0.1, 0.9, 0.1},
		{-1, 0, 0},
		{0.1, 0.1, 0.9},
	}
	want := [][3]float64{
		{0.9, 0.1, 0.1},
		{0.1, 0.9, 0.1},
		{0.1, 0.1, 0.9},
	}
	if got := ValidateRGB(colors, 0); !reflect.DeepEqual(got, want) {
		t.Errorf("ValidateRGB() = %v, want %v", got, want)
	}
}

func TestValidateRGB_DropsNaN(t *testing.T) {
	colors := [][3]float64{
		{math.NaN(), 0.5, 0.5},
		{0.5, 0.5, 0.5},
	}
	got := ValidateRGB(colors, 0.5)
	if len(got) != 1 || got[0] != [3]float64{0.5, 0.5, 0.5} {
		t.Errorf("ValidateRGB() = %v, want only the finite triple", got)
	}
}

func TestValidateRGB_Empty(t *testing.T) {
	if got := ValidateRGB(nil, 0); len(got) != 0 {
		t.Errorf("ValidateRGB(nil) = %v, want empty", got)
	}
}
