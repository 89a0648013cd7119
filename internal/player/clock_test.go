package player

import "testing"

func TestPositionSeconds(t *testing.T) {
	tests := []struct {
		name     string
		ratio    float64
		duration float64
		want     float64
	}{
		{"mid position", 0.5, 180, 90},
		{"start", 0, 180, 0},
		{"end", 1, 180, 180},
		{"unknown ratio", -1, 180, 0},
		{"unknown duration", 0.5, 0, 0},
		{"negative duration", 0.5, -3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PositionSeconds(tt.ratio, tt.duration); got != tt.want {
				t.Errorf("PositionSeconds(%v, %v) = %v, want %v",
					tt.ratio, tt.duration, got, tt.want)
			}
		})
	}
}

func TestSeekRatio(t *testing.T) {
	tests := []struct {
		name     string
		seconds  float64
		duration float64
		want     float64
	}{
		{"mid", 90, 180, 0.5},
		{"start", 0, 180, 0},
		{"end", 180, 180, 1},
		{"past end clamped", 300, 180, 1},
		{"before start clamped", -10, 180, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SeekRatio(tt.seconds, tt.duration); got != tt.want {
				t.Errorf("SeekRatio(%v, %v) = %v, want %v",
					tt.seconds, tt.duration, got, tt.want)
			}
		})
	}
}
