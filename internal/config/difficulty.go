package config

import (
	"fmt"
	"math"
	"strings"
)

// ParseDifficulty resolves a preset name. An empty name means normal.
func ParseDifficulty(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// ScaleIntervals returns a copy of the interval table with every entry
// multiplied by factor and rounded. Entries never drop below 1ms.
// Scaling by a positive factor keeps the table non-increasing.
func ScaleIntervals(intervals []int, factor float64) []int {
	out := make([]int, len(intervals))
	for i, ms := range intervals {
		out[i] = max(1, int(math.Round(float64(ms)*factor)))
	}
	return out
}
