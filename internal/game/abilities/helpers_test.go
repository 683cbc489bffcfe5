package abilities_test

import "github.com/cory-johannsen/abilityroll/internal/game/abilities"

// facesFor returns four faces whose drop-lowest score equals score.
// The dropped face is always a 1.
//
// Precondition: 3 <= score <= 18.
func facesFor(score int) []int {
	d1 := min(6, score-2)
	rest := score - d1
	d2 := min(6, rest-1)
	d3 := rest - d2
	return []int{d1, 1, d2, d3}
}

// facesForScores concatenates facesFor over scores.
func facesForScores(scores ...int) []int {
	var faces []int
	for _, s := range scores {
		faces = append(faces, facesFor(s)...)
	}
	return faces
}

func outcome(values ...int) abilities.Outcome {
	var o abilities.Outcome
	copy(o[:], values)
	return o
}
