package tests

import (
	"math/rand"
	"time"
)

type Randomizer struct {
	Float64 func() float64
	Bool    func() bool
	// Price десятичный коэффициент в [1.01, 11.01).
	Price func() float64
	// Probability вероятность в (0, 1).
	Probability func() float64
}

func NewRandomizer() Randomizer {
	random := rand.New(rand.NewSource(time.Now().Unix())) //nolint:gosec // for tests

	return Randomizer{
		Float64: random.Float64,
		Bool:    func() bool { return random.Intn(2) == 0 },           //nolint:mnd // skip
		Price:   func() float64 { return 1.01 + random.Float64()*10 }, //nolint:mnd // skip
		Probability: func() float64 {
			return 0.001 + random.Float64()*0.998 //nolint:mnd // skip
		},
	}
}
