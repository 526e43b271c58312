package tetris

import "fmt"

// Randomizer selects how the factory draws piece types.
type Randomizer string

const (
	// RandomizerUniform draws every piece independently and uniformly.
	RandomizerUniform Randomizer = "uniform"
	// RandomizerBag deals shuffled bags holding each of the seven types once.
	RandomizerBag Randomizer = "bag"
)

// Factory produces new pieces at their spawn position.
type Factory struct {
	rng  Random
	mode Randomizer
	bag  []PieceType
}

// NewFactory creates a factory drawing from rng. An empty mode means uniform.
func NewFactory(rng Random, mode Randomizer) *Factory {
	if mode == "" {
		mode = RandomizerUniform
	}
	return &Factory{rng: rng, mode: mode}
}

// Next returns a new piece.
func (f *Factory) Next() Piece {
	var t PieceType
	switch f.mode {
	case RandomizerBag:
		t = f.fromBag()
	default:
		t = PieceType(f.rng.Intn(PieceTypes) + 1)
	}
	if !t.Valid() {
		panic(fmt.Sprintf("tetris: random source produced piece type %d", uint8(t)))
	}
	return NewPiece(t)
}

func (f *Factory) fromBag() PieceType {
	if len(f.bag) == 0 {
		f.refillBag()
	}
	t := f.bag[0]
	f.bag = f.bag[1:]
	return t
}

// refillBag deals a new Fisher-Yates shuffled bag.
func (f *Factory) refillBag() {
	f.bag = []PieceType{PieceI, PieceJ, PieceL, PieceO, PieceS, PieceT, PieceZ}
	for i := len(f.bag) - 1; i > 0; i-- {
		j := f.rng.Intn(i + 1)
		f.bag[i], f.bag[j] = f.bag[j], f.bag[i]
	}
}
