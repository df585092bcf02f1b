package dice

import (
	"math/rand"
	"time"
)

// Source is the randomness provider for dice rolls.
type Source interface {
	// Intn returns a non-negative random int in [0, n). n > 0.
	Intn(n int) int
}

type randSource struct {
	random *rand.Rand
}

// NewSource returns a math/rand backed Source. A zero seed seeds from the clock.
func NewSource(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &randSource{random: rand.New(rand.NewSource(seed))}
}

func (s *randSource) Intn(n int) int {
	return s.random.Intn(n)
}

// sequenceSource replays a fixed list of die faces, cycling when exhausted.
type sequenceSource struct {
	faces []int
	pos   int
}

// NewSequenceSource returns a Source that yields the given 1-based die faces
// in order. A face larger than the die being rolled wraps around.
func NewSequenceSource(faces ...int) Source {
	return &sequenceSource{faces: append([]int(nil), faces...)}
}

func (s *sequenceSource) Intn(n int) int {
	if len(s.faces) == 0 || n <= 0 {
		return 0
	}
	face := s.faces[s.pos%len(s.faces)]
	s.pos++
	v := (face - 1) % n
	if v < 0 {
		v += n
	}
	return v
}
