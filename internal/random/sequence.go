package random

import "fmt"

// Sequence is a scripted Source that replays fixed draws in order.
// Float64 and IntN consume independent queues. When a queue is exhausted
// it repeats its last value; an empty queue yields 0.
//
// IntN results are reduced modulo n so scripted values always honor the
// [0, n) contract.
type Sequence struct {
	Floats []float64
	Ints   []int

	floatPos int
	intPos   int
}

// Float64 returns the next scripted float.
func (s *Sequence) Float64() float64 {
	if len(s.Floats) == 0 {
		return 0
	}
	i := min(s.floatPos, len(s.Floats)-1)
	s.floatPos++
	return s.Floats[i]
}

// IntN returns the next scripted int reduced into [0, n).
func (s *Sequence) IntN(n int) int {
	if n <= 0 {
		panic(fmt.Sprintf("random: invalid argument to IntN: %d", n))
	}
	if len(s.Ints) == 0 {
		return 0
	}
	i := min(s.intPos, len(s.Ints)-1)
	s.intPos++
	v := s.Ints[i] % n
	if v < 0 {
		v += n
	}
	return v
}

// FloatDraws returns how many Float64 calls have been made.
func (s *Sequence) FloatDraws() int { return s.floatPos }

// IntDraws returns how many IntN calls have been made.
func (s *Sequence) IntDraws() int { return s.intPos }
