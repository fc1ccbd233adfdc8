package world

// minRand always returns the smallest value of any range.
type minRand struct{}

func (minRand) Intn(int) int { return 0 }

// scriptedRand replays a fixed sequence of draws, wrapping around.
type scriptedRand struct {
	values []int
	pos    int
}

func (s *scriptedRand) Intn(n int) int {
	v := s.values[s.pos%len(s.values)]
	s.pos++
	return v % n
}
