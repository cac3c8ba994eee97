package audio

// Silent is the audio sink used when audio is disabled or unavailable
type Silent struct {
	level float64
}

func (s *Silent) Init() error { return nil }

func (s *Silent) SetVolume(v float64) { s.level = v }

func (s *Silent) Close() {}

// Level returns the last requested volume
func (s *Silent) Level() float64 { return s.level }
