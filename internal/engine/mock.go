package engine

// Mock is a scriptable test double for Engine. It records transport calls
// and echoes seeks back through Position so position round-trips can be
// asserted without a real audio backend.
type Mock struct {
	mediaPath string
	playing   bool

	ratio    float64
	lengthMS int64
	level    int

	// lengthAfterCycle, when non-zero, is reported by Length only after at
	// least one Play call, emulating engines that discover duration during
	// playback.
	lengthAfterCycle int64

	playCalls  int
	pauseCalls int
	stopCalls  int
	seekCalls  []float64
	mediaCalls []string
}

// NewMock returns a mock engine with no media and unknown position.
func NewMock() *Mock {
	return &Mock{ratio: -1}
}

var _ Engine = (*Mock)(nil)

func (m *Mock) SetMedia(path string) error {
	m.mediaPath = path
	m.mediaCalls = append(m.mediaCalls, path)
	return nil
}

func (m *Mock) Play() {
	m.playCalls++
	m.playing = true
	if m.lengthAfterCycle > 0 {
		m.lengthMS = m.lengthAfterCycle
	}
}

func (m *Mock) Pause() {
	m.pauseCalls++
	m.playing = false
}

func (m *Mock) Stop() {
	m.stopCalls++
	m.playing = false
}

func (m *Mock) Position() float64 { return m.ratio }

func (m *Mock) SetPosition(ratio float64) {
	m.seekCalls = append(m.seekCalls, ratio)
	m.ratio = ratio
}

func (m *Mock) Length() int64 { return m.lengthMS }

func (m *Mock) SetVolume(volume int) { m.level = volume }

func (m *Mock) Volume() int { return m.level }

// Test helpers

// SetRatio scripts the position ratio reported by Position.
func (m *Mock) SetRatio(ratio float64) { m.ratio = ratio }

// SetLength scripts the length reported by Length, in milliseconds.
func (m *Mock) SetLength(ms int64) { m.lengthMS = ms }

// DiscoverLengthOnPlay makes Length report ms only once Play has been
// called at least once.
func (m *Mock) DiscoverLengthOnPlay(ms int64) { m.lengthAfterCycle = ms }

func (m *Mock) Playing() bool        { return m.playing }
func (m *Mock) MediaPath() string    { return m.mediaPath }
func (m *Mock) PlayCalls() int       { return m.playCalls }
func (m *Mock) PauseCalls() int      { return m.pauseCalls }
func (m *Mock) StopCalls() int       { return m.stopCalls }
func (m *Mock) SeekCalls() []float64 { return m.seekCalls }
func (m *Mock) MediaCalls() []string { return m.mediaCalls }
