package loop

const eventBufferSize = 16

// PositionSample is one observation of playback state, re-derived from the
// transport on every tick and never cached across ticks.
type PositionSample struct {
	Position float64 // seconds
	Duration float64 // seconds
}

// Rewind is emitted when the poller jumps playback back to point A.
type Rewind struct {
	From float64
	To   float64
}

// Subscription carries poller observations to a consumer. Publishing an
// observed position and requesting a seek travel on entirely separate
// channels, so a display update can never be mistaken for a user seek and
// fed back into the transport.
type Subscription struct {
	Samples <-chan PositionSample
	Rewinds <-chan Rewind
	Done    <-chan struct{}

	sampleCh chan PositionSample
	rewindCh chan Rewind
	doneCh   chan struct{}
}

func newSubscription() *Subscription {
	s := &Subscription{
		sampleCh: make(chan PositionSample, eventBufferSize),
		rewindCh: make(chan Rewind, eventBufferSize),
		doneCh:   make(chan struct{}),
	}
	s.Samples = s.sampleCh
	s.Rewinds = s.rewindCh
	s.Done = s.doneCh
	return s
}

func (s *Subscription) close() {
	close(s.doneCh)
}

// sendSample publishes a sample without blocking; stale samples are dropped
// when the consumer lags, the next tick re-derives everything anyway.
func (s *Subscription) sendSample(e PositionSample) {
	select {
	case s.sampleCh <- e:
	default:
	}
}

func (s *Subscription) sendRewind(e Rewind) {
	select {
	case s.rewindCh <- e:
	default:
	}
}
