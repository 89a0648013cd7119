package loop

import (
	"context"
	"time"
)

// DefaultInterval balances UI responsiveness against polling overhead on
// the media engine.
const DefaultInterval = 100 * time.Millisecond

// Transport is the slice of the player the poller drives: position reads
// for observation, seek and play for loop correction.
type Transport interface {
	Position() float64
	Duration() float64
	SetPosition(seconds float64)
	Play()
}

// Poller drives the playback observation loop. Each tick it reads the
// transport state, publishes a sample to the subscription, and applies the
// controller's corrective action if the loop boundary was passed. The
// corrective seek goes straight to the transport and is never published as
// a sample, so observers cannot re-interpret it.
type Poller struct {
	transport Transport
	ctl       *Controller
	interval  time.Duration
	sub       *Subscription
}

// NewPoller creates a poller over the given transport and controller,
// ticking at DefaultInterval.
func NewPoller(t Transport, c *Controller) *Poller {
	return &Poller{
		transport: t,
		ctl:       c,
		interval:  DefaultInterval,
		sub:       newSubscription(),
	}
}

// SetInterval overrides the tick period. Must be called before Run.
func (p *Poller) SetInterval(d time.Duration) {
	p.interval = d
}

// Subscription returns the observation channels for this poller.
func (p *Poller) Subscription() *Subscription {
	return p.sub
}

// Run ticks until ctx is cancelled, then closes the subscription's Done
// channel. After Run returns no further tick touches the transport, so the
// engine can be torn down safely.
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	defer p.sub.close()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.Tick()
		}
	}
}

// Tick performs a single observation turn: sample, publish, correct. It is
// exported so hosts with their own scheduler can drive the loop directly.
func (p *Poller) Tick() PositionSample {
	sample := PositionSample{
		Position: p.transport.Position(),
		Duration: p.transport.Duration(),
	}
	p.sub.sendSample(sample)

	if target, ok := p.ctl.Evaluate(sample.Position); ok {
		p.transport.SetPosition(target)
		p.transport.Play()
		p.sub.sendRewind(Rewind{From: sample.Position, To: target})
	}
	return sample
}
