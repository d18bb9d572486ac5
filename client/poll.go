package client

import (
	"context"
	"time"
)

const (
	defaultPollTimeout   = 10 * time.Second
	defaultPollFrequency = 1.0
	minRPCTimeout        = time.Second
)

// Tick performs one poll. It reports done when the awaited condition holds.
// A non-nil error aborts the poll loop, except transport timeouts on the
// tick itself, which the loop swallows and retries.
type Tick func(ctx context.Context) (done bool, err error)

// Poller repeatedly runs a tick until it reports done or the overall budget
// expires. Clock and Sleep exist so tests can drive the loop deterministically;
// nil means the real clock.
type Poller struct {
	Timeout   time.Duration
	Frequency float64

	Clock func() time.Time
	Sleep func(time.Duration)
}

// Run polls tick until it reports done, returns an error, or the overall
// timeout elapses. Each tick runs under a per-call deadline of the remaining
// budget, floored at one second, so a single hung call cannot overrun the
// budget by much while short remainders still get a usable deadline.
func (p Poller) Run(ctx context.Context, tick Tick) error {
	clock := p.Clock
	if clock == nil {
		clock = time.Now
	}
	sleep := p.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	timeout := p.Timeout
	if timeout <= 0 {
		timeout = defaultPollTimeout
	}
	frequency := p.Frequency
	if frequency <= 0 {
		frequency = defaultPollFrequency
	}
	period := time.Duration(float64(time.Second) / frequency)

	start := clock()
	endTime := start.Add(timeout)

	for now := start; now.Before(endTime); now = clock() {
		rpcTimeout := endTime.Sub(now)
		if rpcTimeout < minRPCTimeout {
			rpcTimeout = minRPCTimeout
		}

		tickCtx, cancel := context.WithTimeout(ctx, rpcTimeout)
		done, err := tick(tickCtx)
		cancel()

		switch {
		case err != nil && IsTransportTimeout(err):
			// A slow poll is not a failed command. Keep polling until
			// the overall budget runs out.
		case err != nil:
			return err
		case done:
			return nil
		}

		if wait := period - clock().Sub(now); wait > 0 {
			sleep(wait)
		}
	}
	return New(CodeCommandTimedOut, "condition not reached before deadline")
}
