package timesync

import (
	"context"
	"sync"
	"time"

	timesyncv1 "github.com/stridelabs/strider/api/timesync/v1"
	"github.com/stridelabs/strider/client"
)

const (
	// DefaultKeeperInterval is how often the keeper refreshes an
	// established estimate.
	DefaultKeeperInterval = 60 * time.Second

	notReadyWait = 5 * time.Second
)

// Keeper runs time sync in the background: it establishes sync as fast as
// the service allows, then refreshes the estimate periodically.
type Keeper struct {
	endpoint *Endpoint
	interval time.Duration
	logf     func(string, ...any)

	stop      chan struct{}
	stopped   chan struct{}
	synced    chan struct{}
	startOnce sync.Once
	stopOnce  sync.Once
}

// NewKeeper builds a keeper over the endpoint. logf may be nil.
func NewKeeper(endpoint *Endpoint, interval time.Duration, logf func(string, ...any)) *Keeper {
	if interval <= 0 {
		interval = DefaultKeeperInterval
	}
	if logf == nil {
		logf = func(string, ...any) {}
	}
	return &Keeper{
		endpoint: endpoint,
		interval: interval,
		logf:     logf,
		stop:     make(chan struct{}),
		stopped:  make(chan struct{}),
		synced:   make(chan struct{}),
	}
}

// Endpoint returns the endpoint the keeper maintains.
func (k *Keeper) Endpoint() *Endpoint { return k.endpoint }

// Start launches the background loop. Cancel ctx or call Stop to end it.
// Start after Stop is a no-op.
func (k *Keeper) Start(ctx context.Context) {
	k.startOnce.Do(func() { go k.run(ctx) })
}

// Stop ends the background loop and waits for it to exit. Stop is safe to
// call whether or not Start ever ran.
func (k *Keeper) Stop() {
	k.stopOnce.Do(func() { close(k.stop) })
	// If Start never ran, claim the once so no loop can launch later and
	// release anyone waiting on stopped.
	k.startOnce.Do(func() { close(k.stopped) })
	<-k.stopped
}

// WaitForSync blocks until sync is established, the keeper stops, or ctx is
// done.
func (k *Keeper) WaitForSync(ctx context.Context) error {
	if k.endpoint.Established() {
		return nil
	}
	select {
	case <-k.synced:
		return nil
	case <-k.stopped:
		return client.New(client.CodeKeeperStopped, "time sync keeper stopped before sync was established")
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (k *Keeper) run(ctx context.Context) {
	defer close(k.stopped)
	announced := false
	for {
		_, err := k.endpoint.GetNewEstimate(ctx)
		if err != nil {
			k.logf("time sync exchange failed: %v", err)
		}

		var wait time.Duration
		switch {
		case err != nil:
			wait = notReadyWait
		case k.endpoint.Established():
			if !announced {
				announced = true
				close(k.synced)
			}
			wait = k.interval
		case k.endpoint.Status() == timesyncv1.StatusMoreSamplesNeeded:
			// The service wants more round trips. Send the next one
			// immediately so sync converges quickly.
			wait = 0
		case k.endpoint.Status() == timesyncv1.StatusServiceNotReady:
			wait = notReadyWait
		default:
			wait = notReadyWait
		}

		if wait == 0 {
			select {
			case <-k.stop:
				return
			case <-ctx.Done():
				return
			default:
			}
			continue
		}
		select {
		case <-k.stop:
			return
		case <-ctx.Done():
			return
		case <-time.After(wait):
		}
	}
}
