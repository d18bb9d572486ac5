// Package timesync estimates the skew between the local clock and the
// robot's clock and converts local times into robot times.
package timesync

import (
	"context"
	"sync"
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	timesyncv1 "github.com/stridelabs/strider/api/timesync/v1"
	"github.com/stridelabs/strider/client"
)

// Transport performs the time sync exchange with the robot.
type Transport interface {
	TimeSyncUpdate(ctx context.Context, req *timesyncv1.TimeSyncUpdateRequest) (*timesyncv1.TimeSyncUpdateResponse, error)
}

// DefaultMaxSamples bounds how many round trips Establish attempts before
// giving up.
const DefaultMaxSamples = 25

// Endpoint accumulates time sync round trips against one robot. It is safe
// for concurrent use.
type Endpoint struct {
	transport Transport
	clock     func() time.Time

	mu                sync.Mutex
	response          *timesyncv1.TimeSyncUpdateResponse
	clockIdentifier   string
	previousRoundTrip *timesyncv1.TimeSyncRoundTrip
}

// NewEndpoint builds an endpoint over the given transport.
func NewEndpoint(transport Transport) *Endpoint {
	return &Endpoint{transport: transport, clock: time.Now}
}

// WithClock overrides the local clock source. Tests use this to make round
// trip timestamps deterministic.
func (e *Endpoint) WithClock(clock func() time.Time) *Endpoint {
	e.clock = clock
	return e
}

// ClockIdentifier reports the identifier the service assigned this client,
// or "" before the first exchange.
func (e *Endpoint) ClockIdentifier() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.clockIdentifier
}

// Established reports whether the service has accepted the skew estimate.
func (e *Endpoint) Established() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.establishedLocked()
}

func (e *Endpoint) establishedLocked() bool {
	return e.response != nil && e.response.State != nil &&
		e.response.State.Status == timesyncv1.StatusOK
}

// Status reports the service's view of the sync progress.
func (e *Endpoint) Status() timesyncv1.TimeSyncStatus {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.response == nil || e.response.State == nil {
		return timesyncv1.StatusUnknown
	}
	return e.response.State.Status
}

// GetNewEstimate performs one sync exchange and records the result.
func (e *Endpoint) GetNewEstimate(ctx context.Context) (*timesyncv1.TimeSyncUpdateResponse, error) {
	e.mu.Lock()
	req := &timesyncv1.TimeSyncUpdateRequest{
		PreviousRoundTrip: e.previousRoundTrip,
		ClockIdentifier:   e.clockIdentifier,
	}
	e.mu.Unlock()

	clientTx := e.clock()
	resp, err := e.transport.TimeSyncUpdate(ctx, req)
	clientRx := e.clock()
	if err != nil {
		e.mu.Lock()
		e.previousRoundTrip = nil
		e.mu.Unlock()
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.response = resp
	if e.clockIdentifier == "" {
		e.clockIdentifier = resp.ClockIdentifier
	}
	e.previousRoundTrip = &timesyncv1.TimeSyncRoundTrip{
		ClientTx: timestamppb.New(clientTx),
		ServerRx: resp.ServerRx,
		ServerTx: resp.ServerTx,
		ClientRx: timestamppb.New(clientRx),
	}
	return resp, nil
}

// Establish exchanges round trips until the service reports the estimate
// good, up to maxSamples attempts. With breakOnSuccess false it always runs
// the full sample count, which tightens the estimate. It reports whether
// sync is established afterwards.
func (e *Endpoint) Establish(ctx context.Context, maxSamples int, breakOnSuccess bool) (bool, error) {
	if maxSamples <= 0 {
		maxSamples = DefaultMaxSamples
	}
	for i := 0; i < maxSamples; i++ {
		if breakOnSuccess && e.Established() {
			return true, nil
		}
		if _, err := e.GetNewEstimate(ctx); err != nil {
			return e.Established(), err
		}
	}
	return e.Established(), nil
}

// ClockSkew reports the established skew estimate. It fails until sync is
// established.
func (e *Endpoint) ClockSkew() (time.Duration, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.establishedLocked() {
		return 0, client.New(client.CodeTimesyncNotEstablished, "time sync has not been established")
	}
	est := e.response.State.BestEstimate
	if est == nil || est.ClockSkew == nil {
		return 0, client.New(client.CodeTimesyncNotEstablished, "time sync state has no skew estimate")
	}
	return est.ClockSkew.AsDuration(), nil
}

// RobotTimeConverter builds a converter from the established skew estimate.
func (e *Endpoint) RobotTimeConverter() (RobotTimeConverter, error) {
	skew, err := e.ClockSkew()
	if err != nil {
		return RobotTimeConverter{}, err
	}
	return RobotTimeConverter{Skew: skew}, nil
}
