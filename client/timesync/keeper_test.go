package timesync

import (
	"context"
	"errors"
	"testing"
	"time"

	timesyncv1 "github.com/stridelabs/strider/api/timesync/v1"
	"github.com/stridelabs/strider/client"
)

func TestKeeperEstablishesSync(t *testing.T) {
	calls := 0
	transport := &fakeTransport{
		update: func(*timesyncv1.TimeSyncUpdateRequest) (*timesyncv1.TimeSyncUpdateResponse, error) {
			calls++
			if calls < 3 {
				return syncResponse(timesyncv1.StatusMoreSamplesNeeded, 0), nil
			}
			return syncResponse(timesyncv1.StatusOK, time.Second), nil
		},
	}
	e := NewEndpoint(transport).WithClock(fakeEndpointClock())
	k := NewKeeper(e, time.Minute, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	k.Start(ctx)
	defer k.Stop()

	if err := k.WaitForSync(ctx); err != nil {
		t.Fatalf("wait for sync: %v", err)
	}
	if !e.Established() {
		t.Fatal("expected sync to be established")
	}
	if e.ClockIdentifier() != "clock-abc" {
		t.Fatalf("clock identifier = %q", e.ClockIdentifier())
	}
}

func TestKeeperWaitForSyncReturnsImmediatelyWhenEstablished(t *testing.T) {
	transport := &fakeTransport{
		update: func(*timesyncv1.TimeSyncUpdateRequest) (*timesyncv1.TimeSyncUpdateResponse, error) {
			return syncResponse(timesyncv1.StatusOK, time.Second), nil
		},
	}
	e := NewEndpoint(transport).WithClock(fakeEndpointClock())
	if _, err := e.GetNewEstimate(context.Background()); err != nil {
		t.Fatalf("estimate: %v", err)
	}

	// The keeper never ran, so only the established check can succeed.
	k := NewKeeper(e, time.Minute, nil)
	if err := k.WaitForSync(context.Background()); err != nil {
		t.Fatalf("wait for sync: %v", err)
	}
}

func TestKeeperStopUnblocksWaiters(t *testing.T) {
	transport := &fakeTransport{
		update: func(*timesyncv1.TimeSyncUpdateRequest) (*timesyncv1.TimeSyncUpdateResponse, error) {
			return syncResponse(timesyncv1.StatusMoreSamplesNeeded, 0), nil
		},
	}
	e := NewEndpoint(transport).WithClock(fakeEndpointClock())
	k := NewKeeper(e, time.Minute, nil)

	k.Start(context.Background())

	waitErr := make(chan error, 1)
	go func() {
		waitErr <- k.WaitForSync(context.Background())
	}()

	time.Sleep(50 * time.Millisecond)
	k.Stop()

	select {
	case err := <-waitErr:
		if !errors.Is(err, client.New(client.CodeKeeperStopped, "")) {
			t.Fatalf("expected %s, got %v", client.CodeKeeperStopped, err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("waiter did not unblock after Stop")
	}
}

func TestKeeperStopWithoutStartReturns(t *testing.T) {
	calls := 0
	transport := &fakeTransport{
		update: func(*timesyncv1.TimeSyncUpdateRequest) (*timesyncv1.TimeSyncUpdateResponse, error) {
			calls++
			return syncResponse(timesyncv1.StatusMoreSamplesNeeded, 0), nil
		},
	}
	e := NewEndpoint(transport).WithClock(fakeEndpointClock())
	k := NewKeeper(e, time.Minute, nil)

	done := make(chan struct{})
	go func() {
		k.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop hung with no loop running")
	}

	if err := k.WaitForSync(context.Background()); !errors.Is(err, client.New(client.CodeKeeperStopped, "")) {
		t.Fatalf("expected %s, got %v", client.CodeKeeperStopped, err)
	}

	// Start after Stop must not launch the loop.
	k.Start(context.Background())
	time.Sleep(50 * time.Millisecond)
	if calls != 0 {
		t.Fatalf("loop ran %d exchanges after Stop", calls)
	}
}

func TestKeeperWaitForSyncHonorsContext(t *testing.T) {
	transport := &fakeTransport{
		update: func(*timesyncv1.TimeSyncUpdateRequest) (*timesyncv1.TimeSyncUpdateResponse, error) {
			return syncResponse(timesyncv1.StatusServiceNotReady, 0), nil
		},
	}
	e := NewEndpoint(transport).WithClock(fakeEndpointClock())
	k := NewKeeper(e, time.Minute, nil)

	k.Start(context.Background())
	defer k.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	if err := k.WaitForSync(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}
