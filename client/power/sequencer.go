package power

import (
	"context"
	"time"

	leasev1 "github.com/stridelabs/strider/api/lease/v1"
	powerv1 "github.com/stridelabs/strider/api/power/v1"
	"github.com/stridelabs/strider/client"
)

// SequenceOptions tunes a blocking power sequence. The zero value polls at
// 1 Hz for 30 seconds against the real clock.
type SequenceOptions struct {
	Timeout   time.Duration
	Frequency float64
	Lease     *leasev1.Lease

	Clock func() time.Time
	Sleep func(time.Duration)
}

const defaultSequenceTimeout = 30 * time.Second

func (o SequenceOptions) poller() client.Poller {
	timeout := o.Timeout
	if timeout <= 0 {
		timeout = defaultSequenceTimeout
	}
	return client.Poller{
		Timeout:   timeout,
		Frequency: o.Frequency,
		Clock:     o.Clock,
		Sleep:     o.Sleep,
	}
}

// OnMotors powers on the motors and waits for the transition to finish.
func OnMotors(ctx context.Context, c *Client, opts SequenceOptions) error {
	return run(ctx, c, powerv1.ActionPowerOnMotors, opts, false)
}

// OffMotors powers off the motors immediately, without sitting down first,
// and waits for the transition to finish.
func OffMotors(ctx context.Context, c *Client, opts SequenceOptions) error {
	return run(ctx, c, powerv1.ActionPowerOffMotors, opts, false)
}

// OffRobot powers off the whole robot. The connection drops when the
// computer shuts down, so a transport failure counts as success.
func OffRobot(ctx context.Context, c *Client, opts SequenceOptions) error {
	return run(ctx, c, powerv1.ActionPowerOffRobot, opts, true)
}

// CycleRobot power cycles the whole robot. The connection drops during the
// cycle, so a transport failure counts as success.
func CycleRobot(ctx context.Context, c *Client, opts SequenceOptions) error {
	return run(ctx, c, powerv1.ActionPowerCycleRobot, opts, true)
}

// OnPayloadPorts powers on the payload ports.
func OnPayloadPorts(ctx context.Context, c *Client, opts SequenceOptions) error {
	return run(ctx, c, powerv1.ActionPowerOnPayloads, opts, false)
}

// OffPayloadPorts powers off the payload ports.
func OffPayloadPorts(ctx context.Context, c *Client, opts SequenceOptions) error {
	return run(ctx, c, powerv1.ActionPowerOffPayloads, opts, false)
}

// OnWifiRadio powers on the wifi radio.
func OnWifiRadio(ctx context.Context, c *Client, opts SequenceOptions) error {
	return run(ctx, c, powerv1.ActionPowerOnWifi, opts, false)
}

// OffWifiRadio powers off the wifi radio.
func OffWifiRadio(ctx context.Context, c *Client, opts SequenceOptions) error {
	return run(ctx, c, powerv1.ActionPowerOffWifi, opts, false)
}

func run(ctx context.Context, c *Client, action powerv1.PowerCommandRequestAction, opts SequenceOptions, expectDrop bool) error {
	commandID, status, err := c.Command(ctx, action, opts.Lease)
	if err != nil {
		if expectDrop && transportDropped(err) {
			return nil
		}
		return err
	}
	if status == powerv1.StatusSuccess {
		return nil
	}

	err = opts.poller().Run(ctx, func(tickCtx context.Context) (bool, error) {
		status, err := c.Feedback(tickCtx, commandID)
		if err != nil {
			if expectDrop && transportDropped(err) {
				return true, nil
			}
			return false, err
		}
		switch status {
		case powerv1.StatusSuccess:
			return true, nil
		case powerv1.StatusInProgress:
			return false, nil
		}
		return false, commandError(status)
	})
	return err
}

func transportDropped(err error) bool {
	return client.IsTransportTimeout(err) || client.IsTransportUnavailable(err)
}
