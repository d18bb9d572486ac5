package command

import (
	"context"
	"sync"
	"time"

	commandv1 "github.com/stridelabs/strider/api/command/v1"
	leasev1 "github.com/stridelabs/strider/api/lease/v1"
	"github.com/stridelabs/strider/client"
	"github.com/stridelabs/strider/client/timesync"
)

// Transport performs the command service RPCs.
type Transport interface {
	RobotCommand(ctx context.Context, req *commandv1.RobotCommandRequest) (*commandv1.RobotCommandResponse, error)
	RobotCommandFeedback(ctx context.Context, req *commandv1.RobotCommandFeedbackRequest) (*commandv1.RobotCommandFeedbackResponse, error)
	ClearBehaviorFault(ctx context.Context, req *commandv1.ClearBehaviorFaultRequest) (*commandv1.ClearBehaviorFaultResponse, error)
}

// TimesyncEndpoint supplies the clock identifier and time converter used to
// stamp outgoing commands.
type TimesyncEndpoint interface {
	ClockIdentifier() string
	RobotTimeConverter() (timesync.RobotTimeConverter, error)
}

// Client submits commands to the robot and polls their progress.
type Client struct {
	transport Transport
	endpoint  TimesyncEndpoint
	clock     func() time.Time
}

// NewClient builds a command client. endpoint may be nil when the caller
// never sends timestamped commands.
func NewClient(transport Transport, endpoint TimesyncEndpoint) *Client {
	return &Client{transport: transport, endpoint: endpoint, clock: time.Now}
}

// WithClock overrides the local clock source.
func (c *Client) WithClock(clock func() time.Time) *Client {
	c.clock = clock
	return c
}

// SubmitOption adjusts a single command submission.
type SubmitOption func(*submitOptions)

type submitOptions struct {
	lease    *leasev1.Lease
	endTime  time.Time
	endpoint TimesyncEndpoint
}

// WithLease attaches a lease to the submission.
func WithLease(lease *leasev1.Lease) SubmitOption {
	return func(o *submitOptions) { o.lease = lease }
}

// WithEndTime sets the command's end time, given in local time. The client
// converts it to robot time before sending.
func WithEndTime(endTime time.Time) SubmitOption {
	return func(o *submitOptions) { o.endTime = endTime }
}

// WithEndpoint overrides the client's time sync endpoint for this
// submission.
func WithEndpoint(endpoint TimesyncEndpoint) SubmitOption {
	return func(o *submitOptions) { o.endpoint = endpoint }
}

// lazyConverter resolves the time converter on first use, so commands that
// carry no timestamps never require established time sync.
type lazyConverter struct {
	endpoint TimesyncEndpoint

	once sync.Once
	conv timesync.RobotTimeConverter
	err  error
}

func (l *lazyConverter) get() (timesync.RobotTimeConverter, error) {
	l.once.Do(func() {
		if l.endpoint == nil {
			l.err = client.New(client.CodeTimesyncNotEstablished, "no time sync endpoint configured")
			return
		}
		l.conv, l.err = l.endpoint.RobotTimeConverter()
	})
	return l.conv, l.err
}

// Submit sends a command for execution and returns its command id. The
// caller's command is never mutated: timestamp rewrites happen on a clone.
func (c *Client) Submit(ctx context.Context, cmd *commandv1.RobotCommand, opts ...SubmitOption) (uint32, error) {
	o := submitOptions{endpoint: c.endpoint}
	for _, opt := range opts {
		opt(&o)
	}

	req := &commandv1.RobotCommandRequest{
		Lease:   o.lease.Clone(),
		Command: cmd.Clone(),
	}

	conv := &lazyConverter{endpoint: o.endpoint}
	var editErr error
	record := func(err error) {
		if editErr == nil {
			editErr = err
		}
	}

	if !o.endTime.IsZero() {
		Apply(req.Command, EndTimeTree, func(name string, node any) {
			setter, ok := node.(TimestampSetter)
			if !ok {
				return
			}
			cv, err := conv.get()
			if err != nil {
				record(err)
				return
			}
			setter.SetTimestamp(name, cv.RobotTimestampFromLocal(o.endTime))
		})
	}
	Apply(req.Command, LocalToRobotTimeTree, func(name string, node any) {
		editor, ok := node.(TimestampEditor)
		if !ok {
			return
		}
		ts := editor.EditTimestamp(name)
		if ts == nil {
			return
		}
		cv, err := conv.get()
		if err != nil {
			record(err)
			return
		}
		cv.ConvertTimestampFromLocalToRobot(ts)
	})
	if editErr != nil {
		return 0, editErr
	}

	if o.endpoint != nil {
		req.ClockIdentifier = o.endpoint.ClockIdentifier()
	}

	resp, err := c.transport.RobotCommand(ctx, req)
	if err != nil {
		return 0, err
	}
	if err := submitError(resp); err != nil {
		return 0, err
	}
	return resp.RobotCommandID, nil
}

// Feedback polls execution progress for a previously submitted command.
func (c *Client) Feedback(ctx context.Context, commandID uint32) (*commandv1.RobotCommandFeedback, error) {
	resp, err := c.transport.RobotCommandFeedback(ctx, &commandv1.RobotCommandFeedbackRequest{
		RobotCommandID: commandID,
	})
	if err != nil {
		return nil, err
	}
	if resp.Feedback == nil {
		return nil, client.New(client.CodeUnsetStatus, "feedback response carries no feedback")
	}
	return resp.Feedback, nil
}

// ClearBehaviorFault asks the robot to clear a behavior fault. It reports
// true when the fault cleared and a coded error when the robot refused.
func (c *Client) ClearBehaviorFault(ctx context.Context, faultID uint32, lease *leasev1.Lease) (bool, error) {
	resp, err := c.transport.ClearBehaviorFault(ctx, &commandv1.ClearBehaviorFaultRequest{
		Lease:           lease.Clone(),
		BehaviorFaultID: faultID,
	})
	if err != nil {
		return false, err
	}
	switch resp.Status {
	case commandv1.ClearBehaviorFaultStatusCleared:
		return true, nil
	case commandv1.ClearBehaviorFaultStatusNotCleared:
		return false, client.Newf(client.CodeNotCleared, "behavior fault %d could not be cleared", faultID)
	default:
		return false, client.New(client.CodeUnsetStatus, "clear behavior fault response carries no status")
	}
}

var submitErrorCodes = map[commandv1.RobotCommandStatus]client.Code{
	commandv1.RobotCommandStatusInvalidRequest: client.CodeInvalidRequest,
	commandv1.RobotCommandStatusUnsupported:    client.CodeUnsupported,
	commandv1.RobotCommandStatusNoTimesync:     client.CodeNoTimesync,
	commandv1.RobotCommandStatusExpired:        client.CodeExpired,
	commandv1.RobotCommandStatusTooDistant:     client.CodeTooDistant,
	commandv1.RobotCommandStatusNotPoweredOn:   client.CodeNotPoweredOn,
	commandv1.RobotCommandStatusBehaviorFault:  client.CodeBehaviorFault,
	commandv1.RobotCommandStatusDocked:         client.CodeDocked,
	commandv1.RobotCommandStatusUnknownFrame:   client.CodeUnknownFrame,
}

func submitError(resp *commandv1.RobotCommandResponse) error {
	if resp.Status == commandv1.RobotCommandStatusOK {
		return nil
	}
	code, ok := submitErrorCodes[resp.Status]
	if !ok {
		return client.New(client.CodeUnsetStatus, "command response carries no status")
	}
	msg := resp.Message
	if msg == "" {
		msg = "command rejected"
	}
	return client.New(code, msg)
}
