package grpc

import (
	"context"

	gogrpc "google.golang.org/grpc"

	commandv1 "github.com/stridelabs/strider/api/command/v1"
	powerv1 "github.com/stridelabs/strider/api/power/v1"
	timesyncv1 "github.com/stridelabs/strider/api/timesync/v1"
)

// Full method names of the robot services.
const (
	MethodRobotCommand         = "/strider.api.CommandService/RobotCommand"
	MethodRobotCommandFeedback = "/strider.api.CommandService/RobotCommandFeedback"
	MethodClearBehaviorFault   = "/strider.api.CommandService/ClearBehaviorFault"
	MethodPowerCommand         = "/strider.api.PowerService/PowerCommand"
	MethodPowerCommandFeedback = "/strider.api.PowerService/PowerCommandFeedback"
	MethodTimeSyncUpdate       = "/strider.api.TimeSyncService/TimeSyncUpdate"
)

// Client invokes the robot services over a gRPC connection. It satisfies
// the command, power and timesync transport interfaces.
type Client struct {
	conn gogrpc.ClientConnInterface
}

// NewClient wraps a connection.
func NewClient(conn gogrpc.ClientConnInterface) *Client {
	return &Client{conn: conn}
}

func invoke[Resp any](ctx context.Context, c *Client, method string, req any) (*Resp, error) {
	resp := new(Resp)
	err := c.conn.Invoke(ctx, method, req, resp, gogrpc.CallContentSubtype(CodecName))
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) RobotCommand(ctx context.Context, req *commandv1.RobotCommandRequest) (*commandv1.RobotCommandResponse, error) {
	return invoke[commandv1.RobotCommandResponse](ctx, c, MethodRobotCommand, req)
}

func (c *Client) RobotCommandFeedback(ctx context.Context, req *commandv1.RobotCommandFeedbackRequest) (*commandv1.RobotCommandFeedbackResponse, error) {
	return invoke[commandv1.RobotCommandFeedbackResponse](ctx, c, MethodRobotCommandFeedback, req)
}

func (c *Client) ClearBehaviorFault(ctx context.Context, req *commandv1.ClearBehaviorFaultRequest) (*commandv1.ClearBehaviorFaultResponse, error) {
	return invoke[commandv1.ClearBehaviorFaultResponse](ctx, c, MethodClearBehaviorFault, req)
}

func (c *Client) PowerCommand(ctx context.Context, req *powerv1.PowerCommandRequest) (*powerv1.PowerCommandResponse, error) {
	return invoke[powerv1.PowerCommandResponse](ctx, c, MethodPowerCommand, req)
}

func (c *Client) PowerCommandFeedback(ctx context.Context, req *powerv1.PowerCommandFeedbackRequest) (*powerv1.PowerCommandFeedbackResponse, error) {
	return invoke[powerv1.PowerCommandFeedbackResponse](ctx, c, MethodPowerCommandFeedback, req)
}

func (c *Client) TimeSyncUpdate(ctx context.Context, req *timesyncv1.TimeSyncUpdateRequest) (*timesyncv1.TimeSyncUpdateResponse, error) {
	return invoke[timesyncv1.TimeSyncUpdateResponse](ctx, c, MethodTimeSyncUpdate, req)
}
