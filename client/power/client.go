// Package power drives the robot's power transitions: motors, payload
// ports, wifi, and whole-robot power off or cycle.
package power

import (
	"context"

	leasev1 "github.com/stridelabs/strider/api/lease/v1"
	powerv1 "github.com/stridelabs/strider/api/power/v1"
	"github.com/stridelabs/strider/client"
)

// Transport performs the power service RPCs.
type Transport interface {
	PowerCommand(ctx context.Context, req *powerv1.PowerCommandRequest) (*powerv1.PowerCommandResponse, error)
	PowerCommandFeedback(ctx context.Context, req *powerv1.PowerCommandFeedbackRequest) (*powerv1.PowerCommandFeedbackResponse, error)
}

// Client issues power commands and polls their progress.
type Client struct {
	transport Transport
}

// NewClient builds a power client.
func NewClient(transport Transport) *Client {
	return &Client{transport: transport}
}

// Command starts a power transition. It returns the command id and the
// service's immediate status. Rejections come back as coded errors.
func (c *Client) Command(ctx context.Context, action powerv1.PowerCommandRequestAction, lease *leasev1.Lease) (uint32, powerv1.PowerCommandStatus, error) {
	resp, err := c.transport.PowerCommand(ctx, &powerv1.PowerCommandRequest{
		Lease:   lease.Clone(),
		Request: action,
	})
	if err != nil {
		return 0, powerv1.StatusUnknown, err
	}
	if err := commandError(resp.Status); err != nil {
		return 0, resp.Status, err
	}
	return resp.PowerCommandID, resp.Status, nil
}

// Feedback polls a previously started power transition.
func (c *Client) Feedback(ctx context.Context, commandID uint32) (powerv1.PowerCommandStatus, error) {
	resp, err := c.transport.PowerCommandFeedback(ctx, &powerv1.PowerCommandFeedbackRequest{
		PowerCommandID: commandID,
	})
	if err != nil {
		return powerv1.StatusUnknown, err
	}
	return resp.Status, nil
}

var commandErrorCodes = map[powerv1.PowerCommandStatus]client.Code{
	powerv1.StatusShorePowerConnected:  client.CodeShorePowerConnected,
	powerv1.StatusBatteryMissing:       client.CodeBatteryMissing,
	powerv1.StatusCommandInProgress:    client.CodeCommandInProgress,
	powerv1.StatusEstopped:             client.CodeEstopped,
	powerv1.StatusFaulted:              client.CodeFaulted,
	powerv1.StatusOverridden:           client.CodeOverridden,
	powerv1.StatusInternalError:        client.CodeInternalServer,
	powerv1.StatusLicenseError:         client.CodeUnsupported,
	powerv1.StatusIncompatibleHardware: client.CodeUnsupported,
}

func commandError(status powerv1.PowerCommandStatus) error {
	switch status {
	case powerv1.StatusSuccess, powerv1.StatusInProgress:
		return nil
	}
	code, ok := commandErrorCodes[status]
	if !ok {
		return client.New(client.CodeUnsetStatus, "power command response carries no status")
	}
	return client.Newf(code, "power command rejected with status %d", status)
}
