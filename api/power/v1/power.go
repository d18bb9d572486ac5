// Package powerv1 defines the power service wire messages.
package powerv1

import leasev1 "github.com/stridelabs/strider/api/lease/v1"

// PowerCommandRequestAction selects what to power on or off.
type PowerCommandRequestAction int32

const (
	ActionUnknown          PowerCommandRequestAction = 0
	ActionPowerOffRobot    PowerCommandRequestAction = 1
	ActionPowerCycleRobot  PowerCommandRequestAction = 2
	ActionPowerOffPayloads PowerCommandRequestAction = 3
	ActionPowerOnPayloads  PowerCommandRequestAction = 4
	ActionPowerOnMotors    PowerCommandRequestAction = 5
	ActionPowerOffMotors   PowerCommandRequestAction = 6
	ActionPowerOffWifi     PowerCommandRequestAction = 7
	ActionPowerOnWifi      PowerCommandRequestAction = 8
)

// PowerCommandStatus reports the state of a power command.
type PowerCommandStatus int32

const (
	StatusUnknown              PowerCommandStatus = 0
	StatusInProgress           PowerCommandStatus = 1
	StatusSuccess              PowerCommandStatus = 2
	StatusShorePowerConnected  PowerCommandStatus = 3
	StatusBatteryMissing       PowerCommandStatus = 4
	StatusCommandInProgress    PowerCommandStatus = 5
	StatusEstopped             PowerCommandStatus = 6
	StatusFaulted              PowerCommandStatus = 7
	StatusInternalError        PowerCommandStatus = 8
	StatusLicenseError         PowerCommandStatus = 9
	StatusIncompatibleHardware PowerCommandStatus = 10
	StatusOverridden           PowerCommandStatus = 11
)

// PowerCommandRequest starts a power transition.
type PowerCommandRequest struct {
	Lease   *leasev1.Lease            `json:"lease,omitempty"`
	Request PowerCommandRequestAction `json:"request,omitempty"`
}

// PowerCommandResponse is the immediate result of a power transition
// request.
type PowerCommandResponse struct {
	Status         PowerCommandStatus `json:"status,omitempty"`
	PowerCommandID uint32             `json:"power_command_id,omitempty"`
}

// PowerCommandFeedbackRequest polls a previously started power transition.
type PowerCommandFeedbackRequest struct {
	PowerCommandID uint32 `json:"power_command_id,omitempty"`
}

// PowerCommandFeedbackResponse reports the transition's current state.
type PowerCommandFeedbackResponse struct {
	Status PowerCommandStatus `json:"status,omitempty"`
}
