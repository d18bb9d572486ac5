package commandv1

// RobotCommandStatus is the acceptance result of a command submission.
type RobotCommandStatus int32

const (
	RobotCommandStatusUnknown        RobotCommandStatus = 0
	RobotCommandStatusOK             RobotCommandStatus = 1
	RobotCommandStatusInvalidRequest RobotCommandStatus = 2
	RobotCommandStatusUnsupported    RobotCommandStatus = 3
	RobotCommandStatusNoTimesync     RobotCommandStatus = 4
	RobotCommandStatusExpired        RobotCommandStatus = 5
	RobotCommandStatusTooDistant     RobotCommandStatus = 6
	RobotCommandStatusNotPoweredOn   RobotCommandStatus = 7
	RobotCommandStatusBehaviorFault  RobotCommandStatus = 8
	RobotCommandStatusDocked         RobotCommandStatus = 9
	RobotCommandStatusUnknownFrame   RobotCommandStatus = 10
)

// RobotCommandFeedbackStatus is the overall processing state of an accepted
// command.
type RobotCommandFeedbackStatus int32

const (
	FeedbackStatusUnknown              RobotCommandFeedbackStatus = 0
	FeedbackStatusProcessing           RobotCommandFeedbackStatus = 1
	FeedbackStatusCommandOverridden    RobotCommandFeedbackStatus = 2
	FeedbackStatusCommandTimedOut      RobotCommandFeedbackStatus = 3
	FeedbackStatusRobotFrozen          RobotCommandFeedbackStatus = 4
	FeedbackStatusIncompatibleHardware RobotCommandFeedbackStatus = 5
)

// StandStatus reports progress of a stand command.
type StandStatus int32

const (
	StandStatusUnknown    StandStatus = 0
	StandStatusIsStanding StandStatus = 1
	StandStatusInProgress StandStatus = 2
)

// SitStatus reports progress of a sit command.
type SitStatus int32

const (
	SitStatusUnknown    SitStatus = 0
	SitStatusIsSitting  SitStatus = 1
	SitStatusInProgress SitStatus = 2
)

// SelfRightStatus reports progress of a self-right command.
type SelfRightStatus int32

const (
	SelfRightStatusUnknown    SelfRightStatus = 0
	SelfRightStatusCompleted  SelfRightStatus = 1
	SelfRightStatusInProgress SelfRightStatus = 2
)

// SE2TrajectoryStatus reports progress along a planar trajectory.
type SE2TrajectoryStatus int32

const (
	SE2TrajectoryStatusUnknown     SE2TrajectoryStatus = 0
	SE2TrajectoryStatusAtGoal      SE2TrajectoryStatus = 1
	SE2TrajectoryStatusNearGoal    SE2TrajectoryStatus = 2
	SE2TrajectoryStatusGoingToGoal SE2TrajectoryStatus = 3
)

// BodyMovementStatus reports whether the body has settled.
type BodyMovementStatus int32

const (
	BodyMovementStatusUnknown BodyMovementStatus = 0
	BodyMovementStatusMoving  BodyMovementStatus = 1
	BodyMovementStatusSettled BodyMovementStatus = 2
)

// StanceStatus reports progress of a stance command.
type StanceStatus int32

const (
	StanceStatusUnknown    StanceStatus = 0
	StanceStatusStanced    StanceStatus = 1
	StanceStatusGoingTo    StanceStatus = 2
	StanceStatusTooFarAway StanceStatus = 3
)

// SafePowerOffStatus reports progress of a safe power off command.
type SafePowerOffStatus int32

const (
	SafePowerOffStatusUnknown    SafePowerOffStatus = 0
	SafePowerOffStatusPoweredOff SafePowerOffStatus = 1
	SafePowerOffStatusInProgress SafePowerOffStatus = 2
)

// BatteryChangePoseStatus reports progress of a battery change pose command.
type BatteryChangePoseStatus int32

const (
	BatteryChangePoseStatusUnknown    BatteryChangePoseStatus = 0
	BatteryChangePoseStatusCompleted  BatteryChangePoseStatus = 1
	BatteryChangePoseStatusInProgress BatteryChangePoseStatus = 2
	BatteryChangePoseStatusFailed     BatteryChangePoseStatus = 3
)

// PayloadEstimationStatus reports progress of a payload estimation routine.
type PayloadEstimationStatus int32

const (
	PayloadEstimationStatusUnknown    PayloadEstimationStatus = 0
	PayloadEstimationStatusCompleted  PayloadEstimationStatus = 1
	PayloadEstimationStatusSmallMass  PayloadEstimationStatus = 2
	PayloadEstimationStatusInProgress PayloadEstimationStatus = 3
	PayloadEstimationStatusError      PayloadEstimationStatus = 4
)

// ArmCartesianStatus reports progress of a Cartesian arm move.
type ArmCartesianStatus int32

const (
	ArmCartesianStatusUnknown             ArmCartesianStatus = 0
	ArmCartesianStatusTrajectoryComplete  ArmCartesianStatus = 1
	ArmCartesianStatusInProgress          ArmCartesianStatus = 2
	ArmCartesianStatusTrajectoryCancelled ArmCartesianStatus = 3
	ArmCartesianStatusTrajectoryStalled   ArmCartesianStatus = 4
)

// ArmJointMoveStatus reports progress of a joint-space arm move.
type ArmJointMoveStatus int32

const (
	ArmJointMoveStatusUnknown    ArmJointMoveStatus = 0
	ArmJointMoveStatusComplete   ArmJointMoveStatus = 1
	ArmJointMoveStatusInProgress ArmJointMoveStatus = 2
	ArmJointMoveStatusStalled    ArmJointMoveStatus = 3
)

// NamedArmPositionStatus reports progress toward a named arm position.
type NamedArmPositionStatus int32

const (
	NamedArmPositionStatusUnknown            NamedArmPositionStatus = 0
	NamedArmPositionStatusComplete           NamedArmPositionStatus = 1
	NamedArmPositionStatusInProgress         NamedArmPositionStatus = 2
	NamedArmPositionStatusStalledHoldingItem NamedArmPositionStatus = 3
)

// GazeStatus reports progress of a gaze command.
type GazeStatus int32

const (
	GazeStatusUnknown               GazeStatus = 0
	GazeStatusTrajectoryComplete    GazeStatus = 1
	GazeStatusInProgress            GazeStatus = 2
	GazeStatusToolTrajectoryStalled GazeStatus = 3
)

// ClawGripperStatus reports progress of a gripper move.
type ClawGripperStatus int32

const (
	ClawGripperStatusUnknown            ClawGripperStatus = 0
	ClawGripperStatusInProgress         ClawGripperStatus = 1
	ClawGripperStatusAtGoal             ClawGripperStatus = 2
	ClawGripperStatusAppliedForceAtGoal ClawGripperStatus = 3
)

// ClearBehaviorFaultStatus is the result of a fault clear attempt.
type ClearBehaviorFaultStatus int32

const (
	ClearBehaviorFaultStatusUnknown    ClearBehaviorFaultStatus = 0
	ClearBehaviorFaultStatusCleared    ClearBehaviorFaultStatus = 1
	ClearBehaviorFaultStatusNotCleared ClearBehaviorFaultStatus = 2
)

// NamedArmPosition selects a predefined arm configuration.
type NamedArmPosition int32

const (
	NamedArmPositionUnknown NamedArmPosition = 0
	NamedArmPositionStow    NamedArmPosition = 1
	NamedArmPositionCarry   NamedArmPosition = 2
	NamedArmPositionReady   NamedArmPosition = 3
)

// SafePowerOffUnsafeAction selects behavior when the robot cannot sit.
type SafePowerOffUnsafeAction int32

const (
	UnsafeActionUnknown            SafePowerOffUnsafeAction = 0
	UnsafeActionMoveToSafePosition SafePowerOffUnsafeAction = 1
	UnsafeActionForceCommand       SafePowerOffUnsafeAction = 2
)

// BatteryChangePoseDirectionHint selects the roll-over direction.
type BatteryChangePoseDirectionHint int32

const (
	DirectionHintUnknown BatteryChangePoseDirectionHint = 0
	DirectionHintRight   BatteryChangePoseDirectionHint = 1
	DirectionHintLeft    BatteryChangePoseDirectionHint = 2
)

// LocomotionHint suggests a gait to the mobility controller.
type LocomotionHint int32

const (
	HintUnknown          LocomotionHint = 0
	HintAuto             LocomotionHint = 1
	HintTrot             LocomotionHint = 2
	HintSpeedSelectTrot  LocomotionHint = 3
	HintCrawl            LocomotionHint = 4
	HintSpeedSelectCrawl LocomotionHint = 10
	HintAmble            LocomotionHint = 5
	HintSpeedSelectAmble LocomotionHint = 6
	HintJog              LocomotionHint = 7
	HintHop              LocomotionHint = 8
)

// StairsMode controls the stairs-specific gait restrictions.
type StairsMode int32

const (
	StairsModeUnknown StairsMode = 0
	StairsModeOff     StairsMode = 1
	StairsModeOn      StairsMode = 2
	StairsModeAuto    StairsMode = 3
)

// ExternalForceIndicator selects how body external forces are handled.
type ExternalForceIndicator int32

const (
	ExternalForceNone        ExternalForceIndicator = 0
	ExternalForceUseEstimate ExternalForceIndicator = 1
	ExternalForceUseOverride ExternalForceIndicator = 2
)

// ConstrainedManipulationTask identifies the constrained manipulation
// primitive to run.
type ConstrainedManipulationTask int32

const (
	TaskTypeUnknown             ConstrainedManipulationTask = 0
	TaskTypeSE3Circle           ConstrainedManipulationTask = 1
	TaskTypeR3Linear            ConstrainedManipulationTask = 2
	TaskTypeSE3RotationalTorque ConstrainedManipulationTask = 3
)
