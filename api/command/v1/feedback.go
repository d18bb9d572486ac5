package commandv1

// RobotCommandFeedback mirrors the structure of the submitted command. The
// variant matching the command's type is populated.
type RobotCommandFeedback struct {
	FullBodyFeedback     *FullBodyFeedback     `json:"full_body_feedback,omitempty"`
	SynchronizedFeedback *SynchronizedFeedback `json:"synchronized_feedback,omitempty"`
	MobilityFeedback     *MobilityFeedback     `json:"mobility_feedback,omitempty"`
}

// FullBodyFeedback reports progress of a full-body command.
type FullBodyFeedback struct {
	Status RobotCommandFeedbackStatus `json:"status,omitempty"`

	StopFeedback                    *StopFeedback                    `json:"stop_feedback,omitempty"`
	FreezeFeedback                  *FreezeFeedback                  `json:"freeze_feedback,omitempty"`
	SelfRightFeedback               *SelfRightFeedback               `json:"selfright_feedback,omitempty"`
	SafePowerOffFeedback            *SafePowerOffFeedback            `json:"safe_power_off_feedback,omitempty"`
	BatteryChangePoseFeedback       *BatteryChangePoseFeedback       `json:"battery_change_pose_feedback,omitempty"`
	PayloadEstimationFeedback       *PayloadEstimationFeedback       `json:"payload_estimation_feedback,omitempty"`
	ConstrainedManipulationFeedback *ConstrainedManipulationFeedback `json:"constrained_manipulation_feedback,omitempty"`
}

// SynchronizedFeedback reports progress of a synchronized command, one entry
// per commanded subsystem.
type SynchronizedFeedback struct {
	ArmCommandFeedback      *ArmCommandFeedback      `json:"arm_command_feedback,omitempty"`
	MobilityCommandFeedback *MobilityCommandFeedback `json:"mobility_command_feedback,omitempty"`
	GripperCommandFeedback  *GripperCommandFeedback  `json:"gripper_command_feedback,omitempty"`
}

// MobilityFeedback reports progress of a deprecated top-level mobility
// command.
type MobilityFeedback struct {
	Status RobotCommandFeedbackStatus `json:"status,omitempty"`
}

// MobilityCommandFeedback reports progress of the mobility portion of a
// synchronized command.
type MobilityCommandFeedback struct {
	Status RobotCommandFeedbackStatus `json:"status,omitempty"`

	SE2TrajectoryFeedback *SE2TrajectoryFeedback `json:"se2_trajectory_feedback,omitempty"`
	SE2VelocityFeedback   *SE2VelocityFeedback   `json:"se2_velocity_feedback,omitempty"`
	SitFeedback           *SitFeedback           `json:"sit_feedback,omitempty"`
	StandFeedback         *StandFeedback         `json:"stand_feedback,omitempty"`
	StanceFeedback        *StanceFeedback        `json:"stance_feedback,omitempty"`
	FollowArmFeedback     *FollowArmFeedback     `json:"follow_arm_feedback,omitempty"`
}

// ArmCommandFeedback reports progress of the arm portion of a synchronized
// command.
type ArmCommandFeedback struct {
	Status RobotCommandFeedbackStatus `json:"status,omitempty"`

	ArmCartesianFeedback     *ArmCartesianFeedback     `json:"arm_cartesian_feedback,omitempty"`
	ArmJointMoveFeedback     *ArmJointMoveFeedback     `json:"arm_joint_move_feedback,omitempty"`
	NamedArmPositionFeedback *NamedArmPositionFeedback `json:"named_arm_position_feedback,omitempty"`
	ArmGazeFeedback          *ArmGazeFeedback          `json:"arm_gaze_feedback,omitempty"`
}

// GripperCommandFeedback reports progress of the gripper portion of a
// synchronized command.
type GripperCommandFeedback struct {
	Status RobotCommandFeedbackStatus `json:"status,omitempty"`

	ClawGripperFeedback *ClawGripperFeedback `json:"claw_gripper_feedback,omitempty"`
}

type StopFeedback struct{}

type FreezeFeedback struct{}

type SelfRightFeedback struct {
	Status SelfRightStatus `json:"status,omitempty"`
}

type SafePowerOffFeedback struct {
	Status SafePowerOffStatus `json:"status,omitempty"`
}

type BatteryChangePoseFeedback struct {
	Status BatteryChangePoseStatus `json:"status,omitempty"`
}

type PayloadEstimationFeedback struct {
	Status           PayloadEstimationStatus `json:"status,omitempty"`
	EstimatedMassKg  float64                 `json:"estimated_mass_kg,omitempty"`
	ProgressFraction float64                 `json:"progress_fraction,omitempty"`
}

type ConstrainedManipulationFeedback struct {
	DesiredWrenchOdomFrame *float64 `json:"desired_wrench_odom_frame,omitempty"`
}

type SE2TrajectoryFeedback struct {
	Status             SE2TrajectoryStatus `json:"status,omitempty"`
	BodyMovementStatus BodyMovementStatus  `json:"body_movement_status,omitempty"`
}

type SE2VelocityFeedback struct{}

type SitFeedback struct {
	Status SitStatus `json:"status,omitempty"`
}

type StandFeedback struct {
	Status StandStatus `json:"status,omitempty"`
}

type StanceFeedback struct {
	Status StanceStatus `json:"status,omitempty"`
}

type FollowArmFeedback struct{}

type ArmCartesianFeedback struct {
	Status                   ArmCartesianStatus `json:"status,omitempty"`
	MeasuredPosTrackingError float64            `json:"measured_pos_tracking_error,omitempty"`
}

type ArmJointMoveFeedback struct {
	Status ArmJointMoveStatus `json:"status,omitempty"`
}

type NamedArmPositionFeedback struct {
	Status NamedArmPositionStatus `json:"status,omitempty"`
}

type ArmGazeFeedback struct {
	Status         GazeStatus `json:"status,omitempty"`
	GazingAtTarget bool       `json:"gazing_at_target,omitempty"`
}

type ClawGripperFeedback struct {
	Status ClawGripperStatus `json:"status,omitempty"`
}
