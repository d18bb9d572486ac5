// Package commandv1 defines the robot command wire messages. Command
// payloads are tagged unions: one variant pointer is set per union, and the
// edit methods let callers walk a command the way the service numbers its
// fields without reflecting over it.
package commandv1

import (
	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/timestamppb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	geometryv1 "github.com/stridelabs/strider/api/geometry/v1"
	leasev1 "github.com/stridelabs/strider/api/lease/v1"
	trajectoryv1 "github.com/stridelabs/strider/api/trajectory/v1"
)

// RobotCommand is the top-level command union. Exactly one of the variant
// pointers should be set.
type RobotCommand struct {
	FullBody     *FullBodyRequest            `json:"full_body_command,omitempty"`
	Mobility     *MobilityCommandRequest     `json:"mobility_command,omitempty"`
	Synchronized *SynchronizedCommandRequest `json:"synchronized_command,omitempty"`
}

// ActiveOneof reports the set variant of the named union, or ("", nil) when
// no variant is set.
func (c *RobotCommand) ActiveOneof(name string) (string, any) {
	if name != "command" {
		return "", nil
	}
	switch {
	case c.FullBody != nil:
		return "full_body_command", c.FullBody
	case c.Mobility != nil:
		return "mobility_command", c.Mobility
	case c.Synchronized != nil:
		return "synchronized_command", c.Synchronized
	}
	return "", nil
}

// FullBodyRequest commands the whole robot at once. Exactly one variant
// pointer should be set.
type FullBodyRequest struct {
	Stop                    *StopRequest                    `json:"stop_request,omitempty"`
	Freeze                  *FreezeRequest                  `json:"freeze_request,omitempty"`
	SelfRight               *SelfRightRequest               `json:"selfright_request,omitempty"`
	SafePowerOff            *SafePowerOffRequest            `json:"safe_power_off_request,omitempty"`
	BatteryChangePose       *BatteryChangePoseRequest       `json:"battery_change_pose_request,omitempty"`
	PayloadEstimation       *PayloadEstimationRequest       `json:"payload_estimation_request,omitempty"`
	ConstrainedManipulation *ConstrainedManipulationRequest `json:"constrained_manipulation_request,omitempty"`
}

func (r *FullBodyRequest) ActiveOneof(name string) (string, any) {
	if name != "command" {
		return "", nil
	}
	switch {
	case r.Stop != nil:
		return "stop_request", r.Stop
	case r.Freeze != nil:
		return "freeze_request", r.Freeze
	case r.SelfRight != nil:
		return "selfright_request", r.SelfRight
	case r.SafePowerOff != nil:
		return "safe_power_off_request", r.SafePowerOff
	case r.BatteryChangePose != nil:
		return "battery_change_pose_request", r.BatteryChangePose
	case r.PayloadEstimation != nil:
		return "payload_estimation_request", r.PayloadEstimation
	case r.ConstrainedManipulation != nil:
		return "constrained_manipulation_request", r.ConstrainedManipulation
	}
	return "", nil
}

// SynchronizedCommandRequest coordinates arm, mobility and gripper commands
// in a single request. Any subset of the three may be set.
type SynchronizedCommandRequest struct {
	ArmCommand      *ArmCommandRequest      `json:"arm_command,omitempty"`
	MobilityCommand *MobilityCommandRequest `json:"mobility_command,omitempty"`
	GripperCommand  *GripperCommandRequest  `json:"gripper_command,omitempty"`
}

// EditField reports the named child message, or nil when unset.
func (r *SynchronizedCommandRequest) EditField(name string) any {
	switch name {
	case "arm_command":
		if r.ArmCommand != nil {
			return r.ArmCommand
		}
	case "mobility_command":
		if r.MobilityCommand != nil {
			return r.MobilityCommand
		}
	case "gripper_command":
		if r.GripperCommand != nil {
			return r.GripperCommand
		}
	}
	return nil
}

// MobilityCommandRequest commands the robot's locomotion. Exactly one
// variant pointer should be set.
type MobilityCommandRequest struct {
	SE2Trajectory *SE2TrajectoryRequest `json:"se2_trajectory_request,omitempty"`
	SE2Velocity   *SE2VelocityRequest   `json:"se2_velocity_request,omitempty"`
	Sit           *SitRequest           `json:"sit_request,omitempty"`
	Stand         *StandRequest         `json:"stand_request,omitempty"`
	Stance        *StanceRequest        `json:"stance_request,omitempty"`
	FollowArm     *FollowArmRequest     `json:"follow_arm_request,omitempty"`

	Params *MobilityParams `json:"params,omitempty"`
}

func (r *MobilityCommandRequest) ActiveOneof(name string) (string, any) {
	if name != "command" {
		return "", nil
	}
	switch {
	case r.SE2Trajectory != nil:
		return "se2_trajectory_request", r.SE2Trajectory
	case r.SE2Velocity != nil:
		return "se2_velocity_request", r.SE2Velocity
	case r.Sit != nil:
		return "sit_request", r.Sit
	case r.Stand != nil:
		return "stand_request", r.Stand
	case r.Stance != nil:
		return "stance_request", r.Stance
	case r.FollowArm != nil:
		return "follow_arm_request", r.FollowArm
	}
	return "", nil
}

// ArmCommandRequest commands the arm. Exactly one variant pointer should be
// set.
type ArmCommandRequest struct {
	ArmCartesian     *ArmCartesianCommand     `json:"arm_cartesian_command,omitempty"`
	ArmJointMove     *ArmJointMoveCommand     `json:"arm_joint_move_command,omitempty"`
	NamedArmPosition *NamedArmPositionCommand `json:"named_arm_position_command,omitempty"`
	ArmVelocity      *ArmVelocityCommand      `json:"arm_velocity_command,omitempty"`
	ArmGaze          *ArmGazeCommand          `json:"arm_gaze_command,omitempty"`
	ArmImpedance     *ArmImpedanceCommand     `json:"arm_impedance_command,omitempty"`
}

func (r *ArmCommandRequest) ActiveOneof(name string) (string, any) {
	if name != "command" {
		return "", nil
	}
	switch {
	case r.ArmCartesian != nil:
		return "arm_cartesian_command", r.ArmCartesian
	case r.ArmJointMove != nil:
		return "arm_joint_move_command", r.ArmJointMove
	case r.NamedArmPosition != nil:
		return "named_arm_position_command", r.NamedArmPosition
	case r.ArmVelocity != nil:
		return "arm_velocity_command", r.ArmVelocity
	case r.ArmGaze != nil:
		return "arm_gaze_command", r.ArmGaze
	case r.ArmImpedance != nil:
		return "arm_impedance_command", r.ArmImpedance
	}
	return "", nil
}

// GripperCommandRequest commands the gripper. Exactly one variant pointer
// should be set.
type GripperCommandRequest struct {
	ClawGripper *ClawGripperRequest `json:"claw_gripper_command,omitempty"`
}

func (r *GripperCommandRequest) ActiveOneof(name string) (string, any) {
	if name != "command" {
		return "", nil
	}
	if r.ClawGripper != nil {
		return "claw_gripper_command", r.ClawGripper
	}
	return "", nil
}

// StopRequest halts all motion. The robot holds a safe position on its own.
type StopRequest struct{}

// FreezeRequest locks all joints in place immediately.
type FreezeRequest struct{}

// SelfRightRequest rolls the robot upright from any orientation.
type SelfRightRequest struct{}

// SafePowerOffRequest sits the robot down and powers off the motors.
type SafePowerOffRequest struct {
	UnsafeAction SafePowerOffUnsafeAction `json:"unsafe_action,omitempty"`
}

// BatteryChangePoseRequest rolls the robot onto its side for a battery swap.
type BatteryChangePoseRequest struct {
	DirectionHint BatteryChangePoseDirectionHint `json:"direction_hint,omitempty"`
}

// PayloadEstimationRequest runs the payload mass estimation routine.
type PayloadEstimationRequest struct{}

// ConstrainedManipulationRequest drives a constrained-manipulation task such
// as a crank or lever with the arm.
type ConstrainedManipulationRequest struct {
	EndTime                    *timestamppb.Timestamp      `json:"end_time,omitempty"`
	TaskType                   ConstrainedManipulationTask `json:"task_type,omitempty"`
	FrameName                  string                      `json:"frame_name,omitempty"`
	InitWrenchDirectionInFrame *geometryv1.Wrench          `json:"init_wrench_direction_in_frame_name,omitempty"`
	TangentialSpeed            *wrapperspb.DoubleValue     `json:"tangential_speed,omitempty"`
	RotationalSpeed            *wrapperspb.DoubleValue     `json:"rotational_speed,omitempty"`
}

func (r *ConstrainedManipulationRequest) EditTimestamp(name string) *timestamppb.Timestamp {
	if name == "end_time" {
		return r.EndTime
	}
	return nil
}

func (r *ConstrainedManipulationRequest) SetTimestamp(name string, ts *timestamppb.Timestamp) {
	if name == "end_time" {
		r.EndTime = ts
	}
}

// SE2TrajectoryRequest drives the body along a planar trajectory.
type SE2TrajectoryRequest struct {
	EndTime      *timestamppb.Timestamp      `json:"end_time,omitempty"`
	SE2FrameName string                      `json:"se2_frame_name,omitempty"`
	Trajectory   *trajectoryv1.SE2Trajectory `json:"trajectory,omitempty"`
}

func (r *SE2TrajectoryRequest) EditTimestamp(name string) *timestamppb.Timestamp {
	if name == "end_time" {
		return r.EndTime
	}
	return nil
}

func (r *SE2TrajectoryRequest) SetTimestamp(name string, ts *timestamppb.Timestamp) {
	if name == "end_time" {
		r.EndTime = ts
	}
}

func (r *SE2TrajectoryRequest) EditField(name string) any {
	if name == "trajectory" && r.Trajectory != nil {
		return r.Trajectory
	}
	return nil
}

// SE2VelocityRequest drives the body at a constant planar velocity until the
// end time.
type SE2VelocityRequest struct {
	EndTime       *timestamppb.Timestamp  `json:"end_time,omitempty"`
	SE2FrameName  string                  `json:"se2_frame_name,omitempty"`
	Velocity      *geometryv1.SE2Velocity `json:"velocity,omitempty"`
	SlewRateLimit *geometryv1.Vec2        `json:"slew_rate_limit,omitempty"`
}

func (r *SE2VelocityRequest) EditTimestamp(name string) *timestamppb.Timestamp {
	if name == "end_time" {
		return r.EndTime
	}
	return nil
}

func (r *SE2VelocityRequest) SetTimestamp(name string, ts *timestamppb.Timestamp) {
	if name == "end_time" {
		r.EndTime = ts
	}
}

// SitRequest sits the robot down.
type SitRequest struct{}

// StandRequest stands the robot up to a nominal pose.
type StandRequest struct{}

// StanceRequest repositions the feet to the given footprint.
type StanceRequest struct {
	EndTime *timestamppb.Timestamp `json:"end_time,omitempty"`
	Stance  *Stance                `json:"stance,omitempty"`
}

func (r *StanceRequest) EditTimestamp(name string) *timestamppb.Timestamp {
	if name == "end_time" {
		return r.EndTime
	}
	return nil
}

func (r *StanceRequest) SetTimestamp(name string, ts *timestamppb.Timestamp) {
	if name == "end_time" {
		r.EndTime = ts
	}
}

// Stance gives per-foot target positions in a planar frame.
type Stance struct {
	SE2FrameName  string                      `json:"se2_frame_name,omitempty"`
	FootPositions map[string]*geometryv1.Vec2 `json:"foot_positions,omitempty"`
	Accuracy      float64                     `json:"accuracy,omitempty"`
}

// FollowArmRequest keeps the body following the arm's hand.
type FollowArmRequest struct {
	BodyOffsetFromHand *geometryv1.Vec3 `json:"body_offset_from_hand,omitempty"`
	DisableWalking     bool             `json:"disable_walking,omitempty"`
}

// ArmCartesianCommand moves the hand along Cartesian trajectories expressed
// in a task frame.
type ArmCartesianCommand struct {
	RootFrameName          string                         `json:"root_frame_name,omitempty"`
	RootTmTask             *geometryv1.SE3Pose            `json:"root_tform_task,omitempty"`
	PoseTrajectoryInTask   *trajectoryv1.SE3Trajectory    `json:"pose_trajectory_in_task,omitempty"`
	WrenchTrajectoryInTask *trajectoryv1.WrenchTrajectory `json:"wrench_trajectory_in_task,omitempty"`
	MaximumAcceleration    *wrapperspb.DoubleValue        `json:"maximum_acceleration,omitempty"`
}

func (c *ArmCartesianCommand) EditField(name string) any {
	switch name {
	case "pose_trajectory_in_task":
		if c.PoseTrajectoryInTask != nil {
			return c.PoseTrajectoryInTask
		}
	case "wrench_trajectory_in_task":
		if c.WrenchTrajectoryInTask != nil {
			return c.WrenchTrajectoryInTask
		}
	}
	return nil
}

// ArmJointMoveCommand moves the arm through joint-space waypoints.
type ArmJointMoveCommand struct {
	Trajectory *ArmJointTrajectory `json:"trajectory,omitempty"`
}

func (c *ArmJointMoveCommand) EditField(name string) any {
	if name == "trajectory" && c.Trajectory != nil {
		return c.Trajectory
	}
	return nil
}

// ArmJointTrajectory is a timed sequence of joint configurations.
type ArmJointTrajectory struct {
	Points              []*ArmJointTrajectoryPoint `json:"points,omitempty"`
	ReferenceTime       *timestamppb.Timestamp     `json:"reference_time,omitempty"`
	MaximumVelocity     *wrapperspb.DoubleValue    `json:"maximum_velocity,omitempty"`
	MaximumAcceleration *wrapperspb.DoubleValue    `json:"maximum_acceleration,omitempty"`
}

func (t *ArmJointTrajectory) EditTimestamp(name string) *timestamppb.Timestamp {
	if name == "reference_time" {
		return t.ReferenceTime
	}
	return nil
}

// ArmJointTrajectoryPoint is one joint configuration along a trajectory.
type ArmJointTrajectoryPoint struct {
	Position           *ArmJointPosition    `json:"position,omitempty"`
	TimeSinceReference *durationpb.Duration `json:"time_since_reference,omitempty"`
}

// ArmJointPosition holds the six arm joint angles in radians. Unset joints
// are left where they are.
type ArmJointPosition struct {
	Sh0 *wrapperspb.DoubleValue `json:"sh0,omitempty"`
	Sh1 *wrapperspb.DoubleValue `json:"sh1,omitempty"`
	El0 *wrapperspb.DoubleValue `json:"el0,omitempty"`
	El1 *wrapperspb.DoubleValue `json:"el1,omitempty"`
	Wr0 *wrapperspb.DoubleValue `json:"wr0,omitempty"`
	Wr1 *wrapperspb.DoubleValue `json:"wr1,omitempty"`
}

// NamedArmPositionCommand moves the arm to a predefined configuration.
type NamedArmPositionCommand struct {
	Position NamedArmPosition `json:"position,omitempty"`
}

// ArmVelocityCommand moves the hand at a commanded velocity until the end
// time.
type ArmVelocityCommand struct {
	EndTime         *timestamppb.Timestamp `json:"end_time,omitempty"`
	FrameName       string                 `json:"frame_name,omitempty"`
	LinearVelocity  *geometryv1.Vec3       `json:"linear_velocity,omitempty"`
	AngularVelocity *geometryv1.Vec3       `json:"angular_velocity,omitempty"`
}

func (c *ArmVelocityCommand) EditTimestamp(name string) *timestamppb.Timestamp {
	if name == "end_time" {
		return c.EndTime
	}
	return nil
}

func (c *ArmVelocityCommand) SetTimestamp(name string, ts *timestamppb.Timestamp) {
	if name == "end_time" {
		c.EndTime = ts
	}
}

// ArmGazeCommand points the hand camera at a moving target.
type ArmGazeCommand struct {
	TargetTrajectoryInFrame *trajectoryv1.Vec3Trajectory `json:"target_trajectory_in_frame,omitempty"`
	FrameName               string                       `json:"frame_name,omitempty"`
	ToolTrajectoryInFrame   *trajectoryv1.SE3Trajectory  `json:"tool_trajectory_in_frame,omitempty"`
	Frame2Name              string                       `json:"frame2_name,omitempty"`
}

func (c *ArmGazeCommand) EditField(name string) any {
	switch name {
	case "target_trajectory_in_frame":
		if c.TargetTrajectoryInFrame != nil {
			return c.TargetTrajectoryInFrame
		}
	case "tool_trajectory_in_frame":
		if c.ToolTrajectoryInFrame != nil {
			return c.ToolTrajectoryInFrame
		}
	}
	return nil
}

// ArmImpedanceCommand moves the hand with a commanded stiffness about a
// desired tool trajectory.
type ArmImpedanceCommand struct {
	RootFrameName     string                      `json:"root_frame_name,omitempty"`
	TaskTmDesiredTool *trajectoryv1.SE3Trajectory `json:"task_tform_desired_tool,omitempty"`
}

func (c *ArmImpedanceCommand) EditField(name string) any {
	if name == "task_tform_desired_tool" && c.TaskTmDesiredTool != nil {
		return c.TaskTmDesiredTool
	}
	return nil
}

// ClawGripperRequest drives the gripper along a scalar angle trajectory.
type ClawGripperRequest struct {
	Trajectory            *trajectoryv1.ScalarTrajectory `json:"trajectory,omitempty"`
	MaximumTorque         *wrapperspb.DoubleValue        `json:"maximum_torque,omitempty"`
	DisableForceOnContact bool                           `json:"disable_force_on_contact,omitempty"`
}

func (r *ClawGripperRequest) EditField(name string) any {
	if name == "trajectory" && r.Trajectory != nil {
		return r.Trajectory
	}
	return nil
}

// MobilityParams tunes how mobility commands execute.
type MobilityParams struct {
	VelLimit            *SE2VelocityLimit        `json:"vel_limit,omitempty"`
	BodyControl         *BodyControlParams       `json:"body_control,omitempty"`
	LocomotionHint      LocomotionHint           `json:"locomotion_hint,omitempty"`
	StairsMode          StairsMode               `json:"stairs_mode,omitempty"`
	ExternalForceParams *BodyExternalForceParams `json:"external_force_params,omitempty"`
}

// SE2VelocityLimit bounds commanded planar velocities.
type SE2VelocityLimit struct {
	MaxVel *geometryv1.SE2Velocity `json:"max_vel,omitempty"`
	MinVel *geometryv1.SE2Velocity `json:"min_vel,omitempty"`
}

// BodyControlParams shapes the body pose relative to the footprint.
type BodyControlParams struct {
	BaseOffsetRtFootprint *trajectoryv1.SE3Trajectory `json:"base_offset_rt_footprint,omitempty"`
}

// BodyExternalForceParams tells the controller about forces on the body that
// it cannot sense.
type BodyExternalForceParams struct {
	ExternalForceIndicator ExternalForceIndicator `json:"external_force_indicator,omitempty"`
	FrameName              string                 `json:"frame_name,omitempty"`
	ExternalForceOverride  *geometryv1.Vec3       `json:"external_force_override,omitempty"`
}

// RobotCommandRequest submits a command for execution.
type RobotCommandRequest struct {
	Lease           *leasev1.Lease `json:"lease,omitempty"`
	Command         *RobotCommand  `json:"command,omitempty"`
	ClockIdentifier string         `json:"clock_identifier,omitempty"`
}

// RobotCommandResponse is the acceptance result for a submitted command.
type RobotCommandResponse struct {
	Status         RobotCommandStatus `json:"status,omitempty"`
	Message        string             `json:"message,omitempty"`
	RobotCommandID uint32             `json:"robot_command_id,omitempty"`
}

// RobotCommandFeedbackRequest polls execution progress for a command.
type RobotCommandFeedbackRequest struct {
	RobotCommandID uint32 `json:"robot_command_id,omitempty"`
}

// RobotCommandFeedbackResponse carries the current execution state.
type RobotCommandFeedbackResponse struct {
	Feedback *RobotCommandFeedback `json:"feedback,omitempty"`
}

// ClearBehaviorFaultRequest asks the robot to clear a behavior fault.
type ClearBehaviorFaultRequest struct {
	Lease           *leasev1.Lease `json:"lease,omitempty"`
	BehaviorFaultID uint32         `json:"behavior_fault_id,omitempty"`
}

// ClearBehaviorFaultResponse reports whether the fault cleared.
type ClearBehaviorFaultResponse struct {
	Status ClearBehaviorFaultStatus `json:"status,omitempty"`
}
