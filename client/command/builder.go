package command

import (
	"time"

	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	commandv1 "github.com/stridelabs/strider/api/command/v1"
	geometryv1 "github.com/stridelabs/strider/api/geometry/v1"
	trajectoryv1 "github.com/stridelabs/strider/api/trajectory/v1"
	"github.com/stridelabs/strider/client"
)

// Claw gripper joint limits in radians. Fully open is a negative angle.
const (
	clawGripperOpenAngle   = -1.5708
	clawGripperClosedAngle = 0
)

// StopCommand halts all motion. The robot balances on its own.
func StopCommand() *commandv1.RobotCommand {
	return &commandv1.RobotCommand{
		FullBody: &commandv1.FullBodyRequest{Stop: &commandv1.StopRequest{}},
	}
}

// FreezeCommand locks all joints in their current position.
func FreezeCommand() *commandv1.RobotCommand {
	return &commandv1.RobotCommand{
		FullBody: &commandv1.FullBodyRequest{Freeze: &commandv1.FreezeRequest{}},
	}
}

// SelfRightCommand rolls the robot upright.
func SelfRightCommand() *commandv1.RobotCommand {
	return &commandv1.RobotCommand{
		FullBody: &commandv1.FullBodyRequest{SelfRight: &commandv1.SelfRightRequest{}},
	}
}

// SafePowerOffCommand sits the robot down and powers off the motors.
func SafePowerOffCommand() *commandv1.RobotCommand {
	return &commandv1.RobotCommand{
		FullBody: &commandv1.FullBodyRequest{SafePowerOff: &commandv1.SafePowerOffRequest{}},
	}
}

// BatteryChangePoseCommand rolls the robot onto its side so the battery can
// be swapped.
func BatteryChangePoseCommand(hint commandv1.BatteryChangePoseDirectionHint) *commandv1.RobotCommand {
	return &commandv1.RobotCommand{
		FullBody: &commandv1.FullBodyRequest{
			BatteryChangePose: &commandv1.BatteryChangePoseRequest{DirectionHint: hint},
		},
	}
}

// PayloadEstimationCommand runs the payload mass estimation routine.
func PayloadEstimationCommand() *commandv1.RobotCommand {
	return &commandv1.RobotCommand{
		FullBody: &commandv1.FullBodyRequest{PayloadEstimation: &commandv1.PayloadEstimationRequest{}},
	}
}

// ConstrainedManipulationCommand wraps a constrained manipulation task.
func ConstrainedManipulationCommand(task *commandv1.ConstrainedManipulationRequest) *commandv1.RobotCommand {
	return &commandv1.RobotCommand{
		FullBody: &commandv1.FullBodyRequest{ConstrainedManipulation: task},
	}
}

// SynchroStandCommand stands the robot up. params may be nil for defaults.
func SynchroStandCommand(params *commandv1.MobilityParams) *commandv1.RobotCommand {
	return synchroMobility(&commandv1.MobilityCommandRequest{
		Stand:  &commandv1.StandRequest{},
		Params: params,
	})
}

// SynchroSitCommand sits the robot down. params may be nil for defaults.
func SynchroSitCommand(params *commandv1.MobilityParams) *commandv1.RobotCommand {
	return synchroMobility(&commandv1.MobilityCommandRequest{
		Sit:    &commandv1.SitRequest{},
		Params: params,
	})
}

// SynchroVelocityCommand drives the body at the given planar velocity in the
// body frame. The caller supplies the end time at submission.
func SynchroVelocityCommand(vX, vY, vRot float64, params *commandv1.MobilityParams) *commandv1.RobotCommand {
	return synchroMobility(&commandv1.MobilityCommandRequest{
		SE2Velocity: &commandv1.SE2VelocityRequest{
			SE2FrameName: "body",
			Velocity: &geometryv1.SE2Velocity{
				Linear:  &geometryv1.Vec2{X: vX, Y: vY},
				Angular: vRot,
			},
		},
		Params: params,
	})
}

// SynchroTrajectoryCommand drives the body to a planar goal pose in the
// given frame. The caller supplies the end time at submission.
func SynchroTrajectoryCommand(goalX, goalY, heading float64, frameName string, params *commandv1.MobilityParams) *commandv1.RobotCommand {
	return synchroMobility(&commandv1.MobilityCommandRequest{
		SE2Trajectory: &commandv1.SE2TrajectoryRequest{
			SE2FrameName: frameName,
			Trajectory: &trajectoryv1.SE2Trajectory{
				Points: []*trajectoryv1.SE2TrajectoryPoint{{
					Pose: &geometryv1.SE2Pose{
						Position: &geometryv1.Vec2{X: goalX, Y: goalY},
						Angle:    heading,
					},
				}},
			},
		},
		Params: params,
	})
}

// SynchroStanceCommand repositions the four feet to the given planar
// positions in the given frame.
func SynchroStanceCommand(frameName string, posFL, posFR, posHL, posHR *geometryv1.Vec2, params *commandv1.MobilityParams) *commandv1.RobotCommand {
	return synchroMobility(&commandv1.MobilityCommandRequest{
		Stance: &commandv1.StanceRequest{
			Stance: &commandv1.Stance{
				SE2FrameName: frameName,
				FootPositions: map[string]*geometryv1.Vec2{
					"fl": posFL,
					"fr": posFR,
					"hl": posHL,
					"hr": posHR,
				},
			},
		},
		Params: params,
	})
}

// FollowArmCommand keeps the body following the hand.
func FollowArmCommand() *commandv1.RobotCommand {
	return synchroMobility(&commandv1.MobilityCommandRequest{
		FollowArm: &commandv1.FollowArmRequest{},
	})
}

func synchroMobility(mobility *commandv1.MobilityCommandRequest) *commandv1.RobotCommand {
	return &commandv1.RobotCommand{
		Synchronized: &commandv1.SynchronizedCommandRequest{MobilityCommand: mobility},
	}
}

// LegacyVelocityCommand builds a top-level mobility velocity command.
//
// Deprecated: use SynchroVelocityCommand so the command can be combined
// with arm and gripper commands.
func LegacyVelocityCommand(vX, vY, vRot float64, params *commandv1.MobilityParams) *commandv1.RobotCommand {
	return &commandv1.RobotCommand{
		Mobility: &commandv1.MobilityCommandRequest{
			SE2Velocity: &commandv1.SE2VelocityRequest{
				SE2FrameName: "body",
				Velocity: &geometryv1.SE2Velocity{
					Linear:  &geometryv1.Vec2{X: vX, Y: vY},
					Angular: vRot,
				},
			},
			Params: params,
		},
	}
}

// LegacyTrajectoryCommand builds a top-level mobility trajectory command.
//
// Deprecated: use SynchroTrajectoryCommand so the command can be combined
// with arm and gripper commands.
func LegacyTrajectoryCommand(goalX, goalY, heading float64, frameName string, params *commandv1.MobilityParams) *commandv1.RobotCommand {
	return &commandv1.RobotCommand{
		Mobility: &commandv1.MobilityCommandRequest{
			SE2Trajectory: &commandv1.SE2TrajectoryRequest{
				SE2FrameName: frameName,
				Trajectory: &trajectoryv1.SE2Trajectory{
					Points: []*trajectoryv1.SE2TrajectoryPoint{{
						Pose: &geometryv1.SE2Pose{
							Position: &geometryv1.Vec2{X: goalX, Y: goalY},
							Angle:    heading,
						},
					}},
				},
			},
			Params: params,
		},
	}
}

// ArmStowCommand tucks the arm against the body.
func ArmStowCommand() *commandv1.RobotCommand {
	return namedArmPosition(commandv1.NamedArmPositionStow)
}

// ArmReadyCommand deploys the arm to the ready position.
func ArmReadyCommand() *commandv1.RobotCommand {
	return namedArmPosition(commandv1.NamedArmPositionReady)
}

// ArmCarryCommand holds the arm in the carry position.
func ArmCarryCommand() *commandv1.RobotCommand {
	return namedArmPosition(commandv1.NamedArmPositionCarry)
}

func namedArmPosition(pos commandv1.NamedArmPosition) *commandv1.RobotCommand {
	return synchroArm(&commandv1.ArmCommandRequest{
		NamedArmPosition: &commandv1.NamedArmPositionCommand{Position: pos},
	})
}

// ArmPoseCommand moves the hand to a pose in the given frame over the given
// duration.
func ArmPoseCommand(pose *geometryv1.SE3Pose, frameName string, d time.Duration) *commandv1.RobotCommand {
	return synchroArm(&commandv1.ArmCommandRequest{
		ArmCartesian: &commandv1.ArmCartesianCommand{
			RootFrameName: frameName,
			PoseTrajectoryInTask: &trajectoryv1.SE3Trajectory{
				Points: []*trajectoryv1.SE3TrajectoryPoint{{
					Pose:               pose,
					TimeSinceReference: durationpb.New(d),
				}},
			},
		},
	})
}

// ArmWrenchCommand applies a wrench at the hand in the given frame over the
// given duration.
func ArmWrenchCommand(wrench *geometryv1.Wrench, frameName string, d time.Duration) *commandv1.RobotCommand {
	return synchroArm(&commandv1.ArmCommandRequest{
		ArmCartesian: &commandv1.ArmCartesianCommand{
			RootFrameName: frameName,
			WrenchTrajectoryInTask: &trajectoryv1.WrenchTrajectory{
				Points: []*trajectoryv1.WrenchTrajectoryPoint{{
					Wrench:             wrench,
					TimeSinceReference: durationpb.New(d),
				}},
			},
		},
	})
}

// ArmGazeCommand points the hand camera at a fixed target in the given
// frame.
func ArmGazeCommand(target *geometryv1.Vec3, frameName string) *commandv1.RobotCommand {
	return synchroArm(&commandv1.ArmCommandRequest{
		ArmGaze: &commandv1.ArmGazeCommand{
			TargetTrajectoryInFrame: &trajectoryv1.Vec3Trajectory{
				Points: []*trajectoryv1.Vec3TrajectoryPoint{{Point: target}},
			},
			FrameName: frameName,
		},
	})
}

// JointState holds the six arm joint angles in radians, shoulder to wrist.
type JointState [6]float64

// ArmJointMoveCommand moves the arm through the given joint configurations,
// one per entry in times. The two slices must be the same length.
func ArmJointMoveCommand(times []time.Duration, positions []JointState, maxVelocity, maxAcceleration float64) (*commandv1.RobotCommand, error) {
	if len(times) != len(positions) {
		return nil, client.Newf(client.CodeTrajectoryMismatch,
			"joint trajectory has %d times but %d positions", len(times), len(positions))
	}
	if len(times) == 0 {
		return nil, client.New(client.CodeTrajectoryMismatch, "joint trajectory has no points")
	}
	traj := &commandv1.ArmJointTrajectory{}
	if maxVelocity > 0 {
		traj.MaximumVelocity = wrapperspb.Double(maxVelocity)
	}
	if maxAcceleration > 0 {
		traj.MaximumAcceleration = wrapperspb.Double(maxAcceleration)
	}
	for i, t := range times {
		p := positions[i]
		traj.Points = append(traj.Points, &commandv1.ArmJointTrajectoryPoint{
			Position: &commandv1.ArmJointPosition{
				Sh0: wrapperspb.Double(p[0]),
				Sh1: wrapperspb.Double(p[1]),
				El0: wrapperspb.Double(p[2]),
				El1: wrapperspb.Double(p[3]),
				Wr0: wrapperspb.Double(p[4]),
				Wr1: wrapperspb.Double(p[5]),
			},
			TimeSinceReference: durationpb.New(t),
		})
	}
	return synchroArm(&commandv1.ArmCommandRequest{
		ArmJointMove: &commandv1.ArmJointMoveCommand{Trajectory: traj},
	}), nil
}

func synchroArm(arm *commandv1.ArmCommandRequest) *commandv1.RobotCommand {
	return &commandv1.RobotCommand{
		Synchronized: &commandv1.SynchronizedCommandRequest{ArmCommand: arm},
	}
}

// ClawGripperOpenCommand opens the gripper fully.
func ClawGripperOpenCommand() *commandv1.RobotCommand {
	return ClawGripperOpenAngleCommand(clawGripperOpenAngle)
}

// ClawGripperCloseCommand closes the gripper fully.
func ClawGripperCloseCommand() *commandv1.RobotCommand {
	return ClawGripperOpenAngleCommand(clawGripperClosedAngle)
}

// ClawGripperOpenFractionCommand opens the gripper to a fraction of its
// range, 0 closed through 1 open. Out-of-range fractions are clamped.
func ClawGripperOpenFractionCommand(fraction float64) *commandv1.RobotCommand {
	if fraction < 0 {
		fraction = 0
	} else if fraction > 1 {
		fraction = 1
	}
	angle := clawGripperClosedAngle + fraction*(clawGripperOpenAngle-clawGripperClosedAngle)
	return ClawGripperOpenAngleCommand(angle)
}

// ClawGripperOpenAngleCommand drives the gripper joint to the given angle
// in radians.
func ClawGripperOpenAngleCommand(angle float64) *commandv1.RobotCommand {
	return &commandv1.RobotCommand{
		Synchronized: &commandv1.SynchronizedCommandRequest{
			GripperCommand: &commandv1.GripperCommandRequest{
				ClawGripper: &commandv1.ClawGripperRequest{
					Trajectory: &trajectoryv1.ScalarTrajectory{
						Points: []*trajectoryv1.ScalarTrajectoryPoint{{Point: angle}},
					},
				},
			},
		},
	}
}

// BuildSynchroCommand merges commands into one synchronized command, taking
// the arm, mobility and gripper portions of each. When two commands carry
// the same portion the later one wins. Full-body commands cannot be
// combined.
func BuildSynchroCommand(cmds ...*commandv1.RobotCommand) (*commandv1.RobotCommand, error) {
	merged := &commandv1.SynchronizedCommandRequest{}
	for _, cmd := range cmds {
		if cmd == nil {
			continue
		}
		if cmd.FullBody != nil {
			return nil, client.New(client.CodeNotCombinable, "full body commands cannot be combined")
		}
		if cmd.Mobility != nil {
			merged.MobilityCommand = cmd.Mobility
		}
		if sync := cmd.Synchronized; sync != nil {
			if sync.ArmCommand != nil {
				merged.ArmCommand = sync.ArmCommand
			}
			if sync.MobilityCommand != nil {
				merged.MobilityCommand = sync.MobilityCommand
			}
			if sync.GripperCommand != nil {
				merged.GripperCommand = sync.GripperCommand
			}
		}
	}
	if merged.ArmCommand == nil && merged.MobilityCommand == nil && merged.GripperCommand == nil {
		return nil, client.New(client.CodeEmptyCommand, "no commands to combine")
	}
	return &commandv1.RobotCommand{Synchronized: merged}, nil
}

// MobilityParams assembles mobility tuning from the common knobs. A zero
// bodyHeight and nil orientation leave the body control unset.
func MobilityParams(bodyHeight float64, footprintRBody *geometryv1.EulerZXY, hint commandv1.LocomotionHint, stairs commandv1.StairsMode, external *commandv1.BodyExternalForceParams) *commandv1.MobilityParams {
	params := &commandv1.MobilityParams{
		LocomotionHint:      hint,
		StairsMode:          stairs,
		ExternalForceParams: external,
	}
	if bodyHeight != 0 || footprintRBody != nil {
		pose := &geometryv1.SE3Pose{
			Position: &geometryv1.Vec3{Z: bodyHeight},
		}
		if footprintRBody != nil {
			pose.Rotation = footprintRBody.ToQuaternion()
		}
		params.BodyControl = &commandv1.BodyControlParams{
			BaseOffsetRtFootprint: &trajectoryv1.SE3Trajectory{
				Points: []*trajectoryv1.SE3TrajectoryPoint{{Pose: pose}},
			},
		}
	}
	return params
}

// ExternalForceEstimate tells the controller to estimate external body
// forces on its own.
func ExternalForceEstimate() *commandv1.BodyExternalForceParams {
	return &commandv1.BodyExternalForceParams{
		ExternalForceIndicator: commandv1.ExternalForceUseEstimate,
	}
}

// ExternalForceOverride tells the controller to assume a fixed external
// force on the body, given in the named frame.
func ExternalForceOverride(frameName string, force *geometryv1.Vec3) *commandv1.BodyExternalForceParams {
	return &commandv1.BodyExternalForceParams{
		ExternalForceIndicator: commandv1.ExternalForceUseOverride,
		FrameName:              frameName,
		ExternalForceOverride:  force,
	}
}
