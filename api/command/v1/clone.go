package commandv1

import (
	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/timestamppb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	geometryv1 "github.com/stridelabs/strider/api/geometry/v1"
)

func cloneTimestamp(ts *timestamppb.Timestamp) *timestamppb.Timestamp {
	if ts == nil {
		return nil
	}
	return &timestamppb.Timestamp{Seconds: ts.Seconds, Nanos: ts.Nanos}
}

func cloneDuration(d *durationpb.Duration) *durationpb.Duration {
	if d == nil {
		return nil
	}
	return &durationpb.Duration{Seconds: d.Seconds, Nanos: d.Nanos}
}

func cloneDouble(v *wrapperspb.DoubleValue) *wrapperspb.DoubleValue {
	if v == nil {
		return nil
	}
	return &wrapperspb.DoubleValue{Value: v.Value}
}

// Clone returns a deep copy of the command.
func (c *RobotCommand) Clone() *RobotCommand {
	if c == nil {
		return nil
	}
	return &RobotCommand{
		FullBody:     c.FullBody.Clone(),
		Mobility:     c.Mobility.Clone(),
		Synchronized: c.Synchronized.Clone(),
	}
}

// Clone returns a deep copy of the request.
func (r *FullBodyRequest) Clone() *FullBodyRequest {
	if r == nil {
		return nil
	}
	c := &FullBodyRequest{}
	if r.Stop != nil {
		c.Stop = &StopRequest{}
	}
	if r.Freeze != nil {
		c.Freeze = &FreezeRequest{}
	}
	if r.SelfRight != nil {
		c.SelfRight = &SelfRightRequest{}
	}
	if r.SafePowerOff != nil {
		c.SafePowerOff = &SafePowerOffRequest{UnsafeAction: r.SafePowerOff.UnsafeAction}
	}
	if r.BatteryChangePose != nil {
		c.BatteryChangePose = &BatteryChangePoseRequest{DirectionHint: r.BatteryChangePose.DirectionHint}
	}
	if r.PayloadEstimation != nil {
		c.PayloadEstimation = &PayloadEstimationRequest{}
	}
	if r.ConstrainedManipulation != nil {
		cm := r.ConstrainedManipulation
		c.ConstrainedManipulation = &ConstrainedManipulationRequest{
			EndTime:                    cloneTimestamp(cm.EndTime),
			TaskType:                   cm.TaskType,
			FrameName:                  cm.FrameName,
			InitWrenchDirectionInFrame: cm.InitWrenchDirectionInFrame.Clone(),
			TangentialSpeed:            cloneDouble(cm.TangentialSpeed),
			RotationalSpeed:            cloneDouble(cm.RotationalSpeed),
		}
	}
	return c
}

// Clone returns a deep copy of the request.
func (r *SynchronizedCommandRequest) Clone() *SynchronizedCommandRequest {
	if r == nil {
		return nil
	}
	return &SynchronizedCommandRequest{
		ArmCommand:      r.ArmCommand.Clone(),
		MobilityCommand: r.MobilityCommand.Clone(),
		GripperCommand:  r.GripperCommand.Clone(),
	}
}

// Clone returns a deep copy of the request.
func (r *MobilityCommandRequest) Clone() *MobilityCommandRequest {
	if r == nil {
		return nil
	}
	c := &MobilityCommandRequest{Params: r.Params.Clone()}
	if r.SE2Trajectory != nil {
		c.SE2Trajectory = &SE2TrajectoryRequest{
			EndTime:      cloneTimestamp(r.SE2Trajectory.EndTime),
			SE2FrameName: r.SE2Trajectory.SE2FrameName,
			Trajectory:   r.SE2Trajectory.Trajectory.Clone(),
		}
	}
	if r.SE2Velocity != nil {
		c.SE2Velocity = &SE2VelocityRequest{
			EndTime:       cloneTimestamp(r.SE2Velocity.EndTime),
			SE2FrameName:  r.SE2Velocity.SE2FrameName,
			Velocity:      r.SE2Velocity.Velocity.Clone(),
			SlewRateLimit: r.SE2Velocity.SlewRateLimit.Clone(),
		}
	}
	if r.Sit != nil {
		c.Sit = &SitRequest{}
	}
	if r.Stand != nil {
		c.Stand = &StandRequest{}
	}
	if r.Stance != nil {
		c.Stance = &StanceRequest{
			EndTime: cloneTimestamp(r.Stance.EndTime),
			Stance:  r.Stance.Stance.Clone(),
		}
	}
	if r.FollowArm != nil {
		c.FollowArm = &FollowArmRequest{
			BodyOffsetFromHand: r.FollowArm.BodyOffsetFromHand.Clone(),
			DisableWalking:     r.FollowArm.DisableWalking,
		}
	}
	return c
}

// Clone returns a deep copy of the stance.
func (s *Stance) Clone() *Stance {
	if s == nil {
		return nil
	}
	c := &Stance{SE2FrameName: s.SE2FrameName, Accuracy: s.Accuracy}
	if s.FootPositions != nil {
		c.FootPositions = make(map[string]*geometryv1.Vec2, len(s.FootPositions))
		for k, v := range s.FootPositions {
			c.FootPositions[k] = v.Clone()
		}
	}
	return c
}

// Clone returns a deep copy of the request.
func (r *ArmCommandRequest) Clone() *ArmCommandRequest {
	if r == nil {
		return nil
	}
	c := &ArmCommandRequest{}
	if r.ArmCartesian != nil {
		c.ArmCartesian = &ArmCartesianCommand{
			RootFrameName:          r.ArmCartesian.RootFrameName,
			RootTmTask:             r.ArmCartesian.RootTmTask.Clone(),
			PoseTrajectoryInTask:   r.ArmCartesian.PoseTrajectoryInTask.Clone(),
			WrenchTrajectoryInTask: r.ArmCartesian.WrenchTrajectoryInTask.Clone(),
			MaximumAcceleration:    cloneDouble(r.ArmCartesian.MaximumAcceleration),
		}
	}
	if r.ArmJointMove != nil {
		c.ArmJointMove = &ArmJointMoveCommand{Trajectory: r.ArmJointMove.Trajectory.Clone()}
	}
	if r.NamedArmPosition != nil {
		c.NamedArmPosition = &NamedArmPositionCommand{Position: r.NamedArmPosition.Position}
	}
	if r.ArmVelocity != nil {
		c.ArmVelocity = &ArmVelocityCommand{
			EndTime:         cloneTimestamp(r.ArmVelocity.EndTime),
			FrameName:       r.ArmVelocity.FrameName,
			LinearVelocity:  r.ArmVelocity.LinearVelocity.Clone(),
			AngularVelocity: r.ArmVelocity.AngularVelocity.Clone(),
		}
	}
	if r.ArmGaze != nil {
		c.ArmGaze = &ArmGazeCommand{
			TargetTrajectoryInFrame: r.ArmGaze.TargetTrajectoryInFrame.Clone(),
			FrameName:               r.ArmGaze.FrameName,
			ToolTrajectoryInFrame:   r.ArmGaze.ToolTrajectoryInFrame.Clone(),
			Frame2Name:              r.ArmGaze.Frame2Name,
		}
	}
	if r.ArmImpedance != nil {
		c.ArmImpedance = &ArmImpedanceCommand{
			RootFrameName:     r.ArmImpedance.RootFrameName,
			TaskTmDesiredTool: r.ArmImpedance.TaskTmDesiredTool.Clone(),
		}
	}
	return c
}

// Clone returns a deep copy of the trajectory.
func (t *ArmJointTrajectory) Clone() *ArmJointTrajectory {
	if t == nil {
		return nil
	}
	c := &ArmJointTrajectory{
		ReferenceTime:       cloneTimestamp(t.ReferenceTime),
		MaximumVelocity:     cloneDouble(t.MaximumVelocity),
		MaximumAcceleration: cloneDouble(t.MaximumAcceleration),
	}
	for _, p := range t.Points {
		c.Points = append(c.Points, &ArmJointTrajectoryPoint{
			Position:           p.Position.Clone(),
			TimeSinceReference: cloneDuration(p.TimeSinceReference),
		})
	}
	return c
}

// Clone returns a deep copy of the joint position.
func (p *ArmJointPosition) Clone() *ArmJointPosition {
	if p == nil {
		return nil
	}
	return &ArmJointPosition{
		Sh0: cloneDouble(p.Sh0),
		Sh1: cloneDouble(p.Sh1),
		El0: cloneDouble(p.El0),
		El1: cloneDouble(p.El1),
		Wr0: cloneDouble(p.Wr0),
		Wr1: cloneDouble(p.Wr1),
	}
}

// Clone returns a deep copy of the request.
func (r *GripperCommandRequest) Clone() *GripperCommandRequest {
	if r == nil {
		return nil
	}
	c := &GripperCommandRequest{}
	if r.ClawGripper != nil {
		c.ClawGripper = &ClawGripperRequest{
			Trajectory:            r.ClawGripper.Trajectory.Clone(),
			MaximumTorque:         cloneDouble(r.ClawGripper.MaximumTorque),
			DisableForceOnContact: r.ClawGripper.DisableForceOnContact,
		}
	}
	return c
}

// Clone returns a deep copy of the params.
func (p *MobilityParams) Clone() *MobilityParams {
	if p == nil {
		return nil
	}
	c := &MobilityParams{LocomotionHint: p.LocomotionHint, StairsMode: p.StairsMode}
	if p.VelLimit != nil {
		c.VelLimit = &SE2VelocityLimit{
			MaxVel: p.VelLimit.MaxVel.Clone(),
			MinVel: p.VelLimit.MinVel.Clone(),
		}
	}
	if p.BodyControl != nil {
		c.BodyControl = &BodyControlParams{
			BaseOffsetRtFootprint: p.BodyControl.BaseOffsetRtFootprint.Clone(),
		}
	}
	if p.ExternalForceParams != nil {
		c.ExternalForceParams = &BodyExternalForceParams{
			ExternalForceIndicator: p.ExternalForceParams.ExternalForceIndicator,
			FrameName:              p.ExternalForceParams.FrameName,
			ExternalForceOverride:  p.ExternalForceParams.ExternalForceOverride.Clone(),
		}
	}
	return c
}

// Clone returns a deep copy of the request.
func (r *RobotCommandRequest) Clone() *RobotCommandRequest {
	if r == nil {
		return nil
	}
	return &RobotCommandRequest{
		Lease:           r.Lease.Clone(),
		Command:         r.Command.Clone(),
		ClockIdentifier: r.ClockIdentifier,
	}
}
