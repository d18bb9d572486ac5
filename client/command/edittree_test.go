package command

import (
	"testing"
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	commandv1 "github.com/stridelabs/strider/api/command/v1"
	trajectoryv1 "github.com/stridelabs/strider/api/trajectory/v1"
	"github.com/stridelabs/strider/client/timesync"
)

var testSkew = 3 * time.Second

func testConverter() timesync.RobotTimeConverter {
	return timesync.RobotTimeConverter{Skew: testSkew}
}

func TestSetEndTimeOnVelocityCommand(t *testing.T) {
	cmd := SynchroVelocityCommand(0.5, 0, 0.1, nil)
	endTime := time.Unix(5000, 0).UTC()

	Apply(cmd, EndTimeTree, SetEndTime(testConverter(), endTime))

	got := cmd.Synchronized.MobilityCommand.SE2Velocity.EndTime
	if got == nil {
		t.Fatal("expected end time to be set")
	}
	if want := endTime.Add(testSkew); !got.AsTime().Equal(want) {
		t.Fatalf("end time = %v, want %v", got.AsTime(), want)
	}
}

func TestSetEndTimeOnTrajectoryAndStanceCommands(t *testing.T) {
	endTime := time.Unix(5000, 0).UTC()

	traj := SynchroTrajectoryCommand(1, 2, 0.5, "odom", nil)
	Apply(traj, EndTimeTree, SetEndTime(testConverter(), endTime))
	if traj.Synchronized.MobilityCommand.SE2Trajectory.EndTime == nil {
		t.Fatal("expected trajectory end time to be set")
	}

	stance := SynchroStanceCommand("odom", nil, nil, nil, nil, nil)
	Apply(stance, EndTimeTree, SetEndTime(testConverter(), endTime))
	if stance.Synchronized.MobilityCommand.Stance.EndTime == nil {
		t.Fatal("expected stance end time to be set")
	}
}

func TestSetEndTimeSkipsCommandsWithoutEndTimes(t *testing.T) {
	stand := SynchroStandCommand(nil)
	Apply(stand, EndTimeTree, SetEndTime(testConverter(), time.Unix(5000, 0)))
	if stand.Synchronized.MobilityCommand.Stand == nil {
		t.Fatal("stand request went missing")
	}

	stop := StopCommand()
	Apply(stop, EndTimeTree, SetEndTime(testConverter(), time.Unix(5000, 0)))
	if stop.FullBody.Stop == nil {
		t.Fatal("stop request went missing")
	}
}

func TestConvertLocalToRobotShiftsReferenceTime(t *testing.T) {
	ref := time.Unix(4000, 250000000).UTC()
	cmd := SynchroTrajectoryCommand(1, 0, 0, "odom", nil)
	cmd.Synchronized.MobilityCommand.SE2Trajectory.Trajectory.ReferenceTime = timestamppb.New(ref)

	Apply(cmd, LocalToRobotTimeTree, ConvertLocalToRobot(testConverter()))

	got := cmd.Synchronized.MobilityCommand.SE2Trajectory.Trajectory.ReferenceTime
	if want := ref.Add(testSkew); !got.AsTime().Equal(want) {
		t.Fatalf("reference time = %v, want %v", got.AsTime(), want)
	}
}

func TestConvertLocalToRobotLeavesUnsetFieldsAlone(t *testing.T) {
	cmd := SynchroTrajectoryCommand(1, 0, 0, "odom", nil)

	Apply(cmd, LocalToRobotTimeTree, ConvertLocalToRobot(testConverter()))

	if cmd.Synchronized.MobilityCommand.SE2Trajectory.EndTime != nil {
		t.Fatal("unset end time should stay unset")
	}
	if cmd.Synchronized.MobilityCommand.SE2Trajectory.Trajectory.ReferenceTime != nil {
		t.Fatal("unset reference time should stay unset")
	}
}

func TestConvertLocalToRobotLeavesEndTimesAlone(t *testing.T) {
	// End times are written in robot time before the conversion pass runs,
	// so the conversion tree must not shift them again.
	endTime := time.Unix(5000, 0).UTC()
	ref := time.Unix(4000, 0).UTC()
	cmd := SynchroTrajectoryCommand(1, 0, 0, "odom", nil)
	Apply(cmd, EndTimeTree, SetEndTime(testConverter(), endTime))
	cmd.Synchronized.MobilityCommand.SE2Trajectory.Trajectory.ReferenceTime = timestamppb.New(ref)

	Apply(cmd, LocalToRobotTimeTree, ConvertLocalToRobot(testConverter()))

	got := cmd.Synchronized.MobilityCommand.SE2Trajectory.EndTime
	if want := endTime.Add(testSkew); !got.AsTime().Equal(want) {
		t.Fatalf("end time = %v, want %v shifted exactly once", got.AsTime(), want)
	}
	refGot := cmd.Synchronized.MobilityCommand.SE2Trajectory.Trajectory.ReferenceTime
	if want := ref.Add(testSkew); !refGot.AsTime().Equal(want) {
		t.Fatalf("reference time = %v, want %v", refGot.AsTime(), want)
	}
}

func TestConvertLocalToRobotReachesArmTrajectories(t *testing.T) {
	ref := time.Unix(4000, 0).UTC()
	cmd, err := ArmJointMoveCommand(
		[]time.Duration{time.Second},
		[]JointState{{0.1, 0.2, 0.3, 0.4, 0.5, 0.6}},
		0, 0,
	)
	if err != nil {
		t.Fatalf("build joint move: %v", err)
	}
	cmd.Synchronized.ArmCommand.ArmJointMove.Trajectory.ReferenceTime = timestamppb.New(ref)

	Apply(cmd, LocalToRobotTimeTree, ConvertLocalToRobot(testConverter()))

	got := cmd.Synchronized.ArmCommand.ArmJointMove.Trajectory.ReferenceTime
	if want := ref.Add(testSkew); !got.AsTime().Equal(want) {
		t.Fatalf("reference time = %v, want %v", got.AsTime(), want)
	}
}

func TestConvertLocalToRobotReachesGripperTrajectory(t *testing.T) {
	ref := time.Unix(4000, 0).UTC()
	cmd := ClawGripperOpenCommand()
	cmd.Synchronized.GripperCommand.ClawGripper.Trajectory.ReferenceTime = timestamppb.New(ref)

	Apply(cmd, LocalToRobotTimeTree, ConvertLocalToRobot(testConverter()))

	got := cmd.Synchronized.GripperCommand.ClawGripper.Trajectory.ReferenceTime
	if want := ref.Add(testSkew); !got.AsTime().Equal(want) {
		t.Fatalf("reference time = %v, want %v", got.AsTime(), want)
	}
}

func TestApplyStopsAtUnlistedUnionVariant(t *testing.T) {
	// A sit command is a union variant the end time tree does not mention,
	// so the walk must end there without touching anything.
	cmd := SynchroSitCommand(nil)
	edits := 0
	Apply(cmd, EndTimeTree, func(string, any) { edits++ })
	if edits != 0 {
		t.Fatalf("expected no edits, got %d", edits)
	}
}

func TestApplyHandlesEmptyCommand(t *testing.T) {
	edits := 0
	Apply(&commandv1.RobotCommand{}, EndTimeTree, func(string, any) { edits++ })
	if edits != 0 {
		t.Fatalf("expected no edits on an empty command, got %d", edits)
	}
}

func TestConvertLocalToRobotMutatesInPlace(t *testing.T) {
	ref := time.Unix(4000, 0).UTC()
	ts := timestamppb.New(ref)
	traj := &trajectoryv1.SE2Trajectory{ReferenceTime: ts}
	cmd := SynchroTrajectoryCommand(1, 0, 0, "odom", nil)
	cmd.Synchronized.MobilityCommand.SE2Trajectory.Trajectory = traj

	Apply(cmd, LocalToRobotTimeTree, ConvertLocalToRobot(testConverter()))

	// The same timestamp value is rewritten, not replaced.
	if traj.ReferenceTime != ts {
		t.Fatal("expected the original timestamp to be edited in place")
	}
	if want := ref.Add(testSkew); !ts.AsTime().Equal(want) {
		t.Fatalf("timestamp = %v, want %v", ts.AsTime(), want)
	}
}
