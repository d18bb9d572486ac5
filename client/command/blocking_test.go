package command

import (
	"context"
	"errors"
	"testing"
	"time"

	commandv1 "github.com/stridelabs/strider/api/command/v1"
	"github.com/stridelabs/strider/client"
)

func testBlockOptions() BlockOptions {
	now := time.Unix(2000, 0)
	return BlockOptions{
		Timeout:   10 * time.Second,
		Frequency: 1.0,
		Clock: func() time.Time {
			now = now.Add(100 * time.Millisecond)
			return now
		},
		Sleep: func(time.Duration) {},
	}
}

// feedbackSequence returns each feedback in turn, repeating the last one.
func feedbackSequence(fbs ...*commandv1.RobotCommandFeedback) func(*commandv1.RobotCommandFeedbackRequest) (*commandv1.RobotCommandFeedbackResponse, error) {
	i := 0
	return func(*commandv1.RobotCommandFeedbackRequest) (*commandv1.RobotCommandFeedbackResponse, error) {
		fb := fbs[i]
		if i < len(fbs)-1 {
			i++
		}
		return &commandv1.RobotCommandFeedbackResponse{Feedback: fb}, nil
	}
}

func standFeedback(status commandv1.StandStatus) *commandv1.RobotCommandFeedback {
	return &commandv1.RobotCommandFeedback{
		SynchronizedFeedback: &commandv1.SynchronizedFeedback{
			MobilityCommandFeedback: &commandv1.MobilityCommandFeedback{
				Status:        commandv1.FeedbackStatusProcessing,
				StandFeedback: &commandv1.StandFeedback{Status: status},
			},
		},
	}
}

func trajectoryFeedback(status commandv1.SE2TrajectoryStatus, body commandv1.BodyMovementStatus) *commandv1.RobotCommandFeedback {
	return &commandv1.RobotCommandFeedback{
		SynchronizedFeedback: &commandv1.SynchronizedFeedback{
			MobilityCommandFeedback: &commandv1.MobilityCommandFeedback{
				Status: commandv1.FeedbackStatusProcessing,
				SE2TrajectoryFeedback: &commandv1.SE2TrajectoryFeedback{
					Status:             status,
					BodyMovementStatus: body,
				},
			},
		},
	}
}

func TestBlockingStandWaitsForStanding(t *testing.T) {
	transport := &fakeTransport{
		feedback: feedbackSequence(
			standFeedback(commandv1.StandStatusInProgress),
			standFeedback(commandv1.StandStatusInProgress),
			standFeedback(commandv1.StandStatusIsStanding),
		),
	}
	c := NewClient(transport, &fakeEndpoint{})

	if err := BlockingStand(context.Background(), c, testBlockOptions()); err != nil {
		t.Fatalf("blocking stand: %v", err)
	}
	if got := len(transport.feedbackReqs); got != 3 {
		t.Fatalf("expected 3 feedback polls, got %d", got)
	}
}

func TestBlockingStandFailsWhenProcessingStops(t *testing.T) {
	fb := &commandv1.RobotCommandFeedback{
		SynchronizedFeedback: &commandv1.SynchronizedFeedback{
			MobilityCommandFeedback: &commandv1.MobilityCommandFeedback{
				Status: commandv1.FeedbackStatusCommandOverridden,
			},
		},
	}
	transport := &fakeTransport{feedback: feedbackSequence(fb)}
	c := NewClient(transport, &fakeEndpoint{})

	err := BlockingStand(context.Background(), c, testBlockOptions())
	if !errors.Is(err, client.New(client.CodeCommandFailed, "")) {
		t.Fatalf("expected %s, got %v", client.CodeCommandFailed, err)
	}
}

func TestBlockingStandTimesOut(t *testing.T) {
	transport := &fakeTransport{
		feedback: feedbackSequence(standFeedback(commandv1.StandStatusInProgress)),
	}
	c := NewClient(transport, &fakeEndpoint{})

	opts := testBlockOptions()
	opts.Timeout = 2 * time.Second
	err := BlockingStand(context.Background(), c, opts)
	if !errors.Is(err, client.New(client.CodeCommandTimedOut, "")) {
		t.Fatalf("expected %s, got %v", client.CodeCommandTimedOut, err)
	}
}

func TestBlockingSitWaitsForSitting(t *testing.T) {
	sitting := &commandv1.RobotCommandFeedback{
		SynchronizedFeedback: &commandv1.SynchronizedFeedback{
			MobilityCommandFeedback: &commandv1.MobilityCommandFeedback{
				Status:      commandv1.FeedbackStatusProcessing,
				SitFeedback: &commandv1.SitFeedback{Status: commandv1.SitStatusIsSitting},
			},
		},
	}
	transport := &fakeTransport{feedback: feedbackSequence(sitting)}
	c := NewClient(transport, &fakeEndpoint{})

	if err := BlockingSit(context.Background(), c, testBlockOptions()); err != nil {
		t.Fatalf("blocking sit: %v", err)
	}
}

func TestBlockingSelfRightWaitsForCompletion(t *testing.T) {
	completed := &commandv1.RobotCommandFeedback{
		FullBodyFeedback: &commandv1.FullBodyFeedback{
			Status:            commandv1.FeedbackStatusProcessing,
			SelfRightFeedback: &commandv1.SelfRightFeedback{Status: commandv1.SelfRightStatusCompleted},
		},
	}
	transport := &fakeTransport{feedback: feedbackSequence(completed)}
	c := NewClient(transport, &fakeEndpoint{})

	if err := BlockingSelfRight(context.Background(), c, testBlockOptions()); err != nil {
		t.Fatalf("blocking self right: %v", err)
	}
}

func TestBlockingSafePowerOffWaitsForPowerOff(t *testing.T) {
	poweredOff := &commandv1.RobotCommandFeedback{
		FullBodyFeedback: &commandv1.FullBodyFeedback{
			Status:               commandv1.FeedbackStatusProcessing,
			SafePowerOffFeedback: &commandv1.SafePowerOffFeedback{Status: commandv1.SafePowerOffStatusPoweredOff},
		},
	}
	transport := &fakeTransport{feedback: feedbackSequence(poweredOff)}
	c := NewClient(transport, &fakeEndpoint{})

	if err := BlockingSafePowerOff(context.Background(), c, testBlockOptions()); err != nil {
		t.Fatalf("blocking safe power off: %v", err)
	}
}

func TestBlockForTrajectoryAcceptsAtGoal(t *testing.T) {
	transport := &fakeTransport{
		feedback: feedbackSequence(
			trajectoryFeedback(commandv1.SE2TrajectoryStatusGoingToGoal, commandv1.BodyMovementStatusMoving),
			trajectoryFeedback(commandv1.SE2TrajectoryStatusAtGoal, commandv1.BodyMovementStatusSettled),
		),
	}
	c := NewClient(transport, &fakeEndpoint{})

	if err := BlockForTrajectory(context.Background(), c, 7, testBlockOptions()); err != nil {
		t.Fatalf("block for trajectory: %v", err)
	}
}

func TestBlockForTrajectoryAcceptsSettledNearGoal(t *testing.T) {
	transport := &fakeTransport{
		feedback: feedbackSequence(
			trajectoryFeedback(commandv1.SE2TrajectoryStatusNearGoal, commandv1.BodyMovementStatusMoving),
			trajectoryFeedback(commandv1.SE2TrajectoryStatusNearGoal, commandv1.BodyMovementStatusSettled),
		),
	}
	c := NewClient(transport, &fakeEndpoint{})

	if err := BlockForTrajectory(context.Background(), c, 7, testBlockOptions()); err != nil {
		t.Fatalf("block for trajectory: %v", err)
	}
	if got := len(transport.feedbackReqs); got != 2 {
		t.Fatalf("expected 2 polls, got %d", got)
	}
}

func TestBlockUntilArmArrives(t *testing.T) {
	inProgress := &commandv1.RobotCommandFeedback{
		SynchronizedFeedback: &commandv1.SynchronizedFeedback{
			ArmCommandFeedback: &commandv1.ArmCommandFeedback{
				Status: commandv1.FeedbackStatusProcessing,
				NamedArmPositionFeedback: &commandv1.NamedArmPositionFeedback{
					Status: commandv1.NamedArmPositionStatusInProgress,
				},
			},
		},
	}
	arrived := &commandv1.RobotCommandFeedback{
		SynchronizedFeedback: &commandv1.SynchronizedFeedback{
			ArmCommandFeedback: &commandv1.ArmCommandFeedback{
				Status: commandv1.FeedbackStatusProcessing,
				NamedArmPositionFeedback: &commandv1.NamedArmPositionFeedback{
					Status: commandv1.NamedArmPositionStatusComplete,
				},
			},
		},
	}
	transport := &fakeTransport{feedback: feedbackSequence(inProgress, arrived)}
	c := NewClient(transport, &fakeEndpoint{})

	if err := BlockUntilArmArrives(context.Background(), c, 7, testBlockOptions()); err != nil {
		t.Fatalf("block until arm arrives: %v", err)
	}
}

func TestBlockUntilArmArrivesFailsOnStoppedProcessing(t *testing.T) {
	timedOut := &commandv1.RobotCommandFeedback{
		SynchronizedFeedback: &commandv1.SynchronizedFeedback{
			ArmCommandFeedback: &commandv1.ArmCommandFeedback{
				Status: commandv1.FeedbackStatusCommandTimedOut,
			},
		},
	}
	transport := &fakeTransport{feedback: feedbackSequence(timedOut)}
	c := NewClient(transport, &fakeEndpoint{})

	err := BlockUntilArmArrives(context.Background(), c, 7, testBlockOptions())
	if !errors.Is(err, client.New(client.CodeCommandFailed, "")) {
		t.Fatalf("expected %s, got %v", client.CodeCommandFailed, err)
	}
}
