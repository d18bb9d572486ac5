package command

import (
	"context"
	"time"

	commandv1 "github.com/stridelabs/strider/api/command/v1"
	leasev1 "github.com/stridelabs/strider/api/lease/v1"
	"github.com/stridelabs/strider/client"
)

// BlockOptions tunes a blocking command helper. The zero value polls at
// 1 Hz for 10 seconds against the real clock.
type BlockOptions struct {
	Timeout   time.Duration
	Frequency float64
	Params    *commandv1.MobilityParams
	Lease     *leasev1.Lease

	Clock func() time.Time
	Sleep func(time.Duration)
}

func (o BlockOptions) poller() client.Poller {
	return client.Poller{
		Timeout:   o.Timeout,
		Frequency: o.Frequency,
		Clock:     o.Clock,
		Sleep:     o.Sleep,
	}
}

// BlockingStand submits a stand command and waits until the robot is
// standing.
func BlockingStand(ctx context.Context, c *Client, opts BlockOptions) error {
	id, err := c.Submit(ctx, SynchroStandCommand(opts.Params), WithLease(opts.Lease))
	if err != nil {
		return err
	}
	return pollMobility(ctx, c, id, opts, func(fb *commandv1.MobilityCommandFeedback) bool {
		return fb.StandFeedback != nil && fb.StandFeedback.Status == commandv1.StandStatusIsStanding
	})
}

// BlockingSit submits a sit command and waits until the robot is sitting.
func BlockingSit(ctx context.Context, c *Client, opts BlockOptions) error {
	id, err := c.Submit(ctx, SynchroSitCommand(opts.Params), WithLease(opts.Lease))
	if err != nil {
		return err
	}
	return pollMobility(ctx, c, id, opts, func(fb *commandv1.MobilityCommandFeedback) bool {
		return fb.SitFeedback != nil && fb.SitFeedback.Status == commandv1.SitStatusIsSitting
	})
}

// BlockingSelfRight submits a self-right command and waits until it
// completes.
func BlockingSelfRight(ctx context.Context, c *Client, opts BlockOptions) error {
	id, err := c.Submit(ctx, SelfRightCommand(), WithLease(opts.Lease))
	if err != nil {
		return err
	}
	return pollFullBody(ctx, c, id, opts, func(fb *commandv1.FullBodyFeedback) bool {
		return fb.SelfRightFeedback != nil && fb.SelfRightFeedback.Status == commandv1.SelfRightStatusCompleted
	})
}

// BlockingSafePowerOff submits a safe power off command and waits until the
// motors are off.
func BlockingSafePowerOff(ctx context.Context, c *Client, opts BlockOptions) error {
	id, err := c.Submit(ctx, SafePowerOffCommand(), WithLease(opts.Lease))
	if err != nil {
		return err
	}
	return pollFullBody(ctx, c, id, opts, func(fb *commandv1.FullBodyFeedback) bool {
		return fb.SafePowerOffFeedback != nil && fb.SafePowerOffFeedback.Status == commandv1.SafePowerOffStatusPoweredOff
	})
}

// BlockUntilArmArrives waits for an already submitted arm command to reach
// its goal.
func BlockUntilArmArrives(ctx context.Context, c *Client, commandID uint32, opts BlockOptions) error {
	return opts.poller().Run(ctx, func(tickCtx context.Context) (bool, error) {
		fb, err := c.Feedback(tickCtx, commandID)
		if err != nil {
			return false, err
		}
		arm := armFeedback(fb)
		if arm.Status != commandv1.FeedbackStatusProcessing {
			return false, client.Newf(client.CodeCommandFailed,
				"arm command stopped processing with status %d", arm.Status)
		}
		return armArrived(arm), nil
	})
}

// BlockForTrajectory waits for an already submitted body trajectory command
// to reach its goal and for the body to settle.
func BlockForTrajectory(ctx context.Context, c *Client, commandID uint32, opts BlockOptions) error {
	return opts.poller().Run(ctx, func(tickCtx context.Context) (bool, error) {
		fb, err := c.Feedback(tickCtx, commandID)
		if err != nil {
			return false, err
		}
		mob := mobilityFeedback(fb)
		if mob.Status != commandv1.FeedbackStatusProcessing {
			return false, client.Newf(client.CodeCommandFailed,
				"trajectory command stopped processing with status %d", mob.Status)
		}
		traj := mob.SE2TrajectoryFeedback
		if traj == nil {
			return false, nil
		}
		switch {
		case traj.Status == commandv1.SE2TrajectoryStatusAtGoal:
			return true, nil
		case traj.Status == commandv1.SE2TrajectoryStatusNearGoal &&
			traj.BodyMovementStatus == commandv1.BodyMovementStatusSettled:
			return true, nil
		}
		return false, nil
	})
}

func pollMobility(ctx context.Context, c *Client, commandID uint32, opts BlockOptions, arrived func(*commandv1.MobilityCommandFeedback) bool) error {
	return opts.poller().Run(ctx, func(tickCtx context.Context) (bool, error) {
		fb, err := c.Feedback(tickCtx, commandID)
		if err != nil {
			return false, err
		}
		mob := mobilityFeedback(fb)
		if mob.Status != commandv1.FeedbackStatusProcessing {
			return false, client.Newf(client.CodeCommandFailed,
				"mobility command stopped processing with status %d", mob.Status)
		}
		return arrived(mob), nil
	})
}

func pollFullBody(ctx context.Context, c *Client, commandID uint32, opts BlockOptions, arrived func(*commandv1.FullBodyFeedback) bool) error {
	return opts.poller().Run(ctx, func(tickCtx context.Context) (bool, error) {
		fb, err := c.Feedback(tickCtx, commandID)
		if err != nil {
			return false, err
		}
		full := fb.FullBodyFeedback
		if full == nil {
			full = &commandv1.FullBodyFeedback{}
		}
		if full.Status != commandv1.FeedbackStatusProcessing {
			return false, client.Newf(client.CodeCommandFailed,
				"command stopped processing with status %d", full.Status)
		}
		return arrived(full), nil
	})
}

func mobilityFeedback(fb *commandv1.RobotCommandFeedback) *commandv1.MobilityCommandFeedback {
	if fb.SynchronizedFeedback != nil && fb.SynchronizedFeedback.MobilityCommandFeedback != nil {
		return fb.SynchronizedFeedback.MobilityCommandFeedback
	}
	return &commandv1.MobilityCommandFeedback{}
}

func armFeedback(fb *commandv1.RobotCommandFeedback) *commandv1.ArmCommandFeedback {
	if fb.SynchronizedFeedback != nil && fb.SynchronizedFeedback.ArmCommandFeedback != nil {
		return fb.SynchronizedFeedback.ArmCommandFeedback
	}
	return &commandv1.ArmCommandFeedback{}
}

func armArrived(arm *commandv1.ArmCommandFeedback) bool {
	switch {
	case arm.ArmCartesianFeedback != nil:
		return arm.ArmCartesianFeedback.Status == commandv1.ArmCartesianStatusTrajectoryComplete
	case arm.ArmJointMoveFeedback != nil:
		return arm.ArmJointMoveFeedback.Status == commandv1.ArmJointMoveStatusComplete
	case arm.NamedArmPositionFeedback != nil:
		return arm.NamedArmPositionFeedback.Status == commandv1.NamedArmPositionStatusComplete
	case arm.ArmGazeFeedback != nil:
		return arm.ArmGazeFeedback.Status == commandv1.GazeStatusTrajectoryComplete
	}
	return false
}
