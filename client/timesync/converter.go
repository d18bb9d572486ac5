package timesync

import (
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"
)

// RobotTimeConverter rewrites local times into the robot's clock domain
// using an established skew estimate.
type RobotTimeConverter struct {
	Skew time.Duration
}

// RobotTimestampFromLocal converts a local time to a robot timestamp.
func (c RobotTimeConverter) RobotTimestampFromLocal(t time.Time) *timestamppb.Timestamp {
	return timestamppb.New(t.Add(c.Skew))
}

// ConvertTimestampFromLocalToRobot shifts a local timestamp into robot time
// in place.
func (c RobotTimeConverter) ConvertTimestampFromLocalToRobot(ts *timestamppb.Timestamp) {
	if ts == nil {
		return
	}
	shifted := ts.AsTime().Add(c.Skew)
	ts.Seconds = shifted.Unix()
	ts.Nanos = int32(shifted.Nanosecond())
}
