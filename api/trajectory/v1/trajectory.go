// Package trajectoryv1 defines timed trajectory messages. Each trajectory
// carries an optional reference time that anchors the per-point offsets to
// the robot's clock.
package trajectoryv1

import (
	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/timestamppb"

	geometryv1 "github.com/stridelabs/strider/api/geometry/v1"
)

// Interpolation selects how consecutive trajectory points are blended.
type Interpolation int32

const (
	InterpolationUnknown Interpolation = 0
	InterpolationLinear  Interpolation = 1
	InterpolationCubic   Interpolation = 2
)

// SE2TrajectoryPoint is a planar pose at an offset from the reference time.
type SE2TrajectoryPoint struct {
	Pose               *geometryv1.SE2Pose  `json:"pose,omitempty"`
	TimeSinceReference *durationpb.Duration `json:"time_since_reference,omitempty"`
}

// SE2Trajectory is a sequence of planar poses.
type SE2Trajectory struct {
	Points            []*SE2TrajectoryPoint  `json:"points,omitempty"`
	ReferenceTime     *timestamppb.Timestamp `json:"reference_time,omitempty"`
	InterpolationHint Interpolation          `json:"interpolation,omitempty"`
}

// SE3TrajectoryPoint is a spatial pose at an offset from the reference time.
type SE3TrajectoryPoint struct {
	Pose               *geometryv1.SE3Pose  `json:"pose,omitempty"`
	TimeSinceReference *durationpb.Duration `json:"time_since_reference,omitempty"`
}

// SE3Trajectory is a sequence of spatial poses.
type SE3Trajectory struct {
	Points        []*SE3TrajectoryPoint  `json:"points,omitempty"`
	ReferenceTime *timestamppb.Timestamp `json:"reference_time,omitempty"`
}

// Vec3TrajectoryPoint is a 3D point at an offset from the reference time.
type Vec3TrajectoryPoint struct {
	Point              *geometryv1.Vec3     `json:"point,omitempty"`
	TimeSinceReference *durationpb.Duration `json:"time_since_reference,omitempty"`
}

// Vec3Trajectory is a sequence of 3D points.
type Vec3Trajectory struct {
	Points        []*Vec3TrajectoryPoint `json:"points,omitempty"`
	ReferenceTime *timestamppb.Timestamp `json:"reference_time,omitempty"`
}

// WrenchTrajectoryPoint is a wrench at an offset from the reference time.
type WrenchTrajectoryPoint struct {
	Wrench             *geometryv1.Wrench   `json:"wrench,omitempty"`
	TimeSinceReference *durationpb.Duration `json:"time_since_reference,omitempty"`
}

// WrenchTrajectory is a sequence of wrenches.
type WrenchTrajectory struct {
	Points        []*WrenchTrajectoryPoint `json:"points,omitempty"`
	ReferenceTime *timestamppb.Timestamp   `json:"reference_time,omitempty"`
}

// ScalarTrajectoryPoint is a scalar value at an offset from the reference
// time.
type ScalarTrajectoryPoint struct {
	Point              float64              `json:"point,omitempty"`
	TimeSinceReference *durationpb.Duration `json:"time_since_reference,omitempty"`
}

// ScalarTrajectory is a sequence of scalar values.
type ScalarTrajectory struct {
	Points        []*ScalarTrajectoryPoint `json:"points,omitempty"`
	ReferenceTime *timestamppb.Timestamp   `json:"reference_time,omitempty"`
}

// EditTimestamp reports the named timestamp field, if set, so callers can
// rewrite it in place.
func (t *SE2Trajectory) EditTimestamp(name string) *timestamppb.Timestamp {
	if name == "reference_time" {
		return t.ReferenceTime
	}
	return nil
}

// EditTimestamp reports the named timestamp field, if set.
func (t *SE3Trajectory) EditTimestamp(name string) *timestamppb.Timestamp {
	if name == "reference_time" {
		return t.ReferenceTime
	}
	return nil
}

// EditTimestamp reports the named timestamp field, if set.
func (t *Vec3Trajectory) EditTimestamp(name string) *timestamppb.Timestamp {
	if name == "reference_time" {
		return t.ReferenceTime
	}
	return nil
}

// EditTimestamp reports the named timestamp field, if set.
func (t *WrenchTrajectory) EditTimestamp(name string) *timestamppb.Timestamp {
	if name == "reference_time" {
		return t.ReferenceTime
	}
	return nil
}

// EditTimestamp reports the named timestamp field, if set.
func (t *ScalarTrajectory) EditTimestamp(name string) *timestamppb.Timestamp {
	if name == "reference_time" {
		return t.ReferenceTime
	}
	return nil
}

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

// Clone returns a deep copy of the trajectory.
func (t *SE2Trajectory) Clone() *SE2Trajectory {
	if t == nil {
		return nil
	}
	c := &SE2Trajectory{ReferenceTime: cloneTimestamp(t.ReferenceTime), InterpolationHint: t.InterpolationHint}
	for _, p := range t.Points {
		c.Points = append(c.Points, &SE2TrajectoryPoint{
			Pose:               p.Pose.Clone(),
			TimeSinceReference: cloneDuration(p.TimeSinceReference),
		})
	}
	return c
}

// Clone returns a deep copy of the trajectory.
func (t *SE3Trajectory) Clone() *SE3Trajectory {
	if t == nil {
		return nil
	}
	c := &SE3Trajectory{ReferenceTime: cloneTimestamp(t.ReferenceTime)}
	for _, p := range t.Points {
		c.Points = append(c.Points, &SE3TrajectoryPoint{
			Pose:               p.Pose.Clone(),
			TimeSinceReference: cloneDuration(p.TimeSinceReference),
		})
	}
	return c
}

// Clone returns a deep copy of the trajectory.
func (t *Vec3Trajectory) Clone() *Vec3Trajectory {
	if t == nil {
		return nil
	}
	c := &Vec3Trajectory{ReferenceTime: cloneTimestamp(t.ReferenceTime)}
	for _, p := range t.Points {
		c.Points = append(c.Points, &Vec3TrajectoryPoint{
			Point:              p.Point.Clone(),
			TimeSinceReference: cloneDuration(p.TimeSinceReference),
		})
	}
	return c
}

// Clone returns a deep copy of the trajectory.
func (t *WrenchTrajectory) Clone() *WrenchTrajectory {
	if t == nil {
		return nil
	}
	c := &WrenchTrajectory{ReferenceTime: cloneTimestamp(t.ReferenceTime)}
	for _, p := range t.Points {
		c.Points = append(c.Points, &WrenchTrajectoryPoint{
			Wrench:             p.Wrench.Clone(),
			TimeSinceReference: cloneDuration(p.TimeSinceReference),
		})
	}
	return c
}

// Clone returns a deep copy of the trajectory.
func (t *ScalarTrajectory) Clone() *ScalarTrajectory {
	if t == nil {
		return nil
	}
	c := &ScalarTrajectory{ReferenceTime: cloneTimestamp(t.ReferenceTime)}
	for _, p := range t.Points {
		c.Points = append(c.Points, &ScalarTrajectoryPoint{
			Point:              p.Point,
			TimeSinceReference: cloneDuration(p.TimeSinceReference),
		})
	}
	return c
}
