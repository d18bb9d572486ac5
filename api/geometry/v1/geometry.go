// Package geometryv1 defines the geometric primitives carried by robot
// command messages: planar and spatial poses, velocities, and wrenches.
package geometryv1

import "math"

// Vec2 is a 2D position or direction in meters.
type Vec2 struct {
	X float64 `json:"x,omitempty"`
	Y float64 `json:"y,omitempty"`
}

// Vec3 is a 3D position or direction in meters.
type Vec3 struct {
	X float64 `json:"x,omitempty"`
	Y float64 `json:"y,omitempty"`
	Z float64 `json:"z,omitempty"`
}

// Quaternion is a rotation in 3D space.
type Quaternion struct {
	W float64 `json:"w,omitempty"`
	X float64 `json:"x,omitempty"`
	Y float64 `json:"y,omitempty"`
	Z float64 `json:"z,omitempty"`
}

// SE2Pose is a position and heading on a 2D plane.
type SE2Pose struct {
	Position *Vec2   `json:"position,omitempty"`
	Angle    float64 `json:"angle,omitempty"`
}

// SE3Pose is a full 3D pose.
type SE3Pose struct {
	Position *Vec3       `json:"position,omitempty"`
	Rotation *Quaternion `json:"rotation,omitempty"`
}

// SE2Velocity is a planar velocity: linear in m/s, angular in rad/s.
type SE2Velocity struct {
	Linear  *Vec2   `json:"linear,omitempty"`
	Angular float64 `json:"angular,omitempty"`
}

// Wrench is a force (N) and torque (Nm) pair.
type Wrench struct {
	Force  *Vec3 `json:"force,omitempty"`
	Torque *Vec3 `json:"torque,omitempty"`
}

// EulerZXY is an orientation expressed as intrinsic rotations applied in
// Z (yaw), X (roll), Y (pitch) order. Angles are radians.
type EulerZXY struct {
	Roll  float64 `json:"roll,omitempty"`
	Pitch float64 `json:"pitch,omitempty"`
	Yaw   float64 `json:"yaw,omitempty"`
}

// ToQuaternion converts the Euler angles to a quaternion by composing the
// per-axis rotations in ZXY order.
func (e EulerZXY) ToQuaternion() *Quaternion {
	qz := axisAngle(0, 0, 1, e.Yaw)
	qx := axisAngle(1, 0, 0, e.Roll)
	qy := axisAngle(0, 1, 0, e.Pitch)
	return qz.mul(qx).mul(qy)
}

func axisAngle(x, y, z, angle float64) *Quaternion {
	s, c := math.Sin(angle/2), math.Cos(angle/2)
	return &Quaternion{W: c, X: x * s, Y: y * s, Z: z * s}
}

func (q *Quaternion) mul(r *Quaternion) *Quaternion {
	return &Quaternion{
		W: q.W*r.W - q.X*r.X - q.Y*r.Y - q.Z*r.Z,
		X: q.W*r.X + q.X*r.W + q.Y*r.Z - q.Z*r.Y,
		Y: q.W*r.Y - q.X*r.Z + q.Y*r.W + q.Z*r.X,
		Z: q.W*r.Z + q.X*r.Y - q.Y*r.X + q.Z*r.W,
	}
}

// Clone returns a deep copy of the vector.
func (v *Vec2) Clone() *Vec2 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// Clone returns a deep copy of the vector.
func (v *Vec3) Clone() *Vec3 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// Clone returns a deep copy of the quaternion.
func (q *Quaternion) Clone() *Quaternion {
	if q == nil {
		return nil
	}
	c := *q
	return &c
}

// Clone returns a deep copy of the pose.
func (p *SE2Pose) Clone() *SE2Pose {
	if p == nil {
		return nil
	}
	return &SE2Pose{Position: p.Position.Clone(), Angle: p.Angle}
}

// Clone returns a deep copy of the pose.
func (p *SE3Pose) Clone() *SE3Pose {
	if p == nil {
		return nil
	}
	return &SE3Pose{Position: p.Position.Clone(), Rotation: p.Rotation.Clone()}
}

// Clone returns a deep copy of the velocity.
func (v *SE2Velocity) Clone() *SE2Velocity {
	if v == nil {
		return nil
	}
	return &SE2Velocity{Linear: v.Linear.Clone(), Angular: v.Angular}
}

// Clone returns a deep copy of the wrench.
func (w *Wrench) Clone() *Wrench {
	if w == nil {
		return nil
	}
	return &Wrench{Force: w.Force.Clone(), Torque: w.Torque.Clone()}
}
