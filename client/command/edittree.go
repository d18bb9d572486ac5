// Package command submits robot commands, polls their completion, and
// builds command payloads.
package command

import (
	"strings"
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/stridelabs/strider/client/timesync"
)

// Tree names the timestamp-bearing fields of the command message hierarchy.
// A key starting with "@" names a union: its subtree is keyed by variant
// name and only the set variant is followed. A nil subtree marks a leaf
// field to hand to the edit function.
type Tree map[string]Tree

// OneofResolver exposes a message's set union variant by union name.
type OneofResolver interface {
	ActiveOneof(name string) (string, any)
}

// FieldResolver exposes a message's child messages by field name.
type FieldResolver interface {
	EditField(name string) any
}

// TimestampEditor exposes a message's timestamp fields for in-place edits.
type TimestampEditor interface {
	EditTimestamp(name string) *timestamppb.Timestamp
}

// TimestampSetter overwrites a message's timestamp fields, creating them
// when unset.
type TimestampSetter interface {
	SetTimestamp(name string, ts *timestamppb.Timestamp)
}

// EditFunc is applied to each leaf the tree walk reaches. node is the
// message containing the named field.
type EditFunc func(name string, node any)

// Apply walks node along the tree and applies edit at each leaf. Messages
// that do not expose a named field or union are skipped, so the walk is a
// no-op on command variants the tree does not mention.
func Apply(node any, tree Tree, edit EditFunc) {
	for key, subtree := range tree {
		if oneof, ok := strings.CutPrefix(key, "@"); ok {
			resolver, ok := node.(OneofResolver)
			if !ok {
				continue
			}
			variant, child := resolver.ActiveOneof(oneof)
			if child == nil {
				return
			}
			childTree, ok := subtree[variant]
			if !ok {
				// The set variant carries no timestamps.
				return
			}
			Apply(child, childTree, edit)
			continue
		}
		if subtree == nil {
			edit(key, node)
			continue
		}
		resolver, ok := node.(FieldResolver)
		if !ok {
			continue
		}
		child := resolver.EditField(key)
		if child == nil {
			continue
		}
		Apply(child, subtree, edit)
	}
}

// SetEndTime returns an edit that overwrites end time fields with the given
// local time converted to robot time.
func SetEndTime(converter timesync.RobotTimeConverter, endTime time.Time) EditFunc {
	return func(name string, node any) {
		setter, ok := node.(TimestampSetter)
		if !ok {
			return
		}
		setter.SetTimestamp(name, converter.RobotTimestampFromLocal(endTime))
	}
}

// ConvertLocalToRobot returns an edit that shifts set timestamp fields from
// local time into robot time in place. Unset fields are left alone.
func ConvertLocalToRobot(converter timesync.RobotTimeConverter) EditFunc {
	return func(name string, node any) {
		editor, ok := node.(TimestampEditor)
		if !ok {
			return
		}
		if ts := editor.EditTimestamp(name); ts != nil {
			converter.ConvertTimestampFromLocalToRobot(ts)
		}
	}
}

var mobilityEndTimeTree = Tree{
	"@command": {
		"se2_trajectory_request": {"end_time": nil},
		"se2_velocity_request":   {"end_time": nil},
		"stance_request":         {"end_time": nil},
	},
}

// EndTimeTree names every end time field a command can carry.
var EndTimeTree = Tree{
	"@command": {
		"full_body_command": {
			"@command": {
				"constrained_manipulation_request": {"end_time": nil},
			},
		},
		"mobility_command": mobilityEndTimeTree,
		"synchronized_command": {
			"mobility_command": mobilityEndTimeTree,
			"arm_command": {
				"@command": {
					"arm_velocity_command": {"end_time": nil},
				},
			},
		},
	},
}

var mobilityLocalTimeTree = Tree{
	"@command": {
		"se2_trajectory_request": {
			"trajectory": {"reference_time": nil},
		},
	},
}

// LocalToRobotTimeTree names every embedded reference time a command can
// carry. End times are not listed: they are written in robot time already,
// so shifting them here would apply the skew twice.
var LocalToRobotTimeTree = Tree{
	"@command": {
		"mobility_command": mobilityLocalTimeTree,
		"synchronized_command": {
			"mobility_command": mobilityLocalTimeTree,
			"arm_command": {
				"@command": {
					"arm_cartesian_command": {
						"pose_trajectory_in_task":   {"reference_time": nil},
						"wrench_trajectory_in_task": {"reference_time": nil},
					},
					"arm_gaze_command": {
						"target_trajectory_in_frame": {"reference_time": nil},
						"tool_trajectory_in_frame":   {"reference_time": nil},
					},
					"arm_joint_move_command": {
						"trajectory": {"reference_time": nil},
					},
					"arm_impedance_command": {
						"task_tform_desired_tool": {"reference_time": nil},
					},
				},
			},
			"gripper_command": {
				"@command": {
					"claw_gripper_command": {
						"trajectory": {"reference_time": nil},
					},
				},
			},
		},
	},
}
