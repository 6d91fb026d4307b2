package prefabs

import (
	"fmt"

	"github.com/automoto/bonebrawl/shared/anim"
	"github.com/automoto/bonebrawl/shared/binding"
	"github.com/automoto/bonebrawl/shared/gamemath"
	"github.com/automoto/bonebrawl/shared/locomotion"
	"github.com/automoto/bonebrawl/shared/transform"
	"github.com/tanema/gween/ease"
)

// Pose returns the joint's local pose.
func (j JointSpec) Pose() gamemath.Pose {
	return gamemath.NewPose(j.Position, gamemath.EulerVec(j.Rotation))
}

// Pose returns the collider's pose in model space.
func (c ColliderSpec) Pose() gamemath.Pose {
	return gamemath.NewPose(c.Position, gamemath.EulerVec(c.Rotation))
}

// Offset converts the spec to a binding offset.
func (o OffsetSpec) Offset() binding.Offset {
	return binding.OffsetFromEuler(o.Position, o.Rotation)
}

// BuildSkeleton creates the joint tree under parent and returns its root.
func BuildSkeleton(parent *transform.Node, j JointSpec) *transform.Node {
	var n *transform.Node
	if parent == nil {
		n = transform.NewNode(j.Name)
		n.SetLocal(j.Pose())
	} else {
		n = transform.NewChild(parent, j.Name, j.Pose())
	}
	for _, c := range j.Children {
		BuildSkeleton(n, c)
	}
	return n
}

// BuildClips converts clip specs into playable clips keyed by name.
func BuildClips(specs []ClipSpec) (map[string]*anim.Clip, error) {
	clips := make(map[string]*anim.Clip, len(specs))
	for _, cs := range specs {
		c := &anim.Clip{
			Name:     cs.Name,
			Duration: cs.Duration,
			Loop:     cs.Loop,
		}
		for _, ts := range cs.Tracks {
			tr := anim.Track{Joint: ts.Joint}
			for _, ks := range ts.Keys {
				f, err := keyEase(ks.Ease)
				if err != nil {
					return nil, fmt.Errorf("prefabs: clip %q joint %q: %w", cs.Name, ts.Joint, err)
				}
				tr.Keys = append(tr.Keys, anim.Key{
					Time:     ks.Time,
					Rotation: gamemath.EulerVec(ks.Rotation),
					Ease:     f,
				})
			}
			c.Tracks = append(c.Tracks, tr)
		}
		for _, es := range cs.Events {
			c.Events = append(c.Events, anim.Event{Time: es.Time, Name: es.Name})
		}
		c.Normalize()
		clips[c.Name] = c
	}
	return clips, nil
}

func keyEase(name string) (ease.TweenFunc, error) {
	if name == "" {
		return ease.Linear, nil
	}
	return locomotion.CurveByName(name)
}

// LayerMask folds a layer list into a mask. An empty list selects every layer.
func LayerMask(layers []int) uint32 {
	if len(layers) == 0 {
		return binding.AllLayers
	}
	var mask uint32
	for _, l := range layers {
		if l >= 0 && l < 32 {
			mask |= 1 << uint(l)
		}
	}
	return mask
}

// FollowTiming parses the bind timing, falling back to fallback when unset.
func FollowTiming(name string, fallback binding.Timing) (binding.Timing, error) {
	if name == "" {
		return fallback, nil
	}
	return binding.ParseTiming(name)
}
