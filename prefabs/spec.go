package prefabs

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// RigSpec describes a character: its joint tree, the colliders laid out
// around it in model space, how they bind, and its clips.
type RigSpec struct {
	Source    string         `yaml:"-"` // prefab file this rig was loaded from
	Name      string         `yaml:"name"`
	Health    int            `yaml:"health"`
	Skeleton  JointSpec      `yaml:"skeleton"`
	Colliders []ColliderSpec `yaml:"colliders"`
	Bind      BindSpec       `yaml:"bind"`
	Clips     []ClipSpec     `yaml:"clips"`
}

// JointSpec is one joint with its local pose. Rotation is Euler degrees
// (pitch, yaw, roll).
type JointSpec struct {
	Name     string      `yaml:"name"`
	Position mgl64.Vec3  `yaml:"position"`
	Rotation mgl64.Vec3  `yaml:"rotation"`
	Children []JointSpec `yaml:"children"`
}

// ColliderSpec places a collider in model space. Center, Size, Radius and
// Height describe the shape relative to the collider's own pose.
type ColliderSpec struct {
	Name      string     `yaml:"name"`
	Shape     string     `yaml:"shape"`
	Position  mgl64.Vec3 `yaml:"position"`
	Rotation  mgl64.Vec3 `yaml:"rotation"`
	Center    mgl64.Vec3 `yaml:"center"`
	Size      mgl64.Vec3 `yaml:"size"`
	Radius    float64    `yaml:"radius"`
	Height    float64    `yaml:"height"`
	Trigger   bool       `yaml:"trigger"`
	Layer     int        `yaml:"layer"`
	Role      string     `yaml:"role"`
	Damage    int        `yaml:"damage"`
	Body      bool       `yaml:"body"`
	Kinematic bool       `yaml:"kinematic"`
}

// BindSpec overrides the global binding config for one rig. Nil pointers
// keep the global value.
type BindSpec struct {
	Auto                bool          `yaml:"auto"`
	ExcludeNameContains []string      `yaml:"exclude_name_contains"`
	Layers              []int         `yaml:"layers"`
	OnlyTriggers        *bool         `yaml:"only_triggers"`
	ComputeOffsets      *bool         `yaml:"compute_offsets"`
	Overwrite           *bool         `yaml:"overwrite"`
	AttachAsChild       *bool         `yaml:"attach_as_child"`
	ComputeOnStart      *bool         `yaml:"compute_on_start"`
	Timing              string        `yaml:"timing"`
	Smoothing           SmoothingSpec `yaml:"smoothing"`
	Maps                []NameMapSpec `yaml:"maps"`
}

type SmoothingSpec struct {
	Position float64 `yaml:"position"`
	Rotation float64 `yaml:"rotation"`
}

// NameMapSpec binds one collider to one joint. Maps parent the collider
// under the joint and run in the fixed step unless told otherwise.
type NameMapSpec struct {
	Collider       string      `yaml:"collider"`
	Joint          string      `yaml:"joint"`
	AttachAsChild  *bool       `yaml:"attach_as_child"`
	ComputeOffsets *bool       `yaml:"compute_offsets"`
	ComputeOnStart bool        `yaml:"compute_on_start"`
	Offset         *OffsetSpec `yaml:"offset"`
	Timing         string      `yaml:"timing"`
}

// OffsetSpec is an explicit pose in the joint's frame. Rotation is Euler
// degrees.
type OffsetSpec struct {
	Position mgl64.Vec3 `yaml:"position"`
	Rotation mgl64.Vec3 `yaml:"rotation"`
}

type ClipSpec struct {
	Name     string      `yaml:"name"`
	Duration float64     `yaml:"duration"`
	Loop     bool        `yaml:"loop"`
	Tracks   []TrackSpec `yaml:"tracks"`
	Events   []EventSpec `yaml:"events"`
}

type TrackSpec struct {
	Joint string    `yaml:"joint"`
	Keys  []KeySpec `yaml:"keys"`
}

type KeySpec struct {
	Time     float64    `yaml:"time"`
	Rotation mgl64.Vec3 `yaml:"rotation"`
	Ease     string     `yaml:"ease"`
}

type EventSpec struct {
	Time float64 `yaml:"time"`
	Name string  `yaml:"name"`
}

func LoadRigSpec(filename string) (*RigSpec, error) {
	spec, err := LoadSpec[RigSpec](filename)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", filename, err)
	}
	spec.Source = filepath.Base(filename)
	return &spec, nil
}

// Validate checks names and ranges. All problems are reported together.
func (s *RigSpec) Validate() error {
	var errs []error
	if s.Skeleton.Name == "" {
		errs = append(errs, errors.New("skeleton root has no name"))
	}
	joints := make(map[string]bool)
	s.Skeleton.walk(func(j *JointSpec) {
		joints[j.Name] = true
	})

	colliders := make(map[string]bool)
	for i, c := range s.Colliders {
		if c.Name == "" {
			errs = append(errs, fmt.Errorf("collider %d has no name", i))
		}
		if colliders[c.Name] {
			errs = append(errs, fmt.Errorf("duplicate collider %q", c.Name))
		}
		colliders[c.Name] = true
		if c.Layer < 0 || c.Layer > 31 {
			errs = append(errs, fmt.Errorf("collider %q layer %d out of range", c.Name, c.Layer))
		}
	}
	for _, m := range s.Bind.Maps {
		if !colliders[m.Collider] {
			errs = append(errs, fmt.Errorf("bind map names unknown collider %q", m.Collider))
		}
	}
	for _, l := range s.Bind.Layers {
		if l < 0 || l > 31 {
			errs = append(errs, fmt.Errorf("bind layer %d out of range", l))
		}
	}
	for _, c := range s.Clips {
		if c.Name == "" {
			errs = append(errs, errors.New("clip has no name"))
		}
		if c.Duration < 0 {
			errs = append(errs, fmt.Errorf("clip %q has negative duration", c.Name))
		}
		for _, tr := range c.Tracks {
			if !joints[tr.Joint] {
				errs = append(errs, fmt.Errorf("clip %q animates unknown joint %q", c.Name, tr.Joint))
			}
		}
	}
	return errors.Join(errs...)
}

func (j *JointSpec) walk(fn func(*JointSpec)) {
	fn(j)
	for i := range j.Children {
		j.Children[i].walk(fn)
	}
}
