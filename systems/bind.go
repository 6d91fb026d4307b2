package systems

import (
	"errors"
	"fmt"
	"log"

	"github.com/automoto/bonebrawl/components"
	cfg "github.com/automoto/bonebrawl/config"
	"github.com/automoto/bonebrawl/prefabs"
	"github.com/automoto/bonebrawl/shared/binding"
	"github.com/automoto/bonebrawl/shared/transform"
	"github.com/yohamta/donburi"
)

// ErrNoSkeleton is returned when a bind is asked to use a rig without joints.
var ErrNoSkeleton = errors.New("rig has no skeleton")

// BindOptions controls a batch bind.
type BindOptions struct {
	Filter         binding.Filter
	ComputeOffsets bool // offsets from the current pose, else keep the follower's offset
	ComputeOnStart bool // without ComputeOffsets, take the offset on the first tick
	Overwrite      bool // replace existing followers
	AttachAsChild  bool
	Timing         binding.Timing
	Smoothing      binding.Smoothing
	LogSummary     bool
}

// DefaultBindOptions builds options from the global binding and follow config.
func DefaultBindOptions() BindOptions {
	timing, err := binding.ParseTiming(cfg.Follow.Timing)
	if err != nil {
		log.Printf("Warning: %v, using %s", err, timing)
	}
	return BindOptions{
		Filter: binding.Filter{
			ExcludeNameContains: cfg.Binding.ExcludeNameContains,
			OnlyTriggers:        cfg.Binding.OnlyTriggers,
			LayerMask:           cfg.Binding.LayerMask,
		},
		ComputeOffsets: cfg.Binding.ComputeOffsets,
		ComputeOnStart: cfg.Binding.ComputeOnStart,
		Overwrite:      cfg.Binding.Overwrite,
		AttachAsChild:  cfg.Binding.AttachAsChild,
		Timing:         timing,
		Smoothing: binding.Smoothing{
			Position: cfg.Follow.PositionSmoothing,
			Rotation: cfg.Follow.RotationSmoothing,
		},
		LogSummary: cfg.Binding.LogSummary,
	}
}

// BindReport summarises a batch bind.
type BindReport struct {
	Joints    int
	Colliders int
	Bound     int
	Skipped   int
}

func (r BindReport) String() string {
	return fmt.Sprintf("%d joints, %d colliders, %d bound, %d skipped", r.Joints, r.Colliders, r.Bound, r.Skipped)
}

// OwnedColliders returns the collider entries owned by owner.
func OwnedColliders(w donburi.World, owner *donburi.Entry) []*donburi.Entry {
	var out []*donburi.Entry
	components.Collider.Each(w, func(e *donburi.Entry) {
		if components.Collider.Get(e).Owner == owner {
			out = append(out, e)
		}
	})
	return out
}

// AutoBindColliders attaches every eligible collider owned by owner to the
// joint of rig nearest to the collider's world centre. With Overwrite, a
// collider the filter now rejects loses its binding.
func AutoBindColliders(w donburi.World, rig, owner *donburi.Entry, opts BindOptions) (BindReport, error) {
	var report BindReport
	if rig == nil || !rig.Valid() || !rig.HasComponent(components.Rig) {
		log.Printf("Warning: [Bind] no rig for %v, auto-bind disabled", owner)
		return report, ErrNoSkeleton
	}
	r := components.Rig.Get(rig)
	if r.Skeleton.Empty() {
		log.Printf("Warning: [Bind] rig %q has no joints, auto-bind disabled", r.Name)
		return report, ErrNoSkeleton
	}
	report.Joints = r.Skeleton.Len()

	for _, e := range OwnedColliders(w, owner) {
		report.Colliders++
		col := components.Collider.Get(e)
		if !opts.Filter.Eligible(col.Name, col.Layer, col.IsTrigger) {
			if opts.Overwrite {
				Unbind(e)
			}
			report.Skipped++
			continue
		}
		node := components.Transform.Get(e).Node
		joint, ok := r.Skeleton.Nearest(col.WorldCenter(node))
		if !ok {
			report.Skipped++
			continue
		}
		if e.HasComponent(components.Follower) && !opts.Overwrite {
			report.Bound++
			continue
		}

		bindTo(e, joint, followSettings{
			computeOffset:  opts.ComputeOffsets,
			computeOnStart: opts.ComputeOnStart,
			attachAsChild:  opts.AttachAsChild,
			timing:         opts.Timing,
			smoothing:      opts.Smoothing,
		})
		if opts.Filter.OnlyTriggers && !col.IsTrigger {
			col.IsTrigger = true
		}
		if e.HasComponent(components.Body) {
			components.Body.Get(e).Kinematic = true
		}
		report.Bound++
	}

	if opts.LogSummary {
		log.Printf("[Bind] %s: %s", r.Name, report)
	}
	return report, nil
}

// NameMap binds one named collider to one named joint. A non-nil Offset is
// used as given and wins over ComputeOffsets.
type NameMap struct {
	Collider       string
	Joint          string
	AttachAsChild  bool
	ComputeOffsets bool
	ComputeOnStart bool
	Offset         *binding.Offset
	Timing         binding.Timing
}

// BindByName applies explicit collider-to-joint maps. Unknown names are
// reported and skipped. It returns the number of colliders bound.
func BindByName(w donburi.World, rig, owner *donburi.Entry, maps []NameMap) int {
	if rig == nil || !rig.Valid() || !rig.HasComponent(components.Rig) {
		log.Printf("Warning: [Bind] no rig for name maps")
		return 0
	}
	r := components.Rig.Get(rig)
	byName := make(map[string]*donburi.Entry)
	for _, e := range OwnedColliders(w, owner) {
		name := components.Collider.Get(e).Name
		if _, dup := byName[name]; !dup {
			byName[name] = e
		}
	}

	bound := 0
	for _, m := range maps {
		e, ok := byName[m.Collider]
		if !ok {
			log.Printf("Warning: [Bind] collider %q not found on %s", m.Collider, r.Name)
			continue
		}
		joint, ok := r.Skeleton.Find(m.Joint)
		if !ok {
			log.Printf("Warning: [Bind] joint %q not found on %s", m.Joint, r.Name)
			continue
		}
		bindTo(e, joint, followSettings{
			computeOffset:  m.ComputeOffsets && m.Offset == nil,
			computeOnStart: m.ComputeOnStart,
			offset:         m.Offset,
			attachAsChild:  m.AttachAsChild,
			timing:         m.Timing,
		})
		if e.HasComponent(components.Body) {
			components.Body.Get(e).Kinematic = true
		}
		bound++
	}
	return bound
}

type followSettings struct {
	computeOffset  bool
	computeOnStart bool
	offset         *binding.Offset
	attachAsChild  bool
	timing         binding.Timing
	smoothing      binding.Smoothing
}

func bindTo(e *donburi.Entry, joint *transform.Node, s followSettings) {
	node := components.Transform.Get(e).Node
	f := components.FollowerData{Offset: binding.IdentityOffset()}
	if e.HasComponent(components.Follower) {
		prev := components.Follower.Get(e)
		if prev.Attached {
			detach(e)
		}
		f.Offset = prev.Offset
	} else {
		donburi.Add(e, components.Follower, &components.FollowerData{})
	}

	f.Joint = joint
	f.Timing = s.timing
	f.Smoothing = s.smoothing
	f.AttachAsChild = s.attachAsChild
	switch {
	case s.offset != nil:
		f.Offset = *s.offset
	case s.computeOffset, s.computeOnStart && s.attachAsChild:
		// a parented collider never ticks, so its first pose is this one
		f.Offset = binding.ComputeOffset(joint, node.World())
	default:
		f.ComputeOnStart = s.computeOnStart
	}
	if f.AttachAsChild {
		binding.AttachAsChild(node, joint, f.Offset)
		f.Attached = true
	}
	components.Follower.SetValue(e, f)
}

// Unbind removes the follower of e. A collider parented under its joint goes
// back under its owner's root, keeping its current world pose, so it still
// moves with the actor.
func Unbind(e *donburi.Entry) {
	if !e.HasComponent(components.Follower) {
		return
	}
	if components.Follower.Get(e).Attached {
		detach(e)
	}
	donburi.Remove[components.FollowerData](e, components.Follower)
}

func detach(e *donburi.Entry) {
	var root *transform.Node
	if e.HasComponent(components.Collider) {
		owner := components.Collider.Get(e).Owner
		if owner != nil && owner.Valid() && owner.HasComponent(components.Transform) {
			root = components.Transform.Get(owner).Node
		}
	}
	components.Transform.Get(e).Node.SetParent(root, true)
}

// RecalculateOffset captures the offset between e and its joint from the
// current world poses.
func RecalculateOffset(e *donburi.Entry) bool {
	if !e.HasComponent(components.Follower) {
		return false
	}
	f := components.Follower.Get(e)
	if f.Joint == nil {
		return false
	}
	f.Offset = binding.ComputeOffset(f.Joint, components.Transform.Get(e).World())
	f.Started = true
	if f.Attached {
		binding.AttachAsChild(components.Transform.Get(e).Node, f.Joint, f.Offset)
	}
	return true
}

// RecalculateOffsets recaptures the offset of every bound collider owned by
// owner and returns how many changed.
func RecalculateOffsets(w donburi.World, owner *donburi.Entry) int {
	n := 0
	for _, e := range OwnedColliders(w, owner) {
		if RecalculateOffset(e) {
			n++
		}
	}
	return n
}

// BindOptionsFor overlays a rig's bind settings on the global defaults.
func BindOptionsFor(b prefabs.BindSpec) (BindOptions, error) {
	opts := DefaultBindOptions()
	if len(b.ExcludeNameContains) > 0 {
		opts.Filter.ExcludeNameContains = b.ExcludeNameContains
	}
	if len(b.Layers) > 0 {
		opts.Filter.LayerMask = prefabs.LayerMask(b.Layers)
	}
	if b.OnlyTriggers != nil {
		opts.Filter.OnlyTriggers = *b.OnlyTriggers
	}
	if b.ComputeOffsets != nil {
		opts.ComputeOffsets = *b.ComputeOffsets
	}
	if b.ComputeOnStart != nil {
		opts.ComputeOnStart = *b.ComputeOnStart
	}
	if b.Overwrite != nil {
		opts.Overwrite = *b.Overwrite
	}
	if b.AttachAsChild != nil {
		opts.AttachAsChild = *b.AttachAsChild
	}
	if b.Smoothing.Position > 0 {
		opts.Smoothing.Position = b.Smoothing.Position
	}
	if b.Smoothing.Rotation > 0 {
		opts.Smoothing.Rotation = b.Smoothing.Rotation
	}
	timing, err := prefabs.FollowTiming(b.Timing, opts.Timing)
	if err != nil {
		return opts, err
	}
	opts.Timing = timing
	return opts, nil
}

// BindRig runs the bind steps a rig asks for: the auto-bind pass first, then
// its explicit name maps, which win over the nearest joint. Maps default to
// parenting under the joint with fixed timing.
func BindRig(w donburi.World, actor *donburi.Entry, bind prefabs.BindSpec) (BindReport, error) {
	opts, err := BindOptionsFor(bind)
	if err != nil {
		return BindReport{}, err
	}

	var report BindReport
	if bind.Auto {
		report, err = AutoBindColliders(w, actor, actor, opts)
		if err != nil {
			return report, err
		}
	}

	maps := make([]NameMap, 0, len(bind.Maps))
	for _, m := range bind.Maps {
		timing, err := prefabs.FollowTiming(m.Timing, binding.TimingFixed)
		if err != nil {
			return report, fmt.Errorf("map %s: %w", m.Collider, err)
		}
		compute := opts.ComputeOffsets
		if m.ComputeOffsets != nil {
			compute = *m.ComputeOffsets
		}
		attach := true
		if m.AttachAsChild != nil {
			attach = *m.AttachAsChild
		}
		nm := NameMap{
			Collider:       m.Collider,
			Joint:          m.Joint,
			AttachAsChild:  attach,
			ComputeOffsets: compute,
			ComputeOnStart: m.ComputeOnStart,
			Timing:         timing,
		}
		if m.Offset != nil {
			off := m.Offset.Offset()
			nm.Offset = &off
		}
		maps = append(maps, nm)
	}
	if len(maps) > 0 {
		BindByName(w, actor, actor, maps)
	}
	return report, nil
}
