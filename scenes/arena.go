package scenes

import (
	"image/color"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/automoto/bonebrawl/assets"
	"github.com/automoto/bonebrawl/components"
	cfg "github.com/automoto/bonebrawl/config"
	"github.com/automoto/bonebrawl/prefabs"
	"github.com/automoto/bonebrawl/schedule"
	"github.com/automoto/bonebrawl/shared/leveldata"
	"github.com/automoto/bonebrawl/systems"
	"github.com/automoto/bonebrawl/systems/input"
	"github.com/automoto/bonebrawl/systems/render"
	"github.com/automoto/bonebrawl/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	layerWorld ecs.LayerID = iota
	layerHUD
)

// maxFrameDelta caps a single frame so a stall does not read as a long step.
const maxFrameDelta = 0.25

// ArenaOptions configures an arena scene.
type ArenaOptions struct {
	Level      *leveldata.ArenaData // nil for the default floor
	TuningPath string               // overlay reloaded on change when watching
	Watch      bool
}

// ArenaScene runs the training arena: one player, its orbit camera and the
// dummies the map places.
type ArenaScene struct {
	opts ArenaOptions

	ecs     *ecs.ECS
	sched   *schedule.Scheduler
	roster  *systems.Roster
	watcher *prefabs.Watcher
	last    time.Time
	err     error
	once    sync.Once
}

func NewArenaScene(opts ArenaOptions) *ArenaScene {
	return &ArenaScene{opts: opts}
}

// World exposes the scene's world once configured.
func (s *ArenaScene) World() donburi.World {
	if s.ecs == nil {
		return nil
	}
	return s.ecs.World
}

func (s *ArenaScene) Update() error {
	s.once.Do(s.configure)
	if s.err != nil {
		return s.err
	}

	s.drainWatcher()

	now := time.Now()
	dt := 1 / float64(ebiten.TPS())
	if !s.last.IsZero() {
		dt = min(now.Sub(s.last).Seconds(), maxFrameDelta)
	}
	s.last = now
	s.sched.Tick(dt)

	s.handleActions()
	return nil
}

func (s *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if s.ecs == nil {
		return
	}
	s.ecs.Draw(screen)
}

// Close stops the file watcher.
func (s *ArenaScene) Close() {
	if s.watcher != nil {
		if err := s.watcher.Close(); err != nil {
			log.Printf("Warning: closing watcher: %v", err)
		}
	}
}

func (s *ArenaScene) configure() {
	if err := assets.LoadShaders(); err != nil {
		log.Printf("Warning: failed to load shaders: %v", err)
	}

	w := donburi.NewWorld()
	s.ecs = ecs.NewECS(w)

	s.sched = schedule.New(w, cfg.Schedule.FixedDelta, cfg.Schedule.MaxFixedStep)
	s.sched.
		AddSystem(schedule.Input, "input", input.Update).
		AddSystem(schedule.Fixed, "followers_fixed", systems.UpdateFollowersFixed).
		AddSystem(schedule.Fixed, "bodies", systems.UpdateBodies).
		AddSystem(schedule.Fixed, "volumes", systems.SyncVolumes).
		AddSystem(schedule.Fixed, "hit_volumes", systems.UpdateHitVolumes).
		AddSystem(schedule.Simulate, "player", systems.UpdatePlayer).
		AddSystem(schedule.Simulate, "animators", systems.UpdateAnimators).
		AddSystem(schedule.Simulate, "followers_update", systems.UpdateFollowersUpdate).
		AddSystem(schedule.Simulate, "combat", systems.UpdateCombat).
		AddSystem(schedule.Simulate, "deaths", systems.UpdateDeaths).
		AddSystem(schedule.Simulate, "hit_flash", systems.UpdateHitFlash).
		AddSystem(schedule.Simulate, "hit_events", systems.ProcessHitEvents).
		AddSystem(schedule.Late, "followers_late", systems.UpdateFollowersLate).
		AddSystem(schedule.Late, "camera", systems.UpdateCamera)

	s.ecs.AddRenderer(layerWorld, render.DrawArena)
	s.ecs.AddRenderer(layerHUD, render.DrawHUD)
	s.ecs.AddRenderer(layerHUD, render.DrawDebug)

	systems.SubscribeHitLog(w)
	roster, err := systems.SpawnArena(w, s.opts.Level)
	if err != nil {
		s.err = err
		return
	}
	s.roster = roster

	if s.opts.Watch {
		paths := []string{prefabs.Dir}
		if s.opts.TuningPath != "" {
			paths = append(paths, filepath.Dir(s.opts.TuningPath))
		}
		watcher, err := prefabs.NewWatcher(paths...)
		if err != nil {
			log.Printf("Warning: hot reload disabled: %v", err)
		} else {
			s.watcher = watcher
		}
	}
}

func (s *ArenaScene) drainWatcher() {
	if s.watcher == nil {
		return
	}
	changed, errs := s.watcher.Drain()
	for _, err := range errs {
		log.Printf("Warning: [Reload] %v", err)
	}
	for _, path := range changed {
		if err := systems.HandleFileChange(s.ecs.World, path, s.opts.TuningPath); err != nil {
			log.Printf("Warning: [Reload] %s: %v", path, err)
		}
	}
}

// handleActions applies the actions that act on the scene rather than on an
// actor.
func (s *ArenaScene) handleActions() {
	w := s.ecs.World
	in := systems.InputOf(w)

	if in.JustPressed(cfg.ActionToggleDebug) {
		cfg.Debug.Overlay = !cfg.Debug.Overlay
		cfg.Debug.ShowJoints = cfg.Debug.Overlay
	}
	if in.JustPressed(cfg.ActionRebind) {
		s.rebind()
	}
	if in.JustPressed(cfg.ActionRecalculateOffsets) {
		for _, e := range s.actors() {
			n := systems.RecalculateOffsets(w, e)
			log.Printf("[Bind] %s: recalculated %d offsets", components.Rig.Get(e).Name, n)
		}
	}
	if e, ok := tags.Camera.First(w); ok {
		input.SetCursorFree(components.Camera.Get(e).CursorFree)
	}
}

// rebind re-runs every actor's bind with overwrite so edited colliders snap
// to their current nearest joints.
func (s *ArenaScene) rebind() {
	w := s.ecs.World
	overwrite := true
	for _, e := range s.actors() {
		r := components.Rig.Get(e)
		spec, err := prefabs.LoadRigSpec(r.Prefab)
		if err != nil {
			log.Printf("Warning: [Bind] %s: %v", r.Name, err)
			continue
		}
		bind := spec.Bind
		bind.Overwrite = &overwrite
		report, err := systems.BindRig(w, e, bind)
		if err != nil {
			log.Printf("Warning: [Bind] %s: %v", r.Name, err)
			continue
		}
		log.Printf("[Bind] rebound %s: %s", r.Name, report)
	}
}

func (s *ArenaScene) actors() []*donburi.Entry {
	return append([]*donburi.Entry{s.roster.Player}, s.roster.Dummies...)
}
