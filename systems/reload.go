package systems

import (
	"log"
	"path/filepath"

	"github.com/automoto/bonebrawl/components"
	cfg "github.com/automoto/bonebrawl/config"
	"github.com/automoto/bonebrawl/prefabs"
	"github.com/automoto/bonebrawl/shared/anim"
	"github.com/yohamta/donburi"
)

// ReloadClips swaps the clips of every actor built from spec. Each actor
// returns to its rest pose and picks a clip on the next animator update.
func ReloadClips(w donburi.World, spec *prefabs.RigSpec) (int, error) {
	clips, err := prefabs.BuildClips(spec.Clips)
	if err != nil {
		return 0, err
	}

	var actors []*donburi.Entry
	animatorQuery.Each(w, func(e *donburi.Entry) {
		if components.Rig.Get(e).Name == spec.Name {
			actors = append(actors, e)
		}
	})
	for _, e := range actors {
		SetHitWindows(w, e, "", false)
		components.Rig.Get(e).ResetPose()
		a := components.Animator.Get(e)
		a.Clips = clips
		a.Player = anim.Player{}
		a.AttackQueue = false
	}
	return len(actors), nil
}

// HandleFileChange reloads whatever a watched file feeds: the tuning overlay
// or a rig prefab.
func HandleFileChange(w donburi.World, path, tuningPath string) error {
	if tuningPath != "" && filepath.Clean(path) == filepath.Clean(tuningPath) {
		if err := cfg.LoadTuning(path); err != nil {
			return err
		}
		ApplyTuning(w)
		log.Printf("[Reload] tuning %s", path)
		return nil
	}

	if filepath.Clean(filepath.Dir(path)) != filepath.Clean(prefabs.Dir) {
		return nil
	}
	spec, err := prefabs.LoadRigSpec(filepath.Base(path))
	if err != nil {
		return err
	}
	n, err := ReloadClips(w, spec)
	if err != nil {
		return err
	}
	log.Printf("[Reload] %s: clips of %d actors", spec.Name, n)
	return nil
}
