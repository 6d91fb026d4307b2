package prefabs

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/automoto/bonebrawl/shared/binding"
	"github.com/automoto/bonebrawl/shared/skeleton"
	"github.com/go-gl/mathgl/mgl64"
)

func TestEmbeddedRigsLoad(t *testing.T) {
	for _, name := range []string{"brawler.yaml", "dummy.yaml"} {
		t.Run(name, func(t *testing.T) {
			spec, err := LoadRigSpec(name)
			if err != nil {
				t.Fatalf("LoadRigSpec: %v", err)
			}
			if spec.Skeleton.Name == "" || len(spec.Colliders) == 0 {
				t.Fatalf("spec looks empty: %+v", spec)
			}
			if _, err := BuildClips(spec.Clips); err != nil {
				t.Fatalf("BuildClips: %v", err)
			}
		})
	}
}

func TestBuildSkeletonWorldPositions(t *testing.T) {
	spec, err := LoadRigSpec("brawler.yaml")
	if err != nil {
		t.Fatal(err)
	}
	root := BuildSkeleton(nil, spec.Skeleton)
	reg := skeleton.New(root)

	hand, ok := reg.Find("hand_r")
	if !ok {
		t.Fatal("hand_r missing")
	}
	if got, want := hand.Position(), (mgl64.Vec3{0.73, 1.55, 0}); got.Sub(want).Len() > 1e-9 {
		t.Fatalf("hand_r at %v, want %v", got, want)
	}

	// every hit and hurt volume should sit closest to the joint it is named for
	expect := map[string]string{
		"Fist_R":     "hand_r",
		"Fist_L":     "hand_l",
		"Hurt_Head":  "head",
		"Hurt_Chest": "chest",
		"Hurt_Hips":  "hips",
		"Hurt_Leg_R": "shin_r",
	}
	for _, c := range spec.Colliders {
		want, ok := expect[c.Name]
		if !ok {
			continue
		}
		j, _ := reg.Nearest(c.Position)
		if j.Name != want {
			t.Fatalf("%s nearest %s, want %s", c.Name, j.Name, want)
		}
	}
}

func TestBuildClipsSortsAndEases(t *testing.T) {
	clips, err := BuildClips([]ClipSpec{{
		Name:     "swing",
		Duration: 1,
		Tracks: []TrackSpec{{
			Joint: "arm",
			Keys: []KeySpec{
				{Time: 1, Rotation: mgl64.Vec3{0, 90, 0}, Ease: "outquad"},
				{Time: 0},
			},
		}},
		Events: []EventSpec{{Time: 0.8, Name: "b"}, {Time: 0.2, Name: "a"}},
	}})
	if err != nil {
		t.Fatal(err)
	}
	c := clips["swing"]
	if c.Tracks[0].Keys[0].Time != 0 || c.Events[0].Name != "a" {
		t.Fatalf("clip not normalized: %+v", c)
	}

	if _, err := BuildClips([]ClipSpec{{Name: "bad", Tracks: []TrackSpec{{Joint: "x", Keys: []KeySpec{{Ease: "wobble"}}}}}}); err == nil {
		t.Fatal("expected an error for an unknown ease")
	}
}

func TestValidate(t *testing.T) {
	spec := RigSpec{
		Skeleton: JointSpec{Name: "root"},
		Colliders: []ColliderSpec{
			{Name: "a", Layer: 40},
			{Name: "a"},
		},
		Bind:  BindSpec{Maps: []NameMapSpec{{Collider: "missing", Joint: "root"}}},
		Clips: []ClipSpec{{Name: "c", Tracks: []TrackSpec{{Joint: "nope"}}}},
	}
	err := spec.Validate()
	if err == nil {
		t.Fatal("expected validation errors")
	}
	for _, want := range []string{"layer 40", "duplicate collider", "unknown collider", "unknown joint"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("error %q does not mention %q", err, want)
		}
	}
}

func TestLayerMask(t *testing.T) {
	if LayerMask(nil) != binding.AllLayers {
		t.Fatal("empty layer list should select all layers")
	}
	if got := LayerMask([]int{8, 9, 40}); got != (1<<8 | 1<<9) {
		t.Fatalf("mask = %b", got)
	}
}

func TestFollowTiming(t *testing.T) {
	got, err := FollowTiming("", binding.TimingFixed)
	if err != nil || got != binding.TimingFixed {
		t.Fatalf("fallback = %v, %v", got, err)
	}
	if _, err := FollowTiming("sometimes", binding.TimingLate); err == nil {
		t.Fatal("expected an error")
	}
}

func TestDiskOverride(t *testing.T) {
	old := Dir
	Dir = t.TempDir()
	t.Cleanup(func() { Dir = old })

	doc := "name: tiny\nskeleton:\n  name: root\n"
	if err := os.WriteFile(filepath.Join(Dir, "brawler.yaml"), []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	spec, err := LoadRigSpec("prefabs/brawler.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if spec.Name != "tiny" {
		t.Fatalf("loaded %q, want the on-disk copy", spec.Name)
	}
}

func TestWatcherReportsYAMLWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	target := filepath.Join(dir, "rig.yaml")
	if err := os.WriteFile(target, []byte("name: x\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-w.Events:
		if filepath.Base(name) != "rig.yaml" {
			t.Fatalf("event for %s", name)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no event for a yaml write")
	}
}

func TestJointPose(t *testing.T) {
	p := JointSpec{Position: mgl64.Vec3{1, 2, 3}, Rotation: mgl64.Vec3{0, 90, 0}}.Pose()
	fwd := p.Rotation.Rotate(mgl64.Vec3{0, 0, 1})
	if math.Abs(fwd.X()-1) > 1e-9 {
		t.Fatalf("yaw 90 forward = %v, want +X", fwd)
	}
}

func TestWatcherReportsAfterWritesSettle(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	target := filepath.Join(dir, "tuning.yaml")
	full := "dash:\n  speed: 12\n"
	// A save that lands in two writes.
	if err := os.WriteFile(target, []byte("dash:\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(quiet / 4)
	if err := os.WriteFile(target, []byte(full), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-w.Events:
		data, err := os.ReadFile(name)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != full {
			t.Fatalf("reported before the last write: %q", data)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no event")
	}

	select {
	case name := <-w.Events:
		t.Fatalf("second event for %s", name)
	case <-time.After(3 * quiet):
	}
}

func TestOffsetSpec(t *testing.T) {
	off := OffsetSpec{Position: mgl64.Vec3{0, 0, 0.1}, Rotation: mgl64.Vec3{0, 90, 0}}.Offset()
	if off.Position != (mgl64.Vec3{0, 0, 0.1}) {
		t.Fatalf("position = %v", off.Position)
	}
	if fwd := off.Rotation.Rotate(mgl64.Vec3{0, 0, 1}); math.Abs(fwd.X()-1) > 1e-9 {
		t.Fatalf("yaw 90 forward = %v, want +X", fwd)
	}
}
