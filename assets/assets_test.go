package assets

import "testing"

func TestEmbeddedArenas(t *testing.T) {
	arenas, names, err := LoadArenas()
	if err != nil {
		t.Fatalf("LoadArenas: %v", err)
	}
	if len(names) == 0 || arenas["training"] == nil {
		t.Fatalf("names = %v", names)
	}
	a := arenas["training"]
	if len(a.PlayerSpawns) != 1 || len(a.Dummies) != 4 {
		t.Fatalf("training spawns = %d players, %d dummies", len(a.PlayerSpawns), len(a.Dummies))
	}
	if a.PixelsPerMeter != 32 || a.MapWidth != 640 {
		t.Fatalf("training = %+v", a)
	}
}
