package leveldata

import (
	"testing"
	"testing/fstest"
)

const arenaTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="10" height="8" tilewidth="32" tileheight="32" infinite="0" nextlayerid="3" nextobjectid="5">
 <properties>
  <property name="pixelsPerMeter" type="float" value="32"/>
 </properties>
 <objectgroup id="1" name="PlayerSpawn">
  <object id="1" x="96" y="64">
   <properties>
    <property name="spawnIndex" type="int" value="1"/>
   </properties>
   <point/>
  </object>
  <object id="2" x="160" y="64">
   <properties>
    <property name="spawnIndex" type="int" value="0"/>
    <property name="yaw" type="float" value="90"/>
   </properties>
   <point/>
  </object>
 </objectgroup>
 <objectgroup id="2" name="Dummies">
  <object id="3" x="224" y="192">
   <properties>
    <property name="rig" value="dummy.yaml"/>
    <property name="yaw" type="float" value="180"/>
   </properties>
   <point/>
  </object>
  <object id="4" x="64" y="192">
   <point/>
  </object>
 </objectgroup>
</map>
`

func TestLoadArena(t *testing.T) {
	fsys := fstest.MapFS{"arenas/pit.tmx": {Data: []byte(arenaTMX)}}

	a, err := LoadArena(fsys, "arenas/pit.tmx")
	if err != nil {
		t.Fatalf("LoadArena: %v", err)
	}
	if a.Name != "pit" || a.MapWidth != 320 || a.MapHeight != 256 {
		t.Fatalf("arena = %+v", a)
	}
	if a.PixelsPerMeter != 32 {
		t.Fatalf("pixelsPerMeter = %v", a.PixelsPerMeter)
	}
	if len(a.PlayerSpawns) != 2 || a.PlayerSpawns[0].Index != 0 || a.PlayerSpawns[0].Yaw != 90 {
		t.Fatalf("player spawns = %+v", a.PlayerSpawns)
	}
	if len(a.Dummies) != 2 || a.Dummies[0].X != 64 || a.Dummies[1].Rig != "dummy.yaml" {
		t.Fatalf("dummies = %+v", a.Dummies)
	}

	x, z := a.Dummies[1].World(a.PixelsPerMeter)
	if x != 7 || z != 6 {
		t.Fatalf("world = %v, %v", x, z)
	}
}

func TestLoadAllArenas(t *testing.T) {
	fsys := fstest.MapFS{
		"arenas/b.tmx": {Data: []byte(arenaTMX)},
		"arenas/a.tmx": {Data: []byte(arenaTMX)},
	}
	arenas, names, err := LoadAllArenas(fsys, "arenas")
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 2 || names[0] != "a" || arenas["b"] == nil {
		t.Fatalf("names = %v", names)
	}

	if _, _, err := LoadAllArenas(fstest.MapFS{}, "arenas"); err == nil {
		t.Fatal("expected an error for an empty directory")
	}
}
