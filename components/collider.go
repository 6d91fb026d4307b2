package components

import (
	"fmt"
	"strings"

	"github.com/automoto/bonebrawl/shared/gamemath"
	"github.com/automoto/bonebrawl/shared/transform"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ShapeKind int

const (
	ShapeBox ShapeKind = iota
	ShapeSphere
	ShapeCapsule
)

func (s ShapeKind) String() string {
	switch s {
	case ShapeSphere:
		return "sphere"
	case ShapeCapsule:
		return "capsule"
	default:
		return "box"
	}
}

// ParseShape maps a prefab shape name onto a ShapeKind. An empty name is a box.
func ParseShape(name string) (ShapeKind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "box":
		return ShapeBox, nil
	case "sphere":
		return ShapeSphere, nil
	case "capsule":
		return ShapeCapsule, nil
	}
	return ShapeBox, fmt.Errorf("unknown collider shape %q", name)
}

// VolumeRole says what a collider does in combat.
type VolumeRole int

const (
	RoleSolid VolumeRole = iota
	RoleHit              // deals damage while its hit window is active
	RoleHurt             // receives damage for its owner
)

func (r VolumeRole) String() string {
	switch r {
	case RoleHit:
		return "hit"
	case RoleHurt:
		return "hurt"
	default:
		return "solid"
	}
}

// ParseRole maps a prefab role name onto a VolumeRole. An empty name is solid.
func ParseRole(name string) (VolumeRole, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "solid":
		return RoleSolid, nil
	case "hit", "hitbox":
		return RoleHit, nil
	case "hurt", "hurtbox":
		return RoleHurt, nil
	}
	return RoleSolid, fmt.Errorf("unknown collider role %q", name)
}

// ColliderData is a volume attached to a transform. Center is local to the
// collider's node; Size is the full box extent. Capsules are upright along the
// node's local Y axis.
type ColliderData struct {
	Name      string
	Shape     ShapeKind
	Center    mgl64.Vec3
	Size      mgl64.Vec3
	Radius    float64
	Height    float64
	IsTrigger bool
	Layer     int
	Role      VolumeRole
	Enabled   bool
	Owner     *donburi.Entry // actor the volume belongs to
	Object    *resolv.Object // ground-plane footprint in the arena space
}

var Collider = donburi.NewComponentType[ColliderData]()

// WorldCenter returns the collider centre in world space.
func (c *ColliderData) WorldCenter(node *transform.Node) mgl64.Vec3 {
	return node.TransformPoint(c.Center)
}

// Bounds returns the world-space bounds of the collider placed by node.
func (c *ColliderData) Bounds(node *transform.Node) gamemath.AABB {
	pose := node.World()
	switch c.Shape {
	case ShapeSphere:
		return gamemath.BoundsOfSphere(pose, c.Center, c.Radius)
	case ShapeCapsule:
		return gamemath.BoundsOfCapsule(pose, c.Center, c.Radius, c.Height)
	default:
		return gamemath.BoundsOfBox(pose, c.Center, c.Size)
	}
}
