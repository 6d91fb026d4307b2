package systems

import (
	"github.com/automoto/bonebrawl/components"
	cfg "github.com/automoto/bonebrawl/config"
	"github.com/automoto/bonebrawl/shared/combat"
	"github.com/automoto/bonebrawl/shared/gamemath"
	"github.com/automoto/bonebrawl/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// Animation events that drive hit windows. A suffix after ':' names a single
// hit collider, e.g. "hitbox_on:Fist_R".
const (
	EventHitboxOn  = "hitbox_on"
	EventHitboxOff = "hitbox_off"
)

// SetHitWindows opens or closes the hit windows owned by owner. An empty
// volume name matches every hit volume of the owner. A window that opens is
// checked against hurt volumes at once, so a window that closes again
// before the next fixed step still lands its hits.
func SetHitWindows(w donburi.World, owner *donburi.Entry, volume string, open bool) int {
	var opened []*donburi.Entry
	n := 0
	tags.Hitbox.Each(w, func(e *donburi.Entry) {
		col := components.Collider.Get(e)
		if col.Owner != owner || (volume != "" && col.Name != volume) {
			return
		}
		hv := components.HitVolume.Get(e)
		if open {
			if !hv.Window.Active() {
				opened = append(opened, e)
			}
			hv.Window.Enable()
		} else {
			hv.Window.Disable()
		}
		col.Enabled = hv.Window.Active()
		n++
	})
	for _, e := range opened {
		SyncVolume(w, e)
		strike(w, e)
	}
	return n
}

// UpdateHitVolumes runs every open hit window against the hurt volumes it
// overlaps. Each owner is struck once per window opening; a volume never
// strikes its own owner.
func UpdateHitVolumes(w donburi.World) {
	var open []*donburi.Entry
	tags.Hitbox.Each(w, func(e *donburi.Entry) {
		if components.HitVolume.Get(e).Window.Active() {
			open = append(open, e)
		}
	})

	// Damage is queued as a component, so strike outside the query.
	for _, e := range open {
		strike(w, e)
	}
}

func strike(w donburi.World, e *donburi.Entry) {
	hv := components.HitVolume.Get(e)
	col := components.Collider.Get(e)
	contacts := hitContacts(w, e, col)
	if len(contacts) == 0 {
		return
	}
	hv.Window.Strike(contacts, func(target donburi.Entity) (combat.Damageable, bool) {
		te := w.Entry(target)
		if !te.Valid() || !te.HasComponent(components.Health) || te.HasComponent(components.Death) {
			return nil, false
		}
		return &damageReceiver{
			world:     w,
			target:    te,
			attacker:  col.Owner,
			volume:    col.Name,
			knockback: knockbackFor(col.Owner, te, hv.Knockback),
		}, true
	})
}

// hitContacts lists the distinct owners of enabled hurt volumes overlapping
// the hit volume e, in broadphase order.
func hitContacts(w donburi.World, e *donburi.Entry, col *components.ColliderData) []donburi.Entity {
	if col.Object == nil {
		return nil
	}
	bounds := col.Bounds(components.Transform.Get(e).Node).Grow(cfg.Combat.VerticalTolerance)
	check := col.Object.Check(0, 0, tags.ResolvHurt)
	if check == nil {
		return nil
	}

	var out []donburi.Entity
	seen := make(map[donburi.Entity]bool)
	for _, obj := range check.Objects {
		other, ok := obj.Data.(*donburi.Entry)
		if !ok || !other.Valid() {
			continue
		}
		oc := components.Collider.Get(other)
		if !oc.Enabled || oc.Owner == nil || oc.Owner == col.Owner {
			continue
		}
		if !bounds.Overlaps(oc.Bounds(components.Transform.Get(other).Node)) {
			continue
		}
		id := oc.Owner.Entity()
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

func knockbackFor(attacker, target *donburi.Entry, strength float64) mgl64.Vec3 {
	if attacker == nil || strength == 0 || !attacker.HasComponent(components.Transform) {
		return mgl64.Vec3{}
	}
	from := components.Transform.Get(attacker).Position()
	to := components.Transform.Get(target).Position()
	dir := gamemath.NormalizeSafe(gamemath.ProjectOnPlane(to.Sub(from), gamemath.Up))
	if dir.LenSqr() == 0 {
		dir = gamemath.ForwardOf(components.Transform.Get(attacker).Rotation())
	}
	return dir.Mul(strength)
}

// damageReceiver queues damage on an entity for UpdateCombat.
type damageReceiver struct {
	world     donburi.World
	target    *donburi.Entry
	attacker  *donburi.Entry
	volume    string
	knockback mgl64.Vec3
}

func (d *damageReceiver) ReceiveDamage(amount int) {
	QueueDamage(d.target, amount, d.knockback, d.attacker)
	components.HitEvents.Publish(d.world, components.HitEvent{
		Attacker: d.attacker,
		Target:   d.target,
		Volume:   d.volume,
		Damage:   amount,
	})
}

// QueueDamage adds to the pending damage of e.
func QueueDamage(e *donburi.Entry, amount int, knockback mgl64.Vec3, attacker *donburi.Entry) {
	if e.HasComponent(components.DamageEvent) {
		dmg := components.DamageEvent.Get(e)
		dmg.Amount += amount
		dmg.Knockback = dmg.Knockback.Add(knockback)
		if attacker != nil {
			dmg.Attacker = attacker
		}
		return
	}
	donburi.Add(e, components.DamageEvent, &components.DamageEventData{
		Amount:    amount,
		Knockback: knockback,
		Attacker:  attacker,
	})
}
