package entity

import (
	"math/rand/v2"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"chosenoffset.com/omegathunder/internal/timer"
)

func newRand() *rand.Rand { return rand.New(rand.NewPCG(11, 12)) }

func TestLaserLifecycle(t *testing.T) {
	var l Laser
	l.Recycle()
	if l.State() != LaserIdle {
		t.Fatalf("Expected idle, got %s", l.State())
	}

	l.Launch(mgl32.Vec3{0, 4, 0}, LaserRadius, mgl32.Vec3{0, 0, 2}, 1000)
	if l.State() != LaserTraveling {
		t.Fatalf("Expected traveling, got %s", l.State())
	}
	if l.Trajectory.Direction != (mgl32.Vec3{0, 0, 1}) {
		t.Errorf("Expected a normalized direction, got %v", l.Trajectory.Direction)
	}

	l.HitTimer.Start()
	if l.State() != LaserHitEffect {
		t.Fatalf("Expected hit effect, got %s", l.State())
	}

	l.Recycle()
	if l.State() != LaserIdle || l.HitIndex != NoTarget || l.Hit {
		t.Errorf("Expected a clean idle laser, got %+v", l)
	}
}

func TestLaserMoveShiftedAccumulates(t *testing.T) {
	var l Laser
	l.Launch(mgl32.Vec3{}, LaserRadius, mgl32.Vec3{0, 0, 1}, 1000)

	// 100 units of travel per tick, 10 units of world scroll per tick
	l.MoveShifted(100, 10)
	if z := l.Position.Z(); z != 90 {
		t.Errorf("Expected z 90 after one tick, got %f", z)
	}
	l.MoveShifted(100, 10)
	// accumulated travel 200 minus accumulated shift 20
	if z := l.Position.Z(); z != 270 {
		t.Errorf("Expected z 270 after two ticks, got %f", z)
	}
	if l.Sphere.Center != l.Position {
		t.Error("Expected the sphere to follow the laser")
	}
}

func TestEnemyRangeCheck(t *testing.T) {
	var l Laser
	l.Launch(mgl32.Vec3{1500, 0, 0}, LaserRadius, mgl32.Vec3{0, 0, -1}, 750)
	if l.PastEnemyRange(false) {
		t.Error("Expected the depth only check to ignore x")
	}
	if !l.PastEnemyRange(true) {
		t.Error("Expected the strict check to recycle a laser far off to the side")
	}
	l.Position = mgl32.Vec3{0, 0, -MaxProjectileDistance}
	if !l.PastEnemyRange(false) {
		t.Error("Expected the depth check to trigger at the limit")
	}
}

func TestLaserRingRoundRobin(t *testing.T) {
	r := NewLaserRing(2)
	a := r.Next()
	a.Draw = true
	b := r.Next()
	b.Draw = true
	if r.Next() != nil {
		t.Error("Expected no laser while the slot at the index is in flight")
	}
	a.Recycle()
	if got := r.Next(); got != a {
		t.Error("Expected the ring to wrap back to the first slot")
	}
}

func TestRaiuFireRespectsCooldown(t *testing.T) {
	r := NewRaiu()
	l := r.Fire()
	if l == nil {
		t.Fatal("Expected the first shot to fire")
	}
	if want := r.Sphere.Center.X() + 1; l.Position.X() != want {
		t.Errorf("Expected muzzle x %f, got %f", want, l.Position.X())
	}
	if r.Fire() != nil {
		t.Error("Expected the cooldown to block a second shot")
	}
	r.Gun.Advance(GunDelay)
	if r.Fire() == nil {
		t.Error("Expected a shot once the cooldown filled")
	}
	if r.Lasers.Active() != 2 {
		t.Errorf("Expected 2 lasers in flight, got %d", r.Lasers.Active())
	}
}

func TestBladeCombo(t *testing.T) {
	b := Blade{Delay: BladeDelay}
	if b.Press() != SwingFirst {
		t.Fatal("Expected the first press to start swing one")
	}
	if b.Press() != SwingNone {
		t.Error("Expected a press outside the combo window to do nothing")
	}
	b.Advance(200)
	if b.Press() != SwingCombo {
		t.Fatal("Expected a press 200ms in to chain the combo")
	}
	if b.Press() != SwingNone {
		t.Error("Expected the combo to chain only once")
	}
	b.Advance(180)
	if !b.Active() {
		t.Error("Expected the combo to still hurt at 380ms")
	}
	b.Advance(100)
	if b.Active() {
		t.Error("Expected the combo to stop hurting after 400ms")
	}
	for i := 0; i < 10; i++ {
		b.Advance(100)
	}
	if b.Timer.Running() || b.First || b.Second {
		t.Error("Expected the swing to end after its delay")
	}
}

func TestBladeDoubleSwingExplodesOnce(t *testing.T) {
	h := Hoshu{HP: 100}
	b := Blade{Delay: BladeDelay}
	b.Press()
	b.Advance(200)
	b.Press()

	started := 0
	for tick := 0; tick < 5; tick++ {
		h.BladeHit(&b, 50)
		if h.TryExplode() {
			started++
		}
	}
	if h.HP != 0 {
		t.Errorf("Expected hp 0, got %d", h.HP)
	}
	if started != 1 {
		t.Errorf("Expected exactly one explosion start, got %d", started)
	}
	if !h.Exploding() {
		t.Error("Expected the enemy to be exploding")
	}
}

func TestHoshuPoolSpawnsOnlyIntoFreeSlots(t *testing.T) {
	rng := newRand()
	p := NewHoshuPool(2)

	if h := p.Spawn(rng, 0, 1); h != nil {
		t.Fatal("Expected a failed roll to spawn nothing")
	}
	first := p.Spawn(rng, 1, 1)
	second := p.Spawn(rng, 1, 2)
	if first == nil || second == nil {
		t.Fatal("Expected two spawns")
	}
	if second.HP != 200 || second.Score != 400 || second.GunDamage != 20 {
		t.Errorf("Expected level 2 stats, got hp %d score %d dmg %d", second.HP, second.Score, second.GunDamage)
	}
	if p.Index() != 0 {
		t.Errorf("Expected the index to wrap at the cap, got %d", p.Index())
	}
	if p.Spawn(rng, 1, 1) != nil {
		t.Error("Expected no spawn into an occupied slot")
	}
	if p.Count != 2 {
		t.Errorf("Expected 2 active enemies, got %d", p.Count)
	}

	first.Deactivate()
	if p.Spawn(rng, 1, 1) != first {
		t.Error("Expected the freed slot to be reused")
	}
	if x := first.Position.X(); x < -BoundaryX || x > BoundaryX {
		t.Errorf("Expected spawn x inside the lane, got %f", x)
	}
	if first.Gun.Ready() {
		t.Error("Expected a fresh enemy to wait before firing")
	}
}

func TestHoshuAimClampsAndFires(t *testing.T) {
	var h Hoshu
	h.Lasers = NewLaserRing(HoshuMaxLaserCount)
	h.Place(mgl32.Vec3{50, 0, -10})
	if yaw := h.Aim(mgl32.Vec3{0, 0, 0}); yaw != 80 {
		t.Errorf("Expected the turret clamped to 80, got %f", yaw)
	}
	h.Place(mgl32.Vec3{0, 0, 100})
	if yaw := h.Aim(mgl32.Vec3{0, 0, 0}); yaw < -0.01 || yaw > 0.01 {
		t.Errorf("Expected a straight ahead aim, got %f", yaw)
	}

	h.Gun = timer.NewCooldown(EnemyGunDelay)
	h.FireRate = 1
	l := h.Fire(newRand())
	if l == nil {
		t.Fatal("Expected a shot")
	}
	if l.Trajectory.Velocity != EnemyLaserSpeed {
		t.Errorf("Expected speed %d, got %f", EnemyLaserSpeed, l.Trajectory.Velocity)
	}
	if l.Trajectory.Direction.Z() > -0.99 {
		t.Errorf("Expected the shot to head toward the player, got %v", l.Trajectory.Direction)
	}
	if h.Fire(newRand()) != nil {
		t.Error("Expected the cooldown to block a second shot")
	}
}

func TestLevelUp(t *testing.T) {
	player, enemy := LevelThresholds()
	if player[0] != 1000 || player[3] != 8000 || enemy[2] != 80 {
		t.Errorf("Unexpected thresholds %v %v", player, enemy)
	}

	r := NewRaiu()
	r.Exp = 1999
	if r.LevelUp(player) {
		t.Error("Expected level one to need the level one threshold")
	}
	r.Exp = 2000
	if !r.LevelUp(player) {
		t.Fatal("Expected a level up")
	}
	if r.GunLevel != 2 || r.BladeDamage != 100 || r.GunDamage != 50 || r.Exp != 0 {
		t.Errorf("Unexpected stats after level up: %+v", r)
	}

	r.BladeLevel, r.GunLevel = MaxLevel, MaxLevel
	r.Exp = 1 << 30
	if r.LevelUp(player) {
		t.Error("Expected no level past the maximum")
	}
}

func TestHealClampsAndChance(t *testing.T) {
	r := NewRaiu()
	r.HP = 900
	r.Heal(HealAmount)
	if r.HP != RaiuMaxHP {
		t.Errorf("Expected hp clamped to %d, got %d", RaiuMaxHP, r.HP)
	}
	if HealChance(800) != healChanceHigh || HealChance(750) != healChanceLow {
		t.Error("Expected the low chance only above 75% hp")
	}
}

func TestDamageStopsAtZero(t *testing.T) {
	r := NewRaiu()
	r.HP = 30
	if r.Damage(20) {
		t.Error("Expected the player to survive the first hit")
	}
	if !r.Damage(25) {
		t.Error("Expected the second hit to take the player down")
	}
	if r.HP != 0 {
		t.Errorf("Expected hp 0, got %d", r.HP)
	}
	if r.HPFactor() != 0 {
		t.Errorf("Expected hp factor 0, got %v", r.HPFactor())
	}
}

func TestAddScoreSaturates(t *testing.T) {
	if got := AddScore(MaxScore-100, 200); got != MaxScore {
		t.Errorf("Expected %d, got %d", MaxScore, got)
	}
	if got := AddScore(100, 200); got != 300 {
		t.Errorf("Expected 300, got %d", got)
	}
}

func TestGroundLeapfrog(t *testing.T) {
	g := NewGround()
	g.Scroll(5000)
	if g.Z[0] != GroundInitZ-MaxGroundLength {
		t.Fatalf("Expected the first tile at %d, got %f", GroundInitZ-MaxGroundLength, g.Z[0])
	}
	g.Scroll(10)
	if g.Z[0] != g.Z[1]+MaxGroundLength {
		t.Errorf("Expected the first tile to jump behind the second, got %v", g.Z)
	}
}

func TestStructuresRoundRobinAndRecycle(t *testing.T) {
	rng := newRand()
	var s Structures
	spawned := 0
	for i := 0; i < 5000 && spawned < MaxStructureCount+1; i++ {
		if s.Update(rng, StructureInterval, false) >= 0 {
			spawned++
		}
	}
	if spawned != MaxStructureCount+1 {
		t.Fatalf("Expected %d spawns, got %d", MaxStructureCount+1, spawned)
	}
	if s.Index() != 1 {
		t.Errorf("Expected the index to wrap to 1, got %d", s.Index())
	}

	s.Reset()
	for i := 0; i < 1000; i++ {
		if s.Update(rng, StructureInterval, false) >= 0 {
			break
		}
	}
	st := s.Slots[0]
	if !st.Spawned {
		t.Fatal("Expected a structure in slot 0")
	}
	if st.Type == 2 && st.Side != SideBoth {
		t.Error("Expected type 2 to span both sides")
	}
	s.Update(rng, 0, true)
	s.Slots[0].Position[2] = GroundInitZ - MaxGroundLength + 1
	s.Update(rng, 1, true)
	if s.Slots[0].Spawned {
		t.Error("Expected the structure to recycle behind the trailing tile")
	}
}
