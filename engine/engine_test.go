package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/aether-drift/core"
	"github.com/lixenwraith/aether-drift/parameter"
	"github.com/lixenwraith/aether-drift/universe"
)

const testW, testH = 800, 600

func idleFrame() Frame {
	return Frame{PointerX: testW / 2, PointerY: testH / 2}
}

func heldFrame() Frame {
	return Frame{PointerX: testW / 2, PointerY: testH / 2, PrimaryDown: true}
}

// snapshot captures the full kinematic state of the population
type snap struct {
	count  int
	energy float64
	tick   uint64
	x, y   []float64
	vx, vy []float64
}

func takeSnap(u *Universe) snap {
	s := snap{count: u.Arena.Len(), energy: u.Energy, tick: u.Tick}
	for i := 0; i < u.Arena.Len(); i++ {
		p := u.Arena.At(i)
		s.x = append(s.x, p.X)
		s.y = append(s.y, p.Y)
		s.vx = append(s.vx, p.VX)
		s.vy = append(s.vy, p.VY)
	}
	return s
}

func TestReplayDeterminism(t *testing.T) {
	run := func() snap {
		u := New("TEST-SEED-0001", testW, testH)
		for i := 0; i < 300; i++ {
			f := idleFrame()
			// A scripted input pattern: drag across the canvas with the
			// primary button down for a stretch, then release
			f.PointerX = float64(100 + i)
			f.PointerY = float64(50 + i/2)
			f.PrimaryDown = i > 50 && i < 120
			u.Step(f)
		}
		return takeSnap(u)
	}

	a, b := run(), run()
	require.Equal(t, a.count, b.count, "particle counts diverged")
	assert.Equal(t, a.energy, b.energy)
	for i := range a.x {
		require.Equal(t, a.x[i], b.x[i], "particle %d x diverged", i)
		require.Equal(t, a.y[i], b.y[i], "particle %d y diverged", i)
		require.Equal(t, a.vx[i], b.vx[i], "particle %d vx diverged", i)
		require.Equal(t, a.vy[i], b.vy[i], "particle %d vy diverged", i)
	}
}

func TestSeedRoundTrip(t *testing.T) {
	u := New("TEST-SEED-0001", testW, testH)
	require.Equal(t, "TEST-SEED-0001", u.Profile.Seed)

	first := *u.Profile
	u.Regenerate(u.Profile.Seed)
	assert.Equal(t, first, *u.Profile, "regenerating with the read-back seed must reproduce the profile")
}

func TestIdleUniverseEnergyStaysZero(t *testing.T) {
	u := New("TEST-SEED-0001", testW, testH)

	for i := 0; i < 100; i++ {
		u.Step(idleFrame())
		require.Equal(t, 0.0, u.Energy, "tick %d: energy must stay floored at zero with no input", i)
		require.Equal(t, StabilityStable, u.Stability)
		require.False(t, u.CataclysmActive())
	}
}

func TestHeldButtonChargesLinearly(t *testing.T) {
	u := New("TEST-SEED-0001", testW, testH)
	threshold := u.Profile.MaxEnergy

	var crossedAt uint64
	for i := 0; i < 500; i++ {
		wasActive := u.CataclysmActive()
		u.Step(heldFrame())
		if wasActive {
			break
		}

		if u.Stability == StabilityUnstable && crossedAt == 0 {
			crossedAt = u.Tick
			// Linear charge: energy at the crossing tick is exactly
			// rate * ticks
			assert.InDelta(t, parameter.EnergyChargeRate*float64(u.Tick), u.Energy, 1e-9)
			assert.Greater(t, u.Energy, threshold)
			require.True(t, u.CataclysmActive(), "cataclysm must arm on the crossing tick")
		}
	}
	require.NotZero(t, crossedAt, "threshold never crossed while holding for 500 ticks")
}

func TestCataclysmFiresOnceThenRegenerates(t *testing.T) {
	u := New("TEST-SEED-0001", testW, testH)

	// Drive to instability
	for i := 0; i < 2000 && !u.CataclysmActive(); i++ {
		u.Step(heldFrame())
	}
	require.True(t, u.CataclysmActive())
	oldSeed := u.Profile.Seed

	// Let the script play out; it must end in a fresh universe
	for i := 0; i < 5000 && u.CataclysmActive(); i++ {
		u.Step(idleFrame())
	}
	require.False(t, u.CataclysmActive(), "cataclysm script never completed")
	assert.NotEqual(t, oldSeed, u.Profile.Seed, "regeneration must draw a fresh seed")
	assert.Equal(t, 0.0, u.Energy, "regeneration must reset energy")
	assert.Equal(t, StabilityStable, u.Stability)
	assert.Greater(t, u.Arena.Len(), 0, "new universe must be populated")
}

func TestParticleCapInvariant(t *testing.T) {
	u := New("TEST-SEED-0001", testW, testH)

	for i := 0; i < 50; i++ {
		// Flood well past the cap every tick
		u.EmitBurst(testW/2, testH/2, 100, 2)
		u.Step(idleFrame())
		require.LessOrEqual(t, u.Arena.Len(), parameter.MaxParticleCount,
			"tick %d: population exceeded the cap after the trim step", i)
	}
}

func TestCapEvictsOldestFirst(t *testing.T) {
	u := New("TEST-SEED-0001", testW, testH)
	oldest := u.Arena.At(0).ID

	u.EmitBurst(testW/2, testH/2, parameter.MaxParticleCount, 1)
	u.Step(idleFrame())

	_, ok := u.Arena.Get(oldest)
	assert.False(t, ok, "oldest particle should be evicted first")
}

func TestBondSymmetryEveryTick(t *testing.T) {
	// Scan seeds until one carries pair bonding; the invariant must
	// then hold on every tick of a long run
	for i := 0; i < 200; i++ {
		seed := "bond-scan-" + string(rune('a'+i%26)) + string(rune('a'+(i/26)%26))
		u := New(seed, testW, testH)
		if !hasBonding(u) {
			continue
		}

		for tick := 0; tick < 200; tick++ {
			u.Step(idleFrame())
			rel := u.Arena.Relations()
			rel.ForEachBond(func(a, b core.ID) {
				require.Equal(t, b, rel.BondPartner(a), "tick %d: asymmetric bond", tick)
				require.Equal(t, a, rel.BondPartner(b), "tick %d: asymmetric bond", tick)
				_, okA := u.Arena.Get(a)
				_, okB := u.Arena.Get(b)
				require.True(t, okA && okB, "tick %d: bond references a dead particle", tick)
			})
		}
		return
	}
	t.Skip("no pair-bonding universe in scanned seed range")
}

func TestGridNeighborCompleteness(t *testing.T) {
	u := New("TEST-SEED-0001", testW, testH)
	u.rebuildGrid()

	// Every particle must find itself and any true neighbor within the
	// largest force radius
	for i := 0; i < u.Arena.Len(); i++ {
		p := u.Arena.At(i)
		found := false
		for _, id := range u.nearby(p.X, p.Y, parameter.PairForceRadius) {
			if id == p.ID {
				found = true
				break
			}
		}
		require.True(t, found, "particle %d not discoverable at its own position", i)
	}
}

func TestRegenerateClearsEffects(t *testing.T) {
	u := New("TEST-SEED-0001", testW, testH)
	sentinel := universe.GravityWell{X: -9999, Y: -9999, Radius: 1, Strength: 1, DiesAt: 1 << 60}
	u.Effects.GravityWells = append(u.Effects.GravityWells, sentinel)

	u.Regenerate("another-seed-entirely")
	// Whatever the new universe spawned, the old well must be gone
	for _, w := range u.Effects.GravityWells {
		assert.NotEqual(t, sentinel, w, "stale effect survived regeneration")
	}
	assert.Equal(t, uint64(0), u.Tick)
}

func TestTrailAlphaTracksBlueprint(t *testing.T) {
	u := New("TEST-SEED-0001", testW, testH)
	if u.Profile.Physics.Trails {
		assert.Equal(t, parameter.TrailFadeAlpha, u.TrailAlpha())
	} else {
		assert.Equal(t, parameter.CleanFadeAlpha, u.TrailAlpha())
	}
}

func hasBonding(u *Universe) bool {
	return u.Profile.Has(universe.MutatorPairBonding)
}

// bareUniverse strips the generated content so a scenario can be
// staged by hand: no mutators, no effects, no ambient events, no
// passive pointer pull, and an empty arena
func bareUniverse(t *testing.T) *Universe {
	t.Helper()
	u := New("TEST-SEED-0001", testW, testH)
	u.Profile.Mutators = nil
	u.Profile.Physics.Attraction = 0
	u.Profile.Ambient = universe.AmbientStillSky
	u.Effects.Clear()
	u.Arena.Reset()
	return u
}

func TestBlackHoleAccretionConsumes(t *testing.T) {
	u := bareUniverse(t)
	u.Effects.BlackHoles = append(u.Effects.BlackHoles, universe.BlackHoleField{
		X: 400, Y: 300, Radius: 200, Pull: 0.2, Horizon: parameter.BlackHoleHorizon,
	})

	// Inside the accretion band but well clear of the horizon
	prey := u.Arena.Spawn(440, 300)
	prey.Radius = 2
	id := prey.ID

	u.Step(idleFrame())
	got, ok := u.Arena.Get(id)
	require.True(t, ok, "one tick in the band must not kill the particle outright")
	assert.Equal(t, parameter.ConsumedTicks, got.Consumed,
		"crossing into the accretion band must start the consumption countdown")

	// The countdown plus the inward spiral must finish the particle off
	for i := 0; i < parameter.ConsumedTicks+10; i++ {
		u.Step(idleFrame())
	}
	_, ok = u.Arena.Get(id)
	assert.False(t, ok, "consumed particle survived past its countdown")
}

func TestCoralGrowsOnCrystalNeighbor(t *testing.T) {
	u := bareUniverse(t)

	anchor := u.Arena.Spawn(400, 300)
	anchor.Radius = 2
	anchor.Crystalized = true

	drifter := u.Arena.Spawn(404, 300)
	drifter.Radius = 2
	id := drifter.ID

	// The growth roll is probabilistic per tick; a still particle next
	// to a crystal must calcify within a generous window
	grown := false
	for i := 0; i < 400 && !grown; i++ {
		u.Step(idleFrame())
		p, ok := u.Arena.Get(id)
		require.True(t, ok, "tick %d: still particle died waiting to calcify", i)
		grown = p.Coral
	}
	require.True(t, grown, "no coral growth after 400 ticks beside a crystal")

	p, _ := u.Arena.Get(id)
	assert.True(t, p.Frozen())
	assert.Zero(t, p.VX)
	assert.Zero(t, p.VY)
}

func TestStasisOverridesCrystalSnap(t *testing.T) {
	u := bareUniverse(t)
	// Overlapping regions: the crystal field redirects velocity in an
	// earlier pass, the stasis field zeroes it in a later one, and the
	// later pass must win
	u.Effects.CrystalFields = append(u.Effects.CrystalFields, universe.CrystalFieldRegion{X: 400, Y: 300, Radius: 100})
	u.Effects.StasisFields = append(u.Effects.StasisFields, universe.StasisField{X: 400, Y: 300, Radius: 100})

	p := u.Arena.Spawn(400, 300)
	p.Radius = 2
	p.VX, p.VY = 1.3, 0.7
	id := p.ID

	u.Step(idleFrame())
	got, ok := u.Arena.Get(id)
	require.True(t, ok)
	assert.Zero(t, got.VX, "stasis must zero velocity after the angle snap")
	assert.Zero(t, got.VY)
	assert.Equal(t, 400.0, got.X, "a held particle must not move")
	assert.Equal(t, 300.0, got.Y)
}

func TestDilationSubSteps(t *testing.T) {
	u := bareUniverse(t)
	u.Profile.Physics.Friction = 1.0
	u.Effects.DilationZones = append(u.Effects.DilationZones, universe.DilationZone{
		X: 400, Y: 300, Radius: 250, Factor: 3.0,
	})

	p := u.Arena.Spawn(400, 300)
	p.Radius = 2
	p.VX = 1.0
	id := p.ID

	// An integral factor runs exactly that many resolver chains, so
	// one tick advances the particle three units
	u.Step(idleFrame())
	got, ok := u.Arena.Get(id)
	require.True(t, ok)
	assert.InDelta(t, 403.0, got.X, 1e-9)
	assert.InDelta(t, 1.0, got.VX, 1e-9)
}

func TestDilationZeroFactorFreezesTime(t *testing.T) {
	u := bareUniverse(t)
	u.Profile.Physics.Friction = 1.0
	u.Effects.DilationZones = append(u.Effects.DilationZones, universe.DilationZone{
		X: 400, Y: 300, Radius: 250, Factor: 0,
	})

	p := u.Arena.Spawn(400, 300)
	p.Radius = 2
	p.VX = 1.0
	id := p.ID

	// Factor zero means the skip roll never passes; the whole resolver
	// chain is withheld every tick
	for i := 0; i < 50; i++ {
		u.Step(idleFrame())
	}
	got, ok := u.Arena.Get(id)
	require.True(t, ok)
	assert.Equal(t, 400.0, got.X, "a fully dilated particle must not move")
	assert.Equal(t, 1.0, got.VX, "a fully dilated particle must keep its velocity")
}

func TestQuasarDormantUntilCycleStart(t *testing.T) {
	u := bareUniverse(t)
	u.Effects.Quasars = append(u.Effects.Quasars, universe.QuasarField{
		X: 400, Y: 300, CycleStart: 100,
	})

	// No jet until the cycle opens
	for u.Tick < 100 {
		u.Step(idleFrame())
		require.False(t, u.Effects.Quasars[0].Firing,
			"tick %d: jet fired during the dormant lead-in", u.Tick)
	}

	// The first firing window opens on the tick after the cycle start
	u.Step(idleFrame())
	assert.True(t, u.Effects.Quasars[0].Firing, "jet must open its first window at cycle start")
}
