package universe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/aether-drift/parameter"
	"github.com/lixenwraith/aether-drift/vmath"
)

func genFrom(seed string) (*Profile, *Effects) {
	rng := vmath.NewFastRand(vmath.HashSeed(seed))
	return Generate(seed, rng, 800, 600)
}

func TestGenerateDeterminism(t *testing.T) {
	a, ea := genFrom("TEST-SEED-0001")
	b, eb := genFrom("TEST-SEED-0001")

	assert.Equal(t, a, b, "identical seeds must produce identical profiles")
	assert.Equal(t, ea, eb, "identical seeds must produce identical effect registries")
}

func TestGenerateDistinctSeedsDiverge(t *testing.T) {
	seeds := []string{"alpha", "beta", "gamma", "delta", "epsilon", "zeta"}
	same := 0
	first, _ := genFrom(seeds[0])
	for _, s := range seeds[1:] {
		p, _ := genFrom(s)
		if p.Blueprint == first.Blueprint && p.BaseHue == first.BaseHue {
			same++
		}
	}
	assert.Less(t, same, len(seeds)-1, "distinct seeds should not all collapse to one profile")
}

func TestGenerateMutatorInvariants(t *testing.T) {
	for i := 0; i < 200; i++ {
		seed := "seed-" + string(rune('A'+i%26)) + string(rune('0'+i%10)) + string(rune('a'+(i/26)%26))
		p, _ := genFrom(seed)

		require.LessOrEqual(t, len(p.Mutators), 2, "seed %q drew too many mutators", seed)

		seen := map[Mutator]bool{}
		for _, m := range p.Mutators {
			require.False(t, seen[m], "seed %q drew duplicate mutator %v", seed, m)
			seen[m] = true
		}

		// Boundary exclusivity: wrap and absorb can never coexist
		require.False(t, p.Has(MutatorTorusField) && p.Has(MutatorEventHorizon),
			"seed %q carries contradictory boundary mutators", seed)
	}
}

func TestGenerateBoundaryOverride(t *testing.T) {
	found := false
	for i := 0; i < 500 && !found; i++ {
		p, _ := genFrom("boundary-scan-" + string(rune('a'+i%26)) + string(rune('a'+(i/26)%26)))
		if p.Has(MutatorTorusField) {
			found = true
			assert.Equal(t, BoundaryWrap, p.Physics.Boundary, "torus field must force wrap boundary")
		} else if p.Has(MutatorEventHorizon) {
			found = true
			assert.Equal(t, BoundaryAbsorb, p.Physics.Boundary, "event horizon must force absorb boundary")
		}
	}
	if !found {
		t.Skip("no boundary mutator drawn in scanned seed range")
	}
}

func TestGenerateAnomalyPopulatesEffects(t *testing.T) {
	for i := 0; i < 300; i++ {
		seed := "anomaly-scan-" + string(rune('a'+i%26)) + string(rune('a'+(i/26)%26))
		p, e := genFrom(seed)
		if p.Anomaly == AnomalyNone {
			continue
		}
		total := len(e.Nebulae) + len(e.Pulsars) + len(e.BlackHoles) + len(e.WhiteHoles) +
			len(e.CosmicWebs) + len(e.Quasars) + len(e.Rifts) + len(e.IonClouds) +
			len(e.Supergiants) + len(e.CrystalFields) + len(e.NegativeSpaces) +
			len(e.StellarWinds) + len(e.NoiseFields) + len(e.Accelerators) +
			len(e.FoamPatches) + len(e.EchoVoids) + len(e.MagneticStorms) +
			len(e.Geysers) + len(e.TemporalRifts) + len(e.SolarFlares) + len(e.Nurseries)
		require.Greater(t, total, 0,
			"seed %q drew anomaly %v but spawned no effect records", seed, p.Anomaly)
	}
}

func TestGenerateEnergyThresholdWithinBounds(t *testing.T) {
	for _, seed := range []string{"one", "two", "three", "four"} {
		p, _ := genFrom(seed)
		assert.GreaterOrEqual(t, p.MaxEnergy, 90.0)
		assert.Less(t, p.MaxEnergy, 160.0)
	}
}

func TestEffectsClear(t *testing.T) {
	_, e := genFrom("TEST-SEED-0001")
	e.GravityWells = append(e.GravityWells, GravityWell{X: 1, Y: 2, Radius: 3})
	e.Clear()
	assert.Empty(t, e.GravityWells)
	assert.Empty(t, e.Nebulae)
	assert.Empty(t, e.Entangled)
}

func TestSpawnQuasarStampsDormantCycle(t *testing.T) {
	rng := vmath.NewFastRand(vmath.HashSeed("quasar-cycle"))
	e := NewEffects()
	SpawnAnomaly(AnomalyQuasar, rng, e, 800, 600)

	require.Len(t, e.Quasars, 1)
	q := e.Quasars[0]
	assert.NotZero(t, q.CycleStart, "a fresh quasar must open with a dormant lead-in")
	assert.LessOrEqual(t, q.CycleStart, uint64(parameter.QuasarCyclePeriod))
	assert.False(t, q.Firing)
}

func TestCatalogNames(t *testing.T) {
	assert.Equal(t, "Black Hole", AnomalyBlackHole.String())
	assert.Equal(t, "Torus Field", MutatorTorusField.String())
	assert.Equal(t, "Big Crunch", CataclysmBigCrunch.String())
	assert.Equal(t, "Gravity Well", PowerGravityWell.String())
	assert.True(t, PowerGravityWell.Held())
	assert.False(t, PowerShockwave.Held())
}
