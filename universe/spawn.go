package universe

import (
	"github.com/lixenwraith/aether-drift/core"
	"github.com/lixenwraith/aether-drift/parameter"
	"github.com/lixenwraith/aether-drift/vmath"
)

// Spawn functions populate the effects registry for a mutator or
// anomaly at generation time. They are pure functions of (rng,
// effects, canvas size): append-only, never reading simulation state,
// so the order multiple mutators spawn in is commutative

// SpawnAnomaly appends the records for one anomaly kind
func SpawnAnomaly(a Anomaly, rng *vmath.FastRand, e *Effects, w, h float64) {
	switch a {
	case AnomalyNebula:
		e.Nebulae = append(e.Nebulae, NebulaField{
			X: rng.Range(0, w), Y: rng.Range(0, h),
			Radius: rng.Range(0.2, 0.4) * min(w, h),
			Hue:    rng.Range(0, 360),
		})
	case AnomalyPulsar:
		e.Pulsars = append(e.Pulsars, PulsarField{
			X: rng.Range(0.2, 0.8) * w, Y: rng.Range(0.2, 0.8) * h,
			Angle: rng.Range(0, 6.2831853),
			Spin:  rng.Range(0.01, 0.04),
			Reach: rng.Range(0.3, 0.6) * min(w, h),
		})
	case AnomalyBlackHole:
		e.BlackHoles = append(e.BlackHoles, BlackHoleField{
			X: rng.Range(0.2, 0.8) * w, Y: rng.Range(0.2, 0.8) * h,
			Radius:  rng.Range(0.25, 0.45) * min(w, h),
			Pull:    parameter.BlackHolePull,
			Horizon: parameter.BlackHoleHorizon,
			Wander:  rng.Chance(0.35),
		})
	case AnomalyWhiteHole:
		e.WhiteHoles = append(e.WhiteHoles, WhiteHoleField{
			X: rng.Range(0.2, 0.8) * w, Y: rng.Range(0.2, 0.8) * h,
			Radius: rng.Range(0.2, 0.4) * min(w, h),
			Push:   parameter.WhiteHolePush,
		})
	case AnomalyCosmicWeb:
		n := 4 + rng.Intn(4)
		nodes := make([]core.Vec2, n)
		for i := range nodes {
			nodes[i] = core.Vec2{X: rng.Range(0, w), Y: rng.Range(0, h)}
		}
		e.CosmicWebs = append(e.CosmicWebs, CosmicWebField{Nodes: nodes})
	case AnomalyQuasar:
		e.Quasars = append(e.Quasars, QuasarField{
			X: rng.Range(0.3, 0.7) * w, Y: rng.Range(0.3, 0.7) * h,
			Angle: rng.Range(0, 6.2831853),
			// Dormant for a random fraction of one cycle, so the first
			// jet never fires on the opening tick of a universe
			CycleStart: uint64(1 + rng.Intn(parameter.QuasarCyclePeriod)),
		})
	case AnomalyCosmicRift:
		e.Rifts = append(e.Rifts, RiftField{
			X: rng.Range(0.1, 0.9) * w, Y: rng.Range(0.1, 0.9) * h,
			Radius: rng.Range(12, 30),
		})
	case AnomalyIonCloud:
		e.IonClouds = append(e.IonClouds, IonCloudField{
			X: rng.Range(0.2, 0.8) * w, Y: rng.Range(0.2, 0.8) * h,
			Radius: rng.Range(0.15, 0.35) * min(w, h),
		})
	case AnomalySupergiant:
		e.Supergiants = append(e.Supergiants, SupergiantField{
			X: rng.Range(0.3, 0.7) * w, Y: rng.Range(0.3, 0.7) * h,
			Radius: rng.Range(0.5, 0.9) * min(w, h),
		})
	case AnomalyCrystalField:
		e.CrystalFields = append(e.CrystalFields, CrystalFieldRegion{
			X: rng.Range(0.2, 0.8) * w, Y: rng.Range(0.2, 0.8) * h,
			Radius: rng.Range(0.2, 0.4) * min(w, h),
		})
	case AnomalyNegativeSpace:
		e.NegativeSpaces = append(e.NegativeSpaces, NegativeSpaceRegion{
			X: rng.Range(0.1, 0.9) * w, Y: rng.Range(0.1, 0.9) * h,
			Radius: rng.Range(0.08, 0.18) * min(w, h),
		})
	case AnomalyStellarWind:
		dx, dy := vmath.Normalize(rng.Range(-1, 1), rng.Range(-1, 1))
		if dx == 0 && dy == 0 {
			dx = 1
		}
		e.StellarWinds = append(e.StellarWinds, StellarWindField{DirX: dx, DirY: dy})
	case AnomalyBackgroundNoise:
		e.NoiseFields = append(e.NoiseFields, NoiseField{
			Amplitude: rng.Range(0.5, 1.5) * parameter.NoiseJitter,
		})
	case AnomalyAcceleratorRing:
		e.Accelerators = append(e.Accelerators, AcceleratorRing{
			X: w / 2, Y: h / 2,
			Radius: rng.Range(0.25, 0.4) * min(w, h),
			Band:   rng.Range(10, 25),
		})
	case AnomalySpacetimeFoam:
		e.FoamPatches = append(e.FoamPatches, FoamPatch{
			X: rng.Range(0.2, 0.8) * w, Y: rng.Range(0.2, 0.8) * h,
			Radius: rng.Range(0.1, 0.25) * min(w, h),
			DiesAt: parameter.FoamPatchLife,
		})
	case AnomalyEchoingVoid:
		e.EchoVoids = append(e.EchoVoids, EchoVoid{
			X: rng.Range(0.2, 0.8) * w, Y: rng.Range(0.2, 0.8) * h,
			Radius: rng.Range(0.1, 0.2) * min(w, h),
		})
	case AnomalyMagneticStorm:
		e.MagneticStorms = append(e.MagneticStorms, MagneticStormField{
			Polarity: 1,
			NextFlip: parameter.StormFlipPeriod,
		})
	case AnomalyGeyser:
		e.Geysers = append(e.Geysers, GeyserField{
			X:        rng.Range(0.2, 0.8) * w,
			NextEmit: parameter.GeyserEmitPeriod,
		})
	case AnomalyTemporalRift:
		e.TemporalRifts = append(e.TemporalRifts, TemporalRiftField{
			X: rng.Range(0.2, 0.8) * w, Y: rng.Range(0.2, 0.8) * h,
			Radius: rng.Range(20, 50),
			DiesAt: parameter.TemporalRiftLife,
		})
	case AnomalySolarFlare:
		e.SolarFlares = append(e.SolarFlares, SolarFlareField{
			X: rng.Range(0.3, 0.7) * w, Y: rng.Range(0.3, 0.7) * h,
			NextBurst: parameter.FlareBurstPeriod,
		})
	case AnomalyCosmicNursery:
		e.Nurseries = append(e.Nurseries, NurseryField{
			X: rng.Range(0.2, 0.8) * w, Y: rng.Range(0.2, 0.8) * h,
			Radius:   rng.Range(30, 80),
			NextEmit: parameter.NurseryEmitPeriod,
		})
	}
}

// SpawnMutator appends region records for mutators that carry spatial
// state. Most mutators are rule changes with no records to spawn
func SpawnMutator(m Mutator, rng *vmath.FastRand, e *Effects, w, h float64) {
	switch m {
	case MutatorTimeDilation:
		n := 1 + rng.Intn(3)
		for i := 0; i < n; i++ {
			factor := rng.Range(0.4, 2.2)
			e.DilationZones = append(e.DilationZones, DilationZone{
				X: rng.Range(0, w), Y: rng.Range(0, h),
				Radius: rng.Range(0.1, 0.25) * min(w, h),
				Factor: factor,
			})
		}
	case MutatorStasisPockets:
		n := 2 + rng.Intn(3)
		for i := 0; i < n; i++ {
			e.StasisFields = append(e.StasisFields, StasisField{
				X: rng.Range(0, w), Y: rng.Range(0, h),
				Radius: rng.Range(15, 45),
			})
		}
	case MutatorPhaseShift:
		n := 1 + rng.Intn(2)
		for i := 0; i < n; i++ {
			e.PhaseZones = append(e.PhaseZones, PhaseZone{
				X: rng.Range(0, w), Y: rng.Range(0, h),
				Radius: rng.Range(0.15, 0.3) * min(w, h),
			})
		}
	case MutatorSilkWeave:
		n := 2 + rng.Intn(4)
		for i := 0; i < n; i++ {
			e.SilkThreads = append(e.SilkThreads, SilkThread{
				A: core.Vec2{X: rng.Range(0, w), Y: rng.Range(0, h)},
				B: core.Vec2{X: rng.Range(0, w), Y: rng.Range(0, h)},
			})
		}
	case MutatorCosmicRivers:
		n := 1 + rng.Intn(3)
		for i := 0; i < n; i++ {
			flow := rng.Range(0.3, 0.9)
			if rng.Chance(0.5) {
				flow = -flow
			}
			e.CosmicRivers = append(e.CosmicRivers, CosmicRiver{
				Y:         rng.Range(0.1, 0.9) * h,
				HalfWidth: rng.Range(0.04, 0.1) * h,
				Flow:      flow,
			})
		}
	}
}
