package universe

import (
	"github.com/lixenwraith/aether-drift/parameter"
)

// Blueprint selects the visual/physics identity of a universe.
// Closed enum; adding a value requires updating the blueprint table
type Blueprint uint8

const (
	BlueprintStellarDrift Blueprint = iota
	BlueprintCrystalSea
	BlueprintEmberStorm
	BlueprintVoidBloom
	BlueprintNeonReef
	BlueprintIronSky
	BlueprintSilkNebula
	BlueprintGlassDesert
	blueprintCount
)

var blueprintNames = [...]string{
	"Stellar Drift",
	"Crystal Sea",
	"Ember Storm",
	"Void Bloom",
	"Neon Reef",
	"Iron Sky",
	"Silk Nebula",
	"Glass Desert",
}

func (b Blueprint) String() string {
	if int(b) < len(blueprintNames) {
		return blueprintNames[b]
	}
	return "Unknown"
}

// BoundaryMode decides the fate of a particle crossing a canvas edge
type BoundaryMode uint8

const (
	BoundaryBounce BoundaryMode = iota
	BoundaryWrap
	BoundaryAbsorb
)

// Physics holds the per-blueprint simulation constants
type Physics struct {
	Friction   float64
	Attraction float64 // passive pull toward the pointer
	Boundary   BoundaryMode
	Trails     bool
	// ParticleScale multiplies the base population
	ParticleScale float64
}

// blueprintSpec is one row of the content table
type blueprintSpec struct {
	physics     Physics
	hueLo       float64
	hueHi       float64
	leftPowers  []Power
	rightPowers []Power
}

var blueprintTable = [blueprintCount]blueprintSpec{
	BlueprintStellarDrift: {
		physics:     Physics{Friction: parameter.DefaultFriction, Attraction: 0.012, Boundary: BoundaryWrap, Trails: true, ParticleScale: 1.0},
		hueLo:       190, hueHi: 260,
		leftPowers:  []Power{PowerGravityWell, PowerVortex},
		rightPowers: []Power{PowerShockwave, PowerSpawnBurst},
	},
	BlueprintCrystalSea: {
		physics:     Physics{Friction: 0.97, Attraction: 0.008, Boundary: BoundaryBounce, Trails: false, ParticleScale: 0.9},
		hueLo:       160, hueHi: 210,
		leftPowers:  []Power{PowerGravityWell, PowerRepulsor},
		rightPowers: []Power{PowerCrystallize, PowerThaw},
	},
	BlueprintEmberStorm: {
		physics:     Physics{Friction: 0.992, Attraction: 0.02, Boundary: BoundaryBounce, Trails: true, ParticleScale: 1.2},
		hueLo:       0, hueHi: 45,
		leftPowers:  []Power{PowerVortex, PowerRepulsor},
		rightPowers: []Power{PowerShockwave, PowerUnravel},
	},
	BlueprintVoidBloom: {
		physics:     Physics{Friction: 0.98, Attraction: 0.005, Boundary: BoundaryWrap, Trails: true, ParticleScale: 0.8},
		hueLo:       270, hueHi: 330,
		leftPowers:  []Power{PowerGravityWell, PowerVortex},
		rightPowers: []Power{PowerInfect, PowerEntangle},
	},
	BlueprintNeonReef: {
		physics:     Physics{Friction: 0.975, Attraction: 0.015, Boundary: BoundaryBounce, Trails: false, ParticleScale: 1.1},
		hueLo:       90, hueHi: 150,
		leftPowers:  []Power{PowerRepulsor, PowerGravityWell},
		rightPowers: []Power{PowerSpawnBurst, PowerEntangle},
	},
	BlueprintIronSky: {
		physics:     Physics{Friction: 0.995, Attraction: 0.01, Boundary: BoundaryWrap, Trails: true, ParticleScale: 1.0},
		hueLo:       200, hueHi: 230,
		leftPowers:  []Power{PowerGravityWell, PowerVortex},
		rightPowers: []Power{PowerShockwave, PowerCrystallize},
	},
	BlueprintSilkNebula: {
		physics:     Physics{Friction: 0.988, Attraction: 0.018, Boundary: BoundaryWrap, Trails: true, ParticleScale: 0.95},
		hueLo:       300, hueHi: 360,
		leftPowers:  []Power{PowerVortex, PowerGravityWell},
		rightPowers: []Power{PowerEntangle, PowerUnravel},
	},
	BlueprintGlassDesert: {
		physics:     Physics{Friction: 0.96, Attraction: 0.006, Boundary: BoundaryBounce, Trails: false, ParticleScale: 0.85},
		hueLo:       30, hueHi: 60,
		leftPowers:  []Power{PowerRepulsor, PowerVortex},
		rightPowers: []Power{PowerThaw, PowerSpawnBurst},
	},
}
