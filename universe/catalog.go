package universe

// Power is a player interaction, bound to one of the two buttons.
// Hold powers apply continuously while the button is down; click
// powers fire once on the release edge
type Power uint8

const (
	PowerNone Power = iota
	PowerGravityWell
	PowerRepulsor
	PowerVortex
	PowerShockwave
	PowerSpawnBurst
	PowerCrystallize
	PowerThaw
	PowerInfect
	PowerEntangle
	PowerUnravel
)

var powerNames = [...]string{
	"None",
	"Gravity Well",
	"Repulsor",
	"Vortex",
	"Shockwave",
	"Spawn Burst",
	"Crystallize",
	"Thaw",
	"Infect",
	"Entangle",
	"Unravel",
}

func (p Power) String() string {
	if int(p) < len(powerNames) {
		return powerNames[p]
	}
	return "Unknown"
}

// Held reports whether the power acts continuously while the button
// is down (as opposed to firing on release)
func (p Power) Held() bool {
	switch p {
	case PowerGravityWell, PowerRepulsor, PowerVortex:
		return true
	}
	return false
}

// Mutator is a universe-wide rule modifier. A universe carries 0-2
type Mutator uint8

const (
	MutatorRepulsion Mutator = iota
	MutatorClustering
	MutatorElasticCollision
	MutatorRainbow
	MutatorFlicker
	MutatorCarnival
	MutatorPairBonding
	MutatorFragmentation
	MutatorChainLink
	MutatorSelfPropulsion
	MutatorBrownian
	MutatorChoral
	MutatorSizeVariance
	MutatorHeavyParticles
	MutatorPhaseShift
	MutatorTorusField
	MutatorEventHorizon
	MutatorTimeDilation
	MutatorStasisPockets
	MutatorSilkWeave
	MutatorCosmicRivers
	mutatorCount
)

var mutatorNames = [...]string{
	"Repulsion",
	"Clustering",
	"Elastic Collision",
	"Rainbow",
	"Flicker",
	"Carnival",
	"Pair Bonding",
	"Fragmentation",
	"Chain Link",
	"Self Propulsion",
	"Brownian Motion",
	"Choral",
	"Size Variance",
	"Heavy Particles",
	"Phase Shift",
	"Torus Field",
	"Event Horizon",
	"Time Dilation",
	"Stasis Pockets",
	"Silk Weave",
	"Cosmic Rivers",
}

func (m Mutator) String() string {
	if int(m) < len(mutatorNames) {
		return mutatorNames[m]
	}
	return "Unknown"
}

// Anomaly is the single optional large-scale field of a universe
type Anomaly uint8

const (
	AnomalyNone Anomaly = iota
	AnomalyNebula
	AnomalyPulsar
	AnomalyBlackHole
	AnomalyWhiteHole
	AnomalyCosmicWeb
	AnomalyQuasar
	AnomalyCosmicRift
	AnomalyIonCloud
	AnomalySupergiant
	AnomalyCrystalField
	AnomalyNegativeSpace
	AnomalyStellarWind
	AnomalyBackgroundNoise
	AnomalyAcceleratorRing
	AnomalySpacetimeFoam
	AnomalyEchoingVoid
	AnomalyMagneticStorm
	AnomalyGeyser
	AnomalyTemporalRift
	AnomalySolarFlare
	AnomalyCosmicNursery
	anomalyCount
)

var anomalyNames = [...]string{
	"None",
	"Nebula",
	"Pulsar",
	"Black Hole",
	"White Hole",
	"Cosmic Web",
	"Quasar",
	"Cosmic Rift",
	"Ion Cloud",
	"Supergiant",
	"Crystalline Field",
	"Negative Space",
	"Stellar Wind",
	"Background Noise",
	"Particle Accelerator",
	"Spacetime Foam",
	"Echoing Void",
	"Magnetic Storm",
	"Geyser",
	"Temporal Rift",
	"Solar Flare",
	"Cosmic Nursery",
}

func (a Anomaly) String() string {
	if int(a) < len(anomalyNames) {
		return anomalyNames[a]
	}
	return "Unknown"
}

// AmbientEvent is a low-frequency decorative happening
type AmbientEvent uint8

const (
	AmbientStillSky AmbientEvent = iota
	AmbientCometShower
	AmbientMeteorDrizzle
	AmbientAuroraVeil
	ambientCount
)

var ambientNames = [...]string{
	"Still Sky",
	"Comet Shower",
	"Meteor Drizzle",
	"Aurora Veil",
}

func (a AmbientEvent) String() string {
	if int(a) < len(ambientNames) {
		return ambientNames[a]
	}
	return "Unknown"
}

// Cataclysm names the scripted end-of-universe sequence
type Cataclysm uint8

const (
	CataclysmBigCrunch Cataclysm = iota
	CataclysmBigRip
	CataclysmSupernova
	CataclysmHeatDeath
	CataclysmVacuumDecay
	cataclysmCount
)

var cataclysmNames = [...]string{
	"Big Crunch",
	"Big Rip",
	"Supernova",
	"Heat Death",
	"Vacuum Decay",
}

func (c Cataclysm) String() string {
	if int(c) < len(cataclysmNames) {
		return cataclysmNames[c]
	}
	return "Unknown"
}
