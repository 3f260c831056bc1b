package parameter

// Anomaly timing, in ticks
const (
	WhiteHoleEmitPeriod  = 90
	QuasarCyclePeriod    = 200
	QuasarFiringWindow   = 45
	StormFlipPeriod      = 150
	SupergiantEmitPeriod = 160
	GeyserEmitPeriod     = 110
	FlareBurstPeriod     = 180
	NurseryEmitPeriod    = 130
	TemporalRiftLife     = 700
	FoamPatchLife        = 500
)

// Anomaly field strengths
const (
	BlackHolePull     = 0.35
	BlackHoleHorizon  = 14.0
	WhiteHolePush     = 0.30
	SupergiantPull    = 0.12
	StellarWindPush   = 0.035
	NebulaDrag        = 0.96
	PulsarKick        = 1.8
	QuasarKick        = 2.4
	AcceleratorBoost  = 1.06
	WebNodePull       = 0.05
	IonNudge          = 0.04
	FoamJitter        = 0.55
	NoiseJitter       = 0.18
	CrystalSnapStep   = 0.5235987755982988 // pi/6
	RiftTeleportRange = 120.0

	// AccretionBandScale times the horizon radius marks where black
	// hole infall starts consuming a particle
	AccretionBandScale = 4.0
)

// Coral reef growth
const (
	CoralAccreteRadius = 9.0
	CoralGrowthChance  = 0.15
	// Squared speed below which a particle counts as still enough to
	// calcify against a frozen neighbor
	CoralStillSpeedSq = 0.01
)

// Mutator strengths
const (
	RepulsionStrength = 0.08
	ClusterStrength   = 0.05
	BondRadius        = 26.0
	BondBreakRadius   = 70.0
	BondSpring        = 0.04
	ChainSpring       = 0.06
	ChainRestLength   = 18.0
	PropulsionGain    = 0.06
	BrownianJitter    = 0.30
	ChoralBlend       = 0.015
	FragmentChance    = 0.0012
)

// Player interaction
const (
	PowerRadius      = 150.0
	GravityWellPull  = 0.45
	RepulsorPush     = 0.55
	VortexSwirl      = 0.40
	InfectionRadius  = 22.0
	ShockwaveRadius  = 220.0
	ShockwaveImpulse = 7.0
)

// Entanglement
const (
	EntangleRelax    = 0.12
	EntangleGroupMin = 2
)
