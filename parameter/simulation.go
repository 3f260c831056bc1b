package parameter

// Population
const (
	// BaseParticleCount is spawned at universe birth before blueprint scaling
	BaseParticleCount = 220

	// MaxParticleCount is the hard population cap enforced every tick.
	// Oldest particles are evicted first
	MaxParticleCount = 600

	// SpawnBurstCount for click powers and anomaly emissions
	SpawnBurstCount = 12
)

// Spatial index
const (
	// GridCellSize must stay >= the largest pairwise force radius so a
	// one-cell neighborhood scan cannot miss a true neighbor
	GridCellSize = 48.0

	// PairForceRadius is the largest radius any pairwise resolver queries
	PairForceRadius = 44.0
)

// Energy / cataclysm
const (
	// EnergyChargeRate per tick while either button is held
	EnergyChargeRate = 0.45

	// EnergyDecayRate per tick while idle, floored at zero
	EnergyDecayRate = 0.20

	// MaxEnergyFloor and MaxEnergyCeil bound the per-universe threshold draw
	MaxEnergyFloor = 90.0
	MaxEnergyCeil  = 160.0
)

// Countdowns, in ticks
const (
	UnravelTicks  = 45
	FadeTicks     = 60
	ConsumedTicks = 30
	InfectionLife = 240
)

// Physics defaults, overridden per blueprint
const (
	DefaultFriction = 0.985
	MaxSpeed        = 6.5
	BounceDamping   = 0.82
)

// Trail fade alphas: the canvas is faded toward black each tick
// instead of cleared, which is what produces persistent trails
const (
	TrailFadeAlpha = 0.08
	CleanFadeAlpha = 0.35
)
