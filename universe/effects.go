package universe

import (
	"github.com/lixenwraith/aether-drift/core"
)

// Effect records are plain data: spatial/physical parameters plus any
// phase or deadline state, mutated only by the tick driver. Deadlines
// are absolute tick numbers; zero means "not scheduled yet"

// GravityWell is a persistent pull region left by the player power
type GravityWell struct {
	X, Y     float64
	Radius   float64
	Strength float64
	DiesAt   uint64
}

// BlackHoleField pulls particles in and absorbs them at the horizon
type BlackHoleField struct {
	X, Y    float64
	Radius  float64
	Pull    float64
	Horizon float64
	Wander  bool
}

// WhiteHoleField pushes particles out and periodically emits new ones
type WhiteHoleField struct {
	X, Y     float64
	Radius   float64
	Push     float64
	NextEmit uint64
}

// StasisField zeroes velocity inside its radius
type StasisField struct {
	X, Y   float64
	Radius float64
}

// PhaseZone suppresses player forces inside its radius
type PhaseZone struct {
	X, Y   float64
	Radius float64
}

// DilationZone scales local simulation speed. Factor > 1 sub-steps,
// factor < 1 probabilistically skips
type DilationZone struct {
	X, Y   float64
	Radius float64
	Factor float64
}

// EntangledGroup keeps members rigid around a drifting centroid.
// Offsets are each member's position relative to the centroid at
// entanglement time
type EntangledGroup struct {
	Members []core.ID
	Offsets []core.Vec2
}

// SilkThread pulls nearby particles along a line segment
type SilkThread struct {
	A, B core.Vec2
}

// CosmicRiver is a horizontal flow band
type CosmicRiver struct {
	Y         float64
	HalfWidth float64
	Flow      float64
}

// NebulaField applies drag and tints particles toward its hue
type NebulaField struct {
	X, Y   float64
	Radius float64
	Hue    float64
}

// PulsarField kicks particles caught in its rotating beam
type PulsarField struct {
	X, Y   float64
	Angle  float64
	Spin   float64
	Reach  float64
}

// CosmicWebField attracts particles toward its node set
type CosmicWebField struct {
	Nodes []core.Vec2
}

// QuasarField fires a jet during a timed window of its cycle
type QuasarField struct {
	X, Y       float64
	Angle      float64
	CycleStart uint64
	Firing     bool
}

// RiftField teleports particles that touch it
type RiftField struct {
	X, Y   float64
	Radius float64
}

// IonCloudField nudges particle pairs inside it apart or together
type IonCloudField struct {
	X, Y   float64
	Radius float64
}

// SupergiantField is strong distant gravity plus periodic emission
type SupergiantField struct {
	X, Y     float64
	Radius   float64
	NextEmit uint64
}

// CrystalFieldRegion snaps velocity angles inside its radius
type CrystalFieldRegion struct {
	X, Y   float64
	Radius float64
}

// NegativeSpaceRegion silently absorbs particles that enter
type NegativeSpaceRegion struct {
	X, Y   float64
	Radius float64
}

// StellarWindField is a constant directional push
type StellarWindField struct {
	DirX, DirY float64
}

// NoiseField jitters every particle a little
type NoiseField struct {
	Amplitude float64
}

// AcceleratorRing boosts particles travelling inside its band
type AcceleratorRing struct {
	X, Y   float64
	Radius float64
	Band   float64
}

// FoamPatch is short-lived localized jitter
type FoamPatch struct {
	X, Y   float64
	Radius float64
	DiesAt uint64
}

// EchoVoid records positions of particles that pass through it
type EchoVoid struct {
	X, Y    float64
	Radius  float64
	History []core.Vec2
}

// MagneticStormField alternates a global lateral push
type MagneticStormField struct {
	Polarity float64
	NextFlip uint64
}

// GeyserField erupts particles upward from a floor position
type GeyserField struct {
	X        float64
	NextEmit uint64
}

// TemporalRiftField is a dying dilation tear that leaks particles
type TemporalRiftField struct {
	X, Y   float64
	Radius float64
	DiesAt uint64
}

// SolarFlareField bursts outward periodically
type SolarFlareField struct {
	X, Y      float64
	NextBurst uint64
}

// NurseryField periodically births new particles
type NurseryField struct {
	X, Y     float64
	Radius   float64
	NextEmit uint64
}

// Effects is the registry of all live effect records for the current
// universe. Owned by the universe; cleared wholesale on regeneration.
// Tick-driver code must existence-check entries before dereferencing
// because autonomous bookkeeping may remove them between passes
type Effects struct {
	GravityWells   []GravityWell
	BlackHoles     []BlackHoleField
	WhiteHoles     []WhiteHoleField
	StasisFields   []StasisField
	PhaseZones     []PhaseZone
	DilationZones  []DilationZone
	Entangled      []EntangledGroup
	SilkThreads    []SilkThread
	CosmicRivers   []CosmicRiver
	Nebulae        []NebulaField
	Pulsars        []PulsarField
	CosmicWebs     []CosmicWebField
	Quasars        []QuasarField
	Rifts          []RiftField
	IonClouds      []IonCloudField
	Supergiants    []SupergiantField
	CrystalFields  []CrystalFieldRegion
	NegativeSpaces []NegativeSpaceRegion
	StellarWinds   []StellarWindField
	NoiseFields    []NoiseField
	Accelerators   []AcceleratorRing
	FoamPatches    []FoamPatch
	EchoVoids      []EchoVoid
	MagneticStorms []MagneticStormField
	Geysers        []GeyserField
	TemporalRifts  []TemporalRiftField
	SolarFlares    []SolarFlareField
	Nurseries      []NurseryField
}

// NewEffects returns an empty registry
func NewEffects() *Effects {
	return &Effects{}
}

// Clear drops every record. Called synchronously on regeneration so no
// stale effect from the previous universe survives
func (e *Effects) Clear() {
	*e = Effects{}
}
