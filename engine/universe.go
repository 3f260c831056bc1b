// Package engine drives the per-tick simulation: universe lifecycle,
// the fixed-order resolver passes, entanglement relaxation, anomaly
// bookkeeping, and the cataclysm state machine.
//
// Everything advances through Universe.Step. There are no goroutines,
// no timers and no wall-clock reads in here; a recorded input trace
// plus a seed replays a universe bit-for-bit
package engine

import (
	"fmt"

	"github.com/lixenwraith/aether-drift/core"
	"github.com/lixenwraith/aether-drift/parameter"
	"github.com/lixenwraith/aether-drift/particle"
	"github.com/lixenwraith/aether-drift/spatial"
	"github.com/lixenwraith/aether-drift/universe"
	"github.com/lixenwraith/aether-drift/vmath"
)

// Stability is the two-state energy condition of a universe
type Stability uint8

const (
	StabilityStable Stability = iota
	StabilityUnstable
)

// Frame is one tick's worth of player input. The engine consumes
// nothing else from the outside world
type Frame struct {
	PointerX, PointerY float64
	PrimaryDown        bool
	SecondaryDown      bool
}

// Universe owns all simulation state for one seeded world
type Universe struct {
	W, H float64

	Rng     *vmath.FastRand
	Profile *universe.Profile
	Effects *universe.Effects
	Arena   *particle.Arena
	Grid    *spatial.Grid[core.ID]

	Tick      uint64
	Energy    float64
	Stability Stability

	cataclysm cataclysmRun
	prev      Frame
	cur       Frame

	// Per-tick derived state
	choralVX, choralVY float64
	scratch            []core.ID

	nextAmbient uint64
}

// New creates and populates a universe from a seed string. An empty
// or whitespace-only seed is the caller's problem to replace before
// calling (see cmd); New itself treats the string verbatim
func New(seed string, w, h float64) *Universe {
	u := &Universe{}
	u.Resize(w, h)
	u.generate(seed)
	return u
}

// Resize updates canvas dimensions. Callers regenerate afterwards
// because particle and effect coordinates bake in the old extents
func (u *Universe) Resize(w, h float64) {
	u.W, u.H = w, h
	if u.Grid == nil {
		u.Grid = spatial.New(w, h, parameter.GridCellSize, u.particlePos)
	} else {
		u.Grid.Resize(w, h)
	}
}

// Regenerate tears down the current universe and builds a new one
// from the given seed. Clears every effect record and countdown so
// nothing from the old universe can touch the new one
func (u *Universe) Regenerate(seed string) {
	u.generate(seed)
}

func (u *Universe) generate(seed string) {
	u.Rng = vmath.NewFastRand(vmath.HashSeed(seed))
	u.Profile, u.Effects = universe.Generate(seed, u.Rng, u.W, u.H)

	if u.Arena == nil {
		u.Arena = particle.NewArena()
	} else {
		u.Arena.Reset()
	}

	count := int(float64(parameter.BaseParticleCount) * u.Profile.Physics.ParticleScale)
	for i := 0; i < count; i++ {
		p := u.Arena.Spawn(u.Rng.Range(0, u.W), u.Rng.Range(0, u.H))
		p.VX = u.Rng.Range(-0.6, 0.6)
		p.VY = u.Rng.Range(-0.6, 0.6)
		particle.Tag(p, u.Profile, true, u.Rng)
	}

	u.Tick = 0
	u.Energy = 0
	u.Stability = StabilityStable
	u.cataclysm = cataclysmRun{}
	u.nextAmbient = 0
	u.prev = Frame{}
	u.cur = Frame{}
}

// NextSeed derives a fresh seed string from the universe RNG stream.
// Used by cataclysm completion, which must never reuse the old seed
func (u *Universe) NextSeed() string {
	return fmt.Sprintf("AETHER-%08X", uint32(u.Rng.Next()))
}

// CataclysmActive reports whether the end-of-universe script is running
func (u *Universe) CataclysmActive() bool {
	return u.cataclysm.active
}

// TrailAlpha returns the per-tick canvas fade strength. Blueprints
// with trails fade slowly so motion smears; others wipe fast
func (u *Universe) TrailAlpha() float64 {
	if u.Profile.Physics.Trails {
		return parameter.TrailFadeAlpha
	}
	return parameter.CleanFadeAlpha
}

// Pointer returns the pointer position from the frame being processed
func (u *Universe) Pointer() (x, y float64) {
	return u.cur.PointerX, u.cur.PointerY
}

// GravityWellActive reports whether a pull power is currently held,
// shared with render plugins as a global excitement flag
func (u *Universe) GravityWellActive() bool {
	return u.cur.PrimaryDown && u.Profile.LeftPower == universe.PowerGravityWell ||
		u.cur.SecondaryDown && u.Profile.RightPower == universe.PowerGravityWell
}

func (u *Universe) particlePos(id core.ID) (float64, float64) {
	if p, ok := u.Arena.Get(id); ok {
		return p.X, p.Y
	}
	return 0, 0
}

// nearby runs a radius query against the grid using the shared
// scratch buffer. Results are only valid until the next call
func (u *Universe) nearby(x, y, radius float64) []core.ID {
	u.scratch = u.scratch[:0]
	u.scratch = u.Grid.Nearby(x, y, radius, u.scratch)
	return u.scratch
}
