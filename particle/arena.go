package particle

import (
	"github.com/lixenwraith/aether-drift/core"
)

// Arena stores live particles in creation order (oldest first), which
// makes cap-trimming "evict oldest" a prefix cut. Handles are stable
// IDs that are never reused within a universe, so a stale reference
// simply fails to resolve instead of aliasing a new particle
type Arena struct {
	particles []Particle
	index     map[core.ID]int
	nextID    core.ID

	bonds Relations
}

// NewArena returns an empty arena
func NewArena() *Arena {
	return &Arena{
		index:  make(map[core.ID]int),
		nextID: 1,
	}
}

// Len returns the live particle count
func (a *Arena) Len() int {
	return len(a.particles)
}

// Spawn creates a particle at (x, y) and returns a pointer valid until
// the next Remove/Trim call
func (a *Arena) Spawn(x, y float64) *Particle {
	id := a.nextID
	a.nextID++
	a.particles = append(a.particles, Particle{ID: id, X: x, Y: y, Opacity: 1})
	a.index[id] = len(a.particles) - 1
	return &a.particles[len(a.particles)-1]
}

// Get resolves a handle; ok is false for dead or never-issued IDs
func (a *Arena) Get(id core.ID) (*Particle, bool) {
	i, ok := a.index[id]
	if !ok {
		return nil, false
	}
	return &a.particles[i], true
}

// At returns the particle at creation-order position i
func (a *Arena) At(i int) *Particle {
	return &a.particles[i]
}

// Remove deletes the particle at position i, preserving creation
// order, and severs any bond or chain links it carried
func (a *Arena) Remove(i int) {
	id := a.particles[i].ID
	a.bonds.Sever(id)

	copy(a.particles[i:], a.particles[i+1:])
	a.particles = a.particles[:len(a.particles)-1]

	delete(a.index, id)
	for j := i; j < len(a.particles); j++ {
		a.index[a.particles[j].ID] = j
	}
}

// RemoveID deletes a particle by handle; no-op when already dead
func (a *Arena) RemoveID(id core.ID) {
	if i, ok := a.index[id]; ok {
		a.Remove(i)
	}
}

// Trim evicts the oldest n particles (the arena prefix)
func (a *Arena) Trim(n int) {
	if n <= 0 {
		return
	}
	if n > len(a.particles) {
		n = len(a.particles)
	}
	for i := 0; i < n; i++ {
		a.bonds.Sever(a.particles[i].ID)
		delete(a.index, a.particles[i].ID)
	}
	a.particles = a.particles[n:]
	for j := range a.particles {
		a.index[a.particles[j].ID] = j
	}
}

// Reset drops every particle and relation but keeps ID issuance
// monotonic so handles from the previous universe stay dead
func (a *Arena) Reset() {
	a.particles = a.particles[:0]
	a.index = make(map[core.ID]int)
	a.bonds.Clear()
}

// Relations exposes the bond/chain side-table
func (a *Arena) Relations() *Relations {
	return &a.bonds
}
