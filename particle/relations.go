package particle

import (
	"github.com/lixenwraith/aether-drift/core"
)

// Relations is the side-table for the two exclusive 1:1 particle
// relations: bonds (symmetric pairs) and chains (parent -> child
// links). Keeping these out of the Particle struct makes breaking a
// relation a table update instead of multi-object pointer surgery
type Relations struct {
	bondOf  map[core.ID]core.ID
	childOf map[core.ID]core.ID // parent -> child
	parent  map[core.ID]core.ID // child -> parent
}

func (r *Relations) init() {
	if r.bondOf == nil {
		r.bondOf = make(map[core.ID]core.ID)
		r.childOf = make(map[core.ID]core.ID)
		r.parent = make(map[core.ID]core.ID)
	}
}

// Bond pairs a and b. Any prior bond on either side is broken first so
// the relation stays strictly 1:1 and symmetric
func (r *Relations) Bond(a, b core.ID) {
	r.init()
	if a == b || a == core.None || b == core.None {
		return
	}
	r.Unbond(a)
	r.Unbond(b)
	r.bondOf[a] = b
	r.bondOf[b] = a
}

// BondPartner returns the bonded peer, or core.None
func (r *Relations) BondPartner(id core.ID) core.ID {
	return r.bondOf[id]
}

// Unbond breaks id's bond, clearing both sides
func (r *Relations) Unbond(id core.ID) {
	if other, ok := r.bondOf[id]; ok {
		delete(r.bondOf, id)
		delete(r.bondOf, other)
	}
}

// Link makes child follow parent in a chain. A particle carries at
// most one parent and one child; conflicting links are broken first
func (r *Relations) Link(parent, child core.ID) {
	r.init()
	if parent == child || parent == core.None || child == core.None {
		return
	}
	r.UnlinkChild(parent)
	r.UnlinkParent(child)
	r.childOf[parent] = child
	r.parent[child] = parent
}

// ChainChild returns the chained child, or core.None
func (r *Relations) ChainChild(id core.ID) core.ID {
	return r.childOf[id]
}

// ChainParent returns the chained parent, or core.None
func (r *Relations) ChainParent(id core.ID) core.ID {
	return r.parent[id]
}

// UnlinkChild breaks id's link to its child, both sides
func (r *Relations) UnlinkChild(id core.ID) {
	if child, ok := r.childOf[id]; ok {
		delete(r.childOf, id)
		delete(r.parent, child)
	}
}

// UnlinkParent breaks id's link to its parent, both sides
func (r *Relations) UnlinkParent(id core.ID) {
	if p, ok := r.parent[id]; ok {
		delete(r.parent, id)
		delete(r.childOf, p)
	}
}

// Sever removes every relation id participates in. Called whenever a
// particle dies so no dangling half-references survive
func (r *Relations) Sever(id core.ID) {
	r.Unbond(id)
	r.UnlinkChild(id)
	r.UnlinkParent(id)
}

// ForEachBond visits every bonded pair once, with a < b by handle
func (r *Relations) ForEachBond(fn func(a, b core.ID)) {
	for a, b := range r.bondOf {
		if a < b {
			fn(a, b)
		}
	}
}

// ForEachChain visits every parent -> child link
func (r *Relations) ForEachChain(fn func(parent, child core.ID)) {
	for p, c := range r.childOf {
		fn(p, c)
	}
}

// Clear drops all relations
func (r *Relations) Clear() {
	r.bondOf = nil
	r.childOf = nil
	r.parent = nil
}
