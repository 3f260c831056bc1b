package particle

import (
	"testing"

	"github.com/lixenwraith/aether-drift/core"
	"github.com/lixenwraith/aether-drift/universe"
	"github.com/lixenwraith/aether-drift/vmath"
)

func TestArenaSpawnAndResolve(t *testing.T) {
	a := NewArena()
	p := a.Spawn(10, 20)
	if p.ID == core.None {
		t.Fatal("spawn issued null handle")
	}
	got, ok := a.Get(p.ID)
	if !ok || got.X != 10 || got.Y != 20 {
		t.Fatalf("handle did not resolve to spawned particle: %+v ok=%v", got, ok)
	}
}

func TestArenaRemovePreservesOrder(t *testing.T) {
	a := NewArena()
	ids := make([]core.ID, 5)
	for i := range ids {
		ids[i] = a.Spawn(float64(i), 0).ID
	}

	a.Remove(2)

	if a.Len() != 4 {
		t.Fatalf("expected 4 live, got %d", a.Len())
	}
	if _, ok := a.Get(ids[2]); ok {
		t.Error("removed handle still resolves")
	}
	// Creation order preserved for the survivors
	want := []core.ID{ids[0], ids[1], ids[3], ids[4]}
	for i, id := range want {
		if a.At(i).ID != id {
			t.Errorf("position %d: got id %d, want %d", i, a.At(i).ID, id)
		}
	}
}

func TestArenaTrimEvictsOldest(t *testing.T) {
	a := NewArena()
	var first core.ID
	for i := 0; i < 10; i++ {
		p := a.Spawn(0, 0)
		if i == 0 {
			first = p.ID
		}
	}
	a.Trim(3)
	if a.Len() != 7 {
		t.Fatalf("expected 7 after trim, got %d", a.Len())
	}
	if _, ok := a.Get(first); ok {
		t.Error("oldest particle should have been evicted first")
	}
}

func TestArenaHandlesNotReused(t *testing.T) {
	a := NewArena()
	old := a.Spawn(0, 0).ID
	a.RemoveID(old)
	a.Reset()
	fresh := a.Spawn(0, 0).ID
	if fresh == old {
		t.Error("handle reused across reset")
	}
	if _, ok := a.Get(old); ok {
		t.Error("stale handle resolves after reset")
	}
}

func TestBondSymmetry(t *testing.T) {
	a := NewArena()
	p := a.Spawn(0, 0)
	q := a.Spawn(1, 1)
	r := a.Relations()

	r.Bond(p.ID, q.ID)
	if r.BondPartner(p.ID) != q.ID || r.BondPartner(q.ID) != p.ID {
		t.Fatal("bond must be symmetric")
	}

	r.Unbond(p.ID)
	if r.BondPartner(p.ID) != core.None || r.BondPartner(q.ID) != core.None {
		t.Fatal("unbond must clear both sides")
	}
}

func TestBondIsExclusive(t *testing.T) {
	a := NewArena()
	p := a.Spawn(0, 0)
	q := a.Spawn(1, 1)
	s := a.Spawn(2, 2)
	r := a.Relations()

	r.Bond(p.ID, q.ID)
	r.Bond(p.ID, s.ID)

	if r.BondPartner(p.ID) != s.ID {
		t.Error("rebond should point at the new partner")
	}
	if r.BondPartner(q.ID) != core.None {
		t.Error("old partner must be released on rebond")
	}
}

func TestChainLinksAreOneToOne(t *testing.T) {
	a := NewArena()
	p := a.Spawn(0, 0)
	q := a.Spawn(1, 1)
	s := a.Spawn(2, 2)
	r := a.Relations()

	r.Link(p.ID, q.ID)
	if r.ChainChild(p.ID) != q.ID || r.ChainParent(q.ID) != p.ID {
		t.Fatal("link not recorded on both sides")
	}

	// Relinking the parent to a new child releases the old child
	r.Link(p.ID, s.ID)
	if r.ChainParent(q.ID) != core.None {
		t.Error("old child still points at parent after relink")
	}
	if r.ChainChild(p.ID) != s.ID {
		t.Error("parent should chain to the new child")
	}
}

func TestRemoveSeversRelations(t *testing.T) {
	a := NewArena()
	p := a.Spawn(0, 0)
	q := a.Spawn(1, 1)
	c := a.Spawn(2, 2)
	r := a.Relations()

	r.Bond(p.ID, q.ID)
	r.Link(p.ID, c.ID)

	a.RemoveID(p.ID)

	if r.BondPartner(q.ID) != core.None {
		t.Error("dead particle's bond not cleared on survivor side")
	}
	if r.ChainParent(c.ID) != core.None {
		t.Error("dead particle's chain link not cleared on child side")
	}
}

func TestTagStampsOnce(t *testing.T) {
	rng := vmath.NewFastRand(vmath.HashSeed("tag-test"))
	profile, _ := universe.Generate("tag-test", rng, 800, 600)

	a := NewArena()
	p := a.Spawn(100, 50)
	p.Radius = 2

	Tag(p, profile, true, rng)

	if p.RadiusInitial == 0 {
		t.Error("initial radius not stamped")
	}
	if p.StartX != 100 || p.StartY != 50 {
		t.Errorf("start position not stamped: (%v, %v)", p.StartX, p.StartY)
	}
	if p.Seed < 0 || p.Seed >= 1 {
		t.Errorf("per-particle seed out of range: %v", p.Seed)
	}

	// Re-tag without initialLoad keeps geometry but resets flags
	p.Crystalized = true
	p.Unravelling = 10
	before := p.RadiusInitial
	Tag(p, profile, false, rng)

	if p.Crystalized || p.Unravelling != 0 {
		t.Error("transient flags must reset on re-tag")
	}
	if p.RadiusInitial != before {
		t.Error("initial radius must not be re-rolled on re-tag")
	}
}

func TestTagDeterministic(t *testing.T) {
	mk := func() *Particle {
		rng := vmath.NewFastRand(vmath.HashSeed("tag-det"))
		profile, _ := universe.Generate("tag-det", rng, 800, 600)
		a := NewArena()
		p := a.Spawn(10, 10)
		Tag(p, profile, true, rng)
		return p
	}
	p1, p2 := mk(), mk()
	if p1.Radius != p2.Radius || p1.Seed != p2.Seed || p1.Color != p2.Color || p1.Heavy != p2.Heavy {
		t.Errorf("tagging not deterministic: %+v vs %+v", p1, p2)
	}
}
