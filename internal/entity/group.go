package entity

// Live is anything whose group membership tracks its lifetime.
type Live interface {
	Alive() bool
}

// Group is an ordered collection of same-kind entities. Membership of a live
// entity is the sole source of truth for "still in play": entities mark
// themselves dead during a frame and Compact drops them afterwards, so
// iteration never removes elements out from under itself.
type Group[E Live] struct {
	members []E
}

// Add appends an entity to the group.
func (g *Group[E]) Add(e E) {
	g.members = append(g.members, e)
}

// Members returns the backing slice, dead entries included. Callers must
// check Alive before acting on an entry.
func (g *Group[E]) Members() []E { return g.members }

// Len counts live members.
func (g *Group[E]) Len() int {
	n := 0
	for _, e := range g.members {
		if e.Alive() {
			n++
		}
	}
	return n
}

// Compact drops dead members, reusing the backing array.
func (g *Group[E]) Compact() {
	kept := g.members[:0]
	for _, e := range g.members {
		if e.Alive() {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(g.members); i++ {
		var zero E
		g.members[i] = zero
	}
	g.members = kept
}
