package domain

import (
	"slices"
	"time"
)

// Adjacents holds the edges of one graph node. Both sets contain the subject.
type Adjacents struct {
	Subject  ResourceRef   `json:"subject"`
	Created  time.Time     `json:"created"`
	Efferent []ResourceRef `json:"efferent"`
	Afferent []ResourceRef `json:"afferent"`
}

func NewAdjacents(subject ResourceRef, created time.Time) Adjacents {
	return Adjacents{
		Subject:  subject,
		Created:  created,
		Efferent: []ResourceRef{subject},
		Afferent: []ResourceRef{subject},
	}
}

func (a Adjacents) HasEfferent(id ID) bool {
	return containsRef(a.Efferent, id)
}

func (a Adjacents) HasAfferent(id ID) bool {
	return containsRef(a.Afferent, id)
}

// Neighbours returns every node a is linked to in either direction, excluding the subject.
func (a Adjacents) Neighbours() []ResourceRef {
	var out []ResourceRef
	for _, refs := range [][]ResourceRef{a.Efferent, a.Afferent} {
		for _, r := range refs {
			if r.ID != a.Subject.ID && !containsRef(out, r.ID) {
				out = append(out, r)
			}
		}
	}
	return out
}

// EquivalenceGraph is one equivalence set. Its ID is the smallest member id.
type EquivalenceGraph struct {
	ID        ID                `json:"id"`
	Adjacents map[ID]Adjacents `json:"adjacents"`
	Created   time.Time         `json:"created"`
	Updated   time.Time         `json:"updated"`
}

func NewEquivalenceGraph(adjacents map[ID]Adjacents, created, updated time.Time) *EquivalenceGraph {
	g := &EquivalenceGraph{Adjacents: adjacents, Created: created, Updated: updated}
	first := true
	for id := range adjacents {
		if first || id < g.ID {
			g.ID = id
			first = false
		}
	}
	return g
}

func SingletonGraph(ref ResourceRef, now time.Time) *EquivalenceGraph {
	return NewEquivalenceGraph(map[ID]Adjacents{ref.ID: NewAdjacents(ref, now)}, now, now)
}

// Members returns the member ids in ascending order.
func (g *EquivalenceGraph) Members() []ID {
	ids := make([]ID, 0, len(g.Adjacents))
	for id := range g.Adjacents {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (g *EquivalenceGraph) Contains(id ID) bool {
	_, ok := g.Adjacents[id]
	return ok
}

func (g *EquivalenceGraph) Size() int {
	return len(g.Adjacents)
}

// EquivalenceGraphUpdate describes one change to the equivalence relation.
// Updated is the graph containing the asserting subject; Created are any other
// graphs produced by a split; Deleted are set ids that no longer exist.
type EquivalenceGraphUpdate struct {
	Updated *EquivalenceGraph   `json:"updated"`
	Created []*EquivalenceGraph `json:"created,omitempty"`
	Deleted []ID                `json:"deleted,omitempty"`
}

func (u *EquivalenceGraphUpdate) AllGraphs() []*EquivalenceGraph {
	graphs := make([]*EquivalenceGraph, 0, len(u.Created)+1)
	if u.Updated != nil {
		graphs = append(graphs, u.Updated)
	}
	return append(graphs, u.Created...)
}

func containsRef(refs []ResourceRef, id ID) bool {
	for _, r := range refs {
		if r.ID == id {
			return true
		}
	}
	return false
}
