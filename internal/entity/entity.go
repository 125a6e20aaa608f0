package entity

import (
	"sort"

	"github.com/resights/ownercalc/internal/errors"
)

// Kind distinguishes the two entity categories in an ownership structure.
type Kind string

const (
	KindCompany    Kind = "company"
	KindIndividual Kind = "individual"
)

// Entity is a participant in the ownership structure. Entities are value
// types: they are created once during graph construction and never mutated,
// so handing copies to callers is always safe.
type Entity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Kind Kind   `json:"kind"`
}

// Registry holds every entity in the loaded structure, indexed for the two
// lookups user-facing commands need: exact identifier and exact display name.
// Display names are not guaranteed unique in raw data; the registry surfaces
// ambiguity instead of silently picking one match.
type Registry struct {
	byID   map[string]Entity
	byName map[string][]Entity
}

// NewRegistry builds a registry from the loader's entity set. Later entries
// with an already-registered ID are ignored (the loader deduplicates IDs, this
// just makes construction order-insensitive).
func NewRegistry(entities []Entity) *Registry {
	r := &Registry{
		byID:   make(map[string]Entity, len(entities)),
		byName: make(map[string][]Entity, len(entities)),
	}
	for _, e := range entities {
		if _, ok := r.byID[e.ID]; ok {
			continue
		}
		r.byID[e.ID] = e
		r.byName[e.Name] = append(r.byName[e.Name], e)
	}
	return r
}

// Resolve performs an exact-match lookup by identifier or display name, in
// that order. Identifier matches win so a dataset where an ID collides with
// another entity's name stays addressable.
func (r *Registry) Resolve(nameOrID string) (Entity, error) {
	if e, ok := r.byID[nameOrID]; ok {
		return e, nil
	}
	matches := r.byName[nameOrID]
	switch len(matches) {
	case 0:
		return Entity{}, errors.NotFoundf("entity %q not found", nameOrID)
	case 1:
		return matches[0], nil
	default:
		return Entity{}, errors.AmbiguousNamef("name %q matches %d entities, query by id instead", nameOrID, len(matches))
	}
}

// Get looks up an entity by identifier only.
func (r *Registry) Get(id string) (Entity, bool) {
	e, ok := r.byID[id]
	return e, ok
}

// All returns every registered entity, sorted by name for stable output.
func (r *Registry) All() []Entity {
	out := make([]Entity, 0, len(r.byID))
	for _, e := range r.byID {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Len returns the number of registered entities.
func (r *Registry) Len() int {
	return len(r.byID)
}
