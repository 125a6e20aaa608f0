// Package ownership is the query façade over the ownership-graph engine:
// the four public operations the CLI calls, composed from the entity
// registry, the path enumerator, the aggregator and the transitive resolver.
// Every operation is read-only and returns plain value copies, never
// references into the live graph.
package ownership

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/resights/ownercalc/internal/entity"
	"github.com/resights/ownercalc/internal/errors"
	"github.com/resights/ownercalc/internal/graph"
)

// Service answers ownership queries over one loaded structure. All of its
// arguments are names or identifiers; resolution through the registry happens
// first, so NotFound and AmbiguousName surface before any traversal.
type Service struct {
	registry *entity.Registry
	graph    *graph.Graph
	focus    string
	maxPaths int
	log      *logrus.Logger
}

// NewService wires a façade over a loaded registry and graph. focusID is the
// default calculation target when a caller supplies none (empty string means
// no default). maxPaths bounds how many contributing paths a calculation will
// enumerate; zero means unbounded, and hitting the bound is an error rather
// than a silently truncated number.
func NewService(registry *entity.Registry, g *graph.Graph, focusID string, maxPaths int, log *logrus.Logger) *Service {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Service{registry: registry, graph: g, focus: focusID, maxPaths: maxPaths, log: log}
}

// PathResult is one contributing ownership chain, entities in order from
// source to target.
type PathResult struct {
	Entities []entity.Entity `json:"entities"`
	Weight   float64         `json:"weight"`
}

// CalculationResult is the outcome of an effective-ownership calculation:
// the resolved endpoints, every contributing simple path with its weight,
// and the aggregated fraction (sum of path weights, unclamped).
type CalculationResult struct {
	Source   entity.Entity `json:"source"`
	Target   entity.Entity `json:"target"`
	Fraction float64       `json:"fraction"`
	Paths    []PathResult  `json:"paths"`
}

// Resolve looks an entity up by display name or identifier, surfacing the
// registry's NotFound / AmbiguousName failures unchanged.
func (s *Service) Resolve(nameOrID string) (entity.Entity, error) {
	return s.registry.Resolve(nameOrID)
}

// Focus resolves the configured focus entity.
func (s *Service) Focus() (entity.Entity, error) {
	if s.focus == "" {
		return entity.Entity{}, errors.NotFoundf("no focus entity configured and none found in the data")
	}
	return s.registry.Resolve(s.focus)
}

// Calculate computes the effective ownership fraction of source over target.
// An empty target falls back to the focus entity. A result of 0 means no
// ownership relationship exists; calculating an entity against itself yields
// exactly 1 (full self-ownership).
func (s *Service) Calculate(source, target string) (*CalculationResult, error) {
	src, err := s.registry.Resolve(source)
	if err != nil {
		return nil, err
	}

	var dst entity.Entity
	if target == "" {
		dst, err = s.Focus()
	} else {
		dst, err = s.registry.Resolve(target)
	}
	if err != nil {
		return nil, err
	}

	it, err := s.graph.EnumeratePaths(src.ID, dst.ID)
	if err != nil {
		return nil, err
	}
	paths, truncated := it.Collect(s.maxPaths)
	if truncated {
		return nil, errors.Validationf(
			"more than %d ownership paths between %s and %s, raise max_paths to calculate",
			s.maxPaths, src.Name, dst.Name)
	}

	res := &CalculationResult{
		Source:   src,
		Target:   dst,
		Fraction: graph.Aggregate(paths),
		Paths:    make([]PathResult, 0, len(paths)),
	}
	for _, p := range paths {
		res.Paths = append(res.Paths, PathResult{Entities: s.entitiesOf(p.Entities), Weight: p.Weight})
	}

	s.log.WithFields(logrus.Fields{
		"source":   src.Name,
		"target":   dst.Name,
		"paths":    len(res.Paths),
		"fraction": res.Fraction,
	}).Debug("calculated effective ownership")

	return res, nil
}

// ListAllOwners returns every direct and indirect owner of the entity, the
// entity itself excluded even when it sits on a cycle.
func (s *Service) ListAllOwners(nameOrID string) ([]entity.Entity, error) {
	e, err := s.registry.Resolve(nameOrID)
	if err != nil {
		return nil, err
	}
	return sortedEntities(s.entitiesOf(s.graph.Ancestors(e.ID))), nil
}

// ListDirectOwners returns the entities holding a direct edge into the
// entity.
func (s *Service) ListDirectOwners(nameOrID string) ([]entity.Entity, error) {
	e, err := s.registry.Resolve(nameOrID)
	if err != nil {
		return nil, err
	}
	return sortedEntities(s.entitiesOf(idsOf(s.graph.Predecessors(e.ID)))), nil
}

// ListOwned returns the entities the given entity holds a direct edge into.
func (s *Service) ListOwned(nameOrID string) ([]entity.Entity, error) {
	e, err := s.registry.Resolve(nameOrID)
	if err != nil {
		return nil, err
	}
	return sortedEntities(s.entitiesOf(idsOf(s.graph.Successors(e.ID)))), nil
}

// entitiesOf maps graph-level IDs back to entity values. IDs in the graph
// always come from the registry, so misses only happen on programmer error;
// those are skipped rather than invented.
func (s *Service) entitiesOf(ids []string) []entity.Entity {
	out := make([]entity.Entity, 0, len(ids))
	for _, id := range ids {
		if e, ok := s.registry.Get(id); ok {
			out = append(out, e)
		}
	}
	return out
}

// sortedEntities orders a result set by name for stable presentation; the
// sets themselves carry no ordering guarantee.
func sortedEntities(entities []entity.Entity) []entity.Entity {
	sort.Slice(entities, func(i, j int) bool {
		if entities[i].Name != entities[j].Name {
			return entities[i].Name < entities[j].Name
		}
		return entities[i].ID < entities[j].ID
	})
	return entities
}

func idsOf(weights map[string]float64) []string {
	ids := make([]string, 0, len(weights))
	for id := range weights {
		ids = append(ids, id)
	}
	return ids
}
