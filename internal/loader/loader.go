// Package loader turns raw ownership-relation files into the validated
// in-memory structures the engine queries: an entity registry, a weighted
// graph and the dataset's focus entity. Everything schema-shaped happens
// here; the graph itself only ever sees clean entities and edges.
package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/resights/ownercalc/internal/entity"
	"github.com/resights/ownercalc/internal/errors"
	"github.com/resights/ownercalc/internal/graph"
)

// Relation is one raw ownership record as it appears in input files. Source
// and target identifiers are numeric registry numbers in the raw data; the
// engine works with their string form. Depth counts hops from the dataset's
// focus entity (depth 0).
type Relation struct {
	ID          string `json:"id" yaml:"id"`
	Source      int64  `json:"source" yaml:"source"`
	SourceName  string `json:"source_name" yaml:"source_name"`
	SourceDepth int    `json:"source_depth" yaml:"source_depth"`
	SourceKind  string `json:"source_kind,omitempty" yaml:"source_kind,omitempty"`
	Target      int64  `json:"target" yaml:"target"`
	TargetName  string `json:"target_name" yaml:"target_name"`
	TargetDepth int    `json:"target_depth" yaml:"target_depth"`
	TargetKind  string `json:"target_kind,omitempty" yaml:"target_kind,omitempty"`
	Share       string `json:"share" yaml:"share"`
	Active      bool   `json:"active" yaml:"active"`
}

// Options controls how raw relations become a graph.
type Options struct {
	// Bound picks which share-range reading becomes the edge weight
	// (default: average).
	Bound Bound
	// IncludeInactive folds inactive relations into the graph instead of
	// skipping them.
	IncludeInactive bool
}

// Result is a fully-built query session: registry + graph + focus entity,
// plus counters for what the loader filtered, so commands can warn about
// data the numbers no longer reflect.
type Result struct {
	Registry *entity.Registry
	Graph    *graph.Graph

	// Focus is the ID of the depth-0 entity, or the empty string when the
	// data names none.
	Focus string

	RelationCount     int
	InactiveRelations int
	ZeroWeightEdges   int
	DuplicatesMerged  int
}

// LoadFile validates path, reads its relations and builds a query session.
func LoadFile(path string, opts Options, log *logrus.Logger) (*Result, error) {
	if err := checkFile(path); err != nil {
		return nil, err
	}
	relations, err := readRelations(path)
	if err != nil {
		return nil, err
	}
	return Load(relations, opts, log)
}

// ValidateFile runs every file- and record-level check without keeping the
// result: existence, regular file, supported extension, decodable, and every
// relation well-formed.
func ValidateFile(path string) error {
	if err := checkFile(path); err != nil {
		return err
	}
	relations, err := readRelations(path)
	if err != nil {
		return err
	}
	_, err = Load(relations, Options{}, nil)
	return err
}

// Load builds the registry and graph from validated relation records.
//
// Loader responsibilities the engine relies on: share strings are parsed
// here, duplicate ordered pairs are pre-merged here (last active record
// wins), inactive relations are filtered here, and edges whose selected
// bound is zero are dropped here - a zero fraction carries no ownership and
// is not a legal graph weight.
func Load(relations []Relation, opts Options, log *logrus.Logger) (*Result, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	bound, err := ParseBound(string(opts.Bound))
	if err != nil {
		return nil, err
	}

	res := &Result{
		Graph:         graph.New(),
		RelationCount: len(relations),
	}

	type pendingEdge struct {
		owner, owned string
		fraction     float64
	}
	var order []string // pair keys in first-seen order, for deterministic AddEdge
	pending := make(map[string]pendingEdge)
	var entities []entity.Entity

	for i, rel := range relations {
		if rel.ID == "" {
			rel.ID = uuid.NewString()
		}
		if err := validateRelation(i, rel); err != nil {
			return nil, err
		}

		src := entity.Entity{ID: strconv.FormatInt(rel.Source, 10), Name: rel.SourceName}
		dst := entity.Entity{ID: strconv.FormatInt(rel.Target, 10), Name: rel.TargetName}
		src.Kind, err = parseKind(rel.SourceKind)
		if err != nil {
			return nil, errors.Validationf("relation %s: source: %v", rel.ID, err)
		}
		dst.Kind, err = parseKind(rel.TargetKind)
		if err != nil {
			return nil, errors.Validationf("relation %s: target: %v", rel.ID, err)
		}
		entities = append(entities, src, dst)
		res.Graph.AddNode(src.ID)
		res.Graph.AddNode(dst.ID)

		if res.Focus == "" {
			if rel.TargetDepth == 0 {
				res.Focus = dst.ID
			} else if rel.SourceDepth == 0 {
				res.Focus = src.ID
			}
		}

		share, err := ParseShare(rel.Share)
		if err != nil {
			return nil, errors.Wrap(err, errors.KindValidation, fmt.Sprintf("relation %s", rel.ID))
		}

		if !rel.Active {
			res.InactiveRelations++
			if !opts.IncludeInactive {
				continue
			}
		}

		fraction := share.Select(bound)
		if fraction == 0 {
			// Happens for the lower bound of "<X%" shares.
			res.ZeroWeightEdges++
			log.WithFields(logrus.Fields{
				"relation": rel.ID,
				"share":    rel.Share,
				"bound":    bound,
			}).Warn("dropping relation with zero fraction at selected bound")
			continue
		}

		key := src.ID + "\x00" + dst.ID
		if _, seen := pending[key]; seen {
			res.DuplicatesMerged++
		} else {
			order = append(order, key)
		}
		pending[key] = pendingEdge{owner: src.ID, owned: dst.ID, fraction: fraction}
	}

	for _, key := range order {
		e := pending[key]
		if err := res.Graph.AddEdge(e.owner, e.owned, e.fraction); err != nil {
			return nil, err
		}
	}

	res.Registry = entity.NewRegistry(entities)

	log.WithFields(logrus.Fields{
		"relations": res.RelationCount,
		"entities":  res.Registry.Len(),
		"edges":     res.Graph.EdgeCount(),
		"inactive":  res.InactiveRelations,
		"merged":    res.DuplicatesMerged,
	}).Debug("ownership structure loaded")

	return res, nil
}

func validateRelation(i int, rel Relation) error {
	if rel.Source == 0 || rel.Target == 0 {
		return errors.Validationf("relation %d (%s): source and target ids are required", i, rel.ID)
	}
	if rel.SourceName == "" || rel.TargetName == "" {
		return errors.Validationf("relation %d (%s): source and target names are required", i, rel.ID)
	}
	if rel.Share == "" {
		return errors.Validationf("relation %d (%s): share is required", i, rel.ID)
	}
	return nil
}

func parseKind(s string) (entity.Kind, error) {
	switch s {
	case "", string(entity.KindCompany):
		return entity.KindCompany, nil
	case string(entity.KindIndividual):
		return entity.KindIndividual, nil
	default:
		return "", fmt.Errorf("unknown entity kind %q", s)
	}
}

// checkFile verifies the path points at a readable relation file.
func checkFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.FileSystemError(err, fmt.Sprintf("file %s does not exist", path))
	}
	if info.IsDir() {
		return errors.Newf(errors.KindFileSystem, "%s is not a file", path)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return nil
	default:
		return errors.Validationf("%s is not a JSON or YAML file", path)
	}
}

// readRelations decodes the file by extension. Both formats carry the same
// record shape: a top-level list of relations.
func readRelations(path string) ([]Relation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.FileSystemError(err, fmt.Sprintf("failed to read %s", path))
	}

	var relations []Relation
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &relations)
	default:
		err = json.Unmarshal(data, &relations)
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.KindValidation, fmt.Sprintf("file %s is invalid", path))
	}
	return relations, nil
}
