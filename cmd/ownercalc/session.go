package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/resights/ownercalc/internal/loader"
	"github.com/resights/ownercalc/internal/output"
	"github.com/resights/ownercalc/internal/ownership"
)

// session is one loaded ownership structure plus everything a command needs
// to answer and print a query against it.
type session struct {
	svc       *ownership.Service
	load      *loader.Result
	formatter output.Formatter
	target    string
	warnings  []string
}

// addQueryFlags registers the flags shared by every data-reading command.
func addQueryFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("target", "t", "", "target entity; defaults to the focus entity of the data")
	cmd.Flags().String("bound", "", "share bound weighting the graph: lower, average or upper")
	cmd.Flags().Bool("include-inactive", false, "include inactive relations in the graph")
	cmd.Flags().StringP("format", "f", "", "output format: text, quiet or json")
}

// newSession loads the relation file and wires the query façade, applying
// flag values over config values over defaults.
func newSession(cmd *cobra.Command, file string) (*session, error) {
	bound, _ := cmd.Flags().GetString("bound")
	if bound == "" {
		bound = cfg.Bound
	}
	includeInactive, _ := cmd.Flags().GetBool("include-inactive")
	if !cmd.Flags().Changed("include-inactive") {
		includeInactive = cfg.IncludeInactive
	}
	format, _ := cmd.Flags().GetString("format")
	if format == "" {
		format = cfg.Output.Format
	}
	target, _ := cmd.Flags().GetString("target")

	res, err := loader.LoadFile(file, loader.Options{
		Bound:           loader.Bound(bound),
		IncludeInactive: includeInactive,
	}, logger)
	if err != nil {
		return nil, err
	}

	// Configuration overrides the focus entity detected in the data.
	focus := cfg.FocusEntity
	if focus == "" {
		focus = res.Focus
	}

	sess := &session{
		svc:       ownership.NewService(res.Registry, res.Graph, focus, cfg.MaxPaths, logger),
		load:      res,
		formatter: output.NewFormatter(format),
		target:    target,
	}

	if res.InactiveRelations > 0 {
		if includeInactive {
			sess.warnings = append(sess.warnings,
				fmt.Sprintf("the graph includes %d inactive relations", res.InactiveRelations))
		} else {
			sess.warnings = append(sess.warnings,
				fmt.Sprintf("%d inactive relations were excluded", res.InactiveRelations))
		}
	}
	if res.ZeroWeightEdges > 0 {
		sess.warnings = append(sess.warnings,
			fmt.Sprintf("%d relations carry no ownership at the %s bound and were dropped", res.ZeroWeightEdges, bound))
	}

	return sess, nil
}
