package main

import (
	"github.com/spf13/cobra"

	"github.com/resights/ownercalc/internal/entity"
	"github.com/resights/ownercalc/internal/output"
	"github.com/resights/ownercalc/internal/ownership"
)

var listAllCmd = &cobra.Command{
	Use:   "list-all <file> [entity]",
	Short: "List all direct and indirect owners of an entity",
	Long: `Lists every entity that owns the subject directly or through any chain of
intermediate holdings. The subject defaults to the focus entity of the data.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(cmd, args, "All owners", (*ownership.Service).ListAllOwners)
	},
}

var listOwnersCmd = &cobra.Command{
	Use:   "list-owners <file> [entity]",
	Short: "List the direct owners of an entity",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(cmd, args, "Direct owners", (*ownership.Service).ListDirectOwners)
	},
}

var listOwnedCmd = &cobra.Command{
	Use:   "list-owned <file> [entity]",
	Short: "List the entities an entity directly owns",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(cmd, args, "Owned entities", (*ownership.Service).ListOwned)
	},
}

func init() {
	addQueryFlags(listAllCmd)
	addQueryFlags(listOwnersCmd)
	addQueryFlags(listOwnedCmd)
}

// runList shares the load-resolve-print shape of the three list commands.
// The subject is the optional second argument, then the --target flag, then
// the focus entity.
func runList(cmd *cobra.Command, args []string, relation string, query func(*ownership.Service, string) ([]entity.Entity, error)) error {
	sess, err := newSession(cmd, args[0])
	if err != nil {
		return err
	}

	var subject entity.Entity
	switch {
	case len(args) == 2:
		subject, err = sess.svc.Resolve(args[1])
	case sess.target != "":
		subject, err = sess.svc.Resolve(sess.target)
	default:
		subject, err = sess.svc.Focus()
	}
	if err != nil {
		return err
	}

	entities, err := query(sess.svc, subject.ID)
	if err != nil {
		return err
	}

	return sess.formatter.EntityList(&output.EntityList{
		Subject:  subject,
		Relation: relation,
		Entities: entities,
	}, cmd.OutOrStdout())
}
