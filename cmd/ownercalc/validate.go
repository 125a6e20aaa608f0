package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/resights/ownercalc/internal/loader"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Validate ownership relation files",
	Long: `Checks that each file exists, is a JSON or YAML relation file, and that
every relation in it is well-formed (parsable share strings, complete
entity references). Files are checked concurrently.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	results := make([]error, len(args))

	g := new(errgroup.Group)
	g.SetLimit(4)
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			results[i] = loader.ValidateFile(path)
			return nil
		})
	}
	// Workers only record their result, so Wait never fails here.
	_ = g.Wait()

	failed := 0
	out := cmd.OutOrStdout()
	for i, path := range args {
		if results[i] != nil {
			failed++
			fmt.Fprintf(out, "❌ %s: %v\n", path, results[i])
		} else {
			fmt.Fprintf(out, "✅ %s is valid\n", path)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed validation", failed, len(args))
	}
	return nil
}
