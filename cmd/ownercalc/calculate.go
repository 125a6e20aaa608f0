package main

import "github.com/spf13/cobra"

var calculateCmd = &cobra.Command{
	Use:   "calculate <file> <entity>",
	Short: "Calculate effective ownership of an entity over the target",
	Long: `Calculates the effective ownership percentage the given entity holds in the
target, summed over every simple ownership chain between them. The target
defaults to the focus entity of the data (the depth-0 company); pass
--target to calculate against any other entity.

Examples:
  ownercalc calculate relations.json "CASA A/S"
  ownercalc calculate relations.json 12345678 --target "Holding ApS"
  ownercalc calculate relations.json "CASA A/S" --bound upper --format json`,
	Args: cobra.ExactArgs(2),
	RunE: runCalculate,
}

func init() {
	addQueryFlags(calculateCmd)
}

func runCalculate(cmd *cobra.Command, args []string) error {
	sess, err := newSession(cmd, args[0])
	if err != nil {
		return err
	}

	res, err := sess.svc.Calculate(args[1], sess.target)
	if err != nil {
		return err
	}

	return sess.formatter.Calculation(res, sess.warnings, cmd.OutOrStdout())
}
