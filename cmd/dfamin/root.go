package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/geange/dfamin"
)

func newRootCmd() *cobra.Command {
	var (
		names       []string
		parallelism int
		verbose     bool
		list        bool
	)

	cmd := &cobra.Command{
		Use:          "dfamin",
		Short:        "dfamin - minimise the built-in example automata",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if list {
				fmt.Fprintln(out, strings.Join(exampleNames(), "\n"))
				return nil
			}

			logger := zap.NewNop()
			if verbose {
				var err error
				logger, err = zap.NewDevelopment()
				if err != nil {
					return fmt.Errorf("create logger: %w", err)
				}
			}
			defer func() { _ = logger.Sync() }()

			if len(names) == 0 {
				names = exampleNames()
			}
			for i, name := range names {
				run, ok := examples[name]
				if !ok {
					return fmt.Errorf("unknown example %q (have %s)", name, strings.Join(exampleNames(), ", "))
				}
				if i > 0 {
					fmt.Fprintln(out)
				}
				logger.Debug("minimizing example", zap.String("example", name))
				if err := run(out, dfamin.WithLogger(logger), dfamin.WithParallelism(parallelism)); err != nil {
					logger.Error("minimization failed", zap.String("example", name), zap.Error(err))
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&names, "example", "e", nil, "Examples to minimise (default all)")
	cmd.Flags().IntVarP(&parallelism, "parallel", "p", 1, "Goroutines used to split the blocks of a pass")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log every refinement pass")
	cmd.Flags().BoolVar(&list, "list", false, "List the example names")

	return cmd
}
