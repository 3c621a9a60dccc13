package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ken/kclosest/pkg/core/point"
)

func newRandomCommand(root *rootOptions) *cobra.Command {
	var (
		count int
		bound int32
		out   string
	)

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Generate a YAML file of random points",
		Example: `  # 1000 points with coordinates in [-500, 500]
  kclosest random --count 1000 --bound 500 --seed 7 --out points.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count < 0 {
				return fmt.Errorf("count must not be negative, got %d", count)
			}

			seed := root.seed
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			points := point.RandomN(rand.New(rand.NewSource(seed)), count, bound)

			data, err := point.EncodeYAML(points)
			if err != nil {
				return err
			}

			if out == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			if err := os.WriteFile(out, data, 0644); err != nil {
				return fmt.Errorf("failed to write points: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d points to %s\n", count, out)
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 100, "Number of points to generate")
	cmd.Flags().Int32Var(&bound, "bound", 1000, "Largest coordinate magnitude")
	cmd.Flags().StringVar(&out, "out", "", "Output file (default stdout)")

	return cmd
}
