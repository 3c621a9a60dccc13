package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ken/kclosest/pkg/core/point"
)

// selectOptions holds the flags of the select command
type selectOptions struct {
	k      int
	file   string
	output string
}

func newSelectCommand(root *rootOptions) *cobra.Command {
	opts := &selectOptions{}

	cmd := &cobra.Command{
		Use:   "select [x,y ...]",
		Short: "Print the K points closest to the origin",
		Long: `Print the K points closest to the origin.

Points come from --file (a YAML sequence of [x, y] pairs or {x, y} maps,
"-" for stdin) followed by any x,y arguments. The K results are printed in
no particular order.`,
		Example: `  # The single closest of two points
  kclosest select -k 1 -- 1,3 -2,2

  # Two closest points from a file, as YAML
  kclosest select -k 2 --file points.yaml -o yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelect(cmd, root, opts, args)
		},
	}

	cmd.Flags().IntVarP(&opts.k, "closest", "k", 1, "Number of closest points to return")
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "YAML file of points (\"-\" reads stdin)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "text", "Output format: text or yaml")

	return cmd
}

func runSelect(cmd *cobra.Command, root *rootOptions, opts *selectOptions, args []string) error {
	if opts.output != "text" && opts.output != "yaml" {
		return fmt.Errorf("unsupported output format %q (use text or yaml)", opts.output)
	}

	cfg, err := root.loadConfig(cmd)
	if err != nil {
		return err
	}

	sel, logger, err := newSelector(cmd, cfg)
	if err != nil {
		return err
	}

	points, err := readPoints(cmd.InOrStdin(), opts.file)
	if err != nil {
		return err
	}

	argPoints, err := point.ParseAll(args)
	if err != nil {
		return err
	}
	points = append(points, argPoints...)

	logger.Debug("points loaded", "count", len(points), "file", opts.file)

	closest, err := sel.Select(points, opts.k)
	if err != nil {
		return err
	}

	return writePoints(cmd.OutOrStdout(), closest, opts.output)
}

// readPoints decodes the points file, if any
func readPoints(stdin io.Reader, path string) ([]point.Point, error) {
	if path == "" {
		return nil, nil
	}

	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read points: %w", err)
	}

	points, err := point.DecodeYAML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse points file: %w", err)
	}

	return points, nil
}

func writePoints(w io.Writer, points []point.Point, format string) error {
	switch format {
	case "yaml":
		data, err := point.EncodeYAML(points)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case "text":
		for _, p := range points {
			if _, err := fmt.Fprintln(w, p); err != nil {
				return err
			}
		}
		return nil
	default:
		return errors.New("unsupported output format " + format)
	}
}
