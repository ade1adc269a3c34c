package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/LISSConsulting/LISSTech.Gridwork/internal/config"
)

func renderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the scene to the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			defer env.close()

			opts, err := renderOptionsFrom(cmd)
			if err != nil {
				return err
			}
			plain, _ := cmd.Flags().GetBool("plain")
			return executeRender(cmd.OutOrStdout(), env, opts, plain)
		},
	}
	addRenderFlags(cmd)
	cmd.Flags().Bool("plain", false, "print characters only, without colours")
	return cmd
}

func snapshotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render the scene to a PNG file",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			defer env.close()

			opts, err := renderOptionsFrom(cmd)
			if err != nil {
				return err
			}
			out, _ := cmd.Flags().GetString("out")
			scale, _ := cmd.Flags().GetInt("scale")
			if out == "" {
				out = filepath.Join(config.SnapshotDir, env.cfg.Scene.Name+".png")
			}
			if err := executeSnapshot(env, opts, out, scale); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", out)
			return nil
		},
	}
	addRenderFlags(cmd)
	cmd.Flags().String("out", "", "output file (default: snapshots/<scene>.png)")
	cmd.Flags().Int("scale", 8, "pixels per cell")
	return cmd
}

func viewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Open the scene in the interactive viewer",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadViewerEnv(cmd)
			if err != nil {
				return err
			}
			defer env.close()

			ctx, cancel := signalContext()
			defer cancel()
			registerQuitHandler()
			return runViewer(ctx, env)
		},
	}
}

func partitionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "partition",
		Short: "Split a length by size specs and print the resulting sizes",
		Long: `Split a length into margins, cells and gutters the way a grid does.

Specs are comma separated: 40 is fixed, "30%" a share of the length and
"*" or "2*" a weighted share of what is left.`,
		Example: `  gridwork partition --size 100 --specs "30%,*,2*" --margins 1,1 --spacing 1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			size, _ := cmd.Flags().GetInt("size")
			specs, _ := cmd.Flags().GetString("specs")
			margins, _ := cmd.Flags().GetIntSlice("margins")
			spacing, _ := cmd.Flags().GetInt("spacing")

			out, err := executePartition(size, specs, margins, spacing)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().Int("size", 0, "length to split")
	cmd.Flags().String("specs", "*", "comma-separated size specs")
	cmd.Flags().IntSlice("margins", []int{0, 0}, "leading and trailing margin")
	cmd.Flags().Int("spacing", 0, "gutter between cells")
	_ = cmd.MarkFlagRequired("size")
	return cmd
}

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Scaffold a gridwork project (example scene, snapshots dir)",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("get working directory: %w", err)
			}
			created, err := config.ScaffoldProject(dir)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatScaffoldResult(created))
			return nil
		},
	}
}

func addRenderFlags(cmd *cobra.Command) {
	cmd.Flags().Int("width", 0, "override scene.width")
	cmd.Flags().Int("height", 0, "override scene.height")
	cmd.Flags().StringSlice("select", nil, "bind an indirect before rendering, as name=alternative")
}

func renderOptionsFrom(cmd *cobra.Command) (renderOptions, error) {
	var opts renderOptions
	opts.width, _ = cmd.Flags().GetInt("width")
	opts.height, _ = cmd.Flags().GetInt("height")
	selects, _ := cmd.Flags().GetStringSlice("select")
	if opts.width < 0 || opts.height < 0 {
		return opts, fmt.Errorf("--width and --height must be >= 0")
	}
	sel, err := parseSelections(selects)
	if err != nil {
		return opts, err
	}
	opts.selections = sel
	return opts, nil
}
