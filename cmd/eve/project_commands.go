package main

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"eve/internal/catalog"
	"eve/internal/launcher"
	"eve/internal/logging"
	"eve/internal/preflight"
	"eve/internal/scaffold"
)

func newScaffoldCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "scaffold",
		Short: "Create the folder structure of the active project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			root := cfg.ProjectRoot()
			if root == "" {
				return errors.New("no project selected; pass --project or set project.name")
			}
			reqCtx := ctx.commandCtx(cmd)
			return ctx.withCatalog(func(store *catalog.Store) error {
				project, err := ctx.activeProject(reqCtx, store)
				if err != nil {
					return err
				}
				categories, err := store.ListAssetCategories(reqCtx)
				if err != nil {
					return err
				}
				categoryNames := make([]string, 0, len(categories))
				for _, c := range categories {
					categoryNames = append(categoryNames, c.Name)
				}
				sequences, err := store.ListSequences(reqCtx, project.ID)
				if err != nil {
					return err
				}
				layout := make([]scaffold.Sequence, 0, len(sequences))
				for _, seq := range sequences {
					shots, err := store.ListShots(reqCtx, seq.ID)
					if err != nil {
						return err
					}
					entry := scaffold.Sequence{Name: seq.Name}
					for _, shot := range shots {
						entry.Shots = append(entry.Shots, shot.Name)
					}
					layout = append(layout, entry)
				}

				created, err := scaffold.Create(root, scaffold.Template(categoryNames, layout))
				if err != nil {
					return err
				}
				logging.WithContext(reqCtx, ctx.log("scaffold")).Info("project scaffolded",
					logging.String("root", root),
					logging.Int("created", len(created)),
				)
				fmt.Fprintf(cmd.OutOrStdout(), "Created %d directories under %s\n", len(created), root)
				return nil
			})
		},
	}
}

func newLaunchCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "launch",
		Short: "Start Houdini with the project environment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			env, err := launcher.Environment(cfg, "")
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if dryRun {
				keys := make([]string, 0, len(env))
				for key := range env {
					keys = append(keys, key)
				}
				sort.Strings(keys)
				rows := make([][]string, 0, len(keys))
				for _, key := range keys {
					rows = append(rows, []string{key, env[key]})
				}
				fmt.Fprintln(out, renderTable([]string{"Variable", "Value"}, rows, nil))
				return nil
			}

			if check := preflight.CheckBinary("Houdini", cfg.Houdini.Binary); !check.Passed {
				return fmt.Errorf("houdini: %s", check.Detail)
			}
			reqCtx := ctx.commandCtx(cmd)
			pid, err := launcher.Launch(reqCtx, cfg.Houdini.Binary, env.Merge(os.Environ()))
			if err != nil {
				return err
			}
			logging.WithContext(reqCtx, ctx.log("launcher")).Info("houdini launched",
				logging.String("binary", cfg.Houdini.Binary),
				logging.Int("pid", pid),
				logging.String(launcher.EnvJob, env[launcher.EnvJob]),
			)
			fmt.Fprintf(out, "Launched %s for %s (pid %d)\n", cfg.Houdini.Binary, env[launcher.EnvProjectName], pid)
			return nil
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the environment without launching")
	return cmd
}

func newDoctorCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check directories, catalog, and binaries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			results := preflight.RunAll(ctx.commandCtx(cmd), cfg)
			for _, r := range results {
				kind := statusOK
				if !r.Passed {
					kind = statusError
				}
				fmt.Fprintln(out, renderStatusLine(r.Name, kind, r.Detail, colorize))
			}
			if failed := preflight.Failed(results); len(failed) > 0 {
				return fmt.Errorf("%d of %d checks failed", len(failed), len(results))
			}
			return nil
		},
	}
}
