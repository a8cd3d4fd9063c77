package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"eve/internal/catalog"
	"eve/internal/logging"
)

func newProjectCommand(ctx *commandContext) *cobra.Command {
	projectCmd := &cobra.Command{
		Use:   "project",
		Short: "Manage catalogued projects",
	}

	var build, description string
	addCmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a project to the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if strings.TrimSpace(build) == "" {
				build = cfg.Houdini.Build
			}
			reqCtx := ctx.commandCtx(cmd)
			return ctx.withCatalog(func(store *catalog.Store) error {
				project, err := store.AddProject(reqCtx, catalog.Project{Name: args[0], HoudiniBuild: build, Description: description})
				if err != nil {
					return err
				}
				ctx.log("catalog").Info("project added",
					logging.String(logging.FieldProject, project.Name),
					logging.Int64("project_id", project.ID),
				)
				fmt.Fprintf(cmd.OutOrStdout(), "Added project %s (id %d)\n", project.Name, project.ID)
				return nil
			})
		},
	}
	addCmd.Flags().StringVar(&build, "houdini-build", "", "Houdini build (default from houdini.build)")
	addCmd.Flags().StringVar(&description, "description", "", "Project description")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List catalogued projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reqCtx := ctx.commandCtx(cmd)
			return ctx.withCatalog(func(store *catalog.Store) error {
				projects, err := store.ListProjects(reqCtx)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(projects) == 0 {
					fmt.Fprintln(out, "No projects")
					return nil
				}
				rows := make([][]string, 0, len(projects))
				for _, p := range projects {
					rows = append(rows, []string{
						strconv.FormatInt(p.ID, 10),
						p.Name,
						p.HoudiniBuild,
						p.Description,
					})
				}
				fmt.Fprintln(out, renderTable([]string{"ID", "Name", "Houdini", "Description"}, rows,
					[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft}))
				return nil
			})
		},
	}

	showCmd := &cobra.Command{
		Use:   "show [name]",
		Short: "Show a project and its catalog counts",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			reqCtx := ctx.commandCtx(cmd)
			return ctx.withCatalog(func(store *catalog.Store) error {
				var project *catalog.Project
				if len(args) == 1 {
					project, err = store.GetProjectByName(reqCtx, args[0])
				} else {
					project, err = ctx.activeProject(reqCtx, store)
				}
				if err != nil {
					return err
				}
				assets, err := store.ListAssets(reqCtx, project.ID)
				if err != nil {
					return err
				}
				sequences, err := store.ListSequences(reqCtx, project.ID)
				if err != nil {
					return err
				}
				shots := 0
				for _, seq := range sequences {
					list, err := store.ListShots(reqCtx, seq.ID)
					if err != nil {
						return err
					}
					shots += len(list)
				}
				rows := [][]string{
					{"ID", strconv.FormatInt(project.ID, 10)},
					{"Name", project.Name},
					{"Root", cfg.ProjectRootFor(project.Name)},
					{"Houdini", project.HoudiniBuild},
					{"Description", project.Description},
					{"Created", project.CreatedAt.Local().Format("2006-01-02 15:04")},
					{"Assets", strconv.Itoa(len(assets))},
					{"Sequences", strconv.Itoa(len(sequences))},
					{"Shots", strconv.Itoa(shots)},
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Field", "Value"}, rows, nil))
				return nil
			})
		},
	}

	projectCmd.AddCommand(addCmd, listCmd, showCmd)
	return projectCmd
}

func newAssetCommand(ctx *commandContext) *cobra.Command {
	assetCmd := &cobra.Command{
		Use:   "asset",
		Short: "Manage assets of the active project",
	}

	var category, description string
	addCmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add an asset to the active project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reqCtx := ctx.commandCtx(cmd)
			return ctx.withCatalog(func(store *catalog.Store) error {
				project, err := ctx.activeProject(reqCtx, store)
				if err != nil {
					return err
				}
				cat, err := store.AssetCategoryByName(reqCtx, strings.ToLower(strings.TrimSpace(category)))
				if err != nil {
					return err
				}
				asset, err := store.AddAsset(reqCtx, catalog.Asset{
					Name:        args[0],
					ProjectID:   project.ID,
					CategoryID:  cat.ID,
					Description: description,
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added %s asset %s to %s\n", cat.Name, asset.Name, project.Name)
				return nil
			})
		},
	}
	addCmd.Flags().StringVar(&category, "category", "", "Asset category (character, environment, prop)")
	addCmd.Flags().StringVar(&description, "description", "", "Asset description")
	_ = addCmd.MarkFlagRequired("category")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List assets of the active project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reqCtx := ctx.commandCtx(cmd)
			return ctx.withCatalog(func(store *catalog.Store) error {
				project, err := ctx.activeProject(reqCtx, store)
				if err != nil {
					return err
				}
				assets, err := store.ListAssets(reqCtx, project.ID)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(assets) == 0 {
					fmt.Fprintln(out, "No assets")
					return nil
				}
				names, err := categoryNames(reqCtx, store)
				if err != nil {
					return err
				}
				rows := make([][]string, 0, len(assets))
				for _, a := range assets {
					rows = append(rows, []string{a.Name, names[a.CategoryID], a.Description})
				}
				fmt.Fprintln(out, renderTable([]string{"Name", "Category", "Description"}, rows, nil))
				return nil
			})
		},
	}

	assetCmd.AddCommand(addCmd, listCmd)
	return assetCmd
}

func categoryNames(ctx context.Context, store *catalog.Store) (map[int64]string, error) {
	categories, err := store.ListAssetCategories(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[int64]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}
	return names, nil
}

func newSequenceCommand(ctx *commandContext) *cobra.Command {
	sequenceCmd := &cobra.Command{
		Use:   "sequence",
		Short: "Manage sequences of the active project",
	}

	var description string
	addCmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a sequence to the active project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reqCtx := ctx.commandCtx(cmd)
			return ctx.withCatalog(func(store *catalog.Store) error {
				project, err := ctx.activeProject(reqCtx, store)
				if err != nil {
					return err
				}
				seq, err := store.AddSequence(reqCtx, catalog.Sequence{Name: args[0], ProjectID: project.ID, Description: description})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added sequence %s to %s\n", seq.Name, project.Name)
				return nil
			})
		},
	}
	addCmd.Flags().StringVar(&description, "description", "", "Sequence description")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List sequences of the active project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reqCtx := ctx.commandCtx(cmd)
			return ctx.withCatalog(func(store *catalog.Store) error {
				project, err := ctx.activeProject(reqCtx, store)
				if err != nil {
					return err
				}
				sequences, err := store.ListSequences(reqCtx, project.ID)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(sequences) == 0 {
					fmt.Fprintln(out, "No sequences")
					return nil
				}
				rows := make([][]string, 0, len(sequences))
				for _, s := range sequences {
					rows = append(rows, []string{s.Name, s.Description})
				}
				fmt.Fprintln(out, renderTable([]string{"Name", "Description"}, rows, nil))
				return nil
			})
		},
	}

	sequenceCmd.AddCommand(addCmd, listCmd)
	return sequenceCmd
}

func newShotCommand(ctx *commandContext) *cobra.Command {
	shotCmd := &cobra.Command{
		Use:   "shot",
		Short: "Manage shots of the active project",
	}

	var (
		sequence    string
		asset       string
		description string
		start, end  int
		width       int
		height      int
	)
	addCmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a shot to a sequence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reqCtx := ctx.commandCtx(cmd)
			return ctx.withCatalog(func(store *catalog.Store) error {
				project, err := ctx.activeProject(reqCtx, store)
				if err != nil {
					return err
				}
				seq, err := store.GetSequenceByName(reqCtx, project.ID, strings.TrimSpace(sequence))
				if err != nil {
					return err
				}
				shot := catalog.Shot{
					Name:        args[0],
					ProjectID:   project.ID,
					SequenceID:  seq.ID,
					StartFrame:  start,
					EndFrame:    end,
					Width:       width,
					Height:      height,
					Description: description,
				}
				if name := strings.TrimSpace(asset); name != "" {
					linked, err := store.GetAssetByName(reqCtx, project.ID, name)
					if err != nil {
						return err
					}
					shot.LinkedAssetID = linked.ID
				}
				stored, err := store.AddShot(reqCtx, shot)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added shot %s/%s (%d-%d)\n", seq.Name, stored.Name, stored.StartFrame, stored.EndFrame)
				return nil
			})
		},
	}
	addCmd.Flags().StringVar(&sequence, "sequence", "", "Sequence name")
	addCmd.Flags().StringVar(&asset, "asset", "", "Linked asset name")
	addCmd.Flags().StringVar(&description, "description", "", "Shot description")
	addCmd.Flags().IntVar(&start, "start", 0, "First frame (default 1001)")
	addCmd.Flags().IntVar(&end, "end", 0, "Last frame (default 1100)")
	addCmd.Flags().IntVar(&width, "width", 0, "Resolution width (default 1920)")
	addCmd.Flags().IntVar(&height, "height", 0, "Resolution height (default 1080)")
	_ = addCmd.MarkFlagRequired("sequence")

	var listSequence string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List shots of a sequence",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reqCtx := ctx.commandCtx(cmd)
			return ctx.withCatalog(func(store *catalog.Store) error {
				project, err := ctx.activeProject(reqCtx, store)
				if err != nil {
					return err
				}
				seq, err := store.GetSequenceByName(reqCtx, project.ID, strings.TrimSpace(listSequence))
				if err != nil {
					return err
				}
				shots, err := store.ListShots(reqCtx, seq.ID)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(shots) == 0 {
					fmt.Fprintln(out, "No shots")
					return nil
				}
				rows := make([][]string, 0, len(shots))
				for _, s := range shots {
					rows = append(rows, []string{
						s.Name,
						strconv.Itoa(s.StartFrame),
						strconv.Itoa(s.EndFrame),
						fmt.Sprintf("%dx%d", s.Width, s.Height),
					})
				}
				fmt.Fprintln(out, renderTable([]string{"Name", "Start", "End", "Resolution"}, rows,
					[]columnAlignment{alignLeft, alignRight, alignRight, alignLeft}))
				return nil
			})
		},
	}
	listCmd.Flags().StringVar(&listSequence, "sequence", "", "Sequence name")
	_ = listCmd.MarkFlagRequired("sequence")

	shotCmd.AddCommand(addCmd, listCmd)
	return shotCmd
}
