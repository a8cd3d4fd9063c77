package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"eve/internal/catalog"
	"eve/internal/logging"
	"eve/internal/scenepath"
)

func newPathCommand(ctx *commandContext) *cobra.Command {
	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Parse, version, and build scene file paths",
	}

	pathCmd.AddCommand(newPathParseCommand())
	pathCmd.AddCommand(newPathNextCommand())
	pathCmd.AddCommand(newPathLatestCommand(ctx))
	pathCmd.AddCommand(newPathVersionsCommand(ctx))
	pathCmd.AddCommand(newPathAssetCommand(ctx))
	pathCmd.AddCommand(newPathShotCommand(ctx))

	return pathCmd
}

type pathView struct {
	Path          string `json:"path"`
	Kind          string `json:"kind"`
	Location      string `json:"location"`
	FolderVersion string `json:"folder_version,omitempty"`
	Name          string `json:"name"`
	Prefix        string `json:"prefix"`
	Base          string `json:"base,omitempty"`
	Code          string `json:"code"`
	Version       string `json:"version"`
	Extension     string `json:"extension"`
}

func newPathView(fp scenepath.FilePath) pathView {
	return pathView{
		Path:          fp.Raw(),
		Kind:          fp.Kind().String(),
		Location:      fp.Location(),
		FolderVersion: fp.FolderVersion(),
		Name:          fp.Name(),
		Prefix:        fp.Prefix(),
		Base:          fp.Base(),
		Code:          fp.Code(),
		Version:       fp.Version(),
		Extension:     fp.Extension(),
	}
}

func newPathParseCommand() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:         "parse <path>",
		Short:       "Show the naming fields of a scene file path",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			fp, err := scenepath.Parse(args[0])
			if err != nil {
				return err
			}
			view := newPathView(fp)
			if asJSON {
				return writeJSON(cmd, view)
			}
			rows := [][]string{
				{"Kind", view.Kind},
				{"Location", view.Location},
				{"Folder version", view.FolderVersion},
				{"Name", view.Name},
				{"Prefix", view.Prefix},
				{"Base", view.Base},
				{"Code", view.Code},
				{"Version", view.Version},
				{"Extension", view.Extension},
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Field", "Value"}, rows, nil))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func newPathNextCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "next <path>",
		Short:       "Print the path one version past the given one",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			fp, err := scenepath.Parse(args[0])
			if err != nil {
				return err
			}
			next, err := scenepath.NextVersion(fp)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), next.Raw())
			return nil
		},
	}
}

func newPathLatestCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "latest <path>",
		Short: "Print the path one version past the highest version on disk",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fp, err := scenepath.Parse(args[0])
			if err != nil {
				return err
			}
			resolver := scenepath.NewVersionResolver(nil, ctx.log("versions"))
			latest, err := resolver.LatestVersion(fp)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), latest.Raw())
			return nil
		},
	}
}

func newPathVersionsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "versions <path>",
		Short: "List the versions of a file family found on disk",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fp, err := scenepath.Parse(args[0])
			if err != nil {
				return err
			}
			resolver := scenepath.NewVersionResolver(nil, ctx.log("versions"))
			members, err := resolver.Versions(fp)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(members) == 0 {
				fmt.Fprintf(out, "No versions of %s found\n", fp.Code())
				return nil
			}
			rows := make([][]string, 0, len(members))
			for _, m := range members {
				rows = append(rows, []string{m.Version(), m.Raw()})
			}
			fmt.Fprintln(out, renderTable([]string{"Version", "Path"}, rows, []columnAlignment{alignRight, alignLeft}))
			return nil
		},
	}
}

type buildFlags struct {
	fileType string
	version  int
	latest   bool
}

func (f *buildFlags) register(cmd *cobra.Command, defaultType string) {
	cmd.Flags().StringVar(&f.fileType, "file-type", defaultType, "Catalog file type name")
	cmd.Flags().IntVar(&f.version, "version", 1, "Version to build")
	cmd.Flags().BoolVar(&f.latest, "latest", false, "Build one version past the highest version on disk")
}

// finish applies --latest. A family with no files on disk keeps the built
// version.
func (f *buildFlags) finish(ctx *commandContext, fp scenepath.FilePath) (scenepath.FilePath, error) {
	if !f.latest {
		return fp, nil
	}
	latest, err := scenepath.NewVersionResolver(nil, ctx.log("versions")).LatestVersion(fp)
	if errors.Is(err, scenepath.ErrNoVersionsFound) {
		return fp, nil
	}
	return latest, err
}

func newPathAssetCommand(ctx *commandContext) *cobra.Command {
	var flags buildFlags
	var asset string
	cmd := &cobra.Command{
		Use:   "asset",
		Short: "Build the scene path of a catalogued asset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			builder, err := ctx.builder()
			if err != nil {
				return err
			}
			reqCtx := ctx.commandCtx(cmd)
			return ctx.withCatalog(func(store *catalog.Store) error {
				project, err := ctx.activeProject(reqCtx, store)
				if err != nil {
					return err
				}
				ft, err := store.FileType(reqCtx, flags.fileType)
				if err != nil {
					return err
				}
				record, err := store.GetAssetByName(reqCtx, project.ID, strings.TrimSpace(asset))
				if err != nil {
					return err
				}
				category, err := store.AssetCategory(reqCtx, record.CategoryID)
				if err != nil {
					return err
				}
				fp, err := builder.AssetScene(ft.ScenePath(), category.ScenePath(), record.Name, flags.version)
				if err != nil {
					return err
				}
				if fp, err = flags.finish(ctx, fp); err != nil {
					return err
				}
				ctx.log("paths").Debug("asset scene built",
					logging.String(logging.FieldPath, fp.Raw()),
					logging.String("asset", record.Name),
				)
				fmt.Fprintln(cmd.OutOrStdout(), fp.Raw())
				return nil
			})
		},
	}
	flags.register(cmd, "asset_hip")
	cmd.Flags().StringVar(&asset, "asset", "", "Asset name")
	_ = cmd.MarkFlagRequired("asset")
	return cmd
}

func newPathShotCommand(ctx *commandContext) *cobra.Command {
	var flags buildFlags
	var sequence, shot string
	cmd := &cobra.Command{
		Use:   "shot",
		Short: "Build the render scene path of a catalogued shot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			builder, err := ctx.builder()
			if err != nil {
				return err
			}
			reqCtx := ctx.commandCtx(cmd)
			return ctx.withCatalog(func(store *catalog.Store) error {
				project, err := ctx.activeProject(reqCtx, store)
				if err != nil {
					return err
				}
				ft, err := store.FileType(reqCtx, flags.fileType)
				if err != nil {
					return err
				}
				seq, err := store.GetSequenceByName(reqCtx, project.ID, strings.TrimSpace(sequence))
				if err != nil {
					return err
				}
				record, err := store.GetShotByName(reqCtx, seq.ID, strings.TrimSpace(shot))
				if err != nil {
					return err
				}
				fp, err := builder.ShotRenderScene(ft.ScenePath(), seq.Name, record.Name, flags.version)
				if err != nil {
					return err
				}
				if fp, err = flags.finish(ctx, fp); err != nil {
					return err
				}
				ctx.log("paths").Debug("shot scene built",
					logging.String(logging.FieldPath, fp.Raw()),
					logging.String("shot", record.Name),
					logging.String("frames", strconv.Itoa(record.StartFrame)+"-"+strconv.Itoa(record.EndFrame)),
				)
				fmt.Fprintln(cmd.OutOrStdout(), fp.Raw())
				return nil
			})
		},
	}
	flags.register(cmd, "shot_render")
	cmd.Flags().StringVar(&sequence, "sequence", "", "Sequence name")
	cmd.Flags().StringVar(&shot, "shot", "", "Shot name")
	_ = cmd.MarkFlagRequired("sequence")
	_ = cmd.MarkFlagRequired("shot")
	return cmd
}
