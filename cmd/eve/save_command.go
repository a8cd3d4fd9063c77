package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"eve/internal/config"
	"eve/internal/fileutil"
	"eve/internal/logging"
	"eve/internal/scenepath"
)

func newSaveCommand(ctx *commandContext) *cobra.Command {
	var onConflict string
	var force bool
	var from string

	cmd := &cobra.Command{
		Use:   "save <path>",
		Short: "Resolve the path a scene should be saved to",
		Long: "Resolve the path a scene should be saved to. When the path already exists the\n" +
			"conflict policy decides: overwrite it, save one past the highest version on\n" +
			"disk, or cancel. The prompt policy asks on an interactive terminal.\n\n" +
			"With --from the source file is copied to the resolved path.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			fp, err := scenepath.Parse(args[0])
			if err != nil {
				return err
			}

			policy := strings.ToLower(strings.TrimSpace(onConflict))
			if policy == "" {
				policy = cfg.Naming.OnConflict
			}
			if force {
				policy = config.ConflictOverwrite
			}
			decider, err := decisionProvider(cmd, policy)
			if err != nil {
				return err
			}

			logger := ctx.log("save")
			resolver := scenepath.NewConflictResolver(nil, nil, logger)
			reqCtx := ctx.commandCtx(cmd)
			target, err := resolver.ResolveSave(reqCtx, fp, decider)
			if errors.Is(err, scenepath.ErrCancelled) {
				fmt.Fprintln(cmd.ErrOrStderr(), "Save cancelled")
				return err
			}
			if err != nil {
				return err
			}
			logging.WithContext(reqCtx, logger).Debug("save target resolved",
				logging.String(logging.FieldPath, target.Raw()),
				logging.String("requested", fp.Raw()),
			)
			if src := strings.TrimSpace(from); src != "" {
				if err := fileutil.PublishCopy(src, filepath.FromSlash(target.Raw())); err != nil {
					return fmt.Errorf("save %s: %w", target.Raw(), err)
				}
				logging.WithContext(reqCtx, logger).Info("scene saved",
					logging.String(logging.FieldPath, target.Raw()),
					logging.String("source", src),
				)
			}
			fmt.Fprintln(cmd.OutOrStdout(), target.Raw())
			return nil
		},
	}

	cmd.Flags().StringVar(&onConflict, "on-conflict", "", "Conflict policy: prompt, overwrite, next, or cancel (default from naming.on_conflict)")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file without asking")
	cmd.Flags().StringVar(&from, "from", "", "Copy this file to the resolved path")
	return cmd
}

// decisionProvider maps a conflict policy to a provider. The prompt policy
// needs an interactive stdin; without one a collision is an error.
func decisionProvider(cmd *cobra.Command, policy string) (scenepath.DecisionProvider, error) {
	if policy != config.ConflictPrompt {
		decision, err := scenepath.ParseDecision(policy)
		if err != nil {
			return nil, fmt.Errorf("--on-conflict: %w", err)
		}
		return scenepath.FixedDecision(decision), nil
	}
	if !isTerminal(cmd.InOrStdin()) {
		return scenepath.DecisionFunc(func(_ context.Context, existing scenepath.FilePath) (scenepath.Decision, error) {
			return 0, fmt.Errorf("%s exists and stdin is not a terminal; pass --on-conflict overwrite|next|cancel", existing.Raw())
		}), nil
	}
	return newPromptDecider(cmd.InOrStdin(), cmd.ErrOrStderr()), nil
}
