package commands

import (
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/logrc/cmd/logrc/opts"
	"github.com/walteh/logrc/pkg/operation"
)

// NewMigrateCmd creates a new migrate command
func NewMigrateCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Rewrite target files in place according to the configured rules",
		Long: `Migrate applies each file block's ordered rewrite rules and indentation
repairs to its targets. It will:
1. Resolve each target path or glob
2. Apply the rules in order against the current text
3. Repair over-indented lines around each configured anchor
4. Write a file back only when its content changed`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			ops := make([]operation.Operation, 0, len(opts.Config.Files))
			for _, block := range opts.Config.Files {
				op, err := operation.NewMigrateOperation(operation.Options{
					Config:     opts.Config,
					Block:      block,
					StatusMgr:  opts.StatusMgr,
					UserLogger: opts.UserLogger,
				})
				if err != nil {
					return errors.Errorf("creating migrate operation: %w", err)
				}
				ops = append(ops, op)
			}

			if err := opts.Runner.Run(ctx, ops...); err != nil {
				return errors.Errorf("migrating files: %w", err)
			}

			summary := opts.StatusMgr.Summarize(ctx)
			opts.UserLogger.LogSummary(summary)
			if summary.Errors > 0 {
				return errors.Errorf("%d files failed", summary.Errors)
			}
			return nil
		},
	}

	return cmd
}
