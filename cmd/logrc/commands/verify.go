package commands

import (
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/logrc/cmd/logrc/opts"
	"github.com/walteh/logrc/pkg/operation"
)

// NewVerifyCmd creates a new verify command
func NewVerifyCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check that no residual occurrences of the migrated patterns remain",
		Long: `Verify counts matches of each file block's verify pattern (for example
"console\.") in its targets. Any remaining occurrence means the
migration is incomplete, and verify exits non-zero.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			ops := make([]operation.Operation, 0, len(opts.Config.Files))
			for _, block := range opts.Config.Files {
				if block.Verify == "" {
					continue
				}
				op, err := operation.NewVerifyOperation(operation.Options{
					Config:     opts.Config,
					Block:      block,
					StatusMgr:  opts.StatusMgr,
					UserLogger: opts.UserLogger,
				})
				if err != nil {
					return errors.Errorf("creating verify operation: %w", err)
				}
				ops = append(ops, op)
			}

			if err := opts.Runner.Run(ctx, ops...); err != nil {
				return errors.Errorf("verifying files: %w", err)
			}

			summary := opts.StatusMgr.Summarize(ctx)
			opts.UserLogger.LogSummary(summary)
			if summary.Errors > 0 {
				return errors.Errorf("%d files still contain migrated patterns", summary.Errors)
			}
			return nil
		},
	}

	return cmd
}
