package commands

import (
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/logrc/cmd/logrc/opts"
	"github.com/walteh/logrc/pkg/operation"
)

// NewCheckCmd creates a new check command
func NewCheckCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report which files would change, without writing anything",
		Long: `Check runs the full rewrite pipeline without touching any file. It
reports which targets would change, warns about configured rules that
never match, and flags rules that match their own output (re-running
such a rule set would keep rewriting already-migrated text).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			ops := make([]operation.Operation, 0, len(opts.Config.Files))
			for _, block := range opts.Config.Files {
				op, err := operation.NewCheckOperation(operation.Options{
					Config:     opts.Config,
					Block:      block,
					StatusMgr:  opts.StatusMgr,
					UserLogger: opts.UserLogger,
				})
				if err != nil {
					return errors.Errorf("creating check operation: %w", err)
				}
				ops = append(ops, op)
			}

			if err := opts.Runner.Run(ctx, ops...); err != nil {
				return errors.Errorf("checking files: %w", err)
			}

			opts.UserLogger.LogSummary(opts.StatusMgr.Summarize(ctx))
			return nil
		},
	}

	return cmd
}
