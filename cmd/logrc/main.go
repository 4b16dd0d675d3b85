package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/walteh/logrc/cmd/logrc/commands"
	"github.com/walteh/logrc/cmd/logrc/opts"
)

func main() {
	rootOpts := &opts.RootOpts{}

	// Create root command
	rootCmd := &cobra.Command{
		Use:   "logrc",
		Short: "A batch rewriter that migrates console-style calls to structured logging",
		Long: `logrc rewrites diagnostic output statements in source files into calls
against a structured logging facility, and repairs indentation artifacts
left behind by earlier rewrites. Rule tables live in a .logrc.hcl (or
.logrc.yaml) configuration file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Flags are parsed by now; wire up logging and load the config
			logger := setupLogging()
			ctx := logger.WithContext(cmd.Context())
			cmd.SetContext(ctx)

			o, err := newRootOpts(ctx)
			if err != nil {
				return err
			}
			*rootOpts = *o
			return nil
		},
	}

	// Add shared flags
	addRootFlags(rootCmd)

	// Add commands
	rootCmd.AddCommand(
		commands.NewMigrateCmd(rootOpts),
		commands.NewCheckCmd(rootOpts),
		commands.NewVerifyCmd(rootOpts),
	)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
