package cmd

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/hance08/txengine/internal/app"
	"github.com/hance08/txengine/internal/config"
	"github.com/hance08/txengine/internal/constants"
	"github.com/hance08/txengine/internal/errhandler"
	"github.com/hance08/txengine/internal/validation"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// configDir is where config.yaml is looked up.
var configDir = config.DefaultDir

func Execute(migrations fs.FS) {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, migrations))
}

func run(args []string, stdout, stderr io.Writer, migrations fs.FS) int {
	rootCmd := NewRootCmd(migrations)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	return errhandler.HandleError(err, stderr, usage())
}

func usage() string {
	return fmt.Sprintf("Usage: %s <input_csv_file>", constants.AppName)
}

type rootRunner struct {
	migrations fs.FS
	stdout     io.Writer
	stderr     io.Writer
}

func NewRootCmd(migrations fs.FS) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   constants.AppName + " <input_csv_file>",
		Short: "Apply a CSV of client transactions and print the resulting accounts",
		Long: `Apply deposits, withdrawals, disputes, resolves and chargebacks from a CSV file,
in order, and print every client account as CSV on stdout.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected 1 argument, got %d: %w", len(args), errhandler.ErrUsage)
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &rootRunner{
				migrations: migrations,
				stdout:     cmd.OutOrStdout(),
				stderr:     cmd.ErrOrStderr(),
			}
			return runner.Run(cmd.Context(), args[0])
		},
	}

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%v: %w", err, errhandler.ErrUsage)
	})

	return rootCmd
}

func (r *rootRunner) Run(ctx context.Context, inputPath string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	application, cleanup, err := app.NewApp(cfg, r.migrations, r.stderr)
	if err != nil {
		return err
	}
	defer cleanup()

	if ctx == nil {
		ctx = context.Background()
	}

	_, err = application.Run(ctx, inputPath, r.stdout)
	return err
}

func loadConfig() (*config.Config, error) {
	dir, err := configDir()
	if err != nil {
		return nil, fmt.Errorf("error getting config dir: %w", err)
	}

	cfg, err := config.Load(dir)
	if err != nil {
		return nil, err
	}

	if err := validation.ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
