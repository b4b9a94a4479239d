package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/stash/pkg/config"
	"github.com/arthur-debert/stash/pkg/filesystem"
	"github.com/arthur-debert/stash/pkg/logging"
	"github.com/arthur-debert/stash/pkg/types"
)

const appName = "stash"

var (
	version = "dev"

	verbosity int
	cfgFile   string

	rootCmd = &cobra.Command{
		Use:   "stash",
		Short: "Save, load, and delete small files in the app data directory",
		Long: `stash keeps small pieces of text as files in the application's
private data directory. Saved values can be read back or deleted by
the filename they were saved under.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command. This is called by main.main().
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/stash/config.toml)")

	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(versionCmd)
}

// newFS builds the filesystem capability. Precedence for the base
// directory: $STASH_DATA_DIR, then the config file's data_dir, then the
// XDG default for the app.
func newFS() (types.FS, error) {
	if os.Getenv(filesystem.EnvDataDir) != "" {
		return filesystem.NewOS(appName), nil
	}

	path := cfgFile
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if cfg.DataDir != "" {
		return filesystem.NewOSAt(cfg.DataDir), nil
	}

	return filesystem.NewOS(appName), nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("stash version %s\n", version)
	},
}
