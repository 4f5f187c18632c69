package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/quantmind-br/autotag-go/internal/app"
	"github.com/quantmind-br/autotag-go/internal/config"
	"github.com/quantmind-br/autotag-go/internal/gitrepo"
	"github.com/quantmind-br/autotag-go/internal/utils"
	"github.com/quantmind-br/autotag-go/pkg/version"
)

var (
	cfgFile string
	verbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "autotag [paths...]",
	Short: "Create release tags for opted-in package manifests",
	Long: `Autotag scans directory trees for Cargo.toml, package.json, and
pyproject.toml manifests. Every manifest that enables its ecosystem's
auto-tag flag gets an annotated git tag release-{name}-{version} at the
chosen commit, unless that tag already exists.`,
	Version: version.Short(),
	Args:    cobra.ArbitraryArgs,
	RunE:    run,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.autotag/config.yaml)")
	rootCmd.PersistentFlags().Bool("dry-run", false, "Print the tags to be created but do not create them")
	rootCmd.PersistentFlags().String("commit", "", "Commit SHA to tag (default is the current HEAD)")
	rootCmd.PersistentFlags().String("git-user-name", "", "Tag author name")
	rootCmd.PersistentFlags().String("git-user-email", "", "Tag author email")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	// Bind flags to viper
	_ = viper.BindPFlag("tag.dry_run", rootCmd.PersistentFlags().Lookup("dry-run"))
	_ = viper.BindPFlag("tag.commit", rootCmd.PersistentFlags().Lookup("commit"))
	_ = viper.BindPFlag("git.user_name", rootCmd.PersistentFlags().Lookup("git-user-name"))
	_ = viper.BindPFlag("git.user_email", rootCmd.PersistentFlags().Lookup("git-user-email"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

func run(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logLevel := cfg.Logging.Level
	if verbose {
		logLevel = "debug"
	}
	log := utils.NewLogger(utils.LoggerOptions{
		Level:   logLevel,
		Format:  cfg.Logging.Format,
		Verbose: verbose,
	})

	// The repository at the working directory is the only fatal failure:
	// without it, no manifest can be tagged.
	store, err := gitrepo.Open(".")
	if err != nil {
		return err
	}

	orchestrator, err := app.NewOrchestrator(app.OrchestratorOptions{
		RunConfig: cfg.RunConfig(args),
		Store:     store,
		Logger:    log,
	})
	if err != nil {
		return fmt.Errorf("failed to create orchestrator: %w", err)
	}

	// Per-manifest failures are reported in the summary but do not change
	// the exit code.
	orchestrator.Run()
	return nil
}
