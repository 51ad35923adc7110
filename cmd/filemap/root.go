package main

import (
	"fmt"

	"github.com/arthur-debert/filemap/internal/version"
	"github.com/arthur-debert/filemap/pkg/config"
	"github.com/arthur-debert/filemap/pkg/core"
	"github.com/arthur-debert/filemap/pkg/filesystem"
	"github.com/arthur-debert/filemap/pkg/logging"
	"github.com/arthur-debert/filemap/pkg/output"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	verbosity int
	dryRun    bool
	rulesFile string
	sourceDir string
	destDir   string

	rootCmd = &cobra.Command{
		Use:   "filemap [rule]",
		Short: "Organize files into folders based on name matches",
		Long: `filemap copies or moves the files of a flat source directory into a
nested destination tree, driven by small regex rules:

  c /<regex>/<relative-destination>   copy matching files
  m /<regex>/<relative-destination>   move matching files

Rules come from a rules file (-r) or a single inline rule argument.
Nothing is written until every rule has parsed and every action has
been planned.`,
		Args: cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRoot,
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Report intended actions without touching the filesystem")
	rootCmd.Flags().StringVarP(&rulesFile, "rules", "r", "", "Rules file, one rule per line (mutually exclusive with an inline rule)")
	rootCmd.Flags().StringVarP(&sourceDir, "source-dir", "s", "", "Directory to scan for files to organize (default \".\")")
	rootCmd.Flags().StringVarP(&destDir, "dest-dir", "d", "", "Root directory rule destinations are resolved under (default \".\")")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(completionCmd)
}

func runRoot(cmd *cobra.Command, args []string) error {
	logger := logging.GetLogger("cmd.root")

	fs := filesystem.NewOS()
	cfg, err := config.Load(fs)
	if err != nil {
		return err
	}

	opts := core.RunOptions{
		RulesFile: rulesFile,
		SourceDir: sourceDir,
		DestDir:   destDir,
		DryRun:    dryRun,
		FS:        fs,
	}
	if len(args) == 1 {
		opts.InlineRule = args[0]
	}

	// Flags win; the config file fills the gaps.
	if opts.SourceDir == "" {
		opts.SourceDir = cfg.SourceDir
	}
	if opts.DestDir == "" {
		opts.DestDir = cfg.DestDir
	}
	if opts.RulesFile == "" && opts.InlineRule == "" {
		opts.RulesFile = cfg.RulesFile
	}

	logger.Info().
		Str("rulesFile", opts.RulesFile).
		Str("sourceDir", opts.SourceDir).
		Str("destDir", opts.DestDir).
		Bool("dryRun", opts.DryRun).
		Msg("Starting run")

	result, runErr := core.Run(opts)

	if result != nil {
		reporter := output.NewReporter(cmd.OutOrStdout())
		reporter.Report(result.Results)
		reporter.Summary(result.Results, result.DryRun)
	}

	return runErr
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print version information for filemap`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("filemap version %s\n", version.Version)
		fmt.Printf("  commit: %s\n", version.Commit)
		fmt.Printf("  built:  %s\n", version.Date)
	},
}

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `To load completions:

Bash:
  $ source <(filemap completion bash)

Zsh:
  $ filemap completion zsh > "${fpath[1]}/_filemap"

Fish:
  $ filemap completion fish | source

PowerShell:
  PS> filemap completion powershell | Out-String | Invoke-Expression
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	Run: func(cmd *cobra.Command, args []string) {
		switch args[0] {
		case "bash":
			if err := cmd.Root().GenBashCompletion(cmd.OutOrStdout()); err != nil {
				log.Error().Err(err).Msg("Failed to generate bash completion")
			}
		case "zsh":
			if err := cmd.Root().GenZshCompletion(cmd.OutOrStdout()); err != nil {
				log.Error().Err(err).Msg("Failed to generate zsh completion")
			}
		case "fish":
			if err := cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true); err != nil {
				log.Error().Err(err).Msg("Failed to generate fish completion")
			}
		case "powershell":
			if err := cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout()); err != nil {
				log.Error().Err(err).Msg("Failed to generate powershell completion")
			}
		}
	},
}
