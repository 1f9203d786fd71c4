// Package cli wires the vaultpull commands: pull, status, config
// inspection, and the ambient help machinery. Commands resolve roots,
// load configuration, call the sync engine, and hand results to a
// renderer; none of them touch files directly.
package cli

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arthur-debert/vaultpull/internal/version"
	"github.com/arthur-debert/vaultpull/pkg/cobrax/topics"
	"github.com/arthur-debert/vaultpull/pkg/config"
	"github.com/arthur-debert/vaultpull/pkg/display"
	"github.com/arthur-debert/vaultpull/pkg/errors"
	"github.com/arthur-debert/vaultpull/pkg/logging"
	"github.com/arthur-debert/vaultpull/pkg/paths"
	"github.com/arthur-debert/vaultpull/pkg/sync"
	"github.com/arthur-debert/vaultpull/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed help
var helpFS embed.FS

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	var (
		verbosity   int
		dryRun      bool
		force       bool
		vaultRoot   string
		projectRoot string
		format      string
	)

	rootCmd := &cobra.Command{
		Use:     "vaultpull",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			// Show help but return an error to indicate incorrect usage
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.PersistentFlags().BoolVar(&force, "force", false, MsgFlagForce)
	rootCmd.PersistentFlags().StringVar(&vaultRoot, "vault", "", MsgFlagVault)
	rootCmd.PersistentFlags().StringVar(&projectRoot, "project", "", MsgFlagProject)
	rootCmd.PersistentFlags().StringVar(&format, "format", "auto", MsgFlagFormat)

	// Disable automatic help command (we'll use our custom one from topics)
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	// Set custom help template
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	// Add all commands
	rootCmd.AddCommand(newPullCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newCompletionCmd())

	// Initialize topic-based help system from the embedded topic tree
	if topicTree, err := fs.Sub(helpFS, "help"); err == nil {
		opts := topics.Options{
			Extensions: []string{".txt", ".md"},
			// Always use Glamour renderer for markdown files
			Renderer: topics.NewGlamourRenderer(),
		}
		_ = topics.InitializeWithOptions(rootCmd, topicTree, opts)
	}

	return rootCmd
}

// resolveRun loads the configuration and resolves both roots for a
// sync-facing command. The config file is found relative to a
// provisional project root; the file's own [vault] and [project]
// sections then join the flag > environment > config priority.
func resolveRun(cmd *cobra.Command) (*config.Config, paths.Paths, error) {
	flagVault, _ := cmd.Root().PersistentFlags().GetString("vault")
	flagProject, _ := cmd.Root().PersistentFlags().GetString("project")

	provisional, _, err := paths.ProvisionalProjectRoot(flagProject)
	if err != nil {
		return nil, nil, err
	}

	cfg, err := config.Load(provisional)
	if err != nil {
		return nil, nil, err
	}

	vaultRoot, projectRoot := paths.ResolveRoots(flagVault, flagProject, cfg.Vault.Root, cfg.Project.Root)

	p, err := paths.New(vaultRoot, projectRoot)
	if err != nil {
		return nil, nil, err
	}

	if p.UsedFallback() {
		fmt.Fprintf(os.Stderr, MsgFallbackWarning, p.ProjectRoot())
	}

	return cfg, p, nil
}

// newRenderer builds the output renderer from the --format flag.
func newRenderer(cmd *cobra.Command) (ui.Renderer, error) {
	formatStr, _ := cmd.Root().PersistentFlags().GetString("format")
	format, err := ui.ParseFormat(formatStr)
	if err != nil {
		return nil, err
	}
	return ui.NewRenderer(format, cmd.OutOrStdout())
}

// runPull executes one sync pass and renders the report. status is a
// pull with writes disabled, so both commands share this path. Per-entry
// failures are part of the report, not the returned error: the command
// exits zero unless the run itself could not happen.
func runPull(cmd *cobra.Command, command string, dryRun, force bool) error {
	cfg, p, err := resolveRun(cmd)
	if err != nil {
		return err
	}

	log.Info().
		Str("vault", p.VaultRoot()).
		Str("project", p.ProjectRoot()).
		Bool("dry_run", dryRun).
		Bool("force", force).
		Msg("Pulling templates from vault")

	result, err := sync.Pull(sync.Options{
		VaultRoot:   p.VaultRoot(),
		ProjectRoot: p.ProjectRoot(),
		Discovery:   cfg.Discovery,
		Rules:       cfg.Entries,
		DryRun:      dryRun,
		Force:       force,
	})
	if err != nil {
		return err
	}

	renderer, err := newRenderer(cmd)
	if err != nil {
		return err
	}

	report := display.NewReport(command, result, p.VaultRoot(), p.ProjectRoot(), cfg.Service.Name)
	return renderer.RenderResult(report)
}

func newPullCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "pull",
		Short:   MsgPullShort,
		Long:    MsgPullLong,
		Example: MsgPullExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dryRun, _ := cmd.Root().PersistentFlags().GetBool("dry-run")
			force, _ := cmd.Root().PersistentFlags().GetBool("force")
			return runPull(cmd, "pull", dryRun, force)
		},
	}
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		Short:   MsgStatusShort,
		Long:    MsgStatusLong,
		Example: MsgStatusExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPull(cmd, "status", true, false)
		},
	}
}

func newGenConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "gen-config",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		Example: MsgGenConfigExample,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			write, _ := cmd.Flags().GetBool("write")

			result := &display.GenConfigResult{
				ConfigContent: config.GenerateConfigContent(),
			}

			if write {
				flagProject, _ := cmd.Root().PersistentFlags().GetString("project")
				projectRoot, _, err := paths.ProvisionalProjectRoot(flagProject)
				if err != nil {
					return err
				}

				path := filepath.Join(projectRoot, config.DefaultFileName)
				if _, err := os.Stat(path); err == nil {
					return errors.Newf(errors.ErrInvalidInput, "%s already exists, not overwriting", path)
				}
				if err := os.WriteFile(path, []byte(result.ConfigContent), 0644); err != nil {
					return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path)
				}

				result.Path = path
				result.Written = true
				log.Info().Str("path", path).Msg("Wrote starter config")
			}

			renderer, err := newRenderer(cmd)
			if err != nil {
				return err
			}
			return renderer.RenderResult(result)
		},
	}

	cmd.Flags().BoolP("write", "w", false, MsgFlagWrite)

	return cmd
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		Example: MsgConfigExample,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flagProject, _ := cmd.Root().PersistentFlags().GetString("project")
			provisional, _, err := paths.ProvisionalProjectRoot(flagProject)
			if err != nil {
				return err
			}

			cfg, err := config.Load(provisional)
			if err != nil {
				return err
			}

			content, err := config.Dump(cfg)
			if err != nil {
				return err
			}

			renderer, err := newRenderer(cmd)
			if err != nil {
				return err
			}
			return renderer.RenderResult(&display.ConfigDump{Content: content})
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Long:    MsgVersionLong,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "vaultpull version %s\n", version.Version)
			if version.Commit != "" {
				fmt.Fprintf(out, "Commit: %s\n", version.Commit)
			}
			if version.Date != "" {
				fmt.Fprintf(out, "Built:  %s\n", version.Date)
			}
		},
	}
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Find the help command and execute it with "topics" argument
			if helpCmd, _, err := cmd.Root().Find([]string{"help"}); err == nil {
				if helpCmd.RunE != nil {
					return helpCmd.RunE(helpCmd, []string{"topics"})
				} else if helpCmd.Run != nil {
					helpCmd.Run(helpCmd, []string{"topics"})
					return nil
				}
			}
			return fmt.Errorf("help command not found")
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}
}
