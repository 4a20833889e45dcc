package agentkit

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/agentkit/internal/version"
	"github.com/arthur-debert/agentkit/pkg/config"
	"github.com/arthur-debert/agentkit/pkg/core"
	"github.com/arthur-debert/agentkit/pkg/errors"
	"github.com/arthur-debert/agentkit/pkg/filesystem"
	"github.com/arthur-debert/agentkit/pkg/logging"
	"github.com/arthur-debert/agentkit/pkg/manifest"
	"github.com/arthur-debert/agentkit/pkg/paths"
	"github.com/arthur-debert/agentkit/pkg/style"
	"github.com/arthur-debert/agentkit/pkg/types"
	"github.com/arthur-debert/agentkit/pkg/ui/confirmations"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// settings holds the flag values shared by every command
type settings struct {
	verbosity    int
	autoOverride bool
	uninstall    bool
	sourceRoot   string
	destRoot     string
	configFile   string

	cfg *config.Config
}

// env is what a command needs to act on the source and destination roots
type env struct {
	fs         types.FS
	manifest   *manifest.Manifest
	sourceRoot string
	destRoot   string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	s := &settings{}

	rootCmd := &cobra.Command{
		Use:     "agentkit",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !needsConfig(cmd) {
				logging.SetupLogger(s.verbosity, false)
				return nil
			}

			cfg, err := config.Load(config.LoadOptions{
				ConfigFile: s.configFile,
				Overrides: map[string]interface{}{
					"source_root": s.sourceRoot,
					"dest_root":   s.destRoot,
				},
			})
			if err != nil {
				return err
			}
			s.cfg = cfg

			logging.SetupLogger(s.verbosity, cfg.LogFile)
			style.ConfigureOutput(os.Stdout)
			log.Debug().Str("command", cmd.Name()).Msg(MsgCommandStarted)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(cmd, s)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&s.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&s.sourceRoot, "source", "", MsgFlagSource)
	rootCmd.PersistentFlags().StringVar(&s.destRoot, "dest", "", MsgFlagDest)
	rootCmd.PersistentFlags().StringVar(&s.configFile, "config", "", MsgFlagConfig)
	rootCmd.Flags().BoolVarP(&s.autoOverride, "auto-override", "y", false, MsgFlagAutoOverride)
	rootCmd.Flags().BoolVar(&s.uninstall, "uninstall", false, MsgFlagUninstall)

	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newListCmd(s))
	rootCmd.AddCommand(newVerifyCmd(s))
	rootCmd.AddCommand(newShowCmd(s))
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// annotationNoConfig marks commands that run without loading the user config
const annotationNoConfig = "agentkit/no-config"

// needsConfig reports whether cmd acts on the roots. Completion and version
// output must keep working when the config file is broken.
func needsConfig(cmd *cobra.Command) bool {
	if cmd.Name() == cobra.ShellCompRequestCmd || cmd.Name() == cobra.ShellCompNoDescRequestCmd {
		return false
	}
	_, skip := cmd.Annotations[annotationNoConfig]
	return !skip
}

// resolveEnv turns the loaded configuration into absolute roots and the
// embedded manifest, warning when the source root is only a guess
func resolveEnv(cmd *cobra.Command, s *settings) (*env, error) {
	sourceRoot, fallback, err := paths.FindSourceRoot(s.cfg.SourceRoot)
	if err != nil {
		return nil, err
	}
	if fallback {
		fmt.Fprintln(cmd.ErrOrStderr(), style.Warning(fmt.Sprintf(MsgFallbackWarning, sourceRoot)))
	}

	destRoot, err := paths.ResolveDestRoot(s.cfg.DestRoot)
	if err != nil {
		return nil, err
	}

	m, err := manifest.Default()
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("source_root", sourceRoot).
		Bool("fallback", fallback).
		Str("dest_root", destRoot).
		Msg(MsgDebugRoots)

	return &env{
		fs:         filesystem.NewOS(),
		manifest:   m,
		sourceRoot: sourceRoot,
		destRoot:   destRoot,
	}, nil
}

// confirmerFor builds the confirmer for cmd's input. A stdin that is not a
// terminal cannot answer prompts, so it implies auto-confirm.
func confirmerFor(cmd *cobra.Command, autoOverride bool) (confirmations.Confirmer, bool) {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && !confirmations.IsInteractive(f) {
		autoOverride = true
	}
	return confirmations.NewConsoleDialog(in, cmd.OutOrStdout()), autoOverride
}

func runSync(cmd *cobra.Command, s *settings) error {
	e, err := resolveEnv(cmd, s)
	if err != nil {
		return err
	}

	confirmer, auto := confirmerFor(cmd, s.autoOverride)
	runner := core.NewRunner(core.Options{
		FS:         e.fs,
		Manifest:   e.manifest,
		SourceRoot: e.sourceRoot,
		DestRoot:   e.destRoot,
		Confirmer:  confirmer,
		Out:        cmd.OutOrStdout(),
	})

	mode := types.ModeInstall
	if s.uninstall {
		mode = types.ModeUninstall
	}

	result, err := runner.Run(types.RunOptions{AutoConfirm: auto, Mode: mode})
	if result != nil {
		log.Info().
			Str("mode", string(result.Mode)).
			Str("status", string(result.Status)).
			Int("succeeded", result.Succeeded).
			Int("failed", len(result.Failures)).
			Msg(MsgRunFinished)
	}
	return err
}

func newListCmd(s *settings) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: MsgListShort,
		Long:  MsgListLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != MsgFormatText && format != MsgFormatYAML {
				return errors.Newf(errors.ErrInvalidInput, MsgErrUnknownFormat, format)
			}

			e, err := resolveEnv(cmd, s)
			if err != nil {
				return err
			}
			runner := core.NewRunner(core.Options{
				FS:         e.fs,
				Manifest:   e.manifest,
				SourceRoot: e.sourceRoot,
				DestRoot:   e.destRoot,
				Confirmer:  confirmations.AutoConfirm{},
				Out:        cmd.OutOrStdout(),
			})

			statuses, err := runner.Status()
			if err != nil {
				return err
			}

			if format == MsgFormatYAML {
				enc := yaml.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent(2)
				if err := enc.Encode(statuses); err != nil {
					return errors.Wrap(err, errors.ErrInternal, "failed to encode status")
				}
				return enc.Close()
			}

			printStatus(cmd.OutOrStdout(), statuses)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", MsgFormatText, MsgFlagFormat)
	return cmd
}

func printStatus(out io.Writer, statuses []types.GroupStatus) {
	for _, gs := range statuses {
		header := fmt.Sprintf(MsgGroupNoSource, gs.Name)
		if gs.HasSource {
			header = fmt.Sprintf(MsgGroupHeader, gs.Name, gs.SourceFiles)
		}
		fmt.Fprintln(out, style.Title(header))

		state := style.Muted(MsgGroupNotPresent)
		if gs.Installed {
			state = style.Success(MsgGroupInstalled)
		}
		fmt.Fprintln(out, style.Indent(state+", "+fmt.Sprintf(MsgOwnedPresent, len(gs.Present), len(gs.Owned)), 1))

		present := make(map[string]bool, len(gs.Present))
		for _, p := range gs.Present {
			present[p] = true
		}
		for _, owned := range gs.Owned {
			mark := style.Muted("-")
			if present[owned] {
				mark = style.Success("✓")
			}
			fmt.Fprintln(out, style.Indent(mark+" "+style.Path(path.Join(gs.Name, owned)), 2))
		}
	}
}

func newVerifyCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: MsgVerifyShort,
		Long:  MsgVerifyLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := resolveEnv(cmd, s)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			report := e.manifest.Verify(e.fs, e.sourceRoot)
			if report.OK() {
				owned := len(e.manifest.Entries(e.sourceRoot, e.destRoot))
				fmt.Fprintln(out, style.Success(fmt.Sprintf(MsgVerifyOK, e.sourceRoot, owned)))
				return nil
			}

			if len(report.Missing) > 0 {
				fmt.Fprintln(out, style.Warning(fmt.Sprintf(MsgVerifyMissing, e.sourceRoot)))
				for _, entry := range report.Missing {
					fmt.Fprintln(out, style.Indent("- "+style.Path(entry.String()), 1))
				}
			}
			if len(report.Unowned) > 0 {
				fmt.Fprintln(out, style.Warning(fmt.Sprintf(MsgVerifyUnowned, e.sourceRoot)))
				for _, name := range report.Unowned {
					fmt.Fprintln(out, style.Indent("- "+style.Path(name), 1))
				}
			}
			return errors.Newf(errors.ErrManifestDrift, MsgErrManifestDrift, len(report.Missing), len(report.Unowned)).
				WithDetail("path", e.sourceRoot)
		},
	}
}

func newShowCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:     "show <group>/<path>",
		Short:   MsgShowShort,
		Long:    MsgShowLong,
		Example: MsgShowExample,
		Args:    cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			m, err := manifest.Default()
			if err != nil {
				return nil, cobra.ShellCompDirectiveError
			}
			var names []string
			for _, entry := range m.Entries("", "") {
				names = append(names, entry.String())
			}
			return names, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := resolveEnv(cmd, s)
			if err != nil {
				return err
			}

			target, err := showTarget(e, args[0])
			if err != nil {
				return err
			}

			info, err := e.fs.Stat(target)
			if err != nil {
				return errors.Wrap(err, errors.ErrFileNotFound, "asset not found").
					WithDetail("path", target)
			}

			out := cmd.OutOrStdout()
			if info.IsDir() {
				files, err := filesystem.ListFiles(e.fs, target)
				if err != nil {
					return errors.Wrap(err, errors.ErrFileRead, "cannot list asset").
						WithDetail("path", target)
				}
				fmt.Fprintln(out, style.Title(fmt.Sprintf(MsgShowDirHeader, args[0])))
				for _, f := range files {
					fmt.Fprintln(out, style.Indent("- "+style.Path(f), 1))
				}
				return nil
			}

			data, err := e.fs.ReadFile(target)
			if err != nil {
				return errors.Wrap(err, errors.ErrFileRead, "cannot read asset").
					WithDetail("path", target)
			}
			fmt.Fprint(out, renderAsset(target, data))
			return nil
		},
	}
}

// showTarget maps a "<group>/<path>" argument to a path in the source tree
func showTarget(e *env, arg string) (string, error) {
	clean := path.Clean(filepath.ToSlash(arg))
	if clean == "." || path.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, "../") {
		return "", errors.New(errors.ErrInvalidInput, MsgErrShowPath).WithDetail("path", arg)
	}

	group := strings.SplitN(clean, "/", 2)[0]
	for _, g := range e.manifest.AssetGroups(e.sourceRoot, e.destRoot) {
		if g.Name == group {
			return filepath.Join(e.sourceRoot, filepath.FromSlash(clean)), nil
		}
	}
	return "", errors.Newf(errors.ErrInvalidInput, MsgErrNotAGroup, group).WithDetail("path", arg)
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Annotations:           map[string]string{annotationNoConfig: ""},
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       MsgVersionShort,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationNoConfig: ""},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}
