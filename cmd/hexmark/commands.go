// Package hexmark builds the hexmark command tree.
package hexmark

import (
	"fmt"
	"io"
	"os"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/hexmark/internal/version"
	"github.com/arthur-debert/hexmark/pkg/cobrax/topics"
	"github.com/arthur-debert/hexmark/pkg/color"
	"github.com/arthur-debert/hexmark/pkg/config"
	"github.com/arthur-debert/hexmark/pkg/errors"
	"github.com/arthur-debert/hexmark/pkg/fetch"
	"github.com/arthur-debert/hexmark/pkg/input"
	"github.com/arthur-debert/hexmark/pkg/logging"
	"github.com/arthur-debert/hexmark/pkg/output"
	"github.com/arthur-debert/hexmark/pkg/output/styles"
)

// app carries the state shared by every command of one invocation
type app struct {
	verbosity  int
	configPath string
	noColor    bool

	cfg *config.Config
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "hexmark",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(a.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return a.loadConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, MsgFlagNoColor)

	rootCmd.AddGroup(&cobra.Group{ID: "markup", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newSegmentsCmd(a))
	rootCmd.AddCommand(newStripCmd(a))
	rootCmd.AddCommand(newSplitCapsCmd(a))
	rootCmd.AddCommand(newDurationCmd(a))
	rootCmd.AddCommand(newWatchCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	_, err := topics.Initialize(rootCmd, helpTopics(), topics.Options{
		Renderer: topics.NewGlamourRenderer(),
	})
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}
	for _, c := range rootCmd.Commands() {
		if c.Name() == "help" {
			c.GroupID = "misc"
		}
	}

	return rootCmd
}

func (a *app) loadConfig() error {
	cfg, err := config.Load(config.LoadOptions{Path: a.configPath})
	if err != nil {
		return err
	}
	if a.noColor {
		cfg.Output.Color = config.ColorNever
	}
	switch cfg.Output.Color {
	case config.ColorNever:
		pterm.DisableColor()
	case config.ColorAlways:
		pterm.EnableColor()
	}
	a.cfg = cfg
	return nil
}

// outputFlags are shared by the commands that render results
type outputFlags struct {
	format string
}

func (f *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.format, "format", "f", "", MsgFlagFormat)
	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return config.Formats, cobra.ShellCompDirectiveNoFileComp
	})
}

func (a *app) renderer(w io.Writer, f outputFlags) (*output.Renderer, error) {
	format := f.format
	if format == "" {
		format = a.cfg.Output.Format
	}
	return output.NewRenderer(w, output.Options{
		Format:     format,
		ColorMode:  a.cfg.Output.Color,
		Background: a.cfg.Colors.Background,
	})
}

// inputFlags select where a command reads its text from
type inputFlags struct {
	files    []string
	globs    []string
	url      string
	insecure bool
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&f.files, "file", nil, MsgFlagFile)
	cmd.Flags().StringArrayVar(&f.globs, "glob", nil, MsgFlagGlob)
	cmd.Flags().StringVar(&f.url, "url", "", MsgFlagURL)
	cmd.Flags().BoolVar(&f.insecure, "insecure", false, MsgFlagInsecure)
	cmd.MarkFlagsMutuallyExclusive("file", "glob", "url")
}

func (a *app) readInput(cmd *cobra.Command, f inputFlags, args []string) (string, error) {
	src := input.Source{
		URL:   f.url,
		Globs: f.globs,
		Files: f.files,
		Args:  args,
		Stdin: stdinFor(cmd),
	}
	if f.url != "" {
		if f.insecure {
			fmt.Fprintln(cmd.ErrOrStderr(), styles.GetStyle("Warning").Render(MsgInsecureWarning))
		}
		src.Fetcher = fetch.NewClient(fetch.Options{
			Timeout:  a.cfg.HTTP.Timeout,
			RetryMax: a.cfg.HTTP.Retries,
			Insecure: a.cfg.HTTP.Insecure || f.insecure,
		})
	}
	return input.Resolve(cmd.Context(), src)
}

// stdinFor prefers a reader injected with cmd.SetIn over the process stdin
func stdinFor(cmd *cobra.Command) io.Reader {
	if in := cmd.InOrStdin(); in != os.Stdin {
		return in
	}
	return input.Stdin()
}

// defaultColor resolves --default against colors.default
func (a *app) defaultColor(flag string) (color.Color, error) {
	if flag == "" {
		return a.cfg.Colors.Default, nil
	}
	return color.Parse(flag)
}
