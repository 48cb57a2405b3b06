package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	jcerror "github.com/msto63/jackc/foundation/core/error"
	jclog "github.com/msto63/jackc/foundation/core/log"
	"github.com/msto63/jackc/foundation/jack"
	"github.com/msto63/jackc/pkg/core/config"
	"github.com/msto63/jackc/pkg/core/version"
)

var (
	cfgFile    string
	verbose    bool
	outputPath string
)

// session holds what every command needs after flags are parsed
var session struct {
	cfg    *config.Config
	logger *jclog.Logger
	engine *jack.Engine
}

var rootCmd = &cobra.Command{
	Use:   "jackc <File.jack>",
	Short: "Jack syntax analyzer",
	Long: `jackc reads one Jack source file, checks it against the Jack grammar
and writes its parse tree as an XML document next to the source.

  jackc Main.jack            writes Main.xml
  jackc tokens Main.jack     writes MainT.xml (flat token list)
  jackc view Main.jack       interactive parse tree viewer

Lexical and syntax errors are reported with line and column; no output
file is written for a source that fails to analyze.`,
	Args:              cobra.ExactArgs(1),
	PersistentPreRunE: setup,
	RunE:              runAnalyze,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

// Execute runs the root command and prints any error
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (.toml, .yaml or .yml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (default: source name with .xml)")
}

// setup loads the configuration and builds the logger and engine
func setup(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if cfgFile != "" {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	level := cfg.LogLevel()
	if verbose {
		level = jclog.LevelDebug
	}
	logger := jclog.NewWithConfig(jclog.Config{
		Level:  level,
		Format: cfg.LogFormat(),
		Output: cmd.ErrOrStderr(),
		Name:   "jackc",
	})
	if verbose {
		logger = logger.WithCaller(0)
		if cfgFile != "" && cfg.LogLevel() != level {
			logger.WithField("configured", cfg.General.LogLevel).Warn("--verbose overrides the configured log level")
		}
	}
	jclog.SetDefault(logger)

	engine, err := jack.NewEngine(jack.Options{
		Logger:         logger,
		MaxSourceBytes: cfg.Analyzer.MaxSourceBytes,
		MaxDepth:       cfg.Analyzer.MaxNestingDepth,
		Indent:         cfg.Output.Indent,
	})
	if err != nil {
		return err
	}

	session.cfg = cfg
	session.logger = logger
	session.engine = engine
	logger.WithField("config", cfgFile).Debug(version.String())
	return nil
}

func printError(err error) {
	fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error:")+" "+formatError(err, verbose))
}

// formatError renders err for the terminal. Bad source text is reported as
// file: message. Defects in the calling code name the failing operation and,
// with trace set, the captured stack.
func formatError(err error, trace bool) string {
	jcErr, ok := jcerror.As(err)
	if !ok {
		return err.Error() + "\nRun 'jackc --help' for usage."
	}

	if jcerror.GetCode(err).IsInputError() {
		if file, found := jcErr.Detail("file"); found {
			return fmt.Sprintf("%v: %s", file, jcErr.Message())
		}
		return err.Error()
	}

	if !jcerror.GetSeverity(err).ShouldAlert() {
		return err.Error()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "internal error in %s: %s (%s)", jcErr.Operation(), err.Error(), jcErr.Code())
	if trace {
		for _, frame := range jcErr.StackTrace() {
			fmt.Fprintf(&b, "\n    at %s (%s:%d)", frame.Function, frame.File, frame.Line)
		}
	}
	return b.String()
}
