package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/msto63/jackc/foundation/jack"
	"github.com/msto63/jackc/foundation/utils/filex"
)

// outputPerm is the mode of written documents
const outputPerm = 0644

func runAnalyze(cmd *cobra.Command, args []string) error {
	result, target, err := analyzeFile(args[0], outputPath)
	if err != nil {
		return err
	}
	printDone(cmd.OutOrStdout(), result.Name, target,
		fmt.Sprintf("%d elements, %d terminals", result.Stats.Elements, result.Stats.Terminals),
		result.Duration.String())
	return nil
}

// loadSource reads and checks a source file against the configured
// extension and size limit
func loadSource(path string) (string, error) {
	src, err := filex.ReadChecked(path,
		session.cfg.Analyzer.SourceExtension,
		int64(session.cfg.Analyzer.MaxSourceBytes))
	if err != nil {
		return "", err
	}
	return string(src), nil
}

// analyzeFile parses path and writes the tree document to target, or next to
// the source when target is empty. Nothing is written on failure.
func analyzeFile(path, target string) (*jack.Result, string, error) {
	src, err := loadSource(path)
	if err != nil {
		return nil, "", err
	}

	result, err := session.engine.Analyze(path, src)
	if err != nil {
		return nil, "", err
	}

	doc, err := session.engine.RenderTree(result)
	if err != nil {
		return nil, "", err
	}

	if target == "" {
		target = session.cfg.OutputPath(path, false)
	}
	if err := filex.WriteAtomic(target, doc, outputPerm); err != nil {
		return nil, "", err
	}

	session.logger.WithField("output", target).Info("Parse tree written")
	return result, target, nil
}

func printDone(out io.Writer, source, target, summary, took string) {
	fmt.Fprintf(out, "%s %s %s %s %s\n",
		SuccessStyle.Render("✓"),
		FileStyle.Render(source),
		MutedStyle.Render("→"),
		FileStyle.Render(target),
		MutedStyle.Render("("+summary+", "+took+")"))
}
