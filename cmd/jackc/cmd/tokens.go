package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/jackc/foundation/jack"
	"github.com/msto63/jackc/foundation/jack/token"
	"github.com/msto63/jackc/foundation/utils/filex"
)

var tokensOutput string

var tokensCmd = &cobra.Command{
	Use:     "tokens <File.jack>",
	Aliases: []string{"tokenize"},
	Short:   "Write the flat token list of a source file",
	Long: `Tokenizes a Jack source file and writes every token as a flat XML
document rooted at <tokens>. Main.jack is written to MainT.xml.`,
	Args: cobra.ExactArgs(1),
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
	tokensCmd.Flags().StringVarP(&tokensOutput, "output", "o", "", "output file (default: source name with T.xml)")
}

func runTokens(cmd *cobra.Command, args []string) error {
	result, target, err := tokenizeFile(args[0], tokensOutput)
	if err != nil {
		return err
	}

	counts := result.KindCounts()
	summary := fmt.Sprintf("%d tokens: %d keywords, %d symbols, %d identifiers, %d integers, %d strings",
		len(result.Tokens),
		counts[token.KindKeyword],
		counts[token.KindSymbol],
		counts[token.KindIdentifier],
		counts[token.KindIntConst],
		counts[token.KindStringConst])
	printDone(cmd.OutOrStdout(), result.Name, target, summary, result.Duration.String())
	return nil
}

// tokenizeFile writes the token document for path. Nothing is written on
// failure.
func tokenizeFile(path, target string) (*jack.TokenResult, string, error) {
	src, err := loadSource(path)
	if err != nil {
		return nil, "", err
	}

	result, err := session.engine.Tokenize(path, src)
	if err != nil {
		return nil, "", err
	}

	doc, err := session.engine.RenderTokens(result)
	if err != nil {
		return nil, "", err
	}

	if target == "" {
		target = session.cfg.OutputPath(path, true)
	}
	if err := filex.WriteAtomic(target, doc, outputPerm); err != nil {
		return nil, "", err
	}

	session.logger.WithField("output", target).Info("Token list written")
	return result, target, nil
}
