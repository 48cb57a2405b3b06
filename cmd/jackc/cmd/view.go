// ============================================================================
// jackc - Jack Syntax Analyzer
// ============================================================================
//
// Package:     cmd
// Description: CLI command for the interactive parse tree viewer
// Author:      Mike Stoffels
// Created:     2025-02-20
// License:     MIT
// ============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/jackc/internal/tui/treeview"
)

var viewCmd = &cobra.Command{
	Use:     "view <File.jack>",
	Aliases: []string{"tree"},
	Short:   "Browse the parse tree of a source file",
	Long: `Analyzes a Jack source file and opens its parse tree in an
interactive terminal viewer. No file is written.

With --plain the outline is printed to stdout instead, one node per line.

Keys:
  1-5         toggle keyword, symbol, identifier, integerConstant and
              stringConstant leaves
  0           show all leaves
  g / G       jump to top / bottom
  Up/Down     scroll one line
  PgUp/PgDn   scroll one page
  q, Ctrl+C   quit`,
	Args: cobra.ExactArgs(1),
	RunE: runView,
}

var plainView bool

func init() {
	viewCmd.Flags().BoolVar(&plainView, "plain", false, "print the outline instead of opening the viewer")
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	src, err := loadSource(args[0])
	if err != nil {
		return err
	}

	result, err := session.engine.Analyze(args[0], src)
	if err != nil {
		return err
	}

	if plainView {
		_, err := fmt.Fprint(cmd.OutOrStdout(), treeview.Outline(treeview.Flatten(result.Tree)))
		return err
	}
	return treeview.Run(result)
}
