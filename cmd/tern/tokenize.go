package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tern/internal/diag"
	"tern/internal/driver"
	"tern/internal/source"
	"tern/internal/token"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.tn",
	Short: "Tokenize a tern source file",
	Long:  `Tokenize breaks down a tern source file into its constituent tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func runTokenize(cmd *cobra.Command, args []string) error {
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	fset := source.NewFileSet()
	id, err := fset.Load(args[0])
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	toks, bag := driver.Tokenize(fset, id, maxDiagnostics)

	if bag.Len() > 0 {
		fmt.Fprintln(os.Stderr, diag.FormatGolden(bag.Items(), fset, true))
	}

	for _, tok := range toks {
		pos := fset.SpanStart(tok.Span)
		if tok.Kind == token.EOF {
			fmt.Printf("%d:%d\t%s\n", pos.Line, pos.Col, tok.Kind)
			continue
		}
		fmt.Printf("%d:%d\t%s\t%q\n", pos.Line, pos.Col, tok.Kind, tok.Text)
	}

	if bag.HasErrors() {
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return fmt.Errorf("")
	}
	return nil
}
