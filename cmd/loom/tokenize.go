package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"loom/internal/diag"
	"loom/internal/diagfmt"
	"loom/internal/lexer"
	"loom/internal/source"
	"loom/internal/token"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.loom",
	Short: "Tokenize a loom source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	maxDiagnostics, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")

	files := source.NewFileSet()
	bag := diag.NewBag(maxDiagnostics)
	reporter := &diag.CollectingReporter{Bag: bag}

	tokens, ok := tokenizeFile(files, reporter, args[0])

	if bag.Len() > 0 {
		bag.Sort()
		useColor := wantColor(cmd, os.Stderr)
		diagfmt.Pretty(os.Stderr, bag, files, diagfmt.PrettyOpts{Color: useColor})
	}
	if !ok {
		return fmt.Errorf("tokenizing %s failed", args[0])
	}

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(os.Stdout, tokens, files)
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// tokenizeFile drains a reader over path into a flat token slice, stopping
// early (ok=false) if the CollectingReporter unwound a fatal diagnostic
// raised by the lexer itself (a malformed literal, unterminated string).
func tokenizeFile(files *source.FileSet, reporter diag.Reporter, path string) (tokens []token.Token, ok bool) {
	defer diag.Recover()

	reader, err := lexer.NewReader(files, reporter, path)
	if err != nil {
		reporter.Fatal(diag.SystemError, source.Span{}, "%s", err.Error())
		return nil, false
	}
	for reader.Kind() != token.ENDMARKER {
		tokens = append(tokens, reader.Token())
		reader.Next()
	}
	tokens = append(tokens, reader.Token())
	return tokens, true
}
