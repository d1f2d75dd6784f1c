package main

import (
	"fmt"
	"os"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"loom/internal/diag"
	"loom/internal/diagfmt"
	"loom/internal/source"
)

var checkCmd = &cobra.Command{
	Use:   "check file.loom [file2.loom ...]",
	Short: "Check loom source files for lexical errors without running them",
	Long: `check tokenizes each file independently. There is no standalone full-program
parser in this interpreter — statements are parsed and executed together —
so check can only catch lexical problems (unterminated strings, malformed
literals, bad indentation) ahead of an actual run, not later semantic ones
like an undeclared name.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	maxDiagnostics, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	useColor := wantColor(cmd, os.Stderr)

	var mu sync.Mutex
	files := source.NewFileSet()
	combined := diag.NewBag(maxDiagnostics)
	failedFiles := 0

	g := new(errgroup.Group)
	for _, path := range args {
		path := path
		g.Go(func() error {
			bag := diag.NewBag(maxDiagnostics)
			_, ok := tokenizeFile(files, &diag.CollectingReporter{Bag: bag}, path)

			mu.Lock()
			for _, d := range bag.Items() {
				combined.Add(d)
			}
			if !ok {
				failedFiles++
			}
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	if combined.Len() > 0 {
		combined.Sort()
		diagfmt.Pretty(os.Stderr, combined, files, diagfmt.PrettyOpts{Color: useColor})
	}
	if failedFiles > 0 {
		return fmt.Errorf("check found problems in %d file(s)", failedFiles)
	}
	return nil
}
