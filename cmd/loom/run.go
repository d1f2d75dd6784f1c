package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"loom/internal/diag"
	"loom/internal/diagfmt"
	"loom/internal/interp"
	"loom/internal/source"
)

var runCmd = &cobra.Command{
	Use:   "run [flags] file.loom",
	Short: "Run a loom program",
	Args:  cobra.ExactArgs(1),
	RunE:  runRun,
}

func init() {
	runCmd.Flags().Bool("debug", false, "track live objects and dump the registry on exit")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadProjectConfig()
	if err != nil {
		return fmt.Errorf("loading loom.toml: %w", err)
	}
	debugFlag, _ := cmd.Flags().GetBool("debug")
	debug := debugFlag || cfg.Debug.Enabled

	files := source.NewFileSet()
	useColor := wantColor(cmd, os.Stderr)
	reporter := &diag.FatalReporter{
		Print: func(d diag.Diagnostic) {
			diagfmt.One(os.Stderr, d, files, diagfmt.PrettyOpts{Color: useColor})
		},
	}

	in, err := interp.New(files, reporter, args[0], interp.Options{
		Out:   os.Stdout,
		In:    os.Stdin,
		Debug: debug,
	})
	if err != nil {
		return fmt.Errorf("opening %s: %w", args[0], err)
	}

	in.Run()

	if debug {
		if err := dumpDebugRegistry(in, cfg); err != nil {
			return fmt.Errorf("dumping debug registry: %w", err)
		}
	}
	return nil
}

func dumpDebugRegistry(in *interp.Interpreter, cfg projectConfig) error {
	dump := cfg.Debug.Dump
	if dump == "" {
		dump = "object.dsv"
	}
	f, err := os.Create(dump)
	if err != nil {
		return err
	}
	defer f.Close()

	if strings.HasSuffix(dump, ".msgpack") {
		return in.Heap().DumpMsgpack(f)
	}
	return in.Heap().DumpDSV(f)
}
