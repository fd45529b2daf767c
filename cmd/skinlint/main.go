// Package main is the skinlint CLI: a headless, non-interactive driver
// for pkg/analyzer that checks every skin document in a repository and
// reports diagnostics on stdout (spec.md §6 "CLI surface").
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/dimelords/skinlang/pkg/analyzer"
	"github.com/dimelords/skinlang/pkg/checker"
	"github.com/dimelords/skinlang/pkg/docmanager"
	"github.com/dimelords/skinlang/pkg/fsutil"
	"github.com/dimelords/skinlang/pkg/log"

	"github.com/dimelords/skinlang/internal/repoconfig"
)

// exitCode is set by run and read by main after app.Run returns, since
// a nonzero-errors-found result is not itself a framework-level error
// (spec.md §6: "exit code 0 on zero errors, 1 on any error").
var exitCode int

func main() {
	app := &cli.Command{
		Name:  "skinlint",
		Usage: "validate every skin document in a repository",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "ignore", Usage: "space separated path patterns to skip"},
			&cli.BoolFlag{Name: "verbose", Usage: "log repository indexing at info level"},
		},
		ArgsUsage: "REPO_ROOT",
		Action:    run,
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "skinlint: %v\n", err)
		os.Exit(1)
	}
	os.Exit(exitCode)
}

func run(_ context.Context, cmd *cli.Command) error {
	repoRoot := cmd.Args().Get(0)
	if repoRoot == "" {
		repoRoot = "."
	}

	if cmd.Bool("verbose") {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		log.SetLogger(logger)
	}

	ignore := strings.Fields(cmd.String("ignore"))

	start := time.Now()

	probe := fsutil.OSProbe{}
	cfg, err := repoconfig.Load(probe, probe.Join(repoRoot, fsutil.RepoMarker))
	if err != nil {
		return fmt.Errorf("loading %s: %w", fsutil.RepoMarker, err)
	}
	locator := fsutil.NewLocator(probe, cfg)

	a := analyzer.New(probe, locator, repoRoot, docmanager.NoProvider{}, docmanager.RealClock{})
	if err := a.LoadClassModels(); err != nil {
		return err
	}
	a.IndexRepository()

	var errCount, warnCount int
	for _, loc := range locator.SkinsLocations(repoRoot) {
		for _, file := range locator.WalkFiles(loc, ".xml") {
			if ignored(file, ignore) {
				continue
			}
			result, ok := a.CheckDocument(file, checker.Unbounded{})
			if !ok {
				continue
			}
			for _, d := range result.Diagnostics {
				fmt.Print(formatDiagnostic(file, d))
				if d.Severity == checker.SeverityError {
					errCount++
				} else {
					warnCount++
				}
			}
		}
	}

	fmt.Printf("Total Errors: %d\n", errCount)
	fmt.Printf("Total Warnings: %d\n", warnCount)
	fmt.Printf("Finished in %.2fs\n", time.Since(start).Seconds())

	if errCount > 0 {
		exitCode = 1
	}
	return nil
}

// ignored reports whether path matches any of patterns. spec.md §6
// specifies plain substring containment; a pattern carrying glob
// metacharacters is instead matched with doublestar so "-ignore" can
// also take "**/testdata/**"-style patterns, the same matcher
// pkg/scope uses for <External> patterns.
func ignored(path string, patterns []string) bool {
	for _, p := range patterns {
		if p == "" {
			continue
		}
		if strings.ContainsAny(p, "*?[") {
			if ok, _ := doublestar.Match(p, path); ok {
				return true
			}
			continue
		}
		if strings.Contains(path, p) {
			return true
		}
	}
	return false
}

// formatDiagnostic renders d the way spec.md §6 describes the CLI
// output: "Error: <msg> at <path>:<line>:<col>", related info appended
// as "(msg file:line:col)" on its own indented line.
func formatDiagnostic(path string, d checker.Diagnostic) string {
	kind := "Error"
	if d.Severity == checker.SeverityWarning {
		kind = "Warning"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s at %s:%s\n", kind, d.Message, path, d.Range.Start)
	for _, rel := range d.Related {
		fmt.Fprintf(&b, "  (%s %s:%s)\n", rel.Message, rel.Location.URI, rel.Location.Range.Start)
	}
	return b.String()
}
