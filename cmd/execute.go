// Package cmd is the CLI driver: argument parsing, subcommand dispatch, and
// the top-level error reporting around the three packages that actually do
// the work (internal/config, internal/diag, internal/check).
//
// Grounded on cmd/execute.go's olive.NewCLI subcommand/flag wiring and its
// logging.PrintErrorMessage/PrintInfoMessage console-error idiom.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ComedicChimera/olive"

	"github.com/noobshow/fcc/internal/ast"
	"github.com/noobshow/fcc/internal/check"
	"github.com/noobshow/fcc/internal/config"
	"github.com/noobshow/fcc/internal/diag"
	"github.com/noobshow/fcc/internal/symtab"
)

// Frontend parses one source file into an already symbol-resolved AST,
// ready to hand to internal/check. Lexing, parsing, and symbol-table
// construction are external collaborators (spec.md §1, §6) that this
// module does not implement; a real distribution wires a concrete
// Frontend in before calling Execute. With none registered, the `check`
// subcommand reports a configuration error instead of guessing at a parse.
type Frontend func(path string, builtins *symtab.Builtins) (*ast.Node, error)

// ActiveFrontend is the Frontend the `check` subcommand uses. Left nil in
// this distribution.
var ActiveFrontend Frontend

// Execute runs the semcheck CLI.
func Execute() {
	cli := olive.NewCLI("semcheck", "semcheck analyzes a project for type and value-category errors", true)
	logLvlArg := cli.AddSelectorArg("loglevel", "ll", "the diagnostic log level", false, []string{"silent", "error", "warning", "verbose"})
	logLvlArg.SetDefaultValue("verbose")

	checkCmd := cli.AddSubcommand("check", "analyze a project and report diagnostics", true)
	checkCmd.AddPrimaryArg("project-path", "the path to the project directory", true)
	checkCmd.AddFlag("werror", "we", "treat warnings as errors")

	initCmd := cli.AddSubcommand("init", "create a new project file", true)
	initCmd.AddPrimaryArg("name", "the new project's name", true)

	cli.AddSubcommand("version", "print the semcheck version", false)

	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		diag.PrintErrorMessage("CLI Usage Error", err)
		return
	}

	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "check":
		loglevel, _ := result.Arguments["loglevel"].(string)
		execCheckCommand(subResult, loglevel)
	case "init":
		execInitCommand(subResult)
	case "version":
		diag.PrintInfoMessage("semcheck Version", config.Version)
	}
}

// execCheckCommand loads a project, walks its configured source paths, and
// runs the Checker over each file found.
func execCheckCommand(result *olive.ArgParseResult, loglevelOverride string) {
	projRelPath, _ := result.PrimaryArg()

	projPath, err := filepath.Abs(projRelPath)
	if err != nil {
		diag.PrintErrorMessage("Path Error", err)
		return
	}

	cfg, err := config.Load(projPath)
	if err != nil {
		diag.PrintErrorMessage("Project Load Error", err)
		return
	}

	if result.HasFlag("werror") {
		cfg.Werror = true
	}

	level := cfg.LogLevel
	if lvl, ok := parseLogLevel(loglevelOverride); ok {
		level = lvl
	}

	sources, err := collectSources(cfg.Paths)
	if err != nil {
		diag.PrintErrorMessage("Project Load Error", err)
		return
	}

	if ActiveFrontend == nil {
		diag.PrintErrorMessage("Config Error", errors.New("no front end registered: semcheck's check subcommand needs a lexer/parser to produce an AST, which this distribution does not include"))
		return
	}

	sink := diag.NewSink(level, cfg.Werror)
	builtins := symtab.NewBuiltins()

	for _, src := range sources {
		root, err := ActiveFrontend(src, builtins)
		if err != nil {
			diag.PrintErrorMessage("Parse Error", err)
			continue
		}

		c := check.New(sink, builtins, src, nil, check.WithRecover())
		c.File(root)
	}

	sink.Summary()

	if sink.ErrorCount() > 0 {
		os.Exit(1)
	}
}

// execInitCommand scaffolds a new project file in the current directory.
func execInitCommand(result *olive.ArgParseResult) {
	name, _ := result.PrimaryArg()

	workDir, err := os.Getwd()
	if err != nil {
		diag.PrintErrorMessage("Path Error", err)
		return
	}

	if err := config.Init(name, workDir); err != nil {
		diag.PrintErrorMessage("Project Init Error", err)
	}
}

// collectSources expands a project's configured paths (files or
// directories) into a flat list of source files, recursing into
// directories and filtering by config.SourceFileExtension.
func collectSources(paths []string) ([]string, error) {
	var out []string

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("cannot read path %s: %s", p, err.Error())
		}

		if !info.IsDir() {
			out = append(out, p)
			continue
		}

		err = filepath.Walk(p, func(path string, fi os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if fi.IsDir() {
				return nil
			}
			if strings.HasSuffix(path, config.SourceFileExtension) {
				out = append(out, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}

func parseLogLevel(name string) (diag.Level, bool) {
	switch name {
	case "silent":
		return diag.LevelSilent, true
	case "error":
		return diag.LevelError, true
	case "warning":
		return diag.LevelWarning, true
	case "verbose":
		return diag.LevelVerbose, true
	default:
		return 0, false
	}
}
