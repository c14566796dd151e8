// Package config is the project/module configuration layer: a small
// TOML-backed file naming which paths to analyze and how verbosely to
// report. Adapted from the teacher's mods package, which loads a much
// richer ChaiModule/BuildProfile (import paths, compilation caching,
// target OS/arch, static/dynamic libraries) from the same kind of TOML
// file; this analyzer's config generalizes only the parts a standalone
// semantic-analysis tool still needs: what to analyze, how loud to be,
// and whether warnings should be treated as errors.
package config

import (
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"

	"github.com/noobshow/fcc/internal/diag"
)

// ProjectFileName is the config file this tool looks for in a project
// root, mirroring common.ModuleFileName's role for the teacher's module
// file.
const ProjectFileName = "semcheck.toml"

// SourceFileExtension is the extension of a source file this analyzer's
// front end accepts, mirroring common.SrcFileExtension.
const SourceFileExtension = ".sc"

// Version is the tool's version string, mirroring common.ChaiVersion.
const Version = "0.1.0"

// Config is the resolved, validated project configuration.
type Config struct {
	// Name is the project's identifier, required to be a valid
	// identifier (mirrors mods.IsValidIdentifier's check on a module
	// name).
	Name string

	// ProjectRoot is the directory the project file was loaded from.
	ProjectRoot string

	// Paths is the ordered list of source paths (files or directories) to
	// analyze, resolved relative to ProjectRoot.
	Paths []string

	// LogLevel controls diagnostics verbosity.
	LogLevel diag.Level

	// Werror promotes warnings to errors.
	Werror bool
}

type tomlProjectFile struct {
	Project *tomlProject `toml:"project"`
}

type tomlProject struct {
	Name     string   `toml:"name"`
	Paths    []string `toml:"paths"`
	LogLevel string   `toml:"log-level"`
	Werror   bool     `toml:"werror"`
}

var logLevelNames = map[string]diag.Level{
	"silent":  diag.LevelSilent,
	"error":   diag.LevelError,
	"warning": diag.LevelWarning,
	"verbose": diag.LevelVerbose,
}

// Load reads and validates the project file at <dir>/semcheck.toml.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, ProjectFileName)

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, err
	}

	tpf := &tomlProjectFile{}
	if err := toml.Unmarshal(buf, tpf); err != nil {
		return nil, err
	}
	if tpf.Project == nil {
		return nil, fmt.Errorf("%s: missing [project] table", path)
	}

	return validate(dir, tpf.Project)
}

func validate(dir string, tp *tomlProject) (*Config, error) {
	if tp.Name == "" {
		return nil, fmt.Errorf("missing project name in %s", filepath.Join(dir, ProjectFileName))
	}
	if !IsValidIdentifier(tp.Name) {
		return nil, errors.New("project name must be a valid identifier")
	}
	if len(tp.Paths) == 0 {
		return nil, fmt.Errorf("project %s must list at least one path to analyze", tp.Name)
	}

	level := diag.LevelVerbose
	if tp.LogLevel != "" {
		lvl, ok := logLevelNames[tp.LogLevel]
		if !ok {
			return nil, fmt.Errorf("%q is not a valid log level", tp.LogLevel)
		}
		level = lvl
	}

	paths := make([]string, len(tp.Paths))
	for i, p := range tp.Paths {
		paths[i] = filepath.Join(dir, p)
	}

	return &Config{
		Name:        tp.Name,
		ProjectRoot: dir,
		Paths:       paths,
		LogLevel:    level,
		Werror:      tp.Werror,
	}, nil
}

// IsValidIdentifier reports whether idstr is a valid project name,
// adapted from mods.IsValidIdentifier.
func IsValidIdentifier(idstr string) bool {
	if idstr == "" {
		return false
	}
	first := idstr[0]
	if !(first == '_' || ('a' <= first && first <= 'z') || ('A' <= first && first <= 'Z')) {
		return false
	}
	for _, c := range idstr[1:] {
		if c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9') {
			continue
		}
		return false
	}
	return true
}

// Init creates a new project file at <dir>/semcheck.toml naming a single
// default path to analyze, mirroring mods.InitModule.
func Init(name, dir string) error {
	path := filepath.Join(dir, ProjectFileName)

	if _, err := os.Stat(path); err == nil {
		return errors.New("project file already exists")
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("project file error: %s", err.Error())
	}

	if !IsValidIdentifier(name) {
		return errors.New("project name must be a valid identifier")
	}

	tpf := &tomlProjectFile{Project: &tomlProject{
		Name:     name,
		Paths:    []string{"."},
		LogLevel: "verbose",
	}}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating project file: %s", err.Error())
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(tpf); err != nil {
		return fmt.Errorf("error encoding TOML: %s", err.Error())
	}

	return nil
}
