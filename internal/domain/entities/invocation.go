package entities

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Flags understood by the translation tool. The tool parses its arguments
// positionally, so BuildInvocation always emits them in the same order.
const (
	ClasspathFlag  = "-cp"
	SourcePathFlag = "-sourcepath"
	PrefixesFlag   = "--prefixes"
	OutputDirFlag  = "-d"

	pathListSeparator = ":"
)

// InvocationConfig bundles every input of BuildInvocation.
type InvocationConfig struct {
	Executable       string
	WorkingDir       string
	IncludeClasspath bool
	Classpath        []string
	SourceRoots      []string
	SourceFiles      []string
	PrefixFile       string // empty when no prefixes are configured
	OutputDirectory  string
}

// InvocationSpec is the fully assembled command handed to the process runner.
type InvocationSpec struct {
	Executable string
	WorkingDir string
	Args       []string
}

// ProcessResult is what the process runner reports about a finished child.
type ProcessResult struct {
	ExitCode int
	Stderr   string
}

// IsSuccess returns true if the exit code indicates successful execution.
func (r *ProcessResult) IsSuccess() bool { return r.ExitCode == 0 }

// TranslationResult summarizes one orchestration run.
type TranslationResult struct {
	Invocation  InvocationSpec
	SourceFiles int
	PrefixFile  string
	ExitCode    int
	Executed    bool
	Warnings    []string
}

// BuildInvocation assembles the ordered argument list:
// [-cp <classpath>] -sourcepath <roots> [--prefixes <file>] -d <output> <files...>.
func BuildInvocation(cfg InvocationConfig) (InvocationSpec, error) {
	if strings.TrimSpace(cfg.OutputDirectory) == "" {
		return InvocationSpec{}, &ConfigurationError{Field: "outputDirectory", Reason: "must not be empty"}
	}

	args := make([]string, 0, len(cfg.SourceFiles)+8) //nolint:mnd // four flag/value pairs at most

	if cfg.IncludeClasspath {
		args = append(args, ClasspathFlag, JoinClasspath(cfg.Classpath))
	}

	args = append(args, SourcePathFlag, JoinPathList(cfg.SourceRoots))

	if cfg.PrefixFile != "" {
		args = append(args, PrefixesFlag, absPath(cfg.PrefixFile))
	}

	args = append(args, OutputDirFlag, absPath(cfg.OutputDirectory))

	files := slices.Clone(cfg.SourceFiles)
	slices.Sort(files)
	args = append(args, slices.Compact(files)...)

	return InvocationSpec{
		Executable: cfg.Executable,
		WorkingDir: cfg.WorkingDir,
		Args:       args,
	}, nil
}

// JoinPathList joins entries with ':' after sorting and dropping empty and
// duplicate entries, so the result never starts with a separator.
func JoinPathList(entries []string) string {
	cleaned := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry = strings.TrimSpace(entry); entry != "" {
			cleaned = append(cleaned, entry)
		}
	}
	slices.Sort(cleaned)
	return strings.Join(slices.Compact(cleaned), pathListSeparator)
}

// JoinClasspath joins entries with ':' in declaration order, dropping only
// empty entries. The first entry providing a class wins at lookup time.
func JoinClasspath(entries []string) string {
	kept := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry = strings.TrimSpace(entry); entry != "" {
			kept = append(kept, entry)
		}
	}
	return strings.Join(kept, pathListSeparator)
}

// Validate checks that the executable and the working directory exist.
func (s InvocationSpec) Validate() error {
	if s.Executable == "" {
		return &ConfigurationError{Field: "executable", Reason: "must not be empty"}
	}
	if _, err := os.Stat(s.Executable); err != nil {
		return &FilesystemError{Op: "locate tool binary", Path: s.Executable, Err: err}
	}
	info, err := os.Stat(s.WorkingDir)
	if err != nil {
		return &FilesystemError{Op: "locate working directory", Path: s.WorkingDir, Err: err}
	}
	if !info.IsDir() {
		return &FilesystemError{Op: "locate working directory", Path: s.WorkingDir, Err: os.ErrInvalid}
	}
	return nil
}

// CommandLine renders the invocation for logs, quoting empty arguments.
func (s InvocationSpec) CommandLine() string {
	parts := make([]string, 0, len(s.Args)+1)
	parts = append(parts, s.Executable)
	for _, arg := range s.Args {
		if arg == "" || strings.ContainsAny(arg, " \t") {
			arg = `"` + arg + `"`
		}
		parts = append(parts, arg)
	}
	return strings.Join(parts, " ")
}

// absPath resolves relative paths against the current directory.
func absPath(p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
