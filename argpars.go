// Package argpars is a dependency-less command-line argument parser: it
// registers a fixed set of flags, validates the process invocation against
// them, answers queries about what was passed, and renders a help screen.
package argpars

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Ernest1338/argpars/cmdargs"
)

var ErrFlagRedefined = errors.New("flag redefined")
var ErrEmptyFlagName = errors.New("empty flag name")
var ErrUnknownOption = errors.New("no such option")

// Built-in flags registered by New and removed by NoDefaultArguments.
const (
	HelpFlag    = "--help"
	VersionFlag = "--version"
)

// flagRecord holds everything known about one registered flag: its help text
// and the lookup state derived from the invocation snapshot.
type flagRecord struct {
	usage  string
	passed bool
	param  string
}

type helpSection struct {
	title   string
	content string
}

// App is an argument registry and validator over one invocation snapshot.
// The help metadata fields may be assigned directly by the caller before
// PrintHelp or Run. AllowTrailingArg excludes the final invocation token from
// validation, permitting a single free-form operand; it must be set before
// validation runs.
//
// An App is not safe for concurrent use while it is being mutated: finish all
// AddArgument / NoDefaultArguments calls before any concurrent reads begin.
type App struct {
	Usage            string
	Name             string
	Description      string
	Version          string
	AllowTrailingArg bool

	args        cmdargs.Args
	flagNames   []string
	flags       map[string]*flagRecord
	sections    []helpSection
	defaultArgs bool
	out         io.Writer
	errOut      io.Writer
}

// New creates an App over the given invocation snapshot (index 0 being the
// program path, as in os.Args). The built-in --help and --version flags are
// registered; call NoDefaultArguments to remove them.
func New(args []string) *App {
	a := &App{
		Usage:       fmt.Sprintf("Usage: %s [OPTION]...\n", programPath(args)),
		Name:        "Default name",
		Description: "Default description",
		Version:     "Default version",
		args:        cmdargs.NewArgs(args),
		flags:       make(map[string]*flagRecord),
		defaultArgs: true,
		out:         os.Stdout,
		errOut:      os.Stderr,
	}
	// Fresh registry, registration cannot fail.
	_ = a.AddArgument(HelpFlag, "display this help and exit")
	_ = a.AddArgument(VersionFlag, "output version information and exit")
	return a
}

func programPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}

// AddArgument registers a flag token with its help text. The token keeps its
// registration position on the help screen. Registering an empty token
// returns ErrEmptyFlagName; registering the same token twice returns
// ErrFlagRedefined and leaves the registry unchanged.
func (a *App) AddArgument(name, usage string) error {
	if name == "" {
		return ErrEmptyFlagName
	}
	if _, exists := a.flags[name]; exists {
		return fmt.Errorf(`%w: "%s"`, ErrFlagRedefined, name)
	}
	a.flagNames = append(a.flagNames, name)
	a.flags[name] = &flagRecord{usage: usage}
	a.args = a.args.WithKnownFlags(name)
	a.syncLookups()
	return nil
}

// NoDefaultArguments removes the built-in --help and --version flags so that
// Run no longer gives them special handling. Removal matches by token, so it
// is safe in any order relative to AddArgument calls, and is idempotent.
func (a *App) NoDefaultArguments() {
	a.removeArgument(HelpFlag)
	a.removeArgument(VersionFlag)
	a.defaultArgs = false
	a.syncLookups()
}

func (a *App) removeArgument(name string) {
	if _, exists := a.flags[name]; !exists {
		return
	}
	delete(a.flags, name)
	for i, n := range a.flagNames {
		if n == name {
			a.flagNames = append(a.flagNames[:i], a.flagNames[i+1:]...)
			break
		}
	}
	a.args = a.args.WithoutKnownFlags(name)
}

// syncLookups rederives the passed/parameter state of every registered flag
// from the snapshot. It must run after every registry mutation: registering a
// flag can retroactively turn an earlier flag's parameter into a flag token,
// and removal can do the opposite.
func (a *App) syncLookups() {
	for name, rec := range a.flags {
		entry, has := a.args.LookupFlag(name)
		rec.passed = has
		if has {
			rec.param = entry.Value()
		} else {
			rec.param = ""
		}
	}
}

// AddHelpSection appends a titled free-form section rendered after the flag
// list on the help screen. Sections keep their insertion order.
func (a *App) AddHelpSection(title, content string) {
	a.sections = append(a.sections, helpSection{
		title:   title,
		content: content,
	})
}

// Args returns the invocation snapshot the App was created with.
func (a *App) Args() []string {
	return a.args.Args
}

// SetOutput sets the destination for the help screen and the version line.
// Default is os.Stdout.
func (a *App) SetOutput(w io.Writer) {
	a.out = w
}

// SetErrorOutput sets the destination for validation error messages.
// Default is os.Stderr.
func (a *App) SetErrorOutput(w io.Writer) {
	a.errOut = w
}

func (a *App) scanArgs() cmdargs.Args {
	return a.args.WithTrailingArg(a.AllowTrailingArg)
}
