package argpars

import "os"

// CommandLine is a default App built from os.Args that is used by the
// package-level functions. It follows the same pattern as flag.CommandLine
// in the stdlib.
var CommandLine = New(os.Args)

// AddArgument registers a flag with the default App.
// See App.AddArgument.
func AddArgument(name, usage string) error {
	return CommandLine.AddArgument(name, usage)
}

// AddHelpSection appends a help section to the default App.
// See App.AddHelpSection.
func AddHelpSection(title, content string) {
	CommandLine.AddHelpSection(title, content)
}

// NoDefaultArguments removes the built-in flags from the default App.
// See App.NoDefaultArguments.
func NoDefaultArguments() {
	CommandLine.NoDefaultArguments()
}

// NoArgumentsPassed reports whether the process received no arguments.
func NoArgumentsPassed() bool {
	return CommandLine.NoArgumentsPassed()
}

// Passed reports whether arg occurs in os.Args.
func Passed(arg string) bool {
	return CommandLine.Passed(arg)
}

// DefaultArgumentsPassed reports whether --help or --version occurs in os.Args.
func DefaultArgumentsPassed() bool {
	return CommandLine.DefaultArgumentsPassed()
}

// ParameterFor returns the parameter following arg in os.Args.
// See App.ParameterFor.
func ParameterFor(arg string) (string, bool) {
	return CommandLine.ParameterFor(arg)
}

// WrongArgumentsPassed reports whether os.Args fails validation against the
// default App's registry.
func WrongArgumentsPassed() bool {
	return CommandLine.WrongArgumentsPassed()
}

// Validate validates os.Args against the default App's registry.
func Validate() error {
	return CommandLine.Validate()
}

// PrintHelp renders the default App's help screen.
func PrintHelp() {
	CommandLine.PrintHelp()
}

// Run executes the default App's driver and returns the process exit code.
func Run() int {
	return CommandLine.Run()
}
