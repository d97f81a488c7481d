package argpars

import "fmt"

// NoArgumentsPassed reports whether the snapshot holds the program path only.
func (a *App) NoArgumentsPassed() bool {
	return a.args.Len() <= 1
}

// Passed reports whether arg occurs anywhere in the invocation snapshot.
// The query is a literal membership test and works for any string, registered
// as a flag or not.
func (a *App) Passed(arg string) bool {
	if rec, ok := a.flags[arg]; ok {
		return rec.passed
	}
	return a.args.Contains(arg)
}

// DefaultArgumentsPassed reports whether --help or --version occurs in the
// snapshot. The test stays literal after NoDefaultArguments, even though Run
// no longer treats the tokens specially.
func (a *App) DefaultArgumentsPassed() bool {
	return a.Passed(HelpFlag) || a.Passed(VersionFlag)
}

// ParameterFor returns the token directly following the first occurrence of
// arg in the snapshot, or "" when that token is itself a registered flag or
// arg is the last token. ok is false when arg does not occur at all.
func (a *App) ParameterFor(arg string) (param string, ok bool) {
	if rec, exists := a.flags[arg]; exists {
		return rec.param, rec.passed
	}
	entry, has := a.args.LookupFlag(arg)
	if !has {
		return "", false
	}
	return entry.Value(), true
}

// Validate runs the linear validation scan and returns ErrUnknownOption
// naming the first invocation token that is neither a registered flag nor a
// parameter following one. With AllowTrailingArg set, the final token is
// excluded from the scan.
func (a *App) Validate() error {
	if token, found := a.scanArgs().FirstUnknown(); found {
		return fmt.Errorf("%w: '%s'", ErrUnknownOption, token.Arg)
	}
	return nil
}

// WrongArgumentsPassed reports whether the validation scan fails.
func (a *App) WrongArgumentsPassed() bool {
	return a.Validate() != nil
}
