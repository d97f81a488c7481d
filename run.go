package argpars

import "fmt"

// Run is the top-level driver. It returns the process exit code: 0 on
// success, 1 when validation fails. The caller is expected to pass the
// result to os.Exit.
//
// An empty invocation is a no-op. Otherwise the snapshot is validated and
// the first unrecognized token is reported on the error output. When the
// built-in flags are still registered, --help renders the help screen and
// --version prints the version line; both fire when both flags are present.
func (a *App) Run() int {
	if a.NoArgumentsPassed() {
		return 0
	}
	if token, found := a.scanArgs().FirstUnknown(); found {
		a.printUnknownOption(token.Arg)
		return 1
	}
	if a.defaultArgs {
		if a.Passed(HelpFlag) {
			a.PrintHelp()
		}
		if a.Passed(VersionFlag) {
			_, _ = fmt.Fprintf(a.out, "%s version: %s\n", a.Name, a.Version)
		}
	}
	return 0
}

func (a *App) printUnknownOption(token string) {
	_, _ = fmt.Fprintf(a.errOut, "ERROR: No such option: '%s'\n", token)
	_, _ = fmt.Fprintf(a.errOut, "Try: '%s --help' for more information.\n", programPath(a.args.Args))
}
