// Package cmdargs classifies the tokens of an invocation snapshot: the full
// ordered argument list a process received, program path at index 0.
// An Args value holds the snapshot together with the set of known flag tokens
// and is immutable: the With... builders return modified copies.
package cmdargs

type Args struct {
	Args          []string
	knownFlags    KnownFlags
	trailingArgOK bool
}

// KnownFlags is a set of registered flag tokens.
type KnownFlags map[string]struct{}

func (flags KnownFlags) Clone() KnownFlags {
	clone := make(KnownFlags, len(flags))
	for name := range flags {
		clone[name] = struct{}{}
	}
	return clone
}

func (flags KnownFlags) Has(name string) bool {
	_, has := flags[name]
	return has
}

func NewArgs(args []string) Args {
	return Args{
		Args: args,
	}
}

// WithKnownFlags returns a copy of args with the given flag tokens added to
// the known set.
func (args Args) WithKnownFlags(names ...string) Args {
	args.knownFlags = args.knownFlags.Clone()
	for _, name := range names {
		args.knownFlags[name] = struct{}{}
	}
	return args
}

// WithoutKnownFlags returns a copy of args with the given flag tokens removed
// from the known set.
func (args Args) WithoutKnownFlags(names ...string) Args {
	args.knownFlags = args.knownFlags.Clone()
	for _, name := range names {
		delete(args.knownFlags, name)
	}
	return args
}

// WithTrailingArg returns a copy of args where the final token is treated as
// a free-standing operand and excluded from classification against the known
// flag set.
func (args Args) WithTrailingArg(ok bool) Args {
	args.trailingArgOK = ok
	return args
}

func (args Args) Len() int {
	return len(args.Args)
}

// Contains reports whether arg occurs anywhere in the snapshot.
func (args Args) Contains(arg string) bool {
	for _, a := range args.Args {
		if a == arg {
			return true
		}
	}
	return false
}
