package cmdargs

// LookupFlag finds the first occurrence of the given flag token in the
// snapshot. The entry's value is the token directly following it, or "" when
// the flag is the last token or the next token is itself a registered flag.
func (args Args) LookupFlag(name string) (res FlagEntry, has bool) {
	for i, arg := range args.Args {
		if arg != name {
			continue
		}
		value := ""
		if i+1 < len(args.Args) && !args.knownFlags.Has(args.Args[i+1]) {
			value = args.Args[i+1]
		}
		return NewFlagEntry(name, value), true
	}
	return res, false
}
