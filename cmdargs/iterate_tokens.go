package cmdargs

import "strings"

// IterateTokens calls yield for every snapshot token with its classified role
// until yield returns false. Index 0 is always RoleProgram. With a trailing
// operand allowed, the final token is RoleTrailing no matter what it looks
// like. A marker-prefixed token is RoleFlag, RoleKnown added when it is
// registered. Any other token is RoleFlagValue, RoleKnown added when the
// preceding token is a registered flag.
func (args Args) IterateTokens(yield func(token Token) bool) {
	last := len(args.Args) - 1
	for i, arg := range args.Args {
		token := Token{
			Arg:   arg,
			Index: i,
		}

		switch {
		case i == 0:
			token.Role = RoleProgram
		case args.trailingArgOK && i == last:
			token.Role = RoleTrailing
		case strings.HasPrefix(arg, "-"):
			token.Role = RoleFlag
			if args.knownFlags.Has(arg) {
				token.Role |= RoleKnown
			}
		default:
			token.Role = RoleFlagValue
			if args.knownFlags.Has(args.Args[i-1]) {
				token.Role |= RoleKnown
			}
		}

		if !yield(token) {
			return
		}
	}
}

// FirstUnknown returns the first token that is neither a registered flag nor
// a value following one. The program path and an allowed trailing operand are
// never reported.
func (args Args) FirstUnknown() (res Token, found bool) {
	args.IterateTokens(func(token Token) bool {
		if token.Role.Has(RoleProgram) ||
			token.Role.Has(RoleTrailing) ||
			token.Role.Has(RoleKnown) {
			return true
		}
		res = token
		found = true
		return false
	})
	return res, found
}
