package cmdargs

type Role int

func (r Role) Has(role Role) bool {
	return r&role != 0
}

const (
	RoleProgram   Role = 1 << iota // index 0, the program path
	RoleFlag                       // starts with the "-" marker
	RoleKnown                      // modifies RoleFlag or RoleFlagValue
	RoleFlagValue                  // bare token, a parameter for the preceding flag
	RoleTrailing                   // final token excluded by WithTrailingArg
)

type Token struct {
	Arg   string
	Index int
	// Role is a sum of Role constants. Possible values:
	// RoleProgram
	// RoleFlag | RoleKnown        // registered flag
	// RoleFlag                    // unrecognized flag
	// RoleFlagValue | RoleKnown   // follows a registered flag
	// RoleFlagValue               // orphan value, follows no registered flag
	// RoleTrailing
	Role Role
}
