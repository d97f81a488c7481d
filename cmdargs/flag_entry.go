package cmdargs

// FlagEntry is a flag occurrence in the snapshot together with the parameter
// value that follows it, if any.
type FlagEntry struct {
	name  string
	value string
}

func NewFlagEntry(name, value string) FlagEntry {
	return FlagEntry{
		name:  name,
		value: value,
	}
}

func (f FlagEntry) Name() string {
	return f.name
}

func (f FlagEntry) Value() string {
	return f.value
}

func (f FlagEntry) String() string {
	if f.value == "" {
		return f.name
	}
	return f.name + " " + f.value
}
