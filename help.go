package argpars

import "fmt"

// PrintHelp renders the help screen: the usage line, name, description and
// version, the registered flags in registration order, then any help
// sections in insertion order.
func (a *App) PrintHelp() {
	w := a.out
	_, _ = fmt.Fprintln(w, a.Usage)
	_, _ = fmt.Fprintf(w, "Name: %s\n", a.Name)
	_, _ = fmt.Fprintf(w, "Description: %s\n", a.Description)
	_, _ = fmt.Fprintf(w, "Version: %s\n\n", a.Version)
	_, _ = fmt.Fprintln(w, "Possible options:")
	for _, name := range a.flagNames {
		if usage := a.flags[name].usage; usage != "" {
			_, _ = fmt.Fprintf(w, "\t%s\t%s\n", name, usage)
		} else {
			_, _ = fmt.Fprintf(w, "\t%s\n", name)
		}
	}
	if len(a.sections) > 0 {
		_, _ = fmt.Fprintln(w)
		for _, section := range a.sections {
			_, _ = fmt.Fprintln(w, section.title)
			_, _ = fmt.Fprintln(w, section.content)
		}
	}
}
