package arguments

import (
	"fmt"
	"strconv"
	"strings"
)

// Arguments is the result of parsing a command line. It is not modified after
// Parse returns and can be shared freely.
type Arguments struct {
	program string
	options *Options
	orphans []string
}

// Program returns the first token.
func (a *Arguments) Program() string {
	return a.program
}

// Options returns the option table.
func (a *Arguments) Options() *Options {
	return a.options
}

// Orphans returns a copy of the tokens that were neither a flag nor a flag value.
func (a *Arguments) Orphans() []string {
	out := make([]string, len(a.orphans))
	copy(out, a.orphans)
	return out
}

// Lookup returns the raw last value of name.
func (a *Arguments) Lookup(name string) (string, bool) {
	return a.options.Last(name)
}

func (a *Arguments) String() string {
	var b strings.Builder
	b.WriteString("program=")
	b.WriteString(strconv.Quote(a.program))
	b.WriteString(" options={")
	for i, name := range a.options.Names() {
		if i > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "%s:%q", name, a.options.raw(name))
	}
	b.WriteString("} orphans=")
	fmt.Fprintf(&b, "%q", a.orphans)
	return b.String()
}
