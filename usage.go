package argdef

import (
	"fmt"
	"io"
	"strings"

	"github.com/anacrolix/missinggo/v2"
	"github.com/bradfitz/iter"
	"github.com/huandu/xstrings"
)

// WriteUsage renders the full help text: app banner, usage line,
// optional documentation block, then the argument listing in
// declaration order with flag summaries aligned to one column.
func (c *Context) WriteUsage(w io.Writer) {
	if c.appVersion != "" {
		fmt.Fprintf(w, "%s version %s\n", c.appName, c.appVersion)
	} else {
		fmt.Fprintf(w, "%s\n", c.appName)
	}

	fmt.Fprintf(w, "Usage: %s", c.appName)
	anyRequired := false
	anyOptional := false
	for _, a := range c.args {
		if a.flags.required() {
			fmt.Fprintf(w, " --%s", a.name)
			anyRequired = true
		} else {
			anyOptional = true
		}
	}
	if anyOptional {
		fmt.Fprintf(w, " [OPTION]...")
	}
	fmt.Fprintf(w, "\n")

	if c.appDoc != "" {
		fmt.Fprintf(w, "DOCUMENTATION\n%s", missinggo.Unchomp(c.appDoc))
	}

	width := 0
	for i := range iter.N(len(c.args)) {
		if n := len(c.args[i].flagSummary()); n > width {
			width = n
		}
	}

	// The REQUIRED header is only worth printing when there are
	// optional arguments to tell apart; the implicit help switch
	// means there always are.
	if anyRequired {
		fmt.Fprintf(w, "REQUIRED ARGUMENTS:\n")
		c.writeArgGroup(w, width, true)
	}
	if anyOptional {
		fmt.Fprintf(w, "OPTIONAL ARGUMENTS:\n")
		c.writeArgGroup(w, width, false)
	}
}

func (c *Context) writeArgGroup(w io.Writer, width int, required bool) {
	for _, a := range c.args {
		if a.flags.required() != required {
			continue
		}
		line := "  " + xstrings.LeftJustify(a.flagSummary(), width, " ") + "  " + a.desc
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}
}
