package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

const programName = "inject-env"

// PrintError writes a one-line diagnostic for err.
// The program name is highlighted when w is a terminal.
func PrintError(w io.Writer, err error) {
	prefix := programName + ":"
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		out := termenv.NewOutput(f)
		prefix = out.String(prefix).Foreground(out.Color("#fb7185")).Bold().String()
	}
	fmt.Fprintf(w, "%s %v\n", prefix, err)
}
