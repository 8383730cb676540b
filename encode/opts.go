package encode

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

type EncodeOption func(*EncState)

// Indent sets the number of spaces per nesting level. The default is 2.
func Indent(n int) EncodeOption {
	return func(es *EncState) {
		if n > 0 {
			es.indent = n
		}
	}
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.colors = c }
}

// AutoColors enables colors when w is a terminal.
func AutoColors(w io.Writer) EncodeOption {
	f, ok := w.(*os.File)
	if !ok || !isatty.IsTerminal(f.Fd()) {
		return func(*EncState) {}
	}
	return EncodeColors(NewColors())
}
