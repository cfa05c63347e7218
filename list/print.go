package list

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

var (
	Green = color.New(color.FgGreen, color.Bold).SprintFunc()
	Cyan  = color.New(color.FgCyan, color.Bold).SprintFunc()
	Red   = color.New(color.FgRed, color.Bold).SprintFunc()
)

// FprintNode renders n's payload under typ followed by the identity of its
// successor. A string payload shows an embedded newline as the two
// characters \n instead of breaking the line.
func FprintNode(w io.Writer, n *Node, typ DataType) error {
	if n == nil {
		return ErrInvalidArgument
	}
	s, err := formatData(n.data, typ)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s -> %s\n", Green(s), Cyan(fmt.Sprintf("%p", n.next)))
	return nil
}

// PrintNode renders n to standard output.
func PrintNode(n *Node, typ DataType) error {
	return FprintNode(os.Stdout, n, typ)
}

// Fprint renders the whole chain to w, one node per line, [] when empty.
func (l *List) Fprint(w io.Writer, typ DataType) error {
	if l == nil {
		return ErrInvalidArgument
	}
	if l.head == nil {
		fmt.Fprintln(w, "[]")
		return nil
	}
	for cur := l.head; cur != nil; cur = cur.next {
		if err := FprintNode(w, cur, typ); err != nil {
			return err
		}
	}
	return nil
}

// Print renders the whole chain to standard output.
func (l *List) Print(typ DataType) error {
	return l.Fprint(os.Stdout, typ)
}

// PrintError renders a failing call's error in red, for consumers that
// report diagnostics on standard output.
func PrintError(err error) {
	if err == nil {
		return
	}
	fmt.Println(Red(err.Error()))
}

func formatData(data interface{}, typ DataType) (string, error) {
	switch typ {
	case Int:
		return fmt.Sprintf("%d", data), nil
	case Char:
		return fmt.Sprintf("%c", data), nil
	case Float:
		return fmt.Sprintf("%g", data), nil
	case String:
		s, _ := data.(string)
		return strings.ReplaceAll(s, "\n", `\n`), nil
	default:
		return "", ErrNotImplemented
	}
}
