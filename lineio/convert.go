package lineio

import (
	"strings"

	"github.com/serdekh/list/list"
)

// ConvertStringsToInts replaces every string payload with its parsed
// integer, in place, dropping the original string. The parse yields zero
// for unparseable text, so a parsed zero whose text does not literally
// begin with "0" marks that element failed; the element keeps its string
// and the scan continues. A failing call can therefore leave the list
// partially converted. The first element failure is what the call reports.
func ConvertStringsToInts(l *list.List) error {
	if l == nil {
		return list.ErrInvalidArgument
	}
	var firstErr error
	if err := l.ForEach(func(n *list.Node) {
		s, ok := n.Data().(string)
		if !ok {
			if firstErr == nil {
				firstErr = list.ErrInvalidArgument
			}
			return
		}
		v := atoi(s)
		if v == 0 && !strings.HasPrefix(s, "0") {
			if firstErr == nil {
				firstErr = list.ErrInvalidArgument
			}
			return
		}
		n.SetData(v)
	}); err != nil {
		return err
	}
	return firstErr
}

// atoi parses like the classic C conversion: leading whitespace, an
// optional sign, then the digit prefix; zero when no digits lead the text.
func atoi(s string) int {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	var v int
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		v = v*10 + int(s[i]-'0')
		i++
	}
	if neg {
		return -v
	}
	return v
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
