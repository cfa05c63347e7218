// Package lineio reads line-oriented console input into list nodes and
// converts string payloads in place.
package lineio

import (
	"bufio"
	"io"
	"os"

	"github.com/serdekh/list/list"
)

// Reader pulls bounded lines off a stream, one at a time. The zero value is
// not usable; build one with NewReader or NewStdinReader.
type Reader struct {
	br *bufio.Reader
}

// NewReader reads from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReader(r)}
}

// NewStdinReader reads from standard input.
func NewStdinReader() *Reader {
	return NewReader(os.Stdin)
}

// ReadLine reads at most bufferSize-1 bytes of the next line into a fresh
// node owning its string payload. A trailing newline is kept in the
// payload; whatever did not fit stays in the stream for the next read. End
// of input with nothing read reports ErrIO.
func (r *Reader) ReadLine(bufferSize int) (*list.Node, error) {
	if r == nil || bufferSize <= 0 {
		return nil, list.ErrInvalidArgument
	}
	buf := make([]byte, 0, bufferSize-1)
	for len(buf) < bufferSize-1 {
		b, err := r.br.ReadByte()
		if err != nil {
			if len(buf) == 0 {
				return nil, list.ErrIO
			}
			break
		}
		buf = append(buf, b)
		if b == '\n' {
			break
		}
	}
	return list.NewNode(string(buf)), nil
}

// ReadLines builds a list of count line payloads in read order. If any read
// fails the partial list is torn down in Strong mode and only the error
// comes back; a partial list never escapes.
func (r *Reader) ReadLines(bufferSize, count int) (*list.List, error) {
	if r == nil || count < 0 {
		return nil, list.ErrInvalidArgument
	}
	l := list.New()
	for i := 0; i < count; i++ {
		n, err := r.ReadLine(bufferSize)
		if err != nil {
			l.Deallocate(list.Strong)
			return nil, err
		}
		if err := l.PushBack(n.Data()); err != nil {
			l.Deallocate(list.Strong)
			return nil, err
		}
	}
	return l, nil
}
