package list

import (
	"fmt"
	"io"

	gotable "github.com/jedib0t/go-pretty/table"
	"github.com/jedib0t/go-pretty/text"
	jsoniter "github.com/json-iterator/go"
)

var jiter = jsoniter.ConfigFastest

// Values snapshots every payload in chain order.
func (l *List) Values(typ DataType) ([]interface{}, error) {
	if l == nil {
		return nil, ErrInvalidArgument
	}
	if !typ.Implemented() {
		return nil, ErrNotImplemented
	}
	var out []interface{}
	for cur := l.head; cur != nil; cur = cur.next {
		out = append(out, cur.data)
	}
	return out, nil
}

// JSON marshals the payload snapshot.
func (l *List) JSON(typ DataType) ([]byte, error) {
	vals, err := l.Values(typ)
	if err != nil {
		return nil, err
	}
	return jiter.Marshal(vals)
}

// DumpTable renders the chain as a table for diagnostics, one row per node
// with its position, rendered payload and successor identity.
func (l *List) DumpTable(w io.Writer, typ DataType) error {
	if l == nil {
		return ErrInvalidArgument
	}
	if !typ.Implemented() {
		return ErrNotImplemented
	}
	tw := gotable.NewWriter()
	style := gotable.StyleDefault
	style.Format.Header = text.FormatDefault
	tw.SetStyle(style)
	tw.SetOutputMirror(w)
	tw.AppendHeader(gotable.Row{"#", "VALUE", "NEXT"})
	idx := 0
	for cur := l.head; cur != nil; cur = cur.next {
		val, err := formatData(cur.data, typ)
		if err != nil {
			return err
		}
		tw.AppendRows([]gotable.Row{{idx, val, fmt.Sprintf("%p", cur.next)}})
		idx++
	}
	tw.Render()
	return nil
}
