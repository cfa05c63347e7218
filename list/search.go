package list

// GetByIndex returns the node at index by linear scan. Both an invalid
// handle and an out-of-range index come back as a nil node; only the error
// tells the two apart.
func (l *List) GetByIndex(index int) (*Node, error) {
	if l == nil {
		return nil, ErrInvalidArgument
	}
	i := 0
	for cur := l.head; cur != nil; cur = cur.next {
		if i == index {
			return cur, nil
		}
		i++
	}
	return nil, nil
}

// GetByValue returns the first node whose payload equals value under typ.
// Integer comparison is by value, string comparison is byte-exact; every
// other tag reports ErrNotImplemented.
func (l *List) GetByValue(value interface{}, typ DataType) (*Node, error) {
	if l == nil {
		return nil, ErrInvalidArgument
	}
	switch typ {
	case Int:
		want, ok := value.(int)
		if !ok {
			return nil, ErrInvalidArgument
		}
		for cur := l.head; cur != nil; cur = cur.next {
			if v, ok := cur.data.(int); ok && v == want {
				return cur, nil
			}
		}
	case String:
		want, ok := value.(string)
		if !ok {
			return nil, ErrInvalidArgument
		}
		for cur := l.head; cur != nil; cur = cur.next {
			if v, ok := cur.data.(string); ok && v == want {
				return cur, nil
			}
		}
	default:
		return nil, ErrNotImplemented
	}
	return nil, nil
}

// GetLast walks to the tail node.
func (l *List) GetLast() (*Node, error) {
	if l == nil || l.head == nil {
		return nil, ErrInvalidArgument
	}
	cur := l.head
	for cur.next != nil {
		cur = cur.next
	}
	return cur, nil
}

// MaxInt folds the chain into out, reading every payload as int. Payload
// types are the caller's contract here: a non-int payload panics.
func (l *List) MaxInt(out *int) error {
	if l == nil || l.head == nil || out == nil {
		return ErrInvalidArgument
	}
	max := l.head.data.(int)
	for cur := l.head.next; cur != nil; cur = cur.next {
		if v := cur.data.(int); v > max {
			max = v
		}
	}
	*out = max
	return nil
}

// MinInt is the MaxInt fold with the comparison flipped.
func (l *List) MinInt(out *int) error {
	if l == nil || l.head == nil || out == nil {
		return ErrInvalidArgument
	}
	min := l.head.data.(int)
	for cur := l.head.next; cur != nil; cur = cur.next {
		if v := cur.data.(int); v < min {
			min = v
		}
	}
	*out = min
	return nil
}

// Length counts the nodes by traversal. An invalid handle also reports
// zero; the error return is the only way to tell it from a genuinely empty
// list.
func (l *List) Length() (int, error) {
	if l == nil {
		return 0, ErrInvalidArgument
	}
	var n int
	for cur := l.head; cur != nil; cur = cur.next {
		n++
	}
	return n, nil
}
