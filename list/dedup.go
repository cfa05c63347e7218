package list

// RemoveDuplicate scans all ordered pairs and removes the later occurrence
// of the first pair holding equal values, then stops: one call drops at
// most one node. Only Int equality is implemented; other tags report
// ErrNotImplemented and remove nothing.
func (l *List) RemoveDuplicate(mode DeallocMode, typ DataType) (bool, error) {
	if l == nil {
		return false, ErrInvalidArgument
	}
	if typ != Int {
		return false, ErrNotImplemented
	}
	for i := l.head; i != nil; i = i.next {
		want := i.data.(int)
		prev := i
		for j := i.next; j != nil; j = j.next {
			if j.data.(int) == want {
				prev.next = j.next
				l.ReleaseNode(j, mode)
				return true, nil
			}
			prev = j
		}
	}
	return false, nil
}

// RemoveDuplicates collapses every value to its first occurrence by calling
// RemoveDuplicate until nothing more is found. Quadratic scans repeated per
// removal; fine at this library's scale.
func (l *List) RemoveDuplicates(mode DeallocMode, typ DataType) error {
	for {
		removed, err := l.RemoveDuplicate(mode, typ)
		if err != nil {
			return err
		}
		if !removed {
			return nil
		}
	}
}
