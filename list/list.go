package list

// List owns a chain of nodes through its head reference. Length and tail
// are derived by traversal, which keeps front operations O(1) at the cost
// of O(n) back and index operations. A List assumes one exclusive owner; it
// carries no locking and must not be shared across goroutines.
type List struct {
	head *Node
	free func(interface{})
}

// New creates an empty list.
func New() *List {
	return &List{}
}

// SetFreeMethod registers fn to run on a payload released in Strong mode.
// Without it a Strong release just drops the payload reference.
func (l *List) SetFreeMethod(fn func(interface{})) {
	if l == nil {
		return
	}
	l.free = fn
}

// Head returns the first node, nil when the list is empty.
func (l *List) Head() *Node {
	if l == nil {
		return nil
	}
	return l.head
}

// ReleaseNode destroys n under mode. Strong mode releases a non-nil payload
// first; both modes zero the node so a retained reference is inert
// afterwards. Releasing a nil node is a no-op success, a payload is
// released at most once.
func (l *List) ReleaseNode(n *Node, mode DeallocMode) error {
	if l == nil {
		return ErrInvalidArgument
	}
	if n == nil {
		return nil
	}
	if mode == Strong && n.data != nil {
		if l.free != nil {
			l.free(n.data)
		}
		n.data = nil
	}
	n.next = nil
	return nil
}

// Deallocate tears the whole chain down by popping the front until the list
// is empty. Safe to call on an already empty list.
func (l *List) Deallocate(mode DeallocMode) error {
	if l == nil {
		return ErrInvalidArgument
	}
	for l.head != nil {
		if err := l.PopFront(mode); err != nil {
			return err
		}
	}
	return nil
}
