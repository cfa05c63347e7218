package list

// PushBack appends a new node carrying data, walking to the current tail.
// An empty list gets the node as its head.
func (l *List) PushBack(data interface{}) error {
	if l == nil {
		return ErrInvalidArgument
	}
	n := NewNode(data)
	if l.head == nil {
		l.head = n
		return nil
	}
	last := l.head
	for last.next != nil {
		last = last.next
	}
	last.next = n
	return nil
}

// PushFront prepends a new node carrying data.
func (l *List) PushFront(data interface{}) error {
	if l == nil {
		return ErrInvalidArgument
	}
	n := NewNode(data)
	n.next = l.head
	l.head = n
	return nil
}

// PushByIndex inserts so the new node becomes the element at index,
// shifting the former occupant and its successors back by one. Index zero
// on an empty list behaves like PushFront. The node is built before the
// position is resolved; when the position does not exist the node is
// released in Weak mode, so the payload always stays with the caller on
// failure.
func (l *List) PushByIndex(data interface{}, index int) error {
	if l == nil || index < 0 {
		return ErrInvalidArgument
	}
	n := NewNode(data)
	if index == 0 {
		n.next = l.head
		l.head = n
		return nil
	}
	prev := l.head
	for i := 1; i < index && prev != nil; i++ {
		prev = prev.next
	}
	if prev == nil {
		l.ReleaseNode(n, Weak)
		return ErrPositionNotFound
	}
	n.next = prev.next
	prev.next = n
	return nil
}

// PopBack removes and releases the tail node under mode.
func (l *List) PopBack(mode DeallocMode) error {
	if l == nil || l.head == nil {
		return ErrInvalidArgument
	}
	if l.head.next == nil {
		n := l.head
		l.head = nil
		return l.ReleaseNode(n, mode)
	}
	prev := l.head
	cur := prev.next
	for cur.next != nil {
		prev = cur
		cur = cur.next
	}
	prev.next = nil
	return l.ReleaseNode(cur, mode)
}

// PopFront removes and releases the head node under mode, promoting its
// successor.
func (l *List) PopFront(mode DeallocMode) error {
	if l == nil || l.head == nil {
		return ErrInvalidArgument
	}
	n := l.head
	l.head = n.next
	return l.ReleaseNode(n, mode)
}

// PopByIndex removes the element at index; index zero delegates to
// PopFront. A position past the tail is plain failure, no error kind is
// reported.
func (l *List) PopByIndex(mode DeallocMode, index int) bool {
	if l == nil || l.head == nil || index < 0 {
		return false
	}
	if index == 0 {
		return l.PopFront(mode) == nil
	}
	prev := l.head
	for i := 1; i < index && prev != nil; i++ {
		prev = prev.next
	}
	if prev == nil || prev.next == nil {
		return false
	}
	n := prev.next
	prev.next = n.next
	l.ReleaseNode(n, mode)
	return true
}
