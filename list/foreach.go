package list

// ForEach applies action to every node in order, head to tail. The action
// may read or replace payloads but must not relink the chain; there is no
// early stop.
func (l *List) ForEach(action func(*Node)) error {
	if l == nil || action == nil {
		return ErrInvalidArgument
	}
	for cur := l.head; cur != nil; cur = cur.next {
		action(cur)
	}
	return nil
}
