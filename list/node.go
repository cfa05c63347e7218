package list

// Node is a single chain element: a type-erased payload slot and a
// reference to the next node, nil at the tail. Whether the payload belongs
// to the list is decided by the operation that removes the node, not by the
// node itself.
type Node struct {
	data interface{}
	next *Node
}

// NewNode builds a detached node carrying data.
func NewNode(data interface{}) *Node {
	return &Node{data: data}
}

// Data returns the payload slot.
func (n *Node) Data() interface{} {
	if n == nil {
		return nil
	}
	return n.data
}

// SetData replaces the payload slot.
func (n *Node) SetData(data interface{}) {
	n.data = data
}

// Next returns the successor node, nil at the tail.
func (n *Node) Next() *Node {
	if n == nil {
		return nil
	}
	return n.next
}
