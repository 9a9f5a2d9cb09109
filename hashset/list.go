package hashset

// listNode is one key in the insertion order list.
type listNode[K any] struct {
	prev  *listNode[K]
	next  *listNode[K]
	value K
}

// orderList keeps every key of a set in insertion order. Head is the
// oldest key, tail the newest.
type orderList[K any] struct {
	head   *listNode[K]
	tail   *listNode[K]
	length int
}

// empty the list
func (l *orderList[K]) empty() {
	l.head, l.tail = nil, nil
	l.length = 0
}

func (l *orderList[K]) addTail(value K) *listNode[K] {
	node := &listNode[K]{value: value}
	if l.tail == nil {
		l.head, l.tail = node, node
	} else {
		node.prev, l.tail.next, l.tail = l.tail, node, node
	}
	l.length++
	return node
}

// remove unlinks a node from the list
func (l *orderList[K]) remove(node *listNode[K]) {
	if node.prev != nil {
		node.prev.next = node.next
	} else {
		l.head = node.next
	}
	if node.next != nil {
		node.next.prev = node.prev
	} else {
		l.tail = node.prev
	}
	node.next, node.prev = nil, nil
	l.length--
}

func (l *orderList[K]) len() int {
	return l.length
}
