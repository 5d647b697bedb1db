package linkedlist

// cursor is the navigation state shared by Cursor and CursorMut.
//
// The position is either a node or the ghost position (nil current):
// the single virtual slot between the back and the front of the list.
// For navigation the list is logically circular, so a full lap visits
// every element plus the ghost stop exactly once.
type cursor[T any] struct {
	list    *List[T]
	current *node[T]
	index   int
}

// moveNext advances to the next position. From the ghost position it
// moves to the front element, and from the back element to the ghost
// position. On an empty list it stays at the ghost position.
func (c *cursor[T]) moveNext() {
	if c.current == nil {
		c.current = c.list.head
		c.index = 0
		return
	}
	c.current = c.current.next
	c.index++
}

// movePrev advances to the previous position, the mirror of moveNext.
func (c *cursor[T]) movePrev() {
	if c.current == nil {
		c.current = c.list.tail
		if c.list.len > 0 {
			c.index = c.list.len - 1
		}
		return
	}
	c.current = c.current.prev
	if c.index > 0 {
		c.index--
	}
}

// nextNode returns the node after the current position without moving.
func (c *cursor[T]) nextNode() *node[T] {
	if c.current == nil {
		return c.list.head
	}
	return c.current.next
}

// prevNode returns the node before the current position without moving.
func (c *cursor[T]) prevNode() *node[T] {
	if c.current == nil {
		return c.list.tail
	}
	return c.current.prev
}

// Cursor is a read-only cursor over a list.
//
// A new cursor starts at the ghost position; the first MoveNext lands
// on the front element. Any number of read-only cursors may be open at
// once, but never together with a mutating cursor.
type Cursor[T any] struct {
	cursor[T]
	closed bool
}

func (c *Cursor[T]) check() {
	if c.closed {
		panic("linkedlist: use of closed cursor")
	}
}

// MoveNext moves the cursor to the next position.
func (c *Cursor[T]) MoveNext() {
	c.check()
	c.moveNext()
}

// MovePrev moves the cursor to the previous position.
func (c *Cursor[T]) MovePrev() {
	c.check()
	c.movePrev()
}

// Current returns the value at the current position, or an absent
// result at the ghost position.
func (c *Cursor[T]) Current() (T, bool) {
	c.check()
	if c.current == nil {
		var zero T
		return zero, false
	}
	return c.current.value, true
}

// PeekNext returns the value after the current position without moving
// the cursor.
func (c *Cursor[T]) PeekNext() (T, bool) {
	c.check()
	if n := c.nextNode(); n != nil {
		return n.value, true
	}
	var zero T
	return zero, false
}

// PeekPrev returns the value before the current position without moving
// the cursor.
func (c *Cursor[T]) PeekPrev() (T, bool) {
	c.check()
	if n := c.prevNode(); n != nil {
		return n.value, true
	}
	var zero T
	return zero, false
}

// Index returns the position of the current element counted from the
// front, or an absent result at the ghost position.
func (c *Cursor[T]) Index() (int, bool) {
	c.check()
	if c.current == nil {
		return 0, false
	}
	return c.index, true
}

// Close releases the cursor's view of the list.
// Closing twice is a no-op; any other use after Close panics.
func (c *Cursor[T]) Close() {
	if !c.closed {
		c.closed = true
		c.list.readers--
	}
}

// CursorMut is a mutating cursor over a list.
//
// A new cursor starts at the ghost position. At most one mutating
// cursor may be open on a list at a time, and never together with
// read-only views.
type CursorMut[T any] struct {
	cursor[T]
	closed bool
}

func (c *CursorMut[T]) check() {
	if c.closed {
		panic("linkedlist: use of closed cursor")
	}
}

// MoveNext moves the cursor to the next position.
func (c *CursorMut[T]) MoveNext() {
	c.check()
	c.moveNext()
}

// MovePrev moves the cursor to the previous position.
func (c *CursorMut[T]) MovePrev() {
	c.check()
	c.movePrev()
}

// Current returns a pointer to the value at the current position for
// reading or in-place update, or nil at the ghost position. The pointer
// is valid until the node is removed.
func (c *CursorMut[T]) Current() *T {
	c.check()
	if c.current == nil {
		return nil
	}
	return &c.current.value
}

// PeekNext returns a pointer to the value after the current position
// without moving the cursor, or nil if there is none.
func (c *CursorMut[T]) PeekNext() *T {
	c.check()
	if n := c.nextNode(); n != nil {
		return &n.value
	}
	return nil
}

// PeekPrev returns a pointer to the value before the current position
// without moving the cursor, or nil if there is none.
func (c *CursorMut[T]) PeekPrev() *T {
	c.check()
	if n := c.prevNode(); n != nil {
		return &n.value
	}
	return nil
}

// Index returns the position of the current element counted from the
// front, or an absent result at the ghost position.
func (c *CursorMut[T]) Index() (int, bool) {
	c.check()
	if c.current == nil {
		return 0, false
	}
	return c.index, true
}

// InsertBefore inserts a value before the current position. The cursor
// stays on its element. At the ghost position it is equivalent to
// PushBack.
func (c *CursorMut[T]) InsertBefore(v T) {
	c.check()
	switch {
	case c.current == nil:
		c.list.pushBack(v)

	case c.current.prev == nil:
		c.list.pushFront(v)
		c.index++

	default:
		n := newNode(v)
		prev := c.current.prev
		prev.next = n
		n.prev = prev
		n.next = c.current
		c.current.prev = n
		c.list.len++
		c.list.gen++
		c.index++
	}
}

// InsertAfter inserts a value after the current position. The cursor
// stays on its element. At the ghost position it is equivalent to
// PushFront.
func (c *CursorMut[T]) InsertAfter(v T) {
	c.check()
	switch {
	case c.current == nil:
		c.list.pushFront(v)

	case c.current.next == nil:
		c.list.pushBack(v)

	default:
		n := newNode(v)
		next := c.current.next
		c.current.next = n
		n.prev = c.current
		n.next = next
		next.prev = n
		c.list.len++
		c.list.gen++
	}
}

// RemoveCurrent detaches the node at the current position and returns
// its value. The cursor moves to the next element, or to the ghost
// position if the removed node was the last one. At the ghost position
// it returns an absent result and leaves the list unchanged.
func (c *CursorMut[T]) RemoveCurrent() (T, bool) {
	c.check()
	if c.current == nil {
		var zero T
		return zero, false
	}

	n := c.current
	prev, next := n.prev, n.next

	if prev == nil {
		c.list.head = next
	} else {
		prev.next = next
	}
	if next == nil {
		c.list.tail = prev
	} else {
		next.prev = prev
	}

	n.next = nil
	n.prev = nil
	c.list.len--
	c.list.gen++

	// next now occupies the removed element's index.
	c.current = next

	return n.value, true
}

// SpliceBefore moves every element of other into the list before the
// current position, in order, leaving other valid and empty. O(1), no
// nodes are reallocated. At the ghost position the elements land at the
// back of the list. Splicing an empty list, or the list into itself, is
// a no-op.
func (c *CursorMut[T]) SpliceBefore(other *List[T]) {
	c.check()
	if other == c.list || other.len == 0 {
		return
	}
	other.checkMutate()

	head, tail, n := other.take()

	switch {
	case c.current == nil:
		c.list.appendRun(head, tail, n)

	case c.current.prev == nil:
		c.list.prependRun(head, tail, n)
		c.index += n

	default:
		prev := c.current.prev
		prev.next = head
		head.prev = prev
		tail.next = c.current
		c.current.prev = tail
		c.list.len += n
		c.list.gen++
		c.index += n
	}
}

// SpliceAfter moves every element of other into the list after the
// current position, in order, leaving other valid and empty. O(1), no
// nodes are reallocated. At the ghost position the elements land at the
// front of the list. Splicing an empty list, or the list into itself,
// is a no-op.
func (c *CursorMut[T]) SpliceAfter(other *List[T]) {
	c.check()
	if other == c.list || other.len == 0 {
		return
	}
	other.checkMutate()

	head, tail, n := other.take()

	switch {
	case c.current == nil:
		c.list.prependRun(head, tail, n)

	case c.current.next == nil:
		c.list.appendRun(head, tail, n)

	default:
		next := c.current.next
		c.current.next = head
		head.prev = c.current
		tail.next = next
		next.prev = tail
		c.list.len += n
		c.list.gen++
	}
}

// SplitBefore detaches every element before the current one into a new
// list and returns it. The current element stays put and becomes the
// front of the remaining list. At the ghost position the entire
// contents move to the returned list.
func (c *CursorMut[T]) SplitBefore() *List[T] {
	c.check()

	out := New[T]()

	if c.current == nil {
		out.head, out.tail, out.len = c.list.take()
		c.index = 0
		return out
	}

	if c.current.prev == nil {
		return out
	}

	head := c.list.head
	tail := c.current.prev
	tail.next = nil
	c.current.prev = nil
	c.list.head = c.current

	out.head, out.tail = head, tail
	out.len = c.index
	c.list.len -= c.index
	c.list.gen++
	c.index = 0

	return out
}

// SplitAfter detaches every element after the current one into a new
// list and returns it. The current element stays put and becomes the
// back of the remaining list. At the ghost position the entire contents
// move to the returned list.
func (c *CursorMut[T]) SplitAfter() *List[T] {
	c.check()

	out := New[T]()

	if c.current == nil {
		out.head, out.tail, out.len = c.list.take()
		c.index = 0
		return out
	}

	if c.current.next == nil {
		return out
	}

	head := c.current.next
	tail := c.list.tail
	c.current.next = nil
	head.prev = nil
	c.list.tail = c.current

	out.head, out.tail = head, tail
	out.len = c.list.len - c.index - 1
	c.list.len = c.index + 1
	c.list.gen++

	return out
}

// Close releases the cursor's view of the list.
// Closing twice is a no-op; any other use after Close panics.
func (c *CursorMut[T]) Close() {
	if !c.closed {
		c.closed = true
		c.list.writing = false
	}
}
