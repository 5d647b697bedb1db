/*
Package linkedlist implements a generic doubly linked list with
bidirectional iterators and cursor-based navigation and mutation.
*/
package linkedlist

import "iter"

// List is a doubly linked list.
//
// The zero value is a ready to use empty list.
// A List is single-owner: it is not safe for concurrent use, and at
// most one mutating cursor may be open on it at a time.
type List[T any] struct {
	head, tail *node[T]
	len        int

	// gen counts structural mutations; in-flight sequences use it to
	// fail fast instead of walking freed links.
	gen     uint64
	readers int
	writing bool
}

// New creates an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// From creates a list holding the given values in order.
func From[T any](values ...T) *List[T] {
	l := New[T]()
	for _, v := range values {
		l.pushBack(v)
	}
	return l
}

// Collect creates a list holding the values of seq in order.
func Collect[T any](seq iter.Seq[T]) *List[T] {
	l := New[T]()
	for v := range seq {
		l.pushBack(v)
	}
	return l
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return l.len
}

// IsEmpty reports whether the list contains no elements.
func (l *List[T]) IsEmpty() bool {
	return l.len == 0
}

// PushFront inserts a value at the front of the list.
func (l *List[T]) PushFront(v T) {
	l.checkMutate()
	l.pushFront(v)
}

// PushBack inserts a value at the back of the list.
func (l *List[T]) PushBack(v T) {
	l.checkMutate()
	l.pushBack(v)
}

// PopFront removes and returns the value at the front of the list, or
// an absent result if the list is empty.
func (l *List[T]) PopFront() (T, bool) {
	l.checkMutate()
	return l.popFront()
}

// PopBack removes and returns the value at the back of the list, or an
// absent result if the list is empty.
func (l *List[T]) PopBack() (T, bool) {
	l.checkMutate()
	return l.popBack()
}

// Front returns the value at the front of the list without removing it.
func (l *List[T]) Front() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	return l.head.value, true
}

// Back returns the value at the back of the list without removing it.
func (l *List[T]) Back() (T, bool) {
	if l.tail == nil {
		var zero T
		return zero, false
	}
	return l.tail.value, true
}

// Clear removes every element from the list.
//
// The chain is unlinked with an explicit loop so that arbitrarily long
// lists never grow the stack; every node is detached exactly once and
// its value zeroed so held memory can be reclaimed.
func (l *List[T]) Clear() {
	l.checkMutate()

	n := l.head
	for n != nil {
		next := n.next
		n.next = nil
		n.prev = nil
		var zero T
		n.value = zero
		n = next
	}

	l.head = nil
	l.tail = nil
	l.len = 0
	l.gen++
}

// Cursor returns a read-only cursor positioned at the ghost position.
// It fails with ErrMutatorActive while a mutating cursor is open.
// The cursor must be released with Close.
func (l *List[T]) Cursor() (*Cursor[T], error) {
	if l.writing {
		return nil, ErrMutatorActive
	}
	l.readers++
	return &Cursor[T]{cursor: cursor[T]{list: l}}, nil
}

// CursorMut returns a mutating cursor positioned at the ghost position.
// It fails with ErrMutatorActive if another mutating cursor is open and
// with ErrReadersActive if any read-only view is open.
// The cursor must be released with Close.
func (l *List[T]) CursorMut() (*CursorMut[T], error) {
	if l.writing {
		return nil, ErrMutatorActive
	}
	if l.readers > 0 {
		return nil, ErrReadersActive
	}
	l.writing = true
	return &CursorMut[T]{cursor: cursor[T]{list: l}}, nil
}

func (l *List[T]) pushFront(v T) {
	n := newNode(v)
	if l.head == nil {
		l.tail = n
	} else {
		l.head.prev = n
		n.next = l.head
	}
	l.head = n
	l.len++
	l.gen++
}

func (l *List[T]) pushBack(v T) {
	n := newNode(v)
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
		n.prev = l.tail
	}
	l.tail = n
	l.len++
	l.gen++
}

func (l *List[T]) popFront() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}

	n := l.head
	l.head = n.next
	if l.head == nil {
		l.tail = nil
	} else {
		l.head.prev = nil
	}
	n.next = nil
	l.len--
	l.gen++

	return n.value, true
}

func (l *List[T]) popBack() (T, bool) {
	if l.tail == nil {
		var zero T
		return zero, false
	}

	n := l.tail
	l.tail = n.prev
	if l.tail == nil {
		l.head = nil
	} else {
		l.tail.next = nil
	}
	n.prev = nil
	l.len--
	l.gen++

	return n.value, true
}

// take detaches the entire chain from the list, leaving it empty.
func (l *List[T]) take() (head, tail *node[T], n int) {
	head, tail, n = l.head, l.tail, l.len
	l.head, l.tail, l.len = nil, nil, 0
	l.gen++
	return head, tail, n
}

// appendRun links a detached chain of n nodes at the back of the list.
func (l *List[T]) appendRun(head, tail *node[T], n int) {
	if l.tail == nil {
		l.head, l.tail = head, tail
	} else {
		l.tail.next = head
		head.prev = l.tail
		l.tail = tail
	}
	l.len += n
	l.gen++
}

// prependRun links a detached chain of n nodes at the front of the list.
func (l *List[T]) prependRun(head, tail *node[T], n int) {
	if l.head == nil {
		l.head, l.tail = head, tail
	} else {
		tail.next = l.head
		l.head.prev = tail
		l.head = head
	}
	l.len += n
	l.gen++
}

func (l *List[T]) checkMutate() {
	if l.writing || l.readers > 0 {
		panic("linkedlist: list mutated while a cursor or iterator is open")
	}
}
