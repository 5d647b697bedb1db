package linkedlist

import "iter"

// Values returns a forward sequence over the list's values, front to
// back.
//
// The sequence is fail-fast: it panics if the list is structurally
// mutated while iteration is in progress.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		gen := l.gen
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
			// Checked after yield returns so that a mutation which
			// detaches the yielded node itself cannot end the walk
			// silently through its zeroed links.
			if l.gen != gen {
				panic("linkedlist: list mutated during iteration")
			}
		}
	}
}

// Backward returns a backward sequence over the list's values, back to
// front.
//
// The sequence is fail-fast: it panics if the list is structurally
// mutated while iteration is in progress.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		gen := l.gen
		for n := l.tail; n != nil; n = n.prev {
			if !yield(n.value) {
				return
			}
			if l.gen != gen {
				panic("linkedlist: list mutated during iteration")
			}
		}
	}
}

// Drain returns a consuming sequence: each step removes the front
// element and yields its value. Stopping early leaves the remaining
// elements in the list.
//
// A running drain is a mutating view: acquiring any cursor or iterator
// from inside the loop fails with ErrMutatorActive.
func (l *List[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		l.checkMutate()
		l.writing = true
		defer func() {
			l.writing = false
		}()
		for {
			v, ok := l.popFront()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Iter is a double-ended iterator over a list.
//
// Next and NextBack consume values from opposite ends and converge:
// once the remaining count reaches zero, both ends report exhaustion.
// An exhausted iterator stays exhausted; obtain a fresh one to iterate
// again. An Iter counts as an open read-only view and must be released
// with Close.
type Iter[T any] struct {
	list        *List[T]
	front, back *node[T]
	remaining   int
	closed      bool
}

// Iter returns a double-ended iterator over the list's values. It fails
// with ErrMutatorActive while a mutating cursor is open. The iterator
// must be released with Close.
func (l *List[T]) Iter() (*Iter[T], error) {
	if l.writing {
		return nil, ErrMutatorActive
	}
	l.readers++
	return &Iter[T]{
		list:      l,
		front:     l.head,
		back:      l.tail,
		remaining: l.len,
	}, nil
}

func (it *Iter[T]) check() {
	if it.closed {
		panic("linkedlist: use of closed iterator")
	}
}

// Next returns the next value from the front end, or an absent result
// when the iterator is exhausted.
func (it *Iter[T]) Next() (T, bool) {
	it.check()
	if it.remaining == 0 {
		var zero T
		return zero, false
	}
	n := it.front
	it.front = n.next
	it.remaining--
	return n.value, true
}

// NextBack returns the next value from the back end, or an absent
// result when the iterator is exhausted.
func (it *Iter[T]) NextBack() (T, bool) {
	it.check()
	if it.remaining == 0 {
		var zero T
		return zero, false
	}
	n := it.back
	it.back = n.prev
	it.remaining--
	return n.value, true
}

// Len returns the number of values not yet produced.
func (it *Iter[T]) Len() int {
	return it.remaining
}

// Close releases the iterator's view of the list.
// Closing twice is a no-op; any other use after Close panics.
func (it *Iter[T]) Close() {
	if !it.closed {
		it.closed = true
		it.list.readers--
	}
}
