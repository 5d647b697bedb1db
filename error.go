package linkedlist

import "errors"

// ErrMutatorActive indicates a mutating cursor is already open on the list.
var ErrMutatorActive = errors.New("linkedlist: mutating cursor already active")

// ErrReadersActive indicates read-only views are still open on the list.
var ErrReadersActive = errors.New("linkedlist: read-only views still open")
