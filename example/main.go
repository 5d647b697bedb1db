package main

import (
	"fmt"

	"github.com/dmitriiantonov/linkedlist"
)

func main() {
	l := linkedlist.From(1, 2, 3)

	c, err := l.CursorMut()
	if err != nil {
		panic(err)
	}

	c.MoveNext() // Now on the first element.
	c.InsertAfter(4)

	if v := c.Current(); v != nil {
		*v *= 10
	}

	c.Close()

	// Prints 10, 4, 2, 3.
	for v := range l.Values() {
		fmt.Println(v)
	}
}
