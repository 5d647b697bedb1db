package linkedlist_test

import (
	"container/list"
	"testing"

	"github.com/dmitriiantonov/linkedlist"
)

func BenchmarkPushPop(b *testing.B) {
	b.Run("linkedlist", func(b *testing.B) {
		var l linkedlist.List[string]

		b.ReportAllocs()
		b.ResetTimer()

		for range b.N {
			l.PushBack("a")
			l.PopFront()
		}
	})

	b.Run("std list", func(b *testing.B) {
		l := list.New()

		b.ReportAllocs()
		b.ResetTimer()

		for range b.N {
			e := l.PushBack("a")
			l.Remove(e)
		}
	})
}

func BenchmarkIterate(b *testing.B) {
	const size = 1024

	b.Run("linkedlist", func(b *testing.B) {
		var l linkedlist.List[int]
		for i := range size {
			l.PushBack(i)
		}

		b.ReportAllocs()
		b.ResetTimer()

		for range b.N {
			sum := 0
			for v := range l.Values() {
				sum += v
			}
			_ = sum
		}
	})

	b.Run("std list", func(b *testing.B) {
		l := list.New()
		for i := range size {
			l.PushBack(i)
		}

		b.ReportAllocs()
		b.ResetTimer()

		for range b.N {
			sum := 0
			for e := l.Front(); e != nil; e = e.Next() {
				sum += e.Value.(int)
			}
			_ = sum
		}
	})
}
