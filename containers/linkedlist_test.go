package containers_test

import (
	"testing"

	"github.com/hasbyte1/go-collections/containers"
	"github.com/hasbyte1/go-collections/iterate"
)

func TestLinkedListOrder(t *testing.T) {
	l := containers.NewLinkedList(1, 2, 3)
	assertSlice(t, l.ToSlice(), []int{1, 2, 3})
	if l.Count() != 3 {
		t.Fatalf("Count = %d; want 3", l.Count())
	}
}

func TestLinkedListAppendPrepend(t *testing.T) {
	l := containers.NewLinkedList(3)
	l.Append(4, 5)
	l.Prepend(1, 2)
	assertSlice(t, l.ToSlice(), []int{1, 2, 3, 4, 5})
	if v, _ := l.First(); v != 1 {
		t.Fatal("First after Prepend failed")
	}
	if v, _ := l.Last(); v != 5 {
		t.Fatal("Last after Append failed")
	}
}

func TestLinkedListRemoveFirst(t *testing.T) {
	l := containers.NewLinkedList("a", "b")
	v, ok := l.RemoveFirst()
	if !ok || v != "a" {
		t.Fatalf("RemoveFirst = %v, %v; want a, true", v, ok)
	}
	v, ok = l.RemoveFirst()
	if !ok || v != "b" {
		t.Fatalf("RemoveFirst = %v, %v; want b, true", v, ok)
	}
	if _, ok := l.RemoveFirst(); ok {
		t.Fatal("RemoveFirst on empty should report false")
	}
	if _, ok := l.Last(); ok {
		t.Fatal("Last on drained list should report false")
	}
	l.Append("c") // tail must be rebuilt after draining
	assertSlice(t, l.ToSlice(), []string{"c"})
}

func TestLinkedListClear(t *testing.T) {
	l := containers.NewLinkedList(1, 2)
	l.Clear()
	if !l.IsEmpty() {
		t.Fatal("Clear should empty the list")
	}
	l.Add(7)
	assertSlice(t, l.ToSlice(), []int{7})
}

func TestLinkedListEach(t *testing.T) {
	var idxSum, valSum int
	containers.NewLinkedList(10, 20, 30).Each(func(v, i int) {
		idxSum += i
		valSum += v
	})
	if idxSum != 3 || valSum != 60 {
		t.Fatalf("Each sums = %d, %d; want 3, 60", idxSum, valSum)
	}
}

func TestLinkedListIterator(t *testing.T) {
	l := containers.NewLinkedList(1, 2, 3)
	assertSlice(t, iterate.Collect(l.Iterator()), []int{1, 2, 3})
	if got := iterate.Sum(l.Elements()); got != 6 {
		t.Fatalf("Sum over linked list = %d; want 6", got)
	}
}
