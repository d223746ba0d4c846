package collection_test

import (
	"strings"
	"testing"

	"github.com/bitebasket/bitebasket/pkg/collection"
)

func TestMap(t *testing.T) {
	got := collection.Map([]string{"a", "b"}, strings.ToUpper)
	if len(got) != 2 || got[0] != "A" || got[1] != "B" {
		t.Errorf("unexpected result: %v", got)
	}
}

func TestFilter(t *testing.T) {
	got := collection.Filter([]int{1, 2, 3, 4}, func(n int) bool { return n%2 == 0 })
	if len(got) != 2 || got[0] != 2 || got[1] != 4 {
		t.Errorf("unexpected result: %v", got)
	}
}

func TestFirst(t *testing.T) {
	v, ok := collection.First([]int{1, 2, 3}, func(n int) bool { return n > 1 })
	if !ok || v != 2 {
		t.Errorf("expected 2, got %d (ok=%v)", v, ok)
	}

	_, ok = collection.First([]int{1}, func(n int) bool { return n > 5 })
	if ok {
		t.Error("expected no match")
	}
}

func TestContains(t *testing.T) {
	foods := []string{"pizza", "burger"}
	if !collection.Contains(foods, func(s string) bool { return s == "burger" }) {
		t.Error("expected burger to be found")
	}
	if collection.Contains(foods, func(s string) bool { return s == "sushi" }) {
		t.Error("expected sushi to be missing")
	}
}

func TestReduce(t *testing.T) {
	got := collection.Reduce([]int{1, 2, 3}, 0, func(acc, n int) int { return acc + n })
	if got != 6 {
		t.Errorf("expected 6, got %d", got)
	}
}

func TestSum(t *testing.T) {
	type line struct {
		price float64
		qty   int
	}
	items := []line{{9.99, 2}, {4.50, 1}}

	got := collection.Sum(items, func(l line) float64 { return l.price * float64(l.qty) })
	if diff := got - 24.48; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("expected 24.48, got %v", got)
	}
}
