package vec_test

import (
	"testing"

	"github.com/rawvec-go/rawvec/pkg/vec"
)

func fill(t *testing.T, xs ...int) *vec.Vector[int] {
	t.Helper()
	v := vec.New[int]()
	for _, x := range xs {
		if err := v.Push(x); err != nil {
			t.Fatal(err)
		}
	}
	return v
}

func TestInsertFront(t *testing.T) {
	v := fill(t, 2, 3)
	if err := v.Insert(0, 1); err != nil {
		t.Fatal(err)
	}
	if !equal(ints(v), []int{1, 2, 3}) {
		t.Errorf("got %v", ints(v))
	}
}

func TestInsertEnd(t *testing.T) {
	v := fill(t, 1, 2)
	if err := v.Insert(2, 3); err != nil {
		t.Fatal(err)
	}
	if !equal(ints(v), []int{1, 2, 3}) {
		t.Errorf("got %v", ints(v))
	}
}

func TestInsertIntoEmpty(t *testing.T) {
	v := vec.New[int]()
	if err := v.Insert(0, 42); err != nil {
		t.Fatal(err)
	}
	if !equal(ints(v), []int{42}) || v.Cap() != 1 {
		t.Errorf("got %v cap=%d", ints(v), v.Cap())
	}
}

func TestInsertInPlace(t *testing.T) {
	// With spare capacity the insert must not reallocate.
	v := fill(t, 1, 2, 4)
	if err := v.Reserve(8); err != nil {
		t.Fatal(err)
	}
	addr := v.At(0)

	if err := v.Insert(2, 3); err != nil {
		t.Fatal(err)
	}
	if !equal(ints(v), []int{1, 2, 3, 4}) {
		t.Errorf("got %v", ints(v))
	}
	if v.At(0) != addr {
		t.Error("in-place insert reallocated")
	}
}

func TestInsertGrowPath(t *testing.T) {
	// Fill to exactly capacity so the insert must reallocate.
	v := fill(t, 1, 2, 4, 5)
	if v.Len() != v.Cap() {
		t.Fatalf("precondition: len %d != cap %d", v.Len(), v.Cap())
	}

	if err := v.Insert(2, 3); err != nil {
		t.Fatal(err)
	}
	if !equal(ints(v), []int{1, 2, 3, 4, 5}) {
		t.Errorf("got %v", ints(v))
	}
	if v.Cap() != 8 {
		t.Errorf("expected doubled capacity 8, got %d", v.Cap())
	}
}

func TestEmplaceReturnsAddress(t *testing.T) {
	v := fill(t, 1, 3)
	p, err := v.Emplace(1, func() (int, error) { return 2, nil })
	if err != nil {
		t.Fatal(err)
	}
	if *p != 2 || p != v.At(1) {
		t.Error("emplace returned the wrong address")
	}
}

func TestEmplaceInvalidPositionPanics(t *testing.T) {
	v := fill(t, 1)
	defer func() {
		if recover() == nil {
			t.Error("expected panic on invalid insert position")
		}
	}()
	_, _ = v.Emplace(5, func() (int, error) { return 0, nil })
}

func TestEraseMiddle(t *testing.T) {
	v := fill(t, 1, 2, 3, 4)
	if err := v.Erase(1); err != nil {
		t.Fatal(err)
	}
	if !equal(ints(v), []int{1, 3, 4}) {
		t.Errorf("got %v", ints(v))
	}
}

func TestEraseFirst(t *testing.T) {
	v := fill(t, 1, 2, 3)
	if err := v.Erase(0); err != nil {
		t.Fatal(err)
	}
	if !equal(ints(v), []int{2, 3}) {
		t.Errorf("got %v", ints(v))
	}
}

func TestEraseLast(t *testing.T) {
	v := fill(t, 1, 2, 3)
	capBefore := v.Cap()
	if err := v.Erase(2); err != nil {
		t.Fatal(err)
	}
	if !equal(ints(v), []int{1, 2}) || v.Cap() != capBefore {
		t.Errorf("got %v cap=%d", ints(v), v.Cap())
	}
}

func TestEraseToEmpty(t *testing.T) {
	v := fill(t, 1)
	if err := v.Erase(0); err != nil {
		t.Fatal(err)
	}
	if v.Len() != 0 {
		t.Errorf("len=%d", v.Len())
	}
}

// TestCanonicalScenario pins the walkthrough: five appends, an erase at 2,
// then an insert at 1.
func TestCanonicalScenario(t *testing.T) {
	v := fill(t, 10, 20, 30, 40, 50)
	if v.Len() != 5 || v.Cap() != 8 {
		t.Fatalf("after appends: len=%d cap=%d", v.Len(), v.Cap())
	}

	if err := v.Erase(2); err != nil {
		t.Fatal(err)
	}
	if !equal(ints(v), []int{10, 20, 40, 50}) {
		t.Fatalf("after erase: %v", ints(v))
	}

	if err := v.Insert(1, 99); err != nil {
		t.Fatal(err)
	}
	if !equal(ints(v), []int{10, 99, 20, 40, 50}) {
		t.Fatalf("after insert: %v", ints(v))
	}
}

func TestInsertCloneDoesNotAlias(t *testing.T) {
	v := fill(t, 1, 3)
	x := 2
	if err := v.InsertClone(1, &x); err != nil {
		t.Fatal(err)
	}
	x = 99
	if !equal(ints(v), []int{1, 2, 3}) {
		t.Errorf("got %v", ints(v))
	}
}
