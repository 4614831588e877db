package minheap

import (
	"math/rand"
	"testing"

	"github.com/pkg/errors"
)

func TestQueue_Empty(t *testing.T) {
	q := New[int, int]()

	if !q.IsEmpty() {
		t.Errorf("expected empty queue")
	}
	if actual := q.Len(); actual != 0 {
		t.Errorf("wrong length:\n\texpect: 0\n\tactual: %d", actual)
	}
	if actual := len(q.Values()); actual != 0 {
		t.Errorf("wrong number of values:\n\texpect: 0\n\tactual: %d", actual)
	}

	if _, err := q.Peek(); !errors.Is(err, ErrEmptyCollection) {
		t.Errorf("Peek: expected ErrEmptyCollection, got %v", err)
	}
	if _, err := q.ExtractMin(); !errors.Is(err, ErrEmptyCollection) {
		t.Errorf("ExtractMin: expected ErrEmptyCollection, got %v", err)
	}

	if err := q.Insert(2, 3); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if q.IsEmpty() {
		t.Errorf("expected non-empty queue")
	}
	if _, found := q.Values()[3]; !found {
		t.Errorf("expected Values() to contain 3")
	}
}

func TestQueue_InsertDuplicateValue(t *testing.T) {
	q := New[int, int]()
	if err := q.Insert(2, 3); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if err := q.Insert(7, 3); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
	if actual := q.Len(); actual != 1 {
		t.Errorf("rejected Insert changed the queue: length %d", actual)
	}
}

func TestQueue_InsertNilKey(t *testing.T) {
	q := NewFunc[*int, string](func(a, b *int) int { return *a - *b })
	two := 2
	if err := q.Insert(&two, "x"); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if err := q.Insert(nil, "y"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
	if q.ContainsValue("y") {
		t.Errorf("rejected Insert left its value behind")
	}
}

func TestQueue_Tie(t *testing.T) {
	q := New[int, int]()
	_ = q.Insert(2, 3)
	_ = q.Insert(2, 0)

	v, err := q.ExtractMin()
	if err != nil {
		t.Fatalf("ExtractMin failed: %v", err)
	}
	if v != 0 && v != 3 {
		t.Errorf("unexpected value %d", v)
	}
	if actual := q.Len(); actual != 1 {
		t.Errorf("wrong length:\n\texpect: 1\n\tactual: %d", actual)
	}
	if q.ContainsValue(v) {
		t.Errorf("extracted value %d still held", v)
	}
}

func TestQueue_Order(t *testing.T) {
	type testRow struct {
		name   string
		keys   []int
		values []int
		expect []int
	}

	testData := [...]testRow{
		{
			name:   "three",
			keys:   []int{2, 1, 3},
			values: []int{3, 0, 10},
			expect: []int{0, 3, 10},
		},
		{
			name:   "six",
			keys:   []int{2, 1, 3, 6, 5, 4},
			values: []int{3, 0, 10, 6, 5, 4},
			expect: []int{0, 3, 10, 4, 5, 6},
		},
		{
			name:   "backward",
			keys:   []int{6, 5, 4, 3, 2, 1},
			values: []int{6, 5, 4, 3, 2, 1},
			expect: []int{1, 2, 3, 4, 5, 6},
		},
	}

	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			q := New[int, int]()
			for i := range row.keys {
				if err := q.Insert(row.keys[i], row.values[i]); err != nil {
					t.Fatalf("Insert(%d, %d) failed: %v", row.keys[i], row.values[i], err)
				}
			}
			if actual := q.Len(); actual != len(row.keys) {
				t.Errorf("wrong length:\n\texpect: %d\n\tactual: %d", len(row.keys), actual)
			}
			for _, expect := range row.expect {
				peeked, err := q.Peek()
				if err != nil {
					t.Fatalf("Peek failed: %v", err)
				}
				actual, err := q.ExtractMin()
				if err != nil {
					t.Fatalf("ExtractMin failed: %v", err)
				}
				if peeked != actual {
					t.Errorf("Peek returned %d but ExtractMin returned %d", peeked, actual)
				}
				if expect != actual {
					t.Errorf("wrong value:\n\texpect: %d\n\tactual: %d", expect, actual)
				}
				if q.ContainsValue(actual) {
					t.Errorf("extracted value %d still held", actual)
				}
			}
			if !q.IsEmpty() {
				t.Errorf("expected empty queue")
			}
		})
	}
}

func TestQueue_PeekTracksMinimum(t *testing.T) {
	q := New[int, int]()

	steps := []struct {
		key, value, peek int
	}{
		{2, 2, 2},
		{5, 5, 2},
		{4, 4, 2},
		{4, 0, 2},
		{3, 3, 2},
		{1, 1, 1},
	}
	for _, step := range steps {
		if err := q.Insert(step.key, step.value); err != nil {
			t.Fatalf("Insert(%d, %d) failed: %v", step.key, step.value, err)
		}
		actual, err := q.Peek()
		if err != nil {
			t.Fatalf("Peek failed: %v", err)
		}
		if actual != step.peek {
			t.Errorf("after Insert(%d, %d): wrong Peek:\n\texpect: %d\n\tactual: %d", step.key, step.value, step.peek, actual)
		}
	}

	for _, expect := range []int{1, 2, 3} {
		actual, _ := q.ExtractMin()
		if expect != actual {
			t.Errorf("wrong value:\n\texpect: %d\n\tactual: %d", expect, actual)
		}
	}

	// keys 4 and 4 tie; either value may come first.
	first, _ := q.ExtractMin()
	second, _ := q.ExtractMin()
	if !(first == 0 && second == 4) && !(first == 4 && second == 0) {
		t.Errorf("wrong tied values: %d, %d", first, second)
	}

	last, _ := q.ExtractMin()
	if last != 5 {
		t.Errorf("wrong value:\n\texpect: 5\n\tactual: %d", last)
	}
}

func TestQueue_EntryKeys(t *testing.T) {
	q := New[string, int]()
	_ = q.Insert("b", 2)
	_ = q.Insert("a", 1)

	e, err := q.PeekEntry()
	if err != nil {
		t.Fatalf("PeekEntry failed: %v", err)
	}
	if e.Key != "a" || e.Value != 1 {
		t.Errorf("wrong entry: %+v", e)
	}

	e, err = q.ExtractMinEntry()
	if err != nil {
		t.Fatalf("ExtractMinEntry failed: %v", err)
	}
	if e.Key != "a" || e.Value != 1 {
		t.Errorf("wrong entry: %+v", e)
	}
}

func TestQueue_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	q := New[int, int]()

	const n = 500
	for value := 0; value < n; value++ {
		if err := q.Insert(rng.Intn(50), value); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
		if actual := len(q.Values()); actual != q.Len() {
			t.Fatalf("len(Values()) %d != Len() %d", actual, q.Len())
		}
	}

	lastKey := -1
	for !q.IsEmpty() {
		e, err := q.ExtractMinEntry()
		if err != nil {
			t.Fatalf("ExtractMinEntry failed: %v", err)
		}
		if e.Key < lastKey {
			t.Fatalf("keys out of order: %d after %d", e.Key, lastKey)
		}
		lastKey = e.Key
		if len(q.Values()) != q.Len() {
			t.Fatalf("len(Values()) %d != Len() %d", len(q.Values()), q.Len())
		}
	}
}
