// Package minheap implements a minimum-priority queue whose values are
// unique.  Keys may repeat; the order in which entries with equal keys are
// extracted is unspecified.
package minheap

import (
	"cmp"
	"container/heap"
	"reflect"

	"github.com/chronos-tachyon/assert"
	"github.com/pkg/errors"
)

var (
	// ErrInvalidArgument is returned when a caller passes a nil key or a
	// value that the queue already holds.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrEmptyCollection is returned by Peek and ExtractMin on an empty
	// queue.
	ErrEmptyCollection = errors.New("empty collection")
)

// Entry pairs a key with the value it orders.
type Entry[K any, V comparable] struct {
	Key   K
	Value V
}

// Queue is a binary min-heap of Entry values.  The zero value is not usable;
// construct one with New or NewFunc.
//
// Queue is not safe for concurrent use.
type Queue[K any, V comparable] struct {
	h entryHeap[K, V]
}

// New returns an empty Queue ordering its keys with the < operator.
func New[K cmp.Ordered, V comparable]() *Queue[K, V] {
	return NewFunc[K, V](cmp.Compare[K])
}

// NewFunc returns an empty Queue ordering its keys with compare, which must
// return a negative number when a < b, zero when a == b, and a positive
// number when a > b.
func NewFunc[K any, V comparable](compare func(a, b K) int) *Queue[K, V] {
	assert.Assertf(compare != nil, "compare function is nil")
	return &Queue[K, V]{
		h: entryHeap[K, V]{
			index:   make(map[V]int),
			compare: compare,
		},
	}
}

// Insert adds value to the queue under key.
//
// Insert fails with ErrInvalidArgument if key is nil, or if the queue
// already holds a value equal to value.
func (q *Queue[K, V]) Insert(key K, value V) error {
	if isNil(key) {
		return errors.Wrap(ErrInvalidArgument, "key is nil")
	}
	if q.ContainsValue(value) {
		return errors.Wrapf(ErrInvalidArgument, "queue already holds value %v", value)
	}
	heap.Push(&q.h, Entry[K, V]{Key: key, Value: value})
	return nil
}

// Peek returns the value with the minimal key without removing it.
func (q *Queue[K, V]) Peek() (V, error) {
	e, err := q.PeekEntry()
	return e.Value, err
}

// PeekEntry is like Peek, but returns the key as well.
func (q *Queue[K, V]) PeekEntry() (Entry[K, V], error) {
	if q.IsEmpty() {
		var zero Entry[K, V]
		return zero, errors.Wrap(ErrEmptyCollection, "Peek")
	}
	return q.h.list[0], nil
}

// ExtractMin removes and returns the value with the minimal key.
func (q *Queue[K, V]) ExtractMin() (V, error) {
	e, err := q.ExtractMinEntry()
	return e.Value, err
}

// ExtractMinEntry is like ExtractMin, but returns the key as well.
func (q *Queue[K, V]) ExtractMinEntry() (Entry[K, V], error) {
	if q.IsEmpty() {
		var zero Entry[K, V]
		return zero, errors.Wrap(ErrEmptyCollection, "ExtractMin")
	}
	return heap.Pop(&q.h).(Entry[K, V]), nil
}

// Len returns the number of entries in the queue.
func (q *Queue[K, V]) Len() int {
	return q.h.Len()
}

// IsEmpty returns true iff the queue holds no entries.
func (q *Queue[K, V]) IsEmpty() bool {
	return q.h.Len() == 0
}

// ContainsValue returns true iff the queue holds a value equal to value.
func (q *Queue[K, V]) ContainsValue(value V) bool {
	_, found := q.h.index[value]
	return found
}

// Values returns the set of values currently held by the queue.
func (q *Queue[K, V]) Values() map[V]struct{} {
	out := make(map[V]struct{}, len(q.h.list))
	for _, e := range q.h.list {
		out[e.Value] = struct{}{}
	}
	return out
}

func isNil(key interface{}) bool {
	if key == nil {
		return true
	}
	rv := reflect.ValueOf(key)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return rv.IsNil()
	}
	return false
}

// type entryHeap {{{

type entryHeap[K any, V comparable] struct {
	list    []Entry[K, V]
	index   map[V]int
	compare func(a, b K) int
}

func (h *entryHeap[K, V]) Len() int {
	return len(h.list)
}

func (h *entryHeap[K, V]) Less(i, j int) bool {
	return h.compare(h.list[i].Key, h.list[j].Key) < 0
}

func (h *entryHeap[K, V]) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
	h.index[h.list[i].Value] = i
	h.index[h.list[j].Value] = j
}

func (h *entryHeap[K, V]) Push(x interface{}) {
	e := x.(Entry[K, V])
	h.index[e.Value] = len(h.list)
	h.list = append(h.list, e)
}

func (h *entryHeap[K, V]) Pop() interface{} {
	last := len(h.list) - 1
	e := h.list[last]
	h.list[last] = Entry[K, V]{}
	h.list = h.list[:last]
	delete(h.index, e.Value)
	return e
}

var _ heap.Interface = (*entryHeap[int, int])(nil)

// }}}
