// Package dynarray provides a growable array with explicit capacity management.
//
// Capacity doubles when an append or insert finds the storage full, and halves
// (never below the initial capacity of 2) when a removal leaves the array at or
// under one third full.
package dynarray

import (
	"fmt"
	"iter"
	"strings"

	"github.com/pkg/errors"
)

const initCap = 2

var (
	// ErrInvalidCapacity is returned when an array is constructed with a capacity below 1.
	ErrInvalidCapacity = errors.New("capacity cannot be zero or negative")
	// ErrIndexOutOfRange is returned when an index falls outside the stored elements.
	ErrIndexOutOfRange = errors.New("index out of bounds")
)

// Array is a dynamic array of T.
type Array[T any] struct {
	storage []T
	size    int
}

// New returns an empty array with the default capacity.
func New[T any]() *Array[T] {
	return &Array[T]{storage: make([]T, initCap)}
}

// NewWithCapacity returns an empty array with the given initial capacity.
func NewWithCapacity[T any](capacity int) (*Array[T], error) {
	if capacity < 1 {
		return nil, errors.Wrapf(ErrInvalidCapacity, "[NewWithCapacity] capacity: %d", capacity)
	}
	return &Array[T]{storage: make([]T, capacity)}, nil
}

// Size returns the number of stored elements.
func (a *Array[T]) Size() int { return a.size }

// Capacity returns the length of the backing storage.
func (a *Array[T]) Capacity() int { return len(a.storage) }

// Get returns the element at index.
func (a *Array[T]) Get(index int) (T, error) {
	if err := a.checkIndex(index); err != nil {
		var zero T
		return zero, err
	}
	return a.storage[index], nil
}

// Set replaces the element at index and returns the previous value.
func (a *Array[T]) Set(index int, value T) (T, error) {
	if err := a.checkIndex(index); err != nil {
		var zero T
		return zero, err
	}
	old := a.storage[index]
	a.storage[index] = value
	return old, nil
}

// Add appends value to the end of the array.
func (a *Array[T]) Add(value T) {
	if a.size == len(a.storage) {
		a.resize(len(a.storage) * 2)
	}
	a.storage[a.size] = value
	a.size++
}

// Insert places value at index, shifting later elements right.
// index may equal Size, which appends.
func (a *Array[T]) Insert(index int, value T) error {
	if index < 0 || index > a.size {
		return errors.Wrapf(ErrIndexOutOfRange, "[Insert] index: %d, size: %d", index, a.size)
	}
	if a.size == len(a.storage) {
		a.resize(len(a.storage) * 2)
	}
	copy(a.storage[index+1:a.size+1], a.storage[index:a.size])
	a.storage[index] = value
	a.size++
	return nil
}

// Remove deletes and returns the element at index, shifting later elements left.
func (a *Array[T]) Remove(index int) (T, error) {
	var zero T
	if err := a.checkIndex(index); err != nil {
		return zero, err
	}
	removed := a.storage[index]
	copy(a.storage[index:a.size-1], a.storage[index+1:a.size])
	a.size--
	a.storage[a.size] = zero

	if len(a.storage) > initCap && a.size <= len(a.storage)/3 {
		a.resize(max(len(a.storage)/2, initCap))
	}
	return removed, nil
}

// All iterates over index/element pairs in order.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < a.size; i++ {
			if !yield(i, a.storage[i]) {
				return
			}
		}
	}
}

// Values iterates over the elements in order.
func (a *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < a.size; i++ {
			if !yield(a.storage[i]) {
				return
			}
		}
	}
}

// Slice returns a copy of the stored elements.
func (a *Array[T]) Slice() []T {
	out := make([]T, a.size)
	copy(out, a.storage[:a.size])
	return out
}

func (a *Array[T]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Dynamic array with %d items and a capacity of %d:", a.size, len(a.storage))
	for i := 0; i < a.size; i++ {
		fmt.Fprintf(&sb, "\n  [%d]: %v", i, a.storage[i])
	}
	return sb.String()
}

func (a *Array[T]) checkIndex(index int) error {
	if index < 0 || index >= a.size {
		return errors.Wrapf(ErrIndexOutOfRange, "index: %d, size: %d", index, a.size)
	}
	return nil
}

func (a *Array[T]) resize(capacity int) {
	storage := make([]T, capacity)
	copy(storage, a.storage[:a.size])
	a.storage = storage
}
