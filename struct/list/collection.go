package list

// DefaultCapacity is the size of the backing store of a new Collection
// seeded with at most DefaultCapacity values.
const DefaultCapacity = 16

// Collection is a growable array. The backing store is allocated in full,
// len(items) is the capacity and only items[:size] hold values.
// A Collection is not safe for concurrent use.
type Collection[T any] struct {
	items []T
	size  int
}

func Make[T any](values ...T) *Collection[T] {
	c := &Collection[T]{
		items: make([]T, growCapacity(0, len(values))),
		size:  0,
	}
	c.size = copy(c.items, values)
	return c
}

// growCapacity doubles current, starting from DefaultCapacity, until it
// holds required elements.
func growCapacity(current int, required int) int {
	capacity := current
	if capacity < DefaultCapacity {
		capacity = DefaultCapacity
	}
	for capacity < required {
		capacity *= 2
	}
	return capacity
}

func (c *Collection[T]) ensure(required int) {
	if required <= len(c.items) {
		return
	}
	items := make([]T, growCapacity(len(c.items), required))
	copy(items, c.items[:c.size])
	c.items = items
}

func (c *Collection[T]) Len() int {
	return c.size
}

func (c *Collection[T]) Capacity() int {
	return len(c.items)
}

// EnsureCapacity grows the backing store so that it holds at least n
// values without further reallocation.
func (c *Collection[T]) EnsureCapacity(n int) {
	c.ensure(n)
}

func (c *Collection[T]) Add(val T) {
	c.ensure(c.size + 1)
	c.items[c.size] = val
	c.size++
}

// AddRange appends values in order, growing the store at most once.
func (c *Collection[T]) AddRange(values ...T) {
	c.ensure(c.size + len(values))
	c.size += copy(c.items[c.size:], values)
}

func (c *Collection[T]) Get(index int) (val T, err error) {
	if err = checkIndex("get", c.size, index); err != nil {
		return val, err
	}
	return c.items[index], nil
}

func (c *Collection[T]) Set(index int, val T) error {
	if err := checkIndex("set", c.size, index); err != nil {
		return err
	}
	c.items[index] = val
	return nil
}

// Insert places val at index, shifting items[index:] one slot right.
// Inserting at Len() appends.
func (c *Collection[T]) Insert(index int, val T) error {
	if err := checkPosition("insert", c.size, index); err != nil {
		return err
	}
	c.ensure(c.size + 1)
	copy(c.items[index+1:c.size+1], c.items[index:c.size])
	c.items[index] = val
	c.size++
	return nil
}

// Exchange swaps the values at i and j. Both indexes are checked before
// anything moves.
func (c *Collection[T]) Exchange(i, j int) error {
	if err := checkIndex("exchange", c.size, i, j); err != nil {
		return err
	}
	c.items[i], c.items[j] = c.items[j], c.items[i]
	return nil
}

// Remove deletes and returns the value at index, shifting the tail left.
// Capacity is unchanged.
func (c *Collection[T]) Remove(index int) (val T, err error) {
	if err = checkIndex("remove", c.size, index); err != nil {
		return val, err
	}
	val = c.items[index]
	copy(c.items[index:c.size-1], c.items[index+1:c.size])
	c.size--
	var zero T
	c.items[c.size] = zero
	return val, nil
}

func (c *Collection[T]) RemoveLast() (T, error) {
	return c.Remove(c.size - 1)
}

// Clear drops every value but keeps the backing store.
func (c *Collection[T]) Clear() {
	clear(c.items[:c.size])
	c.size = 0
}

func (c *Collection[T]) ForEach(consumer Consumer[T]) {
	for i := 0; i < c.size; i++ {
		if !consumer(i, c.items[i]) {
			break
		}
	}
}

func (c *Collection[T]) Contains(expected Expected[T]) bool {
	res := false
	c.ForEach(func(idx int, val T) bool {
		if expected(val) {
			res = true
			return false
		}
		return true
	})
	return res
}

// Range returns a copy of the values in [start, stop).
func (c *Collection[T]) Range(start int, stop int) ([]T, error) {
	if err := checkPosition("range", c.size, start); err != nil {
		return nil, err
	}
	if stop < start || stop > c.size {
		return nil, &IndexError{Op: "range", Indexes: []int{stop}, Count: c.size, Max: c.size}
	}
	slice := make([]T, stop-start)
	copy(slice, c.items[start:stop])
	return slice, nil
}

func (c *Collection[T]) ToSlice() []T {
	slice, _ := c.Range(0, c.size)
	return slice
}

// Clone returns a shallow copy with the same capacity.
func (c *Collection[T]) Clone() *Collection[T] {
	items := make([]T, len(c.items))
	copy(items, c.items[:c.size])
	return &Collection[T]{
		items: items,
		size:  c.size,
	}
}

func (c *Collection[T]) String() string {
	return render[T](c)
}
