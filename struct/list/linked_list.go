package list

// LinkedList is a doubly linked List. It has no capacity; every Add
// allocates a node.
type LinkedList[T any] struct {
	first *node[T]
	last  *node[T]
	size  int
}

type node[T any] struct {
	val  T
	prev *node[T]
	next *node[T]
}

func MakeLinked[T any](values ...T) *LinkedList[T] {
	list := &LinkedList[T]{
		first: nil,
		last:  nil,
		size:  0,
	}
	list.AddRange(values...)
	return list
}

func (l *LinkedList[T]) Add(val T) {
	n := &node[T]{
		val: val,
	}
	if l.last == nil {
		l.first = n
		l.last = n
	} else {
		l.last.next = n
		n.prev = l.last
		l.last = n
	}
	l.size++
}

func (l *LinkedList[T]) AddRange(values ...T) {
	for _, v := range values {
		l.Add(v)
	}
}

// find walks from whichever end is closer. index must already be valid.
func (l *LinkedList[T]) find(index int) (n *node[T]) {
	if index < l.size/2 {
		n = l.first
		for i := 0; i < index; i++ {
			n = n.next
		}
	} else {
		n = l.last
		for i := l.size - 1; i > index; i-- {
			n = n.prev
		}
	}
	return n
}

func (l *LinkedList[T]) Get(index int) (val T, err error) {
	if err = checkIndex("get", l.size, index); err != nil {
		return val, err
	}
	return l.find(index).val, nil
}

func (l *LinkedList[T]) Set(index int, val T) error {
	if err := checkIndex("set", l.size, index); err != nil {
		return err
	}
	l.find(index).val = val
	return nil
}

func (l *LinkedList[T]) Insert(index int, val T) error {
	if err := checkPosition("insert", l.size, index); err != nil {
		return err
	}
	if index == l.size {
		l.Add(val)
		return nil
	}

	p := l.find(index)
	n := &node[T]{
		val:  val,
		prev: p.prev,
		next: p,
	}
	if p.prev == nil {
		l.first = n
	} else {
		p.prev.next = n
	}
	p.prev = n
	l.size++
	return nil
}

func (l *LinkedList[T]) removeNode(n *node[T]) {
	if n.prev == nil {
		l.first = n.next
	} else {
		n.prev.next = n.next
	}
	if n.next == nil {
		l.last = n.prev
	} else {
		n.next.prev = n.prev
	}
	n.prev = nil
	n.next = nil

	l.size--
}

func (l *LinkedList[T]) Remove(index int) (val T, err error) {
	if err = checkIndex("remove", l.size, index); err != nil {
		return val, err
	}
	n := l.find(index)
	l.removeNode(n)
	return n.val, nil
}

func (l *LinkedList[T]) RemoveLast() (val T, err error) {
	n := l.last
	if n == nil {
		return val, checkIndex("remove", 0, -1)
	}
	l.removeNode(n)
	return n.val, nil
}

func (l *LinkedList[T]) Exchange(i, j int) error {
	if err := checkIndex("exchange", l.size, i, j); err != nil {
		return err
	}
	a, b := l.find(i), l.find(j)
	a.val, b.val = b.val, a.val
	return nil
}

func (l *LinkedList[T]) Clear() {
	l.first = nil
	l.last = nil
	l.size = 0
}

func (l *LinkedList[T]) Len() int {
	return l.size
}

func (l *LinkedList[T]) ForEach(consumer Consumer[T]) {
	n := l.first
	i := 0
	for n != nil {
		if !consumer(i, n.val) {
			break
		}
		i++
		n = n.next
	}
}

func (l *LinkedList[T]) Contains(expected Expected[T]) bool {
	res := false
	l.ForEach(func(idx int, val T) bool {
		if expected(val) {
			res = true
			return false
		}
		return true
	})
	return res
}

func (l *LinkedList[T]) Range(start int, stop int) ([]T, error) {
	if err := checkPosition("range", l.size, start); err != nil {
		return nil, err
	}
	if stop < start || stop > l.size {
		return nil, &IndexError{Op: "range", Indexes: []int{stop}, Count: l.size, Max: l.size}
	}

	slice := make([]T, 0, stop-start)
	l.ForEach(func(idx int, val T) bool {
		if idx >= stop {
			return false
		}
		if idx >= start {
			slice = append(slice, val)
		}
		return true
	})
	return slice, nil
}

func (l *LinkedList[T]) String() string {
	return render[T](l)
}
