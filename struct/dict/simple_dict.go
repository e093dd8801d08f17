package dict

import "sort"

// SimpleDict is a Dict backed by a plain map. It is not safe for
// concurrent use.
type SimpleDict[V any] struct {
	m map[string]V
}

func MakeSimple[V any]() *SimpleDict[V] {
	return &SimpleDict[V]{
		m: make(map[string]V),
	}
}

func (d *SimpleDict[V]) Get(key string) (val V, exists bool) {
	val, exists = d.m[key]
	return
}

func (d *SimpleDict[V]) Len() int {
	return len(d.m)
}

// Put returns 1 when key is new and 0 when an existing value was replaced.
func (d *SimpleDict[V]) Put(key string, val V) (result int) {
	_, exists := d.m[key]
	d.m[key] = val
	if exists {
		return 0
	}
	return 1
}

func (d *SimpleDict[V]) PutIfAbsent(key string, val V) (result int) {
	if _, exists := d.m[key]; exists {
		return 0
	}
	d.m[key] = val
	return 1
}

func (d *SimpleDict[V]) PutIfExists(key string, val V) (result int) {
	if _, exists := d.m[key]; !exists {
		return 0
	}
	d.m[key] = val
	return 1
}

func (d *SimpleDict[V]) Remove(key string) (result int) {
	if _, exists := d.m[key]; exists {
		delete(d.m, key)
		return 1
	}
	return 0
}

func (d *SimpleDict[V]) ForEach(consumer Consumer[V]) {
	for k, v := range d.m {
		if !consumer(k, v) {
			return
		}
	}
}

// Keys returns every key in ascending order.
func (d *SimpleDict[V]) Keys() []string {
	keys := make([]string, 0, len(d.m))
	for k := range d.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (d *SimpleDict[V]) Clear() {
	d.m = make(map[string]V)
}
