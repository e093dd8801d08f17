package dict

type Consumer[V any] func(key string, val V) bool

// Dict is a string keyed map. Put style methods return the number of
// keys added or updated (0 or 1).
type Dict[V any] interface {
	Get(key string) (val V, exists bool)
	Len() int
	Put(key string, val V) (result int)
	PutIfAbsent(key string, val V) (result int)
	PutIfExists(key string, val V) (result int)
	Remove(key string) (result int)
	ForEach(consumer Consumer[V])
	Keys() []string
	Clear()
}
