package shell

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/fatih/structs"
	"github.com/google/uuid"

	"collections/logger"
	"collections/struct/list"
	"collections/struct/value"
)

// refPrefix marks a value word naming another collection, e.g. @nums.
const refPrefix = "@"

func init() {
	registerCommand("New", execNew, -2)
	registerCommand("Del", execDel, 2)
	registerCommand("Keys", execKeys, 1)
	registerCommand("Add", execAdd, 3)
	registerCommand("AddRange", execAddRange, -3)
	registerCommand("Get", execGet, 3)
	registerCommand("Set", execSet, 4)
	registerCommand("Insert", execInsert, 4)
	registerCommand("Exchange", execExchange, 4)
	registerCommand("Remove", execRemove, 3)
	registerCommand("Clear", execClear, 2)
	registerCommand("Count", execCount, 2)
	registerCommand("Capacity", execCapacity, 2)
	registerCommand("Print", execPrint, 2)
	registerCommand("Info", execInfo, 2)
}

func (sh *Shell) getAsCollection(key string) (*list.Collection[value.Value], ErrorReply) {
	c, ok := sh.data.Get(key)
	if !ok {
		return nil, MakeErrReply("ERR no such key")
	}
	return c, nil
}

// parseValue turns a word into a Value. @key nests a copy of the
// collection at key as it is now.
func (sh *Shell) parseValue(word string) (value.Value, ErrorReply) {
	if key, ok := strings.CutPrefix(word, refPrefix); ok && key != "" {
		c, errReply := sh.getAsCollection(key)
		if errReply != nil {
			return value.Value{}, errReply
		}
		return value.OfList(c.Clone()), nil
	}
	return value.Parse(word), nil
}

func (sh *Shell) parseValues(words []string) ([]value.Value, ErrorReply) {
	values := make([]value.Value, len(words))
	for i, word := range words {
		v, errReply := sh.parseValue(word)
		if errReply != nil {
			return nil, errReply
		}
		values[i] = v
	}
	return values, nil
}

func parseIndex(arg string) (int, ErrorReply) {
	index, err := strconv.Atoi(arg)
	if err != nil {
		return 0, MakeErrReply("ERR value is not an integer or out of range")
	}
	return index, nil
}

// makeListErrReply reports a rejected index, the only error a Collection
// returns.
func makeListErrReply(err error) ErrorReply {
	return MakeErrReply("ERR " + err.Error())
}

// execNew creates a collection, NEW key [value ...]. The key "-" asks for
// a generated one.
func execNew(sh *Shell, args []string) Reply {
	key := args[0]
	if key == "-" {
		key = uuid.NewString()
	}
	values, errReply := sh.parseValues(args[1:])
	if errReply != nil {
		return errReply
	}
	if sh.data.PutIfAbsent(key, list.Make(values...)) == 0 {
		return MakeErrReply("ERR key already exists")
	}
	logger.Info("new collection", key, "count", len(values))
	return MakeBulkReply(key)
}

func execDel(sh *Shell, args []string) Reply {
	removed := sh.data.Remove(args[0])
	if removed > 0 {
		logger.Info("deleted collection", args[0])
	}
	return MakeIntReply(int64(removed))
}

func execKeys(sh *Shell, _ []string) Reply {
	return MakeMultiReply(sh.data.Keys())
}

func execAdd(sh *Shell, args []string) Reply {
	c, errReply := sh.getAsCollection(args[0])
	if errReply != nil {
		return errReply
	}
	v, errReply := sh.parseValue(args[1])
	if errReply != nil {
		return errReply
	}
	c.Add(v)
	return MakeIntReply(int64(c.Len()))
}

func execAddRange(sh *Shell, args []string) Reply {
	c, errReply := sh.getAsCollection(args[0])
	if errReply != nil {
		return errReply
	}
	values, errReply := sh.parseValues(args[1:])
	if errReply != nil {
		return errReply
	}
	c.AddRange(values...)
	return MakeIntReply(int64(c.Len()))
}

func execGet(sh *Shell, args []string) Reply {
	c, errReply := sh.getAsCollection(args[0])
	if errReply != nil {
		return errReply
	}
	index, errReply := parseIndex(args[1])
	if errReply != nil {
		return errReply
	}
	v, err := c.Get(index)
	if err != nil {
		return makeListErrReply(err)
	}
	return MakeBulkReply(v.String())
}

func execSet(sh *Shell, args []string) Reply {
	c, errReply := sh.getAsCollection(args[0])
	if errReply != nil {
		return errReply
	}
	index, errReply := parseIndex(args[1])
	if errReply != nil {
		return errReply
	}
	v, errReply := sh.parseValue(args[2])
	if errReply != nil {
		return errReply
	}
	if err := c.Set(index, v); err != nil {
		return makeListErrReply(err)
	}
	return &OkReply{}
}

func execInsert(sh *Shell, args []string) Reply {
	c, errReply := sh.getAsCollection(args[0])
	if errReply != nil {
		return errReply
	}
	index, errReply := parseIndex(args[1])
	if errReply != nil {
		return errReply
	}
	v, errReply := sh.parseValue(args[2])
	if errReply != nil {
		return errReply
	}
	if err := c.Insert(index, v); err != nil {
		return makeListErrReply(err)
	}
	return MakeIntReply(int64(c.Len()))
}

func execExchange(sh *Shell, args []string) Reply {
	c, errReply := sh.getAsCollection(args[0])
	if errReply != nil {
		return errReply
	}
	i, errReply := parseIndex(args[1])
	if errReply != nil {
		return errReply
	}
	j, errReply := parseIndex(args[2])
	if errReply != nil {
		return errReply
	}
	if err := c.Exchange(i, j); err != nil {
		return makeListErrReply(err)
	}
	return &OkReply{}
}

func execRemove(sh *Shell, args []string) Reply {
	c, errReply := sh.getAsCollection(args[0])
	if errReply != nil {
		return errReply
	}
	index, errReply := parseIndex(args[1])
	if errReply != nil {
		return errReply
	}
	v, err := c.Remove(index)
	if err != nil {
		return makeListErrReply(err)
	}
	return MakeBulkReply(v.String())
}

func execClear(sh *Shell, args []string) Reply {
	c, errReply := sh.getAsCollection(args[0])
	if errReply != nil {
		return errReply
	}
	c.Clear()
	return &OkReply{}
}

func execCount(sh *Shell, args []string) Reply {
	c, errReply := sh.getAsCollection(args[0])
	if errReply != nil {
		return errReply
	}
	return MakeIntReply(int64(c.Len()))
}

func execCapacity(sh *Shell, args []string) Reply {
	c, errReply := sh.getAsCollection(args[0])
	if errReply != nil {
		return errReply
	}
	return MakeIntReply(int64(c.Capacity()))
}

func execPrint(sh *Shell, args []string) Reply {
	c, errReply := sh.getAsCollection(args[0])
	if errReply != nil {
		return errReply
	}
	return MakeBulkReply(c.String())
}

type collectionInfo struct {
	Key      string `structs:"key"`
	Count    int    `structs:"count"`
	Capacity int    `structs:"capacity"`
	Free     int    `structs:"free"`
	Kinds    string `structs:"kinds"`
}

// kindSummary renders how many values of each kind c holds, e.g.
// "string=2 int=1".
func kindSummary(c *list.Collection[value.Value]) string {
	counts := make(map[value.Kind]int)
	c.ForEach(func(_ int, v value.Value) bool {
		counts[v.Kind()]++
		return true
	})
	kinds := make([]value.Kind, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	parts := make([]string, len(kinds))
	for i, k := range kinds {
		parts[i] = fmt.Sprintf("%s=%d", k, counts[k])
	}
	return strings.Join(parts, " ")
}

func execInfo(sh *Shell, args []string) Reply {
	c, errReply := sh.getAsCollection(args[0])
	if errReply != nil {
		return errReply
	}
	info := collectionInfo{
		Key:      args[0],
		Count:    c.Len(),
		Capacity: c.Capacity(),
		Free:     c.Capacity() - c.Len(),
		Kinds:    kindSummary(c),
	}
	fields := structs.Map(info)
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	lines := make([]string, len(names))
	for i, name := range names {
		lines[i] = fmt.Sprintf("%s: %v", name, fields[name])
	}
	return MakeMultiReply(lines)
}
