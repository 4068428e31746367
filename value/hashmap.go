package value

import (
	"go.uber.org/zap"

	"github.com/statelang/machine-runtime/errors"
	"github.com/statelang/machine-runtime/types"
)

// mapValue is a hash table with chained buckets for average O(1) lookup,
// threaded through a doubly-linked insertion-order list so enumeration is
// deterministic and history-stable. Keys are compared by structural
// equality, never identity.
type mapValue struct {
	first   *mapNode
	last    *mapNode
	buckets []*mapNode
	size    int
}

// mapNode lives in exactly one bucket chain and in the insertion-order list.
type mapNode struct {
	key        *Value
	val        *Value
	bucketNext *mapNode
	insertNext *mapNode
	insertPrev *mapNode
	hash       uint32
}

const mapInitialBuckets = 8

func newMapValue() *mapValue {
	return &mapValue{buckets: make([]*mapNode, mapInitialBuckets)}
}

// MapUpdate upserts key -> val. If key is absent, clones of key and val are
// appended to the tail of the insertion order. If key is present only its
// value is replaced; its position in the insertion order does not move.
// The caller keeps ownership of key and val.
func (v *Value) MapUpdate(key, val *Value) {
	v.mapUpsert(key, val, false)
}

// MapUpdateMove is MapUpdate with ownership transfer: key and val are
// adopted rather than cloned, so the caller must not use or free them
// afterwards. Intended for bulk construction, where the clone/free pair of
// MapUpdate would be redundant.
func (v *Value) MapUpdateMove(key, val *Value) {
	v.mapUpsert(key, val, true)
}

func (v *Value) mapUpsert(key, val *Value, move bool) {
	op := "MapUpdate"
	if move {
		op = "MapUpdateMove"
	}
	v.mustKind(types.KindMap, op)
	mustConform(key, v.keyType(), op)
	mustConform(val, v.valType(), op)

	m := v.hmap
	hash := key.HashCode()
	if n := m.lookup(key, hash); n != nil {
		old := n.val
		if move {
			n.val = val
			key.Free() // the node keeps its original key
		} else {
			n.val = val.Clone()
		}
		old.Free()
		return
	}

	if move {
		m.adoptAppend(key, val, hash)
	} else {
		m.adoptAppend(key.Clone(), val.Clone(), hash)
	}
}

// MapRemove removes key from the map, freeing the stored key and value.
// Removing an absent key is a no-op.
func (v *Value) MapRemove(key *Value) {
	v.mustKind(types.KindMap, "MapRemove")
	m := v.hmap
	hash := key.HashCode()
	idx := hash % uint32(len(m.buckets))

	var prev *mapNode
	for n := m.buckets[idx]; n != nil; n = n.bucketNext {
		if n.hash == hash && Equal(n.key, key) {
			if prev == nil {
				m.buckets[idx] = n.bucketNext
			} else {
				prev.bucketNext = n.bucketNext
			}
			m.unlinkOrder(n)
			m.size--
			n.key.Free()
			n.val.Free()
			return
		}
		prev = n
	}
}

// MapGet returns a clone of the value key maps to. The key must be present;
// looking up an absent key is a contract violation. Use MapExists first when
// absence is a designed outcome.
func (v *Value) MapGet(key *Value) *Value {
	v.mustKind(types.KindMap, "MapGet")
	n := v.hmap.lookup(key, key.HashCode())
	if n == nil {
		fail(errors.KeyMissing(errors.PhaseAccess, []string{"MapGet"}, key.String()))
	}
	return n.val.Clone()
}

// MapExists reports whether key is present. Never fatal.
func (v *Value) MapExists(key *Value) bool {
	v.mustKind(types.KindMap, "MapExists")
	return v.hmap.lookup(key, key.HashCode()) != nil
}

// MapKeys returns a fresh sequence of the keys in insertion order, oldest
// first. The caller owns the result.
func (v *Value) MapKeys() *Value {
	v.mustKind(types.KindMap, "MapKeys")
	out := newSeq(types.SeqOf(v.keyType()), v.hmap.size)
	for n := v.hmap.first; n != nil; n = n.insertNext {
		out.seqInsertOwned(len(out.seq.vals), n.key.Clone())
	}
	return out
}

// MapValues returns a fresh sequence of the mapped values (the map image)
// in key insertion order. The caller owns the result.
func (v *Value) MapValues() *Value {
	v.mustKind(types.KindMap, "MapValues")
	out := newSeq(types.SeqOf(v.valType()), v.hmap.size)
	for n := v.hmap.first; n != nil; n = n.insertNext {
		out.seqInsertOwned(len(out.seq.vals), n.val.Clone())
	}
	return out
}

// MapSize returns the number of live key/value pairs.
func (v *Value) MapSize() int {
	v.mustKind(types.KindMap, "MapSize")
	return v.hmap.size
}

// MapCapacity returns the bucket count: the number of keys the table could
// serve in average constant time before its next growth.
func (v *Value) MapCapacity() int {
	v.mustKind(types.KindMap, "MapCapacity")
	return len(v.hmap.buckets)
}

func (m *mapValue) lookup(key *Value, hash uint32) *mapNode {
	idx := hash % uint32(len(m.buckets))
	for n := m.buckets[idx]; n != nil; n = n.bucketNext {
		if n.hash == hash && Equal(n.key, key) {
			return n
		}
	}
	return nil
}

// rehash redistributes every node into a larger bucket array. Node identity
// and the insertion-order list are untouched; only bucket chains change.
func (m *mapValue) rehash(buckets int) {
	m.buckets = make([]*mapNode, buckets)
	for n := m.first; n != nil; n = n.insertNext {
		idx := n.hash % uint32(buckets)
		n.bucketNext = m.buckets[idx]
		m.buckets[idx] = n
	}
	Logger().Debug("map rehash",
		zap.Int("buckets", buckets),
		zap.Int("size", m.size))
}

// adoptAppend installs an owned key/value pair known to be absent, at the
// tail of the insertion order. Upsert establishes absence by lookup; clone
// and cast walk a source map whose keys are already distinct.
func (m *mapValue) adoptAppend(key, val *Value, hash uint32) {
	if (m.size+1)*4 > len(m.buckets)*3 {
		m.rehash(len(m.buckets) * 2)
	}
	n := &mapNode{key: key, val: val, hash: hash}
	idx := hash % uint32(len(m.buckets))
	n.bucketNext = m.buckets[idx]
	m.buckets[idx] = n
	n.insertPrev = m.last
	if m.last != nil {
		m.last.insertNext = n
	} else {
		m.first = n
	}
	m.last = n
	m.size++
}

func (m *mapValue) unlinkOrder(n *mapNode) {
	if n.insertPrev != nil {
		n.insertPrev.insertNext = n.insertNext
	} else {
		m.first = n.insertNext
	}
	if n.insertNext != nil {
		n.insertNext.insertPrev = n.insertPrev
	} else {
		m.last = n.insertPrev
	}
	n.insertNext, n.insertPrev = nil, nil
}

func (v *Value) keyType() *types.Type {
	if v.typ != nil {
		return v.typ.Key
	}
	return nil
}

func (v *Value) valType() *types.Type {
	if v.typ != nil {
		return v.typ.Val
	}
	return nil
}

// newSeq makes an empty sequence value with room for sizeHint elements.
func newSeq(t *types.Type, sizeHint int) *Value {
	capacity := sizeHint
	if capacity < seqMinCapacity {
		capacity = seqMinCapacity
	}
	return &Value{
		typ:  t,
		kind: types.KindSeq,
		seq:  seqValue{vals: make([]*Value, 0, capacity)},
	}
}
