package enum

import (
	"reflect"
	"sync"

	"github.com/ib-77/variant/pkg/variant"
	"github.com/ib-77/variant/pkg/variant/maybe"
)

type key struct {
	family *variant.Family
	value  any
}

var cache = struct {
	sync.Mutex
	entries map[key]maybe.Maybe[*variant.Instance]
}{entries: make(map[key]maybe.Maybe[*variant.Instance])}

// FromValue resolves the first zero-arity alternative of f, in
// declaration order, whose registered default literal equals value.
// Alternatives without a default, or with fields, never match.
//
// Results are memoized per (family, value) pair for the lifetime of the
// process, so repeated lookups return the cached Maybe without
// re-scanning. The cache is unbounded; enum lookups are expected to see
// a small, fixed set of literals. Values whose type is not comparable
// bypass the cache.
func FromValue(f *variant.Family, value any) maybe.Maybe[*variant.Instance] {
	if f == nil {
		return maybe.Nothing[*variant.Instance]()
	}
	if !cacheable(value) {
		return scan(f, value)
	}

	k := key{family: f, value: value}
	cache.Lock()
	defer cache.Unlock()
	if m, ok := cache.entries[k]; ok {
		return m
	}
	m := scan(f, value)
	cache.entries[k] = m
	return m
}

func cacheable(value any) bool {
	if value == nil {
		return true
	}
	return reflect.ValueOf(value).Comparable()
}

func scan(f *variant.Family, value any) maybe.Maybe[*variant.Instance] {
	for _, form := range f.Alternatives() {
		def, ok := form.Value()
		if !ok || form.Arity() != 0 {
			continue
		}
		if reflect.DeepEqual(def, value) {
			return maybe.Just(form.MustNew())
		}
	}
	return maybe.Nothing[*variant.Instance]()
}
