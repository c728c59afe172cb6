package store

import "sync"

// Memo memoizes compute on the comparable signature returned by key. While
// key(s) is unchanged the cached result is returned without calling compute.
// Entities values make good signature components because their equality is
// snapshot identity. The returned function is safe for concurrent use.
func Memo[S any, K comparable, R any](key func(S) K, compute func(S) R) func(S) R {
	var (
		mu     sync.Mutex
		valid  bool
		last   K
		result R
	)
	return func(s S) R {
		k := key(s)
		mu.Lock()
		defer mu.Unlock()
		if valid && k == last {
			return result
		}
		result = compute(s)
		last = k
		valid = true
		return result
	}
}
