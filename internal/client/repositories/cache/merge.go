package cache

// Merge returns current with batch applied by key: items whose key is
// already present replace the old item in place, the rest are appended in
// batch order. Later duplicates within batch win.
func Merge[T any, K comparable](current, batch []T, key func(T) K) []T {
	out := make([]T, 0, len(current)+len(batch))
	pos := make(map[K]int, len(current)+len(batch))

	put := func(item T) {
		k := key(item)
		if i, ok := pos[k]; ok {
			out[i] = item
			return
		}
		pos[k] = len(out)
		out = append(out, item)
	}

	for _, item := range current {
		put(item)
	}
	for _, item := range batch {
		put(item)
	}
	return out
}

// Without returns the items of current whose key is not in keys.
func Without[T any, K comparable](current []T, keys []K, key func(T) K) []T {
	drop := make(map[K]struct{}, len(keys))
	for _, k := range keys {
		drop[k] = struct{}{}
	}

	out := make([]T, 0, len(current))
	for _, item := range current {
		if _, ok := drop[key(item)]; !ok {
			out = append(out, item)
		}
	}
	return out
}
