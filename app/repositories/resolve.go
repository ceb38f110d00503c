package repositories

// reorderByIDs rearranges rows fetched with an IN query back into the
// caller-supplied id order. Ids with no matching row are dropped.
func reorderByIDs[T any](items []T, ids []uint64, idOf func(T) uint64) []T {
	byID := make(map[uint64]T, len(items))
	for _, item := range items {
		byID[idOf(item)] = item
	}

	ordered := make([]T, 0, len(ids))
	for _, id := range ids {
		if item, ok := byID[id]; ok {
			ordered = append(ordered, item)
		}
	}
	return ordered
}
