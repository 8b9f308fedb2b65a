package model

// IDMap maps internal identifiers to their original, externally meaningful
// identifiers. A nil IDMap means no remapping.
type IDMap[K comparable] map[K]string

// NoRemap returns the "no remapping" marker.
func NoRemap[K comparable]() IDMap[K] {
	return nil
}

// Lookup returns the original identifier for id.
func (m IDMap[K]) Lookup(id K) (string, bool) {
	original, ok := m[id]
	return original, ok
}

// RelationKey identifies a relation by its source and target entity.
type RelationKey struct {
	Source string
	Target string
}
