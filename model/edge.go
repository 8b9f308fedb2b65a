package model

// FormattedRelation is the user facing form of a relation context record.
type FormattedRelation struct {
	SourceID    string  `json:"src_id"`
	TargetID    string  `json:"tgt_id"`
	Description string  `json:"description"`
	Keywords    string  `json:"keywords"`
	Weight      float64 `json:"weight"`
	ChunkIDs    string  `json:"source_id"`
	FilePath    string  `json:"file_path"`
	CreatedAt   string  `json:"created_at"`
	Rank        *int    `json:"rank,omitempty"`
	OriginalID  string  `json:"original_id,omitempty"`
}

// DefaultRelationWeight is used when a relation record carries no weight.
const DefaultRelationWeight = 1.0

// Key returns the key used to look up the relation in a relation IDMap.
func (r FormattedRelation) Key() RelationKey {
	return RelationKey{Source: r.SourceID, Target: r.TargetID}
}
