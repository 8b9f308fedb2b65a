package model

// Keywords holds the query keywords extracted upstream.
type Keywords struct {
	HighLevel []string `json:"high_level"`
	LowLevel  []string `json:"low_level"`
}

// QueryContext holds everything the retrieval pipeline produced for one query.
type QueryContext struct {
	Entities   []Record  `json:"entities"`
	Relations  []Record  `json:"relations"`
	Chunks     []Record  `json:"chunks"`
	References []Record  `json:"references"`
	Mode       QueryMode `json:"query_mode"`
	Keywords   Keywords  `json:"keywords"`

	// Optional remapping tables, nil for none
	EntityIDs   IDMap[string]      `json:"-"`
	RelationIDs IDMap[RelationKey] `json:"-"`
}
