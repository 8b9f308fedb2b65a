package model

const (
	StatusSuccess  = "success"
	MessageSuccess = "Query processed successfully"
)

// QueryResponse is the structured response returned to the user for one query.
type QueryResponse struct {
	Status   string           `json:"status"`
	Message  string           `json:"message"`
	Data     ResponseData     `json:"data"`
	Metadata ResponseMetadata `json:"metadata"`
}

// ResponseData holds the formatted sections in input order.
type ResponseData struct {
	Entities      []FormattedEntity   `json:"entities"`
	Relationships []FormattedRelation `json:"relationships"`
	Chunks        []Record            `json:"chunks"`
	References    []Record            `json:"references"`
}

// ResponseMetadata describes how the response was produced.
type ResponseMetadata struct {
	QueryMode      QueryMode      `json:"query_mode"`
	Keywords       Keywords       `json:"keywords"`
	ProcessingInfo ProcessingInfo `json:"processing_info"`
}

// ProcessingInfo holds the size of each section.
type ProcessingInfo struct {
	TotalEntities   int `json:"total_entities"`
	TotalRelations  int `json:"total_relations"`
	TotalChunks     int `json:"total_chunks"`
	TotalReferences int `json:"total_references"`
}
