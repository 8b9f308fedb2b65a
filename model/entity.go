package model

// FormattedEntity is the user facing form of an entity context record.
type FormattedEntity struct {
	EntityName  string `json:"entity_name"`
	EntityType  string `json:"entity_type"`
	Description string `json:"description"`
	SourceID    string `json:"source_id"`
	FilePath    string `json:"file_path"`
	CreatedAt   string `json:"created_at"`
	Rank        *int   `json:"rank,omitempty"`
	OriginalID  string `json:"original_id,omitempty"`
}

// UnknownEntityType is used when an entity record carries no type.
const UnknownEntityType = "UNKNOWN"
