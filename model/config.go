package model

// FormatConfig represents the caller options of a format call
type FormatConfig struct {
	// Chunk fields to copy in addition to the mandatory ones.
	// Missing fields are set to null.
	ExtraChunkFields []string `json:"extra_chunk_fields,omitempty"`
}

// DefaultFormatConfig returns a configuration producing the plain four field chunks
func DefaultFormatConfig() FormatConfig {
	return FormatConfig{
		ExtraChunkFields: nil,
	}
}

// Normalized returns the requested extra fields deduplicated in first-seen order
// without the mandatory chunk keys, which are never overridden.
func (c *FormatConfig) Normalized() []string {
	if c == nil || len(c.ExtraChunkFields) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(c.ExtraChunkFields))
	fields := make([]string, 0, len(c.ExtraChunkFields))
	for _, field := range c.ExtraChunkFields {
		if seen[field] || IsMandatoryChunkKey(field) {
			continue
		}
		seen[field] = true
		fields = append(fields, field)
	}
	return fields
}
