package format

import "github.com/siherrmann/ragformat/model"

// FormatChunks projects every chunk record, one output per input in the same order.
func FormatChunks(chunks []model.Record, config *model.FormatConfig) []model.Record {
	extraFields := config.Normalized()

	formatted := make([]model.Record, 0, len(chunks))
	for _, chunk := range chunks {
		formatted = append(formatted, FormatChunk(chunk, extraFields))
	}
	return formatted
}

// FormatChunk projects a single chunk record.
// The mandatory keys are always set, falling back to their defaults. Every extra
// field is set to the source value or nil if the chunk does not carry it.
// Extra fields naming a mandatory key are ignored.
func FormatChunk(chunk model.Record, extraFields []string) model.Record {
	formatted := make(model.Record, len(model.MandatoryChunkKeys)+len(extraFields))

	for _, key := range model.MandatoryChunkKeys {
		formatted[key] = copyField(chunk, key, model.ChunkDefault(key))
	}

	for _, field := range extraFields {
		if model.IsMandatoryChunkKey(field) {
			continue
		}
		formatted[field] = copyField(chunk, field, nil)
	}

	return formatted
}

// copyField returns a copy of the value under key, def if the key is absent.
func copyField(r model.Record, key string, def interface{}) interface{} {
	return model.CloneValue(r.GetOr(key, def))
}
