package model

// Keys of the chunk fields that are always present in a formatted chunk.
const (
	ChunkKeyReferenceID = "reference_id"
	ChunkKeyContent     = "content"
	ChunkKeyFilePath    = "file_path"
	ChunkKeyChunkID     = "chunk_id"
)

// UnknownSource is the file path used when a record does not carry one.
const UnknownSource = "unknown_source"

// MandatoryChunkKeys lists the mandatory chunk keys in output order.
var MandatoryChunkKeys = []string{
	ChunkKeyReferenceID,
	ChunkKeyContent,
	ChunkKeyFilePath,
	ChunkKeyChunkID,
}

// ChunkDefault returns the value used for a missing mandatory chunk key.
func ChunkDefault(key string) string {
	if key == ChunkKeyFilePath {
		return UnknownSource
	}
	return ""
}

// IsMandatoryChunkKey reports whether key is one of the mandatory chunk keys.
func IsMandatoryChunkKey(key string) bool {
	switch key {
	case ChunkKeyReferenceID, ChunkKeyContent, ChunkKeyFilePath, ChunkKeyChunkID:
		return true
	}
	return false
}
