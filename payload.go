package ragformat

import (
	"log/slog"

	"github.com/siherrmann/ragformat/helper"
	"github.com/siherrmann/ragformat/model"
)

// Payload is the JSON form of a query context accepted by FormatJSON.
type Payload struct {
	QueryMode        model.QueryMode   `json:"query_mode"`
	Entities         []interface{}     `json:"entities"`
	Relations        []interface{}     `json:"relations"`
	Chunks           []interface{}     `json:"chunks"`
	References       []interface{}     `json:"references"`
	Keywords         model.Keywords    `json:"keywords"`
	EntityIDs        map[string]string `json:"entity_id_map,omitempty"`
	RelationIDs      []RelationID      `json:"relation_id_map,omitempty"`
	ExtraChunkFields []string          `json:"extra_chunk_fields,omitempty"`
}

// RelationID is one entry of the relation remap table in a Payload.
type RelationID struct {
	Source     string `json:"source"`
	Target     string `json:"target"`
	OriginalID string `json:"original_id"`
}

// FormatJSON decodes a Payload and builds its response. Numbers are kept as
// json.Number so extra fields are re-encoded exactly as received.
func (f *Formatter) FormatJSON(data []byte, extraChunkFields ...string) (*model.QueryResponse, error) {
	var payload Payload
	err := model.DecodeJSON(data, &payload)
	if err != nil {
		f.log.Error("Rejected query payload", slog.String("error", err.Error()))
		return nil, helper.NewError("decode payload", err)
	}

	qc, err := queryContextFromSlices(payload.Entities, payload.Relations, payload.Chunks, payload.References)
	if err != nil {
		f.log.Error("Rejected query context", slog.String("error", err.Error()))
		return nil, helper.NewError("convert payload", err)
	}
	qc.Mode = payload.QueryMode
	qc.Keywords = payload.Keywords

	if payload.EntityIDs != nil {
		qc.EntityIDs = model.IDMap[string](payload.EntityIDs)
	}
	if len(payload.RelationIDs) > 0 {
		qc.RelationIDs = make(model.IDMap[model.RelationKey], len(payload.RelationIDs))
		for _, id := range payload.RelationIDs {
			qc.RelationIDs[model.RelationKey{Source: id.Source, Target: id.Target}] = id.OriginalID
		}
	}

	fields := append(append([]string{}, extraChunkFields...), payload.ExtraChunkFields...)

	return f.Format(qc, fields...), nil
}
