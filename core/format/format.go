// Package format builds the user facing query response from the records
// produced by the retrieval pipeline.
//
// All functions are pure: inputs are never modified and outputs never share
// nested values with them, so concurrent calls need no coordination.
package format

import "github.com/siherrmann/ragformat/model"

// ToUserFormat assembles the response document for a query context.
// Every section holds exactly one record per input record in input order.
// A nil context or config is treated as empty. Missing fields fall back to
// defaults, the call never fails.
func ToUserFormat(qc *model.QueryContext, config *model.FormatConfig) *model.QueryResponse {
	if qc == nil {
		qc = &model.QueryContext{}
	}

	return &model.QueryResponse{
		Status:  model.StatusSuccess,
		Message: model.MessageSuccess,
		Data: model.ResponseData{
			Entities:      FormatEntities(qc.Entities, qc.EntityIDs),
			Relationships: FormatRelations(qc.Relations, qc.RelationIDs),
			Chunks:        FormatChunks(qc.Chunks, config),
			References:    FormatReferences(qc.References),
		},
		Metadata: model.ResponseMetadata{
			QueryMode: qc.Mode,
			Keywords: model.Keywords{
				HighLevel: copyStrings(qc.Keywords.HighLevel),
				LowLevel:  copyStrings(qc.Keywords.LowLevel),
			},
			ProcessingInfo: model.ProcessingInfo{
				TotalEntities:   len(qc.Entities),
				TotalRelations:  len(qc.Relations),
				TotalChunks:     len(qc.Chunks),
				TotalReferences: len(qc.References),
			},
		},
	}
}

func copyStrings(values []string) []string {
	return append([]string{}, values...)
}
