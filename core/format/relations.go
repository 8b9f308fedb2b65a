package format

import "github.com/siherrmann/ragformat/model"

// FormatRelations projects every relation record, one output per input in the same order.
func FormatRelations(relations []model.Record, ids model.IDMap[model.RelationKey]) []model.FormattedRelation {
	formatted := make([]model.FormattedRelation, 0, len(relations))
	for _, relation := range relations {
		formatted = append(formatted, FormatRelation(relation, ids))
	}
	return formatted
}

// FormatRelation projects a single relation record. The original identifier is
// set only if ids contains the (source, target) pair.
func FormatRelation(relation model.Record, ids model.IDMap[model.RelationKey]) model.FormattedRelation {
	formatted := model.FormattedRelation{
		SourceID:    relation.FirstString("", "entity1", "src_id", "source"),
		TargetID:    relation.FirstString("", "entity2", "tgt_id", "target"),
		Description: relation.String("description", ""),
		Keywords:    relation.String("keywords", ""),
		Weight:      relation.Float("weight", model.DefaultRelationWeight),
		ChunkIDs:    relation.String("source_id", ""),
		FilePath:    relation.String("file_path", model.UnknownSource),
		CreatedAt:   relation.String("created_at", ""),
		Rank:        rank(relation),
	}

	if original, ok := ids.Lookup(formatted.Key()); ok {
		formatted.OriginalID = original
	}

	return formatted
}
