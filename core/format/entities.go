package format

import "github.com/siherrmann/ragformat/model"

// FormatEntities projects every entity record, one output per input in the same order.
func FormatEntities(entities []model.Record, ids model.IDMap[string]) []model.FormattedEntity {
	formatted := make([]model.FormattedEntity, 0, len(entities))
	for _, entity := range entities {
		formatted = append(formatted, FormatEntity(entity, ids))
	}
	return formatted
}

// FormatEntity projects a single entity record. The original identifier is set
// only if ids contains the entity name.
func FormatEntity(entity model.Record, ids model.IDMap[string]) model.FormattedEntity {
	formatted := model.FormattedEntity{
		EntityName:  entity.FirstString("", "entity", "entity_name", "id"),
		EntityType:  entity.FirstString(model.UnknownEntityType, "type", "entity_type"),
		Description: entity.String("description", ""),
		SourceID:    entity.String("source_id", ""),
		FilePath:    entity.String("file_path", model.UnknownSource),
		CreatedAt:   entity.String("created_at", ""),
		Rank:        rank(entity),
	}

	if original, ok := ids.Lookup(formatted.EntityName); ok {
		formatted.OriginalID = original
	}

	return formatted
}

func rank(r model.Record) *int {
	if _, ok := r.Get("rank"); !ok {
		return nil
	}
	value := r.Int("rank", 0)
	return &value
}
