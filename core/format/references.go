package format

import "github.com/siherrmann/ragformat/model"

// FormatReferences copies every reference record, one output per input in the same order.
func FormatReferences(references []model.Record) []model.Record {
	formatted := make([]model.Record, 0, len(references))
	for _, reference := range references {
		copied := reference.Clone()
		if copied == nil {
			copied = model.Record{}
		}
		formatted = append(formatted, copied)
	}
	return formatted
}
