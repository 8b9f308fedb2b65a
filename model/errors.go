package model

import (
	"errors"
	"fmt"
)

// ErrInvalidRecord matches every *InvalidRecordError.
var ErrInvalidRecord = errors.New("invalid record")

// InvalidRecordError reports a collection element that is not an object.
type InvalidRecordError struct {
	Collection string
	Index      int
	Got        string
}

func (e *InvalidRecordError) Error() string {
	return fmt.Sprintf("invalid %s record at index %d: got %s", e.Collection, e.Index, e.Got)
}

func (e *InvalidRecordError) Is(target error) bool {
	return target == ErrInvalidRecord
}
