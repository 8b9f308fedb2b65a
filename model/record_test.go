package model

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_Get(t *testing.T) {
	r := Record{"page_idx": 5, "empty": nil}

	t.Run("Present key", func(t *testing.T) {
		v, ok := r.Get("page_idx")

		assert.True(t, ok)
		assert.Equal(t, 5, v)
	})

	t.Run("Present key with null value", func(t *testing.T) {
		v, ok := r.Get("empty")

		assert.True(t, ok)
		assert.Nil(t, v)
	})

	t.Run("Missing key", func(t *testing.T) {
		v, ok := r.Get("section")

		assert.False(t, ok)
		assert.Nil(t, v)
	})

	t.Run("GetOr falls back only for missing keys", func(t *testing.T) {
		assert.Equal(t, 5, r.GetOr("page_idx", 0))
		assert.Nil(t, r.GetOr("empty", "default"))
		assert.Equal(t, "default", r.GetOr("section", "default"))
	})

	t.Run("Nil record", func(t *testing.T) {
		var empty Record

		_, ok := empty.Get("page_idx")
		assert.False(t, ok)
		assert.Equal(t, "x", empty.String("page_idx", "x"))
	})
}

func TestRecord_TypedReads(t *testing.T) {
	r := Record{
		"name":   "Alice",
		"int":    3,
		"int64":  int64(4),
		"float":  0.5,
		"number": json.Number("7"),
		"text":   "12",
	}

	t.Run("String", func(t *testing.T) {
		assert.Equal(t, "Alice", r.String("name", ""))
		assert.Equal(t, "fallback", r.String("int", "fallback"), "Expected no coercion of numbers")
		assert.Equal(t, "fallback", r.String("missing", "fallback"))
	})

	t.Run("FirstString", func(t *testing.T) {
		assert.Equal(t, "Alice", r.FirstString("", "missing", "int", "name"))
		assert.Equal(t, "none", r.FirstString("none", "missing"))
	})

	t.Run("Float", func(t *testing.T) {
		assert.Equal(t, 3.0, r.Float("int", 0))
		assert.Equal(t, 4.0, r.Float("int64", 0))
		assert.Equal(t, 0.5, r.Float("float", 0))
		assert.Equal(t, 7.0, r.Float("number", 0))
		assert.Equal(t, 1.0, r.Float("text", 1.0), "Expected no parsing of strings")
	})

	t.Run("Int", func(t *testing.T) {
		assert.Equal(t, 3, r.Int("int", 0))
		assert.Equal(t, 4, r.Int("int64", 0))
		assert.Equal(t, 0, r.Int("float", -1))
		assert.Equal(t, 7, r.Int("number", 0))
		assert.Equal(t, -1, r.Int("missing", -1))
	})
}

func TestRecord_Clone(t *testing.T) {
	t.Run("Deep copies nested values", func(t *testing.T) {
		original := Record{
			"tags":     []interface{}{"science", map[string]interface{}{"k": "v"}},
			"metadata": map[string]interface{}{"key": "value"},
			"names":    []string{"a", "b"},
			"nested":   Record{"inner": 1},
		}

		clone := original.Clone()
		require.Equal(t, original, clone)

		clone["metadata"].(map[string]interface{})["key"] = "changed"
		clone["tags"].([]interface{})[1].(map[string]interface{})["k"] = "changed"
		clone["names"].([]string)[0] = "changed"
		clone["nested"].(Record)["inner"] = 2

		assert.Equal(t, "value", original["metadata"].(map[string]interface{})["key"])
		assert.Equal(t, "v", original["tags"].([]interface{})[1].(map[string]interface{})["k"])
		assert.Equal(t, "a", original["names"].([]string)[0])
		assert.Equal(t, 1, original["nested"].(Record)["inner"])
	})

	t.Run("Copies typed containers and pointers", func(t *testing.T) {
		page := 5
		original := Record{
			"scores": []int{1, 2},
			"labels": map[string]string{"a": "b"},
			"page":   &page,
		}

		clone := original.Clone()
		require.Equal(t, original, clone)

		clone["scores"].([]int)[0] = 99
		clone["labels"].(map[string]string)["a"] = "changed"
		*clone["page"].(*int) = 6

		assert.Equal(t, []int{1, 2}, original["scores"])
		assert.Equal(t, map[string]string{"a": "b"}, original["labels"])
		assert.Equal(t, 5, page)
	})

	t.Run("Scalars are kept", func(t *testing.T) {
		assert.Equal(t, 5, CloneValue(5))
		assert.Equal(t, json.Number("0.95"), CloneValue(json.Number("0.95")))
		assert.Nil(t, CloneValue(nil))
	})

	t.Run("Nil record stays nil", func(t *testing.T) {
		var r Record

		assert.Nil(t, r.Clone())
	})
}

func TestRecord_Unmarshal(t *testing.T) {
	t.Run("Keeps integers as json numbers", func(t *testing.T) {
		var r Record

		err := r.Unmarshal([]byte(`{"page_idx":5,"confidence":0.95,"tags":["a"]}`))

		require.NoError(t, err)
		assert.Equal(t, json.Number("5"), r["page_idx"])
		assert.Equal(t, json.Number("0.95"), r["confidence"])
		assert.Equal(t, []interface{}{"a"}, r["tags"])
	})

	t.Run("From string", func(t *testing.T) {
		var r Record

		err := r.Unmarshal(`{"section":"Intro"}`)

		require.NoError(t, err)
		assert.Equal(t, "Intro", r["section"])
	})

	t.Run("From nil", func(t *testing.T) {
		var r Record

		err := r.Unmarshal(nil)

		require.NoError(t, err)
		assert.NotNil(t, r)
		assert.Len(t, r, 0)
	})

	t.Run("From map", func(t *testing.T) {
		var r Record

		err := r.Unmarshal(map[string]interface{}{"key": "value"})

		require.NoError(t, err)
		assert.Equal(t, "value", r["key"])
	})

	t.Run("From map copies the map", func(t *testing.T) {
		source := map[string]interface{}{"tags": []interface{}{"a"}}
		var r Record

		err := r.Unmarshal(source)
		require.NoError(t, err)

		r["tags"].([]interface{})[0] = "changed"
		r["added"] = true

		assert.Equal(t, []interface{}{"a"}, source["tags"])
		assert.NotContains(t, source, "added")
	})

	t.Run("Trailing data after the object", func(t *testing.T) {
		var r Record

		err := r.Unmarshal([]byte(`{"section":"Intro"} {"section":`))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unexpected data after top-level JSON value")
	})

	t.Run("Invalid JSON", func(t *testing.T) {
		var r Record

		err := r.Unmarshal([]byte(`{invalid json}`))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode record")
	})

	t.Run("Invalid type", func(t *testing.T) {
		var r Record

		err := r.Unmarshal(12345)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "type assertion")
	})

	t.Run("Marshal empty record", func(t *testing.T) {
		b, err := Record{}.Marshal()

		require.NoError(t, err)
		assert.Equal(t, []byte("{}"), b)
	})
}

func TestRecordsFromSlice(t *testing.T) {
	t.Run("Converts objects in order", func(t *testing.T) {
		items := []interface{}{
			map[string]interface{}{"chunk_id": "chunk-1"},
			Record{"chunk_id": "chunk-2"},
		}

		records, err := RecordsFromSlice("chunk", items)

		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "chunk-1", records[0]["chunk_id"])
		assert.Equal(t, "chunk-2", records[1]["chunk_id"])
	})

	t.Run("Empty collection", func(t *testing.T) {
		records, err := RecordsFromSlice("chunk", nil)

		require.NoError(t, err)
		assert.NotNil(t, records)
		assert.Len(t, records, 0)
	})

	t.Run("Fails fast on a non object element", func(t *testing.T) {
		items := []interface{}{
			map[string]interface{}{"chunk_id": "chunk-1"},
			"not a chunk",
		}

		records, err := RecordsFromSlice("chunk", items)

		require.Error(t, err)
		assert.Nil(t, records)
		assert.True(t, errors.Is(err, ErrInvalidRecord))
		assert.EqualError(t, err, "invalid chunk record at index 1: got string")

		var recordErr *InvalidRecordError
		require.True(t, errors.As(err, &recordErr))
		assert.Equal(t, "chunk", recordErr.Collection)
		assert.Equal(t, 1, recordErr.Index)
	})

	t.Run("Fails on null element", func(t *testing.T) {
		_, err := RecordsFromSlice("entity", []interface{}{nil})

		assert.EqualError(t, err, "invalid entity record at index 0: got null")
	})
}
