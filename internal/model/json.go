package model

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// StringList encodes a list of strings for a JSON column.
func StringList(values []string) datatypes.JSON {
	if values == nil {
		values = []string{}
	}
	return encode(values)
}

// Strings decodes a JSON column written by StringList. Malformed data decodes as empty.
func Strings(j datatypes.JSON) []string {
	return decodeList[string](j)
}

// IntList encodes a list of ints for a JSON column.
func IntList(values []int) datatypes.JSON {
	if values == nil {
		values = []int{}
	}
	return encode(values)
}

// Ints decodes a JSON column written by IntList.
func Ints(j datatypes.JSON) []int {
	return decodeList[int](j)
}

func encode(v any) datatypes.JSON {
	b, _ := json.Marshal(v)
	return datatypes.JSON(b)
}

func decodeList[T any](j datatypes.JSON) []T {
	out := []T{}
	if len(j) == 0 {
		return out
	}
	if err := json.Unmarshal(j, &out); err != nil || out == nil {
		return []T{}
	}
	return out
}
