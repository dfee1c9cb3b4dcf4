package utils

import (
	"fmt"
	"strconv"
)

// ParseID converts a path or query value into a positive integer id.
func ParseID(value string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: must be an integer", value)
	}
	if id < 1 {
		return 0, fmt.Errorf("invalid id %q: must be positive", value)
	}
	return id, nil
}

// ParseOptionalID is ParseID for optional filters; an empty value yields nil.
func ParseOptionalID(value string) (*int64, error) {
	if value == "" {
		return nil, nil
	}
	id, err := ParseID(value)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
