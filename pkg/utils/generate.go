package utils

import (
	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.New().String()
}

// IsRequestID reports whether a client-supplied request id is a UUID worth propagating.
func IsRequestID(value string) bool {
	_, err := uuid.Parse(value)
	return err == nil
}
