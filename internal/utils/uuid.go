package utils

import "github.com/google/uuid"

// GenerateUUID returns a new time-ordered UUIDv7 string for entry ids. Falls
// back to a random UUIDv4 if v7 generation fails (entropy exhaustion).
func GenerateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
