package utils

import "github.com/gosimple/slug"

// StateDocID builds the canonical document ID for a state collection entry.
func StateDocID(state string) string {
	return slug.Make(state)
}
