package streamstore

import "strings"

// CategorySeparator separates the category from the identity in a stream id
const CategorySeparator = "-"

// Category returns the category of a stream.
// The category is the part of the stream id before the first CategorySeparator,
// a stream id without a separator is its own category.
func Category(streamID string) string {
	if i := strings.Index(streamID, CategorySeparator); i >= 0 {
		return streamID[:i]
	}

	return streamID
}
