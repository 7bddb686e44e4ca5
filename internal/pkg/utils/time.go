package utils

import "time"

const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Timestamp renders the current UTC time the way response metadata expects it.
func Timestamp() string {
	return time.Now().UTC().Format(timestampLayout)
}
