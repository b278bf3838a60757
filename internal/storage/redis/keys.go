package redis

import "fmt"

// Key prefix for all game-related data
const keyPrefix = "wcrumble"

// resultKey returns the Redis key for a day's result
func resultKey(day string) string {
	return fmt.Sprintf("%s:result:%s", keyPrefix, day)
}

// dictionaryKey returns the Redis key for the dictionary word list
func dictionaryKey() string {
	return fmt.Sprintf("%s:dictionary", keyPrefix)
}

// dictionaryVersionKey returns the Redis key for the dictionary version
func dictionaryVersionKey() string {
	return fmt.Sprintf("%s:dictionary:version", keyPrefix)
}

// boardKey returns the Redis key for a cached generated board
func boardKey(seed int64) string {
	return fmt.Sprintf("%s:board:%d", keyPrefix, seed)
}
