package redis

import "fmt"

// KeyBuilder provides environment-aware Redis key building functionality
type KeyBuilder struct {
	prefix string
}

// NewKeyBuilder creates a new key builder with environment-based prefix
func NewKeyBuilder(environment string) *KeyBuilder {
	prefix := "prod"
	if environment == "development" || environment == "staging" || environment == "test" {
		prefix = "staging"
	}

	return &KeyBuilder{prefix: prefix}
}

// BuildKey constructs a Redis key with the environment prefix
func (kb *KeyBuilder) BuildKey(key string) string {
	return fmt.Sprintf("%s:%s", kb.prefix, key)
}

// GetPrefix returns the current environment prefix
func (kb *KeyBuilder) GetPrefix() string {
	return kb.prefix
}

// KeyActivityCount builds the key holding one activity's registration count.
func (kb *KeyBuilder) KeyActivityCount(activityID string) string {
	return kb.BuildKey(fmt.Sprintf(KeyActivityCount, activityID))
}

// PatternActivityCounts matches every cached registration count.
func (kb *KeyBuilder) PatternActivityCounts() string {
	return kb.BuildKey(fmt.Sprintf(KeyActivityCount, "*"))
}
