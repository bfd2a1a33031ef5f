package cache

import "fmt"

type EntityType string

const (
	EntityCatalog EntityType = "catalog"
	EntityCard    EntityType = "card"
)

type KeyType string

const (
	KeySlug KeyType = "slug"
	KeyList KeyType = "list"
)

const keyPrefix = "cardcopy"

// GenerateKey creates a standardized cache key
func GenerateKey(entity EntityType, keyType KeyType, value interface{}) string {
	return fmt.Sprintf("%s:%s:%s:%v", keyPrefix, entity, keyType, value)
}
