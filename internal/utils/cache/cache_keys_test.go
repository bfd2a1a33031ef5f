package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateKey(t *testing.T) {
	assert.Equal(t, "cardcopy:card:slug:axis-ace", GenerateKey(EntityCard, KeySlug, "axis-ace"))
	assert.Equal(t, "cardcopy:catalog:list:all", GenerateKey(EntityCatalog, KeyList, "all"))
}
