package catalog_test

import (
	"testing"

	"vapor-store/feature/catalog"

	"github.com/stretchr/testify/assert"
)

func TestTrimBOM(t *testing.T) {
	assert.Equal(t, "[]", catalog.TrimBOM("\ufeff[]"))
	assert.Equal(t, "[]", catalog.TrimBOM("[]"))
	assert.Equal(t, "[\ufeff]", catalog.TrimBOM("[\ufeff]"))
}
