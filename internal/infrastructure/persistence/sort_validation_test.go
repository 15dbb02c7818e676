package persistence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSortOrder(t *testing.T) {
	tests := map[string]string{
		"asc":   "ASC",
		" ASC ": "ASC",
		"desc":  "DESC",
		"":      "DESC",
		"up":    "DESC",
	}
	for in, want := range tests {
		assert.Equal(t, want, ValidateSortOrder(in), in)
	}
}

func TestValidateSortField(t *testing.T) {
	assert.Equal(t, "nickname", ValidateSortField("nickname", PropertySortFields, "created_at"))
	assert.Equal(t, "created_at", ValidateSortField("", PropertySortFields, "created_at"))
	assert.Equal(t, "created_at", ValidateSortField("owner_id", PropertySortFields, "created_at"))
}

func TestSQLInjectionPrevention(t *testing.T) {
	injectionPayloads := []string{
		"id; DROP TABLE properties;--",
		"id' OR '1'='1",
		"id UNION SELECT * FROM persons",
		"CASE WHEN 1=1 THEN id ELSE nickname END",
		"id\n; DROP TABLE properties",
	}

	for _, payload := range injectionPayloads {
		t.Run("field: "+payload[:min(len(payload), 30)], func(t *testing.T) {
			assert.Equal(t, "created_at", ValidateSortField(payload, PropertySortFields, "created_at"))
		})
		t.Run("order: "+payload[:min(len(payload), 30)], func(t *testing.T) {
			assert.Equal(t, "DESC", ValidateSortOrder(payload))
		})
	}
}

func TestSortWhitelistsContainCommonFields(t *testing.T) {
	for name, whitelist := range map[string]map[string]bool{
		"PropertySortFields": PropertySortFields,
		"EntitySortFields":   EntitySortFields,
	} {
		for _, field := range []string{"id", "created_at", "updated_at"} {
			assert.True(t, whitelist[field], "%s should contain '%s'", name, field)
		}
	}
}
