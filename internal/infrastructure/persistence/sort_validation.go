package persistence

import (
	"strings"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "DESC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist of allowed fields.
// Returns the defaultField if the input is invalid, empty, or not in the whitelist.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// PropertySortFields contains allowed sort fields for properties
var PropertySortFields = map[string]bool{
	"id":                            true,
	"created_at":                    true,
	"updated_at":                    true,
	"nickname":                      true,
	"address":                       true,
	"city":                          true,
	"state":                         true,
	"property_type":                 true,
	"purchase_price":                true,
	"current_market_value_estimate": true,
	"loan_balance":                  true,
}

// EntitySortFields contains allowed sort fields for legal entities
var EntitySortFields = map[string]bool{
	"id":          true,
	"created_at":  true,
	"updated_at":  true,
	"entity_name": true,
	"entity_type": true,
}
