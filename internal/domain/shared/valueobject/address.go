package valueobject

import (
	"fmt"
	"strings"
)

// PostalAddress is a value object representing a US-style mailing address
type PostalAddress struct {
	Line1       string
	Line2       string
	City        string
	StateCode   string
	PostalCode  string
	CountryCode string
}

// NewPostalAddress trims and normalizes the address fields.
// Line1 is required; the country defaults to US.
func NewPostalAddress(line1, line2, city, state, postalCode, country string) (PostalAddress, error) {
	addr := PostalAddress{
		Line1:       strings.TrimSpace(line1),
		Line2:       strings.TrimSpace(line2),
		City:        strings.TrimSpace(city),
		StateCode:   strings.ToUpper(strings.TrimSpace(state)),
		PostalCode:  strings.TrimSpace(postalCode),
		CountryCode: strings.ToUpper(strings.TrimSpace(country)),
	}
	if addr.CountryCode == "" {
		addr.CountryCode = "US"
	}
	if addr.Line1 == "" {
		return PostalAddress{}, fmt.Errorf("address line1 cannot be empty")
	}
	if len(addr.Line1) > 255 || len(addr.Line2) > 255 {
		return PostalAddress{}, fmt.Errorf("address line cannot exceed 255 characters")
	}
	if len(addr.StateCode) > 50 {
		return PostalAddress{}, fmt.Errorf("state cannot exceed 50 characters")
	}
	if len(addr.PostalCode) > 20 {
		return PostalAddress{}, fmt.Errorf("postal code cannot exceed 20 characters")
	}
	if len(addr.CountryCode) != 2 {
		return PostalAddress{}, fmt.Errorf("country code must be a 2-letter ISO code")
	}
	return addr, nil
}

// IsZero reports whether no address was provided
func (a PostalAddress) IsZero() bool {
	return a.Line1 == "" && a.City == "" && a.StateCode == "" && a.PostalCode == ""
}

// Complete reports whether line1, city, state and postal code are all present
func (a PostalAddress) Complete() bool {
	return a.Line1 != "" && a.City != "" && a.StateCode != "" && a.PostalCode != ""
}

// String renders "line1, line2, city, ST 12345"
func (a PostalAddress) String() string {
	parts := make([]string, 0, 4)
	if a.Line1 != "" {
		parts = append(parts, a.Line1)
	}
	if a.Line2 != "" {
		parts = append(parts, a.Line2)
	}
	if a.City != "" {
		parts = append(parts, a.City)
	}
	tail := strings.TrimSpace(a.StateCode + " " + a.PostalCode)
	if tail != "" {
		parts = append(parts, tail)
	}
	return strings.Join(parts, ", ")
}
