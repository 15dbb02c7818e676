package property

import (
	"strings"

	"github.com/google/uuid"
	"github.com/owneriq/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// UtilityType is the kind of utility service
type UtilityType string

const (
	UtilityElectric UtilityType = "electric"
	UtilityWater    UtilityType = "water"
	UtilityGas      UtilityType = "gas"
	UtilityInternet UtilityType = "internet"
	UtilityTrash    UtilityType = "trash"
	UtilitySewer    UtilityType = "sewer"
)

// IsValid reports whether the utility type is known
func (t UtilityType) IsValid() bool {
	switch t {
	case UtilityElectric, UtilityWater, UtilityGas, UtilityInternet, UtilityTrash, UtilitySewer:
		return true
	}
	return false
}

// Utility is a utility account attached to a property
type Utility struct {
	shared.BaseEntity
	PropertyID         uuid.UUID
	Type               UtilityType
	CompanyName        string
	AccountNumber      string
	MeterNumber        string
	CustomerPortalURL  string
	MonthlyAverageCost decimal.NullDecimal
	IsActive           bool
}

// UtilityDetails carries the editable utility fields
type UtilityDetails struct {
	Type               UtilityType
	CompanyName        string
	AccountNumber      string
	MeterNumber        string
	CustomerPortalURL  string
	MonthlyAverageCost decimal.NullDecimal
	IsActive           bool
}

// NewUtility creates a utility account for the property
func NewUtility(propertyID uuid.UUID, d UtilityDetails) (*Utility, error) {
	u := &Utility{BaseEntity: shared.NewBaseEntity(), PropertyID: propertyID}
	if err := u.Update(d); err != nil {
		return nil, err
	}
	return u, nil
}

// Update replaces the editable fields
func (u *Utility) Update(d UtilityDetails) error {
	if d.Type == "" {
		d.Type = UtilityElectric
	}
	if !d.Type.IsValid() {
		return shared.NewDomainError("INVALID_UTILITY_TYPE", "Unknown utility type: "+string(d.Type))
	}
	if d.MonthlyAverageCost.Valid && d.MonthlyAverageCost.Decimal.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Monthly average cost cannot be negative")
	}
	u.Type = d.Type
	u.CompanyName = strings.TrimSpace(d.CompanyName)
	u.AccountNumber = strings.TrimSpace(d.AccountNumber)
	u.MeterNumber = strings.TrimSpace(d.MeterNumber)
	u.CustomerPortalURL = strings.TrimSpace(d.CustomerPortalURL)
	u.MonthlyAverageCost = d.MonthlyAverageCost
	u.IsActive = d.IsActive
	u.Touch()
	return nil
}
