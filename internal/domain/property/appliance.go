package property

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/owneriq/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ApplianceType is the kind of appliance
type ApplianceType string

const (
	ApplianceRefrigerator ApplianceType = "refrigerator"
	ApplianceDishwasher   ApplianceType = "dishwasher"
	ApplianceOven         ApplianceType = "oven"
	ApplianceMicrowave    ApplianceType = "microwave"
	ApplianceWasher       ApplianceType = "washer"
	ApplianceDryer        ApplianceType = "dryer"
	ApplianceHVAC         ApplianceType = "hvac"
	ApplianceWaterHeater  ApplianceType = "water_heater"
	ApplianceGarageDoor   ApplianceType = "garage_door"
	ApplianceOther        ApplianceType = "other"
)

var applianceTypes = map[ApplianceType]struct{}{
	ApplianceRefrigerator: {}, ApplianceDishwasher: {}, ApplianceOven: {}, ApplianceMicrowave: {},
	ApplianceWasher: {}, ApplianceDryer: {}, ApplianceHVAC: {}, ApplianceWaterHeater: {},
	ApplianceGarageDoor: {}, ApplianceOther: {},
}

// IsValid reports whether the appliance type is known
func (t ApplianceType) IsValid() bool {
	_, ok := applianceTypes[t]
	return ok
}

// Condition grades an appliance
type Condition string

const (
	ConditionNew  Condition = "new"
	ConditionGood Condition = "good"
	ConditionFair Condition = "fair"
	ConditionPoor Condition = "poor"
)

// Appliance is an appliance installed at a property
type Appliance struct {
	shared.BaseEntity
	PropertyID             uuid.UUID
	Type                   ApplianceType
	Brand                  string
	Model                  string
	SerialNumber           string
	SKU                    string
	PurchaseDate           *time.Time
	WarrantyExpirationDate *time.Time
	Price                  decimal.NullDecimal
	Quantity               int
	Condition              Condition
	InstallationNotes      string
}

// ApplianceDetails carries the editable appliance fields
type ApplianceDetails struct {
	Type                   ApplianceType
	Brand                  string
	Model                  string
	SerialNumber           string
	SKU                    string
	PurchaseDate           *time.Time
	WarrantyExpirationDate *time.Time
	Price                  decimal.NullDecimal
	Quantity               int
	Condition              Condition
	InstallationNotes      string
}

// NewAppliance creates an appliance for the property
func NewAppliance(propertyID uuid.UUID, d ApplianceDetails) (*Appliance, error) {
	a := &Appliance{BaseEntity: shared.NewBaseEntity(), PropertyID: propertyID}
	if err := a.Update(d); err != nil {
		return nil, err
	}
	return a, nil
}

// Update replaces the editable fields. Quantity defaults to 1 and condition to good.
func (a *Appliance) Update(d ApplianceDetails) error {
	if d.Type == "" {
		d.Type = ApplianceRefrigerator
	}
	if !d.Type.IsValid() {
		return shared.NewDomainError("INVALID_APPLIANCE_TYPE", "Unknown appliance type: "+string(d.Type))
	}
	if d.Quantity == 0 {
		d.Quantity = 1
	}
	if d.Quantity < 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if d.Condition == "" {
		d.Condition = ConditionGood
	}
	switch d.Condition {
	case ConditionNew, ConditionGood, ConditionFair, ConditionPoor:
	default:
		return shared.NewDomainError("INVALID_CONDITION", "Condition must be new, good, fair or poor")
	}
	if d.Price.Valid && d.Price.Decimal.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Price cannot be negative")
	}

	a.Type = d.Type
	a.Brand = strings.TrimSpace(d.Brand)
	a.Model = strings.TrimSpace(d.Model)
	a.SerialNumber = strings.TrimSpace(d.SerialNumber)
	a.SKU = strings.TrimSpace(d.SKU)
	a.PurchaseDate = d.PurchaseDate
	a.WarrantyExpirationDate = d.WarrantyExpirationDate
	a.Price = d.Price
	a.Quantity = d.Quantity
	a.Condition = d.Condition
	a.InstallationNotes = strings.TrimSpace(d.InstallationNotes)
	a.Touch()
	return nil
}

// UnderWarranty reports whether the warranty has not yet expired at now
func (a *Appliance) UnderWarranty(now time.Time) bool {
	return a.WarrantyExpirationDate != nil && !a.WarrantyExpirationDate.Before(now)
}
