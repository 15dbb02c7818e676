package property

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/owneriq/backend/internal/domain/shared"
	"github.com/owneriq/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// ExpiringSoonDays is the window in which a policy is flagged as expiring
const ExpiringSoonDays = 30

// InsurancePolicy is a homeowner's insurance policy of a property. One policy
// per property is primary and backs the insurance editor.
type InsurancePolicy struct {
	shared.BaseEntity
	PropertyID                 uuid.UUID
	InsuranceCompany           string
	PolicyNumber               string
	InitialPremium             decimal.NullDecimal
	EffectiveDate              *time.Time
	ExpirationDate             *time.Time
	CoverageADwelling          decimal.NullDecimal
	CoverageBOtherStructures   decimal.NullDecimal
	CoverageBStructures        decimal.NullDecimal
	CoverageCPersonalProperty  decimal.NullDecimal
	CoverageCProperty          decimal.NullDecimal
	AgentName                  string
	InsuranceAgentName         string
	AgentPhone                 string
	InsuranceAgentPhoneNumber  string
	AgentEmail                 string
	InsuranceAgentEmailAddress string
	IsPrimary                  bool
}

// PolicyDetails carries the fields the insurance editor writes
type PolicyDetails struct {
	InsuranceCompany          string
	PolicyNumber              string
	AnnualPremium             decimal.NullDecimal
	StartDate                 *time.Time
	ExpirationDate            *time.Time
	CoverageADwelling         decimal.NullDecimal
	CoverageBOtherStructures  decimal.NullDecimal
	CoverageCPersonalProperty decimal.NullDecimal
	AgentName                 string
	AgentPhone                string
	AgentEmail                string
}

// NewInsurancePolicy creates a policy for the property
func NewInsurancePolicy(propertyID uuid.UUID, d PolicyDetails) (*InsurancePolicy, error) {
	p := &InsurancePolicy{BaseEntity: shared.NewBaseEntity(), PropertyID: propertyID}
	if err := p.Update(d); err != nil {
		return nil, err
	}
	return p, nil
}

// Update writes the editor fields onto the columns the editor owns:
// coverage B and C go to their short column names, agent fields to agent_*.
func (p *InsurancePolicy) Update(d PolicyDetails) error {
	if d.StartDate != nil && d.ExpirationDate != nil && d.ExpirationDate.Before(*d.StartDate) {
		return shared.NewDomainError("INVALID_DATES", "Expiration date cannot be before the start date")
	}
	for _, v := range []decimal.NullDecimal{d.AnnualPremium, d.CoverageADwelling, d.CoverageBOtherStructures, d.CoverageCPersonalProperty} {
		if v.Valid && v.Decimal.IsNegative() {
			return shared.NewDomainError("INVALID_AMOUNT", "Insurance amounts cannot be negative")
		}
	}

	p.InsuranceCompany = strings.TrimSpace(d.InsuranceCompany)
	p.PolicyNumber = strings.TrimSpace(d.PolicyNumber)
	p.InitialPremium = d.AnnualPremium
	p.EffectiveDate = d.StartDate
	p.ExpirationDate = d.ExpirationDate
	p.CoverageADwelling = d.CoverageADwelling
	p.CoverageBStructures = d.CoverageBOtherStructures
	p.CoverageCProperty = d.CoverageCPersonalProperty
	p.AgentName = strings.TrimSpace(d.AgentName)
	p.AgentPhone = strings.TrimSpace(d.AgentPhone)
	p.AgentEmail = strings.TrimSpace(d.AgentEmail)
	p.Touch()
	return nil
}

// MarkPrimary flags the policy as primary; the repository clears the others
func (p *InsurancePolicy) MarkPrimary() {
	p.IsPrimary = true
	p.Touch()
}

// EnsureDeletable rejects deleting the primary policy
func (p *InsurancePolicy) EnsureDeletable() error {
	if p.IsPrimary {
		return shared.ErrPrimaryRecord
	}
	return nil
}

// InsuranceView is the insurance editor's read model
type InsuranceView struct {
	PolicyID                  uuid.UUID
	InsuranceCompany          string
	PolicyNumber              string
	AnnualPremium             decimal.NullDecimal
	StartDate                 *time.Time
	ExpirationDate            *time.Time
	CoverageADwelling         decimal.NullDecimal
	CoverageBOtherStructures  decimal.NullDecimal
	CoverageCPersonalProperty decimal.NullDecimal
	AgentName                 string
	AgentPhone                string
	AgentEmail                string
	DaysUntilExpiration       *int
	ExpiringSoon              bool
	Expired                   bool
}

// View resolves legacy columns and computes expiration flags at now
func (p *InsurancePolicy) View(now time.Time) InsuranceView {
	v := InsuranceView{
		PolicyID:                  p.ID,
		InsuranceCompany:          p.InsuranceCompany,
		PolicyNumber:              p.PolicyNumber,
		AnnualPremium:             p.InitialPremium,
		StartDate:                 p.EffectiveDate,
		ExpirationDate:            p.ExpirationDate,
		CoverageADwelling:         p.CoverageADwelling,
		CoverageBOtherStructures:  valueobject.FirstPresent(p.CoverageBOtherStructures, p.CoverageBStructures),
		CoverageCPersonalProperty: valueobject.FirstPresent(p.CoverageCPersonalProperty, p.CoverageCProperty),
		AgentName:                 valueobject.FirstNonEmpty(p.AgentName, p.InsuranceAgentName),
		AgentPhone:                valueobject.FirstNonEmpty(p.AgentPhone, p.InsuranceAgentPhoneNumber),
		AgentEmail:                valueobject.FirstNonEmpty(p.AgentEmail, p.InsuranceAgentEmailAddress),
	}
	if days, ok := DaysUntil(p.ExpirationDate, now); ok {
		v.DaysUntilExpiration = &days
		v.ExpiringSoon = days >= 0 && days <= ExpiringSoonDays
		v.Expired = days < 0
	}
	return v
}

// DaysUntil returns the whole days from now until t, rounded up
func DaysUntil(t *time.Time, now time.Time) (int, bool) {
	if t == nil {
		return 0, false
	}
	return int(math.Ceil(t.Sub(now).Hours() / 24)), true
}
