package property

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/owneriq/backend/internal/domain/ownership"
	"github.com/owneriq/backend/internal/domain/property"
	"github.com/owneriq/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// PropertyService manages properties and their detail records. Every
// operation is scoped to the calling owner: a property of another owner is
// reported as not found.
type PropertyService struct {
	properties property.PropertyRepository
	entities   ownership.EntityRepository
	utilities  property.UtilityRepository
	appliances property.ApplianceRepository
	policies   property.InsurancePolicyRepository
	documents  property.DocumentRepository
	logger     *zap.Logger
	now        func() time.Time
}

// Repositories groups the repositories PropertyService reads and writes
type Repositories struct {
	Properties property.PropertyRepository
	Entities   ownership.EntityRepository
	Utilities  property.UtilityRepository
	Appliances property.ApplianceRepository
	Policies   property.InsurancePolicyRepository
	Documents  property.DocumentRepository
}

// NewPropertyService creates a new PropertyService
func NewPropertyService(repos Repositories, logger *zap.Logger) *PropertyService {
	return &PropertyService{
		properties: repos.Properties,
		entities:   repos.Entities,
		utilities:  repos.Utilities,
		appliances: repos.Appliances,
		policies:   repos.Policies,
		documents:  repos.Documents,
		logger:     logger,
		now:        time.Now,
	}
}

// List returns a page of the owner's properties
func (s *PropertyService) List(ctx context.Context, ownerID string, req ListPropertiesRequest) (*shared.Paginated[PropertyResponse], error) {
	filter := shared.DefaultFilter()
	if req.Page > 0 {
		filter.Page = req.Page
	}
	if req.PageSize > 0 {
		filter.PageSize = req.PageSize
	}
	filter.OrderBy = req.OrderBy
	filter.OrderDir = req.OrderDir
	filter.Search = strings.TrimSpace(req.Search)
	filter.Filters = map[string]any{}
	if req.PropertyType != "" {
		filter.Filters["property_type"] = req.PropertyType
	}
	if req.EntityID != "" {
		if req.EntityID == ownership.PersonalGroupID {
			filter.Filters["entity_id"] = ownership.PersonalGroupID
		} else {
			id, err := uuid.Parse(req.EntityID)
			if err != nil {
				return nil, shared.NewDomainError("INVALID_INPUT", "entity_id must be a uuid or \"personal\"")
			}
			filter.Filters["entity_id"] = id
		}
	}

	props, err := s.properties.FindAllForOwner(ctx, ownerID, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.properties.CountForOwner(ctx, ownerID, filter)
	if err != nil {
		return nil, err
	}

	items := make([]PropertyResponse, len(props))
	for i := range props {
		items[i] = ToPropertyResponse(&props[i])
	}
	page := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &page, nil
}

// Get returns one property
func (s *PropertyService) Get(ctx context.Context, ownerID string, id uuid.UUID) (*PropertyResponse, error) {
	p, err := s.properties.FindByIDForOwner(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	resp := ToPropertyResponse(p)
	return &resp, nil
}

// Create adds a property for the owner
func (s *PropertyService) Create(ctx context.Context, ownerID string, req PropertyRequest) (*PropertyResponse, error) {
	postal, err := req.Address.postal()
	if err != nil {
		return nil, err
	}
	p, err := property.NewProperty(ownerID, property.Kind(req.PropertyType), postal)
	if err != nil {
		return nil, err
	}
	p.Nickname = strings.TrimSpace(req.Nickname)
	if err := s.assignEntity(ctx, ownerID, p, req.EntityID); err != nil {
		return nil, err
	}
	applyValuation(p, req)
	if err := p.Validate(); err != nil {
		return nil, err
	}
	saved, err := s.save(ctx, ownerID, p)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Property created", zap.String("owner_id", ownerID), zap.String("property_id", p.ID.String()))
	resp := ToPropertyResponse(saved)
	return &resp, nil
}

// Update edits a property. Absent fields keep their stored values; an
// entity_id of the zero uuid moves the property back to personal ownership.
func (s *PropertyService) Update(ctx context.Context, ownerID string, id uuid.UUID, req PropertyRequest) (*PropertyResponse, error) {
	p, err := s.properties.FindByIDForOwner(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if req.PropertyType != "" {
		p.Kind = property.Kind(req.PropertyType)
	}
	if nickname := strings.TrimSpace(req.Nickname); nickname != "" {
		p.Nickname = nickname
	}
	postal, err := req.Address.postal()
	if err != nil {
		return nil, err
	}
	if !postal.IsZero() {
		p.Address = postal
	}
	if req.EntityID != nil {
		if err := s.assignEntity(ctx, ownerID, p, req.EntityID); err != nil {
			return nil, err
		}
	}
	applyValuation(p, req)
	if err := p.Validate(); err != nil {
		return nil, err
	}
	p.Touch()
	saved, err := s.save(ctx, ownerID, p)
	if err != nil {
		return nil, err
	}
	resp := ToPropertyResponse(saved)
	return &resp, nil
}

// Delete removes a property together with its detail records
func (s *PropertyService) Delete(ctx context.Context, ownerID string, id uuid.UUID) error {
	if err := s.properties.DeleteForOwner(ctx, ownerID, id); err != nil {
		return err
	}
	s.logger.Info("Property deleted", zap.String("owner_id", ownerID), zap.String("property_id", id.String()))
	return nil
}

// Overview returns the overview read model with the mortgage and primary policy
func (s *PropertyService) Overview(ctx context.Context, ownerID string, id uuid.UUID) (*OverviewResponse, error) {
	p, err := s.properties.FindByIDForOwner(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	now := s.now()
	v := p.Overview()
	mortgage := toMortgageResponse(p.Mortgage(now))
	resp := &OverviewResponse{
		PropertyID:                 p.ID,
		Nickname:                   p.Nickname,
		PropertyType:               string(p.Kind),
		Address:                    toAddressOutput(p.Address),
		PurchaseOrRefinancePrice:   AmountOf(v.PurchaseOrRefinancePrice),
		CurrentMarketValueEstimate: AmountOf(v.CurrentMarketValueEstimate),
		LoanBalance:                AmountOf(v.LoanBalance),
		AppreciationAmount:         ValueOf(v.AppreciationAmount.Round(2)),
		AppreciationPercent:        ValueOf(v.AppreciationPercent.Round(2)),
		EquityAmount:               ValueOf(v.EquityAmount.Round(2)),
		EquityPercent:              ValueOf(v.EquityPercent.Round(2)),
		LTVRatio:                   ValueOf(v.LTVRatio.Round(2)),
		Mortgage:                   &mortgage,
	}

	policy, err := s.policies.FindPrimary(ctx, p.ID)
	switch {
	case err == nil:
		ins := toInsuranceResponse(policy, now)
		resp.Insurance = &ins
	case !errors.Is(err, shared.ErrNotFound):
		return nil, err
	}
	return resp, nil
}

// GetMortgage returns the mortgage editor's view
func (s *PropertyService) GetMortgage(ctx context.Context, ownerID string, id uuid.UUID) (*MortgageResponse, error) {
	p, err := s.properties.FindByIDForOwner(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	resp := toMortgageResponse(p.Mortgage(s.now()))
	return &resp, nil
}

// UpdateMortgage writes the mortgage editor's fields. The editor owns the
// current columns, so every field is written, nulls included; legacy
// columns are left alone and still act as fallbacks on read.
func (s *PropertyService) UpdateMortgage(ctx context.Context, ownerID string, id uuid.UUID, req MortgageRequest) (*MortgageResponse, error) {
	p, err := s.properties.FindByIDForOwner(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if req.FirstPaymentDate.Time != nil && req.MaturityDate.Time != nil && req.MaturityDate.Time.Before(*req.FirstPaymentDate.Time) {
		return nil, shared.NewDomainError("INVALID_DATES", "Maturity date cannot be before the first payment date")
	}

	l := &p.Loan
	l.LenderName = strings.TrimSpace(req.LenderName)
	l.ServicerName = strings.TrimSpace(req.ServicerName)
	l.LoanNumber = strings.TrimSpace(req.LoanNumber)
	l.ClosingDate = req.ClosingDate.Time
	l.FirstPaymentDate = req.FirstPaymentDate.Time
	l.MaturityDate = req.MaturityDate.Time
	l.InterestRate = req.InterestRate.NullDecimal
	l.TermMonths = req.TermMonths
	l.PrincipalInterestMonthly = req.PrincipalInterestMonthly.NullDecimal
	l.PropertyTaxesMonthly = req.PropertyTaxesMonthly.NullDecimal
	l.InsuranceMonthly = req.InsuranceMonthly.NullDecimal
	l.HOAMonthly = req.HOAMonthly.NullDecimal
	l.PMIMonthly = req.PMIMonthly.NullDecimal
	l.OtherMonthly = req.OtherMonthly.NullDecimal
	l.YTDPrincipalPaid = req.YTDPrincipalPaid.NullDecimal
	l.YTDInterestPaid = req.YTDInterestPaid.NullDecimal
	p.Valuation.LoanAmount = req.LoanAmount.NullDecimal
	p.Valuation.CurrentBalance = req.CurrentBalance.NullDecimal

	if err := p.Validate(); err != nil {
		return nil, err
	}
	p.Touch()
	saved, err := s.save(ctx, ownerID, p)
	if err != nil {
		return nil, err
	}
	resp := toMortgageResponse(saved.Mortgage(s.now()))
	return &resp, nil
}

// GetTaxes returns the tax editor's view
func (s *PropertyService) GetTaxes(ctx context.Context, ownerID string, id uuid.UUID) (*TaxResponse, error) {
	p, err := s.properties.FindByIDForOwner(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	resp := toTaxResponse(p.Taxes())
	return &resp, nil
}

// UpdateTaxes writes the tax editor's fields onto the current columns
func (s *PropertyService) UpdateTaxes(ctx context.Context, ownerID string, id uuid.UUID, req TaxRequest) (*TaxResponse, error) {
	p, err := s.properties.FindByIDForOwner(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	for _, v := range []Amount{req.AssessedValue, req.TaxableValue, req.TaxesPaidLastYear, req.AnnualTaxAmount} {
		if v.Valid && v.Decimal.IsNegative() {
			return nil, shared.NewDomainError("INVALID_AMOUNT", "Tax amounts cannot be negative")
		}
	}

	t := &p.Tax
	t.LegalDescription = strings.TrimSpace(req.LegalDescription)
	t.County = strings.TrimSpace(req.County)
	t.TaxAuthority = strings.TrimSpace(req.TaxAuthority)
	t.AccountNumber = strings.TrimSpace(req.AccountNumber)
	t.AssessedValue = req.AssessedValue.NullDecimal
	t.TaxableValue = req.TaxableValue.NullDecimal
	t.TaxRatePercent = req.TaxRatePercent.NullDecimal
	t.TaxesPaidLastYear = req.TaxesPaidLastYear.NullDecimal
	t.AnnualTaxAmount = req.AnnualTaxAmount.NullDecimal

	p.Touch()
	saved, err := s.save(ctx, ownerID, p)
	if err != nil {
		return nil, err
	}
	resp := toTaxResponse(saved.Taxes())
	return &resp, nil
}

// save writes p and reads it back, so responses carry what the columns
// actually hold (amounts rounded to their scale, defaults applied).
func (s *PropertyService) save(ctx context.Context, ownerID string, p *property.Property) (*property.Property, error) {
	if err := s.properties.Save(ctx, p); err != nil {
		return nil, err
	}
	return s.properties.FindByIDForOwner(ctx, ownerID, p.ID)
}

// assignEntity links p to the owner's entity, or to personal ownership for
// a nil or zero id
func (s *PropertyService) assignEntity(ctx context.Context, ownerID string, p *property.Property, entityID *uuid.UUID) error {
	if entityID == nil || *entityID == uuid.Nil {
		p.AssignEntity(nil)
		return nil
	}
	if _, err := s.entities.FindByIDForOwner(ctx, ownerID, *entityID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("INVALID_ENTITY", "Entity does not exist")
		}
		return err
	}
	id := *entityID
	p.AssignEntity(&id)
	return nil
}

// applyValuation copies the present amounts of a property request
func applyValuation(p *property.Property, req PropertyRequest) {
	if req.PurchasePrice.Valid {
		p.Valuation.PurchasePrice = req.PurchasePrice.NullDecimal
	}
	if req.RefinancePrice.Valid {
		p.Valuation.RefinancePrice = req.RefinancePrice.NullDecimal
	}
	if req.CurrentMarketValueEstimate.Valid {
		p.Valuation.CurrentMarketValueEstimate = req.CurrentMarketValueEstimate.NullDecimal
	}
	if req.LoanAmount.Valid {
		p.Valuation.LoanAmount = req.LoanAmount.NullDecimal
	}
	if req.LoanBalance.Valid {
		p.Valuation.LoanBalance = req.LoanBalance.NullDecimal
	}
	if req.MonthlyRent.Valid {
		p.Income.MonthlyRent = req.MonthlyRent.NullDecimal
	}
	if req.MonthlyOperatingExpenses.Valid {
		p.Income.MonthlyOperatingExpenses = req.MonthlyOperatingExpenses.NullDecimal
	}
}
