package property

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/owneriq/backend/internal/domain/property"
	"github.com/owneriq/backend/internal/domain/shared"
	"github.com/owneriq/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// Amount is a nullable decimal. It accepts JSON numbers and user-entered
// strings such as "$1,250.00" or "6.5%", and encodes as a number or null.
type Amount struct {
	decimal.NullDecimal
}

// AmountOf wraps a nullable decimal
func AmountOf(d decimal.NullDecimal) Amount {
	return Amount{NullDecimal: d}
}

// ValueOf wraps a present decimal
func ValueOf(d decimal.Decimal) Amount {
	return Amount{NullDecimal: decimal.NewNullDecimal(d)}
}

// UnmarshalJSON implements json.Unmarshaler
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		a.NullDecimal = decimal.NullDecimal{}
		return nil
	}
	raw := string(data)
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = s
	}
	a.NullDecimal = valueobject.ParseAmount(raw)
	return nil
}

// MarshalJSON implements json.Marshaler
func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.Valid {
		return []byte("null"), nil
	}
	return []byte(a.Decimal.String()), nil
}

// Date is a calendar date. It accepts "2006-01-02" or RFC 3339 and encodes
// as "2006-01-02"; blank input is null.
type Date struct {
	Time *time.Time
}

// DateOf wraps a nullable time
func DateOf(t *time.Time) Date {
	return Date{Time: t}
}

// UnmarshalJSON implements json.Unmarshaler
func (d *Date) UnmarshalJSON(data []byte) error {
	d.Time = nil
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return shared.NewDomainError("INVALID_DATE", "Dates must be strings in YYYY-MM-DD format")
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			d.Time = &t
			return nil
		}
	}
	return shared.NewDomainError("INVALID_DATE", "Invalid date: "+s)
}

// MarshalJSON implements json.Marshaler
func (d Date) MarshalJSON() ([]byte, error) {
	if d.Time == nil {
		return []byte("null"), nil
	}
	return json.Marshal(d.Time.Format("2006-01-02"))
}

// AddressInput is a postal address in property requests
type AddressInput struct {
	Line1       string `json:"line1" binding:"max=255"`
	Line2       string `json:"line2" binding:"max=255"`
	City        string `json:"city" binding:"max=100"`
	StateCode   string `json:"state_code" binding:"max=50"`
	PostalCode  string `json:"postal_code" binding:"max=20"`
	CountryCode string `json:"country_code" binding:"omitempty,len=2"`
}

func (a AddressInput) postal() (valueobject.PostalAddress, error) {
	if strings.TrimSpace(a.Line1+a.City+a.StateCode+a.PostalCode) == "" {
		return valueobject.PostalAddress{}, nil
	}
	addr, err := valueobject.NewPostalAddress(a.Line1, a.Line2, a.City, a.StateCode, a.PostalCode, a.CountryCode)
	if err != nil {
		return addr, shared.NewDomainError("INVALID_ADDRESS", err.Error())
	}
	return addr, nil
}

// AddressOutput is a postal address in responses
type AddressOutput struct {
	Line1       string `json:"line1"`
	Line2       string `json:"line2,omitempty"`
	City        string `json:"city"`
	StateCode   string `json:"state_code"`
	PostalCode  string `json:"postal_code"`
	CountryCode string `json:"country_code"`
	Display     string `json:"display"`
}

func toAddressOutput(a valueobject.PostalAddress) AddressOutput {
	return AddressOutput{
		Line1:       a.Line1,
		Line2:       a.Line2,
		City:        a.City,
		StateCode:   a.StateCode,
		PostalCode:  a.PostalCode,
		CountryCode: a.CountryCode,
		Display:     a.String(),
	}
}

// PropertyRequest creates or updates a property. On update, absent amounts
// leave the stored value unchanged.
type PropertyRequest struct {
	PropertyType               string       `json:"property_type" binding:"omitempty,oneof=primary investment"`
	Nickname                   string       `json:"nickname" binding:"max=200"`
	EntityID                   *uuid.UUID   `json:"entity_id"`
	Address                    AddressInput `json:"address"`
	PurchasePrice              Amount       `json:"purchase_price" swaggertype:"number"`
	RefinancePrice             Amount       `json:"refinance_price" swaggertype:"number"`
	CurrentMarketValueEstimate Amount       `json:"current_market_value_estimate" swaggertype:"number"`
	LoanAmount                 Amount       `json:"loan_amount" swaggertype:"number"`
	LoanBalance                Amount       `json:"loan_balance" swaggertype:"number"`
	MonthlyRent                Amount       `json:"monthly_rent" swaggertype:"number"`
	MonthlyOperatingExpenses   Amount       `json:"monthly_operating_expenses" swaggertype:"number"`
}

// PropertyResponse is a property with its resolved figures
type PropertyResponse struct {
	ID              uuid.UUID     `json:"id"`
	PropertyType    string        `json:"property_type"`
	Nickname        string        `json:"nickname"`
	EntityID        *uuid.UUID    `json:"entity_id,omitempty"`
	Address         AddressOutput `json:"address"`
	PurchasePrice   Amount        `json:"purchase_price" swaggertype:"number"`
	MarketValue     Amount        `json:"market_value" swaggertype:"number"`
	LoanBalance     Amount        `json:"loan_balance" swaggertype:"number"`
	Equity          Amount        `json:"equity" swaggertype:"number"`
	MonthlyRent     Amount        `json:"monthly_rent" swaggertype:"number"`
	AnnualNOI       Amount        `json:"annual_noi" swaggertype:"number"`
	MonthlyCashFlow Amount        `json:"monthly_cash_flow" swaggertype:"number"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// ToPropertyResponse converts a domain Property to a response
func ToPropertyResponse(p *property.Property) PropertyResponse {
	value := p.MarketValue()
	loan := p.LoanBalance()
	return PropertyResponse{
		ID:              p.ID,
		PropertyType:    string(p.Kind),
		Nickname:        p.Nickname,
		EntityID:        p.EntityID,
		Address:         toAddressOutput(p.Address),
		PurchasePrice:   ValueOf(p.PurchasePrice()),
		MarketValue:     ValueOf(value),
		LoanBalance:     ValueOf(loan),
		Equity:          ValueOf(value.Sub(loan)),
		MonthlyRent:     ValueOf(p.MonthlyRent()),
		AnnualNOI:       ValueOf(p.AnnualNOI()),
		MonthlyCashFlow: ValueOf(p.MonthlyCashFlow()),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// ListPropertiesRequest holds the list query parameters
type ListPropertiesRequest struct {
	Page         int    `form:"page" binding:"omitempty,min=1"`
	PageSize     int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy      string `form:"order_by"`
	OrderDir     string `form:"order_dir" binding:"omitempty,oneof=asc desc ASC DESC"`
	Search       string `form:"search"`
	PropertyType string `form:"property_type" binding:"omitempty,oneof=primary investment"`
	EntityID     string `form:"entity_id"`
}

// OverviewResponse is the overview screen of a property
type OverviewResponse struct {
	PropertyID                 uuid.UUID          `json:"property_id"`
	Nickname                   string             `json:"nickname"`
	PropertyType               string             `json:"property_type"`
	Address                    AddressOutput      `json:"address"`
	PurchaseOrRefinancePrice   Amount             `json:"purchase_or_refinance_price" swaggertype:"number"`
	CurrentMarketValueEstimate Amount             `json:"current_market_value_estimate" swaggertype:"number"`
	LoanBalance                Amount             `json:"loan_balance" swaggertype:"number"`
	AppreciationAmount         Amount             `json:"appreciation_amount" swaggertype:"number"`
	AppreciationPercent        Amount             `json:"appreciation_percent" swaggertype:"number"`
	EquityAmount               Amount             `json:"equity_amount" swaggertype:"number"`
	EquityPercent              Amount             `json:"equity_percent" swaggertype:"number"`
	LTVRatio                   Amount             `json:"ltv_ratio" swaggertype:"number"`
	Mortgage                   *MortgageResponse  `json:"mortgage,omitempty"`
	Insurance                  *InsuranceResponse `json:"insurance,omitempty"`
}

// MortgageRequest is the body of PUT /properties/:id/mortgage. Rates are
// percentages; amounts are monthly unless named otherwise.
type MortgageRequest struct {
	LenderName               string `json:"lender_name" binding:"max=200"`
	ServicerName             string `json:"servicer_name" binding:"max=200"`
	LoanNumber               string `json:"loan_number" binding:"max=100"`
	ClosingDate              Date   `json:"closing_date" swaggertype:"string" format:"date"`
	FirstPaymentDate         Date   `json:"first_payment_date" swaggertype:"string" format:"date"`
	MaturityDate             Date   `json:"maturity_date" swaggertype:"string" format:"date"`
	LoanAmount               Amount `json:"loan_amount" swaggertype:"number"`
	InterestRate             Amount `json:"interest_rate" swaggertype:"number"`
	TermMonths               *int   `json:"term_months" binding:"omitempty,min=0,max=600"`
	PrincipalInterestMonthly Amount `json:"principal_interest_monthly" swaggertype:"number"`
	PropertyTaxesMonthly     Amount `json:"property_taxes_monthly" swaggertype:"number"`
	InsuranceMonthly         Amount `json:"insurance_monthly" swaggertype:"number"`
	HOAMonthly               Amount `json:"hoa_monthly" swaggertype:"number"`
	PMIMonthly               Amount `json:"pmi_monthly" swaggertype:"number"`
	OtherMonthly             Amount `json:"other_monthly" swaggertype:"number"`
	YTDPrincipalPaid         Amount `json:"ytd_principal_paid" swaggertype:"number"`
	YTDInterestPaid          Amount `json:"ytd_interest_paid" swaggertype:"number"`
	CurrentBalance           Amount `json:"current_balance" swaggertype:"number"`
}

// MortgageResponse is the mortgage editor's view of a property
type MortgageResponse struct {
	LenderName               string `json:"lender_name"`
	ServicerName             string `json:"servicer_name"`
	LoanNumber               string `json:"loan_number"`
	ClosingDate              Date   `json:"closing_date" swaggertype:"string" format:"date"`
	FirstPaymentDate         Date   `json:"first_payment_date" swaggertype:"string" format:"date"`
	MaturityDate             Date   `json:"maturity_date" swaggertype:"string" format:"date"`
	LoanAmount               Amount `json:"loan_amount" swaggertype:"number"`
	InterestRate             Amount `json:"interest_rate" swaggertype:"number"`
	TermMonths               *int   `json:"term_months"`
	PrincipalInterestMonthly Amount `json:"principal_interest_monthly" swaggertype:"number"`
	PropertyTaxesMonthly     Amount `json:"property_taxes_monthly" swaggertype:"number"`
	InsuranceMonthly         Amount `json:"insurance_monthly" swaggertype:"number"`
	HOAMonthly               Amount `json:"hoa_monthly" swaggertype:"number"`
	PMIMonthly               Amount `json:"pmi_monthly" swaggertype:"number"`
	OtherMonthly             Amount `json:"other_monthly" swaggertype:"number"`
	YTDPrincipalPaid         Amount `json:"ytd_principal_paid" swaggertype:"number"`
	YTDInterestPaid          Amount `json:"ytd_interest_paid" swaggertype:"number"`
	CurrentBalance           Amount `json:"current_balance" swaggertype:"number"`
	TotalMonthlyPayment      Amount `json:"total_monthly_payment" swaggertype:"number"`
	YTDPaid                  Amount `json:"ytd_paid" swaggertype:"number"`
	RemainingTermMonths      int    `json:"remaining_term_months"`
}

func toMortgageResponse(v property.MortgageView) MortgageResponse {
	return MortgageResponse{
		LenderName:               v.LenderName,
		ServicerName:             v.ServicerName,
		LoanNumber:               v.LoanNumber,
		ClosingDate:              DateOf(v.ClosingDate),
		FirstPaymentDate:         DateOf(v.FirstPaymentDate),
		MaturityDate:             DateOf(v.MaturityDate),
		LoanAmount:               AmountOf(v.LoanAmount),
		InterestRate:             AmountOf(v.InterestRate),
		TermMonths:               v.TermMonths,
		PrincipalInterestMonthly: AmountOf(v.PrincipalInterestMonthly),
		PropertyTaxesMonthly:     AmountOf(v.PropertyTaxesMonthly),
		InsuranceMonthly:         AmountOf(v.InsuranceMonthly),
		HOAMonthly:               AmountOf(v.HOAMonthly),
		PMIMonthly:               AmountOf(v.PMIMonthly),
		OtherMonthly:             AmountOf(v.OtherMonthly),
		YTDPrincipalPaid:         AmountOf(v.YTDPrincipalPaid),
		YTDInterestPaid:          AmountOf(v.YTDInterestPaid),
		CurrentBalance:           AmountOf(v.CurrentBalance),
		TotalMonthlyPayment:      ValueOf(v.TotalMonthlyPayment),
		YTDPaid:                  ValueOf(v.YTDPaid),
		RemainingTermMonths:      v.RemainingTermMonths,
	}
}

// TaxRequest is the body of PUT /properties/:id/taxes
type TaxRequest struct {
	LegalDescription  string `json:"legal_description" binding:"max=2000"`
	County            string `json:"county" binding:"max=100"`
	TaxAuthority      string `json:"tax_authority" binding:"max=200"`
	AccountNumber     string `json:"account_number" binding:"max=100"`
	AssessedValue     Amount `json:"assessed_value" swaggertype:"number"`
	TaxableValue      Amount `json:"taxable_value" swaggertype:"number"`
	TaxRatePercent    Amount `json:"tax_rate_percent" swaggertype:"number"`
	TaxesPaidLastYear Amount `json:"taxes_paid_last_year" swaggertype:"number"`
	AnnualTaxAmount   Amount `json:"annual_tax_amount" swaggertype:"number"`
}

// TaxResponse is the tax editor's view of a property
type TaxResponse struct {
	LegalDescription  string `json:"legal_description"`
	County            string `json:"county"`
	TaxAuthority      string `json:"tax_authority"`
	AccountNumber     string `json:"account_number"`
	AssessedValue     Amount `json:"assessed_value" swaggertype:"number"`
	TaxableValue      Amount `json:"taxable_value" swaggertype:"number"`
	TaxRatePercent    Amount `json:"tax_rate_percent" swaggertype:"number"`
	TaxesPaidLastYear Amount `json:"taxes_paid_last_year" swaggertype:"number"`
	AnnualTaxAmount   Amount `json:"annual_tax_amount" swaggertype:"number"`
}

func toTaxResponse(v property.TaxView) TaxResponse {
	return TaxResponse{
		LegalDescription:  v.LegalDescription,
		County:            v.County,
		TaxAuthority:      v.TaxAuthority,
		AccountNumber:     v.AccountNumber,
		AssessedValue:     AmountOf(v.AssessedValue),
		TaxableValue:      AmountOf(v.TaxableValue),
		TaxRatePercent:    AmountOf(v.TaxRatePercent),
		TaxesPaidLastYear: AmountOf(v.TaxesPaidLastYear),
		AnnualTaxAmount:   AmountOf(v.AnnualTaxAmount),
	}
}

// InsuranceRequest is the body of the insurance editor and policy endpoints
type InsuranceRequest struct {
	InsuranceCompany          string `json:"insurance_company" binding:"max=200"`
	PolicyNumber              string `json:"policy_number" binding:"max=100"`
	AnnualPremium             Amount `json:"annual_premium" swaggertype:"number"`
	StartDate                 Date   `json:"start_date" swaggertype:"string" format:"date"`
	ExpirationDate            Date   `json:"expiration_date" swaggertype:"string" format:"date"`
	CoverageADwelling         Amount `json:"coverage_a_dwelling" swaggertype:"number"`
	CoverageBOtherStructures  Amount `json:"coverage_b_other_structures" swaggertype:"number"`
	CoverageCPersonalProperty Amount `json:"coverage_c_personal_property" swaggertype:"number"`
	AgentName                 string `json:"agent_name" binding:"max=200"`
	AgentPhone                string `json:"agent_phone" binding:"max=50"`
	AgentEmail                string `json:"agent_email" binding:"omitempty,max=255"`
	IsPrimary                 bool   `json:"is_primary"`
}

func (r InsuranceRequest) details() property.PolicyDetails {
	return property.PolicyDetails{
		InsuranceCompany:          r.InsuranceCompany,
		PolicyNumber:              r.PolicyNumber,
		AnnualPremium:             r.AnnualPremium.NullDecimal,
		StartDate:                 r.StartDate.Time,
		ExpirationDate:            r.ExpirationDate.Time,
		CoverageADwelling:         r.CoverageADwelling.NullDecimal,
		CoverageBOtherStructures:  r.CoverageBOtherStructures.NullDecimal,
		CoverageCPersonalProperty: r.CoverageCPersonalProperty.NullDecimal,
		AgentName:                 r.AgentName,
		AgentPhone:                r.AgentPhone,
		AgentEmail:                r.AgentEmail,
	}
}

// InsuranceResponse is an insurance policy with expiration flags
type InsuranceResponse struct {
	PolicyID                  *uuid.UUID `json:"policy_id"`
	InsuranceCompany          string     `json:"insurance_company"`
	PolicyNumber              string     `json:"policy_number"`
	AnnualPremium             Amount     `json:"annual_premium" swaggertype:"number"`
	StartDate                 Date       `json:"start_date" swaggertype:"string" format:"date"`
	ExpirationDate            Date       `json:"expiration_date" swaggertype:"string" format:"date"`
	CoverageADwelling         Amount     `json:"coverage_a_dwelling" swaggertype:"number"`
	CoverageBOtherStructures  Amount     `json:"coverage_b_other_structures" swaggertype:"number"`
	CoverageCPersonalProperty Amount     `json:"coverage_c_personal_property" swaggertype:"number"`
	AgentName                 string     `json:"agent_name"`
	AgentPhone                string     `json:"agent_phone"`
	AgentEmail                string     `json:"agent_email"`
	IsPrimary                 bool       `json:"is_primary"`
	DaysUntilExpiration       *int       `json:"days_until_expiration"`
	ExpiringSoon              bool       `json:"expiring_soon"`
	Expired                   bool       `json:"expired"`
}

func toInsuranceResponse(p *property.InsurancePolicy, now time.Time) InsuranceResponse {
	v := p.View(now)
	id := v.PolicyID
	return InsuranceResponse{
		PolicyID:                  &id,
		InsuranceCompany:          v.InsuranceCompany,
		PolicyNumber:              v.PolicyNumber,
		AnnualPremium:             AmountOf(v.AnnualPremium),
		StartDate:                 DateOf(v.StartDate),
		ExpirationDate:            DateOf(v.ExpirationDate),
		CoverageADwelling:         AmountOf(v.CoverageADwelling),
		CoverageBOtherStructures:  AmountOf(v.CoverageBOtherStructures),
		CoverageCPersonalProperty: AmountOf(v.CoverageCPersonalProperty),
		AgentName:                 v.AgentName,
		AgentPhone:                v.AgentPhone,
		AgentEmail:                v.AgentEmail,
		IsPrimary:                 p.IsPrimary,
		DaysUntilExpiration:       v.DaysUntilExpiration,
		ExpiringSoon:              v.ExpiringSoon,
		Expired:                   v.Expired,
	}
}

// UtilityRequest creates or updates a utility account
type UtilityRequest struct {
	UtilityType        string `json:"utility_type" binding:"omitempty,oneof=electric water gas internet trash sewer"`
	CompanyName        string `json:"company_name" binding:"max=200"`
	AccountNumber      string `json:"account_number" binding:"max=100"`
	MeterNumber        string `json:"meter_number" binding:"max=100"`
	CustomerPortalURL  string `json:"customer_portal_url" binding:"omitempty,max=500"`
	MonthlyAverageCost Amount `json:"monthly_average_cost" swaggertype:"number"`
	IsActive           *bool  `json:"is_active"`
}

func (r UtilityRequest) details() property.UtilityDetails {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return property.UtilityDetails{
		Type:               property.UtilityType(r.UtilityType),
		CompanyName:        r.CompanyName,
		AccountNumber:      r.AccountNumber,
		MeterNumber:        r.MeterNumber,
		CustomerPortalURL:  r.CustomerPortalURL,
		MonthlyAverageCost: r.MonthlyAverageCost.NullDecimal,
		IsActive:           active,
	}
}

// UtilityResponse represents a utility account
type UtilityResponse struct {
	ID                 uuid.UUID `json:"id"`
	PropertyID         uuid.UUID `json:"property_id"`
	UtilityType        string    `json:"utility_type"`
	CompanyName        string    `json:"company_name"`
	AccountNumber      string    `json:"account_number"`
	MeterNumber        string    `json:"meter_number"`
	CustomerPortalURL  string    `json:"customer_portal_url"`
	MonthlyAverageCost Amount    `json:"monthly_average_cost" swaggertype:"number"`
	IsActive           bool      `json:"is_active"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func toUtilityResponse(u *property.Utility) UtilityResponse {
	return UtilityResponse{
		ID:                 u.ID,
		PropertyID:         u.PropertyID,
		UtilityType:        string(u.Type),
		CompanyName:        u.CompanyName,
		AccountNumber:      u.AccountNumber,
		MeterNumber:        u.MeterNumber,
		CustomerPortalURL:  u.CustomerPortalURL,
		MonthlyAverageCost: AmountOf(u.MonthlyAverageCost),
		IsActive:           u.IsActive,
		CreatedAt:          u.CreatedAt,
		UpdatedAt:          u.UpdatedAt,
	}
}

// ApplianceRequest creates or updates an appliance
type ApplianceRequest struct {
	ApplianceType          string `json:"appliance_type"`
	Brand                  string `json:"brand" binding:"max=100"`
	Model                  string `json:"model" binding:"max=100"`
	SerialNumber           string `json:"serial_number" binding:"max=100"`
	SKU                    string `json:"sku" binding:"max=100"`
	PurchaseDate           Date   `json:"purchase_date" swaggertype:"string" format:"date"`
	WarrantyExpirationDate Date   `json:"warranty_expiration_date" swaggertype:"string" format:"date"`
	Price                  Amount `json:"price" swaggertype:"number"`
	Quantity               int    `json:"quantity" binding:"omitempty,min=1,max=1000"`
	Condition              string `json:"condition" binding:"omitempty,oneof=new good fair poor"`
	InstallationNotes      string `json:"installation_notes" binding:"max=2000"`
}

func (r ApplianceRequest) details() property.ApplianceDetails {
	return property.ApplianceDetails{
		Type:                   property.ApplianceType(r.ApplianceType),
		Brand:                  r.Brand,
		Model:                  r.Model,
		SerialNumber:           r.SerialNumber,
		SKU:                    r.SKU,
		PurchaseDate:           r.PurchaseDate.Time,
		WarrantyExpirationDate: r.WarrantyExpirationDate.Time,
		Price:                  r.Price.NullDecimal,
		Quantity:               r.Quantity,
		Condition:              property.Condition(r.Condition),
		InstallationNotes:      r.InstallationNotes,
	}
}

// ApplianceResponse represents an appliance
type ApplianceResponse struct {
	ID                     uuid.UUID `json:"id"`
	PropertyID             uuid.UUID `json:"property_id"`
	ApplianceType          string    `json:"appliance_type"`
	Brand                  string    `json:"brand"`
	Model                  string    `json:"model"`
	SerialNumber           string    `json:"serial_number"`
	SKU                    string    `json:"sku"`
	PurchaseDate           Date      `json:"purchase_date" swaggertype:"string" format:"date"`
	WarrantyExpirationDate Date      `json:"warranty_expiration_date" swaggertype:"string" format:"date"`
	UnderWarranty          bool      `json:"under_warranty"`
	Price                  Amount    `json:"price" swaggertype:"number"`
	Quantity               int       `json:"quantity"`
	Condition              string    `json:"condition"`
	InstallationNotes      string    `json:"installation_notes"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

func toApplianceResponse(a *property.Appliance, now time.Time) ApplianceResponse {
	return ApplianceResponse{
		ID:                     a.ID,
		PropertyID:             a.PropertyID,
		ApplianceType:          string(a.Type),
		Brand:                  a.Brand,
		Model:                  a.Model,
		SerialNumber:           a.SerialNumber,
		SKU:                    a.SKU,
		PurchaseDate:           DateOf(a.PurchaseDate),
		WarrantyExpirationDate: DateOf(a.WarrantyExpirationDate),
		UnderWarranty:          a.UnderWarranty(now),
		Price:                  AmountOf(a.Price),
		Quantity:               a.Quantity,
		Condition:              string(a.Condition),
		InstallationNotes:      a.InstallationNotes,
		CreatedAt:              a.CreatedAt,
		UpdatedAt:              a.UpdatedAt,
	}
}

// DocumentRequest registers a property document
type DocumentRequest struct {
	DocumentType string         `json:"document_type" binding:"max=100"`
	FileName     string         `json:"file_name" binding:"required,notblank,max=255"`
	FilePath     string         `json:"file_path" binding:"required,notblank,max=1000"`
	FileURL      string         `json:"file_url" binding:"max=2000"`
	FileSize     int64          `json:"file_size" binding:"min=0"`
	Metadata     map[string]any `json:"metadata"`
}

// DocumentResponse represents a property document
type DocumentResponse struct {
	ID           uuid.UUID      `json:"id"`
	PropertyID   uuid.UUID      `json:"property_id"`
	DocumentType string         `json:"document_type"`
	FileName     string         `json:"file_name"`
	FilePath     string         `json:"file_path"`
	FileURL      string         `json:"file_url,omitempty"`
	FileSize     int64          `json:"file_size"`
	Metadata     map[string]any `json:"metadata,omitempty"`
	UploadedAt   time.Time      `json:"uploaded_at"`
}

func toDocumentResponse(d *property.Document) DocumentResponse {
	return DocumentResponse{
		ID:           d.ID,
		PropertyID:   d.PropertyID,
		DocumentType: d.DocumentType,
		FileName:     d.FileName,
		FilePath:     d.FilePath,
		FileURL:      d.FileURL,
		FileSize:     d.FileSize,
		Metadata:     d.Metadata,
		UploadedAt:   d.UploadedAt,
	}
}
