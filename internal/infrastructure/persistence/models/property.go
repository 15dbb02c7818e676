package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/owneriq/backend/internal/domain/property"
	"github.com/owneriq/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// PropertyModel is the persistence model for the Property aggregate root.
// Legacy and current column names coexist; both are stored as read.
type PropertyModel struct {
	OwnedModel
	EntityID     *uuid.UUID    `gorm:"column:entity_id;type:uuid;index"`
	PropertyType property.Kind `gorm:"column:property_type;type:varchar(20);not null;default:'primary'"`
	Nickname     string        `gorm:"column:nickname;type:varchar(200)"`
	Address      string        `gorm:"column:address;type:varchar(255)"`
	AddressLine2 string        `gorm:"column:address_line2;type:varchar(255)"`
	City         string        `gorm:"column:city;type:varchar(100)"`
	State        string        `gorm:"column:state;type:varchar(50)"`
	Zip          string        `gorm:"column:zip;type:varchar(20)"`

	PurchasePrice              decimal.NullDecimal `gorm:"column:purchase_price;type:decimal(14,2)"`
	RefinancePrice             decimal.NullDecimal `gorm:"column:refinance_price;type:decimal(14,2)"`
	CurrentMarketValueEstimate decimal.NullDecimal `gorm:"column:current_market_value_estimate;type:decimal(14,2)"`
	Valuation                  decimal.NullDecimal `gorm:"column:valuation;type:decimal(14,2)"`
	LoanAmount                 decimal.NullDecimal `gorm:"column:loan_amount;type:decimal(14,2)"`
	LoanBalance                decimal.NullDecimal `gorm:"column:loan_balance;type:decimal(14,2)"`
	CurrentBalance             decimal.NullDecimal `gorm:"column:current_balance;type:decimal(14,2)"`

	LenderName                      string              `gorm:"column:lender_name;type:varchar(200)"`
	ServicerName                    string              `gorm:"column:servicer_name;type:varchar(200)"`
	LoanNumber                      string              `gorm:"column:loan_number;type:varchar(100)"`
	ClosingDate                     *time.Time          `gorm:"column:closing_date;type:date"`
	FirstPaymentDate                *time.Time          `gorm:"column:first_payment_date;type:date"`
	MaturityDate                    *time.Time          `gorm:"column:maturity_date;type:date"`
	InterestRate                    decimal.NullDecimal `gorm:"column:interest_rate;type:decimal(9,6)"`
	LoanRate                        decimal.NullDecimal `gorm:"column:loan_rate;type:decimal(9,6)"`
	TermMonths                      *int                `gorm:"column:term_months"`
	TermYears                       *int                `gorm:"column:term_years"`
	PrincipalInterestMonthly        decimal.NullDecimal `gorm:"column:principal_interest_monthly;type:decimal(12,2)"`
	MonthlyPaymentPrincipalInterest decimal.NullDecimal `gorm:"column:monthly_payment_principal_interest;type:decimal(12,2)"`
	PropertyTaxesMonthly            decimal.NullDecimal `gorm:"column:property_taxes_monthly;type:decimal(12,2)"`
	EscrowPropertyTax               decimal.NullDecimal `gorm:"column:escrow_property_tax;type:decimal(12,2)"`
	InsuranceMonthly                decimal.NullDecimal `gorm:"column:insurance_monthly;type:decimal(12,2)"`
	EscrowHomeOwnerInsurance        decimal.NullDecimal `gorm:"column:escrow_home_owner_insurance;type:decimal(12,2)"`
	HOAMonthly                      decimal.NullDecimal `gorm:"column:hoa_monthly;type:decimal(12,2)"`
	HOA                             decimal.NullDecimal `gorm:"column:hoa;type:decimal(12,2)"`
	PMIMonthly                      decimal.NullDecimal `gorm:"column:pmi_monthly;type:decimal(12,2)"`
	OtherMonthly                    decimal.NullDecimal `gorm:"column:other_monthly;type:decimal(12,2)"`
	YTDPrincipalPaid                decimal.NullDecimal `gorm:"column:ytd_principal_paid;type:decimal(14,2)"`
	YTDInterestPaid                 decimal.NullDecimal `gorm:"column:ytd_interest_paid;type:decimal(14,2)"`

	LegalDescription                string              `gorm:"column:legal_description;type:text"`
	PropertyAddressLegalDescription string              `gorm:"column:property_address_legal_description;type:text"`
	County                          string              `gorm:"column:county;type:varchar(100)"`
	PropertyTaxCounty               string              `gorm:"column:property_tax_county;type:varchar(100)"`
	TaxAuthority                    string              `gorm:"column:tax_authority;type:varchar(200)"`
	AccountNumber                   string              `gorm:"column:account_number;type:varchar(100)"`
	AssessedValue                   decimal.NullDecimal `gorm:"column:assessed_value;type:decimal(14,2)"`
	TaxableValue                    decimal.NullDecimal `gorm:"column:taxable_value;type:decimal(14,2)"`
	TaxRatePercent                  decimal.NullDecimal `gorm:"column:tax_rate_percent;type:decimal(9,6)"`
	PropertyTaxPercentage           decimal.NullDecimal `gorm:"column:property_tax_percentage;type:decimal(9,6)"`
	TaxesPaidLastYear               decimal.NullDecimal `gorm:"column:taxes_paid_last_year;type:decimal(12,2)"`
	TaxesPaidYTD                    decimal.NullDecimal `gorm:"column:taxes_paid_ytd;type:decimal(12,2)"`
	AnnualTaxAmount                 decimal.NullDecimal `gorm:"column:annual_tax_amount;type:decimal(12,2)"`
	Year1                           decimal.NullDecimal `gorm:"column:year_1;type:decimal(12,2)"`

	MonthlyRent              decimal.NullDecimal `gorm:"column:monthly_rent;type:decimal(12,2)"`
	RentalIncome             decimal.NullDecimal `gorm:"column:rental_income;type:decimal(12,2)"`
	MonthlyOperatingExpenses decimal.NullDecimal `gorm:"column:monthly_operating_expenses;type:decimal(12,2)"`
}

// TableName returns the table name for GORM
func (PropertyModel) TableName() string {
	return "properties"
}

// ToDomain converts the persistence model to a domain Property.
func (m *PropertyModel) ToDomain() *property.Property {
	return &property.Property{
		OwnedAggregateRoot: m.ToOwnedAggregateRoot(),
		EntityID:           m.EntityID,
		Kind:               m.PropertyType,
		Nickname:           m.Nickname,
		Address: valueobject.PostalAddress{
			Line1:       m.Address,
			Line2:       m.AddressLine2,
			City:        m.City,
			StateCode:   m.State,
			PostalCode:  m.Zip,
			CountryCode: "US",
		},
		Valuation: property.Valuation{
			PurchasePrice:              m.PurchasePrice,
			RefinancePrice:             m.RefinancePrice,
			CurrentMarketValueEstimate: m.CurrentMarketValueEstimate,
			Valuation:                  m.Valuation,
			LoanAmount:                 m.LoanAmount,
			LoanBalance:                m.LoanBalance,
			CurrentBalance:             m.CurrentBalance,
		},
		Loan: property.Loan{
			LenderName:                      m.LenderName,
			ServicerName:                    m.ServicerName,
			LoanNumber:                      m.LoanNumber,
			ClosingDate:                     m.ClosingDate,
			FirstPaymentDate:                m.FirstPaymentDate,
			MaturityDate:                    m.MaturityDate,
			InterestRate:                    m.InterestRate,
			LoanRate:                        m.LoanRate,
			TermMonths:                      m.TermMonths,
			TermYears:                       m.TermYears,
			PrincipalInterestMonthly:        m.PrincipalInterestMonthly,
			MonthlyPaymentPrincipalInterest: m.MonthlyPaymentPrincipalInterest,
			PropertyTaxesMonthly:            m.PropertyTaxesMonthly,
			EscrowPropertyTax:               m.EscrowPropertyTax,
			InsuranceMonthly:                m.InsuranceMonthly,
			EscrowHomeOwnerInsurance:        m.EscrowHomeOwnerInsurance,
			HOAMonthly:                      m.HOAMonthly,
			HOA:                             m.HOA,
			PMIMonthly:                      m.PMIMonthly,
			OtherMonthly:                    m.OtherMonthly,
			YTDPrincipalPaid:                m.YTDPrincipalPaid,
			YTDInterestPaid:                 m.YTDInterestPaid,
		},
		Tax: property.Tax{
			LegalDescription:                m.LegalDescription,
			PropertyAddressLegalDescription: m.PropertyAddressLegalDescription,
			County:                          m.County,
			PropertyTaxCounty:               m.PropertyTaxCounty,
			TaxAuthority:                    m.TaxAuthority,
			AccountNumber:                   m.AccountNumber,
			AssessedValue:                   m.AssessedValue,
			TaxableValue:                    m.TaxableValue,
			TaxRatePercent:                  m.TaxRatePercent,
			PropertyTaxPercentage:           m.PropertyTaxPercentage,
			TaxesPaidLastYear:               m.TaxesPaidLastYear,
			TaxesPaidYTD:                    m.TaxesPaidYTD,
			AnnualTaxAmount:                 m.AnnualTaxAmount,
			Year1:                           m.Year1,
		},
		Income: property.Income{
			MonthlyRent:              m.MonthlyRent,
			RentalIncome:             m.RentalIncome,
			MonthlyOperatingExpenses: m.MonthlyOperatingExpenses,
		},
	}
}

// PropertyModelFromDomain creates a persistence model from a domain Property.
func PropertyModelFromDomain(p *property.Property) *PropertyModel {
	m := &PropertyModel{
		EntityID:     p.EntityID,
		PropertyType: p.Kind,
		Nickname:     p.Nickname,
		Address:      p.Address.Line1,
		AddressLine2: p.Address.Line2,
		City:         p.Address.City,
		State:        p.Address.StateCode,
		Zip:          p.Address.PostalCode,

		PurchasePrice:              p.Valuation.PurchasePrice,
		RefinancePrice:             p.Valuation.RefinancePrice,
		CurrentMarketValueEstimate: p.Valuation.CurrentMarketValueEstimate,
		Valuation:                  p.Valuation.Valuation,
		LoanAmount:                 p.Valuation.LoanAmount,
		LoanBalance:                p.Valuation.LoanBalance,
		CurrentBalance:             p.Valuation.CurrentBalance,

		LenderName:                      p.Loan.LenderName,
		ServicerName:                    p.Loan.ServicerName,
		LoanNumber:                      p.Loan.LoanNumber,
		ClosingDate:                     p.Loan.ClosingDate,
		FirstPaymentDate:                p.Loan.FirstPaymentDate,
		MaturityDate:                    p.Loan.MaturityDate,
		InterestRate:                    p.Loan.InterestRate,
		LoanRate:                        p.Loan.LoanRate,
		TermMonths:                      p.Loan.TermMonths,
		TermYears:                       p.Loan.TermYears,
		PrincipalInterestMonthly:        p.Loan.PrincipalInterestMonthly,
		MonthlyPaymentPrincipalInterest: p.Loan.MonthlyPaymentPrincipalInterest,
		PropertyTaxesMonthly:            p.Loan.PropertyTaxesMonthly,
		EscrowPropertyTax:               p.Loan.EscrowPropertyTax,
		InsuranceMonthly:                p.Loan.InsuranceMonthly,
		EscrowHomeOwnerInsurance:        p.Loan.EscrowHomeOwnerInsurance,
		HOAMonthly:                      p.Loan.HOAMonthly,
		HOA:                             p.Loan.HOA,
		PMIMonthly:                      p.Loan.PMIMonthly,
		OtherMonthly:                    p.Loan.OtherMonthly,
		YTDPrincipalPaid:                p.Loan.YTDPrincipalPaid,
		YTDInterestPaid:                 p.Loan.YTDInterestPaid,

		LegalDescription:                p.Tax.LegalDescription,
		PropertyAddressLegalDescription: p.Tax.PropertyAddressLegalDescription,
		County:                          p.Tax.County,
		PropertyTaxCounty:               p.Tax.PropertyTaxCounty,
		TaxAuthority:                    p.Tax.TaxAuthority,
		AccountNumber:                   p.Tax.AccountNumber,
		AssessedValue:                   p.Tax.AssessedValue,
		TaxableValue:                    p.Tax.TaxableValue,
		TaxRatePercent:                  p.Tax.TaxRatePercent,
		PropertyTaxPercentage:           p.Tax.PropertyTaxPercentage,
		TaxesPaidLastYear:               p.Tax.TaxesPaidLastYear,
		TaxesPaidYTD:                    p.Tax.TaxesPaidYTD,
		AnnualTaxAmount:                 p.Tax.AnnualTaxAmount,
		Year1:                           p.Tax.Year1,

		MonthlyRent:              p.Income.MonthlyRent,
		RentalIncome:             p.Income.RentalIncome,
		MonthlyOperatingExpenses: p.Income.MonthlyOperatingExpenses,
	}
	m.FromDomainOwnedAggregateRoot(p.OwnedAggregateRoot)
	return m
}

// UtilityModel is the persistence model for a property utility account.
type UtilityModel struct {
	BaseModel
	PropertyID         uuid.UUID            `gorm:"column:property_id;type:uuid;not null;index"`
	UtilityType        property.UtilityType `gorm:"column:utility_type;type:varchar(20);not null"`
	CompanyName        string               `gorm:"column:company_name;type:varchar(200)"`
	AccountNumber      string               `gorm:"column:account_number;type:varchar(100)"`
	MeterNumber        string               `gorm:"column:meter_number;type:varchar(100)"`
	CustomerPortalURL  string               `gorm:"column:customer_portal_url;type:varchar(500)"`
	MonthlyAverageCost decimal.NullDecimal  `gorm:"column:monthly_average_cost;type:decimal(10,2)"`
	IsActive           bool                 `gorm:"column:is_active;not null;default:true"`
}

// TableName returns the table name for GORM
func (UtilityModel) TableName() string {
	return "property_utilities"
}

// ToDomain converts the persistence model to a domain Utility.
func (m *UtilityModel) ToDomain() *property.Utility {
	return &property.Utility{
		BaseEntity:         m.BaseModel.ToDomain(),
		PropertyID:         m.PropertyID,
		Type:               m.UtilityType,
		CompanyName:        m.CompanyName,
		AccountNumber:      m.AccountNumber,
		MeterNumber:        m.MeterNumber,
		CustomerPortalURL:  m.CustomerPortalURL,
		MonthlyAverageCost: m.MonthlyAverageCost,
		IsActive:           m.IsActive,
	}
}

// UtilityModelFromDomain creates a persistence model from a domain Utility.
func UtilityModelFromDomain(u *property.Utility) *UtilityModel {
	m := &UtilityModel{
		PropertyID:         u.PropertyID,
		UtilityType:        u.Type,
		CompanyName:        u.CompanyName,
		AccountNumber:      u.AccountNumber,
		MeterNumber:        u.MeterNumber,
		CustomerPortalURL:  u.CustomerPortalURL,
		MonthlyAverageCost: u.MonthlyAverageCost,
		IsActive:           u.IsActive,
	}
	m.FromDomainBaseEntity(u.BaseEntity)
	return m
}

// ApplianceModel is the persistence model for a property appliance.
type ApplianceModel struct {
	BaseModel
	PropertyID             uuid.UUID              `gorm:"column:property_id;type:uuid;not null;index"`
	ApplianceType          property.ApplianceType `gorm:"column:appliance_type;type:varchar(30);not null"`
	Brand                  string                 `gorm:"column:brand;type:varchar(100)"`
	Model                  string                 `gorm:"column:model;type:varchar(100)"`
	SerialNumber           string                 `gorm:"column:serial_number;type:varchar(100)"`
	SKU                    string                 `gorm:"column:sku;type:varchar(100)"`
	PurchaseDate           *time.Time             `gorm:"column:purchase_date;type:date"`
	WarrantyExpirationDate *time.Time             `gorm:"column:warranty_expiration_date;type:date"`
	Price                  decimal.NullDecimal    `gorm:"column:price;type:decimal(10,2)"`
	Quantity               int                    `gorm:"column:quantity;not null;default:1"`
	Condition              property.Condition     `gorm:"column:condition;type:varchar(10);not null;default:'good'"`
	InstallationNotes      string                 `gorm:"column:installation_notes;type:text"`
}

// TableName returns the table name for GORM
func (ApplianceModel) TableName() string {
	return "property_appliances"
}

// ToDomain converts the persistence model to a domain Appliance.
func (m *ApplianceModel) ToDomain() *property.Appliance {
	return &property.Appliance{
		BaseEntity:             m.BaseModel.ToDomain(),
		PropertyID:             m.PropertyID,
		Type:                   m.ApplianceType,
		Brand:                  m.Brand,
		Model:                  m.Model,
		SerialNumber:           m.SerialNumber,
		SKU:                    m.SKU,
		PurchaseDate:           m.PurchaseDate,
		WarrantyExpirationDate: m.WarrantyExpirationDate,
		Price:                  m.Price,
		Quantity:               m.Quantity,
		Condition:              m.Condition,
		InstallationNotes:      m.InstallationNotes,
	}
}

// ApplianceModelFromDomain creates a persistence model from a domain Appliance.
func ApplianceModelFromDomain(a *property.Appliance) *ApplianceModel {
	m := &ApplianceModel{
		PropertyID:             a.PropertyID,
		ApplianceType:          a.Type,
		Brand:                  a.Brand,
		Model:                  a.Model,
		SerialNumber:           a.SerialNumber,
		SKU:                    a.SKU,
		PurchaseDate:           a.PurchaseDate,
		WarrantyExpirationDate: a.WarrantyExpirationDate,
		Price:                  a.Price,
		Quantity:               a.Quantity,
		Condition:              a.Condition,
		InstallationNotes:      a.InstallationNotes,
	}
	m.FromDomainBaseEntity(a.BaseEntity)
	return m
}

// InsurancePolicyModel is the persistence model for a homeowner's insurance policy.
type InsurancePolicyModel struct {
	BaseModel
	PropertyID                 uuid.UUID           `gorm:"column:property_id;type:uuid;not null;index"`
	InsuranceCompany           string              `gorm:"column:insurance_company;type:varchar(200)"`
	InsurancePolicyNumber      string              `gorm:"column:insurance_policy_number;type:varchar(100)"`
	InsuranceInitialPremium    decimal.NullDecimal `gorm:"column:insurance_initial_premium;type:decimal(12,2)"`
	HOIEffectiveDate           *time.Time          `gorm:"column:hoi_effective_date;type:date"`
	HOIExpirationDate          *time.Time          `gorm:"column:hoi_expiration_date;type:date"`
	CoverageADwelling          decimal.NullDecimal `gorm:"column:coverage_a_dwelling;type:decimal(14,2)"`
	CoverageBOtherStructures   decimal.NullDecimal `gorm:"column:coverage_b_other_structures;type:decimal(14,2)"`
	CoverageBStructures        decimal.NullDecimal `gorm:"column:coverage_b_structures;type:decimal(14,2)"`
	CoverageCPersonalProperty  decimal.NullDecimal `gorm:"column:coverage_c_personal_property;type:decimal(14,2)"`
	CoverageCProperty          decimal.NullDecimal `gorm:"column:coverage_c_property;type:decimal(14,2)"`
	AgentName                  string              `gorm:"column:agent_name;type:varchar(200)"`
	InsuranceAgentName         string              `gorm:"column:insurance_agent_name;type:varchar(200)"`
	AgentPhone                 string              `gorm:"column:agent_phone;type:varchar(50)"`
	InsuranceAgentPhoneNumber  string              `gorm:"column:insurance_agent_phone_number;type:varchar(50)"`
	AgentEmail                 string              `gorm:"column:agent_email;type:varchar(255)"`
	InsuranceAgentEmailAddress string              `gorm:"column:insurance_agent_email_address;type:varchar(255)"`
	IsPrimary                  bool                `gorm:"column:is_primary;not null;default:false"`
}

// TableName returns the table name for GORM
func (InsurancePolicyModel) TableName() string {
	return "property_insurance_policies"
}

// ToDomain converts the persistence model to a domain InsurancePolicy.
func (m *InsurancePolicyModel) ToDomain() *property.InsurancePolicy {
	return &property.InsurancePolicy{
		BaseEntity:                 m.BaseModel.ToDomain(),
		PropertyID:                 m.PropertyID,
		InsuranceCompany:           m.InsuranceCompany,
		PolicyNumber:               m.InsurancePolicyNumber,
		InitialPremium:             m.InsuranceInitialPremium,
		EffectiveDate:              m.HOIEffectiveDate,
		ExpirationDate:             m.HOIExpirationDate,
		CoverageADwelling:          m.CoverageADwelling,
		CoverageBOtherStructures:   m.CoverageBOtherStructures,
		CoverageBStructures:        m.CoverageBStructures,
		CoverageCPersonalProperty:  m.CoverageCPersonalProperty,
		CoverageCProperty:          m.CoverageCProperty,
		AgentName:                  m.AgentName,
		InsuranceAgentName:         m.InsuranceAgentName,
		AgentPhone:                 m.AgentPhone,
		InsuranceAgentPhoneNumber:  m.InsuranceAgentPhoneNumber,
		AgentEmail:                 m.AgentEmail,
		InsuranceAgentEmailAddress: m.InsuranceAgentEmailAddress,
		IsPrimary:                  m.IsPrimary,
	}
}

// InsurancePolicyModelFromDomain creates a persistence model from a domain InsurancePolicy.
func InsurancePolicyModelFromDomain(p *property.InsurancePolicy) *InsurancePolicyModel {
	m := &InsurancePolicyModel{
		PropertyID:                 p.PropertyID,
		InsuranceCompany:           p.InsuranceCompany,
		InsurancePolicyNumber:      p.PolicyNumber,
		InsuranceInitialPremium:    p.InitialPremium,
		HOIEffectiveDate:           p.EffectiveDate,
		HOIExpirationDate:          p.ExpirationDate,
		CoverageADwelling:          p.CoverageADwelling,
		CoverageBOtherStructures:   p.CoverageBOtherStructures,
		CoverageBStructures:        p.CoverageBStructures,
		CoverageCPersonalProperty:  p.CoverageCPersonalProperty,
		CoverageCProperty:          p.CoverageCProperty,
		AgentName:                  p.AgentName,
		InsuranceAgentName:         p.InsuranceAgentName,
		AgentPhone:                 p.AgentPhone,
		InsuranceAgentPhoneNumber:  p.InsuranceAgentPhoneNumber,
		AgentEmail:                 p.AgentEmail,
		InsuranceAgentEmailAddress: p.InsuranceAgentEmailAddress,
		IsPrimary:                  p.IsPrimary,
	}
	m.FromDomainBaseEntity(p.BaseEntity)
	return m
}

// PropertyDocumentModel is the persistence model for a property document.
type PropertyDocumentModel struct {
	BaseModel
	PropertyID   uuid.UUID `gorm:"column:property_id;type:uuid;not null;index"`
	OwnerID      string    `gorm:"column:owner_id;type:varchar(255);not null;index"`
	DocumentType string    `gorm:"column:document_type;type:varchar(50);not null;default:'unknown'"`
	FileName     string    `gorm:"column:file_name;type:varchar(255);not null"`
	FilePath     string    `gorm:"column:file_path;type:varchar(500);not null"`
	FileURL      string    `gorm:"column:file_url;type:varchar(1000)"`
	FileSize     int64     `gorm:"column:file_size;type:bigint"`
	MetadataJSON string    `gorm:"column:metadata;type:jsonb;default:'{}'"`
	UploadedAt   time.Time `gorm:"column:uploaded_at;not null"`
}

// TableName returns the table name for GORM
func (PropertyDocumentModel) TableName() string {
	return "property_documents"
}

// ToDomain converts the persistence model to a domain Document.
func (m *PropertyDocumentModel) ToDomain() *property.Document {
	return &property.Document{
		BaseEntity:   m.BaseModel.ToDomain(),
		PropertyID:   m.PropertyID,
		OwnerID:      m.OwnerID,
		DocumentType: m.DocumentType,
		FileName:     m.FileName,
		FilePath:     m.FilePath,
		FileURL:      m.FileURL,
		FileSize:     m.FileSize,
		Metadata:     decodeJSONMap(m.MetadataJSON),
		UploadedAt:   m.UploadedAt,
	}
}

// PropertyDocumentModelFromDomain creates a persistence model from a domain Document.
func PropertyDocumentModelFromDomain(d *property.Document) *PropertyDocumentModel {
	m := &PropertyDocumentModel{
		PropertyID:   d.PropertyID,
		OwnerID:      d.OwnerID,
		DocumentType: d.DocumentType,
		FileName:     d.FileName,
		FilePath:     d.FilePath,
		FileURL:      d.FileURL,
		FileSize:     d.FileSize,
		MetadataJSON: encodeJSONMap(d.Metadata),
		UploadedAt:   d.UploadedAt,
	}
	m.FromDomainBaseEntity(d.BaseEntity)
	return m
}
