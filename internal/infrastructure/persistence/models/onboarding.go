package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/owneriq/backend/internal/domain/onboarding"
	"github.com/owneriq/backend/internal/domain/property"
	"github.com/owneriq/backend/internal/domain/shared"
	"github.com/owneriq/backend/internal/domain/shared/valueobject"
)

// OnboardingProfileModel is the persistence model for the onboarding Profile.
type OnboardingProfileModel struct {
	BaseModel
	OwnerID                 string              `gorm:"column:owner_id;type:varchar(255);not null;uniqueIndex"`
	OwnerName               string              `gorm:"column:owner_name;type:varchar(200)"`
	OwnerEmail              string              `gorm:"column:owner_email;type:varchar(255)"`
	OwnerPhone              string              `gorm:"column:owner_phone;type:varchar(50)"`
	UserType                onboarding.UserType `gorm:"column:user_type;type:varchar(20);not null;default:'HOMEOWNER'"`
	HasPrimaryResidence     bool                `gorm:"column:has_primary_residence;not null;default:false"`
	InvestmentPropertyCount int                 `gorm:"column:investment_property_count;not null;default:0"`
	OnboardingStatus        onboarding.Status   `gorm:"column:onboarding_status;type:varchar(20);not null;default:'INCOMPLETE'"`
	CurrentStep             int                 `gorm:"column:current_step;not null;default:1"`
	PropertyIndex           int                 `gorm:"column:property_index;not null;default:1"`
	CurrentBatchID          *uuid.UUID          `gorm:"column:current_batch_id;type:uuid"`
}

// TableName returns the table name for GORM
func (OnboardingProfileModel) TableName() string {
	return "onboarding_profiles"
}

// ToDomain converts the persistence model to a domain Profile.
func (m *OnboardingProfileModel) ToDomain() *onboarding.Profile {
	return &onboarding.Profile{
		OwnedAggregateRoot: shared.OwnedAggregateRoot{
			BaseAggregateRoot: shared.BaseAggregateRoot{BaseEntity: m.BaseModel.ToDomain()},
			OwnerID:           m.OwnerID,
		},
		OwnerName:               m.OwnerName,
		OwnerEmail:              m.OwnerEmail,
		OwnerPhone:              m.OwnerPhone,
		UserType:                m.UserType,
		HasPrimaryResidence:     m.HasPrimaryResidence,
		InvestmentPropertyCount: m.InvestmentPropertyCount,
		Status:                  m.OnboardingStatus,
		CurrentStep:             onboarding.Step(m.CurrentStep),
		PropertyIndex:           m.PropertyIndex,
		CurrentBatchID:          m.CurrentBatchID,
	}
}

// OnboardingProfileModelFromDomain creates a persistence model from a domain Profile.
func OnboardingProfileModelFromDomain(p *onboarding.Profile) *OnboardingProfileModel {
	m := &OnboardingProfileModel{
		OwnerID:                 p.OwnerID,
		OwnerName:               p.OwnerName,
		OwnerEmail:              p.OwnerEmail,
		OwnerPhone:              p.OwnerPhone,
		UserType:                p.UserType,
		HasPrimaryResidence:     p.HasPrimaryResidence,
		InvestmentPropertyCount: p.InvestmentPropertyCount,
		OnboardingStatus:        p.Status,
		CurrentStep:             int(p.CurrentStep),
		PropertyIndex:           p.PropertyIndex,
		CurrentBatchID:          p.CurrentBatchID,
	}
	m.FromDomainBaseEntity(p.BaseEntity)
	return m
}

// ImportBatchModel is the persistence model for a DocumentBatch.
type ImportBatchModel struct {
	OwnedModel
	PropertyID         *uuid.UUID             `gorm:"column:property_id;type:uuid"`
	PropertyType       property.Kind          `gorm:"column:property_type;type:varchar(20);not null"`
	EntityID           *uuid.UUID             `gorm:"column:entity_id;type:uuid"`
	Address            string                 `gorm:"column:address;type:varchar(255)"`
	City               string                 `gorm:"column:city;type:varchar(100)"`
	State              string                 `gorm:"column:state;type:varchar(50)"`
	Zip                string                 `gorm:"column:zip;type:varchar(20)"`
	Refinanced         bool                   `gorm:"column:refinanced;not null;default:false"`
	OwnedByCompany     bool                   `gorm:"column:owned_by_company;not null;default:false"`
	Status             onboarding.BatchStatus `gorm:"column:status;type:varchar(20);not null;default:'PENDING'"`
	DocumentsRequired  int                    `gorm:"column:documents_required;not null;default:0"`
	DocumentsCompleted int                    `gorm:"column:documents_completed;not null;default:0"`
	PropertyIndex      int                    `gorm:"column:property_index;not null;default:1"`
}

// TableName returns the table name for GORM
func (ImportBatchModel) TableName() string {
	return "import_batches"
}

// ToDomain converts the persistence model to a domain DocumentBatch.
func (m *ImportBatchModel) ToDomain() *onboarding.DocumentBatch {
	return &onboarding.DocumentBatch{
		OwnedAggregateRoot: m.ToOwnedAggregateRoot(),
		PropertyID:         m.PropertyID,
		PropertyType:       m.PropertyType,
		EntityID:           m.EntityID,
		Address: valueobject.PostalAddress{
			Line1:       m.Address,
			City:        m.City,
			StateCode:   m.State,
			PostalCode:  m.Zip,
			CountryCode: "US",
		},
		Refinanced:         m.Refinanced,
		OwnedByCompany:     m.OwnedByCompany,
		Status:             m.Status,
		DocumentsRequired:  m.DocumentsRequired,
		DocumentsCompleted: m.DocumentsCompleted,
		PropertyIndex:      m.PropertyIndex,
	}
}

// ImportBatchModelFromDomain creates a persistence model from a domain DocumentBatch.
func ImportBatchModelFromDomain(b *onboarding.DocumentBatch) *ImportBatchModel {
	m := &ImportBatchModel{
		PropertyID:         b.PropertyID,
		PropertyType:       b.PropertyType,
		EntityID:           b.EntityID,
		Address:            b.Address.Line1,
		City:               b.Address.City,
		State:              b.Address.StateCode,
		Zip:                b.Address.PostalCode,
		Refinanced:         b.Refinanced,
		OwnedByCompany:     b.OwnedByCompany,
		Status:             b.Status,
		DocumentsRequired:  b.DocumentsRequired,
		DocumentsCompleted: b.DocumentsCompleted,
		PropertyIndex:      b.PropertyIndex,
	}
	m.FromDomainOwnedAggregateRoot(b.OwnedAggregateRoot)
	return m
}

// DocumentTypeModel is a row of the seeded document type catalog.
type DocumentTypeModel struct {
	DocTypeID             string    `gorm:"column:doc_type_id;type:varchar(50);primary_key"`
	Name                  string    `gorm:"column:name;type:varchar(200);not null"`
	Description           string    `gorm:"column:description;type:text"`
	IsRequiredForAll      bool      `gorm:"column:is_required_for_all;not null;default:false"`
	IsRequiredForInvestor bool      `gorm:"column:is_required_for_investor;not null;default:false"`
	IsOptional            bool      `gorm:"column:is_optional;not null;default:false"`
	SortOrder             int       `gorm:"column:sort_order;not null;default:0"`
	CreatedAt             time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (DocumentTypeModel) TableName() string {
	return "document_types"
}

// ToDomain converts the persistence model to a domain DocumentType.
func (m *DocumentTypeModel) ToDomain() onboarding.DocumentType {
	return onboarding.DocumentType{
		DocTypeID:             m.DocTypeID,
		Name:                  m.Name,
		Description:           m.Description,
		IsRequiredForAll:      m.IsRequiredForAll,
		IsRequiredForInvestor: m.IsRequiredForInvestor,
		IsOptional:            m.IsOptional,
		SortOrder:             m.SortOrder,
	}
}

// DocumentUploadModel is the persistence model for a DocumentUpload.
type DocumentUploadModel struct {
	BaseModel
	BatchID      uuid.UUID               `gorm:"column:batch_id;type:uuid;not null;index"`
	OwnerID      string                  `gorm:"column:owner_id;type:varchar(255);not null;index"`
	DocTypeID    string                  `gorm:"column:doc_type_id;type:varchar(50);not null"`
	FileName     string                  `gorm:"column:file_name;type:varchar(255);not null"`
	FilePath     string                  `gorm:"column:file_path;type:varchar(500);not null"`
	FileSize     int64                   `gorm:"column:file_size;type:bigint;not null;default:0"`
	ContentType  string                  `gorm:"column:content_type;type:varchar(100)"`
	UploadStatus onboarding.UploadStatus `gorm:"column:upload_status;type:varchar(20);not null;default:'uploaded'"`
}

// TableName returns the table name for GORM
func (DocumentUploadModel) TableName() string {
	return "document_uploads"
}

// ToDomain converts the persistence model to a domain DocumentUpload.
func (m *DocumentUploadModel) ToDomain() *onboarding.DocumentUpload {
	return &onboarding.DocumentUpload{
		BaseEntity:   m.BaseModel.ToDomain(),
		BatchID:      m.BatchID,
		OwnerID:      m.OwnerID,
		DocTypeID:    m.DocTypeID,
		FileName:     m.FileName,
		FilePath:     m.FilePath,
		FileSize:     m.FileSize,
		ContentType:  m.ContentType,
		UploadStatus: m.UploadStatus,
	}
}

// DocumentUploadModelFromDomain creates a persistence model from a domain DocumentUpload.
func DocumentUploadModelFromDomain(u *onboarding.DocumentUpload) *DocumentUploadModel {
	m := &DocumentUploadModel{
		BatchID:      u.BatchID,
		OwnerID:      u.OwnerID,
		DocTypeID:    u.DocTypeID,
		FileName:     u.FileName,
		FilePath:     u.FilePath,
		FileSize:     u.FileSize,
		ContentType:  u.ContentType,
		UploadStatus: u.UploadStatus,
	}
	m.FromDomainBaseEntity(u.BaseEntity)
	return m
}

// OnboardingEventModel is a row of the append-only onboarding event log.
type OnboardingEventModel struct {
	ID            uuid.UUID                `gorm:"type:uuid;primary_key"`
	OwnerID       string                   `gorm:"column:owner_id;type:varchar(255);not null;index"`
	BatchID       *uuid.UUID               `gorm:"column:batch_id;type:uuid"`
	UploadID      *uuid.UUID               `gorm:"column:upload_id;type:uuid"`
	EventType     string                   `gorm:"column:event_type;type:varchar(100);not null"`
	EventCategory onboarding.EventCategory `gorm:"column:event_category;type:varchar(20);not null"`
	StepNumber    *int                     `gorm:"column:step_number"`
	DocumentType  string                   `gorm:"column:document_type;type:varchar(50)"`
	Status        string                   `gorm:"column:status;type:varchar(50)"`
	MetadataJSON  string                   `gorm:"column:metadata;type:jsonb;default:'{}'"`
	ErrorMessage  string                   `gorm:"column:error_message;type:text"`
	ErrorCode     string                   `gorm:"column:error_code;type:varchar(50)"`
	CreatedAt     time.Time                `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (OnboardingEventModel) TableName() string {
	return "onboarding_event_log"
}

// ToDomain converts the persistence model to a domain LogEntry.
func (m *OnboardingEventModel) ToDomain() *onboarding.LogEntry {
	return &onboarding.LogEntry{
		ID:            m.ID,
		OwnerID:       m.OwnerID,
		BatchID:       m.BatchID,
		UploadID:      m.UploadID,
		EventType:     m.EventType,
		EventCategory: m.EventCategory,
		StepNumber:    m.StepNumber,
		DocumentType:  m.DocumentType,
		Status:        m.Status,
		Metadata:      decodeJSONMap(m.MetadataJSON),
		ErrorMessage:  m.ErrorMessage,
		ErrorCode:     m.ErrorCode,
		CreatedAt:     m.CreatedAt,
	}
}

// OnboardingEventModelFromDomain creates a persistence model from a domain LogEntry.
func OnboardingEventModelFromDomain(e *onboarding.LogEntry) *OnboardingEventModel {
	return &OnboardingEventModel{
		ID:            e.ID,
		OwnerID:       e.OwnerID,
		BatchID:       e.BatchID,
		UploadID:      e.UploadID,
		EventType:     e.EventType,
		EventCategory: e.EventCategory,
		StepNumber:    e.StepNumber,
		DocumentType:  e.DocumentType,
		Status:        e.Status,
		MetadataJSON:  encodeJSONMap(e.Metadata),
		ErrorMessage:  e.ErrorMessage,
		ErrorCode:     e.ErrorCode,
		CreatedAt:     e.CreatedAt,
	}
}
