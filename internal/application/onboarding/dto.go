package onboarding

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/owneriq/backend/internal/domain/onboarding"
	"github.com/owneriq/backend/internal/domain/shared"
	"github.com/owneriq/backend/internal/domain/shared/valueobject"
)

// FlexInt accepts a JSON number or a numeric string. Anything unparseable
// decodes to 0, as the onboarding forms send free text.
type FlexInt int

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}
	var s string
	if data[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			*f = 0
			return nil
		}
	} else {
		s = string(data)
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = FlexInt(int(n))
	return nil
}

// FlexBool accepts true/false, "true"/"false", "yes"/"no" and 1/0
type FlexBool bool

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexBool) UnmarshalJSON(data []byte) error {
	s := strings.ToLower(strings.Trim(strings.TrimSpace(string(data)), `"`))
	switch s {
	case "true", "yes", "1", "y", "on":
		*f = true
	default:
		*f = false
	}
	return nil
}

// AddressInput is a postal address as sent by the wizard forms
type AddressInput struct {
	Line1       string `json:"line1" binding:"max=255"`
	Line2       string `json:"line2" binding:"max=255"`
	City        string `json:"city" binding:"max=100"`
	StateCode   string `json:"state_code" binding:"max=50"`
	PostalCode  string `json:"postal_code" binding:"max=20"`
	CountryCode string `json:"country_code" binding:"omitempty,len=2"`
}

// Postal converts the input; an entirely blank address is the zero value
func (a AddressInput) Postal() (valueobject.PostalAddress, error) {
	if strings.TrimSpace(a.Line1+a.Line2+a.City+a.StateCode+a.PostalCode) == "" {
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
}

func toAddressOutput(a valueobject.PostalAddress) *AddressOutput {
	if a.IsZero() {
		return nil
	}
	return &AddressOutput{
		Line1:       a.Line1,
		Line2:       a.Line2,
		City:        a.City,
		StateCode:   a.StateCode,
		PostalCode:  a.PostalCode,
		CountryCode: a.CountryCode,
	}
}

// ProfileResponse represents the onboarding profile
type ProfileResponse struct {
	ID                      uuid.UUID  `json:"id"`
	OwnerName               string     `json:"owner_name"`
	OwnerEmail              string     `json:"owner_email"`
	OwnerPhone              string     `json:"owner_phone"`
	UserType                string     `json:"user_type"`
	HasPrimaryResidence     bool       `json:"has_primary_residence"`
	InvestmentPropertyCount int        `json:"investment_property_count"`
	TotalProperties         int        `json:"total_properties"`
	OnboardingStatus        string     `json:"onboarding_status"`
	CurrentStep             int        `json:"current_step"`
	PropertyIndex           int        `json:"property_index"`
	CurrentBatchID          *uuid.UUID `json:"current_batch_id,omitempty"`
	CreatedAt               time.Time  `json:"created_at"`
	UpdatedAt               time.Time  `json:"updated_at"`
}

// ToProfileResponse converts a domain Profile to a response
func ToProfileResponse(p *onboarding.Profile) ProfileResponse {
	return ProfileResponse{
		ID:                      p.ID,
		OwnerName:               p.OwnerName,
		OwnerEmail:              p.OwnerEmail,
		OwnerPhone:              p.OwnerPhone,
		UserType:                string(p.UserType),
		HasPrimaryResidence:     p.HasPrimaryResidence,
		InvestmentPropertyCount: p.InvestmentPropertyCount,
		TotalProperties:         onboarding.TotalProperties(p.Answers()),
		OnboardingStatus:        string(p.Status),
		CurrentStep:             int(p.CurrentStep),
		PropertyIndex:           p.PropertyIndex,
		CurrentBatchID:          p.CurrentBatchID,
		CreatedAt:               p.CreatedAt,
		UpdatedAt:               p.UpdatedAt,
	}
}

// SaveProfileRequest is the body of POST /onboarding/profile
type SaveProfileRequest struct {
	OwnerName               string   `json:"owner_name" binding:"max=200"`
	OwnerEmail              string   `json:"owner_email" binding:"max=255"`
	OwnerPhone              string   `json:"owner_phone" binding:"max=50"`
	UserType                string   `json:"user_type" binding:"omitempty,oneof=HOMEOWNER INVESTOR"`
	HasPrimaryResidence     FlexBool `json:"has_primary_residence"`
	InvestmentPropertyCount FlexInt  `json:"investment_property_count"`
	OnboardingStatus        string   `json:"onboarding_status" binding:"omitempty,oneof=INCOMPLETE IN_PROGRESS COMPLETED"`
	CurrentStep             FlexInt  `json:"current_step"`
}

func (r SaveProfileRequest) update() onboarding.ProfileUpdate {
	return onboarding.ProfileUpdate{
		OwnerName:               r.OwnerName,
		OwnerEmail:              r.OwnerEmail,
		OwnerPhone:              r.OwnerPhone,
		UserType:                onboarding.UserType(r.UserType),
		HasPrimaryResidence:     bool(r.HasPrimaryResidence),
		InvestmentPropertyCount: int(r.InvestmentPropertyCount),
		Status:                  onboarding.Status(r.OnboardingStatus),
		CurrentStep:             onboarding.Step(r.CurrentStep),
	}
}

// SubmitInfoRequest is the body of POST /onboarding/wizard/info
type SubmitInfoRequest struct {
	FullName                string   `json:"full_name"`
	Email                   string   `json:"email" binding:"omitempty,email"`
	Phone                   string   `json:"phone"`
	UserType                string   `json:"user_type"`
	HasPrimaryResidence     FlexBool `json:"has_primary_residence"`
	InvestmentPropertyCount FlexInt  `json:"investment_property_count"`
}

func (r SubmitInfoRequest) event() onboarding.SubmitInfo {
	return onboarding.SubmitInfo{Answers: onboarding.Answers{
		FullName:                r.FullName,
		Email:                   r.Email,
		Phone:                   r.Phone,
		UserType:                onboarding.UserType(strings.ToUpper(strings.TrimSpace(r.UserType))),
		HasPrimaryResidence:     bool(r.HasPrimaryResidence),
		InvestmentPropertyCount: int(r.InvestmentPropertyCount),
	}}
}

// NewCompanyInput holds the fields of a company created during setup
type NewCompanyInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	TaxID string `json:"tax_id"`
}

// SubmitSetupRequest is the body of POST /onboarding/wizard/setup
type SubmitSetupRequest struct {
	Refinanced       *bool           `json:"refinanced"`
	OwnedByCompany   bool            `json:"owned_by_company"`
	CompanyChoice    string          `json:"company_choice" binding:"omitempty,oneof=existing new"`
	ExistingEntityID *uuid.UUID      `json:"existing_entity_id"`
	NewCompany       NewCompanyInput `json:"new_company"`
	Address          AddressInput    `json:"address"`
}

func (r SubmitSetupRequest) event() (onboarding.SubmitSetup, error) {
	postal, err := r.Address.Postal()
	if err != nil {
		return onboarding.SubmitSetup{}, err
	}
	return onboarding.SubmitSetup{Property: onboarding.PropertyAnswers{
		Refinanced:       r.Refinanced,
		OwnedByCompany:   r.OwnedByCompany,
		CompanyChoice:    onboarding.CompanyChoice(r.CompanyChoice),
		ExistingEntityID: r.ExistingEntityID,
		NewCompany: onboarding.NewCompany{
			Name:  r.NewCompany.Name,
			Email: r.NewCompany.Email,
			Phone: r.NewCompany.Phone,
			TaxID: r.NewCompany.TaxID,
		},
		Address: postal,
	}}, nil
}

// ChecklistItemResponse is one row of a batch checklist
type ChecklistItemResponse struct {
	DocTypeID string `json:"doc_type_id"`
	Name      string `json:"name"`
	Required  bool   `json:"required"`
	Status    string `json:"status"`
}

func toChecklistResponse(items []onboarding.ChecklistItem) []ChecklistItemResponse {
	out := make([]ChecklistItemResponse, len(items))
	for i, it := range items {
		out[i] = ChecklistItemResponse{
			DocTypeID: it.DocTypeID,
			Name:      it.Name,
			Required:  it.Required,
			Status:    string(it.Status),
		}
	}
	return out
}

// CurrentPropertyResponse is the iteration being configured
type CurrentPropertyResponse struct {
	Kind             string                  `json:"kind"`
	InvestmentIndex  int                     `json:"investment_index"`
	Refinanced       *bool                   `json:"refinanced"`
	OwnedByCompany   bool                    `json:"owned_by_company"`
	CompanyChoice    string                  `json:"company_choice,omitempty"`
	ExistingEntityID *uuid.UUID              `json:"existing_entity_id,omitempty"`
	Address          *AddressOutput          `json:"address,omitempty"`
	BatchID          *uuid.UUID              `json:"batch_id,omitempty"`
	Checklist        []ChecklistItemResponse `json:"checklist,omitempty"`
}

// WizardResponse is the wizard position and the answers given so far
type WizardResponse struct {
	Step             int                     `json:"step"`
	StepName         string                  `json:"step_name"`
	PropertyIndex    int                     `json:"property_index"`
	TotalProperties  int                     `json:"total_properties"`
	OnboardingStatus string                  `json:"onboarding_status"`
	CurrentStep      int                     `json:"current_step"`
	Answers          SubmitInfoAnswers       `json:"answers"`
	Current          CurrentPropertyResponse `json:"current"`
}

// SubmitInfoAnswers echoes the step 1 answers
type SubmitInfoAnswers struct {
	FullName                string `json:"full_name"`
	Email                   string `json:"email"`
	Phone                   string `json:"phone"`
	UserType                string `json:"user_type"`
	HasPrimaryResidence     bool   `json:"has_primary_residence"`
	InvestmentPropertyCount int    `json:"investment_property_count"`
}

var stepNames = map[onboarding.Step]string{
	onboarding.StepInfo:      "info",
	onboarding.StepSetup:     "setup",
	onboarding.StepDocuments: "documents",
	onboarding.StepDone:      "done",
}

func toWizardResponse(state onboarding.State, status onboarding.Status) WizardResponse {
	current := state.Current()
	resp := WizardResponse{
		Step:             int(state.Step),
		StepName:         stepNames[state.Step],
		PropertyIndex:    state.PropertyIndex,
		TotalProperties:  state.TotalProperties(),
		OnboardingStatus: string(status),
		CurrentStep:      int(state.Step),
		Answers: SubmitInfoAnswers{
			FullName:                state.Answers.FullName,
			Email:                   state.Answers.Email,
			Phone:                   state.Answers.Phone,
			UserType:                string(state.Answers.UserType),
			HasPrimaryResidence:     state.Answers.HasPrimaryResidence,
			InvestmentPropertyCount: state.Answers.InvestmentPropertyCount,
		},
		Current: CurrentPropertyResponse{
			Kind:             string(state.CurrentKind()),
			InvestmentIndex:  onboarding.InvestmentIndex(state.Answers, state.PropertyIndex),
			Refinanced:       current.Refinanced,
			OwnedByCompany:   current.OwnedByCompany,
			CompanyChoice:    string(current.CompanyChoice),
			ExistingEntityID: current.ExistingEntityID,
			Address:          toAddressOutput(current.Address),
			Checklist:        toChecklistResponse(current.Checklist),
		},
	}
	if current.BatchID != uuid.Nil {
		id := current.BatchID
		resp.Current.BatchID = &id
	}
	return resp
}

// BatchResponse represents a document batch
type BatchResponse struct {
	ID                 uuid.UUID      `json:"id"`
	PropertyID         *uuid.UUID     `json:"property_id,omitempty"`
	PropertyType       string         `json:"property_type"`
	EntityID           *uuid.UUID     `json:"entity_id,omitempty"`
	Address            *AddressOutput `json:"address,omitempty"`
	Refinanced         bool           `json:"refinanced"`
	OwnedByCompany     bool           `json:"owned_by_company"`
	Status             string         `json:"status"`
	DocumentsRequired  int            `json:"documents_required"`
	DocumentsCompleted int            `json:"documents_completed"`
	PropertyIndex      int            `json:"property_index"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

// ToBatchResponse converts a domain DocumentBatch to a response
func ToBatchResponse(b *onboarding.DocumentBatch) BatchResponse {
	return BatchResponse{
		ID:                 b.ID,
		PropertyID:         b.PropertyID,
		PropertyType:       string(b.PropertyType),
		EntityID:           b.EntityID,
		Address:            toAddressOutput(b.Address),
		Refinanced:         b.Refinanced,
		OwnedByCompany:     b.OwnedByCompany,
		Status:             string(b.Status),
		DocumentsRequired:  b.DocumentsRequired,
		DocumentsCompleted: b.DocumentsCompleted,
		PropertyIndex:      b.PropertyIndex,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

// BatchDetailResponse is a batch with its checklist
type BatchDetailResponse struct {
	BatchResponse
	Checklist []ChecklistItemResponse `json:"checklist"`
}

// DocumentTypeResponse represents a catalog entry
type DocumentTypeResponse struct {
	DocTypeID             string `json:"doc_type_id"`
	Name                  string `json:"name"`
	Description           string `json:"description,omitempty"`
	IsRequiredForAll      bool   `json:"is_required_for_all"`
	IsRequiredForInvestor bool   `json:"is_required_for_investor"`
	IsOptional            bool   `json:"is_optional"`
	SortOrder             int    `json:"sort_order"`
}

// UploadRequest is the body of POST /onboarding/upload. file_data is base64,
// optionally as a data URL.
type UploadRequest struct {
	BatchID     uuid.UUID `json:"batch_id" binding:"required"`
	DocTypeID   string    `json:"doc_type_id" binding:"required,notblank,max=100"`
	FileName    string    `json:"filename" binding:"required,notblank,max=255"`
	FileData    string    `json:"file_data" binding:"required"`
	ContentType string    `json:"content_type" binding:"max=100"`
}

// DocumentUploadResponse represents a stored upload
type DocumentUploadResponse struct {
	ID           uuid.UUID `json:"id"`
	BatchID      uuid.UUID `json:"batch_id"`
	DocTypeID    string    `json:"doc_type_id"`
	FileName     string    `json:"file_name"`
	FilePath     string    `json:"file_path"`
	FileSize     int64     `json:"file_size"`
	ContentType  string    `json:"content_type"`
	UploadStatus string    `json:"upload_status"`
	DownloadURL  string    `json:"download_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// ToUploadResponse converts a domain DocumentUpload to a response
func ToUploadResponse(u *onboarding.DocumentUpload) DocumentUploadResponse {
	return DocumentUploadResponse{
		ID:           u.ID,
		BatchID:      u.BatchID,
		DocTypeID:    u.DocTypeID,
		FileName:     u.FileName,
		FilePath:     u.FilePath,
		FileSize:     u.FileSize,
		ContentType:  u.ContentType,
		UploadStatus: string(u.UploadStatus),
		CreatedAt:    u.CreatedAt,
	}
}

// UploadResponse is returned by the upload and validate endpoints
type UploadResponse struct {
	Upload           DocumentUploadResponse `json:"upload"`
	Batch            BatchResponse          `json:"batch"`
	OnboardingStatus string                 `json:"onboarding_status"`
	CurrentStep      int                    `json:"current_step"`
	Replayed         bool                   `json:"replayed,omitempty"`
}

// CreateBatchRequest opens a batch outside the wizard
type CreateBatchRequest struct {
	PropertyType  string       `json:"property_type" binding:"required,oneof=primary investment"`
	PropertyIndex int          `json:"property_index" binding:"omitempty,min=1"`
	EntityID      *uuid.UUID   `json:"entity_id"`
	Address       AddressInput `json:"address"`
	Refinanced    bool         `json:"refinanced"`
}

// CompleteBatchResponse is returned when a batch is completed
type CompleteBatchResponse struct {
	Batch            BatchResponse `json:"batch"`
	AllCompleted     bool          `json:"all_completed"`
	OnboardingStatus string        `json:"onboarding_status"`
	CurrentStep      int           `json:"current_step"`
}

// LogEventRequest is a client-side event for POST /events/log
type LogEventRequest struct {
	EventType     string         `json:"event_type" binding:"required,notblank,max=100"`
	EventCategory string         `json:"event_category" binding:"omitempty,oneof=user_action system document error"`
	StepNumber    *int           `json:"step_number" binding:"omitempty,min=1,max=4"`
	BatchID       *uuid.UUID     `json:"batch_id"`
	UploadID      *uuid.UUID     `json:"upload_id"`
	DocumentType  string         `json:"document_type" binding:"max=100"`
	Status        string         `json:"status" binding:"max=50"`
	Metadata      map[string]any `json:"metadata"`
	ErrorMessage  string         `json:"error_message" binding:"max=2000"`
	ErrorCode     string         `json:"error_code" binding:"max=100"`
}

// LogEntryResponse represents an event log row
type LogEntryResponse struct {
	ID            uuid.UUID      `json:"id"`
	EventType     string         `json:"event_type"`
	EventCategory string         `json:"event_category"`
	StepNumber    *int           `json:"step_number,omitempty"`
	BatchID       *uuid.UUID     `json:"batch_id,omitempty"`
	UploadID      *uuid.UUID     `json:"upload_id,omitempty"`
	DocumentType  string         `json:"document_type,omitempty"`
	Status        string         `json:"status,omitempty"`
	Metadata      map[string]any `json:"metadata,omitempty"`
	ErrorMessage  string         `json:"error_message,omitempty"`
	ErrorCode     string         `json:"error_code,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
}

// ToLogEntryResponse converts a domain LogEntry to a response
func ToLogEntryResponse(e *onboarding.LogEntry) LogEntryResponse {
	return LogEntryResponse{
		ID:            e.ID,
		EventType:     e.EventType,
		EventCategory: string(e.EventCategory),
		StepNumber:    e.StepNumber,
		BatchID:       e.BatchID,
		UploadID:      e.UploadID,
		DocumentType:  e.DocumentType,
		Status:        e.Status,
		Metadata:      e.Metadata,
		ErrorMessage:  e.ErrorMessage,
		ErrorCode:     e.ErrorCode,
		CreatedAt:     e.CreatedAt,
	}
}
