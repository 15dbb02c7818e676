package property

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/owneriq/backend/internal/domain/property"
	"github.com/owneriq/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ownedProperty loads the owner's property so child records can be scoped to it
func (s *PropertyService) ownedProperty(ctx context.Context, ownerID string, propertyID uuid.UUID) (*property.Property, error) {
	return s.properties.FindByIDForOwner(ctx, ownerID, propertyID)
}

// GetInsurance returns the primary policy in the insurance editor's shape.
// A property without a policy yields an empty response.
func (s *PropertyService) GetInsurance(ctx context.Context, ownerID string, propertyID uuid.UUID) (*InsuranceResponse, error) {
	if _, err := s.ownedProperty(ctx, ownerID, propertyID); err != nil {
		return nil, err
	}
	policy, err := s.policies.FindPrimary(ctx, propertyID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return &InsuranceResponse{}, nil
		}
		return nil, err
	}
	resp := toInsuranceResponse(policy, s.now())
	return &resp, nil
}

// UpdateInsurance writes the editor fields onto the primary policy, creating
// it when the property has none
func (s *PropertyService) UpdateInsurance(ctx context.Context, ownerID string, propertyID uuid.UUID, req InsuranceRequest) (*InsuranceResponse, error) {
	if _, err := s.ownedProperty(ctx, ownerID, propertyID); err != nil {
		return nil, err
	}
	policy, err := s.policies.FindPrimary(ctx, propertyID)
	switch {
	case err == nil:
		if err := policy.Update(req.details()); err != nil {
			return nil, err
		}
	case errors.Is(err, shared.ErrNotFound):
		policy, err = property.NewInsurancePolicy(propertyID, req.details())
		if err != nil {
			return nil, err
		}
		policy.MarkPrimary()
	default:
		return nil, err
	}
	if err := s.policies.Save(ctx, policy); err != nil {
		return nil, err
	}
	saved, err := s.policies.FindByID(ctx, policy.ID)
	if err != nil {
		return nil, err
	}
	resp := toInsuranceResponse(saved, s.now())
	return &resp, nil
}

// ListPolicies lists the property's policies, primary first
func (s *PropertyService) ListPolicies(ctx context.Context, ownerID string, propertyID uuid.UUID) ([]InsuranceResponse, error) {
	if _, err := s.ownedProperty(ctx, ownerID, propertyID); err != nil {
		return nil, err
	}
	policies, err := s.policies.FindByProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	out := make([]InsuranceResponse, len(policies))
	for i := range policies {
		out[i] = toInsuranceResponse(&policies[i], now)
	}
	return out, nil
}

// CreatePolicy adds a policy. The first policy of a property is always primary.
func (s *PropertyService) CreatePolicy(ctx context.Context, ownerID string, propertyID uuid.UUID, req InsuranceRequest) (*InsuranceResponse, error) {
	if _, err := s.ownedProperty(ctx, ownerID, propertyID); err != nil {
		return nil, err
	}
	policy, err := property.NewInsurancePolicy(propertyID, req.details())
	if err != nil {
		return nil, err
	}
	primary := req.IsPrimary
	if !primary {
		if _, err := s.policies.FindPrimary(ctx, propertyID); err != nil {
			if !errors.Is(err, shared.ErrNotFound) {
				return nil, err
			}
			primary = true
		}
	}
	if primary {
		policy.MarkPrimary()
	}
	if err := s.policies.Save(ctx, policy); err != nil {
		return nil, err
	}
	saved, err := s.policies.FindByID(ctx, policy.ID)
	if err != nil {
		return nil, err
	}
	resp := toInsuranceResponse(saved, s.now())
	return &resp, nil
}

// UpdatePolicy edits a policy; is_primary=true promotes it
func (s *PropertyService) UpdatePolicy(ctx context.Context, ownerID string, propertyID, policyID uuid.UUID, req InsuranceRequest) (*InsuranceResponse, error) {
	policy, err := s.policy(ctx, ownerID, propertyID, policyID)
	if err != nil {
		return nil, err
	}
	if err := policy.Update(req.details()); err != nil {
		return nil, err
	}
	if req.IsPrimary {
		policy.MarkPrimary()
	}
	if err := s.policies.Save(ctx, policy); err != nil {
		return nil, err
	}
	saved, err := s.policies.FindByID(ctx, policy.ID)
	if err != nil {
		return nil, err
	}
	resp := toInsuranceResponse(saved, s.now())
	return &resp, nil
}

// SetPrimaryPolicy makes the policy the property's only primary policy
func (s *PropertyService) SetPrimaryPolicy(ctx context.Context, ownerID string, propertyID, policyID uuid.UUID) (*InsuranceResponse, error) {
	policy, err := s.policy(ctx, ownerID, propertyID, policyID)
	if err != nil {
		return nil, err
	}
	if err := s.policies.SetPrimary(ctx, propertyID, policyID); err != nil {
		return nil, err
	}
	saved, err := s.policies.FindByID(ctx, policy.ID)
	if err != nil {
		return nil, err
	}
	resp := toInsuranceResponse(saved, s.now())
	return &resp, nil
}

// DeletePolicy removes a non-primary policy
func (s *PropertyService) DeletePolicy(ctx context.Context, ownerID string, propertyID, policyID uuid.UUID) error {
	policy, err := s.policy(ctx, ownerID, propertyID, policyID)
	if err != nil {
		return err
	}
	if err := policy.EnsureDeletable(); err != nil {
		return err
	}
	return s.policies.Delete(ctx, policyID)
}

func (s *PropertyService) policy(ctx context.Context, ownerID string, propertyID, policyID uuid.UUID) (*property.InsurancePolicy, error) {
	if _, err := s.ownedProperty(ctx, ownerID, propertyID); err != nil {
		return nil, err
	}
	policy, err := s.policies.FindByID(ctx, policyID)
	if err != nil {
		return nil, err
	}
	if policy.PropertyID != propertyID {
		return nil, shared.ErrNotFound
	}
	return policy, nil
}

// ListUtilities lists the property's utility accounts
func (s *PropertyService) ListUtilities(ctx context.Context, ownerID string, propertyID uuid.UUID) ([]UtilityResponse, error) {
	if _, err := s.ownedProperty(ctx, ownerID, propertyID); err != nil {
		return nil, err
	}
	utilities, err := s.utilities.FindByProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	out := make([]UtilityResponse, len(utilities))
	for i := range utilities {
		out[i] = toUtilityResponse(&utilities[i])
	}
	return out, nil
}

// CreateUtility adds a utility account
func (s *PropertyService) CreateUtility(ctx context.Context, ownerID string, propertyID uuid.UUID, req UtilityRequest) (*UtilityResponse, error) {
	if _, err := s.ownedProperty(ctx, ownerID, propertyID); err != nil {
		return nil, err
	}
	u, err := property.NewUtility(propertyID, req.details())
	if err != nil {
		return nil, err
	}
	if err := s.utilities.Save(ctx, u); err != nil {
		return nil, err
	}
	saved, err := s.utilities.FindByID(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	resp := toUtilityResponse(saved)
	return &resp, nil
}

// UpdateUtility edits a utility account
func (s *PropertyService) UpdateUtility(ctx context.Context, ownerID string, propertyID, utilityID uuid.UUID, req UtilityRequest) (*UtilityResponse, error) {
	u, err := s.utility(ctx, ownerID, propertyID, utilityID)
	if err != nil {
		return nil, err
	}
	if err := u.Update(req.details()); err != nil {
		return nil, err
	}
	if err := s.utilities.Save(ctx, u); err != nil {
		return nil, err
	}
	saved, err := s.utilities.FindByID(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	resp := toUtilityResponse(saved)
	return &resp, nil
}

// DeleteUtility removes a utility account
func (s *PropertyService) DeleteUtility(ctx context.Context, ownerID string, propertyID, utilityID uuid.UUID) error {
	if _, err := s.utility(ctx, ownerID, propertyID, utilityID); err != nil {
		return err
	}
	return s.utilities.Delete(ctx, utilityID)
}

func (s *PropertyService) utility(ctx context.Context, ownerID string, propertyID, utilityID uuid.UUID) (*property.Utility, error) {
	if _, err := s.ownedProperty(ctx, ownerID, propertyID); err != nil {
		return nil, err
	}
	u, err := s.utilities.FindByID(ctx, utilityID)
	if err != nil {
		return nil, err
	}
	if u.PropertyID != propertyID {
		return nil, shared.ErrNotFound
	}
	return u, nil
}

// ListAppliances lists the property's appliances
func (s *PropertyService) ListAppliances(ctx context.Context, ownerID string, propertyID uuid.UUID) ([]ApplianceResponse, error) {
	if _, err := s.ownedProperty(ctx, ownerID, propertyID); err != nil {
		return nil, err
	}
	appliances, err := s.appliances.FindByProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	out := make([]ApplianceResponse, len(appliances))
	for i := range appliances {
		out[i] = toApplianceResponse(&appliances[i], now)
	}
	return out, nil
}

// CreateAppliance adds an appliance
func (s *PropertyService) CreateAppliance(ctx context.Context, ownerID string, propertyID uuid.UUID, req ApplianceRequest) (*ApplianceResponse, error) {
	if _, err := s.ownedProperty(ctx, ownerID, propertyID); err != nil {
		return nil, err
	}
	a, err := property.NewAppliance(propertyID, req.details())
	if err != nil {
		return nil, err
	}
	if err := s.appliances.Save(ctx, a); err != nil {
		return nil, err
	}
	saved, err := s.appliances.FindByID(ctx, a.ID)
	if err != nil {
		return nil, err
	}
	resp := toApplianceResponse(saved, s.now())
	return &resp, nil
}

// UpdateAppliance edits an appliance
func (s *PropertyService) UpdateAppliance(ctx context.Context, ownerID string, propertyID, applianceID uuid.UUID, req ApplianceRequest) (*ApplianceResponse, error) {
	a, err := s.appliance(ctx, ownerID, propertyID, applianceID)
	if err != nil {
		return nil, err
	}
	if err := a.Update(req.details()); err != nil {
		return nil, err
	}
	if err := s.appliances.Save(ctx, a); err != nil {
		return nil, err
	}
	saved, err := s.appliances.FindByID(ctx, a.ID)
	if err != nil {
		return nil, err
	}
	resp := toApplianceResponse(saved, s.now())
	return &resp, nil
}

// DeleteAppliance removes an appliance
func (s *PropertyService) DeleteAppliance(ctx context.Context, ownerID string, propertyID, applianceID uuid.UUID) error {
	if _, err := s.appliance(ctx, ownerID, propertyID, applianceID); err != nil {
		return err
	}
	return s.appliances.Delete(ctx, applianceID)
}

func (s *PropertyService) appliance(ctx context.Context, ownerID string, propertyID, applianceID uuid.UUID) (*property.Appliance, error) {
	if _, err := s.ownedProperty(ctx, ownerID, propertyID); err != nil {
		return nil, err
	}
	a, err := s.appliances.FindByID(ctx, applianceID)
	if err != nil {
		return nil, err
	}
	if a.PropertyID != propertyID {
		return nil, shared.ErrNotFound
	}
	return a, nil
}

// ListDocuments lists the property's documents, newest first
func (s *PropertyService) ListDocuments(ctx context.Context, ownerID string, propertyID uuid.UUID) ([]DocumentResponse, error) {
	if _, err := s.ownedProperty(ctx, ownerID, propertyID); err != nil {
		return nil, err
	}
	docs, err := s.documents.FindByProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	out := make([]DocumentResponse, len(docs))
	for i := range docs {
		out[i] = toDocumentResponse(&docs[i])
	}
	return out, nil
}

// CreateDocument registers a document that already lives in object storage
func (s *PropertyService) CreateDocument(ctx context.Context, ownerID string, propertyID uuid.UUID, req DocumentRequest) (*DocumentResponse, error) {
	if _, err := s.ownedProperty(ctx, ownerID, propertyID); err != nil {
		return nil, err
	}
	doc, err := property.NewDocument(propertyID, ownerID, req.DocumentType, req.FileName, req.FilePath)
	if err != nil {
		return nil, err
	}
	doc.FileURL = req.FileURL
	doc.FileSize = req.FileSize
	doc.Metadata = req.Metadata
	if err := s.documents.Save(ctx, doc); err != nil {
		return nil, err
	}
	s.logger.Info("Property document registered",
		zap.String("property_id", propertyID.String()),
		zap.String("document_type", doc.DocumentType),
	)
	resp := toDocumentResponse(doc)
	return &resp, nil
}

// DeleteDocument removes a document record
func (s *PropertyService) DeleteDocument(ctx context.Context, ownerID string, propertyID, documentID uuid.UUID) error {
	if _, err := s.ownedProperty(ctx, ownerID, propertyID); err != nil {
		return err
	}
	doc, err := s.documents.FindByID(ctx, documentID)
	if err != nil {
		return err
	}
	if doc.PropertyID != propertyID {
		return shared.ErrNotFound
	}
	return s.documents.Delete(ctx, documentID)
}
