package handler

import (
	"github.com/gin-gonic/gin"
	onboardingapp "github.com/owneriq/backend/internal/application/onboarding"
)

// OnboardingHandler serves the onboarding profile and the wizard
type OnboardingHandler struct {
	BaseHandler
	profiles *onboardingapp.ProfileService
	wizard   *onboardingapp.WizardService
}

// NewOnboardingHandler creates a new OnboardingHandler
func NewOnboardingHandler(profiles *onboardingapp.ProfileService, wizard *onboardingapp.WizardService) *OnboardingHandler {
	return &OnboardingHandler{profiles: profiles, wizard: wizard}
}

// GetProfile godoc
// @ID           getOnboardingProfile
// @Summary      Get the onboarding profile
// @Description  Returns the caller's onboarding profile, creating it with defaults on first access
// @Tags         onboarding
// @Produce      json
// @Param        x-demo-mode header string false "Serve demo data" Enums(true, false)
// @Success      200 {object} APIResponse[onboardingapp.ProfileResponse]
// @Failure      401 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /onboarding/profile [get]
func (h *OnboardingHandler) GetProfile(c *gin.Context) {
	profile, err := h.profiles.GetProfile(c.Request.Context(), ownerID(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, profile)
}

// SaveProfile godoc
// @ID           saveOnboardingProfile
// @Summary      Save the onboarding profile
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Param        request body onboardingapp.SaveProfileRequest true "Profile"
// @Success      200 {object} APIResponse[onboardingapp.ProfileResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /onboarding/profile [post]
func (h *OnboardingHandler) SaveProfile(c *gin.Context) {
	var req onboardingapp.SaveProfileRequest
	if !h.BindJSON(c, &req) {
		return
	}
	profile, err := h.profiles.SaveProfile(c.Request.Context(), ownerID(c), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, profile)
}

// Reset godoc
// @ID           resetOnboarding
// @Summary      Restart onboarding
// @Description  Moves the profile back to step 1 and reopens every batch
// @Tags         onboarding
// @Produce      json
// @Success      200 {object} APIResponse[onboardingapp.ProfileResponse]
// @Failure      401 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /onboarding/reset [post]
func (h *OnboardingHandler) Reset(c *gin.Context) {
	profile, err := h.profiles.Reset(c.Request.Context(), ownerID(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, profile)
}

// GetWizard godoc
// @ID           getOnboardingWizard
// @Summary      Get the wizard state
// @Description  Restores the wizard from the stored profile and the open batch
// @Tags         onboarding
// @Produce      json
// @Success      200 {object} APIResponse[onboardingapp.WizardResponse]
// @Failure      401 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /onboarding/wizard [get]
func (h *OnboardingHandler) GetWizard(c *gin.Context) {
	state, err := h.wizard.GetWizard(c.Request.Context(), ownerID(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, state)
}

// SubmitInfo godoc
// @ID           submitOnboardingInfo
// @Summary      Submit step 1
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Param        request body onboardingapp.SubmitInfoRequest true "Personal info and portfolio shape"
// @Success      200 {object} APIResponse[onboardingapp.WizardResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /onboarding/wizard/info [post]
func (h *OnboardingHandler) SubmitInfo(c *gin.Context) {
	var req onboardingapp.SubmitInfoRequest
	if !h.BindJSON(c, &req) {
		return
	}
	state, err := h.wizard.SubmitInfo(c.Request.Context(), ownerID(c), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, state)
}

// SubmitSetup godoc
// @ID           submitOnboardingSetup
// @Summary      Submit step 2 for the current property
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Param        request body onboardingapp.SubmitSetupRequest true "Property setup"
// @Success      200 {object} APIResponse[onboardingapp.WizardResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /onboarding/wizard/setup [post]
func (h *OnboardingHandler) SubmitSetup(c *gin.Context) {
	var req onboardingapp.SubmitSetupRequest
	if !h.BindJSON(c, &req) {
		return
	}
	state, err := h.wizard.SubmitSetup(c.Request.Context(), ownerID(c), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, state)
}

// SubmitDocuments godoc
// @ID           submitOnboardingDocuments
// @Summary      Submit step 3 for the current property
// @Description  Completes the open batch once every required document is uploaded
// @Tags         onboarding
// @Produce      json
// @Success      200 {object} APIResponse[onboardingapp.WizardResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /onboarding/wizard/documents [post]
func (h *OnboardingHandler) SubmitDocuments(c *gin.Context) {
	state, err := h.wizard.SubmitDocuments(c.Request.Context(), ownerID(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, state)
}

// Back godoc
// @ID           backOnboardingWizard
// @Summary      Go back one step
// @Tags         onboarding
// @Produce      json
// @Success      200 {object} APIResponse[onboardingapp.WizardResponse]
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /onboarding/wizard/back [post]
func (h *OnboardingHandler) Back(c *gin.Context) {
	state, err := h.wizard.Back(c.Request.Context(), ownerID(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, state)
}
