package router

import (
	"github.com/owneriq/backend/internal/interfaces/http/handler"
)

// Handlers are the resource handlers served under Prefix.
type Handlers struct {
	Onboarding *handler.OnboardingHandler
	Documents  *handler.DocumentHandler
	Entities   *handler.EntityHandler
	Events     *handler.EventHandler
	Properties *handler.PropertyHandler
	Persons    *handler.PersonHandler
	Portfolio  *handler.PortfolioHandler
	Mortgage   *handler.MortgageHandler
}

// APIGroups builds the route table of the API, one group per resource.
func APIGroups(h Handlers) []*DomainGroup {
	onboarding := NewDomainGroup("/onboarding")
	onboarding.GET("/profile", h.Onboarding.GetProfile).
		POST("/profile", h.Onboarding.SaveProfile).
		POST("/reset", h.Onboarding.Reset).
		GET("/wizard", h.Onboarding.GetWizard).
		POST("/wizard/info", h.Onboarding.SubmitInfo).
		POST("/wizard/setup", h.Onboarding.SubmitSetup).
		POST("/wizard/documents", h.Onboarding.SubmitDocuments).
		POST("/wizard/back", h.Onboarding.Back).
		GET("/document-types", h.Documents.ListDocumentTypes).
		GET("/batches", h.Documents.ListBatches).
		POST("/batches", h.Documents.CreateBatch).
		GET("/batches/:id", h.Documents.GetBatch).
		GET("/batches/:id/checklist", h.Documents.Checklist).
		POST("/batches/:id/complete", h.Documents.CompleteBatch).
		POST("/upload", h.Documents.Upload).
		POST("/uploads/:id/validate", h.Documents.ValidateUpload)

	onboarding.Group("/entities").
		GET("", h.Entities.List).
		POST("", h.Entities.Create).
		GET("/:id", h.Entities.Get).
		PUT("/:id", h.Entities.Update).
		DELETE("/:id", h.Entities.Delete)

	events := NewDomainGroup("/events")
	events.GET("", h.Events.Recent).
		POST("/log", h.Events.Log)

	properties := NewDomainGroup("/properties")
	properties.GET("", h.Properties.List).
		POST("", h.Properties.Create).
		GET("/:id", h.Properties.Get).
		PUT("/:id", h.Properties.Update).
		DELETE("/:id", h.Properties.Delete).
		GET("/:id/overview", h.Properties.Overview).
		GET("/:id/mortgage", h.Properties.GetMortgage).
		PUT("/:id/mortgage", h.Properties.UpdateMortgage).
		GET("/:id/taxes", h.Properties.GetTaxes).
		PUT("/:id/taxes", h.Properties.UpdateTaxes).
		GET("/:id/insurance", h.Properties.GetInsurance).
		PUT("/:id/insurance", h.Properties.UpdateInsurance).
		GET("/:id/insurance/policies", h.Properties.ListPolicies).
		POST("/:id/insurance/policies", h.Properties.CreatePolicy).
		PUT("/:id/insurance/policies/:pid", h.Properties.UpdatePolicy).
		DELETE("/:id/insurance/policies/:pid", h.Properties.DeletePolicy).
		POST("/:id/insurance/policies/:pid/primary", h.Properties.SetPrimaryPolicy).
		GET("/:id/utilities", h.Properties.ListUtilities).
		POST("/:id/utilities", h.Properties.CreateUtility).
		PUT("/:id/utilities/:uid", h.Properties.UpdateUtility).
		DELETE("/:id/utilities/:uid", h.Properties.DeleteUtility).
		GET("/:id/appliances", h.Properties.ListAppliances).
		POST("/:id/appliances", h.Properties.CreateAppliance).
		PUT("/:id/appliances/:aid", h.Properties.UpdateAppliance).
		DELETE("/:id/appliances/:aid", h.Properties.DeleteAppliance).
		GET("/:id/documents", h.Properties.ListDocuments).
		POST("/:id/documents", h.Properties.CreateDocument).
		DELETE("/:id/documents/:did", h.Properties.DeleteDocument)

	persons := NewDomainGroup("/persons/me")
	persons.GET("", h.Persons.GetMe).
		PUT("", h.Persons.UpdateMe).
		GET("/addresses", h.Persons.ListAddresses).
		POST("/addresses", h.Persons.AddAddress).
		PUT("/addresses/:aid", h.Persons.UpdateAddress).
		DELETE("/addresses/:aid", h.Persons.DeleteAddress).
		POST("/addresses/:aid/primary", h.Persons.SetPrimaryAddress)

	portfolio := NewDomainGroup("/portfolio")
	portfolio.GET("/summary", h.Portfolio.Summary).
		GET("/report", h.Portfolio.Report)

	mortgage := NewDomainGroup("/mortgage")
	mortgage.POST("/calculate-payment", h.Mortgage.CalculatePayment).
		POST("/calculate-piti", h.Mortgage.CalculatePITI).
		POST("/generate-schedule", h.Mortgage.GenerateSchedule).
		POST("/balance-at-year", h.Mortgage.BalanceAtYear).
		GET("/schedule/:propertyId", h.Mortgage.Schedule).
		GET("/schedule/:propertyId/yearly", h.Mortgage.Yearly).
		DELETE("/schedule/:propertyId", h.Mortgage.DeleteSchedule).
		GET("/summary/:propertyId", h.Mortgage.Summary)

	return []*DomainGroup{onboarding, events, properties, persons, portfolio, mortgage}
}
