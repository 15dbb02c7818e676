// Package models contains GORM-specific persistence models that map to database tables.
// These models are separate from domain entities to keep the domain layer pure and free
// from ORM concerns.
//
// Key Principles:
// 1. Domain entities should be free of GORM tags and infrastructure concerns
// 2. Persistence models contain all GORM annotations and table mappings
// 3. Mappers convert between domain entities and persistence models
// 4. Repositories use persistence models for database operations
//
// Structure:
// - base.go: Base persistence models (BaseModel, OwnedModel)
// - owner.go: persons and person addresses
// - ownership.go: legal entities
// - property.go: properties and their utilities, appliances, insurance policies and documents
// - onboarding.go: onboarding profiles, import batches, document catalog, uploads and event log
// - mortgage.go: amortization schedules and their summaries
//
// Schema-wise the tables are owned by the SQL migrations; AutoMigrate is only used by tests.
package models
