package portfolio

import (
	"github.com/google/uuid"
	"github.com/owneriq/backend/internal/domain/ownership"
	"github.com/owneriq/backend/internal/domain/property"
	"github.com/shopspring/decimal"
)

// Group display names
const (
	PersonalGroupName = "Personal Ownership"
	UnknownEntityName = "Unknown Entity"
)

// Group is the subtotal of the properties held by one entity, or held personally
type Group struct {
	Key           string
	Name          string
	EntityID      *uuid.UUID
	EntityType    ownership.EntityType
	PropertyCount int
	TotalValue    decimal.Decimal
	TotalLoan     decimal.Decimal
	TotalEquity   decimal.Decimal
	PropertyIDs   []uuid.UUID
}

// GroupByEntity groups properties by owning entity in first-seen order.
// Properties without an entity go to the personal group; an entity id that is
// not in entities is kept under its own key with the name "Unknown Entity".
func GroupByEntity(props []property.Property, entities []ownership.LegalEntity) []Group {
	byID := make(map[uuid.UUID]*ownership.LegalEntity, len(entities))
	for i := range entities {
		byID[entities[i].ID] = &entities[i]
	}

	index := make(map[string]int)
	var groups []Group
	for i := range props {
		p := &props[i]
		key := p.GroupKey()

		pos, ok := index[key]
		if !ok {
			g := Group{Key: key}
			switch {
			case p.EntityID == nil:
				g.Name = PersonalGroupName
			default:
				id := *p.EntityID
				g.EntityID = &id
				if e, found := byID[id]; found {
					g.Name = e.Name
					g.EntityType = e.Type
				} else {
					g.Name = UnknownEntityName
				}
			}
			groups = append(groups, g)
			pos = len(groups) - 1
			index[key] = pos
		}

		g := &groups[pos]
		value := p.MarketValue()
		loan := p.LoanBalance()
		g.PropertyCount++
		g.TotalValue = g.TotalValue.Add(value)
		g.TotalLoan = g.TotalLoan.Add(loan)
		g.TotalEquity = g.TotalValue.Sub(g.TotalLoan)
		g.PropertyIDs = append(g.PropertyIDs, p.ID)
	}
	return groups
}
