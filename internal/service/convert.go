package service

import (
	"github.com/mmynk/giftshuffler/internal/models"
	"github.com/mmynk/giftshuffler/pkg/api"
)

func toAPIPerson(p *models.Person) *api.Person {
	return &api.Person{ID: p.ID, Name: p.Name, CreatedAt: p.CreatedAt}
}

func toAPIGroup(g *models.Group) *api.Group {
	members := make([]*api.Person, len(g.Members))
	for i := range g.Members {
		members[i] = toAPIPerson(&g.Members[i])
	}
	return &api.Group{ID: g.ID, Name: g.Name, Members: members, CreatedAt: g.CreatedAt}
}

func toAPIOccasion(o *models.Occasion) *api.Occasion {
	return &api.Occasion{ID: o.ID, Name: o.Name, Description: o.Description, CreatedAt: o.CreatedAt}
}

func toAPIEdition(e *models.Edition) *api.Edition {
	return &api.Edition{
		ID:           e.ID,
		Name:         e.Name,
		GroupID:      e.GroupID,
		GroupName:    e.GroupName,
		OccasionID:   e.OccasionID,
		OccasionName: e.OccasionName,
		Number:       e.Number,
		IsShuffled:   e.IsShuffled,
		CreatedAt:    e.CreatedAt,
	}
}

func toAPIAssignments(assignments []*models.Assignment) []*api.Assignment {
	out := make([]*api.Assignment, len(assignments))
	for i, a := range assignments {
		out[i] = &api.Assignment{
			ID:            a.ID,
			EditionID:     a.EditionID,
			GiverID:       a.GiverID,
			GiverName:     a.GiverName,
			RecipientID:   a.RecipientID,
			RecipientName: a.RecipientName,
			CreatedAt:     a.CreatedAt,
		}
	}
	return out
}

func toAPIOrganizer(o *models.Organizer) *api.Organizer {
	return &api.Organizer{ID: o.ID, Email: o.Email, DisplayName: o.DisplayName, CreatedAt: o.CreatedAt}
}
