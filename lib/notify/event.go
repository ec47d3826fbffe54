package notify

import (
	"fmt"
	"strings"
	"time"

	"dashboard-approval-backend/models"
)

type EventType string

const (
	EventDashboardItemSubmitted EventType = "dashboard.item.submitted"
)

type Event struct {
	Type        EventType           `json:"type"`
	CampaignID  string              `json:"campaign_id"`
	SubmittedBy string              `json:"submitted_by"`
	EntityTypes []models.EntityType `json:"entity_types"`
	Timestamp   time.Time           `json:"timestamp"`
}

func NewDashboardItemSubmitted(campaignID, submittedBy string, entityTypes []models.EntityType, at time.Time) Event {
	return Event{
		Type:        EventDashboardItemSubmitted,
		CampaignID:  campaignID,
		SubmittedBy: submittedBy,
		EntityTypes: entityTypes,
		Timestamp:   at,
	}
}

func (e Event) Subject() string {
	switch e.Type {
	case EventDashboardItemSubmitted:
		return "dashboard submitted for review"
	}
	return string(e.Type)
}

func (e Event) Text() string {
	names := make([]string, 0, len(e.EntityTypes))
	for _, t := range e.EntityTypes {
		names = append(names, t.ToHuman())
	}
	return fmt.Sprintf("Campaign %s: %s by %s at %s (%s)",
		e.CampaignID, e.Subject(), e.SubmittedBy, e.Timestamp.UTC().Format(time.RFC3339), strings.Join(names, ", "))
}
