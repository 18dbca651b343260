package response

import (
	"time"

	"donations_core/internal/domain/entities"
)

type CampaignResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Goal      string    `json:"goal"`
	Raised    string    `json:"raised"`
	Currency  string    `json:"currency"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromCampaign(c entities.Campaign) CampaignResponse {
	return CampaignResponse{
		ID:        c.ID,
		Title:     c.Title,
		Goal:      c.Goal.StringFixed(2),
		Raised:    c.Raised.StringFixed(2),
		Currency:  c.Currency,
		Status:    string(c.Status),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
