package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// CampaignStatus represents whether a campaign still accepts donations.

type CampaignStatus string

const (
	CampaignStatusActive CampaignStatus = "active"
	CampaignStatusClosed CampaignStatus = "closed"
)

// Campaign is a fundraising campaign persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Monetary representation:
//   - Goal is the target amount, Raised the sum of completed minus refunded donations.
type Campaign struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Goal      decimal.Decimal `json:"goal"`
	Raised    decimal.Decimal `json:"raised"`
	Currency  string          `json:"currency"`
	Status    CampaignStatus  `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
