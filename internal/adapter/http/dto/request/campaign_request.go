package request

import "github.com/shopspring/decimal"

type CampaignRequest struct {
	Title    string          `json:"title" binding:"required"`
	Goal     decimal.Decimal `json:"goal"`
	Currency string          `json:"currency"`
}
