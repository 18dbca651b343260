package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"donations_core/internal/domain/entities"
	"donations_core/internal/usecase/interfaces"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// IntentValidator checks a donation intent before any side effect.
type IntentValidator struct {
	campaigns       interfaces.ICampaignRepository
	defaultCurrency string
}

func NewIntentValidator(campaigns interfaces.ICampaignRepository, defaultCurrency string) *IntentValidator {
	if strings.TrimSpace(defaultCurrency) == "" {
		defaultCurrency = "USD"
	}
	return &IntentValidator{campaigns: campaigns, defaultCurrency: strings.ToUpper(defaultCurrency)}
}

// Normalize trims the intent, applies the default currency and validates it.
func (v *IntentValidator) Normalize(ctx context.Context, in entities.DonationIntent) (entities.DonationIntent, error) {
	in.DonorName = strings.TrimSpace(in.DonorName)
	in.DonorEmail = strings.ToLower(strings.TrimSpace(in.DonorEmail))
	in.CampaignID = strings.TrimSpace(in.CampaignID)
	in.PaymentToken = strings.TrimSpace(in.PaymentToken)
	in.Currency = strings.ToUpper(strings.TrimSpace(in.Currency))
	if in.Currency == "" {
		in.Currency = v.defaultCurrency
	}

	if !in.Amount.IsPositive() {
		return in, &entities.ValidationError{Field: "amount", Message: "must be greater than zero"}
	}
	if !in.Amount.Equal(in.Amount.Round(2)) {
		return in, &entities.ValidationError{Field: "amount", Message: "at most two decimal places"}
	}

	if err := validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return in, &entities.ValidationError{Field: fieldName(verrs[0]), Message: "failed " + verrs[0].Tag()}
		}
		return in, &entities.ValidationError{Field: "intent", Message: err.Error()}
	}

	if in.CampaignID != "" && v.campaigns != nil {
		c, err := v.campaigns.GetByID(ctx, in.CampaignID)
		if err != nil {
			log.Printf("[donation][validate] campaign lookup failed campaign_id=%s err=%v", in.CampaignID, err)
			return in, err
		}
		if c.ID == "" {
			return in, ErrCampaignNotFound
		}
		if c.Status != entities.CampaignStatusActive {
			return in, ErrCampaignNotActive
		}
	}
	return in, nil
}

func fieldName(fe validator.FieldError) string {
	switch fe.Field() {
	case "DonorName":
		return "donor_name"
	case "DonorEmail":
		return "donor_email"
	case "CampaignID":
		return "campaign_id"
	case "ReturnURL":
		return "return_url"
	case "PaymentToken":
		return "payment_token"
	case "PaymentMethodID":
		return "payment_method_id"
	}
	return strings.ToLower(fe.Field())
}
