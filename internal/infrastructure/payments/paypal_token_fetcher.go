package payments

import (
	"context"
	"errors"
	"net/http"
	"time"

	"donations_core/internal/domain/entities"
	"donations_core/internal/usecase/interfaces"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// PayPalTokenFetcher exchanges client credentials for a bearer token at
// /v1/oauth2/token. Caching lives in the usecase layer.
type PayPalTokenFetcher struct {
	http    *http.Client
	baseURL string
}

var _ interfaces.ITokenFetcher = (*PayPalTokenFetcher)(nil)

func NewPayPalTokenFetcher(timeout time.Duration) *PayPalTokenFetcher {
	return &PayPalTokenFetcher{http: &http.Client{Timeout: timeout}}
}

func (f *PayPalTokenFetcher) FetchToken(ctx context.Context, mode string, creds entities.ProviderCredentials) (string, time.Duration, error) {
	base := f.baseURL
	if base == "" {
		base = PayPalBaseURL(mode)
	}
	cfg := clientcredentials.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		TokenURL:     base + "/v1/oauth2/token",
		AuthStyle:    oauth2.AuthStyleInHeader,
	}

	tok, err := cfg.Token(context.WithValue(ctx, oauth2.HTTPClient, f.http))
	if err != nil {
		var re *oauth2.RetrieveError
		if errors.As(err, &re) {
			apiErr := &entities.ProviderAPIError{
				Provider: entities.PaymentMethodPayPal,
				Code:     re.ErrorCode,
				Message:  re.ErrorDescription,
				Err:      err,
			}
			if re.Response != nil {
				apiErr.HTTPStatus = re.Response.StatusCode
			}
			return "", 0, apiErr
		}
		return "", 0, &entities.ProviderAPIError{Provider: entities.PaymentMethodPayPal, Err: err}
	}

	var expiresIn time.Duration
	switch {
	case !tok.Expiry.IsZero():
		expiresIn = time.Until(tok.Expiry)
	case tok.ExpiresIn > 0:
		expiresIn = time.Duration(tok.ExpiresIn) * time.Second
	}
	return tok.AccessToken, expiresIn, nil
}
