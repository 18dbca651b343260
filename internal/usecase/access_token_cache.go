package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"donations_core/internal/domain/entities"
	"donations_core/internal/usecase/interfaces"
)

// tokenSafetyBuffer is subtracted from a token's lifetime both when deciding
// reuse and when choosing the cache TTL.
const tokenSafetyBuffer = 60 * time.Second

// IAccessTokenCache hands out provider bearer tokens.
type IAccessTokenCache interface {
	GetToken(ctx context.Context, provider entities.PaymentMethod, mode string, creds entities.ProviderCredentials) (string, error)
	Invalidate(ctx context.Context, provider entities.PaymentMethod, mode string, creds entities.ProviderCredentials) error
}

// AccessTokenCache reuses a token while expiry > now + 60s and refetches otherwise.
// Concurrent misses may fetch twice; the last write wins.
type AccessTokenCache struct {
	cache    interfaces.ICache
	fetchers map[entities.PaymentMethod]interfaces.ITokenFetcher
	now      func() time.Time
}

var _ IAccessTokenCache = (*AccessTokenCache)(nil)

func NewAccessTokenCache(cache interfaces.ICache, fetchers map[entities.PaymentMethod]interfaces.ITokenFetcher) *AccessTokenCache {
	return &AccessTokenCache{cache: cache, fetchers: fetchers, now: time.Now}
}

func (c *AccessTokenCache) GetToken(ctx context.Context, provider entities.PaymentMethod, mode string, creds entities.ProviderCredentials) (string, error) {
	if strings.TrimSpace(creds.ClientID) == "" || strings.TrimSpace(creds.ClientSecret) == "" {
		return "", fmt.Errorf("%w: missing %s client credentials", ErrProviderNotConfigured, provider)
	}
	fetcher, ok := c.fetchers[provider]
	if !ok {
		return "", fmt.Errorf("%w: no token endpoint for %s", ErrProviderNotConfigured, provider)
	}

	key := tokenCacheKey(provider, mode, creds.ClientID)
	if raw, found, err := c.cache.Get(ctx, key); err != nil {
		log.Printf("[donation][token] cache read failed provider=%s mode=%s err=%v", provider, mode, err)
	} else if found {
		var cached entities.AccessToken
		if err := json.Unmarshal([]byte(raw), &cached); err == nil && cached.Token != "" && cached.ExpiresAt.After(c.now().Add(tokenSafetyBuffer)) {
			return cached.Token, nil
		}
	}

	log.Printf("[donation][token] fetching provider=%s mode=%s", provider, mode)
	token, expiresIn, err := fetcher.FetchToken(ctx, mode, creds)
	if err != nil {
		log.Printf("[donation][token] fetch failed provider=%s mode=%s err=%v", provider, mode, err)
		return "", fmt.Errorf("%w: %v", ErrTokenUnavailable, err)
	}
	if strings.TrimSpace(token) == "" {
		return "", fmt.Errorf("%w: empty token from %s", ErrTokenUnavailable, provider)
	}

	ttl := expiresIn - tokenSafetyBuffer
	if ttl <= 0 {
		// Too short-lived to cache; use it once.
		return token, nil
	}

	b, err := json.Marshal(entities.AccessToken{Token: token, ExpiresAt: c.now().Add(expiresIn)})
	if err == nil {
		if err := c.cache.Set(ctx, key, string(b), ttl); err != nil {
			log.Printf("[donation][token] cache write failed provider=%s mode=%s err=%v", provider, mode, err)
		}
	}
	return token, nil
}

// Invalidate drops a cached token, e.g. after the provider rejected it with 401.
func (c *AccessTokenCache) Invalidate(ctx context.Context, provider entities.PaymentMethod, mode string, creds entities.ProviderCredentials) error {
	return c.cache.Delete(ctx, tokenCacheKey(provider, mode, creds.ClientID))
}

func tokenCacheKey(provider entities.PaymentMethod, mode, clientID string) string {
	sum := sha256.Sum256([]byte(string(provider) + "_" + mode + ":" + clientID))
	return "access_token:" + hex.EncodeToString(sum[:])
}
