package credentials

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Anonymous is the subject used when no credential is available.
const Anonymous = "anonymous"

// Provider yields the bearer credential to present to the REST collaborator.
type Provider interface {
	Token(ctx context.Context) (string, bool)
}

type tokenKey struct{}

// WithToken stores the caller's bearer token on ctx.
func WithToken(ctx context.Context, token string) context.Context {
	token = strings.TrimSpace(token)
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, tokenKey{}, token)
}

// FromContext returns the caller token stored by WithToken.
func FromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	token, ok := ctx.Value(tokenKey{}).(string)
	return token, ok && token != ""
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// ContextProvider prefers the caller token and falls back to a service token.
type ContextProvider struct {
	serviceToken string
}

func NewContextProvider(serviceToken string) *ContextProvider {
	return &ContextProvider{serviceToken: strings.TrimSpace(serviceToken)}
}

func (p *ContextProvider) Token(ctx context.Context) (string, bool) {
	if token, ok := FromContext(ctx); ok {
		return token, true
	}
	if p == nil || p.serviceToken == "" {
		return "", false
	}
	return p.serviceToken, true
}

// Subject derives a stable, non-reversible identifier for a token so it can be
// used in keys and logs.
func Subject(token string) string {
	if token == "" {
		return Anonymous
	}
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:8])
}
