package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
)

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return s, client
}

func TestStartSessionAndValidate(t *testing.T) {
	s, client := newRedis(t)
	svc := NewService("test-secret", client, time.Hour)

	tokens, err := svc.StartSession(context.Background())
	if err != nil {
		t.Fatalf("start session: %v", err)
	}
	if tokens.SessionID == "" || tokens.AccessToken == "" || tokens.RefreshToken == "" {
		t.Fatalf("expected session and tokens")
	}
	if tokens.AccessToken == tokens.RefreshToken {
		t.Fatalf("expected distinct tokens")
	}

	sessionID, err := svc.ValidateAccessToken(tokens.AccessToken)
	if err != nil || sessionID != tokens.SessionID {
		t.Fatalf("validate access: %v", err)
	}

	if ttl := s.TTL(refreshKey(tokens.RefreshToken)); ttl != time.Hour {
		t.Fatalf("expected refresh ttl 1h, got %v", ttl)
	}
	sessionID, err = svc.ValidateRefreshToken(context.Background(), tokens.RefreshToken)
	if err != nil || sessionID != tokens.SessionID {
		t.Fatalf("validate refresh: %v", err)
	}
}

func TestValidateRefreshTokenExpired(t *testing.T) {
	s, client := newRedis(t)
	svc := NewService("test-secret", client, time.Hour)

	tokens, err := svc.StartSession(context.Background())
	if err != nil {
		t.Fatalf("start session: %v", err)
	}
	s.FastForward(2 * time.Hour)

	if _, err := svc.ValidateRefreshToken(context.Background(), tokens.RefreshToken); !errors.Is(err, ErrRefreshInvalid) {
		t.Fatalf("expected refresh invalid, got %v", err)
	}
}

func TestValidateRefreshTokenUnknown(t *testing.T) {
	_, client := newRedis(t)
	issuer := NewService("test-secret", nil, time.Hour)
	tokens, err := issuer.StartSession(context.Background())
	if err != nil {
		t.Fatalf("start session: %v", err)
	}

	svc := NewService("test-secret", client, time.Hour)
	if _, err := svc.ValidateRefreshToken(context.Background(), tokens.RefreshToken); !errors.Is(err, ErrRefreshInvalid) {
		t.Fatalf("expected refresh invalid for unknown token, got %v", err)
	}
}

func TestValidateRefreshTokenWithoutRedis(t *testing.T) {
	svc := NewService("test-secret", nil, time.Hour)
	tokens, err := svc.GenerateTokens(context.Background(), "session-1")
	if err != nil {
		t.Fatalf("generate tokens: %v", err)
	}
	sessionID, err := svc.ValidateRefreshToken(context.Background(), tokens.RefreshToken)
	if err != nil || sessionID != "session-1" {
		t.Fatalf("expected claims-only validation: %v", err)
	}
}

func TestGenerateTokensSaveRefreshError(t *testing.T) {
	s, client := newRedis(t)
	s.Close()

	svc := NewService("test-secret", client, time.Hour)
	if _, err := svc.GenerateTokens(context.Background(), "session-1"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestGenerateTokensAccessSignError(t *testing.T) {
	oldSign := signTokenFn
	signTokenFn = func(_ *Service, _ string, _ time.Duration) (string, error) {
		return "", errSign
	}
	defer func() { signTokenFn = oldSign }()

	svc := NewService("test-secret", nil, time.Hour)
	if _, err := svc.GenerateTokens(context.Background(), "session-1"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestGenerateTokensRefreshSignError(t *testing.T) {
	oldSign := signTokenFn
	call := 0
	signTokenFn = func(_ *Service, _ string, _ time.Duration) (string, error) {
		call++
		if call == 2 {
			return "", errSign
		}
		return "token", nil
	}
	defer func() { signTokenFn = oldSign }()

	svc := NewService("test-secret", nil, time.Hour)
	if _, err := svc.GenerateTokens(context.Background(), "session-1"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestParseTokenInvalid(t *testing.T) {
	oldParse := parseWithClaimsFn
	parseWithClaimsFn = func(_ string, _ jwt.Claims, _ jwt.Keyfunc, _ ...jwt.ParserOption) (*jwt.Token, error) {
		return &jwt.Token{Valid: false, Claims: &Claims{}}, nil
	}
	defer func() { parseWithClaimsFn = oldParse }()

	svc := NewService("test-secret", nil, time.Hour)
	if _, err := svc.parseToken("token"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestValidateAccessTokenInvalid(t *testing.T) {
	svc := NewService("test-secret", nil, time.Hour)
	if _, err := svc.ValidateAccessToken("invalid-token"); err == nil {
		t.Fatalf("expected error")
	}

	other := NewService("other-secret", nil, time.Hour)
	tokens, _ := other.GenerateTokens(context.Background(), "session-1")
	if _, err := svc.ValidateAccessToken(tokens.AccessToken); err == nil {
		t.Fatalf("expected signature error")
	}
}

var errSign = errors.New("sign error")
