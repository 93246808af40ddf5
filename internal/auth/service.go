package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const accessTokenTTL = 15 * time.Minute

var ErrRefreshInvalid = errors.New("refresh token invalid")

// Service issues tokens for anonymous dashboard sessions. Refresh tokens are
// remembered in Redis when it is configured, so they can be checked and
// expire with the session.
type Service struct {
	secret     []byte
	redis      *redis.Client
	refreshTTL time.Duration
}

type Claims struct {
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

func NewService(secret string, redisClient *redis.Client, sessionTTL time.Duration) *Service {
	return &Service{
		secret:     []byte(secret),
		redis:      redisClient,
		refreshTTL: sessionTTL,
	}
}

// StartSession mints a new session id and its tokens.
func (s *Service) StartSession(ctx context.Context) (TokenResponse, error) {
	return s.GenerateTokens(ctx, uuid.NewString())
}

func (s *Service) GenerateTokens(ctx context.Context, sessionID string) (TokenResponse, error) {
	access, err := signTokenFn(s, sessionID, accessTokenTTL)
	if err != nil {
		return TokenResponse{}, err
	}

	refresh, err := signTokenFn(s, sessionID, s.refreshTTL)
	if err != nil {
		return TokenResponse{}, err
	}

	if err := s.saveRefreshToken(ctx, refresh, sessionID); err != nil {
		return TokenResponse{}, err
	}

	return TokenResponse{
		SessionID:    sessionID,
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "Bearer",
		ExpiresIn:    int64(accessTokenTTL.Seconds()),
	}, nil
}

func (s *Service) ValidateRefreshToken(ctx context.Context, token string) (string, error) {
	claims, err := s.parseToken(token)
	if err != nil {
		return "", err
	}
	if s.redis == nil {
		return claims.SessionID, nil
	}

	sessionID, err := s.redis.Get(ctx, refreshKey(token)).Result()
	if err != nil || sessionID != claims.SessionID {
		return "", ErrRefreshInvalid
	}
	return claims.SessionID, nil
}

func (s *Service) ValidateAccessToken(token string) (string, error) {
	claims, err := s.parseToken(token)
	if err != nil {
		return "", err
	}
	return claims.SessionID, nil
}

var signTokenFn = (*Service).signToken

func (s *Service) signToken(sessionID string, ttl time.Duration) (string, error) {
	claims := Claims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

var parseWithClaimsFn = jwt.ParseWithClaims

func (s *Service) parseToken(token string) (*Claims, error) {
	parsed, err := parseWithClaimsFn(token, &Claims{}, func(_ *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.SessionID == "" {
		return nil, errors.New("token invalid")
	}
	return claims, nil
}

func (s *Service) saveRefreshToken(ctx context.Context, token, sessionID string) error {
	if s.redis == nil {
		return nil
	}
	return s.redis.Set(ctx, refreshKey(token), sessionID, s.refreshTTL).Err()
}

func refreshKey(token string) string {
	return "refresh:" + token
}
