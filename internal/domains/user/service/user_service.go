package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"bookcatalog-backend/internal/domains/user"
	"bookcatalog-backend/pkg/cache"
	"bookcatalog-backend/pkg/jwt"
)

const (
	bcryptCost = 12

	sessionKeyPrefix = "session:refresh:"
)

type userService struct {
	repo  user.Repository
	jwt   *jwt.Manager
	cache cache.Cache
}

// NewUserService creates the registration and token issuance layer. Issued
// refresh token ids are kept in a Redis allowlist so refresh tokens can be
// rotated and revoked server-side.
func NewUserService(repo user.Repository, jwtManager *jwt.Manager, c cache.Cache) user.Service {
	return &userService{repo: repo, jwt: jwtManager, cache: c}
}

func (s *userService) Register(ctx context.Context, req *user.RegisterRequest) (*user.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	u := &user.User{
		Username:     strings.TrimSpace(req.Username),
		Email:        strings.TrimSpace(req.Email),
		PasswordHash: string(hash),
	}

	created, err := s.repo.Create(ctx, u)
	if err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, created)
}

func (s *userService) Login(ctx context.Context, req *user.LoginRequest) (*user.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.GetByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, user.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return nil, user.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, u)
}

func (s *userService) Refresh(ctx context.Context, req *user.RefreshRequest) (*user.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	claims, err := s.jwt.ValidateRefreshToken(req.Refresh)
	if err != nil {
		return nil, user.ErrInvalidRefresh
	}

	var storedUserID string
	found, err := s.cache.Get(ctx, sessionKeyPrefix+claims.ID, &storedUserID)
	if err != nil {
		return nil, err
	}
	if !found || storedUserID != claims.UserID {
		return nil, user.ErrInvalidRefresh
	}

	u, err := s.repo.GetByID(ctx, mustParseID(claims.UserID))
	if err != nil {
		return nil, user.ErrInvalidRefresh
	}

	// Rotation: the presented token is revoked before a new pair goes out.
	if err := s.cache.Delete(ctx, sessionKeyPrefix+claims.ID); err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, u)
}

func (s *userService) issueTokens(ctx context.Context, u *user.User) (*user.TokenResponse, error) {
	access, err := s.jwt.GenerateAccessToken(u.ID.String(), u.Username)
	if err != nil {
		return nil, err
	}

	refresh, jti, err := s.jwt.GenerateRefreshToken(u.ID.String())
	if err != nil {
		return nil, err
	}

	ttl := s.jwt.RefreshExpiry()
	if ttl <= 0 {
		ttl = time.Hour
	}
	if err := s.cache.Set(ctx, sessionKeyPrefix+jti, u.ID.String(), ttl); err != nil {
		return nil, err
	}

	return &user.TokenResponse{Refresh: refresh, Access: access}, nil
}

// mustParseID parses a user id from validated claims. A malformed id maps
// to uuid.Nil, which no user row can have.
func mustParseID(s string) uuid.UUID {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil
	}
	return id
}
