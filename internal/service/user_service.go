package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"doctorsportal/internal/cache"
	"doctorsportal/internal/errors"
	"doctorsportal/internal/model"
	"doctorsportal/internal/repository"
)

const roleCacheTTL = 5 * time.Minute

// TokenIssuer mints bearer tokens for an email.
type TokenIssuer interface {
	Issue(email string) (string, error)
}

// UserService exposes user and role operations.
type UserService interface {
	// Upsert registers or updates a user and returns a fresh token. Identity
	// is trusted from the upstream sign-in flow; no password is checked.
	Upsert(ctx context.Context, email string, profile map[string]interface{}) (*model.WriteResult, string, error)
	// Promote grants the admin role to target. requester must be an admin.
	Promote(ctx context.Context, target, requester string) (*model.WriteResult, error)
	// IsAdmin is false, not an error, for unknown emails.
	IsAdmin(ctx context.Context, email string) (bool, error)
	List(ctx context.Context) ([]model.User, error)
}

type userService struct {
	repo   repository.UserRepository
	tokens TokenIssuer
	cache  *cache.Client
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(repo repository.UserRepository, tokens TokenIssuer, cache *cache.Client) UserService {
	return &userService{repo: repo, tokens: tokens, cache: cache}
}

func (s *userService) roleKey(email string) string {
	return fmt.Sprintf("user:role:%s", email)
}

func (s *userService) Upsert(ctx context.Context, email string, profile map[string]interface{}) (*model.WriteResult, string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, "", errors.ErrInvalidEmail
	}

	// role is only ever granted through Promote
	result, err := s.repo.Upsert(ctx, email, sanitizeFields(profile, "email", "role"))
	if err != nil {
		return nil, "", err
	}
	_ = s.cache.Delete(ctx, s.roleKey(email))

	token, err := s.tokens.Issue(email)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return result, token, nil
}

func (s *userService) Promote(ctx context.Context, target, requester string) (*model.WriteResult, error) {
	if target == "" {
		return nil, errors.ErrInvalidEmail
	}

	ok, err := s.IsAdmin(ctx, requester)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.ErrForbidden
	}

	result, err := s.repo.SetRole(ctx, target, model.RoleAdmin)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, s.roleKey(target))
	return result, nil
}

func (s *userService) IsAdmin(ctx context.Context, email string) (bool, error) {
	if email == "" {
		return false, nil
	}

	var role model.Role
	if s.cache.GetJSON(ctx, s.roleKey(email), &role) {
		return role == model.RoleAdmin, nil
	}

	user, found, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	if found {
		role = user.Role
	}
	s.cache.SetJSON(ctx, s.roleKey(email), role, roleCacheTTL)
	return found && user.IsAdmin(), nil
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}
