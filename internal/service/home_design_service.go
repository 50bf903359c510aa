package service

import (
	"context"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"cutlery/internal/cache"
	apperrors "cutlery/internal/errors"
	"cutlery/internal/model"
	"cutlery/internal/partner"
)

// HomeDesignService forwards home design orders to the partner using the
// caller's integration token. Ownership is encoded in the design name.
type HomeDesignService interface {
	Create(ctx context.Context, design model.Design, caller *model.User) (json.RawMessage, error)
	List(ctx context.Context, caller *model.User) ([]partner.DesignRecord, error)
}

type homeDesignService struct {
	partner  partner.Client
	cache    *cache.Client
	cacheTTL time.Duration
}

// NewHomeDesignService builds the proxy. A nil partner client disables it and
// a nil cache disables caching.
func NewHomeDesignService(partnerClient partner.Client, c *cache.Client, ttl time.Duration) HomeDesignService {
	return &homeDesignService{partner: partnerClient, cache: c, cacheTTL: ttl}
}

func designPrefix(username string) string {
	return username + "_"
}

func (s *homeDesignService) cacheKey(username string) string {
	return "home-design:" + username
}

func (s *homeDesignService) token(caller *model.User) (string, error) {
	if s.partner == nil {
		return "", apperrors.ErrPartnerDisabled
	}
	if !caller.HasIntegration() {
		return "", apperrors.ErrIntegrationMissing
	}
	return caller.IntegrationToken, nil
}

// Create prefixes the design name with the caller's username and returns the
// partner response verbatim.
func (s *homeDesignService) Create(ctx context.Context, design model.Design, caller *model.User) (json.RawMessage, error) {
	token, err := s.token(caller)
	if err != nil {
		return nil, err
	}

	design.Name = designPrefix(caller.Username) + design.Name
	body, err := s.partner.CreateDesign(ctx, token, design)
	if err != nil {
		return nil, err
	}
	s.cache.Delete(ctx, s.cacheKey(caller.Username))
	return body, nil
}

// List returns the partner designs whose name carries the caller's prefix.
func (s *homeDesignService) List(ctx context.Context, caller *model.User) ([]partner.DesignRecord, error) {
	token, err := s.token(caller)
	if err != nil {
		return nil, err
	}

	key := s.cacheKey(caller.Username)
	var cached []partner.DesignRecord
	if s.cache.GetJSON(ctx, key, &cached) {
		return cached, nil
	}

	all, err := s.partner.ListDesigns(ctx, token)
	if err != nil {
		return nil, err
	}
	prefix := designPrefix(caller.Username)
	owned := make([]partner.DesignRecord, 0, len(all))
	for _, d := range all {
		if strings.HasPrefix(d.Name(), prefix) {
			owned = append(owned, d)
		}
	}

	s.cache.SetJSON(ctx, key, owned, s.cacheTTL)
	return owned, nil
}
