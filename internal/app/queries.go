package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hotel_catalog/internal/domain"
)

type QueryService struct {
	repo     domain.CatalogRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewQueryService(r domain.CatalogRepository, c domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{repo: r, cache: c, cacheTTL: ttl}
}

func (s *QueryService) GetHotel(ctx context.Context, code string) (domain.CanonicalHotel, error) {
	key := fmt.Sprintf("hotel:%s", strings.ToLower(code))
	var h domain.CanonicalHotel
	if ok, _ := s.cache.Get(ctx, key, &h); ok {
		return h, nil
	}
	h, err := s.repo.GetHotel(ctx, code)
	if err != nil {
		return domain.CanonicalHotel{}, err
	}
	_ = s.cache.Set(ctx, key, h, int(s.cacheTTL.Seconds()))
	return h, nil
}

func (s *QueryService) ListHotels(ctx context.Context, q domain.HotelsQuery) (domain.HotelsPage, error) {
	if q.Limit <= 0 {
		q.Limit = 50
	}
	return s.repo.ListHotels(ctx, q)
}
