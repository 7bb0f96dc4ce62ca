package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"hotel_catalog/internal/adapters/observability"
	"hotel_catalog/internal/convert"
	"hotel_catalog/internal/domain"
)

// ConversionService pulls raw hotel-description records from the extraction
// service, runs them through the conversion engine, and persists the
// canonical catalog records.
type ConversionService struct {
	extract domain.ExtractClient
	conv    *convert.Converter
	repo    domain.CatalogRepository
	cache   domain.Cache
}

func NewConversionService(e domain.ExtractClient, c *convert.Converter, r domain.CatalogRepository, cache domain.Cache) *ConversionService {
	return &ConversionService{extract: e, conv: c, repo: r, cache: cache}
}

// ConvertRecord fetches one raw record, converts it, and upserts the result.
// Known upstream misses (404/401/403) and structurally invalid records are
// logged and swallowed; unexpected errors bubble up.
func (s *ConversionService) ConvertRecord(ctx context.Context, recordID string) error {
	raw, err := s.extract.GetRecord(ctx, recordID)
	if err != nil {
		low := strings.ToLower(err.Error())

		// 404: record gone upstream -> log the miss and stop gracefully.
		if errors.Is(err, domain.ErrNotFound) || strings.Contains(low, "not found") {
			_ = s.repo.LogMiss(ctx, recordID, 404, "not found")
			return nil
		}

		// 401/403: unauthorized/forbidden -> log the miss, stop.
		if strings.Contains(low, "403") || strings.Contains(low, "forbidden") ||
			strings.Contains(low, "401") || strings.Contains(low, "unauthorized") {
			_ = s.repo.LogMiss(ctx, recordID, 403, "inactive")
			return nil
		}

		// Anything else is unexpected (network/5xx/JSON/etc.) -> bubble up.
		return err
	}

	hotel, err := s.Convert(raw)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			// Bad data, not a bad deploy: record and move on.
			_ = s.repo.LogMiss(ctx, recordID, 422, err.Error())
			return nil
		}
		return fmt.Errorf("convert record %s: %w", recordID, err)
	}

	if err := s.repo.UpsertHotel(ctx, hotel); err != nil {
		return fmt.Errorf("upsert hotel %s: %w", hotel.Code, err)
	}

	// Drop any cached copy so reads pick up the fresh conversion.
	if s.cache != nil {
		s.invalidateHotel(ctx, hotel.Code)
	}
	return nil
}

// Convert runs the engine on an already-fetched record without persisting;
// also the synchronous API surface.
func (s *ConversionService) Convert(raw domain.RawHotel) (domain.CanonicalHotel, error) {
	start := time.Now()
	hotel, err := s.conv.Convert(raw)
	if err != nil {
		observability.ObserveConversion("invalid", time.Since(start))
		return domain.CanonicalHotel{}, err
	}
	observability.ObserveConversion("ok", time.Since(start))
	observability.ObserveSeasonsBuilt(len(hotel.Seasons))
	return hotel, nil
}

func (s *ConversionService) invalidateHotel(ctx context.Context, code string) {
	_ = s.cache.Del(ctx, fmt.Sprintf("hotel:%s", strings.ToLower(code)))
}
