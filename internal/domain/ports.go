package domain

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned by read paths when a record does not exist.
	ErrNotFound = errors.New("catalog: not found")
	// ErrInvalidInput marks a structural violation of the raw input contract
	// (missing capacity, missing names). Malformed field *values* never raise
	// it; they degrade to documented defaults instead.
	ErrInvalidInput = errors.New("catalog: invalid input")
)

type CatalogRepository interface {
	// Write paths
	UpsertHotel(ctx context.Context, h CanonicalHotel) error
	LogMiss(ctx context.Context, recordID string, status int, reason string) error

	// Read paths
	GetHotel(ctx context.Context, code string) (CanonicalHotel, error)
	ListHotels(ctx context.Context, q HotelsQuery) (HotelsPage, error)
}

// ExtractClient talks to the upstream extraction service that produces the
// loosely-structured hotel-description records.
type ExtractClient interface {
	GetRecord(ctx context.Context, id string) (RawHotel, error)
	ListPending(ctx context.Context, limit int) ([]string, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// Read models & queries

type HotelSummary struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	Star  string `json:"star"`
	Area  string `json:"area"`
	Rooms int    `json:"rooms"`
}

type HotelsQuery struct {
	Q     *string
	Type  *string
	Limit int
}

type HotelsPage struct {
	Items []HotelSummary `json:"items"`
}
