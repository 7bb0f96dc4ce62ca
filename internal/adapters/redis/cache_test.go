package redisad_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"

	redisad "hotel_catalog/internal/adapters/redis"
	"hotel_catalog/internal/domain"
)

func TestCache_RoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	cache := redisad.New(mr.Addr(), "", 0)
	ctx := context.Background()

	var missed domain.CanonicalHotel
	ok, err := cache.Get(ctx, "hotel:nope", &missed)
	if err != nil || ok {
		t.Fatalf("expected clean miss, got ok=%v err=%v", ok, err)
	}

	in := domain.CanonicalHotel{
		Code:       "BIỂN_XANH_RESORT",
		GlobalName: "Biển Xanh Resort",
		Star:       "4",
		Rooms:      []domain.Room{{Code: "DELUXE_1", BedTypes: []string{domain.BedKing}}},
	}
	if err := cache.Set(ctx, "hotel:biển_xanh_resort", in, 60); err != nil {
		t.Fatalf("set: %v", err)
	}

	var out domain.CanonicalHotel
	ok, err = cache.Get(ctx, "hotel:biển_xanh_resort", &out)
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if out.Code != in.Code || len(out.Rooms) != 1 || out.Rooms[0].Code != "DELUXE_1" {
		t.Fatalf("unexpected value: %+v", out)
	}

	if err := cache.Del(ctx, "hotel:biển_xanh_resort"); err != nil {
		t.Fatalf("del: %v", err)
	}
	ok, _ = cache.Get(ctx, "hotel:biển_xanh_resort", &out)
	if ok {
		t.Fatalf("expected miss after delete")
	}
}
