package convert

import (
	"reflect"
	"testing"

	"hotel_catalog/internal/domain"
)

func TestNormalizeBedTypes_LegacyMultiMatch(t *testing.T) {
	got := normalizeBedTypes("1 dbl + 1 king size")
	want := []string{domain.BedDouble, domain.BedKing}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestNormalizeBedTypes_LegacyDefaults(t *testing.T) {
	for _, in := range []any{nil, "", "sofa bed", 12} {
		got := normalizeBedTypes(in)
		if !reflect.DeepEqual(got, []string{domain.BedDouble}) {
			t.Fatalf("input %v: got %v, want default [DOUBLE_BED]", in, got)
		}
	}
}

// Empty array input returns empty via the array branch; only the falsy-string
// path falls back to the default. The asymmetry is part of the contract.
func TestNormalizeBedTypes_EmptyArrayStaysEmpty(t *testing.T) {
	got := normalizeBedTypes([]any{})
	if len(got) != 0 {
		t.Fatalf("got %v, want empty", got)
	}
}

func TestNormalizeBedTypes_ArrayFiltersUnknownCodes(t *testing.T) {
	got := normalizeBedTypes([]any{"KING_BED", "SOFA_BED", "TWIN_BED"})
	want := []string{domain.BedKing, domain.BedTwin}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestNormalizeExtraBed(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want string
	}{
		{"absent", nil, ""},
		{"enum", "EXTRA_BED", domain.ExtraBed},
		{"none string", "NONE", ""},
		{"unknown string", "yes please", ""},
		{"legacy available true", map[string]any{"available": true}, domain.ExtraBed},
		{"legacy available false", map[string]any{"available": false}, ""},
		{"legacy type match", map[string]any{"type": "EXTRA_BED"}, domain.ExtraBed},
		{"legacy type mismatch", map[string]any{"type": "SOFA"}, ""},
		{"unrelated object", map[string]any{"count": 1}, ""},
		{"number", 1, ""},
	}
	for _, tc := range cases {
		if got := normalizeExtraBed(tc.in); got != tc.want {
			t.Fatalf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestPickEnum(t *testing.T) {
	if got := pickEnum("BB", enumMealPlan); got != "BB" {
		t.Fatalf("member not kept: %q", got)
	}
	if got := pickEnum("BRUNCH_ONLY", enumMealPlan); got != "RO" {
		t.Fatalf("unknown meal plan: got %q, want RO", got)
	}
	if got := pickEnum("", enumCondition); got != "FREE_CANCELLATION" {
		t.Fatalf("empty condition: got %q", got)
	}
	if got := pickEnum("HOUR", enumCancelUnitTime); got != "HOUR" {
		t.Fatalf("HOUR not kept: %q", got)
	}
	if got := pickEnum("MONTH", enumCancelUnitTime); got != "DAY" {
		t.Fatalf("unknown unit time: got %q, want DAY", got)
	}
	if got := pickEnum("PERCENTAGE", enumUnitType); got != "PERCENTAGE" {
		t.Fatalf("PERCENTAGE not kept: %q", got)
	}
}
