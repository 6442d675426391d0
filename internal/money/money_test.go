package money

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/hsa-card/hsa_engine/internal/domain"
)

func TestToMinor(t *testing.T) {
	cases := map[string]int64{
		"500":    50_000,
		"25.00":  2_500,
		"0.01":   1,
		"19.9":   1_990,
		"475.50": 47_550,
	}
	for in, want := range cases {
		got, err := ToMinor(decimal.RequireFromString(in))
		if err != nil {
			t.Fatalf("ToMinor(%s): %v", in, err)
		}
		if got != want {
			t.Fatalf("ToMinor(%s) = %d, want %d", in, got, want)
		}
	}
}

func TestToMinorRejectsInvalidAmounts(t *testing.T) {
	for _, in := range []string{"0", "-5", "-0.01", "1.005", "100000000000000000000"} {
		if _, err := ToMinor(decimal.RequireFromString(in)); !errors.Is(err, domain.ErrInvalidAmount) {
			t.Fatalf("ToMinor(%s): expected invalid amount, got %v", in, err)
		}
	}
}

func TestFromMinor(t *testing.T) {
	if got := FromMinor(47_500).String(); got != "475" {
		t.Fatalf("expected 475, got %s", got)
	}
	if got := Float(1_999); got != 19.99 {
		t.Fatalf("expected 19.99, got %v", got)
	}
}
