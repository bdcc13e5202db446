package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/freshpantry/stockroom/internal/domain"
)

func TestToday(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 9, 1, 23, 30, 0, 0, time.FixedZone("UTC+2", 2*3600))
	if got := domain.Today(now); got != "2026-09-01" {
		t.Fatalf("Today should format in UTC, got %q", got)
	}
}

func TestValidateProductName(t *testing.T) {
	t.Parallel()

	if err := domain.ValidateProductName("Milk"); err != nil {
		t.Fatalf("valid name rejected: %v", err)
	}
	for _, name := range []string{"", "   ", "\t"} {
		if err := domain.ValidateProductName(name); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("name %q: expected invalid input, got %v", name, err)
		}
	}
}

func TestValidateExpiryDate(t *testing.T) {
	t.Parallel()

	const today = "2026-09-01"
	cases := []struct {
		expiry string
		ok     bool
	}{
		{"2026-09-01", true},
		{"2026-09-02", true},
		{"2030-01-01", true},
		{"2026-08-31", false},
		{"2020-12-31", false},
		{"01-09-2026", false},
		{"not-a-date", false},
		{"", false},
	}
	for _, tc := range cases {
		err := domain.ValidateExpiryDate(tc.expiry, today)
		if tc.ok && err != nil {
			t.Fatalf("expiry %q: unexpected error %v", tc.expiry, err)
		}
		if !tc.ok && !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("expiry %q: expected invalid input, got %v", tc.expiry, err)
		}
	}
}

func TestValidateQuantity(t *testing.T) {
	t.Parallel()

	if err := domain.ValidateQuantity(1); err != nil {
		t.Fatalf("quantity 1 rejected: %v", err)
	}
	for _, q := range []int{0, -1, -100} {
		if err := domain.ValidateQuantity(q); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("quantity %d: expected invalid input, got %v", q, err)
		}
	}
}

func TestSnapshotOmitsQuantity(t *testing.T) {
	t.Parallel()

	product := domain.Product{
		Name:       "Milk",
		Type:       "Dairy",
		Quantity:   7,
		Owner:      "Peter",
		ExpiryDate: "2030-01-01",
		DateAdded:  "2026-09-01",
	}
	snap := product.Snapshot()
	if snap.Quantity != 0 {
		t.Fatalf("snapshot must not carry a quantity, got %d", snap.Quantity)
	}
	if snap.Name != "Milk" || snap.Owner != "Peter" || snap.ExpiryDate != "2030-01-01" {
		t.Fatalf("snapshot metadata mismatch: %+v", snap)
	}
}
