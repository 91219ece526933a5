package kit

import (
	"testing"
)

func TestParseSortSpec(t *testing.T) {
	cases := []struct {
		spec    string
		field   string
		asc     bool
		wantErr bool
	}{
		{"", "", true, false},
		{"price", "price", true, false},
		{"price:asc", "price", true, false},
		{"price:desc", "price", false, false},
		{"created_at:DESC", "created_at", false, false},
		{"price:sideways", "", true, true},
	}
	for _, tc := range cases {
		field, asc, err := parseSortSpec(tc.spec)
		if tc.wantErr {
			if err == nil {
				t.Errorf("%q: expected error", tc.spec)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: %v", tc.spec, err)
			continue
		}
		if field != tc.field || asc != tc.asc {
			t.Errorf("%q: field=%q asc=%v", tc.spec, field, asc)
		}
	}
}

func TestApplyProductSort_RejectsUnknownField(t *testing.T) {
	if _, err := ApplyProductSort(nil, "secret_column:asc"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestApplySellerSort_RejectsUnknownField(t *testing.T) {
	if _, err := ApplySellerSort(nil, "price:asc"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestApplyProductSort_EmptySpecPassthrough(t *testing.T) {
	if _, err := ApplyProductSort(nil, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
