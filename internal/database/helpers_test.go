package database

import (
	"database/sql"
	"testing"

	"github.com/luishram/tablero/internal/models"
)

// TestPositionBetween tests the midpoint calculation and gap exhaustion
func TestPositionBetween(t *testing.T) {
	tests := []struct {
		name    string
		lo, hi  int
		wantPos int
		wantOK  bool
	}{
		{"wide gap", 1000, 2000, 1500, true},
		{"minimal gap", 10, 12, 11, true},
		{"adjacent", 10, 11, 0, false},
		{"equal", 10, 10, 0, false},
		{"front of list", 0, 1000, 500, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, ok := positionBetween(tt.lo, tt.hi)
			if ok != tt.wantOK {
				t.Fatalf("positionBetween(%d, %d) ok = %v, want %v", tt.lo, tt.hi, ok, tt.wantOK)
			}
			if ok && pos != tt.wantPos {
				t.Errorf("positionBetween(%d, %d) = %d, want %d", tt.lo, tt.hi, pos, tt.wantPos)
			}
			if ok && (pos <= tt.lo || pos >= tt.hi) {
				t.Errorf("position %d not strictly between %d and %d", pos, tt.lo, tt.hi)
			}
		})
	}
}

// TestSlotFor tests the drop-index position calculation
func TestSlotFor(t *testing.T) {
	siblings := []posRow{
		{id: 1, position: 1000},
		{id: 2, position: 2000},
		{id: 3, position: 3000},
	}

	tests := []struct {
		name     string
		siblings []posRow
		index    int
		wantPos  int
		wantOK   bool
	}{
		{"empty column", nil, 0, models.PositionSpacing, true},
		{"drop at top", siblings, 0, 500, true},
		{"drop in middle", siblings, 1, 1500, true},
		{"drop at bottom", siblings, 3, 4000, true},
		{"exhausted gap", []posRow{{id: 1, position: 1}, {id: 2, position: 2}}, 1, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, ok := slotFor(tt.siblings, tt.index)
			if ok != tt.wantOK {
				t.Fatalf("slotFor index %d ok = %v, want %v", tt.index, ok, tt.wantOK)
			}
			if ok && pos != tt.wantPos {
				t.Errorf("slotFor index %d = %d, want %d", tt.index, pos, tt.wantPos)
			}
		})
	}
}

// TestClampIndex tests index bounding
func TestClampIndex(t *testing.T) {
	tests := []struct {
		index, n, want int
	}{
		{-1, 3, 0},
		{0, 3, 0},
		{2, 3, 2},
		{3, 3, 3},
		{10, 3, 3},
	}

	for _, tt := range tests {
		if got := clampIndex(tt.index, tt.n); got != tt.want {
			t.Errorf("clampIndex(%d, %d) = %d, want %d", tt.index, tt.n, got, tt.want)
		}
	}
}

// TestEscapeLike tests that LIKE metacharacters are escaped
func TestEscapeLike(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"100%", `100\%`},
		{"under_score", `under\_score`},
		{`back\slash`, `back\\slash`},
	}

	for _, tt := range tests {
		if got := escapeLike(tt.in); got != tt.want {
			t.Errorf("escapeLike(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// TestNullStringRoundTrip tests the NullString conversion helpers
func TestNullStringRoundTrip(t *testing.T) {
	if nullStringToPtr(sql.NullString{}) != nil {
		t.Error("Invalid NullString should convert to nil")
	}

	val := "hello"
	ptr := nullStringToPtr(sql.NullString{String: val, Valid: true})
	if ptr == nil || *ptr != val {
		t.Errorf("Expected %q, got %v", val, ptr)
	}

	ns := ptrToNullString(nil)
	if ns.Valid {
		t.Error("nil pointer should convert to invalid NullString")
	}
	ns = ptrToNullString(&val)
	if !ns.Valid || ns.String != val {
		t.Errorf("Expected valid NullString %q, got %+v", val, ns)
	}
}
