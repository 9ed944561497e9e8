package services

import (
	"testing"

	"github.com/Orbe-ERP/pos-backend/entity"
)

func routedLine(kitchen string) entity.OrderLine {
	if kitchen == "" {
		return entity.OrderLine{}
	}
	return entity.OrderLine{KitchenID: 1, Kitchen: entity.Kitchen{Name: kitchen}}
}

func linesFor(names ...string) []entity.OrderLine {
	lines := make([]entity.OrderLine, 0, len(names))
	for _, n := range names {
		lines = append(lines, routedLine(n))
	}
	return lines
}

func TestDominantKitchen(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{"empty", nil, ""},
		{"single", []string{"Grill"}, "Grill"},
		{"tieGoesToFirstSeen", []string{"Grill", "Bar"}, "Grill"},
		{"tieGoesToFirstSeenReversed", []string{"Bar", "Grill"}, "Bar"},
		{"majorityWins", []string{"Grill", "Grill", "Bar"}, "Grill"},
		{"majorityWinsRegardlessOfOrder", []string{"Bar", "Grill", "Grill"}, "Grill"},
		{"unroutedFallsIntoDefault", []string{""}, DefaultKitchen},
		{"defaultCountsLikeAnyStation", []string{"", "", "Bar"}, DefaultKitchen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DominantKitchen(linesFor(tt.lines...))
			if got != tt.want {
				t.Errorf("DominantKitchen(%v) = %q, want %q", tt.lines, got, tt.want)
			}
		})
	}
}

func TestGroupByKitchen(t *testing.T) {
	lines := linesFor("Grill", "Bar", "Grill", "")

	groups := GroupByKitchen(lines)

	if len(groups["Grill"]) != 2 || len(groups["Bar"]) != 1 || len(groups[DefaultKitchen]) != 1 {
		t.Errorf("unexpected grouping: Grill=%d Bar=%d default=%d",
			len(groups["Grill"]), len(groups["Bar"]), len(groups[DefaultKitchen]))
	}

	// per-kitchen counts always add up to the total line count
	total := 0
	for _, g := range groups {
		total += len(g)
	}
	if total != len(lines) {
		t.Errorf("grouped %d lines, want %d", total, len(lines))
	}
}
