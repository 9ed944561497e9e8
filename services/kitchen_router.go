package services

import (
	"github.com/Orbe-ERP/pos-backend/entity"
)

// DefaultKitchen is the synthetic bucket for lines with no assigned station.
const DefaultKitchen = "default"

func lineKitchenName(l entity.OrderLine) string {
	if l.KitchenID == 0 || l.Kitchen.Name == "" {
		return DefaultKitchen
	}
	return l.Kitchen.Name
}

// GroupByKitchen groups lines by station name. Pure function of current line
// state; recomputed on every read, never cached.
func GroupByKitchen(lines []entity.OrderLine) map[string][]entity.OrderLine {
	groups := make(map[string][]entity.OrderLine)
	for _, l := range lines {
		name := lineKitchenName(l)
		groups[name] = append(groups[name], l)
	}
	return groups
}

// DominantKitchen picks the station with the most lines. Counting follows
// first-seen iteration order and ties go to the station seen first — display
// stability on a tie is a user-visible contract.
func DominantKitchen(lines []entity.OrderLine) string {
	if len(lines) == 0 {
		return ""
	}

	counts := make(map[string]int)
	var seen []string
	for _, l := range lines {
		name := lineKitchenName(l)
		if _, ok := counts[name]; !ok {
			seen = append(seen, name)
		}
		counts[name]++
	}

	best := seen[0]
	for _, name := range seen[1:] {
		if counts[name] > counts[best] {
			best = name
		}
	}
	return best
}
