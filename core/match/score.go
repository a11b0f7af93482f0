package match

import (
	"fmt"
	"math"

	"deck-finder/core/deck"
	"deck-finder/core/inventory"
)

const (
	// Threshold is the inclusive minimum completion percentage.
	Threshold = 70.0
	// ExactPercentage is the rendered percentage of a complete deck.
	ExactPercentage = "100.00"
)

// tally accumulates whole-deck totals across every board.
type tally struct {
	required int
	owned    int
}

func (t *tally) annotate(items []deck.RequiredItem, inv inventory.Inventory) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		owned := inv.Owned(deck.NormalizeName(it.CardName))
		out = append(out, Item{
			CardName: it.CardName,
			Quantity: it.Quantity,
			Missing:  max(0, it.Quantity-owned),
		})
		t.required += it.Quantity
		t.owned += min(it.Quantity, owned)
	}
	return out
}

func (t *tally) percentage() float64 {
	if t.required <= 0 {
		return 0
	}
	return float64(t.owned) * 100 / float64(t.required)
}

// Score annotates every item of doc and computes its completion.
func Score(doc *deck.Document, inv inventory.Inventory) Match {
	var t tally

	cats := doc.MainCategories()
	main := make(Categories, 0, len(cats))
	for _, c := range cats {
		main = append(main, Category{Name: c.Name, Items: t.annotate(c.Items, inv)})
	}
	side := t.annotate(doc.Sideboard, inv)
	maybe := t.annotate(doc.Maybeboard, inv)

	pct := t.percentage()
	return Match{
		DeckID:     doc.DeckID,
		Name:       doc.Name,
		Format:     doc.Format,
		UpdatedAt:  doc.UpdatedAt,
		Colors:     doc.Colors,
		Percentage: FormatPercentage(pct),
		Score:      pct,
		Mainboard:  Mainboard{Categories: main},
		Sideboard:  side,
		Maybeboard: maybe,
	}
}

// FormatPercentage renders a percentage with two decimals, rounding
// halves up (70.125 reads 70.13).
func FormatPercentage(pct float64) string {
	return fmt.Sprintf("%.2f", math.Floor(pct*100+0.5)/100)
}
