package enrich

import (
	"sort"
	"strings"
)

const colorOrder = "WUBRG"

// SortColors renders a set of colour symbols in WUBRG order. Symbols outside
// WUBRG follow in alphabetical order.
func SortColors(set map[string]struct{}) string {
	symbols := make([]string, 0, len(set))
	for s := range set {
		if s != "" {
			symbols = append(symbols, s)
		}
	}
	sort.Slice(symbols, func(i, j int) bool {
		a, b := rank(symbols[i]), rank(symbols[j])
		if a != b {
			return a < b
		}
		return symbols[i] < symbols[j]
	})
	return strings.Join(symbols, "")
}

func rank(symbol string) int {
	if len(symbol) == 1 {
		if i := strings.Index(colorOrder, symbol); i >= 0 {
			return i
		}
	}
	return len(colorOrder)
}
