// Package view turns a classified item set plus the current filter and sort
// selection into the model the dashboard renders.
package view

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/tkoide/supplywatch/internal/domain"
)

// SortMode selects the ordering of the item listing.
type SortMode string

const (
	SortNone     SortMode = "none"
	SortCategory SortMode = "category"
	SortExpiry   SortMode = "expiry"
)

// ParseSortMode maps a selector value to a SortMode. Unrecognized values fall
// back to SortNone, which preserves source order.
func ParseSortMode(s string) SortMode {
	switch SortMode(s) {
	case SortCategory, SortExpiry:
		return SortMode(s)
	default:
		return SortNone
	}
}

// FilterAll is the selector value that keeps every item.
const FilterAll = "all"

// ViewModel is everything one render of the dashboard needs. Summary and
// Urgent always describe the FULL item set; only Items reflects the filter
// and sort selection.
type ViewModel struct {
	Items      []domain.Item
	Summary    domain.Summary
	Urgent     []domain.Item
	Categories []string
	Filter     string
	Sort       SortMode
}

// Build computes the view model. It never mutates items: sorting works on a
// copy, so the snapshot the items came from stays intact.
func Build(items []domain.Item, filter string, mode SortMode) ViewModel {
	return ViewModel{
		Items:      sortItems(filterItems(items, filter), mode),
		Summary:    summarize(items),
		Urgent:     urgentItems(items),
		Categories: categories(items),
		Filter:     filter,
		Sort:       mode,
	}
}

func filterItems(items []domain.Item, filter string) []domain.Item {
	if filter == "" || filter == FilterAll {
		return append([]domain.Item(nil), items...)
	}
	kept := make([]domain.Item, 0, len(items))
	for _, it := range items {
		if it.Record.Category() == filter {
			kept = append(kept, it)
		}
	}
	return kept
}

func sortItems(items []domain.Item, mode SortMode) []domain.Item {
	switch mode {
	case SortCategory:
		c := collate.New(language.Und)
		sort.SliceStable(items, func(i, j int) bool {
			return c.CompareString(items[i].Record.Category(), items[j].Record.Category()) < 0
		})
	case SortExpiry:
		sort.SliceStable(items, func(i, j int) bool {
			return daysLess(items[i].Expiry.DaysLeft, items[j].Expiry.DaysLeft)
		})
	}
	return items
}

// daysLess orders ascending by days left, with no-expiry items after every
// dated item.
func daysLess(a, b *int) bool {
	if a == nil {
		return false
	}
	if b == nil {
		return true
	}
	return *a < *b
}

func summarize(items []domain.Item) domain.Summary {
	s := domain.Summary{Total: len(items)}
	for _, it := range items {
		switch it.Expiry.Status {
		case domain.StatusSafe:
			s.Safe++
		case domain.StatusSoon:
			s.Soon++
		case domain.StatusExpired:
			s.Expired++
		}
	}
	return s
}

// urgentItems is the expired subset, soonest (most negative) first.
func urgentItems(items []domain.Item) []domain.Item {
	var urgent []domain.Item
	for _, it := range items {
		if it.Expiry.Status == domain.StatusExpired {
			urgent = append(urgent, it)
		}
	}
	sort.SliceStable(urgent, func(i, j int) bool {
		return daysLess(urgent[i].Expiry.DaysLeft, urgent[j].Expiry.DaysLeft)
	})
	return urgent
}

// categories lists the distinct category values present, collation-sorted,
// for populating the filter selector.
func categories(items []domain.Item) []string {
	seen := make(map[string]bool)
	var cats []string
	for _, it := range items {
		c := it.Record.Category()
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		cats = append(cats, c)
	}
	collate.New(language.Und).SortStrings(cats)
	return cats
}
