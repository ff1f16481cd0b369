// Package directory turns the flat entry list into the grouped view shown to
// the operator: filtered by a text query, grouped by QR identifier, sorted,
// and colored. Everything here is pure.
package directory

import (
	"cmp"
	"math"
	"slices"
	"strings"
	"unicode/utf16"

	"github.com/dmitrijs2005/qrcontacts/internal/client/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// PaletteSize is the number of distinct group colors.
const PaletteSize = 10

// UngroupedKey is the key of the group holding entries without a QR.
const UngroupedKey = "ungrouped"

// Group is one QR identifier and its entries.
type Group struct {
	Key       string
	Ungrouped bool
	Color     int
	Entries   []models.Entry
}

// Aggregate filters entries by query (case-insensitive substring of name or
// mobile) and, when groupFilter is set, by QR identifier. The survivors are
// grouped by QR and returned in display order. The input is not modified.
func Aggregate(entries []models.Entry, query string, groupFilter models.QR) []Group {
	fold := cases.Fold()
	q := fold.String(query)

	buckets := map[models.QR][]models.Entry{}
	for _, e := range entries {
		if !matchesQuery(fold, e, q) || !matchesGroup(e.QR, groupFilter) {
			continue
		}
		buckets[e.QR] = append(buckets[e.QR], e)
	}

	col := collate.New(language.Und, collate.IgnoreCase)
	groups := make([]Group, 0, len(buckets))
	for qr, members := range buckets {
		slices.SortFunc(members, func(a, b models.Entry) int {
			return cmp.Or(
				col.CompareString(a.Name, b.Name),
				strings.Compare(a.Name, b.Name),
				strings.Compare(a.Mobile, b.Mobile),
				strings.Compare(string(a.QR), string(b.QR)),
			)
		})
		groups = append(groups, newGroup(qr, members))
	}

	slices.SortFunc(groups, compareGroups)
	return groups
}

// Flatten returns the entries of groups in display order.
func Flatten(groups []Group) []models.Entry {
	var out []models.Entry
	for _, g := range groups {
		out = append(out, g.Entries...)
	}
	return out
}

func matchesQuery(fold cases.Caser, e models.Entry, q string) bool {
	if q == "" {
		return true
	}
	return strings.Contains(fold.String(e.Name), q) || strings.Contains(fold.String(e.Mobile), q)
}

// matchesGroup compares identifiers as given and as leading integers, so a
// filter of "5" matches a stored 5 and "05".
func matchesGroup(qr, filter models.QR) bool {
	if !filter.IsSet() {
		return true
	}
	if !qr.IsSet() {
		return false
	}
	if qr == filter {
		return true
	}
	a, ok1 := qr.Int()
	b, ok2 := filter.Int()
	return ok1 && ok2 && a == b
}

func newGroup(qr models.QR, members []models.Entry) Group {
	if !qr.IsSet() {
		return Group{Key: UngroupedKey, Ungrouped: true, Color: colorOf(UngroupedKey), Entries: members}
	}
	return Group{Key: string(qr), Color: colorOf(string(qr)), Entries: members}
}

// colorOf maps a key to a palette index: the key itself for numeric keys,
// the sum of its UTF-16 code units otherwise. Numeric keys are taken as
// float64 so keys past the int64 range still get a stable index.
func colorOf(key string) int {
	if f, ok := models.ParseLeadingFloat(key); ok {
		if math.IsInf(f, 0) {
			return 0
		}
		return int(math.Mod(math.Mod(f, PaletteSize)+PaletteSize, PaletteSize))
	}
	sum := 0
	for _, u := range utf16.Encode([]rune(key)) {
		sum += int(u)
	}
	return sum % PaletteSize
}

// compareGroups orders numeric keys ascending, then non-numeric keys
// lexicographically, then the ungrouped group.
func compareGroups(a, b Group) int {
	if a.Ungrouped != b.Ungrouped {
		if a.Ungrouped {
			return 1
		}
		return -1
	}

	an, aok := models.QR(a.Key).Int()
	bn, bok := models.QR(b.Key).Int()
	switch {
	case aok && bok:
		return cmp.Or(cmp.Compare(an, bn), strings.Compare(a.Key, b.Key))
	case aok:
		return -1
	case bok:
		return 1
	default:
		return strings.Compare(a.Key, b.Key)
	}
}
