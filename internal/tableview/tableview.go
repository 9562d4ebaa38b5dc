// Package tableview shapes flat record lists for tabular display: filter,
// stable sort, paginate, and compute per-page group striping flags. It is
// pure data work with no transport or storage awareness.
package tableview

import (
	"sort"
	"strconv"
	"strings"
)

// Record is one flat row keyed by column name.
type Record = map[string]any

// FilterSpec selects records. A nil Predicate keeps everything.
type FilterSpec struct {
	Predicate func(Record) bool
}

// And combines filters; every predicate must accept the record.
func And(filters ...FilterSpec) FilterSpec {
	preds := make([]func(Record) bool, 0, len(filters))
	for _, f := range filters {
		if f.Predicate != nil {
			preds = append(preds, f.Predicate)
		}
	}
	if len(preds) == 0 {
		return FilterSpec{}
	}
	return FilterSpec{Predicate: func(r Record) bool {
		for _, p := range preds {
			if !p(r) {
				return false
			}
		}
		return true
	}}
}

// FieldEquals matches when the record's field renders to the given value,
// compared trimmed and case-insensitively. An empty value is a no-op
// filter, not a match-empty filter.
func FieldEquals(field, value string) FilterSpec {
	want := fold(value)
	if want == "" {
		return FilterSpec{}
	}
	return FilterSpec{Predicate: func(r Record) bool {
		return fold(render(r[field])) == want
	}}
}

// FieldContains matches when the rendered field contains the fragment,
// case-insensitively.
func FieldContains(field, fragment string) FilterSpec {
	want := fold(fragment)
	return FilterSpec{Predicate: func(r Record) bool {
		return strings.Contains(fold(render(r[field])), want)
	}}
}

// SortSpec orders by one field. When both values parse as numbers they
// compare numerically, otherwise as trimmed case-folded strings. The sort
// is stable so equal keys keep their input order.
type SortSpec struct {
	Field      string
	Descending bool
}

// PageSpec is a zero-based page window. Size <= 0 means a single page
// holding everything.
type PageSpec struct {
	Index int
	Size  int
}

// Projection is the display-ready result. RowStyleFlags is parallel to
// Rows; the flag toggles whenever the trimmed group key changes between
// adjacent rows, starting false on each page, which drives the zebra
// striping of grouped tables. TotalCount is the filtered count before
// pagination, so callers can size pagers.
type Projection struct {
	Rows          []Record
	RowStyleFlags []bool
	TotalCount    int
}

// Project applies filter, then sort, then pagination, then computes the
// group flags for the resulting page. groupKey may be empty, in which
// case every flag is false.
func Project(records []Record, filter FilterSpec, sortBy SortSpec, page PageSpec, groupKey string) Projection {
	filtered := applyFilter(records, filter)
	applySort(filtered, sortBy)
	window := applyPage(filtered, page)

	return Projection{
		Rows:          window,
		RowStyleFlags: GroupFlags(window, groupKey),
		TotalCount:    len(filtered),
	}
}

// GroupFlags computes the striping flags for one page of rows. The first
// row is always false; the flag flips each time the trimmed group key
// differs from the previous row's.
func GroupFlags(rows []Record, groupKey string) []bool {
	flags := make([]bool, len(rows))
	if groupKey == "" {
		return flags
	}
	current := false
	prev := ""
	for i, row := range rows {
		key := strings.TrimSpace(render(row[groupKey]))
		if i > 0 && key != prev {
			current = !current
		}
		flags[i] = current
		prev = key
	}
	return flags
}

func applyFilter(records []Record, filter FilterSpec) []Record {
	if filter.Predicate == nil {
		out := make([]Record, len(records))
		copy(out, records)
		return out
	}
	out := []Record{}
	for _, r := range records {
		if filter.Predicate(r) {
			out = append(out, r)
		}
	}
	return out
}

func applySort(records []Record, spec SortSpec) {
	if spec.Field == "" {
		return
	}
	sort.SliceStable(records, func(i, j int) bool {
		less := compareValues(records[i][spec.Field], records[j][spec.Field]) < 0
		if spec.Descending {
			less = compareValues(records[j][spec.Field], records[i][spec.Field]) < 0
		}
		return less
	})
}

func applyPage(records []Record, page PageSpec) []Record {
	if page.Size <= 0 {
		return records
	}
	start := page.Index * page.Size
	if start < 0 || start >= len(records) {
		return []Record{}
	}
	end := start + page.Size
	if end > len(records) {
		end = len(records)
	}
	return records[start:end]
}

// compareValues orders two cell values. Numeric when both sides are
// numeric, string otherwise. Missing values sort first.
func compareValues(a, b any) int {
	if a == nil && b == nil {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	an, aok := toFloat(a)
	bn, bok := toFloat(b)
	if aok && bok {
		switch {
		case an < bn:
			return -1
		case an > bn:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(fold(render(a)), fold(render(b)))
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	}
	return 0, false
}

func render(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case int:
		return strconv.Itoa(s)
	case int32:
		return strconv.FormatInt(int64(s), 10)
	case int64:
		return strconv.FormatInt(s, 10)
	case float32:
		return strconv.FormatFloat(float64(s), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		if s {
			return "true"
		}
		return "false"
	}
	return ""
}

func fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
