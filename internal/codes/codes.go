// Package codes translates the backend's single-letter status and rating
// codes to display labels and back. Both directions are total: anything
// outside a family's domain passes through unchanged, never errors.
package codes

import "strings"

type Family struct {
	name   string
	order  []string
	labels map[string]string
	byName map[string]string
}

// Rating covers the traffic-light codes attached to goals and weeks.
var Rating = newFamily("rating",
	pair{"G", "Green"},
	pair{"R", "Red"},
	pair{"O", "Orange"},
)

// Status covers weekly and goal status codes. S reads as "Reviewed" and U as
// "Yet-to-Start"; the older "Submitted" and "No Data Avl." labels are
// accepted on the way in but never produced.
var Status = newFamily("status",
	pair{"I", "In-Progress"},
	pair{"C", "Completed"},
	pair{"S", "Reviewed"},
	pair{"U", "Yet-to-Start"},
)

func init() {
	Status.alias("Submitted", "S")
	Status.alias("No Data Avl.", "U")
	Status.alias("Untouched", "U")
	Status.alias("Un-touched", "U")
	Status.alias("In progress", "I")
}

type pair struct{ code, label string }

func newFamily(name string, pairs ...pair) *Family {
	f := &Family{
		name:   name,
		labels: make(map[string]string, len(pairs)),
		byName: make(map[string]string, len(pairs)*2),
	}
	for _, p := range pairs {
		f.order = append(f.order, p.code)
		f.labels[p.code] = p.label
		f.byName[strings.ToLower(p.code)] = p.code
		f.byName[strings.ToLower(p.label)] = p.code
	}
	return f
}

func (f *Family) alias(label, code string) {
	f.byName[strings.ToLower(label)] = code
}

func (f *Family) Name() string { return f.name }

// Codes returns the family's defined domain in declaration order.
func (f *Family) Codes() []string {
	out := make([]string, len(f.order))
	copy(out, f.order)
	return out
}

// CodeToLabel maps a backend code to its display label. Unknown or empty
// codes come back unchanged.
func (f *Family) CodeToLabel(code string) string {
	if label, ok := f.labels[strings.ToUpper(strings.TrimSpace(code))]; ok {
		return label
	}
	return code
}

// LabelToCode is the submit-side encoding: it maps a display label, a known
// alias, or an already-encoded letter to the wire code. Input outside the
// family passes through unchanged.
func (f *Family) LabelToCode(label string) string {
	if code, ok := f.byName[strings.ToLower(strings.TrimSpace(label))]; ok {
		return code
	}
	return label
}

// Lookup finds a family by name for callers that carry the family as data.
func Lookup(name string) (*Family, bool) {
	switch strings.ToLower(name) {
	case "rating":
		return Rating, true
	case "status":
		return Status, true
	}
	return nil, false
}
