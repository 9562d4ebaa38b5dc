package codes

// RatingCode and StatusCode are the parsed forms of the wire codes. Known
// values compare against the exported constants; anything else survives as
// its raw string so unknown backend codes are never destroyed.

type RatingCode string

const (
	RatingGreen  RatingCode = "G"
	RatingRed    RatingCode = "R"
	RatingOrange RatingCode = "O"
)

// ParseRating accepts a code, label, or alias. ok is false when the input is
// outside the rating domain; the returned value then carries the raw input.
func ParseRating(raw string) (RatingCode, bool) {
	code := Rating.LabelToCode(raw)
	if _, known := Rating.labels[code]; known {
		return RatingCode(code), true
	}
	return RatingCode(raw), false
}

func (r RatingCode) Known() bool {
	_, ok := Rating.labels[string(r)]
	return ok
}

func (r RatingCode) Label() string {
	return Rating.CodeToLabel(string(r))
}

type StatusCode string

const (
	StatusInProgress StatusCode = "I"
	StatusCompleted  StatusCode = "C"
	StatusReviewed   StatusCode = "S"
	StatusYetToStart StatusCode = "U"
)

func ParseStatus(raw string) (StatusCode, bool) {
	code := Status.LabelToCode(raw)
	if _, known := Status.labels[code]; known {
		return StatusCode(code), true
	}
	return StatusCode(raw), false
}

func (s StatusCode) Known() bool {
	_, ok := Status.labels[string(s)]
	return ok
}

func (s StatusCode) Label() string {
	return Status.CodeToLabel(string(s))
}
