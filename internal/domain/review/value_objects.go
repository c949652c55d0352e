package review

import (
	"strings"
	"unicode/utf8"

	"coach-booking-api/internal/pkg/errs"
)

const (
	MinRating        = 1
	MaxRating        = 5
	MaxCommentLength = 1000
)

var (
	ErrInvalidRating  = errs.Class("rating must be between 1 and 5", errs.ErrValidation)
	ErrCommentTooLong = errs.Class("comment exceeds maximum length", errs.ErrValidation)
)

type Rating struct {
	value int
}

func NewRating(v int) (Rating, error) {
	if v < MinRating || v > MaxRating {
		return Rating{}, ErrInvalidRating
	}
	return Rating{value: v}, nil
}

func (r Rating) Value() int { return r.value }

// Comment is optional; the zero value means no comment.
type Comment struct {
	text string
}

func NewComment(s string) (Comment, error) {
	t := strings.TrimSpace(s)
	if utf8.RuneCountInString(t) > MaxCommentLength {
		return Comment{}, ErrCommentTooLong
	}
	return Comment{text: t}, nil
}

func (c Comment) String() string { return c.text }
func (c Comment) IsEmpty() bool  { return c.text == "" }

// Ptr returns nil for an empty comment so storage keeps NULL.
func (c Comment) Ptr() *string {
	if c.IsEmpty() {
		return nil
	}
	s := c.text
	return &s
}
