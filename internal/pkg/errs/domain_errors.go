package errs

// Error classes shared by every layer. Concrete errors are marked with one of
// these so the HTTP layer can map them without knowing the domain.
var (
	ErrValidation        = New("validation error")
	ErrForbidden         = New("forbidden")
	ErrNotFound          = New("not found")
	ErrNotEligible       = New("not eligible")
	ErrDuplicateReview   = New("duplicate review")
	ErrInvalidTransition = New("invalid status transition")
)

// Class returns a new error with msg that is also classified as class.
func Class(msg string, class error) error {
	return Mark(New(msg), class)
}
