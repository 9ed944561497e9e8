package services

import (
	"errors"
	"fmt"
)

// Error taxonomy recovered at the API boundary. Controllers translate these
// to HTTP statuses; nothing here crashes a client.
var (
	ErrValidation      = errors.New("validation failed")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrNothingToSettle = errors.New("nothing to settle")
)

// TransitionError reports the specific line that made a batch advance
// impossible. Wraps ErrInvalidTransition semantics.
type TransitionError struct {
	LineID uint
	From   string
	To     string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid transition for line %d: %s -> %s", e.LineID, e.From, e.To)
}

// AsTransitionError unwraps err into a *TransitionError when possible.
func AsTransitionError(err error) (*TransitionError, bool) {
	var te *TransitionError
	ok := errors.As(err, &te)
	return te, ok
}

func validationf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrValidation}, args...)...)
}
