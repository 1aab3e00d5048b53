package ledger

import "errors"

// Domain errors. Handlers translate these into HTTP outcomes with
// errors.Is; anything else is treated as a persistence failure.
var (
	ErrInvalidAmount     = errors.New("amount is not a valid positive number")
	ErrEmptyName         = errors.New("name must not be blank")
	ErrDuplicateName     = errors.New("name already in use")
	ErrAccountNotFound   = errors.New("account not found")
	ErrProtectedAccount  = errors.New("the default account cannot be changed")
	ErrNonZeroBalance    = errors.New("account balance must be zero")
	ErrSameAccount       = errors.New("transfer accounts must differ")
	ErrMissingParameters = errors.New("missing parameters")
	ErrMissingYear       = errors.New("year parameter is required")
)
