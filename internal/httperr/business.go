package httperr

import "errors"

// BusinessError is a domain rule violation carried up from a use
// case. It holds only a stable code; the HTTP layer decides status
// and wording.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string { return e.Code }

// ErrBusiness wraps a rule code as an error value.
func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// IsBusiness reports whether err carries the given rule code,
// however deeply wrapped.
func IsBusiness(err error, code string) bool {
	var be BusinessError
	return errors.As(err, &be) && be.Code == code
}
