package services

import "errors"

var (
	// ErrUnauthenticated is returned by write actions invoked without a session.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrInsufficientRole is returned when the caller's role does not allow an action.
	ErrInsufficientRole = errors.New("role does not allow this action")
)

// requireTenant rejects writes from callers without a resolved tenant user.
func requireTenant(actor *TenantUser) error {
	if actor == nil {
		return ErrUnauthenticated
	}
	return nil
}
