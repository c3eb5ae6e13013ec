package contact

import "errors"

var (
	// ErrContactNotFound is returned when a contact does not exist
	ErrContactNotFound = errors.New("contact not found")

	// ErrClientDomainNotFound is returned when a client domain does not exist
	ErrClientDomainNotFound = errors.New("client domain not found")

	// ErrAccessDenied is returned when the caller's resolved visibility set
	// does not cover the requested contact or client domain
	ErrAccessDenied = errors.New("access to contact denied")

	// ErrDomainMappingNotFound is returned when a domain mapping does not exist
	ErrDomainMappingNotFound = errors.New("domain mapping not found")
)
