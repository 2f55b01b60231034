package cards

import "errors"

// ErrProfileNotFound is returned by operations that require an existing
// profile (update, delete-photo, add-photo, add-event) when no profile
// with the given id exists. Plain reads report absence as (nil, nil)
// instead.
var ErrProfileNotFound = errors.New("profile not found")

// ErrInvalidDump is returned by Import when the file cannot be parsed or
// its version is not the supported one. No collection is touched in
// either case.
var ErrInvalidDump = errors.New("invalid export dump")
