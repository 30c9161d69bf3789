// Package registry is the client for the remote vehicle record store, the
// single source of truth for vehicle records. The store exposes a small REST
// contract:
//
//	GET    /vehicles        -> all records
//	GET    /vehicles/{id}   -> zero-or-one-element array
//	POST   /vehicles        -> created record (store assigns the id)
//	PUT    /vehicles/{id}   -> updated record
//	DELETE /vehicles/{id}   -> status-only
//
// The query-by-id endpoint answers with an array rather than a single object;
// the client absorbs that quirk at the boundary and exposes an
// object-or-ErrNotFound API so callers never index into a list.
//
// Failures split into ErrNotFound (empty lookup), ErrUnavailable (the store
// could not be reached) and ErrUnexpectedStatus (a non-success response).
// Nothing is retried automatically and no operation is partially applied: a
// call either fully replaces the remote record or leaves it untouched.
package registry
