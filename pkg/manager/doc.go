// Package manager implements the vehicle record lifecycle: every
// state-changing operation on the collection goes through a Manager, which
// runs the validation rules before any mutating store call and maintains the
// active/history partition view.
//
// The manager is constructed once at application start and handed to whatever
// needs it — there is no package-level instance. The store collaborator is an
// interface satisfied by *registry.Client and by in-memory fakes.
//
// Validation is client-side and advisory: it saves round trips but is not a
// trust boundary. The remote store stays the source of truth and may reject
// independently. When validation fails, every failed field is reported
// jointly and no network call is made.
//
// Concurrency model: one logical flow per operation, suspended on the store
// round trip. There is no in-flight duplicate suppression, no optimistic
// locking and no conflict detection — two concurrent updates to the same
// record silently overwrite each other, last write wins. After every
// operation, subscribers receive the unconditionally re-fetched record set
// rather than an incremental patch; full refresh trades efficiency for
// immunity to local/remote divergence.
package manager
