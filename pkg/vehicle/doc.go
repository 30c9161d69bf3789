// Package vehicle defines the vehicle record entity shared by every layer of
// vehiclekit: the registry client, the lifecycle manager, and the report
// exporters.
//
// A record belongs to exactly one of two partitions at any point in time,
// derived solely from its checkout date: a nil CheckoutDate means the vehicle
// is active (on premises), a non-nil one means it has been checked out and
// lives in the history view. Checkout and Return flip the record between the
// partitions by stamping or clearing that single field; no audit trail of
// prior checkouts is kept.
//
// Record IDs are opaque tokens assigned by the remote store. Some store
// backends (json-server among them) hand out numeric ids, others strings, so
// the ID type round-trips either JSON shape without losing the original
// representation.
package vehicle
