// Package registrytest provides an in-memory implementation of the vehicle
// store REST contract for tests and local development. It mirrors the quirks
// of the real collaborator that pkg/registry is written against: the by-id
// query answers with a zero-or-one-element array, created records get
// sequential numeric ids, and records keep their insertion order.
//
// Typical use in a test:
//
//	store := registrytest.New()
//	srv := httptest.NewServer(store.Handler())
//	defer srv.Close()
//
//	client, _ := registry.New(registry.Config{BaseURL: srv.URL})
//
// cmd/vehicledev serves the same handler as a standalone process.
package registrytest
