package manager

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/dmitrymomot/vehiclekit/pkg/logger"
	"github.com/dmitrymomot/vehiclekit/pkg/vehicle"
)

// Store is the remote record store the manager mediates. *registry.Client
// satisfies it; tests plug in fakes.
type Store interface {
	All(ctx context.Context) ([]vehicle.Record, error)
	Find(ctx context.Context, id vehicle.ID) (*vehicle.Record, error)
	Create(ctx context.Context, rec vehicle.Record) (*vehicle.Record, error)
	Update(ctx context.Context, id vehicle.ID, rec vehicle.Record) (*vehicle.Record, error)
	Delete(ctx context.Context, id vehicle.ID) error
}

// Manager orchestrates the vehicle record lifecycle against a remote store.
type Manager struct {
	store    Store
	logger   *slog.Logger
	now      func() time.Time
	notifier *notifier
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the operation logger.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithClock overrides the time source used for checkin/checkout stamps.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

// WithBufferSize sets the per-subscriber event buffer.
func WithBufferSize(n int) Option {
	return func(m *Manager) {
		m.notifier = newNotifier(n)
	}
}

// New creates a Manager bound to the given store. The store is required;
// construction fails fast rather than letting a nil collaborator surface
// mid-operation.
func New(store Store, opts ...Option) *Manager {
	if store == nil {
		panic("manager: nil store")
	}
	m := &Manager{
		store:    store,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:      time.Now,
		notifier: newNotifier(8),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Subscribe returns a channel of record-set change notifications. The
// subscription ends when ctx is cancelled; a subscriber that stops draining
// is dropped rather than allowed to block operations.
func (m *Manager) Subscribe(ctx context.Context) <-chan Event {
	return m.notifier.subscribe(ctx)
}

// Close shuts down the notification fan-out. Operations remain usable.
func (m *Manager) Close() {
	m.notifier.close()
}

// List fetches the record set and applies the filter. Read-only: the only
// side effect is the fetch itself.
func (m *Manager) List(ctx context.Context, f Filter) ([]vehicle.Record, error) {
	records, err := m.store.All(ctx)
	if err != nil {
		m.fail(ctx, OpList, err)
		return nil, err
	}
	filtered := f.Apply(records)
	m.notifier.publish(Event{Op: OpList, Records: filtered})
	return filtered, nil
}

// Find returns a single record by id. Read-only; no event is published.
func (m *Manager) Find(ctx context.Context, id vehicle.ID) (*vehicle.Record, error) {
	rec, err := m.store.Find(ctx, id)
	if err != nil {
		m.logger.WarnContext(ctx, "lookup failed",
			logger.VehicleID(id.String()), logger.Error(err))
		return nil, err
	}
	return rec, nil
}

// Create validates every field, and only when all pass stamps the checkin
// date and submits the record. On validation failure all messages are
// reported jointly and the store is never called.
func (m *Manager) Create(ctx context.Context, in Input) (*vehicle.Record, error) {
	if err := in.Validate(); err != nil {
		m.fail(ctx, OpCreate, err)
		return nil, err
	}

	rec := in.record()
	rec.CheckinDate = m.now().UTC()
	rec.CheckoutDate = nil

	created, err := m.store.Create(ctx, rec)
	if err != nil {
		m.fail(ctx, OpCreate, err)
		return nil, err
	}

	m.logger.InfoContext(ctx, "vehicle created",
		logger.VehicleID(created.ID.String()), logger.Plate(created.Plate))
	m.refresh(ctx, OpCreate)
	return created, nil
}

// Update replaces the descriptive fields of an existing record, preserving
// its checkin and checkout dates. The same validation gate as Create applies.
func (m *Manager) Update(ctx context.Context, id vehicle.ID, in Input) (*vehicle.Record, error) {
	if err := in.Validate(); err != nil {
		m.fail(ctx, OpUpdate, err)
		return nil, err
	}

	current, err := m.store.Find(ctx, id)
	if err != nil {
		m.fail(ctx, OpUpdate, err)
		return nil, err
	}

	rec := in.record()
	rec.ID = current.ID
	rec.CheckinDate = current.CheckinDate
	rec.CheckoutDate = current.CheckoutDate

	updated, err := m.store.Update(ctx, id, rec)
	if err != nil {
		m.fail(ctx, OpUpdate, err)
		return nil, err
	}

	m.logger.InfoContext(ctx, "vehicle updated", logger.VehicleID(id.String()))
	m.refresh(ctx, OpUpdate)
	return updated, nil
}

// Checkout stamps the departure time on the record and writes the full
// record back. Fields are not re-validated — dates are not user-edited text.
// A second checkout overwrites the stamp rather than being rejected.
func (m *Manager) Checkout(ctx context.Context, id vehicle.ID) (*vehicle.Record, error) {
	current, err := m.store.Find(ctx, id)
	if err != nil {
		m.fail(ctx, OpCheckout, err)
		return nil, err
	}

	current.MarkCheckedOut(m.now())

	updated, err := m.store.Update(ctx, id, *current)
	if err != nil {
		m.fail(ctx, OpCheckout, err)
		return nil, err
	}

	m.logger.InfoContext(ctx, "vehicle checked out",
		logger.VehicleID(id.String()), logger.Plate(updated.Plate))
	m.refresh(ctx, OpCheckout)
	return updated, nil
}

// Return clears the departure time, moving the record back into the active
// partition. The prior checkout timestamp is not retained anywhere.
func (m *Manager) Return(ctx context.Context, id vehicle.ID) (*vehicle.Record, error) {
	current, err := m.store.Find(ctx, id)
	if err != nil {
		m.fail(ctx, OpReturn, err)
		return nil, err
	}

	current.MarkReturned()

	updated, err := m.store.Update(ctx, id, *current)
	if err != nil {
		m.fail(ctx, OpReturn, err)
		return nil, err
	}

	m.logger.InfoContext(ctx, "vehicle returned",
		logger.VehicleID(id.String()), logger.Plate(updated.Plate))
	m.refresh(ctx, OpReturn)
	return updated, nil
}

// Delete removes the record permanently, from either partition. Existence is
// not checked first; the store's own semantics for a missing id apply.
func (m *Manager) Delete(ctx context.Context, id vehicle.ID) error {
	if err := m.store.Delete(ctx, id); err != nil {
		m.fail(ctx, OpDelete, err)
		return err
	}

	m.logger.InfoContext(ctx, "vehicle deleted", logger.VehicleID(id.String()))
	m.refresh(ctx, OpDelete)
	return nil
}

// refresh re-fetches the full record set and publishes it. The mutation has
// already succeeded at this point, so a failed refresh is reported to
// subscribers but does not fail the operation.
func (m *Manager) refresh(ctx context.Context, op Op) {
	records, err := m.store.All(ctx)
	if err != nil {
		m.logger.WarnContext(ctx, "record set refresh failed",
			logger.Op(string(op)), logger.Error(err))
		m.notifier.publish(Event{Op: op, Err: err})
		return
	}
	m.notifier.publish(Event{Op: op, Records: records})
}

func (m *Manager) fail(ctx context.Context, op Op, err error) {
	m.logger.ErrorContext(ctx, "operation failed",
		logger.Op(string(op)), logger.Error(err))
	m.notifier.publish(Event{Op: op, Err: err})
}
