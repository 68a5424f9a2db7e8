// Package repository implements the appointment CRUD lifecycle over the
// record store. Every operation reads the full collection, validates, and
// writes the full collection back; there is no partial-update protocol.
//
// The read-validate-write sequence is not atomic across suspension points.
// That is acceptable for the intended single-user client; a deployment with
// concurrent writers needs a serialization point around it.
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/mio-salon/booking/internal/model"
	"github.com/mio-salon/booking/internal/schedule"
	"github.com/mio-salon/booking/internal/store"
	"github.com/mio-salon/booking/pkg/apperror"
	"github.com/mio-salon/booking/pkg/logger"
)

const (
	cacheKey        = store.KeyAppointments
	cacheExpiration = 5 * time.Minute
	cacheCleanup    = 10 * time.Minute
)

// AppointmentRepository is the only writer of the persisted appointment
// collection.
type AppointmentRepository struct {
	store    store.Store
	cache    *gocache.Cache
	validate *validator.Validate
	log      *logger.Logger
}

// NewAppointmentRepository builds the repository and runs the one-time seed
// bootstrap: iff no collection exists yet, a single sample appointment
// (resource 1, today 10:00–11:30) is persisted.
func NewAppointmentRepository(ctx context.Context, st store.Store, log *logger.Logger) (*AppointmentRepository, error) {
	r := &AppointmentRepository{
		store:    st,
		cache:    gocache.New(cacheExpiration, cacheCleanup),
		validate: validator.New(),
		log:      log,
	}
	if err := r.bootstrap(ctx); err != nil {
		return nil, fmt.Errorf("failed to bootstrap appointments: %w", err)
	}
	return r, nil
}

func (r *AppointmentRepository) bootstrap(ctx context.Context) error {
	var existing []model.Appointment
	found, err := r.store.Load(ctx, store.KeyAppointments, &existing)
	if err != nil {
		return err
	}
	if found {
		return nil
	}

	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 10, 0, 0, 0, time.Local)
	seed := model.Appointment{
		ID:          "seed-1",
		ResourceID:  "1",
		ClientName:  "Тестовий Клієнт",
		ClientPhone: "050 123 45 67",
		Service:     model.ServiceManicure,
		StartTime:   start,
		EndTime:     start.Add(90 * time.Minute),
	}
	return r.persist(ctx, []model.Appointment{seed})
}

func (r *AppointmentRepository) loadAll(ctx context.Context) ([]model.Appointment, error) {
	if cached, ok := r.cache.Get(cacheKey); ok {
		return cached.([]model.Appointment), nil
	}

	var apps []model.Appointment
	if _, err := r.store.Load(ctx, store.KeyAppointments, &apps); err != nil {
		return nil, fmt.Errorf("failed to load appointments: %w", err)
	}
	r.cache.Set(cacheKey, apps, gocache.DefaultExpiration)
	return apps, nil
}

func (r *AppointmentRepository) persist(ctx context.Context, apps []model.Appointment) error {
	if err := r.store.Save(ctx, store.KeyAppointments, apps); err != nil {
		r.cache.Delete(cacheKey)
		return fmt.Errorf("failed to save appointments: %w", err)
	}
	r.cache.Set(cacheKey, apps, gocache.DefaultExpiration)
	return nil
}

// List returns a snapshot of all stored appointments in storage order.
func (r *AppointmentRepository) List(ctx context.Context) ([]model.Appointment, error) {
	apps, err := r.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.Appointment, len(apps))
	copy(out, apps)
	return out, nil
}

// Create validates the input, assigns a fresh id, rejects overlapping
// bookings for the same resource, and persists the grown collection.
func (r *AppointmentRepository) Create(ctx context.Context, input model.AppointmentInput) (*model.Appointment, error) {
	if err := r.validateInput(input); err != nil {
		return nil, err
	}

	apps, err := r.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	app := model.Appointment{
		ID:          r.newID(apps),
		ResourceID:  input.ResourceID,
		ClientName:  input.ClientName,
		ClientPhone: input.ClientPhone,
		Service:     input.Service,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Notes:       input.Notes,
	}

	if schedule.HasConflict(app, apps) {
		return nil, apperror.Conflict("time slot is already taken for this resource", nil)
	}

	updated := make([]model.Appointment, len(apps), len(apps)+1)
	copy(updated, apps)
	updated = append(updated, app)
	if err := r.persist(ctx, updated); err != nil {
		return nil, err
	}

	r.log.Info("appointment created", "id", app.ID, "resource_id", app.ResourceID)
	return &app, nil
}

// Update replaces the stored record with the same id, preserving collection
// order. The record's own prior interval never conflicts with itself.
func (r *AppointmentRepository) Update(ctx context.Context, app model.Appointment) (*model.Appointment, error) {
	if err := r.validateInput(model.AppointmentInput{
		ResourceID:  app.ResourceID,
		ClientName:  app.ClientName,
		ClientPhone: app.ClientPhone,
		Service:     app.Service,
		StartTime:   app.StartTime,
		EndTime:     app.EndTime,
		Notes:       app.Notes,
	}); err != nil {
		return nil, err
	}

	apps, err := r.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	if schedule.HasConflict(app, apps) {
		return nil, apperror.Conflict("time slot is already taken for this resource", nil)
	}

	updated := make([]model.Appointment, len(apps))
	copy(updated, apps)
	replaced := false
	for i := range updated {
		if updated[i].ID == app.ID {
			updated[i] = app
			replaced = true
			break
		}
	}
	if !replaced {
		return nil, apperror.NotFound("appointment", nil)
	}

	if err := r.persist(ctx, updated); err != nil {
		return nil, err
	}

	r.log.Info("appointment updated", "id", app.ID, "resource_id", app.ResourceID)
	return &app, nil
}

// Delete removes the record with the given id. Deleting an absent id is a
// no-op, not an error.
func (r *AppointmentRepository) Delete(ctx context.Context, id string) error {
	apps, err := r.loadAll(ctx)
	if err != nil {
		return err
	}

	filtered := make([]model.Appointment, 0, len(apps))
	for _, app := range apps {
		if app.ID != id {
			filtered = append(filtered, app)
		}
	}
	if len(filtered) == len(apps) {
		return nil
	}

	if err := r.persist(ctx, filtered); err != nil {
		return err
	}

	r.log.Info("appointment deleted", "id", id)
	return nil
}

func (r *AppointmentRepository) validateInput(input model.AppointmentInput) error {
	if err := r.validate.Struct(input); err != nil {
		return apperror.Validation("invalid appointment", err)
	}
	if !input.Service.Valid() {
		return apperror.Validation(fmt.Sprintf("unknown service %q", input.Service), nil)
	}
	if _, ok := model.ResourceByID(input.ResourceID); !ok {
		return apperror.Validation(fmt.Sprintf("unknown resource %q", input.ResourceID), nil)
	}
	return nil
}

// newID synthesizes an id that does not collide with any stored record.
func (r *AppointmentRepository) newID(apps []model.Appointment) string {
	for {
		id := uuid.NewString()
		taken := false
		for _, app := range apps {
			if app.ID == id {
				taken = true
				break
			}
		}
		if !taken {
			return id
		}
	}
}
