// Package booking is the scheduling core of the Mio salon appointment tool:
// conflict-checked appointment CRUD over a persisted record store, the time
// grid geometry, and the session gate. The presentation layer owns everything
// else and talks to the core exclusively through App.
package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/mio-salon/booking/config"
	"github.com/mio-salon/booking/internal/model"
	"github.com/mio-salon/booking/internal/repository"
	"github.com/mio-salon/booking/internal/schedule"
	"github.com/mio-salon/booking/internal/service/auth"
	"github.com/mio-salon/booking/internal/store"
	"github.com/mio-salon/booking/pkg/logger"
)

// Aliases so consumers never import internal packages directly.
type (
	Appointment      = model.Appointment
	AppointmentInput = model.AppointmentInput
	Resource         = model.Resource
	Session          = model.Session
	ServiceKind      = model.ServiceKind
	ServiceEntry     = model.ServiceEntry
	Grid             = schedule.Grid
	ListFilter       = schedule.ListFilter
	Store            = store.Store
)

const (
	ServiceManicure = model.ServiceManicure
	ServicePedicure = model.ServicePedicure
	ServiceCombo    = model.ServiceCombo
	ServiceRemoval  = model.ServiceRemoval

	FilterYesterday = schedule.FilterYesterday
	FilterToday     = schedule.FilterToday
	FilterTomorrow  = schedule.FilterTomorrow
	FilterAll       = schedule.FilterAll
)

// App is the application root. It owns the store, repository, auth gate and
// grid, and hands them to callers by reference; nothing here is a hidden
// process-wide singleton.
type App struct {
	cfg          *config.Config
	appointments *repository.AppointmentRepository
	gate         *auth.Service
	grid         schedule.Grid
	log          *logger.Logger
}

// NewMemoryStore returns a throwaway in-memory store, useful for tests and
// previews that must not touch disk.
func NewMemoryStore() Store { return store.NewMemStore() }

// New loads configuration and wires the core against a file-backed store.
func New(ctx context.Context) (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	st, err := store.NewFileStore(nil, cfg.Storage.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	return NewWithStore(ctx, cfg, st)
}

// NewWithStore wires the core against an injected store, which tests and
// embedders use to swap the persistence backend.
func NewWithStore(ctx context.Context, cfg *config.Config, st store.Store) (*App, error) {
	log := logger.NewLogger(&logger.Config{
		Level:      logger.ParseLevel(cfg.Logging.Level),
		TimeFormat: time.RFC3339,
	})

	appointments, err := repository.NewAppointmentRepository(ctx, st, log)
	if err != nil {
		return nil, err
	}

	return &App{
		cfg:          cfg,
		appointments: appointments,
		gate:         auth.NewService(st, log, cfg.Auth.LoginDelay),
		grid: schedule.Grid{
			StartHour:  cfg.Schedule.WorkStartHour,
			EndHour:    cfg.Schedule.WorkEndHour,
			HourHeight: cfg.Schedule.HourHeight,
		},
		log: log,
	}, nil
}

// Grid returns the layout engine for the configured work window.
func (a *App) Grid() Grid { return a.grid }

// Resources returns the static staff roster.
func (a *App) Resources() []Resource { return model.Resources }

// Services returns the read-only service catalog.
func (a *App) Services() []ServiceEntry { return model.ServiceCatalog }

func (a *App) Login(ctx context.Context, email, password string) (*Session, error) {
	return a.gate.Login(ctx, email, password)
}

func (a *App) Logout(ctx context.Context) error {
	return a.gate.Logout(ctx)
}

func (a *App) CurrentSession(ctx context.Context) (*Session, error) {
	return a.gate.CurrentSession(ctx)
}

func (a *App) Appointments(ctx context.Context) ([]Appointment, error) {
	return a.appointments.List(ctx)
}

func (a *App) CreateAppointment(ctx context.Context, input AppointmentInput) (*Appointment, error) {
	return a.appointments.Create(ctx, input)
}

func (a *App) UpdateAppointment(ctx context.Context, app Appointment) (*Appointment, error) {
	return a.appointments.Update(ctx, app)
}

func (a *App) DeleteAppointment(ctx context.Context, id string) error {
	return a.appointments.Delete(ctx, id)
}

// Day returns the appointments whose start falls on the same calendar day.
func (a *App) Day(ctx context.Context, day time.Time) ([]Appointment, error) {
	apps, err := a.appointments.List(ctx)
	if err != nil {
		return nil, err
	}
	return schedule.DayBucket(apps, day), nil
}

// Dashboard returns the filtered, start-time-ordered list view.
func (a *App) Dashboard(ctx context.Context, filter ListFilter) ([]Appointment, error) {
	apps, err := a.appointments.List(ctx)
	if err != nil {
		return nil, err
	}
	return schedule.FilterAppointments(apps, filter, time.Now()), nil
}
