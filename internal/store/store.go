// Package store provides durable key-value persistence for the booking core.
// Two logical records exist: the current session identity and the appointment
// collection. The repository is the only writer of the collection.
package store

import "context"

// Logical record keys, carried over from the original storage layout.
const (
	KeySession      = "mio_user"
	KeyAppointments = "mio_appointments"
)

// Store persists JSON-compatible records under stable string keys.
// Load on a missing key reports found=false and no error. Implementations
// are not safe against concurrent multi-process writers.
type Store interface {
	Load(ctx context.Context, key string, out interface{}) (bool, error)
	Save(ctx context.Context, key string, v interface{}) error
}
