package model

// Session is the identity of the currently logged-in user, persisted across
// reloads. At most one session is active at a time.
type Session struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
