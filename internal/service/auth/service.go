// Package auth is the session gate: it checks credentials against a fixed
// roster and owns the persisted session identity. The roster stands in for a
// real identity backend; swapping one in only needs to replace this package
// behind the same surface.
package auth

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mio-salon/booking/internal/model"
	"github.com/mio-salon/booking/internal/store"
	"github.com/mio-salon/booking/pkg/apperror"
	"github.com/mio-salon/booking/pkg/logger"
)

// account is one roster entry. Passwords are stored as bcrypt hashes so the
// plaintext never lives in the binary.
type account struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
}

var roster = []account{
	{ID: "1", Name: "Марина", Email: "marina@mio.ua", PasswordHash: "$2b$10$P9BnMpVFPz7a1UkxclqHoOyUMHP2fioQOzX9h/lCK9DUALp.ykFUS"},
	{ID: "2", Name: "Оля", Email: "olya@mio.ua", PasswordHash: "$2b$10$XkCVBIUcF1Oi1DZm.Dkhy.tHBOE0ULttHdiA0xehjP8kfwoPQV/VC"},
	{ID: "0", Name: "Admin", Email: "admin@mio.ua", PasswordHash: "$2b$10$KlYu9Y7I/goU8SF8EC6zgOfwG6/ReOVyw4X8lTzUOoiPw4Y99LCL2"},
}

// Service validates logins and persists the current session in the store.
type Service struct {
	store store.Store
	log   *logger.Logger
	delay time.Duration
}

// NewService builds the gate. delay, if non-zero, is an artificial pause
// before each login response; it is a UX affordance of the original client
// and defaults to off.
func NewService(st store.Store, log *logger.Logger, delay time.Duration) *Service {
	return &Service{store: st, log: log, delay: delay}
}

// Login checks the credentials against the roster and on success persists
// and returns the session. Unknown email and wrong password are deliberately
// indistinguishable.
func (s *Service) Login(ctx context.Context, email, password string) (*model.Session, error) {
	if err := s.sleep(ctx); err != nil {
		return nil, err
	}

	var match *account
	for i := range roster {
		if roster[i].Email == email {
			match = &roster[i]
			break
		}
	}
	if match == nil {
		return nil, apperror.InvalidCredentials()
	}
	if err := bcrypt.CompareHashAndPassword([]byte(match.PasswordHash), []byte(password)); err != nil {
		return nil, apperror.InvalidCredentials()
	}

	session := &model.Session{ID: match.ID, Name: match.Name, Email: match.Email}
	if err := s.store.Save(ctx, store.KeySession, session); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	s.log.Info("user logged in", "email", session.Email)
	return session, nil
}

// Logout clears the persisted session unconditionally.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.store.Save(ctx, store.KeySession, nil); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	s.log.Info("user logged out")
	return nil
}

// CurrentSession returns the persisted session, or nil before first login
// and after logout.
func (s *Service) CurrentSession(ctx context.Context) (*model.Session, error) {
	var session *model.Session
	found, err := s.store.Load(ctx, store.KeySession, &session)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if !found || session == nil {
		return nil, nil
	}
	return session, nil
}

func (s *Service) sleep(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
