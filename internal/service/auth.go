package service

import (
	"errors"
	"fmt"
	"net/url"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/teka-app/teka/internal/logger"
	"github.com/teka-app/teka/internal/models"
	"github.com/teka-app/teka/internal/seed"
	"github.com/teka-app/teka/internal/storage"
)

const (
	usersSlotKey   = "users"
	sessionSlotKey = "currentUser"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoSession          = errors.New("no active session")
)

// AuthService owns the user registry and the current session. The session
// is simply the last user who logged in or registered, persisted verbatim
// (minus the password hash) until logout.
type AuthService struct {
	mu      sync.RWMutex
	log     zerolog.Logger
	users   storage.Slot[[]models.User]
	session storage.Slot[models.User]

	registry []models.User
	current  *models.User
}

// NewAuthService loads the registry and session slots, seeding an empty
// registry on first run.
func NewAuthService(store storage.Store) (*AuthService, error) {
	s := &AuthService{
		log:     logger.For("auth"),
		users:   storage.NewSlot[[]models.User](store, usersSlotKey),
		session: storage.NewSlot[models.User](store, sessionSlotKey),
	}

	registry, err := loadOrSeed(s.users, seed.Users, s.log)
	if err != nil {
		return nil, err
	}
	s.registry = registry

	current, ok, err := s.session.Load()
	if err != nil {
		if !errors.Is(err, storage.ErrCorruptSlot) {
			return nil, err
		}
		s.log.Warn().Err(err).Msg("session slot unreadable, clearing")
		if err := s.session.Clear(); err != nil {
			return nil, err
		}
		ok = false
	}
	if ok {
		s.current = &current
	}
	return s, nil
}

// Register creates a new user and installs it as the current session.
// Fails with ErrUserExists when the email is already registered
// (case-sensitive exact match); no state changes on failure.
func (s *AuthService) Register(username, email, password, profilePicture string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.registry {
		if u.Email == email {
			return models.User{}, ErrUserExists
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	if profilePicture == "" {
		profilePicture = defaultAvatarURL(username)
	}

	user := models.User{
		ID:                 newID(),
		Username:           username,
		Email:              email,
		PasswordHash:       string(hash),
		ProfilePicture:     profilePicture,
		DietaryPreferences: []string{},
	}

	next := append(cloneAll(s.registry), user)
	if err := s.users.Save(next); err != nil {
		return models.User{}, err
	}

	sanitized := user.Sanitized()
	if err := s.session.Save(sanitized); err != nil {
		return models.User{}, err
	}

	s.registry = next
	s.current = &sanitized
	s.log.Info().Str("user", user.ID).Str("username", username).Msg("user registered")
	return sanitized.Clone(), nil
}

// Login scans the registry for a matching email and password and installs
// the match as the current session. Wrong email and wrong password are
// indistinguishable by design.
func (s *AuthService) Login(email, password string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.registry {
		if u.Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
			break
		}
		sanitized := u.Clone().Sanitized()
		if err := s.session.Save(sanitized); err != nil {
			return models.User{}, err
		}
		s.current = &sanitized
		s.log.Info().Str("user", u.ID).Msg("user logged in")
		return sanitized.Clone(), nil
	}
	return models.User{}, ErrInvalidCredentials
}

// Logout clears the session; the registry is untouched.
func (s *AuthService) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil
	}
	if err := s.session.Clear(); err != nil {
		return err
	}
	s.current = nil
	return nil
}

// CurrentUser returns the session user, without the password hash.
func (s *AuthService) CurrentUser() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return models.User{}, false
	}
	return s.current.Clone(), true
}

// UpdateProfile merges the partial update into both the session user and
// the matching registry record.
func (s *AuthService) UpdateProfile(update models.UserUpdate) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return models.User{}, ErrNoSession
	}

	next := cloneAll(s.registry)
	for i := range next {
		if next[i].ID == s.current.ID {
			update.Apply(&next[i])
			break
		}
	}
	if err := s.users.Save(next); err != nil {
		return models.User{}, err
	}

	updated := s.current.Clone()
	update.Apply(&updated)
	if err := s.session.Save(updated); err != nil {
		return models.User{}, err
	}

	s.registry = next
	s.current = &updated
	return updated.Clone(), nil
}

// Users returns sanitized copies of every registry record.
func (s *AuthService) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.User, len(s.registry))
	for i, u := range s.registry {
		out[i] = u.Clone().Sanitized()
	}
	return out
}

func defaultAvatarURL(username string) string {
	return "https://api.dicebear.com/7.x/avataaars/svg?seed=" + url.QueryEscape(username)
}
