package pawsgo

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pawsandgo/pawsgo/domain"
)

// Login resolves the email against the registered-user index and, on a hit,
// establishes the session. A miss reports false without creating anything.
func (app *App) Login(email string) (domain.UserProfile, bool, error) {
	profile, ok, err := app.Repo.PerformLogin(email)
	if err != nil {
		return profile, ok, fmt.Errorf("logging in %s : %w", email, err)
	}
	if ok {
		app.Logger.Info("login", zap.String("user_id", profile.ID), zap.String("role", profile.Role))
	}
	return profile, ok, nil
}

// Register creates a profile with a generated id, persists it (making it
// discoverable by Login), and opens a session for it.
func (app *App) Register(name, phone, email, role string) (domain.UserProfile, error) {
	profile := domain.UserProfile{
		ID:    uuid.NewString(),
		Name:  name,
		Phone: phone,
		Email: email,
		Role:  role,
	}

	if err := app.Repo.SaveUserProfile(profile); err != nil {
		return domain.UserProfile{}, fmt.Errorf("registering %s : %w", email, err)
	}
	if err := app.Repo.SaveSession(profile.ID, profile.Role); err != nil {
		return domain.UserProfile{}, fmt.Errorf("opening session for %s : %w", profile.ID, err)
	}

	app.Logger.Info("registered", zap.String("user_id", profile.ID), zap.String("role", profile.Role))
	return profile, nil
}

// Logout clears the session and the current profile.
func (app *App) Logout() error {
	if err := app.Repo.ClearSession(); err != nil {
		return fmt.Errorf("logging out : %w", err)
	}
	app.Logger.Info("logout")
	return nil
}

// CurrentSession returns the persisted session, if any.
func (app *App) CurrentSession() (domain.Session, bool) {
	return app.Repo.CurrentSession()
}
