package application

import (
	"context"
	"errors"
	"strings"

	"hostpro/domain/catalog"
	"hostpro/domain/toast"
	"hostpro/logging"
)

// ErrPasswordMismatch is returned when the new password and its confirmation differ.
var ErrPasswordMismatch = errors.New("new passwords do not match")

// PasswordForm is a password change request.
type PasswordForm struct {
	CurrentPassword string `form:"currentPassword" validate:"required"`
	NewPassword     string `form:"newPassword" validate:"required,min=8,max=128"`
	ConfirmPassword string `form:"confirmPassword" validate:"required"`
}

// ProfileService edits the account data held in a client's workspace.
type ProfileService struct {
	latency Latency
	logger  *logging.Logger
}

// NewProfileService creates a new profile service
func NewProfileService(latency Latency) *ProfileService {
	return &ProfileService{
		latency: latency,
		logger:  logging.Default().WithComponent("profile_service"),
	}
}

// Save validates and stores profile for the client after the simulated delay.
func (s *ProfileService) Save(ctx context.Context, ac *AppContext, profile catalog.Profile) error {
	profile.FirstName = strings.TrimSpace(profile.FirstName)
	profile.LastName = strings.TrimSpace(profile.LastName)
	profile.Email = strings.TrimSpace(profile.Email)
	if err := Validate(profile); err != nil {
		return err
	}
	if err := s.latency.Wait(ctx, ProfileSaveDelay); err != nil {
		return err
	}

	ac.Workspace().setProfile(profile)
	ac.Toasts.Show(toast.Options{Title: "Profile updated", Description: "Your profile information has been saved."})
	s.logger.Client("Profile saved", ac.ClientID)
	return nil
}

// ChangePassword checks the confirmation and simulates the change. Nothing
// is stored; the form exists for parity with a real account page.
func (s *ProfileService) ChangePassword(ctx context.Context, ac *AppContext, form PasswordForm) error {
	if form.NewPassword != form.ConfirmPassword {
		return ErrPasswordMismatch
	}
	if err := Validate(form); err != nil {
		return err
	}
	if err := s.latency.Wait(ctx, PasswordChangeDelay); err != nil {
		return err
	}

	ac.Toasts.Show(toast.Options{Title: "Password changed", Description: "Your password has been updated."})
	s.logger.Security("Password changed", "client_id", ac.ClientID)
	return nil
}

// UpdateNotifications replaces the client's notification toggles. Keys not
// present in enabled are switched off.
func (s *ProfileService) UpdateNotifications(ac *AppContext, enabled map[string]bool) {
	ac.Workspace().setNotifications(enabled)
	ac.Toasts.Show(toast.Options{Title: "Preferences saved", Kind: toast.KindSuccess})
}

// UpdateSecurity stores the client's security settings. Timeouts outside
// sensible ranges are clamped.
func (s *ProfileService) UpdateSecurity(ac *AppContext, settings catalog.SecuritySettings) {
	settings.SessionTimeout = clamp(settings.SessionTimeout, 5, 240)
	settings.PasswordExpiry = clamp(settings.PasswordExpiry, 0, 365)
	ac.Workspace().setSecurity(settings)
	ac.Toasts.Show(toast.Options{Title: "Security settings saved", Kind: toast.KindSuccess})
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
