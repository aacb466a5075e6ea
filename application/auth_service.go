package application

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"hostpro/domain/toast"
	"hostpro/logging"
)

// LoginForm is a mock sign-in request. Any well-formed credentials succeed.
type LoginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

// RegisterForm is a mock sign-up request.
type RegisterForm struct {
	Name            string `form:"name" validate:"required,max=120"`
	Email           string `form:"email" validate:"required,email"`
	Password        string `form:"password" validate:"required,min=8,max=128"`
	ConfirmPassword string `form:"confirmPassword" validate:"required,eqfield=Password"`
}

// AuthService performs the mock sign-in and sign-up flows against a
// client's session store.
type AuthService struct {
	newToken func() string
	logger   *logging.Logger
}

// NewAuthService creates a new auth service
func NewAuthService() *AuthService {
	return &AuthService{
		newToken: uuid.NewString,
		logger:   logging.Default().WithComponent("auth_service"),
	}
}

// Login validates form and marks the client as authenticated with a fresh token.
func (s *AuthService) Login(ctx context.Context, ac *AppContext, form LoginForm) error {
	form.Email = strings.TrimSpace(form.Email)
	if err := Validate(form); err != nil {
		return err
	}

	ac.Session.Login(ctx, s.newToken())
	ac.Toasts.Show(toast.Options{Title: "Welcome back", Description: "You are now signed in."})
	s.logger.Security("Client signed in", "client_id", ac.ClientID)
	return nil
}

// Register validates form, creates the mock account and signs the client in.
func (s *AuthService) Register(ctx context.Context, ac *AppContext, form RegisterForm) error {
	form.Name = strings.TrimSpace(form.Name)
	form.Email = strings.TrimSpace(form.Email)
	if err := Validate(form); err != nil {
		return err
	}

	ac.Session.Login(ctx, s.newToken())
	ac.Toasts.Show(toast.Options{Title: "Account created", Description: "Welcome to HostPro, " + form.Name + "!"})
	s.logger.Security("Client registered", "client_id", ac.ClientID)
	return nil
}

// Logout clears the client's session.
func (s *AuthService) Logout(ctx context.Context, ac *AppContext) {
	ac.Session.Logout(ctx)
	s.logger.Security("Client signed out", "client_id", ac.ClientID)
}
