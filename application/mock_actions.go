package application

import (
	"errors"
	"strconv"
	"strings"

	"hostpro/domain/catalog"
	"hostpro/domain/toast"
)

// ErrUnknownAction is returned for action names with no registered toast.
var ErrUnknownAction = errors.New("unknown action")

// MockAction describes the toast a stand-in button produces. Subject is
// interpolated into the description in place of the item name.
type MockAction struct {
	Title       string
	Description string
	Kind        toast.Kind
	// Protected actions are only available to signed-in clients.
	Protected bool
	// ServiceSubject actions receive a service id and show its name.
	ServiceSubject bool
}

// Options builds the toast for subject.
func (a MockAction) Options(subject string) toast.Options {
	return toast.Options{
		Title:       a.Title,
		Description: strings.ReplaceAll(a.Description, "{subject}", subject),
		Kind:        a.Kind,
	}
}

// MockActionService maps stand-in buttons to the toasts they show.
type MockActionService struct {
	actions  map[string]MockAction
	services *CatalogService
}

// NewMockActionService registers the built-in actions plus one quick action
// per catalog entry.
func NewMockActionService(c *catalog.Catalog) *MockActionService {
	actions := map[string]MockAction{
		"invoice.view":             {Title: "View invoice", Description: "{subject}", Kind: toast.KindInfo, Protected: true},
		"invoice.download":         {Title: "Download", Description: "{subject} PDF (mock)", Kind: toast.KindSuccess, Protected: true},
		"invoice.print":            {Title: "Print", Description: "{subject} (mock)", Kind: toast.KindInfo, Protected: true},
		"invoice.pay":              {Title: "Pay invoice", Description: "{subject} (mock)", Kind: toast.KindInfo, Protected: true},
		"invoice.pay-now":          {Title: "Pay Now", Description: "{subject} (mock)", Kind: toast.KindInfo, Protected: true},
		"invoices.pay-outstanding": {Title: "Pay Outstanding", Description: "Redirecting to payment (mock)...", Kind: toast.KindInfo, Protected: true},
		"service.view":             {Title: "Viewing", Description: "{subject}", Kind: toast.KindInfo, Protected: true, ServiceSubject: true},
		"service.edit":             {Title: "Edit service", Description: "{subject} (mock)", Kind: toast.KindSuccess, Protected: true, ServiceSubject: true},
		"service.settings":         {Title: "Settings opened", Description: "{subject} (mock)", Kind: toast.KindInfo, Protected: true, ServiceSubject: true},
		"service.more":             {Title: "More actions", Description: "{subject} (mock)", Kind: toast.KindInfo, Protected: true, ServiceSubject: true},
		"services.add":             {Title: "Add Service", Description: "Opening service creation (mock)...", Kind: toast.KindInfo, Protected: true},
		"domain.add":               {Title: "Added to cart", Description: "{subject} (mock)", Kind: toast.KindSuccess},
	}
	for _, qa := range c.QuickActions {
		actions["quick."+qa.Slug] = MockAction{
			Title:       qa.Name,
			Description: qa.Description + " (mock)",
			Kind:        toast.KindInfo,
			Protected:   true,
		}
	}
	return &MockActionService{actions: actions, services: NewCatalogService(c)}
}

// Lookup returns the action registered under name.
func (s *MockActionService) Lookup(name string) (MockAction, error) {
	a, ok := s.actions[name]
	if !ok {
		return MockAction{}, ErrUnknownAction
	}
	return a, nil
}

// Trigger shows the toast for name and returns its id.
func (s *MockActionService) Trigger(ac *AppContext, name, subject string) (uint64, error) {
	a, err := s.Lookup(name)
	if err != nil {
		return 0, err
	}
	return ac.Toasts.Show(a.Options(s.subjectName(a, subject))), nil
}

// subjectName resolves a service id to the service name. Unknown ids and
// non-numeric subjects are shown as given.
func (s *MockActionService) subjectName(a MockAction, subject string) string {
	if !a.ServiceSubject {
		return subject
	}
	id, err := strconv.Atoi(subject)
	if err != nil {
		return subject
	}
	if svc, ok := s.services.FindService(id); ok {
		return svc.Name
	}
	return subject
}
