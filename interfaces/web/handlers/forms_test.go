package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostpro/application"
	"hostpro/domain/catalog"
)

func postRequest(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestBindForm_UsesFormTags(t *testing.T) {
	req := postRequest(url.Values{
		"email":           {"  ada@example.com "},
		"password":        {"pw"},
		"confirmPassword": {"ignored"},
	})

	var form application.LoginForm
	require.NoError(t, bindForm(req, &form))

	assert.Equal(t, "ada@example.com", form.Email)
	assert.Equal(t, "pw", form.Password)
}

func TestBindForm_SkipsExcludedFields(t *testing.T) {
	req := postRequest(url.Values{"subject": {"Help"}, "attachment": {"x"}})

	var form application.TicketForm
	require.NoError(t, bindForm(req, &form))

	assert.Equal(t, "Help", form.Subject)
	assert.Nil(t, form.Attachment)
}

func TestBindForm_CheckboxesAndNumbers(t *testing.T) {
	req := postRequest(url.Values{
		"twoFactorAuth":  {"on"},
		"sessionTimeout": {"45"},
		"passwordExpiry": {"soon"},
	})

	settings := catalog.SecuritySettings{LoginNotifications: false, SessionTimeout: 30, PasswordExpiry: 90}
	err := bindForm(req, &settings)

	require.Error(t, err)
	assert.True(t, isDecodeError(err))
	assert.True(t, settings.TwoFactorAuth)
	assert.False(t, settings.LoginNotifications)
	assert.Equal(t, 45, settings.SessionTimeout)
	assert.Equal(t, 90, settings.PasswordExpiry)
}

func TestChecked(t *testing.T) {
	assert.True(t, checked([]string{"on"}))
	assert.True(t, checked([]string{" TRUE "}))
	assert.False(t, checked([]string{"off"}))
	assert.False(t, checked(nil))
}

func TestFormErrors(t *testing.T) {
	err := application.Validate(application.LoginForm{Email: "nope"})

	errs := formErrors(err)
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "password")

	assert.Equal(t, map[string]string{"form": "boom"}, formErrors(assertErr("boom")))
}

type assertErr string

func (e assertErr) Error() string { return string(e) }

func TestLocalPath(t *testing.T) {
	for in, want := range map[string]string{
		"":                            "/",
		"/about":                      "/about",
		"/hosting-plans?cycle=yearly": "/hosting-plans?cycle=yearly",
		"https://evil.example":        "/",
		"//evil.example/x":            "/",
		"about":                       "/",
	} {
		assert.Equal(t, want, localPath(in), in)
	}
}

func TestRedirect(t *testing.T) {
	rec := httptest.NewRecorder()
	Redirect(rec, httptest.NewRequest(http.MethodPost, "/login", nil), "/dashboard")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))

	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.Header.Set("HX-Request", "true")
	rec = httptest.NewRecorder()
	Redirect(rec, req, "/dashboard")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("HX-Redirect"))
}

func TestGetHTMXTarget(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.False(t, IsHTMXPartialRequest(req))

	req.Header.Set("HX-Request", "true")
	req.Header.Set("HX-Target", "#main")
	assert.True(t, IsHTMXPartialRequest(req))
	assert.Equal(t, "main", GetHTMXTarget(req))
}
