package web_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-chi/chi/v5"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostpro/application"
	"hostpro/domain/toast"
	"hostpro/infrastructure/config"
	"hostpro/infrastructure/factories"
	"hostpro/infrastructure/repositories"
	"hostpro/infrastructure/serialization"
	"hostpro/interfaces/web"
	"hostpro/interfaces/web/handlers"
	"hostpro/interfaces/web/presenters"
	"hostpro/test/helpers"
)

type testApp struct {
	router    *chi.Mux
	registry  *application.ContextRegistry
	scheduler *helpers.FakeScheduler
	cookie    *http.Cookie
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	c := helpers.LoadCatalog(t)
	scheduler := helpers.NewFakeScheduler()
	bundle := &factories.StoreBundle{
		Store:   repositories.NewMemoryPreferenceRepository(),
		Backend: config.StoreBackendMemory,
	}
	registry := application.NewContextRegistry(bundle.Store, c, nil, application.ContextRegistryConfig{Scheduler: scheduler})
	t.Cleanup(registry.Close)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	latency := application.Latency{}
	toastPresenter := presenters.NewToastPresenter()
	renderer := handlers.NewRenderer(presenters.NewPagePresenter(toastPresenter), false)
	catalogService := application.NewCatalogService(c)

	h := &web.Handlers{
		Client: handlers.NewClientMiddleware(registry, false),
		Site: handlers.NewSiteHandlers(
			catalogService,
			application.NewDomainSearchService(c, latency),
			application.NewContactService(latency),
			presenters.NewSitePresenter(),
			renderer,
		),
		Auth: handlers.NewAuthHandlers(application.NewAuthService(), renderer),
		Dashboard: handlers.NewDashboardHandlers(
			catalogService,
			application.NewProfileService(latency),
			application.NewSupportService(),
			presenters.NewDashboardPresenter(),
			renderer,
		),
		Toasts: handlers.NewToastHandlers(
			application.NewMockActionService(c),
			toastPresenter,
			serialization.NewToastSerializer(),
			renderer,
		),
		System: handlers.NewSystemHandlers(bundle, registry),
		SSE:    handlers.NewSSEManager(ctx, registry, toastPresenter),
	}

	return &testApp{
		router:    web.NewRouter(h, web.RouterOptions{}),
		registry:  registry,
		scheduler: scheduler,
	}
}

// do sends req with the client cookie, remembering any cookie issued.
func (a *testApp) do(req *http.Request) *httptest.ResponseRecorder {
	if a.cookie != nil {
		req.AddCookie(a.cookie)
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	for _, c := range rec.Result().Cookies() {
		if c.Name == handlers.ClientCookieName {
			a.cookie = c
		}
	}
	return rec
}

func (a *testApp) get(path string) *httptest.ResponseRecorder {
	return a.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (a *testApp) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return a.do(req)
}

func (a *testApp) login(t *testing.T) {
	t.Helper()
	rec := a.postForm("/login", url.Values{"email": {"john@example.com"}, "password": {"secret"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
}

func (a *testApp) appContext(t *testing.T) *application.AppContext {
	t.Helper()
	require.NotNil(t, a.cookie)
	ac, ok := a.registry.Get(a.cookie.Value)
	require.True(t, ok)
	return ac
}

func parse(t *testing.T, rec *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	return doc
}

func TestRouter_IssuesClientCookie(t *testing.T) {
	app := newTestApp(t)

	rec := app.get("/")

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, app.cookie)
	assert.True(t, app.cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, app.cookie.SameSite)
	assert.Equal(t, 365*24*60*60, app.cookie.MaxAge)
	assert.Equal(t, "Sec-CH-Prefers-Color-Scheme", rec.Header().Get("Accept-CH"))

	first := app.cookie.Value
	app.get("/about")
	assert.Equal(t, first, app.cookie.Value)
	assert.Equal(t, 1, app.registry.Len())
}

func TestRouter_InvalidCookieIsReplaced(t *testing.T) {
	app := newTestApp(t)
	app.cookie = &http.Cookie{Name: handlers.ClientCookieName, Value: "not-a-uuid"}

	app.get("/")

	assert.NotEqual(t, "not-a-uuid", app.cookie.Value)
}

func TestRouter_PublicPagesRender(t *testing.T) {
	app := newTestApp(t)

	for path, title := range map[string]string{
		"/":              "Home | HostPro",
		"/hosting-plans": "Hosting | HostPro",
		"/domain-search": "Domains | HostPro",
		"/about":         "About | HostPro",
		"/contact":       "Contact | HostPro",
		"/login":         "Login | HostPro",
		"/register":      "Get Started | HostPro",
	} {
		t.Run(path, func(t *testing.T) {
			rec := app.get(path)
			require.Equal(t, http.StatusOK, rec.Code)
			doc := parse(t, rec)
			assert.Equal(t, title, doc.Find("title").Text())
			assert.Equal(t, 1, doc.Find("#toast-region").Length())
		})
	}
}

func TestRouter_SystemThemeHintSeedsDarkMode(t *testing.T) {
	app := newTestApp(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Sec-CH-Prefers-Color-Scheme", "dark")

	doc := parse(t, app.do(req))

	assert.True(t, doc.Find("html").HasClass("dark"))
}

func TestRouter_ThemeToggle(t *testing.T) {
	app := newTestApp(t)
	app.get("/")

	rec := app.postForm("/theme/toggle", url.Values{"return": {"/about"}})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/about", rec.Header().Get("Location"))
	assert.True(t, app.appContext(t).Theme.IsDark())

	doc := parse(t, app.get("/about"))
	assert.True(t, doc.Find("html").HasClass("dark"))

	req := httptest.NewRequest(http.MethodPost, "/theme/toggle", nil)
	req.Header.Set("HX-Request", "true")
	rec = app.do(req)
	assert.Equal(t, "true", rec.Header().Get("HX-Refresh"))
	assert.False(t, app.appContext(t).Theme.IsDark())
}

func TestRouter_ThemeToggleRejectsForeignReturn(t *testing.T) {
	app := newTestApp(t)

	rec := app.postForm("/theme/toggle", url.Values{"return": {"https://evil.example/"}})

	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestRouter_DashboardRedirectsAnonymousClients(t *testing.T) {
	app := newTestApp(t)

	rec := app.get("/dashboard/invoices")

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login?next=%2Fdashboard%2Finvoices", rec.Header().Get("Location"))
}

func TestRouter_DashboardRedirectUsesHXRedirectForHTMX(t *testing.T) {
	app := newTestApp(t)
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Header.Set("HX-Request", "true")

	rec := app.do(req)

	assert.Equal(t, "/login?next=%2Fdashboard", rec.Header().Get("HX-Redirect"))
}

func TestRouter_LoginLogoutScenario(t *testing.T) {
	app := newTestApp(t)

	assert.Equal(t, http.StatusSeeOther, app.get("/dashboard/services").Code)

	rec := app.postForm("/login", url.Values{
		"email":    {"john@example.com"},
		"password": {"secret"},
		"next":     {"/dashboard/services"},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/dashboard/services", rec.Header().Get("Location"))

	rec = app.get("/dashboard/services")
	require.Equal(t, http.StatusOK, rec.Code)
	doc := parse(t, rec)
	assert.Equal(t, 1, doc.Find("form[action='/logout']").Length())
	assert.Contains(t, doc.Find("#toast-region").Text(), "Welcome back")

	rec = app.postForm("/logout", nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	assert.Equal(t, http.StatusSeeOther, app.get("/dashboard").Code)
}

func TestRouter_LoginIgnoresForeignNext(t *testing.T) {
	app := newTestApp(t)

	rec := app.postForm("/login", url.Values{
		"email":    {"john@example.com"},
		"password": {"secret"},
		"next":     {"https://evil.example/dashboard"},
	})

	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
}

func TestRouter_LoginValidationRendersErrors(t *testing.T) {
	app := newTestApp(t)

	rec := app.postForm("/login", url.Values{"email": {"nope"}})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	doc := parse(t, rec)
	assert.NotEmpty(t, doc.Find(".field-error").Text())
	assert.False(t, app.appContext(t).Session.IsAuthenticated())
}

func TestRouter_RegisterSignsIn(t *testing.T) {
	app := newTestApp(t)

	rec := app.postForm("/register", url.Values{
		"name":            {"Ada"},
		"email":           {"ada@example.com"},
		"password":        {"correct horse"},
		"confirmPassword": {"correct horse"},
	})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
	assert.True(t, app.appContext(t).Session.IsAuthenticated())
}

func TestRouter_ToastEndpoints(t *testing.T) {
	app := newTestApp(t)
	app.get("/")

	req := httptest.NewRequest(http.MethodPost, "/toasts", strings.NewReader(`{"title":"Saved","type":"success"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	rec := app.do(req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		ID uint64 `json:"id"`
	}
	require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotZero(t, created.ID)

	req = httptest.NewRequest(http.MethodPost, "/toasts", strings.NewReader(`{"title":"Error","type":"error","duration":0}`))
	req.Header.Set("Content-Type", "application/json")
	app.do(req)

	req = httptest.NewRequest(http.MethodGet, "/toasts", nil)
	req.Header.Set("Accept", "application/json")
	rec = app.do(req)
	var list []serialization.ToastDTO
	require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 2)
	assert.Equal(t, "Error", list[0].Title)
	assert.Nil(t, list[0].ExpiresAt)
	assert.Equal(t, "Saved", list[1].Title)

	app.scheduler.Advance(toast.DefaultDuration)
	doc := parse(t, app.get("/toasts"))
	assert.Equal(t, 1, doc.Find("li.toast").Length())
	assert.Contains(t, doc.Find("li.toast .toast-title").Text(), "Error")

	id := list[0].ID
	rec = app.do(httptest.NewRequest(http.MethodPost, "/toasts/"+strconv.FormatUint(id, 10)+"/dismiss", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, parse(t, rec).Find("li.toast").Length())

	rec = app.do(httptest.NewRequest(http.MethodDelete, "/toasts/"+strconv.FormatUint(id, 10), nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_ToastValidation(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/toasts", strings.NewReader(`{"title":"x","type":"warning"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	rec := app.do(req)

	require.Equal(t, http.StatusCreated, rec.Code)
	shown := app.appContext(t).Toasts.List()
	require.Len(t, shown, 1)
	assert.Equal(t, toast.KindInfo, shown[0].Kind)

	rec = app.postForm("/toasts", url.Values{"title": {strings.Repeat("a", 121)}})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, 1, app.appContext(t).Toasts.Len())

	rec = app.do(httptest.NewRequest(http.MethodPost, "/toasts/abc/dismiss", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_ToastDurationOutOfRange(t *testing.T) {
	app := newTestApp(t)

	rec := app.postForm("/toasts", url.Values{"title": {"later"}, "duration": {"9223372036855"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, app.appContext(t).Toasts.Len())

	rec = app.postForm("/toasts", url.Values{"title": {"later"}, "duration": {strconv.FormatInt(toast.MaxDurationMillis, 10)}})
	require.Equal(t, http.StatusCreated, rec.Code)
	shown := app.appContext(t).Toasts.List()
	require.Len(t, shown, 1)
	assert.False(t, shown[0].Persistent())
}

func TestRouter_MockActions(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(httptest.NewRequest(http.MethodPost, "/actions/domain.add?subject=example.com", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, parse(t, rec).Find("li.toast").Text(), "example.com")

	rec = app.do(httptest.NewRequest(http.MethodPost, "/actions/invoice.pay?subject=INV-2025-001", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	app.login(t)
	rec = app.do(httptest.NewRequest(http.MethodPost, "/actions/invoice.pay?subject=INV-2025-001", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = app.do(httptest.NewRequest(http.MethodPost, "/actions/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_ServiceActionShowsServiceName(t *testing.T) {
	app := newTestApp(t)
	app.login(t)

	rec := app.get("/dashboard/services")
	require.Equal(t, http.StatusOK, rec.Code)
	target, ok := parse(t, rec).Find(`article[data-service-id="2"] button`).First().Attr("hx-post")
	require.True(t, ok)
	assert.Equal(t, "/actions/service.view?subject=2", target)

	rec = app.do(httptest.NewRequest(http.MethodPost, target, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, parse(t, rec).Find("li.toast").Text(), "Professional Hosting")
}

func TestRouter_DomainSearchPartial(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/domain-search", strings.NewReader(url.Values{"q": {"https://www.Example.org/path"}, "tld": {"com", ".io"}}.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	req.Header.Set("HX-Target", "domain-results")
	rec := app.do(req)

	require.Equal(t, http.StatusOK, rec.Code)
	doc := parse(t, rec)
	assert.Equal(t, 0, doc.Find("nav.navbar").Length())

	var domains []string
	doc.Find("#domain-results li.result").Each(func(_ int, s *goquery.Selection) {
		domains = append(domains, s.AttrOr("data-domain", ""))
	})
	assert.Equal(t, []string{"example.com", "example.io"}, domains)
	assert.NotZero(t, doc.Find("ul.suggestions li").Length())
}

func TestRouter_DomainSearchEmptyQuery(t *testing.T) {
	app := newTestApp(t)

	rec := app.postForm("/domain-search", url.Values{"q": {"   "}})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, parse(t, rec).Find("#domain-results").Text(), "Please enter a domain name to search.")
}

func TestRouter_ContactForm(t *testing.T) {
	app := newTestApp(t)

	rec := app.postForm("/contact", url.Values{"name": {"Ada"}})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.NotZero(t, parse(t, rec).Find("#contact-form .field-error").Length())

	rec = app.postForm("/contact", url.Values{
		"name":    {"Ada"},
		"email":   {"ada@example.com"},
		"subject": {"Hello"},
		"message": {"Question about plans"},
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, parse(t, rec).Find("#contact-form").Text(), "Thank you!")
	assert.Equal(t, 1, app.appContext(t).Toasts.Len())
}

func TestRouter_InvoiceDetailFallsBack(t *testing.T) {
	app := newTestApp(t)
	app.login(t)

	rec := app.get("/dashboard/invoices/INV-DOES-NOT-EXIST")

	require.Equal(t, http.StatusOK, rec.Code)
	body := parse(t, rec).Find("main").Text()
	assert.Contains(t, body, "INV-2025-001")
	assert.Contains(t, body, "INV-DOES-NOT-EXIST")
}

func TestRouter_HTMXNavigationReturnsMainOnly(t *testing.T) {
	app := newTestApp(t)
	app.login(t)
	req := httptest.NewRequest(http.MethodGet, "/dashboard/invoices", nil)
	req.Header.Set("HX-Request", "true")
	req.Header.Set("HX-Target", "main")

	doc := parse(t, app.do(req))

	assert.Equal(t, 0, doc.Find("nav.navbar").Length())
	assert.Equal(t, "Invoices | HostPro", doc.Find("main").AttrOr("data-title", ""))
}

func TestRouter_ProfileSave(t *testing.T) {
	app := newTestApp(t)
	app.login(t)

	rec := app.postForm("/dashboard/profile", url.Values{
		"firstName": {"Grace"},
		"lastName":  {"Hopper"},
		"email":     {"grace@example.com"},
	})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "Grace", app.appContext(t).Workspace().Profile().FirstName)

	rec = app.postForm("/dashboard/profile", url.Values{"firstName": {"Grace"}})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "Grace", parse(t, rec).Find("input[name='firstName']").AttrOr("value", ""))

	rec = app.postForm("/dashboard/profile/password", url.Values{
		"currentPassword": {"old"},
		"newPassword":     {"longenough1"},
		"confirmPassword": {"different1"},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, parse(t, rec).Find(".alert-error").Text(), "New passwords don't match")
}

func TestRouter_SecuritySettingsForm(t *testing.T) {
	app := newTestApp(t)
	app.login(t)
	before := app.appContext(t).Workspace().Security()

	rec := app.postForm("/dashboard/profile/security", url.Values{
		"twoFactorAuth":  {"on"},
		"sessionTimeout": {"60"},
		"passwordExpiry": {"never"},
	})
	assert.Equal(t, http.StatusSeeOther, rec.Code)

	after := app.appContext(t).Workspace().Security()
	assert.True(t, after.TwoFactorAuth)
	assert.False(t, after.LoginNotifications)
	assert.Equal(t, 60, after.SessionTimeout)
	assert.Equal(t, before.PasswordExpiry, after.PasswordExpiry)
}

func TestRouter_SupportTicketWithAttachment(t *testing.T) {
	app := newTestApp(t)
	app.login(t)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("subject", "Site down"))
	require.NoError(t, mw.WriteField("department", "Technical"))
	require.NoError(t, mw.WriteField("priority", "High"))
	require.NoError(t, mw.WriteField("message", "My site returns 500"))
	part, err := mw.CreateFormFile("attachment", "notes.txt")
	require.NoError(t, err)
	_, err = part.Write([]byte("plain text details\n"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/dashboard/support", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := app.do(req)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	tickets := app.appContext(t).Workspace().Tickets()
	require.NotEmpty(t, tickets)
	assert.Equal(t, "Site down", tickets[0].Subject)
	assert.Contains(t, tickets[0].Attachment, "notes.txt")

	doc := parse(t, app.get("/dashboard/support"))
	assert.Equal(t, tickets[0].ID, doc.Find("li.ticket").First().AttrOr("data-ticket-id", ""))
}

func TestRouter_Health(t *testing.T) {
	app := newTestApp(t)
	app.get("/")

	rec := app.get("/health")

	require.Equal(t, http.StatusOK, rec.Code)
	var report map[string]interface{}
	require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, "ok", report["status"])
	assert.EqualValues(t, 1, report["clients"])
	assert.Equal(t, "memory", report["store"].(map[string]interface{})["backend"])
}

func TestRouter_ServesAssets(t *testing.T) {
	app := newTestApp(t)

	rec := app.get("/assets/app.js")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "htmx")
}
