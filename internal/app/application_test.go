package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"newsletter.app/internal/adapters/database"
	"newsletter.app/internal/adapters/external"
	"newsletter.app/internal/adapters/infrastructure"
	"newsletter.app/internal/config"
)

const (
	adminUsername = "admin"
	adminPassword = "everythinghastostartsomewhere"
)

var (
	confirmationLink = regexp.MustCompile(`http://localhost:8080(/subscriptions/confirm\?subscription_token=[A-Za-z0-9]+)`)
	idempotencyField = regexp.MustCompile(`name="idempotency_key" value="([^"]+)"`)
)

type sentEmail struct {
	From     string `json:"From"`
	To       string `json:"To"`
	Subject  string `json:"Subject"`
	HTMLBody string `json:"HtmlBody"`
	TextBody string `json:"TextBody"`
}

// emailAPI records every message posted to it
type emailAPI struct {
	mu     sync.Mutex
	server *httptest.Server
	sent   []sentEmail
	status int
}

func newEmailAPI() *emailAPI {
	api := &emailAPI{status: http.StatusOK}
	api.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/email" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		var msg sentEmail
		if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		api.mu.Lock()
		defer api.mu.Unlock()
		api.sent = append(api.sent, msg)
		w.WriteHeader(api.status)
	}))
	return api
}

func (e *emailAPI) messages() []sentEmail {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]sentEmail(nil), e.sent...)
}

func (e *emailAPI) respondWith(status int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.status = status
}

type ApplicationTestSuite struct {
	suite.Suite
	app      *Application
	db       *gorm.DB
	emailAPI *emailAPI
	cookies  map[string]*http.Cookie
}

func TestApplicationTestSuite(t *testing.T) {
	suite.Run(t, new(ApplicationTestSuite))
}

func (s *ApplicationTestSuite) SetupTest() {
	s.emailAPI = newEmailAPI()
	s.cookies = map[string]*http.Cookie{}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	s.Require().NoError(err)
	sqlDB, err := db.DB()
	s.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)
	s.db = db

	cfg := &config.Config{
		Server: config.ServerConfig{Host: "127.0.0.1", Port: 8080},
		Email: config.EmailConfig{
			Provider:           config.EmailProviderHTTP,
			SenderEmail:        "newsletter@example.com",
			SenderName:         "Newsletter",
			BaseURL:            s.emailAPI.server.URL,
			AuthorizationToken: "test-token",
			TimeoutMillis:      2000,
		},
		Session: config.SessionConfig{
			Store:         config.CacheTypeMemory,
			Secret:        strings.Repeat("k", 32),
			MaxAgeMinutes: 60,
		},
		Newsletter: config.NewsletterConfig{
			MaxSendAttempts:         1,
			RetryDelayMillis:        0,
			IdempotencyTTLHours:     48,
			IdempotencyLeaseSeconds: 600,
			DispatchTimeoutSeconds:  3600,
			CleanupSchedule:         "@hourly",
		},
		Admin:      config.AdminConfig{Username: adminUsername, Password: adminPassword},
		AppBaseURL: "http://localhost:8080",
	}

	container, err := NewDependencyContainerWithDB(cfg, db, infrastructure.NewDiscardLogger())
	s.Require().NoError(err)

	s.app, err = NewApplicationWithDependencies(cfg, container)
	s.Require().NoError(err)
	s.Require().NoError(s.app.SeedAdmin(context.Background()))
}

func (s *ApplicationTestSuite) TearDownTest() {
	s.emailAPI.server.Close()
	s.Require().NoError(s.app.container.Cleanup())
}

func (s *ApplicationTestSuite) do(req *http.Request) *httptest.ResponseRecorder {
	for _, c := range s.cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	s.app.Handler().ServeHTTP(w, req)
	for _, c := range w.Result().Cookies() {
		if c.MaxAge < 0 || c.Value == "" {
			delete(s.cookies, c.Name)
			continue
		}
		s.cookies[c.Name] = c
	}
	return w
}

func (s *ApplicationTestSuite) get(path string) *httptest.ResponseRecorder {
	return s.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (s *ApplicationTestSuite) postForm(path string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return s.do(req)
}

func (s *ApplicationTestSuite) login(password string) *httptest.ResponseRecorder {
	return s.postForm("/login", url.Values{"username": {adminUsername}, "password": {password}})
}

func (s *ApplicationTestSuite) subscribe(name, email string) *httptest.ResponseRecorder {
	return s.postForm("/subscriptions", url.Values{"name": {name}, "email": {email}})
}

func (s *ApplicationTestSuite) subscriptions() []database.SubscriptionModel {
	var rows []database.SubscriptionModel
	s.Require().NoError(s.db.Order("email").Find(&rows).Error)
	return rows
}

// confirmedSubscriber subscribes and follows the emailed link
func (s *ApplicationTestSuite) confirmedSubscriber(name, email string) {
	s.Require().Equal(http.StatusOK, s.subscribe(name, email).Code)
	messages := s.emailAPI.messages()
	link := confirmationLink.FindStringSubmatch(messages[len(messages)-1].TextBody)
	s.Require().Len(link, 2)
	s.Require().Equal(http.StatusOK, s.get(link[1]).Code)
}

func (s *ApplicationTestSuite) newsletterKey() string {
	w := s.get("/admin/newsletter")
	s.Require().Equal(http.StatusOK, w.Code)
	match := idempotencyField.FindStringSubmatch(w.Body.String())
	s.Require().Len(match, 2)
	return match[1]
}

func issueForm(key string) url.Values {
	return url.Values{
		"title":           {"Newsletter title"},
		"text_content":    {"Newsletter body as plain text"},
		"html_content":    {"<p>Newsletter body as HTML</p>"},
		"idempotency_key": {key},
	}
}

func (s *ApplicationTestSuite) TestHealth() {
	w := s.get("/health")
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"status":"ok"}`, w.Body.String())

	w = s.get("/health/details")
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"database"`)
	s.Contains(w.Body.String(), `"sessions"`)
	s.Contains(w.Body.String(), `"email"`)
}

func (s *ApplicationTestSuite) TestSubscribe_ValidForm() {
	w := s.subscribe("Dione", "dione@email.com")

	s.Equal(http.StatusOK, w.Code)

	rows := s.subscriptions()
	s.Require().Len(rows, 1)
	s.Equal("dione@email.com", rows[0].Email)
	s.Equal("Dione", rows[0].Name)
	s.Equal("pending_confirmation", rows[0].Status)

	messages := s.emailAPI.messages()
	s.Require().Len(messages, 1)
	s.Equal("newsletter@example.com", messages[0].From)
	s.Equal("dione@email.com", messages[0].To)
	s.Equal("Welcome!", messages[0].Subject)
}

func (s *ApplicationTestSuite) TestSubscribe_InvalidForm() {
	cases := []url.Values{
		{"name": {"le guin"}},
		{"email": {"ursula_le_guin@gmail.com"}},
		{},
		{"name": {""}, "email": {"ursula_le_guin@gmail.com"}},
		{"name": {"Ursula"}, "email": {""}},
		{"name": {"Ursula"}, "email": {"definitely-not-an-email"}},
	}

	for _, form := range cases {
		w := s.postForm("/subscriptions", form)
		s.Equal(http.StatusBadRequest, w.Code, "form %v", form)
	}

	s.Empty(s.subscriptions())
	s.Empty(s.emailAPI.messages())
}

func (s *ApplicationTestSuite) TestSubscribe_EmailFailure() {
	s.emailAPI.respondWith(http.StatusInternalServerError)

	w := s.subscribe("Dione", "dione@email.com")

	s.Equal(http.StatusInternalServerError, w.Code)
}

func (s *ApplicationTestSuite) TestSubscribe_TwiceResendsTheSameLink() {
	s.Require().Equal(http.StatusOK, s.subscribe("Dione", "dione@email.com").Code)
	s.Require().Equal(http.StatusOK, s.subscribe("Dione", "dione@email.com").Code)

	s.Len(s.subscriptions(), 1)

	messages := s.emailAPI.messages()
	s.Require().Len(messages, 2)
	first := confirmationLink.FindString(messages[0].TextBody)
	s.NotEmpty(first)
	s.Equal(first, confirmationLink.FindString(messages[1].TextBody))
}

func (s *ApplicationTestSuite) TestConfirm_RoundTrip() {
	s.Require().Equal(http.StatusOK, s.subscribe("Dione", "dione@email.com").Code)

	messages := s.emailAPI.messages()
	s.Require().Len(messages, 1)
	htmlLink := confirmationLink.FindStringSubmatch(messages[0].HTMLBody)
	textLink := confirmationLink.FindStringSubmatch(messages[0].TextBody)
	s.Require().Len(htmlLink, 2)
	s.Require().Len(textLink, 2)
	s.Equal(htmlLink[1], textLink[1])

	s.Equal(http.StatusOK, s.get(htmlLink[1]).Code)
	rows := s.subscriptions()
	s.Require().Len(rows, 1)
	s.Equal("confirmed", rows[0].Status)

	s.Equal(http.StatusOK, s.get(htmlLink[1]).Code)
	rows = s.subscriptions()
	s.Require().Len(rows, 1)
	s.Equal("confirmed", rows[0].Status)

	// a confirmed subscriber can submit the form again without new mail
	s.Equal(http.StatusOK, s.subscribe("Dione", "dione@email.com").Code)
	s.Len(s.emailAPI.messages(), 1)
}

func (s *ApplicationTestSuite) TestConfirm_MissingAndUnknownToken() {
	s.Equal(http.StatusBadRequest, s.get("/subscriptions/confirm").Code)
	s.Equal(http.StatusUnauthorized, s.get("/subscriptions/confirm?subscription_token=abcdefghijklmnopqrstuvwxy").Code)
	s.Equal(http.StatusUnauthorized, s.get("/subscriptions/confirm?subscription_token=not-a-token").Code)
}

func (s *ApplicationTestSuite) TestAdmin_RequiresLogin() {
	for _, path := range []string{"/admin/dashboard", "/admin/password", "/admin/newsletter"} {
		w := s.get(path)
		s.Equal(http.StatusSeeOther, w.Code, path)
		s.Equal("/login", w.Header().Get("Location"), path)
	}

	w := s.login(adminPassword)
	s.Require().Equal(http.StatusSeeOther, w.Code)
	s.Equal("/admin/dashboard", w.Header().Get("Location"))

	for _, path := range []string{"/admin/dashboard", "/admin/password", "/admin/newsletter"} {
		s.Equal(http.StatusOK, s.get(path).Code, path)
	}
	s.Contains(s.get("/admin/dashboard").Body.String(), "Welcome admin!")
}

func (s *ApplicationTestSuite) TestLogin_InvalidCredentials() {
	w := s.login("wrong-password")

	s.Equal(http.StatusSeeOther, w.Code)
	location := w.Header().Get("Location")
	s.True(strings.HasPrefix(location, "/login?error="))

	page := s.get(location)
	s.Contains(page.Body.String(), "<p><i>Authentication failed</i></p>")
	s.Equal(http.StatusSeeOther, s.get("/admin/dashboard").Code)
}

func (s *ApplicationTestSuite) TestLogout() {
	s.Require().Equal(http.StatusSeeOther, s.login(adminPassword).Code)

	w := s.postForm("/admin/logout", url.Values{})
	s.Equal(http.StatusSeeOther, w.Code)
	s.Equal("/login", w.Header().Get("Location"))

	s.Contains(s.get("/login").Body.String(), "You have successfully logged out.")
	s.Equal(http.StatusSeeOther, s.get("/admin/dashboard").Code)
}

func (s *ApplicationTestSuite) TestChangePassword() {
	s.Require().Equal(http.StatusSeeOther, s.login(adminPassword).Code)
	newPassword := uuid.NewString()

	w := s.postForm("/admin/password", url.Values{
		"current_password":   {"wrong-password"},
		"new_password":       {newPassword},
		"new_password_check": {newPassword},
	})
	s.Equal(http.StatusSeeOther, w.Code)
	s.Contains(s.get("/admin/password").Body.String(), "The current password is incorrect.")

	w = s.postForm("/admin/password", url.Values{
		"current_password":   {adminPassword},
		"new_password":       {newPassword},
		"new_password_check": {newPassword + "x"},
	})
	s.Equal(http.StatusSeeOther, w.Code)
	s.Contains(s.get("/admin/password").Body.String(), "You entered two different new passwords - the field values must match.")

	w = s.postForm("/admin/password", url.Values{
		"current_password":   {adminPassword},
		"new_password":       {newPassword},
		"new_password_check": {newPassword},
	})
	s.Equal(http.StatusSeeOther, w.Code)
	s.Contains(s.get("/admin/password").Body.String(), "Your password has been changed.")

	s.Require().Equal(http.StatusSeeOther, s.postForm("/admin/logout", url.Values{}).Code)

	w = s.login(adminPassword)
	s.True(strings.HasPrefix(w.Header().Get("Location"), "/login?error="))

	w = s.login(newPassword)
	s.Equal("/admin/dashboard", w.Header().Get("Location"))
}

func (s *ApplicationTestSuite) TestNewsletter_OnlyConfirmedSubscribers() {
	s.confirmedSubscriber("Dione", "dione@email.com")
	s.confirmedSubscriber("Ursula", "ursula@email.com")
	s.Require().Equal(http.StatusOK, s.subscribe("Pending", "pending@email.com").Code)
	before := len(s.emailAPI.messages())

	s.Require().Equal(http.StatusSeeOther, s.login(adminPassword).Code)
	w := s.postForm("/admin/newsletter", issueForm(s.newsletterKey()))

	s.Equal(http.StatusSeeOther, w.Code)
	s.Equal("/admin/newsletter", w.Header().Get("Location"))
	s.Contains(s.get("/admin/newsletter").Body.String(), "The newsletter issue has been published!")

	sent := s.emailAPI.messages()[before:]
	s.Require().Len(sent, 2)
	recipients := []string{sent[0].To, sent[1].To}
	s.ElementsMatch([]string{"dione@email.com", "ursula@email.com"}, recipients)
	s.Equal("Newsletter title", sent[0].Subject)
	s.Equal("<p>Newsletter body as HTML</p>", sent[0].HTMLBody)
	s.Equal("Newsletter body as plain text", sent[0].TextBody)
}

func (s *ApplicationTestSuite) TestNewsletter_NoConfirmedSubscribers() {
	s.Require().Equal(http.StatusOK, s.subscribe("Pending", "pending@email.com").Code)
	before := len(s.emailAPI.messages())

	s.Require().Equal(http.StatusSeeOther, s.login(adminPassword).Code)
	w := s.postForm("/admin/newsletter", issueForm(s.newsletterKey()))

	s.Equal(http.StatusSeeOther, w.Code)
	s.Len(s.emailAPI.messages(), before)
}

func (s *ApplicationTestSuite) TestNewsletter_Idempotent() {
	s.confirmedSubscriber("Dione", "dione@email.com")
	before := len(s.emailAPI.messages())

	s.Require().Equal(http.StatusSeeOther, s.login(adminPassword).Code)
	key := s.newsletterKey()

	first := s.postForm("/admin/newsletter", issueForm(key))
	firstPage := s.get("/admin/newsletter").Body.String()
	second := s.postForm("/admin/newsletter", issueForm(key))
	secondPage := s.get("/admin/newsletter").Body.String()

	s.Equal(first.Code, second.Code)
	s.Equal(first.Header().Get("Location"), second.Header().Get("Location"))
	s.Contains(firstPage, "The newsletter issue has been published!")
	s.Contains(secondPage, "The newsletter issue has been published!")
	s.Len(s.emailAPI.messages(), before+1)

	var count int64
	s.Require().NoError(s.db.Model(&database.IdempotencyModel{}).Count(&count).Error)
	s.Equal(int64(1), count)
}

func (s *ApplicationTestSuite) TestNewsletter_ConcurrentSubmissions() {
	s.confirmedSubscriber("Dione", "dione@email.com")
	before := len(s.emailAPI.messages())

	s.Require().Equal(http.StatusSeeOther, s.login(adminPassword).Code)
	key := s.newsletterKey()
	cookies := make([]*http.Cookie, 0, len(s.cookies))
	for _, c := range s.cookies {
		cookies = append(cookies, c)
	}

	var wg sync.WaitGroup
	codes := make([]int, 2)
	for i := range codes {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			form := issueForm(key)
			req := httptest.NewRequest(http.MethodPost, "/admin/newsletter", strings.NewReader(form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			for _, c := range cookies {
				req.AddCookie(c)
			}
			w := httptest.NewRecorder()
			s.app.Handler().ServeHTTP(w, req)
			codes[i] = w.Code
		}(i)
	}
	wg.Wait()

	s.Equal([]int{http.StatusSeeOther, http.StatusSeeOther}, codes)
	s.Len(s.emailAPI.messages(), before+1)
}

func (s *ApplicationTestSuite) TestNewsletter_RetryAfterGatewayFailure() {
	s.confirmedSubscriber("Dione", "dione@email.com")
	before := len(s.emailAPI.messages())

	s.Require().Equal(http.StatusSeeOther, s.login(adminPassword).Code)
	key := s.newsletterKey()

	s.emailAPI.respondWith(http.StatusInternalServerError)
	w := s.postForm("/admin/newsletter", issueForm(key))
	s.Equal(http.StatusInternalServerError, w.Code)

	s.emailAPI.respondWith(http.StatusOK)
	w = s.postForm("/admin/newsletter", issueForm(key))
	s.Equal(http.StatusSeeOther, w.Code)

	// one failed attempt, one delivery
	s.Len(s.emailAPI.messages(), before+2)
}

func (s *ApplicationTestSuite) TestNewsletter_InvalidForm() {
	s.Require().Equal(http.StatusSeeOther, s.login(adminPassword).Code)

	form := issueForm(s.newsletterKey())
	form.Del("title")

	s.Equal(http.StatusBadRequest, s.postForm("/admin/newsletter", form).Code)
}

func (s *ApplicationTestSuite) TestNewsletterAPI_BasicAuth() {
	s.confirmedSubscriber("Dione", "dione@email.com")
	before := len(s.emailAPI.messages())

	body := `{"title":"Newsletter title","content":{"html":"<p>Hi</p>","text":"Hi"}}`

	req := httptest.NewRequest(http.MethodPost, "/newsletters", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := s.do(req)
	s.Equal(http.StatusUnauthorized, w.Code)
	s.Equal(`Basic realm="publish"`, w.Header().Get("WWW-Authenticate"))

	for i := 0; i < 2; i++ {
		req = httptest.NewRequest(http.MethodPost, "/newsletters", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Idempotency-Key", "api-issue-1")
		req.SetBasicAuth(adminUsername, adminPassword)
		w = s.do(req)
		s.Equal(http.StatusOK, w.Code)
	}

	s.Len(s.emailAPI.messages(), before+1)
}

func (s *ApplicationTestSuite) TestCleanupJob_RemovesExpiredRecords() {
	var admin database.UserModel
	s.Require().NoError(s.db.Where("username = ?", adminUsername).First(&admin).Error)
	adminID := admin.UserID

	old := time.Now().Add(-72 * time.Hour).UTC()
	s.Require().NoError(s.db.Create(&database.IdempotencyModel{
		UserID:         adminID,
		IdempotencyKey: "old-key",
		ResponseStatus: "completed",
		CreatedAt:      old,
		UpdatedAt:      old,
	}).Error)
	s.Require().NoError(s.db.Create(&database.IdempotencyModel{
		UserID:         adminID,
		IdempotencyKey: "fresh-key",
		ResponseStatus: "completed",
		CreatedAt:      time.Now().UTC(),
		UpdatedAt:      time.Now().UTC(),
	}).Error)

	s.Require().NoError(s.app.cleanupIdempotencyRecords(context.Background()))

	var keys []string
	s.Require().NoError(s.db.Model(&database.IdempotencyModel{}).Pluck("idempotency_key", &keys).Error)
	s.Equal([]string{"fresh-key"}, keys)
}

func (s *ApplicationTestSuite) TestSessionSweep_KeepsLiveSessions() {
	ctx := context.Background()
	s.Require().Equal(http.StatusSeeOther, s.login(adminPassword).Code)

	memory, ok := s.app.container.sessionBackend.(*external.MemoryCacheProvider)
	s.Require().True(ok)
	s.Require().NoError(memory.Set(ctx, "session:abandoned", []byte("{}"), time.Millisecond))
	time.Sleep(5 * time.Millisecond)

	s.Require().NoError(s.app.sweepExpiredSessions(ctx))

	s.Zero(memory.DeleteExpired(), "the sweep already removed the abandoned session")
	s.Equal(http.StatusOK, s.get("/admin/dashboard").Code)
}

func (s *ApplicationTestSuite) TestMetrics() {
	s.get("/health")

	w := s.get("/metrics")

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `newsletter_http_requests_total{method="GET",route="/health",status="200"} 1`)
	s.Contains(w.Body.String(), "go_goroutines")
}

func (s *ApplicationTestSuite) TestSeedAdmin_IsIdempotent() {
	s.Require().NoError(s.app.SeedAdmin(context.Background()))

	var count int64
	s.Require().NoError(s.db.Model(&database.UserModel{}).Count(&count).Error)
	s.Equal(int64(1), count)
}
