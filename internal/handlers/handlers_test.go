package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"ecoshop/internal/middleware"
	"ecoshop/internal/models"
	"ecoshop/internal/pagination"
	"ecoshop/internal/services"
	"ecoshop/internal/session"
	ecvalidator "ecoshop/internal/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
	ecvalidator.Register()
}

// doRequest runs a JSON request through the router, optionally carrying a
// session cookie.
func doRequest(r *gin.Engine, method, path, body, sessionID string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if sessionID != "" {
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: sessionID})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse response JSON: %v (%s)", err, rec.Body.String())
	}
	return result
}

func dataField(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	result := parseJSON(t, rec)
	data, ok := result["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected data object in response, got %s", rec.Body.String())
	}
	return data
}

// storedSession creates and saves a session, returning it for cookie use.
func storedSession(t *testing.T, store session.Store, userID uint, isAdmin bool) *session.Session {
	t.Helper()

	sess := session.New()
	sess.UserID = userID
	sess.IsAdmin = isAdmin
	if userID != 0 {
		sess.Email = "user@test.com"
		sess.Name = "Test User"
		sess.LoginTime = time.Now()
	}
	if err := store.Save(context.Background(), sess); err != nil {
		t.Fatalf("failed to save session: %v", err)
	}
	return sess
}

// --- shared mocks ---

type mockAuditService struct {
	events []string
}

func (m *mockAuditService) Record(event string, userID uint, ip, ua string, details map[string]interface{}) {
	m.events = append(m.events, event)
}

type mockLimiter struct {
	allowFn func(key string, max int, window time.Duration) (bool, error)
}

func (m *mockLimiter) Allow(key string, max int, window time.Duration) (bool, error) {
	if m.allowFn != nil {
		return m.allowFn(key, max, window)
	}
	return true, nil
}

type mockUserService struct {
	registerFn       func(email, name, plaintext string) (*models.User, error)
	attemptLoginFn   func(email, plaintext string) (*models.User, error)
	getUserByIDFn    func(id uint) (*models.User, error)
	getUserByEmailFn func(email string) (*models.User, error)
	listUsersFn      func(page pagination.PageRequest) (*pagination.Page[models.AdminUserView], error)
	updateUserFn     func(id uint, update services.UserUpdate) (*models.User, error)
}

func (m *mockUserService) Register(email, name, plaintext string) (*models.User, error) {
	if m.registerFn != nil {
		return m.registerFn(email, name, plaintext)
	}
	return &models.User{Base: models.Base{ID: 1}, Email: email, Name: name, IsActive: true}, nil
}

func (m *mockUserService) AttemptLogin(email, plaintext string) (*models.User, error) {
	if m.attemptLoginFn != nil {
		return m.attemptLoginFn(email, plaintext)
	}
	return &models.User{Base: models.Base{ID: 1}, Email: email, IsActive: true}, nil
}

func (m *mockUserService) GetUserByID(id uint) (*models.User, error) {
	if m.getUserByIDFn != nil {
		return m.getUserByIDFn(id)
	}
	return &models.User{Base: models.Base{ID: id}, IsActive: true}, nil
}

func (m *mockUserService) GetUserByEmail(email string) (*models.User, error) {
	if m.getUserByEmailFn != nil {
		return m.getUserByEmailFn(email)
	}
	return &models.User{Base: models.Base{ID: 1}, Email: email, IsActive: true}, nil
}

func (m *mockUserService) ListUsers(page pagination.PageRequest) (*pagination.Page[models.AdminUserView], error) {
	if m.listUsersFn != nil {
		return m.listUsersFn(page)
	}
	result := pagination.NewPage([]models.AdminUserView{}, page, 0)
	return &result, nil
}

func (m *mockUserService) UpdateUser(id uint, update services.UserUpdate) (*models.User, error) {
	if m.updateUserFn != nil {
		return m.updateUserFn(id, update)
	}
	return &models.User{Base: models.Base{ID: id}}, nil
}

var _ services.UserServicer = (*mockUserService)(nil)
var _ services.AuditServicer = (*mockAuditService)(nil)

// sessionChain wires the standard session middleware for handler tests.
func sessionChain(store session.Store) []gin.HandlerFunc {
	return []gin.HandlerFunc{middleware.SessionLoad(store)}
}
