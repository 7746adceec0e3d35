package middlewares

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ABuBakar7447/foodvillage-server/entity"
	"github.com/ABuBakar7447/foodvillage-server/utils"
)

const testSecret = "test-secret"

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(&entity.User{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func token(t *testing.T, email string) string {
	t.Helper()
	tok, err := utils.GenerateToken(email, "", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return tok
}

func get(r *gin.Engine, path, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuthRejectsMissingHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping", RequireAuth(testSecret), func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	w := get(r, "/ping", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "unauthorized access") {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestRequireAuthRejectsBadAndExpiredTokens(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping", RequireAuth(testSecret), func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	expired, err := utils.GenerateToken("a@x.com", "", testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	for name, bearer := range map[string]string{
		"garbage": "not-a-token",
		"expired": expired,
	} {
		if w := get(r, "/ping", bearer); w.Code != http.StatusUnauthorized {
			t.Errorf("%s: expected 401, got %d", name, w.Code)
		}
	}
}

func TestRequireAuthPopulatesIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", RequireAuth(testSecret), func(c *gin.Context) {
		c.String(http.StatusOK, utils.CurrentEmail(c))
	})

	w := get(r, "/whoami", token(t, "a@x.com"))
	if w.Code != http.StatusOK || w.Body.String() != "a@x.com" {
		t.Errorf("expected identity a@x.com, got %d %q", w.Code, w.Body.String())
	}
}

// The admin gate without a prior auth gate must read as unauthenticated,
// never as forbidden.
func TestRequireAdminWithoutAuthGate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := newTestDB(t)
	r := gin.New()
	r.GET("/admin", RequireAdmin(db), func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	w := get(r, "/admin", token(t, "a@x.com"))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRequireAdminRoleCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := newTestDB(t)
	if err := db.Create(&entity.User{Email: "admin@x.com", Role: "admin"}).Error; err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	if err := db.Create(&entity.User{Email: "guest@x.com", Role: "guest"}).Error; err != nil {
		t.Fatalf("seed guest: %v", err)
	}

	r := gin.New()
	r.GET("/admin", RequireAuth(testSecret), RequireAdmin(db), func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	cases := []struct {
		email string
		want  int
	}{
		{"admin@x.com", http.StatusOK},
		{"guest@x.com", http.StatusForbidden},
		{"nobody@x.com", http.StatusForbidden},
	}
	for _, tc := range cases {
		if w := get(r, "/admin", token(t, tc.email)); w.Code != tc.want {
			t.Errorf("%s: expected %d, got %d", tc.email, tc.want, w.Code)
		}
	}
}
