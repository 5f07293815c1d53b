package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/autoservicehub/workshop-scheduler/internal/config"
	dbpkg "github.com/autoservicehub/workshop-scheduler/internal/db"
	"github.com/autoservicehub/workshop-scheduler/internal/middleware"
	"github.com/autoservicehub/workshop-scheduler/internal/routes"
)

type testServer struct {
	router *gin.Engine
	db     *gorm.DB
}

// newTestServer wires the full route table onto a seeded in-memory
// database, so tests exercise the same stack the binary runs.
func newTestServer(t *testing.T) *testServer {
	t.Helper()

	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf(
		"file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"),
	)

	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, dbpkg.Migrate(gdb))
	require.NoError(t, dbpkg.Seed(gdb))

	cfg := &config.Config{
		JWTSecret:  "test-secret",
		ServerPort: "8080",
		LogLevel:   "info",
	}

	r := gin.New()
	r.Use(middleware.LocaleMiddleware())
	routes.RegisterRoutes(r, gdb, cfg, zerolog.Nop())

	return &testServer{router: r, db: gdb}
}

type header struct {
	key   string
	value string
}

func bearer(token string) header {
	return header{"Authorization", "Bearer " + token}
}

func acceptLanguage(tag string) header {
	return header{"Accept-Language", tag}
}

func (s *testServer) do(t *testing.T, method, path string, body any, headers ...header) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, h := range headers {
		req.Header.Set(h.key, h.value)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

// login authenticates a seeded staff account and returns its token.
func (s *testServer) login(t *testing.T, email, password string) string {
	t.Helper()

	w := s.do(t, http.MethodPost, "/api/users/login", gin.H{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var out struct {
		Token string `json:"token"`
	}
	decode(t, w, &out)
	require.NotEmpty(t, out.Token)
	return out.Token
}

func (s *testServer) staffToken(t *testing.T) string {
	return s.login(t, "contato@oficina-centro.com", "centro123")
}
