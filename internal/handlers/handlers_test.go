package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"ecomm/internal/config"
	"ecomm/internal/events"
	"ecomm/internal/token"
)

type testEnv struct {
	t        *testing.T
	e        *echo.Echo
	db       *gorm.DB
	tokens   *token.Service
	auth     *AuthHandler
	products *ProductHandler
	cart     *CartHandler
}

func initTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// every pooled connection gets its own :memory: database, so keep one
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))
	return db
}

func newTestEnv(t *testing.T) *testEnv {
	db := initTestDB(t)
	tokens := &token.Service{Secret: []byte("test_secret")}
	producer := &events.Producer{}

	return &testEnv{
		t:        t,
		e:        echo.New(),
		db:       db,
		tokens:   tokens,
		auth:     &AuthHandler{DB: db, Tokens: tokens, Producer: producer},
		products: &ProductHandler{DB: db, Producer: producer},
		cart:     &CartHandler{DB: db, Producer: producer},
	}
}

func (env *testEnv) doJSONRequest(method, path string, body interface{}, headers ...http.Header) (*httptest.ResponseRecorder, echo.Context) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for _, h := range headers {
		for k, vs := range h {
			for _, v := range vs {
				req.Header.Set(k, v)
			}
		}
	}
	rec := httptest.NewRecorder()
	c := env.e.NewContext(req, rec)
	return rec, c
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}
