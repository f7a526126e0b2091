package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/deppfellow/go-crudkit/internal/config"
	"github.com/deppfellow/go-crudkit/internal/database"
	"github.com/deppfellow/go-crudkit/internal/handler"
	"github.com/deppfellow/go-crudkit/internal/middleware"
	"github.com/deppfellow/go-crudkit/internal/model"
	"github.com/deppfellow/go-crudkit/internal/server"
	"github.com/deppfellow/go-crudkit/internal/sqlerr"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryUsers is an in-memory user service that counts every call.
type memoryUsers struct {
	mu    sync.Mutex
	rows  map[int32]model.User
	next  int32
	calls int
	fail  error
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{rows: make(map[int32]model.User)}
}

func (m *memoryUsers) enter() error {
	m.calls++
	return m.fail
}

func (m *memoryUsers) Create(_ context.Context, _ database.Querier, data model.CreateUser) (model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(); err != nil {
		return model.User{}, err
	}
	m.next++
	now := time.Now().UTC()
	user := model.User{ID: m.next, Name: data.Name, Email: data.Email, CreatedAt: now, UpdatedAt: now}
	m.rows[user.ID] = user
	return user, nil
}

func (m *memoryUsers) GetAll(context.Context, database.Querier) ([]model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(); err != nil {
		return nil, err
	}
	var users []model.User
	for _, u := range m.rows {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (m *memoryUsers) Find(_ context.Context, _ database.Querier, id int32) (model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(); err != nil {
		return model.User{}, err
	}
	user, ok := m.rows[id]
	if !ok {
		return model.User{}, sqlerr.NotFound("users", id)
	}
	return user, nil
}

func (m *memoryUsers) Update(_ context.Context, _ database.Querier, id int32, data model.UpdateUser) (model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(); err != nil {
		return model.User{}, err
	}
	user, ok := m.rows[id]
	if !ok {
		return model.User{}, sqlerr.NotFound("users", id)
	}
	user.Name, user.Email, user.UpdatedAt = data.Name, data.Email, time.Now().UTC()
	m.rows[id] = user
	return user, nil
}

func (m *memoryUsers) Delete(_ context.Context, _ database.Querier, id int32) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(); err != nil {
		return err
	}
	if _, ok := m.rows[id]; !ok {
		return sqlerr.NotFound("users", id)
	}
	delete(m.rows, id)
	return nil
}

func (m *memoryUsers) Count(context.Context, database.Querier) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(); err != nil {
		return 0, err
	}
	return int64(len(m.rows)), nil
}

func (m *memoryUsers) Factory(ctx context.Context, db database.Querier) (model.User, error) {
	return m.Create(ctx, db, model.CreateUser{Name: "factory"})
}

func (m *memoryUsers) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func newEcho(svc *memoryUsers) *echo.Echo {
	logger := zerolog.Nop()
	return newEchoWithLogger(svc, &logger)
}

func newEchoWithLogger(svc *memoryUsers, logger *zerolog.Logger) *echo.Echo {
	cfg := config.Default()
	s := &server.Server{Config: &cfg, Logger: logger}

	e := echo.New()
	e.HTTPErrorHandler = middleware.NewGlobalMiddlewares(s).GlobalErrorHandler

	h := handler.NewCrudHandler[model.User, model.CreateUser, model.UpdateUser](s, svc, nil)
	g := e.Group("/users")
	g.GET("", h.Index())
	g.POST("", h.Store())
	g.GET("/:id", h.Show())
	g.PUT("/:id", h.Update())
	g.DELETE("/:id", h.Destroy())
	return e
}

func do(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestCrudHandler_Lifecycle(t *testing.T) {
	e := newEcho(newMemoryUsers())

	rec := do(e, http.MethodPost, "/users", `{"name":"A"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	created := decode[model.User](t, rec)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "A", created.Name)

	path := "/users/" + jsonNumber(created.ID)

	rec = do(e, http.MethodPut, path, `{"name":"B"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "B", decode[model.User](t, rec).Name)

	rec = do(e, http.MethodGet, "/users/99999", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User with id 99999 not found", rec.Body.String())

	rec = do(e, http.MethodDelete, path, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = do(e, http.MethodGet, path, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCrudHandler_Create(t *testing.T) {
	svc := newMemoryUsers()
	e := newEcho(svc)

	rec := do(e, http.MethodPost, "/users", `{"name":"A"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	id := decode[model.User](t, rec).ID
	rec = do(e, http.MethodGet, "/users/"+jsonNumber(id), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "A", decode[model.User](t, rec).Name)
}

func TestCrudHandler_ValidationShortCircuits(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		body   string
		want   string
	}{
		{"missing name on store", http.MethodPost, "/users", `{}`, "name: is required"},
		{"bad email on store", http.MethodPost, "/users", `{"name":"A","email":"nope"}`, "email: must be a valid email address"},
		{"empty name on update", http.MethodPut, "/users/1", `{"name":""}`, "name: is required"},
		{"malformed json", http.MethodPost, "/users", `{"name":`, ""},
		{"non-integer id on update", http.MethodPut, "/users/abc", `{"name":"B"}`, "id must be an integer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newMemoryUsers()
			e := newEcho(svc)

			rec := do(e, tt.method, tt.path, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			if tt.want != "" {
				assert.Equal(t, tt.want, rec.Body.String())
			}
			assert.Zero(t, svc.callCount())
		})
	}
}

func TestCrudHandler_NotFoundMapping(t *testing.T) {
	e := newEcho(newMemoryUsers())

	assert.Equal(t, http.StatusNotFound, do(e, http.MethodGet, "/users/99999", "").Code)

	rec := do(e, http.MethodPut, "/users/99999", `{"name":"B"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "User with id 99999 not found", rec.Body.String())

	assert.Equal(t, http.StatusInternalServerError, do(e, http.MethodDelete, "/users/99999", "").Code)
}

func TestCrudHandler_DestroyTwice(t *testing.T) {
	e := newEcho(newMemoryUsers())

	rec := do(e, http.MethodPost, "/users", `{"name":"A"}`)
	path := "/users/" + jsonNumber(decode[model.User](t, rec).ID)

	assert.Equal(t, http.StatusOK, do(e, http.MethodDelete, path, "").Code)
	assert.Equal(t, http.StatusInternalServerError, do(e, http.MethodDelete, path, "").Code)
}

func TestCrudHandler_Index(t *testing.T) {
	t.Run("Should encode an empty table as an empty array", func(t *testing.T) {
		rec := do(newEcho(newMemoryUsers()), http.MethodGet, "/users", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("Should list exactly the live records and agree with count", func(t *testing.T) {
		svc := newMemoryUsers()
		e := newEcho(svc)

		for _, name := range []string{"A", "B", "C"} {
			require.Equal(t, http.StatusOK, do(e, http.MethodPost, "/users", `{"name":"`+name+`"}`).Code)
		}
		require.Equal(t, http.StatusOK, do(e, http.MethodDelete, "/users/2", "").Code)

		rec := do(e, http.MethodGet, "/users", "")
		require.Equal(t, http.StatusOK, rec.Code)
		users := decode[[]model.User](t, rec)

		names := make([]string, 0, len(users))
		for _, u := range users {
			names = append(names, u.Name)
		}
		assert.ElementsMatch(t, []string{"A", "C"}, names)

		count, err := svc.Count(context.Background(), nil)
		require.NoError(t, err)
		assert.Equal(t, int64(len(users)), count)
	})

	t.Run("Should answer 500 when storage fails", func(t *testing.T) {
		svc := newMemoryUsers()
		svc.fail = errors.New("connection refused")

		rec := do(newEcho(svc), http.MethodGet, "/users", "")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "connection refused", rec.Body.String())
	})
}

func TestCrudHandler_StorageFailures(t *testing.T) {
	const duplicate = `duplicate key value violates unique constraint "users_email_key"`

	t.Run("Should answer 500 with the storage message on create", func(t *testing.T) {
		svc := newMemoryUsers()
		svc.fail = errors.New(duplicate)

		rec := do(newEcho(svc), http.MethodPost, "/users", `{"name":"A","email":"a@example.com"}`)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, duplicate, rec.Body.String())
	})

	t.Run("Should answer 500 with the storage message on update", func(t *testing.T) {
		svc := newMemoryUsers()
		e := newEcho(svc)
		rec := do(e, http.MethodPost, "/users", `{"name":"A"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		path := "/users/" + jsonNumber(decode[model.User](t, rec).ID)

		svc.fail = errors.New(duplicate)
		rec = do(e, http.MethodPut, path, `{"name":"B","email":"b@example.com"}`)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, duplicate, rec.Body.String())
	})
}

func TestHandle_LoggerFallback(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	rec := do(newEchoWithLogger(newMemoryUsers(), &logger), http.MethodGet, "/users", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, buf.String(), `"message":"handling request"`)
	assert.Contains(t, buf.String(), `"route":"/users"`)
}

func jsonNumber(id int32) string {
	b, _ := json.Marshal(id)
	return string(b)
}
