package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MassBabyGeek/TrilhaVital-backend/internal/api"
	"github.com/MassBabyGeek/TrilhaVital-backend/internal/config"
	"github.com/MassBabyGeek/TrilhaVital-backend/internal/database"
	"github.com/MassBabyGeek/TrilhaVital-backend/internal/handler"
	"github.com/MassBabyGeek/TrilhaVital-backend/internal/middleware"
	model "github.com/MassBabyGeek/TrilhaVital-backend/internal/models"
	"github.com/MassBabyGeek/TrilhaVital-backend/internal/web"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const defaultEmail = "user@example.com"

type testServer struct {
	store  database.Store
	router http.Handler
}

func testConfig() *config.Config {
	return &config.Config{
		Port:             "8080",
		DBDriver:         config.DriverSQLite,
		DefaultUserEmail: defaultEmail,
		CORSOrigin:       "*",
	}
}

// newServer monte le routeur complet sur une base SQLite en mémoire, catalogue inclus
func newServer(t *testing.T) *testServer {
	t.Helper()
	ctx := context.Background()

	store, err := database.OpenSQLite(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	require.NoError(t, store.Migrate(ctx))
	_, err = database.Seed(ctx, store)
	require.NoError(t, err)

	return newServerWithStore(t, store)
}

func newServerWithStore(t *testing.T, store database.Store) *testServer {
	t.Helper()
	pages, err := web.NewRenderer()
	require.NoError(t, err)
	router := api.SetupRouter(testConfig(), handler.New(store, pages), middleware.NewMetrics())
	return &testServer{store: store, router: router}
}

func (s *testServer) do(t *testing.T, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dest), rec.Body.String())
}

func (s *testServer) exercises(t *testing.T) []model.Exercise {
	t.Helper()
	rec := s.do(t, http.MethodGet, "/exercises", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var exercises []model.Exercise
	decode(t, rec, &exercises)
	return exercises
}

func (s *testServer) createProfile(t *testing.T) {
	t.Helper()
	rec := s.do(t, http.MethodPost, "/profile", `{"name":"Ana","age":30,"weight":75.5,"height":1.75}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

// failingStore simule une panne de stockage
type failingStore struct {
	database.Store
	err error
}

func (f failingStore) ListExercises(context.Context) ([]model.Exercise, error) { return nil, f.err }
func (f failingStore) Ping(context.Context) error { return f.err }
func (f failingStore) GetUserByEmail(context.Context, string) (*model.User, error) {
	return nil, f.err
}
func (f failingStore) UpsertProfile(context.Context, string, model.ProfileInput) (*model.User, error) {
	return nil, f.err
}
func (f failingStore) CreateWorkout(context.Context, string, model.CreateWorkoutInput) (*model.Workout, error) {
	return nil, f.err
}

var errBroken = errors.New("database is on fire")
