package middlewares

import (
	"context"
	"curaflow-service/internal/app/config"
	"curaflow-service/internal/pkg/constvars"
	"curaflow-service/internal/pkg/utils"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSessionStore struct {
	store map[string]string
}

func (f *fakeSessionStore) Delete(_ context.Context, key string) error {
	delete(f.store, key)
	return nil
}

func (f *fakeSessionStore) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.store[key] = string(encoded)
	return nil
}

func (f *fakeSessionStore) Get(_ context.Context, key string) (string, error) {
	return f.store[key], nil
}

const sessionAuthTestSecret = "test-secret"

func newSessionAuthRouter(t *testing.T) (*chi.Mux, *fakeSessionStore) {
	t.Helper()

	sessions := &fakeSessionStore{store: make(map[string]string)}
	middlewares := NewMiddlewares(
		zap.NewNop(),
		&config.InternalConfig{JWT: config.JWT{Secret: sessionAuthTestSecret, ExpTimeInHour: 1}},
		sessions,
	)

	router := chi.NewRouter()
	router.With(middlewares.SessionAuth).Put("/questionnaires/{questionnaire_id}/answers", func(w http.ResponseWriter, r *http.Request) {
		sessionID, _ := r.Context().Value(constvars.CONTEXT_SESSION_ID_KEY).(string)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(sessionID))
	})
	return router, sessions
}

func issueSessionToken(t *testing.T, sessions *fakeSessionStore, sessionID, questionnaireID string) string {
	t.Helper()

	err := sessions.Set(context.Background(), "session:"+sessionID, questionnaireID, time.Hour)
	require.NoError(t, err)

	token, err := utils.GenerateSessionJWT(sessionID, sessionAuthTestSecret, 1)
	require.NoError(t, err)
	return token
}

func TestSessionAuth(t *testing.T) {
	t.Run("missing bearer token", func(t *testing.T) {
		router, _ := newSessionAuthRouter(t)

		request := httptest.NewRequest(http.MethodPut, "/questionnaires/questionnaire-1/answers", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		router, _ := newSessionAuthRouter(t)

		request := httptest.NewRequest(http.MethodPut, "/questionnaires/questionnaire-1/answers", nil)
		request.Header.Set(constvars.HeaderAuthorization, "Bearer not-a-token")
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("valid token but no session in redis", func(t *testing.T) {
		router, _ := newSessionAuthRouter(t)

		token, err := utils.GenerateSessionJWT("session-gone", sessionAuthTestSecret, 1)
		require.NoError(t, err)

		request := httptest.NewRequest(http.MethodPut, "/questionnaires/questionnaire-1/answers", nil)
		request.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("session for another questionnaire is rejected", func(t *testing.T) {
		router, sessions := newSessionAuthRouter(t)
		token := issueSessionToken(t, sessions, "session-a", "questionnaire-a")

		request := httptest.NewRequest(http.MethodPut, "/questionnaires/questionnaire-b/answers", nil)
		request.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	t.Run("matching questionnaire passes with session id in context", func(t *testing.T) {
		router, sessions := newSessionAuthRouter(t)
		token := issueSessionToken(t, sessions, "session-a", "questionnaire-a")

		request := httptest.NewRequest(http.MethodPut, "/questionnaires/questionnaire-a/answers", nil)
		request.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "session-a", recorder.Body.String())
	})
}
