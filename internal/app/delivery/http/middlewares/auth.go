package middlewares

import (
	"context"
	"curaflow-service/internal/pkg/constvars"
	"curaflow-service/internal/pkg/exceptions"
	"curaflow-service/internal/pkg/utils"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
)

// SessionAuth guards the patient-facing questionnaire routes. The bearer
// token is the session JWT issued at init time; the session it names must
// still exist in redis, and the questionnaire it was issued for must match
// the one in the route.
func (m *Middlewares) SessionAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		sessionID, err := utils.ParseSessionJWT(tokenString, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(err))
			return
		}

		sessionKey := fmt.Sprintf(constvars.RedisKeySessionFormat, sessionID)
		sessionData, err := m.RedisRepository.Get(r.Context(), sessionKey)
		if err != nil || sessionData == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(err))
			return
		}

		// The session value is the questionnaire ID, stored JSON-encoded.
		var sessionQuestionnaireID string
		if err := json.Unmarshal([]byte(sessionData), &sessionQuestionnaireID); err != nil {
			sessionQuestionnaireID = sessionData
		}
		if sessionQuestionnaireID != chi.URLParam(r, constvars.URLParamQuestionnaireID) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrSessionQuestionnaireMismatch(nil))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_ID_KEY, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
