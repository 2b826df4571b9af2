package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.NewString()
}

func GenerateSessionJWT(sessionID, secret string, jwtExpiryTimeInHours int) (string, error) {
	claims := SessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(jwtExpiryTimeInHours) * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GenerateReportObjectName builds the object key for an archived score
// report, e.g. "reports/gad-7/664f2b_20240601_120000.json".
func GenerateReportObjectName(instrument, questionnaireID string) string {
	timestamp := time.Now().Format("20060102_150405")
	return fmt.Sprintf("reports/%s/%s_%s.json", instrument, questionnaireID, timestamp)
}
