package attendance

import (
	"errors"
	"time"

	attendanceerrors "go-clocker/internal/attendance/errors"
	"go-clocker/internal/timesheet"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const qrTokenType = "qr"

// QRClaims is what a workplace display encodes in its QR code.
type QRClaims struct {
	CompanyID string `json:"company_id"`
	Workplace string `json:"workplace"`
	Action    string `json:"action,omitempty"`
	Type      string `json:"typ"`
	jwt.RegisteredClaims
}

func signQRToken(secret string, claims QRClaims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func newQRClaims(companyID string, workplace timesheet.Workplace, action string, now time.Time, ttl time.Duration) QRClaims {
	return QRClaims{
		CompanyID: companyID,
		Workplace: string(workplace),
		Action:    action,
		Type:      qrTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
}

func parseQRToken(secret, token string, now time.Time) (*QRClaims, error) {
	claims := &QRClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, attendanceerrors.ErrInvalidQRToken
		}
		return []byte(secret), nil
	}, jwt.WithTimeFunc(func() time.Time { return now }), jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return nil, attendanceerrors.ErrInvalidQRToken
	}

	if claims.Type != qrTokenType || claims.ID == "" {
		return nil, attendanceerrors.ErrInvalidQRToken
	}
	if !timesheet.Workplace(claims.Workplace).Valid() {
		return nil, attendanceerrors.ErrInvalidQRToken
	}
	if claims.Action != "" && !timesheet.Action(claims.Action).Valid() {
		return nil, attendanceerrors.ErrInvalidQRToken
	}
	if _, err := uuid.Parse(claims.CompanyID); err != nil {
		return nil, attendanceerrors.ErrInvalidQRToken
	}
	return claims, nil
}

// remaining is how long the token stays valid, at least one second.
func (c *QRClaims) remaining(now time.Time) time.Duration {
	if c.ExpiresAt == nil {
		return time.Second
	}
	if d := c.ExpiresAt.Sub(now); d > time.Second {
		return d
	}
	return time.Second
}

var errQRSecretMissing = errors.New("qr secret is not configured")
