package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/m04kA/HMS-FrontdeskService/internal/api/handlers"
)

const (
	msgMissingToken = "токен доступа отсутствует"
	msgInvalidToken = "токен доступа недействителен"
	msgExpiredToken = "срок действия токена истек, войдите заново"
)

type contextKey string

const (
	userIDKey   contextKey = "userID"
	userRoleKey contextKey = "userRole"
)

// Claims полезная нагрузка токена доступа
type Claims struct {
	UserID int64  `json:"uid"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Manager выпускает и проверяет токены доступа
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager создает менеджер токенов
func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// IssueToken выпускает подписанный токен для пользователя
func (m *Manager) IssueToken(userID int64, email string, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// ParseToken проверяет подпись и срок действия токена
func (m *Manager) ParseToken(raw string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// Auth проверяет Bearer-токен и кладет пользователя в контекст
// Просроченный токен отличается от отсутствующего или битого:
// оператор должен понять, что нужно войти заново
func (m *Manager) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			handlers.RespondUnauthorized(w, msgMissingToken)
			return
		}

		raw := strings.TrimPrefix(header, "Bearer ")
		if raw == header || raw == "" {
			handlers.RespondUnauthorized(w, msgInvalidToken)
			return
		}

		claims, err := m.ParseToken(raw)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				handlers.RespondUnauthorized(w, msgExpiredToken)
				return
			}
			handlers.RespondUnauthorized(w, msgInvalidToken)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
		ctx = context.WithValue(ctx, userRoleKey, claims.Role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID возвращает ID пользователя из контекста
func GetUserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// GetUserRole возвращает роль пользователя из контекста
func GetUserRole(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(userRoleKey).(string)
	return role, ok
}
