package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session es el claim set de la sesión: identidad + tienda activa.
// Se construye y consume únicamente a través de Issue/Verify; nunca a mano.
// ShopID vacío significa que el usuario aún no creó su tienda (onboarding).
type Session struct {
	UserID string
	Email  string
	Role   string
	ShopID string
}

// claims incluye los claims estándar JWT más los campos propios de la aplicación.
type claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	ShopID string `json:"shop_id"`
}

// Issue genera un token JWT firmado (HS256) con los datos de la sesión.
// La expiración es fija desde la emisión (7 días en la configuración por defecto).
func Issue(secret string, s Session, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("token: secret vacío")
	}
	now := time.Now()
	c := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   s.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID: s.UserID,
		Email:  s.Email,
		Role:   s.Role,
		ShopID: s.ShopID,
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return t.SignedString([]byte(secret))
}

// Verify valida firma y expiración y devuelve la sesión contenida.
// Falla cerrado: cualquier firma incorrecta, payload malformado o token
// expirado retorna error y nunca una sesión parcial.
func Verify(secret, tokenString string) (*Session, error) {
	if secret == "" {
		return nil, fmt.Errorf("token: secret vacío")
	}
	t, err := jwt.ParseWithClaims(tokenString, &claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	c, ok := t.Claims.(*claims)
	if !ok || !t.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return &Session{
		UserID: c.UserID,
		Email:  c.Email,
		Role:   c.Role,
		ShopID: c.ShopID,
	}, nil
}
