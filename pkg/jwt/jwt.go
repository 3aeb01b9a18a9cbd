package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más el id del usuario y sus roles.
// Los roles son informativos para el cliente; la autorización del servidor nunca los lee.
type Claims struct {
	jwt.RegisteredClaims
	UserID string   `json:"id"`
	Roles  []string `json:"roles,omitempty"`
}

// Generate genera un token JWT firmado con el id del usuario y sus roles.
func Generate(secret, userID string, roles []string, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID: userID,
		Roles:  roles,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida firma y expiración y devuelve solo el id del usuario. La API no autoriza con
// los roles del token: el middleware recarga el usuario y usa los roles guardados.
func Parse(secret, tokenString string) (string, error) {
	claims, err := ParseClaims(secret, tokenString)
	if err != nil {
		return "", err
	}
	return claims.UserID, nil
}

// ParseClaims valida el token y devuelve todos sus claims, roles incluidos. Los roles son
// informativos para clientes (p. ej. mostrar u ocultar opciones de admin).
func ParseClaims(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	if claims.UserID == "" {
		return nil, fmt.Errorf("claims sin id de usuario")
	}
	return claims, nil
}
