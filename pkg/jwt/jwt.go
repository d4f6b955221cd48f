package jwt

import (
	"fmt"
	"math"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ClaimUserType nombre del claim que discrimina el rol del usuario.
const ClaimUserType = "type"

// Claims subconjunto de claims que la consola lee del token.
type Claims struct {
	Subject  string
	Email    string
	UserType int // 0 si el claim falta o no es un entero
	Expires  time.Time
}

// DecodeUnverified decodifica el payload del token SIN verificar la firma.
// El backend es la autoridad; aquí solo se lee el rol para decidir la navegación.
func DecodeUnverified(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("jwt: token vacío")
	}
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return nil, fmt.Errorf("jwt: decodificar payload: %w", err)
	}
	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("claims inválidos")
	}
	out := &Claims{UserType: intClaim(mc[ClaimUserType])}
	out.Subject, _ = mc["sub"].(string)
	out.Email, _ = mc["email"].(string)
	if exp, err := mc.GetExpirationTime(); err == nil && exp != nil {
		out.Expires = exp.Time
	}
	return out, nil
}

// intClaim acepta solo números enteros (1 y 1.0 son el mismo valor en JSON).
func intClaim(v interface{}) int {
	f, ok := v.(float64)
	if !ok || f != math.Trunc(f) {
		return 0
	}
	return int(f)
}

// Generate firma un token HS256 con sub, type y exp. Lo usan los tests y el entorno de desarrollo
// para simular el token que emite el backend.
func Generate(secret, subject string, userType int, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":         subject,
		ClaimUserType: userType,
		"iat":         now.Unix(),
		"exp":         now.Add(time.Duration(expMinutes) * time.Minute).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
