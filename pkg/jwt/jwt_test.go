package jwt_test

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/asesor-cotizaciones/pkg/jwt"
)

func TestDecodeUnverified_LeeTipoDeUsuario(t *testing.T) {
	for _, userType := range []int{1, 2, 99} {
		tok, err := pkgjwt.Generate("secreto-del-backend", "asesor@example.com", userType, 60)
		require.NoError(t, err)

		claims, err := pkgjwt.DecodeUnverified(tok)
		require.NoError(t, err)
		assert.Equal(t, userType, claims.UserType)
		assert.Equal(t, "asesor@example.com", claims.Subject)
		assert.False(t, claims.Expires.IsZero())
	}
}

// La firma no se verifica: un token firmado con cualquier secreto se decodifica igual.
func TestDecodeUnverified_IgnoraFirma(t *testing.T) {
	tok, err := pkgjwt.Generate("otro-secreto", "x", 2, 60)
	require.NoError(t, err)

	claims, err := pkgjwt.DecodeUnverified(tok)
	require.NoError(t, err)
	assert.Equal(t, 2, claims.UserType)
}

func TestDecodeUnverified_TipoNoEntero(t *testing.T) {
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	payload := base64.RawURLEncoding.EncodeToString([]byte(`{"sub":"x","type":"2"}`))
	tok := header + "." + payload + ".firma"

	claims, err := pkgjwt.DecodeUnverified(tok)
	require.NoError(t, err)
	assert.Equal(t, 0, claims.UserType, "un type string no es un rol válido")
}

func TestDecodeUnverified_TokenMalformado(t *testing.T) {
	_, err := pkgjwt.DecodeUnverified("no-es-un-jwt")
	assert.Error(t, err)

	_, err = pkgjwt.DecodeUnverified("")
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", "x", 2, 60)
	assert.Error(t, err)
}
