package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/task-manager/internal/auth"
)

func runJWT(t *testing.T, codec *auth.Codec, authorization string) (*httptest.ResponseRecorder, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var email string
	next := func(c echo.Context) error {
		email, _ = c.Get("email").(string)
		return c.NoContent(http.StatusOK)
	}
	require.NoError(t, JWTAuth(codec)(next)(c))
	return rec, email
}

func TestJWTAuth_ValidToken(t *testing.T) {
	codec := auth.NewCodec("secret", time.Hour)
	tok, err := codec.Issue("a@x.com")
	require.NoError(t, err)

	rec, email := runJWT(t, codec, "Bearer "+tok)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "a@x.com", email)
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	codec := auth.NewCodec("secret", time.Hour)
	rec, _ := runJWT(t, codec, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuth_GarbageToken(t *testing.T) {
	codec := auth.NewCodec("secret", time.Hour)
	rec, _ := runJWT(t, codec, "Bearer not.a.jwt")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	codec := auth.NewCodec("secret", time.Hour)
	tok, err := auth.NewCodec("secret", -time.Minute).Issue("a@x.com")
	require.NoError(t, err)

	rec, _ := runJWT(t, codec, "Bearer "+tok)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuth_WrongSecret(t *testing.T) {
	codec := auth.NewCodec("secret", time.Hour)
	tok, err := auth.NewCodec("other", time.Hour).Issue("a@x.com")
	require.NoError(t, err)

	rec, _ := runJWT(t, codec, "Bearer "+tok)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
