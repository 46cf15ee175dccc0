package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthenticator struct {
	userID uuid.UUID
	err    error
}

func (f *fakeAuthenticator) VerifyToken(token string) (uuid.UUID, error) {
	if f.err != nil {
		return uuid.Nil, f.err
	}
	return f.userID, nil
}

func newProtectedRouter(auth Authenticator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/protected", Authorize(auth), func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no user"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": userID.String()})
	})
	return r
}

func TestAuthorizeMissingHeader(t *testing.T) {
	r := newProtectedRouter(&fakeAuthenticator{userID: uuid.New()})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthorizeNonBearerHeader(t *testing.T) {
	r := newProtectedRouter(&fakeAuthenticator{userID: uuid.New()})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthorizeRejectedToken(t *testing.T) {
	// Any verification failure (expired, bad signature, missing subject)
	// must yield 401 regardless of the request payload.
	r := newProtectedRouter(&fakeAuthenticator{err: errors.New("token is expired")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	req.Header.Set("Authorization", "Bearer some.expired.token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid token")
}

func TestAuthorizeValidToken(t *testing.T) {
	userID := uuid.New()
	r := newProtectedRouter(&fakeAuthenticator{userID: userID})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userID.String())
}
