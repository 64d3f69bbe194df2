package controllers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Abhishek83gupta/Lingua/middlewares"
	"github.com/Abhishek83gupta/Lingua/models"
	"github.com/Abhishek83gupta/Lingua/utils"
)

const testSecret = "test-secret"

func setupAuthRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	authn := middlewares.NewAuthenticator(db, nil, testSecret)
	ac := NewAuthController(db, authn, testSecret, time.Hour)

	r := gin.New()
	r.POST("/api/auth/register", ac.Register)
	r.POST("/api/auth/login", ac.Login)
	r.POST("/api/auth/logout", ac.Logout)
	r.GET("/api/me", authn.AuthMiddleWare(), ac.Me)
	return r
}

func TestRegisterIssuesToken(t *testing.T) {
	db := newTestDB(t)
	r := setupAuthRouter(db)

	w := doJSON(r, http.MethodPost, "/api/auth/register", gin.H{
		"username": "alice", "password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, parseBody(w, &resp))
	username, _, err := utils.ParseJWT(resp["token"], testSecret)
	require.NoError(t, err)
	require.Equal(t, "alice", username)

	// The stored password is hashed, never the plaintext.
	var user models.Users
	require.NoError(t, db.Where("username = ?", "alice").First(&user).Error)
	require.NotEqual(t, "secret123", user.Password)
	require.True(t, utils.CheckPassword(user.Password, "secret123"))
}

func TestRegisterDuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	r := setupAuthRouter(db)

	w := doJSON(r, http.MethodPost, "/api/auth/register", gin.H{
		"username": "alice", "password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodPost, "/api/auth/register", gin.H{
		"username": "alice", "password": "other456",
	})
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestLogin(t *testing.T) {
	db := newTestDB(t)
	r := setupAuthRouter(db)
	registerUser(t, r, "alice", "secret123")

	w := doJSON(r, http.MethodPost, "/api/auth/login", gin.H{
		"username": "alice", "password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodPost, "/api/auth/login", gin.H{
		"username": "alice", "password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, parseBody(w, &resp))
	require.NotEmpty(t, resp["token"])

	// Token works against a protected endpoint.
	req := newJSONRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", resp["token"])
	w = serve(r, req)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestLoginUnknownUser(t *testing.T) {
	r := setupAuthRouter(newTestDB(t))
	w := doJSON(r, http.MethodPost, "/api/auth/login", gin.H{
		"username": "nobody", "password": "whatever",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginRateLimited(t *testing.T) {
	db := newTestDB(t)
	r := setupAuthRouter(db)
	registerUser(t, r, "alice", "secret123")

	// Burn through the burst with bad passwords; the next attempt is
	// throttled rather than evaluated.
	var last int
	for i := 0; i < loginRateBurst+1; i++ {
		w := doJSON(r, http.MethodPost, "/api/auth/login", gin.H{
			"username": "alice", "password": "wrong",
		})
		last = w.Code
	}
	require.Equal(t, http.StatusTooManyRequests, last)
}

func TestLogoutClearsCookie(t *testing.T) {
	db := newTestDB(t)
	r := setupAuthRouter(db)

	w := doJSON(r, http.MethodPost, "/api/auth/logout", nil)
	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	var found bool
	for _, ck := range cookies {
		if ck.Name == utils.CookieName {
			found = true
			require.Empty(t, ck.Value)
			require.Negative(t, ck.MaxAge)
		}
	}
	require.True(t, found)
}

func registerUser(t *testing.T, r *gin.Engine, username, password string) {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/api/auth/register", gin.H{
		"username": username, "password": password,
	})
	require.Equal(t, http.StatusOK, w.Code)
}
