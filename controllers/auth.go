package controllers

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"github.com/Abhishek83gupta/Lingua/log"
	"github.com/Abhishek83gupta/Lingua/middlewares"
	"github.com/Abhishek83gupta/Lingua/models"
	"github.com/Abhishek83gupta/Lingua/utils"
)

const (
	loginRateInterval = 3 * time.Second
	loginRateBurst    = 5
	limiterCleanupAge = 5 * time.Minute
)

type Credentials struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthController handles account registration and session lifecycle.
type AuthController struct {
	db   *gorm.DB
	auth *middlewares.Authenticator

	jwtSecret string
	jwtTTL    time.Duration

	// Per-username login limiters, pruned by a background sweep once
	// the first login arrives.
	loginAttempts sync.Map
	cleanupOnce   sync.Once
}

func NewAuthController(db *gorm.DB, auth *middlewares.Authenticator, jwtSecret string, jwtTTL time.Duration) *AuthController {
	return &AuthController{
		db:        db,
		auth:      auth,
		jwtSecret: jwtSecret,
		jwtTTL:    jwtTTL,
	}
}

// Register godoc
// @Summary     Register a new account
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       request  body      Credentials        true  "username and password"
// @Success     200      {object}  map[string]string  "JWT token"
// @Failure     400      {object}  map[string]string  "bad request"
// @Failure     409      {object}  map[string]string  "username taken"
// @Router      /api/auth/register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var creds Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	creds.Username = strings.TrimSpace(creds.Username)
	if creds.Username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username required"})
		return
	}

	hashed, err := utils.HashPassword(creds.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
		return
	}
	user := models.Users{Username: creds.Username, Password: hashed}
	if err := ac.db.Create(&user).Error; err != nil {
		// The unique index on username is the source of truth for
		// duplicates; anything else is a real failure.
		if strings.Contains(strings.ToLower(err.Error()), "unique") ||
			strings.Contains(strings.ToLower(err.Error()), "duplicate") {
			c.JSON(http.StatusConflict, gin.H{"error": "username already taken"})
			return
		}
		log.L().Error("create user failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}

	token, err := utils.GenerateJWT(user.Username, ac.jwtSecret, ac.jwtTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}
	utils.SetAuthCookie(c, token, ac.jwtTTL)
	log.L().Info("user registered", zap.String("username", user.Username))
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Login godoc
// @Summary     Log in
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       request  body      Credentials        true  "username and password"
// @Success     200      {object}  map[string]string  "JWT token"
// @Failure     401      {object}  map[string]string  "bad credentials"
// @Failure     429      {object}  map[string]string  "too many attempts"
// @Router      /api/auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var creds Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	creds.Username = strings.TrimSpace(creds.Username)

	if !ac.allowLogin(creds.Username) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many login attempts, try later"})
		return
	}

	var user models.Users
	if err := ac.db.Where("username = ?", creds.Username).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
		return
	}
	if !utils.CheckPassword(user.Password, creds.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
		return
	}

	token, err := utils.GenerateJWT(user.Username, ac.jwtSecret, ac.jwtTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}
	utils.SetAuthCookie(c, token, ac.jwtTTL)
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Logout godoc
// @Summary     Log out
// @Description Clears the auth cookie and revokes the presented token until its natural expiry.
// @Tags        Auth
// @Security    Bearer
// @Produce     json
// @Success     200  {object}  map[string]string  "logged out"
// @Router      /api/auth/logout [post]
func (ac *AuthController) Logout(c *gin.Context) {
	token := strings.TrimSpace(c.GetHeader("Authorization"))
	if token == "" {
		if ck, err := c.Cookie(utils.CookieName); err == nil {
			token = ck
		}
	}
	if token != "" {
		if _, expiry, err := utils.ParseJWT(token, ac.jwtSecret); err == nil {
			if err := ac.auth.RevokeToken(token, expiry); err != nil {
				log.L().Error("revoke token failed", zap.Error(err))
			}
		}
	}
	utils.ClearAuthCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// Me godoc
// @Summary     Current user
// @Tags        Auth
// @Security    Bearer
// @Produce     json
// @Success     200  {object}  map[string]interface{}  "user id and name"
// @Failure     401  {object}  map[string]string       "unauthorized"
// @Router      /api/me [get]
func (ac *AuthController) Me(c *gin.Context) {
	p, ok := middlewares.CurrentPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user_id": p.ID, "username": p.Username})
}

// allowLogin rate-limits login attempts per username.
func (ac *AuthController) allowLogin(username string) bool {
	ac.cleanupOnce.Do(func() { go ac.cleanupLimiters() })

	v, _ := ac.loginAttempts.LoadOrStore(username, rate.NewLimiter(rate.Every(loginRateInterval), loginRateBurst))
	return v.(*rate.Limiter).Allow()
}

// cleanupLimiters drops limiters that have been idle long enough to
// refill completely, so the map does not grow with every username tried.
func (ac *AuthController) cleanupLimiters() {
	ticker := time.NewTicker(limiterCleanupAge)
	defer ticker.Stop()

	for range ticker.C {
		ac.loginAttempts.Range(func(key, value interface{}) bool {
			limiter := value.(*rate.Limiter)
			if limiter.Tokens() == float64(limiter.Burst()) {
				ac.loginAttempts.Delete(key)
			}
			return true
		})
	}
}
