package middlewares

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"

	"github.com/Abhishek83gupta/Lingua/models"
	"github.com/Abhishek83gupta/Lingua/utils"
)

const (
	principalKey     = "principal"
	userCacheSize    = 1024
	revokedKeyPrefix = "auth:revoked:"
)

var (
	errNoToken = errors.New("no token supplied")
	errRevoked = errors.New("token revoked")
)

// Principal is the authenticated identity of a request. Its absence from
// the gin context is the guest state; there is no partially-filled form.
type Principal struct {
	ID       uint
	Username string
}

// Authenticator resolves principals from JWTs. User rows are cached in an
// LRU and concurrent cache misses for the same username are coalesced
// through singleflight. Revoked tokens (logout) are tracked in redis.
type Authenticator struct {
	db     *gorm.DB
	rdb    *redis.Client
	secret string
	cache  *lru.Cache[string, models.Users]
	group  singleflight.Group
}

func NewAuthenticator(db *gorm.DB, rdb *redis.Client, secret string) *Authenticator {
	cache, err := lru.New[string, models.Users](userCacheSize)
	if err != nil {
		panic(err)
	}
	return &Authenticator{db: db, rdb: rdb, secret: secret, cache: cache}
}

// AuthMiddleWare rejects requests without a valid principal.
func (a *Authenticator) AuthMiddleWare() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := a.resolve(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}
		SetPrincipal(c, p)
		c.Next()
	}
}

// OptionalAuth resolves a principal when a valid token is present but
// lets guests through. Used by the translate endpoint, where guests get
// a translation without history.
func (a *Authenticator) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if p, err := a.resolve(c); err == nil {
			SetPrincipal(c, p)
		}
		c.Next()
	}
}

// SetPrincipal stores the resolved principal in the request context.
func SetPrincipal(c *gin.Context, p Principal) {
	c.Set(principalKey, p)
}

// CurrentPrincipal reads the resolved principal; ok=false means guest.
func CurrentPrincipal(c *gin.Context) (Principal, bool) {
	v, exists := c.Get(principalKey)
	if !exists {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok
}

// RevokeToken denylists a token until its natural expiry, so logout takes
// effect before the JWT would lapse on its own.
func (a *Authenticator) RevokeToken(token string, expiry int64) error {
	if a.rdb == nil {
		return nil
	}
	ttl := time.Until(time.Unix(expiry, 0))
	if ttl <= 0 {
		return nil
	}
	return a.rdb.Set(revokedKeyPrefix+tokenDigest(token), "1", ttl).Err()
}

// InvalidateUser drops a cached user row, e.g. after a credential change.
func (a *Authenticator) InvalidateUser(username string) {
	a.cache.Remove(username)
}

func (a *Authenticator) resolve(c *gin.Context) (Principal, error) {
	token := strings.TrimSpace(c.GetHeader("Authorization"))
	if token == "" {
		if ck, err := c.Cookie(utils.CookieName); err == nil {
			token = ck
		}
	}
	if token == "" {
		return Principal{}, errNoToken
	}

	username, _, err := utils.ParseJWT(token, a.secret)
	if err != nil {
		return Principal{}, err
	}
	if a.isRevoked(token) {
		return Principal{}, errRevoked
	}

	u, err := a.lookupUser(username)
	if err != nil {
		return Principal{}, err
	}
	return Principal{ID: u.ID, Username: u.Username}, nil
}

func (a *Authenticator) lookupUser(username string) (models.Users, error) {
	if u, ok := a.cache.Get(username); ok {
		return u, nil
	}
	// Coalesce a miss storm for the same username into one query.
	v, err, _ := a.group.Do(username, func() (interface{}, error) {
		var u models.Users
		if err := a.db.Select("id", "username").
			Where("username = ?", username).
			First(&u).Error; err != nil {
			return models.Users{}, err
		}
		a.cache.Add(username, u)
		return u, nil
	})
	if err != nil {
		return models.Users{}, err
	}
	return v.(models.Users), nil
}

func (a *Authenticator) isRevoked(token string) bool {
	if a.rdb == nil {
		return false
	}
	n, err := a.rdb.Exists(revokedKeyPrefix + tokenDigest(token)).Result()
	return err == nil && n > 0
}

func tokenDigest(token string) string {
	token = strings.TrimSpace(token)
	if strings.HasPrefix(strings.ToLower(token), "bearer ") {
		token = strings.TrimSpace(token[7:])
	}
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
