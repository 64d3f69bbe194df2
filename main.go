package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Abhishek83gupta/Lingua/config"
	"github.com/Abhishek83gupta/Lingua/controllers"
	_ "github.com/Abhishek83gupta/Lingua/docs"
	"github.com/Abhishek83gupta/Lingua/log"
	"github.com/Abhishek83gupta/Lingua/middlewares"
	"github.com/Abhishek83gupta/Lingua/router"
	"github.com/Abhishek83gupta/Lingua/stores"
	"github.com/Abhishek83gupta/Lingua/translator"
)

// @title       Lingua API
// @version     0.1.0
// @description AI translation service with per-user history
// @BasePath    /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	if err := log.Init(cfg.App.Prod); err != nil {
		panic(err)
	}
	defer log.Sync()

	if cfg.App.Prod {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		log.L().Fatal("database init failed", zap.Error(err))
	}
	rdb, err := config.InitRedis(cfg)
	if err != nil {
		// Redis only backs the logout denylist; run without it rather
		// than refuse to start.
		log.L().Warn("redis unavailable, token revocation disabled", zap.Error(err))
		rdb = nil
	}

	ai := translator.NewClient(
		cfg.Translator.BaseURL,
		cfg.Translator.ApiKey,
		cfg.Translator.Model,
		cfg.TranslatorTimeout(),
	)

	authn := middlewares.NewAuthenticator(db, rdb, cfg.Jwt.Secret)
	authCtrl := controllers.NewAuthController(db, authn, cfg.Jwt.Secret, cfg.JwtTTL())
	transCtrl := controllers.NewTranslateController(ai, stores.NewHistoryStore(db))

	r := router.SetupRouter(authn, authCtrl, transCtrl)

	addr := cfg.ListenAddr()
	log.L().Info("server starting", zap.String("addr", addr), zap.String("name", cfg.App.Name))
	if err := r.Run(addr); err != nil {
		log.L().Fatal("server exited", zap.Error(err))
	}
}
