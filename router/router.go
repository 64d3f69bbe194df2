package router

import (
	"github.com/gin-gonic/gin"

	"github.com/Abhishek83gupta/Lingua/controllers"
	"github.com/Abhishek83gupta/Lingua/middlewares"
)

// SetupRouter wires middlewares and routes. Translation itself is open to
// guests (their results are just not persisted); history and favorites
// require a login.
func SetupRouter(authn *middlewares.Authenticator, authCtrl *controllers.AuthController, transCtrl *controllers.TranslateController) *gin.Engine {
	r := gin.New()
	r.Use(middlewares.GinLogger(), middlewares.GinRecovery())
	mountSwagger(r)

	auth := r.Group("/api/auth")
	{
		auth.POST("/register", authCtrl.Register)
		auth.POST("/login", authCtrl.Login)
		auth.POST("/logout", authCtrl.Logout)
	}

	r.POST("/api/translate", authn.OptionalAuth(), transCtrl.TranslateText)
	r.GET("/api/translate/languages", transCtrl.GetSupportedLanguages)

	api := r.Group("/api", authn.AuthMiddleWare())
	{
		api.GET("/me", authCtrl.Me)
		api.GET("/translate/history", transCtrl.GetTranslationHistory)
		api.PATCH("/translate/history/:id/favorite", transCtrl.ToggleFavorite)
	}

	return r
}
