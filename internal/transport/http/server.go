package http

import (
	"time"

	"github.com/gin-gonic/gin"

	appsvc "portfolio-chat/internal/app"
	"portfolio-chat/internal/bootstrap"
	"portfolio-chat/internal/repository"
	"portfolio-chat/internal/transport/http/handler"
	"portfolio-chat/internal/transport/http/middleware"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	healthHandler := handler.NewHealthHandler(app)
	router.GET("/healthz", healthHandler.Check)

	adminUserRepo := repository.NewAdminUserRepository(app.MySQL)
	sessionRepo := repository.NewChatSessionRepository(app.MySQL)
	messageRepo := repository.NewChatMessageRepository(app.MySQL)
	contentRepo := repository.NewContentRepository(app.MySQL)

	authService := appsvc.NewAuthService(
		adminUserRepo,
		app.Config.Auth.JWTSecret,
		time.Duration(app.Config.Auth.JWTExpireMinute)*time.Minute,
	)
	chatService := appsvc.NewChatService(sessionRepo, messageRepo, app.Publisher, app.Transcript, app.Engine)
	ragService := appsvc.NewRAGService(app.Engine, app.Indexer)
	contentService := appsvc.NewContentService(contentRepo)

	authHandler := handler.NewAuthHandler(authService)
	chatHandler := handler.NewChatHandler(chatService)
	ragHandler := handler.NewRAGHandler(ragService)
	contentHandler := handler.NewContentHandler(contentService)

	v1 := router.Group("/api/v1")

	authGroup := v1.Group("/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.GET("/me", middleware.AuthJWT(app.Config.Auth.JWTSecret), authHandler.Me)

	chatGroup := v1.Group("/chat")
	chatGroup.POST("/sessions", chatHandler.CreateSession)
	chatGroup.POST("/sessions/:id/messages", chatHandler.SendMessage)
	chatGroup.GET("/sessions/:id/messages", chatHandler.GetTranscript)
	chatGroup.GET("/suggested-questions", chatHandler.SuggestedQuestions)

	contentGroup := v1.Group("/content")
	contentGroup.GET("/projects", contentHandler.ListProjects)
	contentGroup.GET("/skills", contentHandler.ListSkills)
	contentGroup.GET("/experiences", contentHandler.ListExperiences)
	contentGroup.GET("/personal-info", contentHandler.GetPersonalInfo)
	contentGroup.GET("/testimonials", contentHandler.ListTestimonials)
	contentGroup.GET("/faqs", contentHandler.ListFAQs)

	adminGroup := v1.Group("/admin")
	adminGroup.Use(middleware.AuthJWT(app.Config.Auth.JWTSecret))
	adminGroup.POST("/rag/search", ragHandler.Search)
	adminGroup.POST("/rag/reindex", ragHandler.Reindex)
	adminGroup.GET("/chat/sessions", chatHandler.ListActiveSessions)

	return router
}
