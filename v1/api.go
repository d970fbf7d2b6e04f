package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/interpark/realty-api/services"
	"github.com/interpark/realty-api/v1/hooks"
	"github.com/interpark/realty-api/v1/middleware"
	"go.uber.org/zap"
)

// Server is the REST API server instance
type Server struct {
	AccountsService   *services.AccountsService
	AuthTokensService *services.AuthTokensService
	RoomsService      *services.RoomsService
	MessagesService   *services.MessagesService
	PropertiesService *services.PropertiesService
	FavoritesService  *services.FavoritesService
	UploadsService    *services.UploadsService
	Logger            *zap.Logger
}

// Setup mounts the API routes on the given group
func (s *Server) Setup(g *gin.RouterGroup) {

	// Resolve the account for every request that carries a token
	g.Use(middleware.CheckAuth(s.AuthTokensService))

	s.setupAuthRoutes(g.Group("auth"))
	s.setupChatRoutes(g.Group("chat"))
	s.setupPropertyRoutes(g.Group("properties"))
	s.setupFavoritesRoutes(g.Group("favorites"))
	s.setupNotificationRoutes(g.Group("notifications"))

}

func (s *Server) setupAuthRoutes(g *gin.RouterGroup) {

	// Public auth routes
	g.POST("/register", hooks.AuthRegister(s.AccountsService, s.Logger))
	g.POST("/login", hooks.AuthLogin(s.AccountsService, s.AuthTokensService, s.Logger))
	g.POST("/logout", hooks.AuthLogout())
	g.GET("/agent-profile/:userId", hooks.AuthGetAgentProfile(s.AccountsService, s.Logger))
	g.GET("/client-profile/:userId", hooks.AuthGetClientProfile(s.AccountsService, s.Logger))

	// Routes that require a logged-in account
	auth := g.Group("", middleware.RequireLogin())
	auth.POST("/whoami", hooks.AuthWhoAmI(s.AuthTokensService, s.Logger))
	auth.PUT("/agent-profile/:userId", hooks.AuthUpdateAgentProfile(s.AccountsService, s.Logger))
	auth.POST("/upload-avatar/:userId", hooks.AuthUploadAvatar(s.AccountsService, s.UploadsService, s.Logger))

}

func (s *Server) setupChatRoutes(g *gin.RouterGroup) {
	g.POST("/create", hooks.ChatCreateRoom(s.RoomsService, s.Logger))
	g.POST("/send", hooks.ChatSendMessage(s.MessagesService, s.Logger))
	g.GET("/:chatRoomId/messages", hooks.ChatGetMessages(s.MessagesService, s.Logger))
	g.GET("/rooms/:userId", hooks.ChatRoomsForUser(s.RoomsService, s.Logger))
	g.DELETE("/rooms/:chatRoomId", hooks.ChatDeleteRoom(s.RoomsService, s.Logger))
}

func (s *Server) setupPropertyRoutes(g *gin.RouterGroup) {
	g.POST("/add", hooks.PropertyAdd(s.PropertiesService, s.Logger))
	g.GET("", hooks.PropertyList(s.PropertiesService, s.Logger))
	g.GET("/agent/:agentLandlordId", hooks.PropertyListByAgent(s.PropertiesService, s.Logger))
	g.POST("/upload-images", hooks.PropertyUploadImages(s.UploadsService, s.Logger))
	g.GET("/images", hooks.PropertyListImages(s.UploadsService, s.Logger))
}

func (s *Server) setupFavoritesRoutes(g *gin.RouterGroup) {
	g.POST("/add", hooks.FavoritesAdd(s.FavoritesService, s.Logger))
	g.DELETE("/remove", hooks.FavoritesRemove(s.FavoritesService, s.Logger))
	g.GET("/:userId", hooks.FavoritesList(s.FavoritesService, s.Logger))
}

func (s *Server) setupNotificationRoutes(g *gin.RouterGroup) {
	g.POST("/register", hooks.NotificationsRegisterToken(s.AccountsService, s.Logger))
}
