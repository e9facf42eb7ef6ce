package routes

import (
	"team-docs-backend/internal/api/handlers"
	"team-docs-backend/internal/api/middleware"
	"team-docs-backend/internal/config"
	"team-docs-backend/internal/events"
	"team-docs-backend/internal/repository"
	"team-docs-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, hub *events.Hub) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	teamRepo := repository.NewTeamRepository(db)
	memberRepo := repository.NewTeamMemberRepository(db)
	documentRepo := repository.NewDocumentRepository(db)
	versionRepo := repository.NewDocumentVersionRepository(db)

	// Initialize services
	teamService := service.NewTeamService(teamRepo, memberRepo, documentRepo, cfg, validator)
	memberService := service.NewMemberService(teamRepo, memberRepo, validator)
	documentService := service.NewDocumentService(documentRepo, versionRepo, teamRepo, validator, hub)
	versionService := service.NewVersionService(versionRepo, documentRepo, validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	teamHandler := handlers.NewTeamHandler(teamService)
	memberHandler := handlers.NewMemberHandler(memberService)
	documentHandler := handlers.NewDocumentHandler(documentService)
	versionHandler := handlers.NewVersionHandler(versionService)
	wsHandler := handlers.NewWSHandler(hub)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Websocket event channel
	router.GET("/ws", wsHandler.Connect)

	api := router.Group("/api")
	{
		api.GET("/health", healthHandler.Health)

		// Team routes
		teams := api.Group("/teams")
		{
			teams.GET("", teamHandler.ListTeams)
			teams.POST("", teamHandler.CreateTeam)
			teams.GET("/:id", teamHandler.GetTeam)
			teams.GET("/:id/detail", teamHandler.GetTeamDetail)
			teams.PUT("/:id", teamHandler.UpdateTeam)
			teams.DELETE("/:id", teamHandler.DeleteTeam)
			teams.GET("/:id/documents", documentHandler.ListTeamDocuments)

			// Membership routes
			teams.POST("/:id/members", memberHandler.AddMember)
			teams.DELETE("/:id/members/:userId", memberHandler.RemoveMember)
			teams.PUT("/:id/members/:userId/role", memberHandler.UpdateMemberRole)
		}

		// Document routes; /search must precede /:id
		documents := api.Group("/documents")
		{
			documents.GET("", documentHandler.ListDocuments)
			documents.POST("", documentHandler.CreateDocument)
			documents.GET("/search", documentHandler.SearchDocuments)
			documents.GET("/:id", documentHandler.GetDocument)
			documents.PUT("/:id", documentHandler.UpdateDocument)
			documents.DELETE("/:id", documentHandler.ArchiveDocument)
			documents.POST("/:id/relations", documentHandler.AddRelation)
			documents.GET("/:id/versions", documentHandler.ListVersions)
			documents.GET("/:id/history", versionHandler.GetHistory)
		}

		// Version ledger routes
		versions := api.Group("/versions")
		{
			versions.POST("/:id/approvers", versionHandler.AddApprover)
			versions.POST("/:id/approve", versionHandler.Approve)
			versions.POST("/:id/reject", versionHandler.Reject)
		}
	}

	return router
}
