package bootstrap

import (
	"database/sql"
	"time"

	"cloud.google.com/go/firestore"
	fbauth "firebase.google.com/go/v4/auth"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/prajwalpc099d/ProjectVault/config"
	httpapi "github.com/prajwalpc099d/ProjectVault/internal/api/http"
	apimiddleware "github.com/prajwalpc099d/ProjectVault/internal/api/http/middleware"
	authhttp "github.com/prajwalpc099d/ProjectVault/internal/auth/http"
	authmiddleware "github.com/prajwalpc099d/ProjectVault/internal/auth/middleware"
	authrepo "github.com/prajwalpc099d/ProjectVault/internal/auth/repository"
	authservice "github.com/prajwalpc099d/ProjectVault/internal/auth/service"
	interactionshttp "github.com/prajwalpc099d/ProjectVault/internal/interactions/http"
	interactionsrepo "github.com/prajwalpc099d/ProjectVault/internal/interactions/repository"
	interactionsservice "github.com/prajwalpc099d/ProjectVault/internal/interactions/service"
	notificationshttp "github.com/prajwalpc099d/ProjectVault/internal/notifications/http"
	notificationsrepo "github.com/prajwalpc099d/ProjectVault/internal/notifications/repository"
	notificationsservice "github.com/prajwalpc099d/ProjectVault/internal/notifications/service"
	projectshttp "github.com/prajwalpc099d/ProjectVault/internal/projects/http"
	projectsrepo "github.com/prajwalpc099d/ProjectVault/internal/projects/repository"
	projectsservice "github.com/prajwalpc099d/ProjectVault/internal/projects/service"
	recshttp "github.com/prajwalpc099d/ProjectVault/internal/recommendations/http"
	recsrepo "github.com/prajwalpc099d/ProjectVault/internal/recommendations/repository"
	recsservice "github.com/prajwalpc099d/ProjectVault/internal/recommendations/service"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	AuthClient  *fbauth.Client
	Firestore   *firestore.Client
	DB          *sql.DB
	Redis       *redis.Client
	Recs        config.RecommendationConfig
	Log         *zap.Logger
}

// BuildRouter wires repositories, services, and handlers onto a gin engine.
// The recommendation service is returned alongside the engine so the cron
// refresher can share the same instance.
func BuildRouter(dep RouterDeps) (*gin.Engine, *recsservice.Service) {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-Id"},
		ExposeHeaders:    []string{"X-Request-Id"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB, dep.Redis)
	healthHandler.RegisterRoutes(r)

	// Repositories.
	userRepo := authrepo.NewUserRepository(dep.Firestore)
	notifRepo := notificationsrepo.NewRepo(dep.Firestore)
	projectRepo := projectsrepo.NewRepo(dep.Firestore)
	feedbackRepo := projectsrepo.NewFeedbackRepo(dep.Firestore)
	interactionRepo := interactionsrepo.NewRepo(dep.Firestore)
	eventRepo := interactionsrepo.NewEventRepository(dep.DB)
	cacheRepo := recsrepo.NewCacheRepo(dep.Redis, dep.Recs.CacheRetention)

	// Services.
	notifSvc := notificationsservice.New(notifRepo, userRepo, dep.Log)
	authSvc := authservice.NewAuthService(userRepo, notifSvc, dep.Log)
	projectSvc := projectsservice.NewProjectService(projectRepo, feedbackRepo, notifSvc, dep.Log)
	interactionSvc := interactionsservice.New(interactionRepo, projectRepo, eventRepo, notifSvc, dep.Log)
	recSvc := recsservice.New(interactionRepo, projectRepo, cacheRepo, dep.Recs.Limit, dep.Recs.FreshFor, dep.Log)

	api := r.Group("/api/v1")
	api.Use(apimiddleware.RequestIDMiddleware(dep.Log))

	api.Use(authmiddleware.FirebaseAuthMiddleware(dep.AuthClient))
	api.Use(authmiddleware.WithRole(userRepo))

	authGroup := api.Group("/auth")
	adminGroup := api.Group("/admin")
	authhttp.New(authSvc).Register(authGroup, adminGroup)

	projectsGroup := api.Group("/projects")
	projectshttp.New(projectSvc).Register(projectsGroup)

	interactionsHandler := interactionshttp.New(interactionSvc)
	interactionsHandler.Register(projectsGroup)
	interactionsHandler.RegisterAdmin(adminGroup)

	recsGroup := api.Group("/recommendations")
	recsGroup.Use(apimiddleware.RateLimitMiddleware(5, 10))
	recshttp.New(recSvc).Register(recsGroup)

	notifGroup := api.Group("/notifications")
	notificationshttp.New(notifSvc).Register(notifGroup)

	return r, recSvc
}
