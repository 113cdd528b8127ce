package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/wildquiz/wildquiz-api/internal/api/handler"
	"github.com/wildquiz/wildquiz-api/internal/api/middleware"
	"github.com/wildquiz/wildquiz-api/internal/core/domain"
	"github.com/wildquiz/wildquiz-api/internal/core/service"
	"github.com/wildquiz/wildquiz-api/internal/infrastructure/config"
	mongodb "github.com/wildquiz/wildquiz-api/internal/infrastructure/db/mongo"
	redisdb "github.com/wildquiz/wildquiz-api/internal/infrastructure/db/redis"
	"github.com/wildquiz/wildquiz-api/internal/ratelimit"
	"github.com/wildquiz/wildquiz-api/internal/token"
)

// NewRouter builds the Echo instance with every route registered. The rate
// limiter is injected rather than created here so deployments can share
// counters through Redis and tests can swap in their own instance.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, limiter ratelimit.Limiter, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("wildquiz"))
	if len(cfg.CORSOrigins) > 0 {
		e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
			AllowOrigins: cfg.CORSOrigins,
			AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
		}))
	}

	// --- Dependencies ---
	accountRepo := mongodb.NewAccountRepository(db)
	animalRepo := mongodb.NewAnimalRepository(db)
	quizRepo := mongodb.NewQuizRepository(db)
	resultRepo := mongodb.NewResultRepository(db)
	badgeRepo := mongodb.NewBadgeRepository(db)
	leaderboard := redisdb.NewLeaderboard(rdb)

	issuer := token.NewIssuer(cfg.JWTSecret, cfg.TokenTTL)

	authService := service.NewAuthService(accountRepo, resultRepo, badgeRepo, leaderboard, issuer, log)
	animalService := service.NewAnimalService(animalRepo, log)
	quizService := service.NewQuizService(quizRepo, resultRepo, badgeRepo, leaderboard, log)

	authHandler := handler.NewAuthHandler(authService)
	animalHandler := handler.NewAnimalHandler(animalService)
	quizHandler := handler.NewQuizHandler(quizService)
	badgeHandler := handler.NewBadgeHandler(badgeRepo)
	leaderboardHandler := handler.NewLeaderboardHandler(leaderboard, accountRepo)

	authOnly := middleware.Auth(issuer, nil)
	adminOnly := []echo.MiddlewareFunc{
		middleware.Auth(issuer, func(c echo.Context, accountID string) (string, error) {
			account, err := accountRepo.FindByID(c.Request().Context(), accountID)
			if err != nil {
				return "", err
			}
			return account.Role, nil
		}),
		middleware.RBAC(domain.RoleAdmin),
	}

	limitLogin := middleware.RateLimit(limiter, "login", cfg.RateLimit.LoginPolicy(), log)
	limitRegister := middleware.RateLimit(limiter, "register", cfg.RateLimit.RegisterPolicy(), log)
	limitGeneral := middleware.RateLimit(limiter, "general", cfg.RateLimit.GeneralPolicy(), log)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register, limitRegister)
	e.POST("/auth/login", authHandler.Login, limitLogin)
	e.POST("/auth/logout", authHandler.Logout, authOnly)
	e.GET("/auth/verify", authHandler.Verify, authOnly)

	// --- Profile routes ---
	e.GET("/profile", authHandler.GetProfile, limitGeneral, authOnly)
	e.PUT("/profile", authHandler.UpdateProfile, limitGeneral, authOnly)
	e.PUT("/profile/password", authHandler.ChangePassword, limitGeneral, authOnly)
	e.DELETE("/profile", authHandler.DeleteAccount, limitGeneral, authOnly)
	e.GET("/profile/badges", badgeHandler.Mine, limitGeneral, authOnly)

	// --- Content routes ---
	e.GET("/animals", animalHandler.List, limitGeneral)
	e.GET("/animals/:id", animalHandler.Get, limitGeneral)
	e.GET("/quizzes", quizHandler.List, limitGeneral)
	e.GET("/quizzes/:id", quizHandler.Get, limitGeneral)
	e.POST("/quizzes/:id/submissions", quizHandler.Submit, limitGeneral, authOnly)
	e.GET("/badges", badgeHandler.Catalog, limitGeneral)
	e.GET("/leaderboard", leaderboardHandler.Top, limitGeneral)
	e.GET("/leaderboard/me", leaderboardHandler.Me, limitGeneral, authOnly)

	// --- Admin routes ---
	admin := e.Group("/admin", adminOnly...)
	admin.POST("/animals", animalHandler.Create)
	admin.PUT("/animals/:id", animalHandler.Update)
	admin.DELETE("/animals/:id", animalHandler.Delete)
	admin.POST("/quizzes", quizHandler.Create)
	admin.GET("/quizzes/:id", quizHandler.GetWithAnswers)
	admin.DELETE("/quizzes/:id", quizHandler.Delete)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
