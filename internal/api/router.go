package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/taking/backoffice/docs"
	"github.com/taking/backoffice/internal/api/handler"
	"github.com/taking/backoffice/internal/api/middleware"
	"github.com/taking/backoffice/internal/core/service"
	"github.com/taking/backoffice/internal/core/token"
	"github.com/taking/backoffice/internal/infrastructure/config"
	mongodb "github.com/taking/backoffice/internal/infrastructure/db/mongo"
	"github.com/taking/backoffice/internal/pkg/password"
)

// NewRouter builds the Echo instance with every route and its access policy
// registered. The route table mirrors the security configuration the system
// runs with: auth, docs, health and metrics are public; /api/v1 requires an
// authenticated identity holding ADMIN or USER.
func NewRouter(db *mongo.Database, cfg *config.Config, log zerolog.Logger) (*echo.Echo, error) {
	codec, err := token.NewCodec(cfg.JWTSecret, cfg.TokenTTL())
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType},
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.PATCH, echo.DELETE, echo.OPTIONS},
	}))
	e.Use(echoprometheus.NewMiddleware("backoffice"))

	// --- Dependencies ---
	hasher := password.NewHasher(cfg.BcryptCost)
	userRepo := mongodb.NewUserRepository(db)
	roleRepo := mongodb.NewRoleRepository(db)
	orgRepo := mongodb.NewOrgRepository(db)

	authService := service.NewAuthService(userRepo, roleRepo, hasher, codec)
	userService := service.NewUserService(userRepo)
	orgService := service.NewOrgService(orgRepo)
	roleService := service.NewRoleService(roleRepo)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	orgHandler := handler.NewOrgHandler(orgService)
	roleHandler := handler.NewRoleHandler(roleService)

	// The gatekeeper runs on every route; it only aborts requests that
	// present an invalid token. Route-level policy decides the rest.
	e.Use(middleware.Auth(codec, userRepo, log))

	// --- Auth routes (public) ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/check/:userid", authHandler.CheckUserID)

	// --- Versioned API (authenticated, ADMIN or USER) ---
	v1 := e.Group("/api/v1", middleware.RequireRoles("ADMIN", "USER"))

	v1.GET("/users", userHandler.List)
	v1.GET("/users/:id", userHandler.Get)
	v1.PATCH("/users/:id", userHandler.Update)
	v1.DELETE("/users/:id", userHandler.Delete)

	v1.GET("/orgs", orgHandler.List)
	v1.POST("/orgs", orgHandler.Create)
	v1.GET("/orgs/:id", orgHandler.Get)
	v1.PATCH("/orgs/:id", orgHandler.Update)
	v1.DELETE("/orgs/:id", orgHandler.Delete)

	v1.GET("/roles", roleHandler.List)
	v1.POST("/roles", roleHandler.Create)
	v1.GET("/roles/:id", roleHandler.Get)
	v1.DELETE("/roles/:id", roleHandler.Delete)

	// --- Documentation (public) ---
	e.GET("/docs/*", echoswagger.WrapHandler)

	// --- Observability (public) ---
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db)
	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	return e, nil
}
