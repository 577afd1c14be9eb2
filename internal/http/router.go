// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, and route handlers. It owns the per-route validation chains:
// each route declares its allowed content type, its body schema, and the
// id-format/existence/authentication stages it needs, in that order. The
// first failing stage short-circuits into the central error handler.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	_ "github.com/knazaryan/go-books-backend/docs"
	"github.com/knazaryan/go-books-backend/internal/config"
	"github.com/knazaryan/go-books-backend/internal/domain"
	"github.com/knazaryan/go-books-backend/internal/http/handlers"
	"github.com/knazaryan/go-books-backend/internal/http/middleware"
	"github.com/knazaryan/go-books-backend/internal/repo"
	"github.com/knazaryan/go-books-backend/internal/services"
	"github.com/knazaryan/go-books-backend/internal/validate"
)

// bookRepoShim adapts the repository free functions to the services.BookRepo
// interface. This keeps services decoupled from the concrete repo package
// while reusing the existing functions.
type bookRepoShim struct{}

func (bookRepoShim) CreateBook(ctx context.Context, db *gorm.DB, data domain.BookData, creatorID *string) (*domain.Book, error) {
	return repo.CreateBook(ctx, db, data, creatorID)
}

func (bookRepoShim) ListBooks(ctx context.Context, db *gorm.DB) ([]domain.Book, error) {
	return repo.ListBooks(ctx, db)
}

func (bookRepoShim) GetBook(ctx context.Context, db *gorm.DB, id string) (*domain.Book, error) {
	return repo.GetBook(ctx, db, id)
}

func (bookRepoShim) SaveBook(ctx context.Context, db *gorm.DB, b *domain.Book) error {
	return repo.SaveBook(ctx, db, b)
}

func (bookRepoShim) DeleteBook(ctx context.Context, db *gorm.DB, b *domain.Book) error {
	return repo.DeleteBook(ctx, db, b)
}

// userRepoShim adapts the user repository functions to services.UserRepo.
type userRepoShim struct{}

func (userRepoShim) CreateUser(ctx context.Context, db *gorm.DB, u *domain.User) error {
	return repo.CreateUser(ctx, db, u)
}

func (userRepoShim) GetUserByUsername(ctx context.Context, db *gorm.DB, username string) (*domain.User, error) {
	return repo.GetUserByUsername(ctx, db, username)
}

func (userRepoShim) GetUserByAPIKey(ctx context.Context, db *gorm.DB, key string) (*domain.User, error) {
	return repo.GetUserByAPIKey(ctx, db, key)
}

func (userRepoShim) SaveUser(ctx context.Context, db *gorm.DB, u *domain.User) error {
	return repo.SaveUser(ctx, db, u)
}

func (userRepoShim) DeleteUser(ctx context.Context, db *gorm.DB, username string) error {
	return repo.DeleteUser(ctx, db, username)
}

// Route body schemas. The field sets are closed: any undeclared field fails
// validation even when all declared fields are fine.
var (
	bookCreateSchema = validate.NewSchema(
		validate.String("name", validate.NonEmpty),
		validate.String("author", validate.NonEmpty),
		validate.String("genre", validate.NonEmpty),
		validate.Number("publishYear", validate.PositiveNumber),
		validate.OptionalString("description"),
	)

	bookPatchSchema = validate.NewSchema(
		validate.OptionalString("name", validate.NonEmpty),
		validate.OptionalString("author", validate.NonEmpty),
		validate.OptionalString("genre", validate.NonEmpty),
		validate.OptionalNumber("publishYear", validate.PositiveNumber),
		validate.OptionalString("description"),
	)

	credentialsSchema = validate.NewSchema(
		validate.String("username", validate.NonEmpty),
		validate.String("password", validate.NonEmpty),
	)

	registerSchema = validate.NewSchema(
		validate.String("username", validate.NonEmpty, validate.NoWhitespace, validate.MaxLen(64)),
		validate.String("password", validate.NonEmpty),
		validate.String("firstName", validate.NonEmpty),
		validate.String("lastName", validate.NonEmpty),
	)

	userPatchSchema = validate.NewSchema(
		validate.String("username", validate.NonEmpty),
		validate.String("password", validate.NonEmpty),
		validate.OptionalString("firstName", validate.NonEmpty),
		validate.OptionalString("lastName", validate.NonEmpty),
		validate.OptionalString("newPassword", validate.NonEmpty),
	)
)

// RegisterRoutes attaches all middleware and endpoints to the Gin engine.
//
// Middleware order:
//  1. OpenTelemetry tracing
//  2. RequestID (correlation id for logs and error responses)
//  3. Logger (structured access logs, request-scoped logger)
//  4. Recovery (panics become Internal envelopes)
//  5. Body size limit
//  6. Gzip, Metrics
//  7. CORS + security headers
//  8. ErrorHandler (terminal envelope rendering)
//  9. Rate limiter (per client IP, inside ErrorHandler so a throttled
//     request still answers with the error envelope)
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(limitBody(1 << 20))
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.Use(cors.New(corsConfig(cfg)))
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS: cfg.Security.EnableHSTS,
		HSTSMaxAge: cfg.Security.HSTSMaxAge,
	}))

	r.Use(handlers.ErrorHandler())

	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst)
	r.Use(rl.Handler())

	// Unmatched method/path combinations answer with the incorrect-address
	// envelope at 404.
	r.NoRoute(handlers.NoRoute)
	r.NoMethod(handlers.NoRoute)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	if cfg.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Dependency injection: services over repo shims.
	bookSvc := services.NewBookService(db, bookRepoShim{})
	userSvc := services.NewUserService(db, userRepoShim{}, cfg.BcryptCost)
	h := handlers.New(bookSvc, userSvc)

	jsonOnly := middleware.ContentType("application/json")
	noBody := middleware.ContentType(middleware.ContentTypeNone)

	books := r.Group("/api/books")
	{
		books.GET("",
			noBody,
			h.ListBooks)
		books.POST("",
			jsonOnly,
			middleware.ValidateBody(bookCreateSchema),
			middleware.APIKey(userSvc),
			h.CreateBook)
		books.GET("/:bookId",
			noBody,
			middleware.BookID(),
			middleware.RequireBook(bookSvc),
			h.GetBook)
		books.PATCH("/:bookId",
			jsonOnly,
			middleware.BookID(),
			middleware.RequireBook(bookSvc),
			middleware.ValidateBody(bookPatchSchema),
			h.PatchBook)
		books.DELETE("/:bookId",
			noBody,
			middleware.BookID(),
			middleware.RequireBook(bookSvc),
			h.DeleteBook)
	}

	users := r.Group("/users")
	{
		users.POST("/credentials",
			jsonOnly,
			middleware.ValidateBody(credentialsSchema),
			middleware.Authenticate(userSvc),
			h.Credentials)
		users.POST("",
			jsonOnly,
			middleware.ValidateBody(registerSchema),
			h.Register)
		users.PATCH("",
			jsonOnly,
			middleware.ValidateBody(userPatchSchema),
			middleware.Authenticate(userSvc),
			h.UpdateUser)
		users.DELETE("",
			jsonOnly,
			middleware.ValidateBody(credentialsSchema),
			middleware.Authenticate(userSvc),
			h.DeleteUser)
	}
}

// corsConfig builds the CORS posture: allow-all when no origins are
// configured, an explicit allowlist otherwise.
func corsConfig(cfg config.Config) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-API-Key"},
		ExposeHeaders: []string{"X-Request-ID", "Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(cfg.CORS.AllowedOrigins) == 0 {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.CORS.AllowedOrigins
	}
	return c
}

// limitBody caps the request body size for all endpoints.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
