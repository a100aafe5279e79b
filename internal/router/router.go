package router

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	docs "github.com/madhannmady/Expense-tracker-application/api"
	"github.com/madhannmady/Expense-tracker-application/internal/controllers"
	"github.com/madhannmady/Expense-tracker-application/internal/controllers/healthz"
	"github.com/madhannmady/Expense-tracker-application/internal/httputil"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// This is set at build time, see Makefile.
var version = "0.0.0"

// Config sets up the router and all middlewares.
func Config() (*gin.Engine, error) {
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(MetricsMiddleware())
	r.NoMethod(func(c *gin.Context) {
		httputil.NewErrorString(c, http.StatusMethodNotAllowed, "This HTTP method is not allowed for the endpoint you called")
	})
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, l zerolog.Logger) zerolog.Logger {
			return l.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	// CORS settings
	allowOrigins, ok := os.LookupEnv("CORS_ALLOW_ORIGINS")
	if ok {
		log.Debug().Str("CORS Allowed Origins", allowOrigins).Msg("Router")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     strings.Fields(allowOrigins),
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PUT", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
			AllowCredentials: true,
		}))
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	log.Info().Str("version", version).Msg("Router")

	docs.SwaggerInfo.Title = "Expense Tracker"
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Description = "The backend for the expense tracker, a monthly budgeting and expense tracking application."

	return r, nil
}

// AttachRoutes attaches the API routes to the router group that is passed in.
// Separating this from Config() allows us to attach the routes to different
// paths for different use cases, e.g. in tests.
func AttachRoutes(group *gin.RouterGroup) {
	group.GET("", GetRoot)
	group.OPTIONS("", OptionsRoot)
	group.GET("/version", GetVersion)
	group.OPTIONS("/version", OptionsVersion)

	// pprof performance profiles
	enablePprof, ok := os.LookupEnv("ENABLE_PPROF")
	if ok && enablePprof == "true" {
		pprof.RouteRegister(group, "debug/pprof")
	}

	group.GET("/metrics", gin.WrapH(promhttp.Handler()))
	group.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	healthz.RegisterRoutes(group.Group("/healthz"))

	// API setup
	api := group.Group("/api")
	{
		api.GET("", GetAPI)
		api.OPTIONS("", OptionsAPI)
	}

	controllers.RegisterAuthRoutes(api.Group("/auth"), AuthRequired())

	protected := api.Group("", AuthRequired())
	controllers.RegisterRecordRoutes(protected.Group("/records"))
	controllers.RegisterBudgetRoutes(protected.Group("/budgets"))
	controllers.RegisterNotesRoutes(protected.Group("/notes"))
}

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Docs    string `json:"docs" example:"https://example.com/docs/index.html"` // Swagger API documentation
	Healthz string `json:"healthz" example:"https://example.com/healthz"`      // Health check endpoint
	Metrics string `json:"metrics" example:"https://example.com/metrics"`      // Endpoint returning Prometheus metrics
	Version string `json:"version" example:"https://example.com/version"`      // Endpoint returning the version of the backend
	API     string `json:"api" example:"https://example.com/api"`              // List endpoint for all API endpoints
}

// @Summary		API root
// @Description	Entrypoint for the API, listing all endpoints
// @Tags			General
// @Success		200	{object}	RootResponse
// @Router			/ [get]
func GetRoot(c *gin.Context) {
	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Docs:    "/docs/index.html",
			Healthz: "/healthz",
			Metrics: "/metrics",
			Version: "/version",
			API:     "/api",
		},
	})
}

type VersionResponse struct {
	Data VersionObject `json:"data"` // Data object for the version endpoint
}

type VersionObject struct {
	Version string `json:"version" example:"1.1.0"` // the running version of the backend
}

// @Summary		API version
// @Description	Returns the software version of the API
// @Tags			General
// @Success		200	{object}	VersionResponse
// @Router			/version [get]
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, VersionResponse{
		Data: VersionObject{
			Version: version,
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/ [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/version [options]
func OptionsVersion(c *gin.Context) {
	httputil.OptionsGet(c)
}

type APIResponse struct {
	Links APILinks `json:"links"`
}

type APILinks struct {
	Auth    string `json:"auth" example:"https://example.com/api/auth"`       // Registration, login and session info
	Records string `json:"records" example:"https://example.com/api/records"` // Monthly income and expense records
	Budgets string `json:"budgets" example:"https://example.com/api/budgets"` // Monthly budget allocations
	Notes   string `json:"notes" example:"https://example.com/api/notes"`     // Monthly notes and lending tracker
}

// @Summary		API endpoints
// @Description	Returns general information about the API
// @Tags			General
// @Success		200	{object}	APIResponse
// @Router			/api [get]
func GetAPI(c *gin.Context) {
	c.JSON(http.StatusOK, APIResponse{
		Links: APILinks{
			Auth:    "/api/auth",
			Records: "/api/records",
			Budgets: "/api/budgets",
			Notes:   "/api/notes",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/api [options]
func OptionsAPI(c *gin.Context) {
	httputil.OptionsGet(c)
}
