package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"sdi-showcase/internal/handler/api"
	reqdto "sdi-showcase/internal/handler/dto/request"
	"sdi-showcase/internal/handler/middleware"
	"sdi-showcase/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type Handlers struct {
	Listing   *api.ListingHandler
	Affiliate *api.AffiliateHandler
	Client    *api.ClientHandler
	Video     *api.VideoHandler
	Blob      *api.BlobHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers) {
	reqdto.RegisterValidators()
	engine.MaxMultipartMemory = cfg.Upload.MaxImageBytes
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(logger.GetSlogLogger()))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, logger.GetSlogLogger()))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/video"), []route{
			{Method: http.MethodGet, Path: "/embed", Handler: h.Video.Embed},
		})

		addRoutes(apiGroup.Group("/blobs"), []route{
			{Method: http.MethodGet, Path: "/:handle", Handler: h.Blob.Get},
		})

		listings := apiGroup.Group("/listings")
		{
			addRoutes(listings, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Listing.List},
				{Method: http.MethodPost, Path: "", Handler: h.Listing.Create},
				{Method: http.MethodGet, Path: "/draft", Handler: h.Listing.GetDraft},
				{Method: http.MethodPatch, Path: "/draft", Handler: h.Listing.PatchDraft},
				{Method: http.MethodDelete, Path: "/draft", Handler: h.Listing.ResetDraft},
				{Method: http.MethodPost, Path: "/draft/images", Handler: h.Listing.AttachImages},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Listing.Get},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Listing.Delete},
				{Method: http.MethodGet, Path: "/:id/export", Handler: h.Listing.Export},
			})
		}

		affiliates := apiGroup.Group("/affiliates")
		{
			addRoutes(affiliates, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Affiliate.List},
				{Method: http.MethodPost, Path: "", Handler: h.Affiliate.Create},
				{Method: http.MethodGet, Path: "/draft", Handler: h.Affiliate.GetDraft},
				{Method: http.MethodPatch, Path: "/draft", Handler: h.Affiliate.PatchDraft},
				{Method: http.MethodDelete, Path: "/draft", Handler: h.Affiliate.ResetDraft},
			})
		}

		clients := apiGroup.Group("/clients")
		{
			addRoutes(clients, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Client.List},
				{Method: http.MethodPost, Path: "", Handler: h.Client.Create},
				{Method: http.MethodGet, Path: "/export", Handler: h.Client.Export},
				{Method: http.MethodGet, Path: "/draft", Handler: h.Client.GetDraft},
				{Method: http.MethodPatch, Path: "/draft", Handler: h.Client.PatchDraft},
				{Method: http.MethodDelete, Path: "/draft", Handler: h.Client.ResetDraft},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}
