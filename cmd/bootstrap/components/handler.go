package components

import (
	"sdi-showcase/internal/handler"
	"sdi-showcase/internal/handler/api"
	"sdi-showcase/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(cfg config.Config) config.UploadConfig { return cfg.Upload },
		api.NewListingHandler,
		api.NewAffiliateHandler,
		api.NewClientHandler,
		api.NewVideoHandler,
		api.NewBlobHandler,
		func(l *api.ListingHandler, a *api.AffiliateHandler, c *api.ClientHandler, v *api.VideoHandler, b *api.BlobHandler) handler.Handlers {
			return handler.Handlers{Listing: l, Affiliate: a, Client: c, Video: v, Blob: b}
		},
	),
	fx.Invoke(handler.NewRouter),
)
