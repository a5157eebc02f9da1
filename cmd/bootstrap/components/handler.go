package components

import (
	"signage-sync/internal/handler"
	"signage-sync/internal/handler/api"
	"signage-sync/internal/handler/middleware"
	"signage-sync/internal/handler/ws"
	"signage-sync/internal/infra/broadcast"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewDisplayHandler,
		api.NewMenuHandler,
		api.NewPromotionHandler,
		api.NewStoreHandler,
		api.NewPlaylistHandler,
		func(hub *broadcast.Hub) *api.RealtimeHandler {
			return api.NewRealtimeHandler(hub)
		},
		ws.NewHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Display   *api.DisplayHandler
	Menu      *api.MenuHandler
	Promotion *api.PromotionHandler
	Store     *api.StoreHandler
	Playlist  *api.PlaylistHandler
	Realtime  *api.RealtimeHandler
	WS        *ws.Handler
}

func newHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Display:   p.Display,
		Menu:      p.Menu,
		Promotion: p.Promotion,
		Store:     p.Store,
		Playlist:  p.Playlist,
		Realtime:  p.Realtime,
		WS:        p.WS,
	}
}
