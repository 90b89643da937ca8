// Package router assembles the HTTP routes of the service.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "github.com/Komy007/CoinNexus/internal/feature/auth/transport/handler"
	markethandler "github.com/Komy007/CoinNexus/internal/feature/market/transport/handler"
	watchlisthandler "github.com/Komy007/CoinNexus/internal/feature/watchlist/transport/handler"
	"github.com/Komy007/CoinNexus/internal/platform/http/handler"
	jwtmw "github.com/Komy007/CoinNexus/internal/platform/jwt"
)

// NewRouter wires every handler into a gin engine. Coin search and the
// major-coin snapshot stay public so the landing page works without an
// account; everything touching a user's watchlist sits behind the JWT
// middleware.
func NewRouter(auth *authhandler.AuthHandler, market *markethandler.MarketHandler,
	watchlist *watchlisthandler.WatchlistHandler) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	r.GET("/healthz", handler.Health)

	api := r.Group("/api")
	{
		api.POST("/signup", auth.Signup)
		api.POST("/login", auth.Login)
		api.GET("/watchlist/search", market.Search)
		api.GET("/market/prices", market.Prices)
	}

	authed := r.Group("/api")
	authed.Use(jwtmw.AuthRequired())
	{
		authed.GET("/watchlist", watchlist.List)
		authed.POST("/watchlist", watchlist.Add)
		authed.GET("/watchlist/prices", watchlist.Prices)
		authed.PUT("/watchlist/:id", watchlist.Update)
		authed.DELETE("/watchlist/:id", watchlist.Remove)
		authed.POST("/logout", auth.Logout)
	}

	return r
}
