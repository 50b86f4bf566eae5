package di

import (
	"context"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"crawl-server/api"
	"crawl-server/api/google"
	"crawl-server/config"
	"crawl-server/dao/redis"
	"crawl-server/db"
	"crawl-server/logger"
	"crawl-server/server"
	"crawl-server/server/handlers"
	services "crawl-server/service"
)

// Container holds all application dependencies.
type Container struct {
	Config              *config.Config
	RedisClient         db.RedisClient
	RateLimitDao        *redis.RedisRateLimitDAO
	GoogleMapsAPI       google.GoogleMapsAPI
	VenueSearchService  *services.VenueSearchService
	VenueDetailsService *services.VenueDetailsService
	RouteService        *services.RouteService
	GeocodeService      *services.GeocodeService
	BookingService      *services.BookingService
	VenueHandler        *handlers.VenueHandler
	DirectionsHandler   *handlers.DirectionsHandler
	GeocodeHandler      *handlers.GeocodeHandler
	BookingHandler      *handlers.BookingHandler
	HealthHandler       *handlers.HealthHandler
	Middleware          *server.Middleware
	MuxRouter           *mux.Router
	Router              *server.Router
	CrawlHttpServer     *server.CrawlHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(cfg *config.Config) *Container {
	logger.Info("initializing container",
		zap.String("env", cfg.Env),
		zap.Bool("upstream_available", cfg.UpstreamAvailable()),
		zap.Bool("rate_limit_enabled", cfg.RateLimitEnabled()))

	mapsApi := newGoogleMapsAPI(cfg)

	// Redis backs the rate limiter only; running without it is allowed
	var redisClient db.RedisClient
	var rateLimitDao *redis.RedisRateLimitDAO
	var rateLimiter server.RateLimiter
	if cfg.RateLimitEnabled() {
		client, err := db.NewRedisClientFromOptions(context.Background(), cfg.RedisAddress, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			logger.Warn("rate limiting disabled, redis unreachable", zap.Error(err))
		} else {
			redisClient = client
			rateLimitDao = redis.NewRedisRateLimitDAO(client, cfg.RateLimitPerMinute)
			rateLimiter = rateLimitDao
		}
	}

	// Initialize service layer
	venueSearchService := services.NewVenueSearchService(mapsApi)
	venueDetailsService := services.NewVenueDetailsService(mapsApi)
	routeService := services.NewRouteService(mapsApi)
	geocodeService := services.NewGeocodeService(mapsApi)
	bookingService := services.NewBookingService()

	// Initialize handlers
	venueHandler := handlers.NewVenueHandler(venueSearchService, venueDetailsService)
	directionsHandler := handlers.NewDirectionsHandler(routeService)
	geocodeHandler := handlers.NewGeocodeHandler(geocodeService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	healthHandler := handlers.NewHealthHandler(cfg.UpstreamAvailable())

	middleware := server.NewMiddleware(cfg.UpstreamAvailable(), cfg.CORSAllowedOrigin, cfg.TrustedProxies, rateLimiter)

	// Initialize mux router
	muxRouter := mux.NewRouter()

	// Initialize router
	router := server.NewRouter(venueHandler, directionsHandler, geocodeHandler, bookingHandler, healthHandler, middleware, muxRouter)

	crawlHttpServer := server.NewCrawlHttpServer(router, muxRouter, cfg.Addr())

	return &Container{
		Config:              cfg,
		RedisClient:         redisClient,
		RateLimitDao:        rateLimitDao,
		GoogleMapsAPI:       mapsApi,
		VenueSearchService:  venueSearchService,
		VenueDetailsService: venueDetailsService,
		RouteService:        routeService,
		GeocodeService:      geocodeService,
		BookingService:      bookingService,
		VenueHandler:        venueHandler,
		DirectionsHandler:   directionsHandler,
		GeocodeHandler:      geocodeHandler,
		BookingHandler:      bookingHandler,
		HealthHandler:       healthHandler,
		Middleware:          middleware,
		MuxRouter:           muxRouter,
		Router:              router,
		CrawlHttpServer:     crawlHttpServer,
	}
}

// Close releases connections held by the container.
func (c *Container) Close() {
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			logger.Warn("failed to close redis client", zap.Error(err))
		}
	}
}

func newGoogleMapsAPI(cfg *config.Config) google.GoogleMapsAPI {
	if cfg.Env != config.DEFAULT_ENV {
		logger.Info("using mock google maps api")
		return google.NewGoogleMapsApiClientMock(config.GetResourcePath(""))
	}

	logger.Info("using prod google maps api")
	client := google.NewGoogleMapsApiClient(
		api.NewHTTPClientWithTimeout(cfg.GeocodingBaseURL, cfg.UpstreamTimeout),
		api.NewHTTPClientWithTimeout(cfg.PlacesBaseURL, cfg.UpstreamTimeout),
		api.NewHTTPClientWithTimeout(cfg.RoutesBaseURL, cfg.UpstreamTimeout),
	)
	client.SetCredentials(cfg.GoogleMapsAPIKey)
	return client
}
