package router

import (
	"github.com/ozancz/sozluk/internal/application"
	"github.com/ozancz/sozluk/internal/container"
	pginfra "github.com/ozancz/sozluk/internal/infrastructure/postgres"
	handlers "github.com/ozancz/sozluk/internal/interface/http"
	"github.com/ozancz/sozluk/internal/router/modules"
)

// InitModules builds every feature module from the container singletons and
// registers it. Called once during startup, after the container is populated.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()
	jwt := container.GetJWT()

	var relay application.Relay
	if hub := container.GetHub(); hub != nil {
		relay = hub
	}

	userRepo := pginfra.NewUserRepository(pool)
	topicRepo := pginfra.NewTopicRepository(pool)
	entryRepo := pginfra.NewEntryRepository(pool)
	commentRepo := pginfra.NewCommentRepository(pool)

	userSvc := application.NewUserService(userRepo, jwt, container.GetRedis(), logger, container.GetRabbitPub(), container.GetGCS(), cfg.GCSBucket)
	topicSvc := application.NewTopicService(topicRepo, relay, logger, container.GetES(), cfg.ESTopicsIndex)
	entrySvc := application.NewEntryService(entryRepo, topicRepo, relay, logger)
	commentSvc := application.NewCommentService(commentRepo, entryRepo, relay, logger)

	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, logger, cfg.CookieDomain, cfg.CookieSecure), jwt))
	r.Add(modules.NewTopicModule(handlers.NewTopicHandler(topicSvc, logger), jwt))
	r.Add(modules.NewEntryModule(handlers.NewEntryHandler(entrySvc, logger), jwt))
	r.Add(modules.NewCommentModule(handlers.NewCommentHandler(commentSvc, logger), jwt))

	if hub := container.GetHub(); hub != nil {
		r.Add(modules.NewRealtimeModule(handlers.NewWSHandler(hub, jwt, logger, cfg.CORSOrigins())))
	}
}
