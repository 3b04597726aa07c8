package router

import (
	"plantapp/internal/application"
	"plantapp/internal/container"
	pginfra "plantapp/internal/infrastructure/postgres"
	handlers "plantapp/internal/interface/http"
	"plantapp/internal/router/modules"
)

// InitModules initializes all application modules and registers them with the
// router registry. Called once during startup.
func InitModules(r *Registry) {
	pool := container.GetPGPool()
	logger := container.GetLogger()
	cfg := container.GetConfig()
	clock := container.GetClock()

	userRepo := pginfra.NewUserRepository(pool)
	plantRepo := pginfra.NewPlantRepository(pool)
	userPlantRepo := pginfra.NewUserPlantRepository(pool)

	userSvc := application.NewUserService(userRepo, container.GetJWT(), container.GetRedis(), logger)
	gardenSvc := application.NewGardenService(plantRepo, userPlantRepo, container.GetCatalog(), clock, logger)
	wateringSvc := application.NewWateringService(userPlantRepo, clock, logger)
	reminderSvc := application.NewReminderService(userPlantRepo, container.GetNotifier(), logger)

	userHandler := handlers.NewUserHandler(userSvc, logger, cfg.CookieDomain, cfg.CookieSecure)
	gardenHandler := handlers.NewGardenHandler(gardenSvc, wateringSvc, logger)
	plantHandler := handlers.NewPlantHandler(gardenSvc, logger)
	catalogHandler := handlers.NewCatalogHandler(container.GetCatalog(), logger)
	reminderHandler := handlers.NewReminderHandler(reminderSvc, clock, logger)

	jwt := container.GetJWT()
	r.Add(modules.NewUserModule(userHandler, jwt))
	r.Add(modules.NewGardenModule(gardenHandler, jwt))
	r.Add(modules.NewPlantModule(plantHandler, jwt))
	r.Add(modules.NewCatalogModule(catalogHandler, jwt))
	r.Add(modules.NewReminderModule(reminderHandler, jwt))
	r.Add(modules.NewDebugModule())
}
