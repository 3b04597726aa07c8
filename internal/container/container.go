package container

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"plantapp/config"
	"plantapp/internal/application"
	"plantapp/internal/infrastructure/catalog"
	"plantapp/pkg/helpers"
)

// app-level container to share constructed components across packages
// Router can auto-wire modules from these singletons.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	pgPool      *pgxpool.Pool
	redisClient *redis.Client
	clock       clockwork.Clock

	jwtManager *helpers.JWTManager

	rabbitPub     *helpers.RabbitPublisher
	catalogClient *catalog.Client
	notifier      application.Notifier
)

func SetConfig(c *config.Config)   { cfg = c }
func GetConfig() *config.Config    { return cfg }
func SetLogger(l *logrus.Logger)   { logger = l }
func GetLogger() *logrus.Logger    { return logger }
func SetPGPool(p *pgxpool.Pool)    { pgPool = p }
func GetPGPool() *pgxpool.Pool     { return pgPool }
func SetRedis(r *redis.Client)     { redisClient = r }
func GetRedis() *redis.Client      { return redisClient }
func SetJWT(m *helpers.JWTManager) { jwtManager = m }
func GetJWT() *helpers.JWTManager  { return jwtManager }

func SetClock(c clockwork.Clock) { clock = c }
func GetClock() clockwork.Clock {
	if clock != nil {
		return clock
	}
	return clockwork.NewRealClock()
}

func SetRabbitPub(p *helpers.RabbitPublisher) { rabbitPub = p }
func GetRabbitPub() *helpers.RabbitPublisher  { return rabbitPub }
func SetCatalog(c *catalog.Client)            { catalogClient = c }
func GetCatalog() *catalog.Client             { return catalogClient }
func SetNotifier(n application.Notifier)      { notifier = n }
func GetNotifier() application.Notifier       { return notifier }
