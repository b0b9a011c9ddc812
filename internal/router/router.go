package router

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "star-dog-walker/docs"
	mem "star-dog-walker/internal/adapters/storage/memory"
	pg "star-dog-walker/internal/adapters/storage/postgres"
	"star-dog-walker/internal/adapters/auth/tokens"
	"star-dog-walker/internal/adapters/weather"
	"star-dog-walker/internal/domain/dogs"
	"star-dog-walker/internal/domain/notifications"
	"star-dog-walker/internal/domain/users"
	"star-dog-walker/internal/domain/walks"
	"star-dog-walker/internal/middleware"
	"star-dog-walker/internal/platform/logger"
	weatherport "star-dog-walker/internal/ports/weather"
)

// El secret default es solo para dev; en deploy va por JWT_SECRET.
const devJWTSecret = "your-secret-key-change-in-production"

type Options struct {
	// Opcional: si viene nil se construye desde JWT_SECRET (o el
	// default de dev).
	Tokens *tokens.Manager

	// Opcional: si viene, usa Postgres. Si no, intenta DB_DSN por env
	// y cae a in-memory.
	DB *sql.DB

	Log logger.Logger

	// Walker asignado a las reservas hechas por owners. Default "2"
	// (o DEFAULT_WALKER_ID por env).
	DefaultWalkerID string

	// Opcional: proveedor de clima para autocompletar el journal.
	// Si es nil se intenta WEATHER_BASE_URL/WEATHER_API_KEY por env.
	Weather weatherport.Reporter

	// Carga el dataset de demo (solo tiene sentido en modo in-memory).
	SeedDemo bool
}

func NewRouter(opts Options) http.Handler {
	log := opts.Log
	if log == nil {
		log = logger.NewFromEnv()
	}

	tm := opts.Tokens
	if tm == nil {
		secret := os.Getenv("JWT_SECRET")
		if secret == "" {
			secret = devJWTSecret
			log.Warn("JWT_SECRET not set, using dev secret", nil)
		}
		ttl := tokens.DefaultTTL
		if v := os.Getenv("TOKEN_TTL"); v != "" {
			if parsed, err := time.ParseDuration(v); err == nil {
				ttl = parsed
			} else {
				log.Warn("invalid TOKEN_TTL, using default", map[string]any{"value": v})
			}
		}
		var err error
		tm, err = tokens.NewManager(secret, ttl)
		if err != nil {
			// Solo alcanzable con secret vacío, que ya descartamos.
			panic(err)
		}
	}

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err != nil {
				log.Error("postgres unavailable, falling back to memory", map[string]any{"error": err.Error()})
			} else {
				db = opened
			}
		}
	}

	var (
		usersRepo  users.Repository
		dogsRepo   dogs.Repository
		walksRepo  walks.Repository
		notifsRepo notifications.Repository
	)
	if db != nil {
		usersRepo = pg.NewUsersRepo(db)
		dogsRepo = pg.NewDogsRepo(db)
		walksRepo = pg.NewWalksRepo(db)
		notifsRepo = pg.NewNotificationsRepo(db)
		log.Info("storage: postgres", nil)
	} else {
		usersRepo = mem.NewUserRepo()
		dogsRepo = mem.NewDogRepo()
		walksRepo = mem.NewWalkRepo()
		notifsRepo = mem.NewNotificationRepo()
		log.Info("storage: in-memory", nil)

		if opts.SeedDemo {
			if err := mem.SeedDemo(context.Background(), usersRepo, dogsRepo, walksRepo, notifsRepo); err != nil {
				log.Error("demo seed failed", map[string]any{"error": err.Error()})
			}
		}
	}

	defaultWalkerID := opts.DefaultWalkerID
	if defaultWalkerID == "" {
		defaultWalkerID = os.Getenv("DEFAULT_WALKER_ID")
	}
	if defaultWalkerID == "" {
		defaultWalkerID = "2"
	}

	weatherReporter := opts.Weather
	if weatherReporter == nil {
		if baseURL := os.Getenv("WEATHER_BASE_URL"); baseURL != "" {
			client, err := weather.NewClient(weather.Config{
				BaseURL: baseURL,
				APIKey:  os.Getenv("WEATHER_API_KEY"),
				Timeout: 5 * time.Second,
			})
			if err != nil {
				log.Warn("weather client disabled", map[string]any{"error": err.Error()})
			} else {
				weatherReporter = weather.NewReporter(client)
			}
		}
	}

	// Services por módulo
	usersSvc := users.NewService(usersRepo)
	dogsSvc := dogs.NewService(dogsRepo)
	walksSvc := walks.NewService(walksRepo)
	notifsSvc := notifications.NewService(notifsRepo)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(tm, usersSvc))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler())

	// Rutas por módulo
	users.RegisterRoutes(r, usersSvc, tm)
	dogs.RegisterRoutes(r, dogsSvc)
	walks.RegisterRoutes(r, walksSvc, dogsSvc, notifsSvc, walks.Options{
		DefaultWalkerID: defaultWalkerID,
		Weather:         weatherReporter,
	})
	notifications.RegisterRoutes(r, notifsSvc)

	return r
}
