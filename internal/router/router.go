package router

import (
	"net/http"

	_ "pet-adoption-dashboard/docs"
	"pet-adoption-dashboard/internal/domain/dice"
	"pet-adoption-dashboard/internal/domain/dogs"
	"pet-adoption-dashboard/internal/middleware"
	"pet-adoption-dashboard/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Dogs   *dogs.Service
	Dice   *dice.Service
	Logger logger.Logger // puede ser nil
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Rutas por módulo
	if opts.Dogs != nil {
		dogs.RegisterRoutes(r, opts.Dogs)
	}
	if opts.Dice != nil {
		dice.RegisterRoutes(r, opts.Dice)
	}

	return r
}
