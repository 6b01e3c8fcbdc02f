package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// App agrupa toda la configuración del servicio (API y CLI).
type App struct {
	Port      string `env:"PORT" envDefault:"8080"`
	AppName   string `env:"APP_NAME" envDefault:"pet-adoption-dashboard"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	Dogs Dogs
	Dice Dice
}

// Dogs configura la fuente del dataset y el filtro.
type Dogs struct {
	Source     string `env:"DOGS_SOURCE" envDefault:"csv"` // csv | http | postgres | sqlite
	CSVPath    string `env:"DOGS_CSV_PATH" envDefault:"dog.csv"`
	CSVURL     string `env:"DOGS_CSV_URL"`
	DSN        string `env:"DB_DSN"`
	SQLitePath string `env:"DOGS_SQLITE_PATH" envDefault:"dogs.db"`
	Table      string `env:"DOGS_TABLE" envDefault:"adoptable_dogs"`
	Country    string `env:"DOGS_COUNTRY" envDefault:"US"`

	// Conserva el comportamiento histórico de "Other" (ignora edad/sexo).
	LegacyOtherFilter bool `env:"DOGS_LEGACY_OTHER_FILTER" envDefault:"false"`
	CacheSize         int  `env:"DOGS_CACHE_SIZE" envDefault:"256"`
}

// Dice limita el tamaño de una simulación.
type Dice struct {
	MaxSides  int `env:"DICE_MAX_SIDES" envDefault:"1000"`
	MaxRolls  int `env:"DICE_MAX_ROLLS" envDefault:"100000"`
	MaxTrials int `env:"DICE_MAX_TRIALS" envDefault:"100"`
	// Tope de rolls*trials por request.
	MaxPoints int `env:"DICE_MAX_POINTS" envDefault:"1000000"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parsea App desde el entorno.
func Load() (App, error) {
	var cfg App
	if err := ParseEnv(&cfg); err != nil {
		return App{}, err
	}
	return cfg, nil
}

// Addr devuelve la dirección de escucha (":8080").
func (a App) Addr() string {
	return ":" + a.Port
}

// Exitf escribe el error en stderr y termina con código 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
