package config

import (
	"errors"
	"flag"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	logger "github.com/sirupsen/logrus"
)

/*
RUN_ADDRESS or -a: address the service listens on;
API_ADDRESS or -r: base URL of the order API;
DATABASE_URI or -d: optional, keeps the virtual clock across restarts;
SECRET or -s: key the session tokens are signed with.
*/

var ErrSecretRequired = errors.New("SECRET is required")

type ServerConfig struct {
	RunAddress        string        `env:"RUN_ADDRESS"`
	APIAddress        string        `env:"API_ADDRESS"`
	DatabaseDSN       string        `env:"DATABASE_URI"`
	SecretKey         string        `env:"SECRET"`
	APIToken          string        `env:"API_TOKEN"`
	LogLevel          string        `env:"LOG_LEVEL" envDefault:"info"`
	Debounce          time.Duration `env:"DEBOUNCE" envDefault:"300ms"`
	FetchTimeout      time.Duration `env:"FETCH_TIMEOUT" envDefault:"15s"`
	PageSize          int           `env:"PAGE_SIZE" envDefault:"20"`
	MaxQuantity       int           `env:"MAX_QUANTITY" envDefault:"1000"`
	SLADays           int           `env:"SLA_DAYS" envDefault:"2"`
	SummaryWindowDays int           `env:"SUMMARY_WINDOW_DAYS" envDefault:"30"`
	DiscardStale      bool          `env:"DISCARD_STALE" envDefault:"false"`
	KafkaBrokers      []string      `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaTopic        string        `env:"KAFKA_TOPIC" envDefault:"order-transitions"`

	Secret []byte
}

func NewConfig() (*ServerConfig, error) {
	// a missing .env is fine, the environment wins anyway
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Warningf("Could not read .env: %s", err.Error())
	}
	return parse(os.Args[1:])
}

func parse(args []string) (*ServerConfig, error) {
	var params ServerConfig
	err := env.Parse(&params)
	if err != nil {
		return nil, err
	}

	var commandLineParams ServerConfig

	fs := flag.NewFlagSet("storeflow", flag.ContinueOnError)
	fs.StringVar(&commandLineParams.RunAddress, "a", "localhost:8080", "Base address to listen on")
	fs.StringVar(&commandLineParams.APIAddress, "r", "http://localhost:8000/api", "Order API address")
	fs.StringVar(&commandLineParams.DatabaseDSN, "d", "", "Database DSN")
	fs.StringVar(&commandLineParams.SecretKey, "s", "", "Session token secret")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if params.RunAddress == "" {
		params.RunAddress = commandLineParams.RunAddress
	}
	if params.APIAddress == "" {
		params.APIAddress = commandLineParams.APIAddress
	}
	if params.DatabaseDSN == "" {
		params.DatabaseDSN = commandLineParams.DatabaseDSN
	}
	if params.SecretKey == "" {
		params.SecretKey = commandLineParams.SecretKey
	}
	if params.SecretKey == "" {
		return nil, ErrSecretRequired
	}
	params.Secret = []byte(params.SecretKey)

	return &params, nil
}

// SLA is how long an order may wait in review.
func (c *ServerConfig) SLA() time.Duration {
	return time.Duration(c.SLADays) * 24 * time.Hour
}

func (c *ServerConfig) ConfigureLogger() {
	level, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		logger.Warningf("Unknown log level %q, using info", c.LogLevel)
		level = logger.InfoLevel
	}
	logger.SetLevel(level)
	logger.SetFormatter(&logger.TextFormatter{FullTimestamp: true})
}
