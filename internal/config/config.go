package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// TokenEnv is the environment variable holding the Planif-Neige credential.
const TokenEnv = "PLANIF_NEIGE_TOKEN"

const (
	DefaultGeobaseURL  = "https://donnees.montreal.ca/dataset/88493b16-220f-4709-b57b-1ea57c5ba405/resource/16f7fa0a-9ce6-4b29-a7fc-00842c593927/download/gbdouble.json"
	DefaultPlanifURL   = "https://servicesenligne2.ville.montreal.qc.ca/api/infoneige/InfoneigeWebService"
	DefaultPlanifNS    = "https://servicesenligne2.ville.montreal.qc.ca/api/infoneige/"
	DefaultUserAgent   = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	DefaultLookbackDay = 7
)

var (
	ErrMissingToken     = errors.New(TokenEnv + " is not set")
	ErrMissingURL       = errors.New("source url is required")
	ErrMissingOutput    = errors.New("output file is required")
	ErrMissingMetadata  = errors.New("metadata file is required")
	ErrInvalidLookback  = errors.New("lookback_days must be at least 1")
	ErrInvalidAMQPSetup = errors.New("notifier.rabbitmq requires exchange and routing_key")
)

type Config struct {
	HTTP        HTTPConfig        `yaml:"http"`
	Geobase     GeobaseConfig     `yaml:"geobase"`
	PlanifNeige PlanifNeigeConfig `yaml:"planif_neige"`
	Runner      RunnerConfig      `yaml:"runner"`
	Notifier    NotifierConfig    `yaml:"notifier"`
	LogLevel    string            `yaml:"log_level"`
}

type HTTPConfig struct {
	UserAgent string `yaml:"user_agent"`
}

type GeobaseConfig struct {
	URL        string        `yaml:"url"`
	OutputFile string        `yaml:"output_file"`
	Timeout    time.Duration `yaml:"timeout"`
}

type PlanifNeigeConfig struct {
	Endpoint     string        `yaml:"endpoint"`
	Namespace    string        `yaml:"namespace"`
	SOAPAction   string        `yaml:"soap_action"`
	Token        string        `yaml:"token"`
	OutputFile   string        `yaml:"output_file"`
	MetadataFile string        `yaml:"metadata_file"`
	Timeout      time.Duration `yaml:"timeout"`
	LookbackDays int           `yaml:"lookback_days"`
	StatusCodes  StatusCodes   `yaml:"status_codes"`
}

// StatusCodes are the values the Planif-Neige service returns in responseStatus.
type StatusCodes struct {
	OK            *int `yaml:"ok"`
	AccessDenied  *int `yaml:"access_denied"`
	InvalidAccess *int `yaml:"invalid_access"`
	InvalidDate   *int `yaml:"invalid_date"`
	RateLimited   *int `yaml:"rate_limited"`
	NoData        *int `yaml:"no_data"`
}

type RunnerConfig struct {
	Timeout time.Duration `yaml:"timeout"`
}

type NotifierConfig struct {
	RabbitMQ RabbitMQConfig `yaml:"rabbitmq"`
}

type RabbitMQConfig struct {
	URL        string `yaml:"url"`
	Exchange   string `yaml:"exchange"`
	RoutingKey string `yaml:"routing_key"`
	QueueName  string `yaml:"queue_name"`
}

// Enabled reports whether outcome notifications should be published.
func (r RabbitMQConfig) Enabled() bool {
	return r.URL != ""
}

// Load reads the YAML file at path, expanding ${VAR} references from the
// environment and a local .env file. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg.setDefaults()

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.HTTP.UserAgent == "" {
		c.HTTP.UserAgent = DefaultUserAgent
	}
	if c.Geobase.URL == "" {
		c.Geobase.URL = DefaultGeobaseURL
	}
	if c.Geobase.OutputFile == "" {
		c.Geobase.OutputFile = "data/geobase-map.json"
	}
	if c.Geobase.Timeout == 0 {
		c.Geobase.Timeout = 60 * time.Second
	}
	if c.PlanifNeige.Endpoint == "" {
		c.PlanifNeige.Endpoint = DefaultPlanifURL
	}
	if c.PlanifNeige.Namespace == "" {
		c.PlanifNeige.Namespace = DefaultPlanifNS
	}
	if c.PlanifNeige.Token == "" {
		c.PlanifNeige.Token = os.Getenv(TokenEnv)
	}
	if c.PlanifNeige.OutputFile == "" {
		c.PlanifNeige.OutputFile = "data/planif-neige.json"
	}
	if c.PlanifNeige.MetadataFile == "" {
		c.PlanifNeige.MetadataFile = "data/planif-neige-metadata.json"
	}
	if c.PlanifNeige.Timeout == 0 {
		c.PlanifNeige.Timeout = 30 * time.Second
	}
	if c.PlanifNeige.LookbackDays == 0 {
		c.PlanifNeige.LookbackDays = DefaultLookbackDay
	}
	c.PlanifNeige.StatusCodes.setDefaults()
	if c.Runner.Timeout == 0 {
		c.Runner.Timeout = 5 * time.Minute
	}
	if c.Notifier.RabbitMQ.Exchange == "" {
		c.Notifier.RabbitMQ.Exchange = "planif_neige"
	}
	if c.Notifier.RabbitMQ.RoutingKey == "" {
		c.Notifier.RabbitMQ.RoutingKey = "fetch_outcomes"
	}
	if c.Notifier.RabbitMQ.QueueName == "" {
		c.Notifier.RabbitMQ.QueueName = "fetch_outcomes"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

func (s *StatusCodes) setDefaults() {
	set := func(dst **int, v int) {
		if *dst == nil {
			*dst = &v
		}
	}
	set(&s.OK, 0)
	set(&s.AccessDenied, 1)
	set(&s.InvalidAccess, 2)
	set(&s.InvalidDate, 3)
	set(&s.RateLimited, 5)
	set(&s.NoData, 8)
}

// Validate checks the settings needed by the Geobase pipeline.
func (g GeobaseConfig) Validate() error {
	if g.URL == "" {
		return fmt.Errorf("geobase: %w", ErrMissingURL)
	}
	if g.OutputFile == "" {
		return fmt.Errorf("geobase: %w", ErrMissingOutput)
	}
	return nil
}

// Validate checks the settings needed by the Planif-Neige pipeline. A missing
// token is reported before any network call is attempted.
func (p PlanifNeigeConfig) Validate() error {
	if p.Token == "" {
		return ErrMissingToken
	}
	if p.Endpoint == "" {
		return fmt.Errorf("planif_neige: %w", ErrMissingURL)
	}
	if p.OutputFile == "" {
		return fmt.Errorf("planif_neige: %w", ErrMissingOutput)
	}
	if p.MetadataFile == "" {
		return fmt.Errorf("planif_neige: %w", ErrMissingMetadata)
	}
	if p.LookbackDays < 1 {
		return fmt.Errorf("planif_neige: %w", ErrInvalidLookback)
	}
	return nil
}

// Validate checks the notifier settings when it is enabled.
func (r RabbitMQConfig) Validate() error {
	if !r.Enabled() {
		return nil
	}
	if r.Exchange == "" || r.RoutingKey == "" {
		return ErrInvalidAMQPSetup
	}
	return nil
}
