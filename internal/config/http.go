package config

type HttpConfig struct {
	BaseConfig
	Server    HttpServerConfig `envconfig:"HTTP_SERVER"`
	RateLimit RateLimitConfig  `envconfig:"RATE_LIMIT"`
	CORS      CORSConfig       `envconfig:"CORS"`
	Health    HealthConfig     `envconfig:"HEALTH"`
}

// HealthConfig bounds the readiness probe as a whole and each checker in it,
// in seconds.
type HealthConfig struct {
	ReadinessTimeout int `envconfig:"READINESS_TIMEOUT" default:"5" validate:"gte=0"`
	CheckTimeout     int `envconfig:"CHECK_TIMEOUT" default:"3" validate:"gte=0"`
}

// HttpServerConfig timeouts are in seconds. A zero timeout disables it,
// except ShutdownTimeout which falls back to 30.
type HttpServerConfig struct {
	Host              string `envconfig:"HOST" default:"0.0.0.0"`
	Port              int    `envconfig:"PORT" default:"8080" validate:"min=1,max=65535"`
	ReadTimeout       int    `envconfig:"READ_TIMEOUT" default:"30" validate:"gte=0"`
	ReadHeaderTimeout int    `envconfig:"READ_HEADER_TIMEOUT" default:"10" validate:"gte=0"`
	WriteTimeout      int    `envconfig:"WRITE_TIMEOUT" default:"30" validate:"gte=0"`
	IdleTimeout       int    `envconfig:"IDLE_TIMEOUT" default:"120" validate:"gte=0"`
	ShutdownTimeout   int    `envconfig:"SHUTDOWN_TIMEOUT" default:"30" validate:"gte=0"`
}

type RateLimitConfig struct {
	GlobalRequests int `envconfig:"GLOBAL_REQUESTS" default:"1000" validate:"gte=1"`
	GlobalWindow   int `envconfig:"GLOBAL_WINDOW" default:"60" validate:"gte=1"`
	RequestsPerIP  int `envconfig:"REQUESTS_PER_IP" default:"100" validate:"gte=1"`
	WindowSeconds  int `envconfig:"WINDOW_SECONDS" default:"60" validate:"gte=1"`
}

type CORSConfig struct {
	AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS" default:"*"`
	AllowedMethods   []string `envconfig:"ALLOWED_METHODS" default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS" default:"Accept,Authorization,Content-Type,X-CSRF-Token"`
	ExposedHeaders   []string `envconfig:"EXPOSED_HEADERS" default:""`
	AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS" default:"false"`
	MaxAge           int      `envconfig:"MAX_AGE" default:"86400"`
}

func LoadHttp() (*HttpConfig, error) {
	var cfg HttpConfig
	if err := load(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
