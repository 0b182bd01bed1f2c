package config

import "time"

type HTTP struct {
	BaseURL string  `env:"BASE_URL,expand" envDefault:"/"`
	Address string  `env:"ADDRESS,expand" envDefault:":3001"`
	CORS    CORS    `envPrefix:"CORS_"`
	Session Session `envPrefix:"SESSION_"`
}

type CORS struct {
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envDefault:"*"`
}

type Session struct {
	// Signing key pairs for the session cookie; a random key is
	// generated at startup when left empty
	Keys   []string `env:"KEYS"`
	Cookie Cookie   `envPrefix:"COOKIE_"`
}

type Cookie struct {
	Name     string        `env:"NAME" envDefault:"notes_session"`
	Path     string        `env:"PATH" envDefault:"/"`
	MaxAge   time.Duration `env:"MAX_AGE" envDefault:"720h"`
	HTTPOnly bool          `env:"HTTP_ONLY" envDefault:"true"`
	Secure   bool          `env:"SECURE" envDefault:"false"`
}
