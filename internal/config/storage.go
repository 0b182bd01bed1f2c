package config

import "time"

type Storage struct {
	Database Database `envPrefix:"DATABASE_"`
}

type Database struct {
	DSN   string `env:"DSN" envDefault:"notes.sqlite"`
	Cache Cache  `envPrefix:"CACHE_"`
}

type Cache struct {
	Users UsersCache `envPrefix:"USERS_"`
}

type UsersCache struct {
	Enabled bool          `env:"ENABLED" envDefault:"true"`
	Size    int           `env:"SIZE" envDefault:"512"`
	TTL     time.Duration `env:"TTL" envDefault:"1m"`
}
