package config

import (
	"github.com/go-pg/pg/v10"
)

type Config struct {
	Database pg.Options
	App      struct {
		Host string
		Port int
		// Timezone for the event day boundary, e.g. "Europe/Istanbul".
		Timezone string
		// Static bearer token for the admin API. Empty disables it.
		AdminToken string
	}
	Cache struct {
		// memory or redis.
		Backend  string
		RedisURL string
	}
}
