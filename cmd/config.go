package cmd

import "time"

// Config carries every externally supplied setting the application needs.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	JWTSecret string
	JWTTTL    time.Duration

	RedisAddr       string
	RedisPassword   string
	ProductCacheTTL time.Duration

	AmqpURL      string
	AmqpExchange string

	StaleSweepSpec        string
	DeliveryRequestMaxAge time.Duration
}
