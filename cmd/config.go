package cmd

import "time"

// Config carries process configuration loaded from the environment.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RoutingBaseURL   string
	NotifyWebhookURL string

	MatchChunkSize    int
	MatchParallelism  int
	MatchRouteTimeout time.Duration
}
