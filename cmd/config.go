package cmd

import "time"

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// OrderDuration is how long one delivery occupies a driver.
	OrderDuration time.Duration
	// MaxSearchGap caps how far before a target time a finished delivery may
	// lie and still make its driver a nearest-driver candidate.
	MaxSearchGap time.Duration

	DatetimeFormat string
	DateFormat     string

	LocationFeedURL   string
	LocationFetchSpec string
}
