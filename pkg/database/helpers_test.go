package database

import "movie-catalog/pkg/utils"

func testConfig() utils.DatabaseConfig {
	return utils.DatabaseConfig{
		Host:     "db",
		Port:     "5433",
		Name:     "movies",
		User:     "app",
		Password: "secret",
		MaxConns: 4,
	}
}
