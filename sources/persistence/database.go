package persistence

import (
	"fmt"
	"time"

	"toaster/sources/configuration"
	"toaster/sources/tracing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/dbresolver"
)

func NewPostgresDatabase(config *configuration.Config, log *tracing.Logger) *gorm.DB {
	gormlogger := logger.New(
		&gormtracer{logger: log},
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(postgres.Open(dsn(config.Database, config.Database.Host, config.Database.Port)), &gorm.Config{Logger: gormlogger})
	if err != nil {
		log.F("Failed to connect to database", tracing.InnerError, err)
	}

	if len(config.Database.Replicas) > 0 {
		replicas := make([]gorm.Dialector, 0, len(config.Database.Replicas))
		for _, replica := range config.Database.Replicas {
			replicas = append(replicas, postgres.Open(dsn(config.Database, replica.Host, replica.Port)))
		}

		resolver := dbresolver.Register(dbresolver.Config{
			Replicas: replicas,
			Policy:   dbresolver.RandomPolicy{},
		})

		if err := db.Use(resolver); err != nil {
			log.F("Failed to register database replicas", tracing.InnerError, err)
		}

		log.I("Database replicas registered", "replicas", len(replicas))
	}

	sqldb, err := db.DB()
	if err != nil {
		log.F("Failed to get underlying sql.DB", tracing.InnerError, err)
	}

	sqldb.SetMaxOpenConns(10)
	sqldb.SetMaxIdleConns(2)
	sqldb.SetConnMaxLifetime(2 * time.Hour)
	sqldb.SetConnMaxIdleTime(30 * time.Minute)

	log.I("Database initialized successfully")
	return db
}

func dsn(config configuration.DatabaseConfig, host, port string) string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		host, config.User, config.Password, config.DBName, port, config.SSLMode, config.TimeZone,
	)
}
