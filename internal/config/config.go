package config

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"bank_clients/internal/config/connections/mongo"
	"bank_clients/internal/config/connections/postgres"
	"bank_clients/internal/config/connections/s3"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	StaticDir string
	Postgres  *postgres.Postgres
	Mongo     *mongo.Mongo
	S3        *s3.S3
}

func Init(ctx context.Context) *Config {
	_ = godotenv.Load()
	port := getenv("SERVER_PORT", "8000")
	staticDir := getenv("STATIC_DIR", "static")

	pg, err := postgres.NewConnection(ctx, postgres.ConnectionInfo{
		Host:     getenv("DB_HOST", "localhost"),
		Port:     getenv("DB_PORT", "5432"),
		User:     getenv("DB_USER", "postgres"),
		Password: getenv("DB_PASSWORD", "2006_KR"),
		DB:       getenv("DB_NAME", "clients"),
		SSLMode:  getenv("DB_SSLMODE", "disable"),
	})
	if err != nil {
		log.Fatal("Postgres connect error:", err)
	}

	// The audit trail and statement export are optional backends: the core
	// login/profile contract only needs Postgres.
	var mg *mongo.Mongo
	if host := os.Getenv("MONGO_HOST"); host != "" {
		mg, err = mongo.NewConnection(ctx, mongo.ConnectionInfo{
			Scheme:     getenv("MONGO_SCHEME", "mongodb"),
			User:       getenv("MONGO_USER", "root"),
			Password:   getenv("MONGO_PASSWORD", "secret"),
			Host:       host,
			Port:       getenv("MONGO_PORT", "27017"),
			DB:         getenv("MONGO_DB", "clients_audit"),
			AuthSource: getenv("MONGO_AUTH_SOURCE", "admin"),
		})
		if err != nil {
			log.Fatal("Mongo connect error:", err)
		}
	} else {
		log.Printf("MONGO_HOST not set - login audit trail disabled")
	}

	var s3c *s3.S3
	if endpoint := os.Getenv("AWS_ENDPOINT"); endpoint != "" {
		s3c, err = s3.NewConnection(s3.ConnectionInfo{
			Endpoint:  endpoint,
			AccessKey: getenv("AWS_ACCESS_KEY_ID", "minioadmin"),
			SecretKey: getenv("AWS_SECRET_ACCESS_KEY", "minioadmin"),
			Region:    getenv("AWS_DEFAULT_REGION", "us-east-1"),
			Bucket:    getenv("AWS_BUCKET", "statements"),
			UseSSL:    getenv("AWS_USE_SSL", "false") == "true",
		})
		if err != nil {
			log.Fatal("S3 connect error:", err)
		}
	} else {
		log.Printf("AWS_ENDPOINT not set - statement export disabled")
	}

	return &Config{
		Port:      port,
		StaticDir: staticDir,
		Postgres:  pg,
		Mongo:     mg,
		S3:        s3c,
	}
}

func (c *Config) CheckConnections(ctx context.Context) error {
	var errs []error

	if c.Postgres == nil || c.Postgres.Pool == nil {
		errs = append(errs, errors.New("postgres not initialized"))
	} else if err := c.Postgres.Pool.Ping(ctx); err != nil {
		errs = append(errs, fmt.Errorf("postgres ping failed: %w", err))
	}

	if c.Mongo != nil {
		if c.Mongo.Client == nil {
			errs = append(errs, errors.New("mongo not initialized"))
		} else if err := c.Mongo.Client.Ping(ctx, nil); err != nil {
			errs = append(errs, fmt.Errorf("mongo ping failed: %w", err))
		}
	}

	if c.S3 != nil {
		if c.S3.Client == nil {
			errs = append(errs, errors.New("s3 not initialized"))
		} else if ok, err := c.S3.Client.BucketExists(ctx, c.S3.Bucket); err != nil {
			errs = append(errs, fmt.Errorf("s3 bucket check failed: %w", err))
		} else if !ok {
			errs = append(errs, fmt.Errorf("s3 bucket %q not found", c.S3.Bucket))
		}
	}

	if len(errs) == 0 {
		return nil
	}

	return errors.Join(errs...)
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
