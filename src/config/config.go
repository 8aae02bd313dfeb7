/*
 *  Copyright (c) 2025, WSO2 LLC. (http://www.wso2.org) All Rights Reserved.
 *
 *  Licensed under the Apache License, Version 2.0 (the "License");
 *  you may not use this file except in compliance with the License.
 *  You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 *  Unless required by applicable law or agreed to in writing, software
 *  distributed under the License is distributed on an "AS IS" BASIS,
 *  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *  See the License for the specific language governing permissions and
 *  limitations under the License.
 *
 */

package config

import (
	"fmt"
	"sync"

	"github.com/kelseyhightower/envconfig"
)

// Server holds the configuration parameters for the application.
type Server struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"DEBUG"`

	// Server configurations
	Port string `envconfig:"PORT" default:"9280"`

	// Database configurations
	Database     Database `envconfig:"DATABASE"`
	DBSchemaPath string   `envconfig:"DB_SCHEMA_PATH" default:"./src/internal/database/schema.sql"`

	// JWT token issuance configurations
	JWT JWT `envconfig:"JWT"`

	// Object storage configurations
	Minio Minio `envconfig:"MINIO"`

	// Token revocation store configurations
	Redis Redis `envconfig:"REDIS"`

	// Storage gate configurations
	Storage Storage `envconfig:"STORAGE"`
}

// JWT holds token signing configuration. The secret is shared across
// all instances; any process holding it can verify tokens.
type JWT struct {
	Secret        string `envconfig:"SECRET" default:"your-secret-key-change-in-production"`
	Issuer        string `envconfig:"ISSUER" default:"hub"`
	ExpirySeconds int    `envconfig:"EXPIRY_SECONDS" default:"1800"`
}

// Minio holds object storage client configuration
type Minio struct {
	Endpoint             string `envconfig:"ENDPOINT" default:"localhost:9000"`
	AccessKey            string `envconfig:"ACCESS_KEY" default:""`
	SecretKey            string `envconfig:"SECRET_KEY" default:""`
	UseSSL               bool   `envconfig:"USE_SSL" default:"false"`
	PresignExpirySeconds int    `envconfig:"PRESIGN_EXPIRY_SECONDS" default:"900"`
}

// Redis holds the optional revocation blacklist configuration. When
// disabled, token revocation checks are a no-op.
type Redis struct {
	Enabled  bool   `envconfig:"ENABLED" default:"false"`
	Addr     string `envconfig:"ADDR" default:"localhost:6379"`
	Password string `envconfig:"PASSWORD" default:""`
	DB       int    `envconfig:"DB" default:"0"`
}

// Storage holds storage gate configuration
type Storage struct {
	// MaxObjectSizeBytes caps a single upload regardless of quota state.
	MaxObjectSizeBytes int64 `envconfig:"MAX_OBJECT_SIZE_BYTES" default:"100000000"`

	// SeedDataPath points at a YAML fixture file of development
	// clients/websites/apps/quotas. Empty disables seeding.
	SeedDataPath string `envconfig:"SEED_DATA_PATH" default:""`
}

// Database holds database-specific configuration
type Database struct {
	Driver string `envconfig:"DRIVER" default:"sqlite3"`
	// Path is the file path for SQLite databases.
	// Use DATABASE_DB_PATH to override; keeping it distinct from the OS PATH variable.
	Path            string `envconfig:"DB_PATH" default:"./data/hub_api.db"`
	Host            string `envconfig:"HOST" default:"localhost"`
	Port            int    `envconfig:"PORT" default:"5432"`
	Name            string `envconfig:"NAME" default:"hub_api"`
	User            string `envconfig:"USER" default:""`
	Password        string `envconfig:"PASSWORD" default:""`
	SSLMode         string `envconfig:"SSL_MODE" default:"disable"`
	MaxOpenConns    int    `envconfig:"MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns    int    `envconfig:"MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime int    `envconfig:"CONN_MAX_LIFETIME" default:"300"` // seconds

	// ExecuteSchemaDDL controls whether to run the schema DDL (CREATE TABLE, etc.) on startup.
	// Set to false when the DB user lacks DDL privileges (e.g. deployed Postgres with restricted role).
	// Env: DATABASE_EXECUTE_SCHEMA_DDL (default: true)
	ExecuteSchemaDDL bool `envconfig:"EXECUTE_SCHEMA_DDL" default:"true"`
}

// package-level variable and mutex for thread safety
var (
	processOnce     sync.Once
	settingInstance *Server
)

// GetConfig initializes and returns a singleton instance of the Server
// config. It uses sync.Once so the environment is processed only once,
// making it safe for concurrent use. Panics on invalid configuration.
func GetConfig() *Server {
	var err error
	processOnce.Do(func() {
		settingInstance = &Server{}
		err = envconfig.Process("", settingInstance)
		if err == nil {
			err = validateConfig(settingInstance)
		}
	})
	if err != nil {
		panic(err)
	}
	return settingInstance
}

// validateConfig checks cross-field constraints the envconfig tags
// cannot express.
func validateConfig(cfg *Server) error {
	if cfg.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET must not be empty")
	}

	if cfg.JWT.ExpirySeconds <= 0 {
		return fmt.Errorf("JWT_EXPIRY_SECONDS must be positive, got %d", cfg.JWT.ExpirySeconds)
	}

	if cfg.Storage.MaxObjectSizeBytes <= 0 {
		return fmt.Errorf("STORAGE_MAX_OBJECT_SIZE_BYTES must be positive, got %d", cfg.Storage.MaxObjectSizeBytes)
	}

	if cfg.Minio.PresignExpirySeconds <= 0 {
		return fmt.Errorf("MINIO_PRESIGN_EXPIRY_SECONDS must be positive, got %d", cfg.Minio.PresignExpirySeconds)
	}

	return nil
}
