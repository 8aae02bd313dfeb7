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

package server

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"hub-api/src/config"
	"hub-api/src/internal/database"
	"hub-api/src/internal/handler"
	"hub-api/src/internal/middleware"
	"hub-api/src/internal/objectstore"
	"hub-api/src/internal/repository"
	"hub-api/src/internal/service"
	"hub-api/src/internal/token"
	"hub-api/src/internal/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type Server struct {
	router    *gin.Engine
	appRepo   repository.OAuthAppRepository
	quotaRepo repository.StorageQuotaRepository
}

// StartHubAPIServer creates a new server instance with all dependencies initialized
func StartHubAPIServer(cfg *config.Server) (*Server, error) {
	// Initialize database using configuration
	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return nil, err
	}

	// Initialize schema (skip when ExecuteSchemaDDL is false, e.g. deployed Postgres without DDL access)
	if cfg.Database.ExecuteSchemaDDL {
		if err := db.InitSchema(cfg.DBSchemaPath); err != nil {
			return nil, err
		}
	} else {
		utils.LogInfo("Skipping schema DDL execution (DATABASE_EXECUTE_SCHEMA_DDL=false)")
	}

	// Initialize repositories
	appRepo := repository.NewOAuthAppRepo(db)
	quotaRepo := repository.NewStorageQuotaRepo(db)

	// Seed development fixtures when configured
	if cfg.Storage.SeedDataPath != "" {
		entries, err := utils.LoadSeedEntries(cfg.Storage.SeedDataPath)
		if err != nil {
			utils.LogWarning(fmt.Sprintf("Failed to load seed data from %s: %v", cfg.Storage.SeedDataPath, err))
		} else {
			seeded, err := service.NewSeeder(db).Seed(entries)
			if err != nil {
				utils.LogWarning(fmt.Sprintf("Failed to seed fixture data: %v", err))
			} else if seeded > 0 {
				utils.LogInfo(fmt.Sprintf("Seeded fixture data: entries=%d", seeded))
			}
		}
	}

	// Revocation checking is a no-op unless the Redis blacklist is enabled
	var revocation token.RevocationChecker = token.NoopRevocation{}
	if cfg.Redis.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		revocation = token.NewRedisRevocation(client)
		utils.LogInfo(fmt.Sprintf("Token revocation blacklist enabled: addr=%s", cfg.Redis.Addr))
	}

	// Initialize the token codec
	codec := token.NewCodec(token.CodecConfig{
		Issuer:     cfg.JWT.Issuer,
		Secret:     cfg.JWT.Secret,
		TTL:        time.Duration(cfg.JWT.ExpirySeconds) * time.Second,
		Revocation: revocation,
	})

	// Initialize the object store client
	store, err := objectstore.NewMinioStore(&cfg.Minio)
	if err != nil {
		return nil, err
	}

	// Initialize services
	authService := service.NewAuthService(appRepo, codec)
	storageService := service.NewStorageService(
		appRepo,
		quotaRepo,
		store,
		cfg.Storage.MaxObjectSizeBytes,
		time.Duration(cfg.Minio.PresignExpirySeconds)*time.Second,
	)

	// Initialize handlers
	tokenHandler := handler.NewTokenHandler(authService)
	storageHandler := handler.NewStorageHandler(storageService)

	// Setup router
	router := gin.Default()

	// Configure and apply CORS middleware first (before auth middleware)
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	corsConfig.AllowCredentials = true
	router.Use(cors.New(corsConfig))

	// Register routes; only the storage group sits behind bearer auth
	tokenHandler.RegisterRoutes(router)
	storageHandler.RegisterRoutes(router, middleware.BearerAuth(authService))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return &Server{
		router:    router,
		appRepo:   appRepo,
		quotaRepo: quotaRepo,
	}, nil
}

// Start starts the HTTP server
func (s *Server) Start(port string) error {
	if port == "" {
		return fmt.Errorf("port cannot be empty")
	}

	address := fmt.Sprintf(":%s", port)
	log.Printf("Starting HTTP server on http://localhost:%s", port)
	return s.router.Run(address)
}
