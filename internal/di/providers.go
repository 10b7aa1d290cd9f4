// Package di assembles the chat service. Providers live here; the injector is
// declared in wire.go and generated into wire_gen.go.
package di

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"

	"gigmarket/internal/chat/broker"
	"gigmarket/internal/chat/handler"
	"gigmarket/internal/chat/repository"
	"gigmarket/internal/chat/service"
	"gigmarket/internal/common"
	"gigmarket/internal/config"
	"gigmarket/internal/dbmongo"
	"gigmarket/internal/dbmysql"
)

const driverMemory = "memory"

type ChatApp struct {
	Config  *config.Config
	DB      *gorm.DB
	Broker  *broker.Broker
	JWT     *common.JWTManager
	Handler *handler.ChatHandler
	HTTP    *handler.HTTPHandler
}

// ProvideDatabase opens MySQL unless the memory driver is selected, in which
// case it returns a nil DB.
func ProvideDatabase(cfg *config.Config) (*gorm.DB, func(), error) {
	if cfg.Database.Driver == driverMemory {
		log.Println("Using in-memory chat store")
		return nil, func() {}, nil
	}

	db, err := dbmysql.NewMySQL(cfg)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}
	return db, cleanup, nil
}

func ProvideChatRepository(cfg *config.Config, db *gorm.DB) repository.ChatRepository {
	if db == nil {
		return repository.NewMemoryRepository()
	}
	return repository.NewChatRepository(db, cfg)
}

// ProvideMongo connects to the media store when attachment checks are enabled.
func ProvideMongo(cfg *config.Config) (*dbmongo.MongoClient, func(), error) {
	if !cfg.MongoDB.Enabled {
		log.Println("MongoDB disabled, attachment references are not verified")
		return nil, func() {}, nil
	}

	mc, err := dbmongo.NewMongoConnection(cfg)
	if err != nil {
		return nil, nil, err
	}
	log.Println("✅ Connected to MongoDB successfully")

	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mc.Close(ctx); err != nil {
			log.Printf("Failed to disconnect MongoDB: %v", err)
		}
	}
	return mc, cleanup, nil
}

func ProvideAttachmentChecker(mc *dbmongo.MongoClient) service.AttachmentChecker {
	if mc == nil {
		return nil
	}
	return dbmongo.NewAttachmentStore(mc)
}

// ProvideBroker returns a started broker; cleanup stops it.
func ProvideBroker(cfg *config.Config) (*broker.Broker, func()) {
	b := broker.NewBroker(cfg)
	b.Start()
	return b, b.Stop
}
