package dbmysql

import (
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"gigmarket/internal/config"
)

// NewMySQL returns a GORM DB instance connected to MySQL with the chat schema migrated.
func NewMySQL(cnf *config.Config) (*gorm.DB, error) {
	dsn := cnf.DSN()
	if cnf.Database.Username == "" || cnf.Database.DatabaseName == "" {
		return nil, fmt.Errorf("mysql username and database name are required")
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:      logger.Default.LogMode(LogLevel(cnf.Logging.Level)),
		PrepareStmt: true,
	})
	if err != nil {
		return nil, fmt.Errorf("cannot connect to MySQL: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sql.DB error: %w", err)
	}
	sqlDB.SetMaxOpenConns(cnf.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cnf.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("✅ Connected to MySQL successfully")

	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&Conversation{}, &Participant{}, &Message{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// LogLevel maps the configured log level onto the gorm logger.
func LogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return logger.Info
	case "warn":
		return logger.Warn
	case "error":
		return logger.Error
	case "silent":
		return logger.Silent
	}
	return logger.Warn
}
