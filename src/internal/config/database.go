package config

import (
	"time"

	"skillswitch-service/src/internal/entity"
	"skillswitch-service/src/pkg/databases/mysql"
	"skillswitch-service/src/pkg/log"

	"github.com/spf13/viper"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func NewDatabase(viper *viper.Viper, log log.Log) mysql.DBInterface {
	db, err := mysql.InitConnection(viper, log)
	if err != nil {
		log.Error("database init", err.Error(), "config", "")
	}

	return db
}

// NewGorm shares the sqlx pool with gorm and migrates every table on startup.
func NewGorm(viper *viper.Viper, db mysql.DBInterface, log log.Log) (*gorm.DB, error) {
	sqlDB, err := db.GetDB()
	if err != nil {
		return nil, err
	}

	level := gormlogger.Warn
	if viper.GetString("log.level") == "DEBUG" {
		level = gormlogger.Info
	}
	gdb, err := gorm.Open(gormmysql.New(gormmysql.Config{Conn: sqlDB.DB}), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 gormlogger.Default.LogMode(level),
		NowFunc:                utcNow,
	})
	if err != nil {
		return nil, err
	}

	if viper.GetBool("database.auto_migrate") {
		err = gdb.AutoMigrate(
			&entity.User{},
			&entity.WalletTransaction{},
			&entity.SessionRequest{},
			&entity.Review{},
			&entity.Resource{},
		)
		if err != nil {
			return nil, err
		}
		log.Info("database init", "schema migrated", "NewGorm", "")
	}
	return gdb, nil
}

func utcNow() time.Time {
	return time.Now().UTC()
}
