package mysql

import (
	"errors"
	"fmt"
	"time"

	"skillswitch-service/src/pkg/log"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/viper"
)

// DBInterface is what repositories hold; it lets tests hand in a sqlmock-backed *sqlx.DB.
type DBInterface interface {
	GetDB() (*sqlx.DB, error)
	Close() error
}

type connection struct {
	db *sqlx.DB
}

var ErrNotConnected = errors.New("database connection is not initialised")

// InitConnection opens the MySQL pool configured under the "database" viper key.
func InitConnection(v *viper.Viper, log log.Log) (DBInterface, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4&loc=UTC&clientFoundRows=true",
		v.GetString("database.username"),
		v.GetString("database.password"),
		v.GetString("database.host"),
		v.GetInt("database.port"),
		v.GetString("database.name"),
	)

	db, err := sqlx.Connect("mysql", dsn)
	if err != nil {
		return &connection{}, err
	}

	db.SetMaxIdleConns(v.GetInt("database.pool.idle"))
	db.SetMaxOpenConns(v.GetInt("database.pool.max"))
	db.SetConnMaxLifetime(time.Duration(v.GetInt("database.pool.lifetime")) * time.Second)

	log.Info("mysql", "database connected", "InitConnection", v.GetString("database.host"))
	return &connection{db: db}, nil
}

// Wrap adapts an existing pool, e.g. one opened by sqlmock.
func Wrap(db *sqlx.DB) DBInterface {
	return &connection{db: db}
}

func (c *connection) GetDB() (*sqlx.DB, error) {
	if c.db == nil {
		return nil, ErrNotConnected
	}
	return c.db, nil
}

func (c *connection) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}
