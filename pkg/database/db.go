package database

import (
	"Giftspin/config"
	"Giftspin/pkg/log"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB 初始化数据库连接
func NewDB(conf *config.Config) *gorm.DB {
	db, err := Open(conf.Database, conf.Debug())
	if err != nil {
		log.L.Fatal("failed to connect database", zap.String("driver", conf.Database.DriverName()), zap.Error(err))
	}
	log.L.Info("connect database success", zap.String("driver", conf.Database.DriverName()))
	return db
}

func Open(conf *config.Database, debug bool) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch conf.DriverName() {
	case config.DriverMySQL:
		dialector = mysql.Open(conf.Dsn())
	default:
		dialector = postgres.Open(conf.Dsn())
	}

	logLevel := logger.Warn
	if debug {
		logLevel = logger.Info
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if conf.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(conf.MaxOpenConns)
	}
	if conf.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(conf.MaxIdleConns)
	}
	if conf.MaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(time.Duration(conf.MaxLifetime) * time.Second)
	}
	return db, nil
}
