// Package database
package database

import (
	"context"
	"errors"
	"fmt"
	c "github.com/half-nothing/flyleague-events/internal/interfaces/config"
	"github.com/half-nothing/flyleague-events/internal/interfaces/global"
	"github.com/half-nothing/flyleague-events/internal/interfaces/log"
	"github.com/half-nothing/flyleague-events/internal/interfaces/operation"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"time"
)

type DatabaseShutdownCallback struct {
	db *gorm.DB
}

func NewDatabaseShutdownCallback(db *gorm.DB) *DatabaseShutdownCallback {
	return &DatabaseShutdownCallback{db: db}
}

func (dc *DatabaseShutdownCallback) Invoke(_ context.Context) error {
	dbPool, err := dc.db.DB()
	if err != nil {
		return err
	}
	return dbPool.Close()
}

func ConnectDatabase(log log.LoggerInterface, config *c.Config, debug bool) (global.Callable, *operation.DatabaseOperations, error) {
	connectionConfig := &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
	}
	if !debug {
		connectionConfig.Logger = logger.Default.LogMode(logger.Silent)
	}

	dialector := config.Database.GetConnection(log)
	if dialector == nil {
		return nil, nil, fmt.Errorf("unsupported database type %s", config.Database.DBType)
	}

	db, err := gorm.Open(dialector, connectionConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("error occurred while connecting to database: %w", err)
	}

	if err := db.Migrator().AutoMigrate(&operation.User{}, &operation.Event{}, &operation.Participant{}); err != nil {
		return nil, nil, fmt.Errorf("error occurred while migrating database: %w", err)
	}

	dbPool, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("error occurred while creating database pool: %w", err)
	}

	maxOpenConnections := float32(config.Database.ServerMaxConnections) * 0.8 // 不超过数据库最大连接的80%
	maxIdleConnections := maxOpenConnections / 5

	dbPool.SetMaxIdleConns(int(maxIdleConnections))
	dbPool.SetMaxOpenConns(int(maxOpenConnections))
	dbPool.SetConnMaxLifetime(config.Database.ConnectIdleDuration)

	if err := dbPool.Ping(); err != nil {
		return nil, nil, fmt.Errorf("error occurred while pinging database: %w", err)
	}

	queryTimeout := config.Database.QueryDuration
	userOperation := NewUserOperation(db, queryTimeout)
	eventOperation := NewEventOperation(db, queryTimeout)
	participantOperation := NewParticipantOperation(db, queryTimeout)

	if err := seedAdminUser(log, config, userOperation); err != nil {
		return nil, nil, err
	}

	operations := operation.NewDatabaseOperations(userOperation, eventOperation, participantOperation)

	return NewDatabaseShutdownCallback(db), operations, nil
}

// seedAdminUser 保证启动后至少存在一个管理员账户
func seedAdminUser(log log.LoggerInterface, config *c.Config, userOperation *UserOperation) error {
	general := config.Server.General
	user, err := userOperation.GetUserByUsername(general.AdminUsername)
	if err == nil {
		if !user.IsAdmin {
			log.WarnF("Bootstrap user %s exists but is not an administrator", general.AdminUsername)
		}
		return nil
	}
	if !errors.Is(err, operation.ErrUserNotFound) {
		return fmt.Errorf("error occurred while looking up bootstrap administrator: %w", err)
	}

	admin := userOperation.NewUser(general.AdminUsername, general.AdminPassword)
	admin.IsAdmin = true
	admin.CreatedAt = time.Now()
	if err := userOperation.AddUser(admin); err != nil {
		return fmt.Errorf("error occurred while seeding bootstrap administrator: %w", err)
	}
	log.InfoF("Bootstrap administrator %s created", general.AdminUsername)
	return nil
}
