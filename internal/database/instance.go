package database

import (
	"context"
	"fmt"

	"github.com/diegoclair/family-schedule-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db            *DB
	childRepo     contract.ChildRepo
	activityRepo  contract.ActivityRepo
	scheduleRepo  contract.ScheduleRepo
	exceptionRepo contract.ExceptionRepo
	settingsRepo  contract.SettingsRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	instance := &instance{
		db: db,
	}
	instance.repoInstances()
	return instance
}

// repoInstances initializes all repositories
func (i *instance) repoInstances() {
	i.childRepo = newChildRepo(i.db.conn)
	i.activityRepo = newActivityRepo(i.db.conn)
	i.scheduleRepo = newScheduleRepo(i.db.conn)
	i.exceptionRepo = newExceptionRepo(i.db.conn)
	i.settingsRepo = newSettingsRepo(i.db.conn)
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		childRepo:     newChildRepo(db),
		activityRepo:  newActivityRepo(db),
		scheduleRepo:  newScheduleRepo(db),
		exceptionRepo: newExceptionRepo(db),
		settingsRepo:  newSettingsRepo(db),
	}
}

func (i *instance) Child() contract.ChildRepo {
	return i.childRepo
}

func (i *instance) Activity() contract.ActivityRepo {
	return i.activityRepo
}

func (i *instance) Schedule() contract.ScheduleRepo {
	return i.scheduleRepo
}

func (i *instance) Exception() contract.ExceptionRepo {
	return i.exceptionRepo
}

func (i *instance) Settings() contract.SettingsRepo {
	return i.settingsRepo
}

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	tx, err := i.db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}
