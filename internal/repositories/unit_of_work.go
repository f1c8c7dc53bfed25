package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repositories are bound to one transaction.
type Repositories struct {
	Goals *GoalRepository
	Tasks *TaskRepository
}

type UnitOfWork struct {
	db *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) *UnitOfWork {
	return &UnitOfWork{db: db}
}

// Do runs fn in a transaction. Returning an error rolls everything back.
func (u *UnitOfWork) Do(ctx context.Context, fn func(repos Repositories) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(Repositories{
			Goals: NewGoalRepository(tx),
			Tasks: NewTaskRepository(tx),
		})
	})
}

// Repositories returns repositories outside of any transaction, for reads.
func (u *UnitOfWork) Repositories() Repositories {
	return Repositories{
		Goals: NewGoalRepository(u.db),
		Tasks: NewTaskRepository(u.db),
	}
}
