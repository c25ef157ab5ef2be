package repositories

import (
	"gorm.io/gorm"
)

type Repos struct {
	Form         FormRepo
	History      FormHistoryRepo
	User         UserRepo
	Notification NotificationRepo

	db *gorm.DB
}

func New(db *gorm.DB) *Repos {
	return &Repos{
		Form:         NewFormRepo(db),
		History:      NewFormHistoryRepo(db),
		User:         NewUserRepo(db),
		Notification: NewNotificationRepo(db),
		db:           db,
	}
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		Form:         r.Form.WithTx(tx),
		History:      r.History.WithTx(tx),
		User:         r.User.WithTx(tx),
		Notification: r.Notification.WithTx(tx),
		db:           tx,
	}
}

// ExecTx runs fn inside a database transaction. Repos constructed without
// a handle (mock-backed unit tests) run the callback directly.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(r.WithTx(tx))
	})
}
