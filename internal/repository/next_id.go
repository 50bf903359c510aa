package repository

import (
	"context"
	"errors"
	"time"

	"github.com/sethvargo/go-retry"
	"gorm.io/gorm"
)

const (
	insertAttempts = 3
	insertBackoff  = 10 * time.Millisecond
)

// insertNext counts the rows of table, hands count+1 to assign and inserts
// value in the same transaction. When a concurrent insert took that id first
// the whole transaction is repeated with a fresh count. Duplicate keys are
// only recognised when the DB was opened with TranslateError.
func insertNext(ctx context.Context, db *gorm.DB, table, value interface{}, assign func(id int)) error {
	backoff := retry.WithMaxRetries(insertAttempts-1, retry.NewConstant(insertBackoff))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var count int64
			if err := tx.Model(table).Count(&count).Error; err != nil {
				return err
			}
			assign(int(count) + 1)
			return tx.Create(value).Error
		})
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return retry.RetryableError(err)
		}
		return err
	})
}
