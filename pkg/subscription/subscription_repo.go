package subscription

import (
	"context"
	"database/sql"
	"fmt"

	log "github.com/sirupsen/logrus"
)

type SubscriptionRepo interface {
	// Store stores a new Subscription to the database
	Store(ctx context.Context, sub Subscription) error
	GetAll(ctx context.Context) ([]Subscription, error)
	Update(ctx context.Context, sub Subscription) (bool, error)
	Delete(ctx context.Context, subscriptionId string) (bool, error)
}

type SubscriptionRepoImpl struct {
	db *sql.DB
}

func NewSubscriptionRepo(db *sql.DB) *SubscriptionRepoImpl {
	return &SubscriptionRepoImpl{db: db}
}

func (r SubscriptionRepoImpl) Store(ctx context.Context, sub Subscription) error {
	query := `INSERT INTO subscription (
                    id,
                    service_name,
                    amount,
                    billing_cycle,
                    next_due_date,
                    category
				) VALUES ($1, $2, $3, $4, $5, $6)`

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %w", err)
		log.Error(err)
		return err
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx,
		sub.Id,
		sub.ServiceName,
		sub.Amount,
		string(sub.Cycle),
		sub.NextDueDate.Format("2006-01-02"),
		sub.Category,
	)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (r SubscriptionRepoImpl) GetAll(ctx context.Context) ([]Subscription, error) {
	query := `SELECT id, service_name, amount, billing_cycle, next_due_date, category
					FROM subscription ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not query subscriptions: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var subs []Subscription
	for rows.Next() {
		var sub Subscription
		var cycle string
		if err := rows.Scan(
			&sub.Id,
			&sub.ServiceName,
			&sub.Amount,
			&cycle,
			&sub.NextDueDate,
			&sub.Category,
		); err != nil {
			err := fmt.Errorf("could not scan subscription: %w", err)
			log.Error(err)
			return nil, err
		}
		sub.Cycle = BillingCycle(cycle)
		subs = append(subs, sub)
	}

	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}

	return subs, nil
}

func (r SubscriptionRepoImpl) Update(ctx context.Context, sub Subscription) (bool, error) {
	query := `UPDATE subscription SET
                  service_name = $1,
                  amount = $2,
                  billing_cycle = $3,
                  next_due_date = $4,
                  category = $5
              WHERE id = $6`
	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %w", err)
		log.Error(err)
		return false, err
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx,
		sub.ServiceName,
		sub.Amount,
		string(sub.Cycle),
		sub.NextDueDate.Format("2006-01-02"),
		sub.Category,
		sub.Id,
	)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		err := fmt.Errorf("could not get rows affected: %w", err)
		log.Error(err)
		return false, err
	}
	return rowsAffected == 1, nil
}

func (r SubscriptionRepoImpl) Delete(ctx context.Context, subscriptionId string) (bool, error) {
	query := "DELETE FROM subscription WHERE id = $1"
	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %w", err)
		log.Error(err)
		return false, err
	}
	defer stmt.Close()
	result, err := stmt.ExecContext(ctx, subscriptionId)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		err := fmt.Errorf("could not get rows affected: %w", err)
		log.Error(err)
		return false, err
	}
	return rowsAffected == 1, nil
}
