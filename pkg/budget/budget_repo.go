package budget

import (
	"context"
	"database/sql"
	"fmt"

	log "github.com/sirupsen/logrus"
)

type BudgetRepo interface {
	// Store stores a new Budget to the database
	Store(ctx context.Context, budget Budget) error
	GetAll(ctx context.Context) ([]Budget, error)
	Update(ctx context.Context, budget Budget) (bool, error)
	Delete(ctx context.Context, budgetId string) (bool, error)
}

type BudgetRepoImpl struct {
	db *sql.DB
}

func NewBudgetRepo(db *sql.DB) *BudgetRepoImpl {
	return &BudgetRepoImpl{db: db}
}

func (r BudgetRepoImpl) Store(ctx context.Context, budget Budget) error {
	query := `INSERT INTO budget (
                    id,
                    category,
                    spending_limit,
                    color_tag
				) VALUES ($1, $2, $3, $4)`

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %w", err)
		log.Error(err)
		return err
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx,
		budget.Id,
		budget.Category,
		budget.Limit,
		budget.ColorTag,
	)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (r BudgetRepoImpl) GetAll(ctx context.Context) ([]Budget, error) {
	query := `SELECT id, category, spending_limit, color_tag
					FROM budget ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not query budgets: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var budgets []Budget
	for rows.Next() {
		var budget Budget
		if err := rows.Scan(
			&budget.Id,
			&budget.Category,
			&budget.Limit,
			&budget.ColorTag,
		); err != nil {
			err := fmt.Errorf("could not scan budget: %w", err)
			log.Error(err)
			return nil, err
		}
		budgets = append(budgets, budget)
	}

	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}

	return budgets, nil
}

func (r BudgetRepoImpl) Update(ctx context.Context, budget Budget) (bool, error) {
	query := `UPDATE budget SET
                  category = $1,
                  spending_limit = $2,
                  color_tag = $3
              WHERE id = $4`
	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %w", err)
		log.Error(err)
		return false, err
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx,
		budget.Category,
		budget.Limit,
		budget.ColorTag,
		budget.Id,
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

func (r BudgetRepoImpl) Delete(ctx context.Context, budgetId string) (bool, error) {
	query := "DELETE FROM budget WHERE id = $1"
	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %w", err)
		log.Error(err)
		return false, err
	}
	defer stmt.Close()
	result, err := stmt.ExecContext(ctx, budgetId)
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
