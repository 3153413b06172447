package expense

import (
	"context"
	"database/sql"
	"fmt"

	log "github.com/sirupsen/logrus"
)

type ExpenseRepo interface {
	// Store stores a new Expense to the database
	Store(ctx context.Context, expense Expense) error
	GetAll(ctx context.Context) ([]Expense, error)
	Update(ctx context.Context, expense Expense) (bool, error)
	Delete(ctx context.Context, expenseId string) (bool, error)
}

type ExpenseRepoImpl struct {
	db *sql.DB
}

func NewExpenseRepo(db *sql.DB) *ExpenseRepoImpl {
	return &ExpenseRepoImpl{db: db}
}

func (r ExpenseRepoImpl) Store(ctx context.Context, expense Expense) error {
	query := `INSERT INTO expense (
                    id,
                    amount,
                    category,
                    description,
                    date,
                    receipt_ref
				) VALUES ($1, $2, $3, $4, $5, $6)`

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %w", err)
		log.Error(err)
		return err
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx,
		expense.Id,
		expense.Amount,
		expense.Category,
		expense.Description,
		expense.Date.Format("2006-01-02"),
		expense.ReceiptRef,
	)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (r ExpenseRepoImpl) GetAll(ctx context.Context) ([]Expense, error) {
	query := `SELECT id, amount, category, description, date, receipt_ref
					FROM expense ORDER BY date DESC, created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not query expenses: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var expenses []Expense
	for rows.Next() {
		var expense Expense
		if err := rows.Scan(
			&expense.Id,
			&expense.Amount,
			&expense.Category,
			&expense.Description,
			&expense.Date,
			&expense.ReceiptRef,
		); err != nil {
			err := fmt.Errorf("could not scan expense: %w", err)
			log.Error(err)
			return nil, err
		}
		expenses = append(expenses, expense)
	}

	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}

	return expenses, nil
}

func (r ExpenseRepoImpl) Update(ctx context.Context, expense Expense) (bool, error) {
	query := `UPDATE expense SET
                  amount = $1,
                  category = $2,
                  description = $3,
                  date = $4,
                  receipt_ref = $5
              WHERE id = $6`
	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %w", err)
		log.Error(err)
		return false, err
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx,
		expense.Amount,
		expense.Category,
		expense.Description,
		expense.Date.Format("2006-01-02"),
		expense.ReceiptRef,
		expense.Id,
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

func (r ExpenseRepoImpl) Delete(ctx context.Context, expenseId string) (bool, error) {
	query := "DELETE FROM expense WHERE id = $1"
	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %w", err)
		log.Error(err)
		return false, err
	}
	defer stmt.Close()
	result, err := stmt.ExecContext(ctx, expenseId)
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
