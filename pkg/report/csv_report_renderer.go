package report

import (
	"bytes"
	"encoding/csv"

	"github.com/kharcha/kharcha/pkg/expense"
	log "github.com/sirupsen/logrus"
)

// ExpenseRenderer turns expense records into an export document.
type ExpenseRenderer interface {
	RenderExpenses(expenses []expense.Expense) (string, error)
}

type CsvExpenseRendererImpl struct {
}

func NewCsvExpenseRenderer() *CsvExpenseRendererImpl {
	return &CsvExpenseRendererImpl{}
}

func (t *CsvExpenseRendererImpl) RenderExpenses(expenses []expense.Expense) (string, error) {
	data := make([][]string, 0, len(expenses)+1)
	data = append(data, []string{"Date", "Category", "Description", "Amount"})
	for _, e := range expenses {
		data = append(data, []string{
			e.Date.Format("02/01/2006"),
			e.Category,
			e.Description,
			e.Amount.StringFixed(2),
		})
	}

	var b bytes.Buffer
	writer := csv.NewWriter(&b)
	for _, row := range data {
		err := writer.Write(row)
		if err != nil {
			log.Errorf("Error writing to csv: %v", err)
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Errorf("Error writing to csv: %v", err)
		return "", err
	}

	return b.String(), nil
}
