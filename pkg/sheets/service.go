package sheets

import (
	"context"
	"fmt"
	"os"

	"github.com/kharcha/kharcha/internal/config"
	"github.com/kharcha/kharcha/pkg/expense"
	log "github.com/sirupsen/logrus"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"
)

// ExpenseMirror copies expense records into an external spreadsheet so they
// survive outside the application database.
type ExpenseMirror interface {
	Append(ctx context.Context, e expense.Expense) error
}

type GoogleSheetsMirrorImpl struct {
	svc           *gsheets.Service
	spreadsheetId string
	sheetName     string
}

// NewGoogleSheetsMirror authenticates with a service account key file and
// prepares a client for the configured spreadsheet.
func NewGoogleSheetsMirror(ctx context.Context, cfg config.Sheets) (*GoogleSheetsMirrorImpl, error) {
	credentials, err := os.ReadFile(cfg.CredentialsFile)
	if err != nil {
		err := fmt.Errorf("could not read Google credentials file: %w", err)
		log.Error(err)
		return nil, err
	}

	jwtConfig, err := google.JWTConfigFromJSON(credentials, gsheets.SpreadsheetsScope)
	if err != nil {
		err := fmt.Errorf("could not parse Google credentials: %w", err)
		log.Error(err)
		return nil, err
	}

	svc, err := gsheets.NewService(ctx, option.WithTokenSource(jwtConfig.TokenSource(ctx)))
	if err != nil {
		err := fmt.Errorf("could not create Google Sheets client: %w", err)
		log.Error(err)
		return nil, err
	}

	return &GoogleSheetsMirrorImpl{
		svc:           svc,
		spreadsheetId: cfg.SpreadsheetId,
		sheetName:     cfg.SheetName,
	}, nil
}

func (m *GoogleSheetsMirrorImpl) Append(ctx context.Context, e expense.Expense) error {
	valueRange := &gsheets.ValueRange{
		Values: [][]any{{
			e.Date.Format("2006-01-02"),
			e.Category,
			e.Description,
			e.Amount.Round(2).InexactFloat64(),
			e.Id,
		}},
	}

	_, err := m.svc.Spreadsheets.Values.
		Append(m.spreadsheetId, m.sheetName+"!A:E", valueRange).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		err := fmt.Errorf("could not append expense %s to sheet %s: %w", e.Id, m.sheetName, err)
		log.Error(err)
		return err
	}
	return nil
}
