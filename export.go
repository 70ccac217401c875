package pawsgo

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/pawsandgo/pawsgo/domain"
)

// walkHistoryHeader lists the columns of the history workbook.
var walkHistoryHeader = []string{
	"Pet",
	"Walker",
	"Route",
	"Scheduled",
	"Duration (min)",
	"Status",
	"Price",
	"Tip",
	"Rating",
}

// ErrNothingToExport is returned when no walk has reached a terminal state yet.
var ErrNothingToExport = errors.New("no finished walks to export")

// WalkHistory returns the walks that reached a terminal state, in booking order.
func (app *App) WalkHistory() []domain.Walk {
	var history []domain.Walk
	for _, walk := range app.Repo.Walks() {
		if walk.Status == domain.WalkCompleted || walk.Status == domain.WalkCancelled {
			history = append(history, walk)
		}
	}
	return history
}

// ExportWalkHistory writes the finished walks to an xlsx workbook at path,
// one row per walk with a styled header row.
func (app *App) ExportWalkHistory(path string) error {
	history := app.WalkHistory()
	if len(history) == 0 {
		return ErrNothingToExport
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheetName = "Walk History"
	f.SetSheetName("Sheet1", sheetName)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("creating header style : %w", err)
	}

	for col, header := range walkHistoryHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("locating header cell %d : %w", col, err)
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return fmt.Errorf("writing header %s : %w", header, err)
		}
	}

	lastHeaderCell, err := excelize.CoordinatesToCellName(len(walkHistoryHeader), 1)
	if err != nil {
		return fmt.Errorf("locating last header cell : %w", err)
	}
	if err := f.SetCellStyle(sheetName, "A1", lastHeaderCell, headerStyle); err != nil {
		return fmt.Errorf("styling header row : %w", err)
	}

	for i, walk := range history {
		routeName := walk.RouteID
		if route, ok := RouteByID(walk.RouteID); ok {
			routeName = route.Name
		}
		walkerName := walk.WalkerID
		if walker, ok := app.WalkerByID(walk.WalkerID); ok {
			walkerName = walker.Name
		}

		values := []any{
			walk.PetName,
			walkerName,
			routeName,
			walk.ScheduledDate,
			walk.Duration,
			walk.Status,
			walk.TotalPrice,
			walk.TipAmount,
			walk.Rating,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return fmt.Errorf("locating cell for walk %s : %w", walk.ID, err)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return fmt.Errorf("writing row for walk %s : %w", walk.ID, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook %s : %w", path, err)
	}

	app.Logger.Info("walk history exported",
		zap.String("path", path),
		zap.Int("walks", len(history)),
	)
	return nil
}
