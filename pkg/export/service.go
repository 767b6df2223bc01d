package export

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/jordanlanch/outreachhq/ent"
	"github.com/jordanlanch/outreachhq/ent/engagement"
	"github.com/jordanlanch/outreachhq/ent/prospect"
	"github.com/jordanlanch/outreachhq/pkg/domain"
)

// Service exports prospect data to spreadsheet formats.
type Service struct {
	client *ent.Client
}

// NewService creates a new export service.
func NewService(client *ent.Client) *Service {
	return &Service{client: client}
}

// WriteProspectsExcel writes all prospects with their engagement totals as
// an xlsx workbook to w.
func (s *Service) WriteProspectsExcel(ctx context.Context, w io.Writer) error {
	items, err := s.client.Prospect.Query().
		Order(ent.Asc(prospect.FieldID)).
		All(ctx)
	if err != nil {
		return domain.NewInternalError(err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Prospects"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}

	headers := []string{
		"ID", "Company Name", "Industry", "Website", "Contact Person",
		"Email", "Phone", "Engagements", "Total Score", "Created At",
	}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for rowIdx, p := range items {
		count, totalScore, err := s.engagementTotals(ctx, p.ID)
		if err != nil {
			return err
		}

		row := rowIdx + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), p.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), p.CompanyName)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), p.Industry)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), p.Website)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), p.ContactPerson)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), p.Email)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), p.Phone)
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), count)
		f.SetCellValue(sheetName, fmt.Sprintf("I%d", row), totalScore)
		f.SetCellValue(sheetName, fmt.Sprintf("J%d", row), p.CreatedAt)
	}

	for i := 0; i < len(headers); i++ {
		col := string(rune('A' + i))
		f.SetColWidth(sheetName, col, col, 18)
	}

	f.SetActiveSheet(index)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func (s *Service) engagementTotals(ctx context.Context, prospectID int) (int, float64, error) {
	rows, err := s.client.Engagement.Query().
		Where(engagement.ProspectID(prospectID)).
		All(ctx)
	if err != nil {
		return 0, 0, domain.NewInternalError(err)
	}

	var total float64
	for _, e := range rows {
		total += e.EngagementScore
	}
	return len(rows), total, nil
}
