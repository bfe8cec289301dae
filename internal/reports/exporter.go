package reports

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/svitclubs/club-management-backend/internal/club"
	"github.com/svitclubs/club-management-backend/internal/event"
	"github.com/svitclubs/club-management-backend/internal/idea"
)

const (
	mimeCSV   = "text/csv"
	mimeExcel = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	mimePDF   = "application/pdf"
)

// ReportExporter renders a resolved dataset into a downloadable document.
type ReportExporter interface {
	Export(reportType, format string, data ReportData) ([]byte, string, string, error)
}

type reportExporter struct{}

func NewReportExporter() ReportExporter {
	return &reportExporter{}
}

func (e *reportExporter) Export(reportType, format string, data ReportData) ([]byte, string, string, error) {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_report_%s", reportType, timestamp)

	var header []string
	var rows [][]string
	var title string

	switch reportType {
	case ReportTypeClubs:
		title = "Clubs Report"
		header = []string{"ID", "Name", "Category", "Members", "President", "Faculty", "Created"}
		rows = clubRows(data.Clubs)
	case ReportTypeEvents:
		title = "Events Report"
		header = []string{"ID", "Name", "Date", "Time", "Venue", "Club", "Attendees", "Status"}
		rows = eventRows(data.Events)
	case ReportTypeIdeas:
		title = "Ideas Report"
		header = []string{"ID", "Title", "Creator", "Club", "Status", "Votes", "Tags", "Created"}
		rows = ideaRows(data.Ideas)
	default:
		return nil, "", "", fmt.Errorf("unknown report type: %s", reportType)
	}

	switch format {
	case FormatCSV:
		doc, err := renderCSV(header, rows)
		return doc, filename + ".csv", mimeCSV, err
	case FormatExcel:
		doc, err := renderExcel(title, header, rows)
		return doc, filename + ".xlsx", mimeExcel, err
	case FormatPDF:
		doc, err := renderPDF(title, header, rows)
		return doc, filename + ".pdf", mimePDF, err
	}
	return nil, "", "", fmt.Errorf("unknown report format: %s", format)
}

func clubRows(clubs []club.Club) [][]string {
	rows := make([][]string, 0, len(clubs))
	for _, c := range clubs {
		rows = append(rows, []string{
			c.ID, c.Name, c.Category, strconv.Itoa(c.Members),
			c.President, c.Faculty, c.CreatedDate,
		})
	}
	return rows
}

func eventRows(events []event.Event) [][]string {
	rows := make([][]string, 0, len(events))
	for _, e := range events {
		rows = append(rows, []string{
			e.ID, e.Name, e.Date, e.Time, e.Venue, strOrDash(e.ClubID),
			strconv.Itoa(e.Attendees), e.Status,
		})
	}
	return rows
}

func ideaRows(ideas []idea.Idea) [][]string {
	rows := make([][]string, 0, len(ideas))
	for _, i := range ideas {
		rows = append(rows, []string{
			i.ID, i.Title, i.Creator, strOrDash(i.ClubID), i.Status,
			strconv.Itoa(i.Votes), tagList(i), i.CreatedDate,
		})
	}
	return rows
}

func strOrDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func tagList(i idea.Idea) string {
	var tags []string
	if len(i.Tags) > 0 {
		// tags column holds a JSON array of strings
		_ = json.Unmarshal(i.Tags, &tags)
	}
	return strings.Join(tags, ", ")
}

func renderCSV(header []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderExcel(title string, header []string, rows [][]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Report"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	if err := f.SetCellValue(sheet, "A1", title); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheet, "A1", "A1", boldStyle); err != nil {
		return nil, err
	}

	for col, h := range header {
		cell, _ := excelize.CoordinatesToCellName(col+1, 3)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheet, cell, cell, boldStyle); err != nil {
			return nil, err
		}
	}
	for r, row := range rows {
		for col, val := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, r+4)
			if err := f.SetCellValue(sheet, cell, val); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderPDF(title string, header []string, rows [][]string) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, title)
	pdf.Ln(12)

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	colWidth := (pageWidth - left - right) / float64(len(header))

	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for _, h := range header {
		pdf.CellFormat(colWidth, 8, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	for _, row := range rows {
		for _, val := range row {
			if len(val) > 40 {
				val = val[:37] + "..."
			}
			pdf.CellFormat(colWidth, 7, val, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
