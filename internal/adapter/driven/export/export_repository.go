package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/diillson/bikeshare-dashboard-go/internal/domain/entity"
	"github.com/diillson/bikeshare-dashboard-go/internal/domain/repository"
	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

// reportRow é uma linha achatada do relatório: seção, rótulo e valor.
type reportRow struct {
	Section string
	Label   string
	Value   string
}

// flattenReport achata o relatório na mesma ordem de exibição do dashboard.
func flattenReport(report entity.Report) []reportRow {
	rows := []reportRow{}

	for _, trend := range report.Trends {
		section := fmt.Sprintf("Monthly Trend %d", trend.Year)
		for _, m := range trend.Months {
			rows = append(rows, reportRow{section, m.Date.Format("January"), strconv.Itoa(m.Count)})
		}
	}
	for _, c := range report.DayTypes {
		rows = append(rows, reportRow{"Working Day vs Weekend/Holiday", c.Label, strconv.Itoa(c.Total)})
	}
	for _, c := range report.Weather {
		rows = append(rows, reportRow{"Weather Condition", c.Label, strconv.Itoa(c.Total)})
	}
	rows = append(rows, reportRow{"Temperature", "Correlation", report.Correlation.Formatted()})
	rows = append(rows, reportRow{"Temperature", "Trend Slope (per °C)", fmt.Sprintf("%.2f", report.Correlation.Slope)})
	rows = append(rows, reportRow{"Temperature", "Trend Intercept", fmt.Sprintf("%.2f", report.Correlation.Intercept)})
	for _, c := range report.RenterTypes {
		rows = append(rows, reportRow{"Casual vs Registered", c.Label, strconv.Itoa(c.Total)})
	}
	rows = append(rows, reportRow{"Summary", "Rows", strconv.Itoa(report.Rows)})
	rows = append(rows, reportRow{"Summary", "Grand Total", strconv.Itoa(report.GrandTotal)})
	rows = append(rows, reportRow{"Summary", "Total Mismatches", strconv.Itoa(len(report.Quality.Mismatches))})

	return rows
}

func (r *ExportRepositoryImpl) ExportToCSV(report entity.Report, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if err := writer.Write([]string{"Section", "Label", "Value"}); err != nil {
		return "", fmt.Errorf("error writing CSV header: %w", err)
	}
	for _, row := range flattenReport(report) {
		if err := writer.Write([]string{row.Section, row.Label, row.Value}); err != nil {
			return "", fmt.Errorf("error writing CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("error flushing CSV file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportToJSON(report entity.Report, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportToPDF(report entity.Report, charts []repository.ChartImage, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{40, 40, 40}
	headerTextColor := [3]int{255, 255, 255}
	sectionTitleColor := [3]int{0, 0, 0}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		footerText := fmt.Sprintf("Generated by Bike Rental Dashboard (Go) | %s | run %s",
			report.GeneratedAt.Format("2006-01-02"), report.RunID)
		pdf.CellFormat(0, 10, tr(footerText), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "R", false, 0, "")
	})

	drawSectionTitle := func(title string) {
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, tr(title))
		pdf.Ln(7)
		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)
	}

	pdf.AddPage()

	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, tr("  Bike Rental Dashboard"), "", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("  Source: %s | Rows: %d | Total rentals: %d",
		report.Source, report.Rows, report.GrandTotal)), "", 1, "L", true, 0, "")
	pdf.Ln(8)

	// Tabelas por seção
	current := ""
	for _, row := range flattenReport(report) {
		if row.Section != current {
			if current != "" {
				pdf.Ln(4)
			}
			current = row.Section
			drawSectionTitle(row.Section)
			pdf.SetFont("Arial", "", 10)
			pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		}
		pdf.CellFormat(95, 6, tr(row.Label), "B", 0, "L", false, 0, "")
		pdf.CellFormat(95, 6, tr(row.Value), "B", 1, "R", false, 0, "")
	}

	// Gráficos, dois por página
	for _, page := range chartPages(charts) {
		pdf.AddPage()
		for _, c := range page {
			drawSectionTitle(c.Title)

			name := "chart_" + c.ID
			pdf.RegisterImageOptionsReader(name, gofpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(c.PNG))
			pdf.ImageOptions(name, pdf.GetX(), pdf.GetY(), 190, 0, true, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")
			pdf.Ln(6)
		}
	}

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

const chartsPerPage = 2

// chartPages agrupa os gráficos com PNG em páginas de chartsPerPage. Gráficos sem PNG são ignorados.
func chartPages(charts []repository.ChartImage) [][]repository.ChartImage {
	var pages [][]repository.ChartImage
	embedded := 0
	for _, c := range charts {
		if len(c.PNG) == 0 {
			continue
		}
		if embedded%chartsPerPage == 0 {
			pages = append(pages, nil)
		}
		pages[len(pages)-1] = append(pages[len(pages)-1], c)
		embedded++
	}
	return pages
}

func (r *ExportRepositoryImpl) ExportToXLSX(report entity.Report, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "xlsx")
	if err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const summarySheet = "Summary"
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return "", fmt.Errorf("error preparing workbook: %w", err)
	}

	sheets := []struct {
		name    string
		headers []string
		rows    [][]interface{}
	}{
		{
			name:    summarySheet,
			headers: []string{"Section", "Label", "Value"},
			rows:    summaryRows(report),
		},
		{
			name:    "Monthly Trend",
			headers: []string{"Year", "Month", "Date", "Total Rentals"},
			rows:    trendRows(report.Trends),
		},
		{
			name:    "Day Type",
			headers: []string{"Day Type", "Total Rentals"},
			rows:    categoryRows(report.DayTypes),
		},
		{
			name:    "Weather",
			headers: []string{"Weather Condition", "Total Rentals"},
			rows:    categoryRows(report.Weather),
		},
		{
			name:    "Temperature",
			headers: []string{"Temperature (Celsius)", "Rentals"},
			rows:    temperatureRows(report.Correlation.Points),
		},
		{
			name:    "Renter Type",
			headers: []string{"Renter Type", "Total"},
			rows:    categoryRows(report.RenterTypes),
		},
	}

	for _, sheet := range sheets {
		if sheet.name != summarySheet {
			if _, err := f.NewSheet(sheet.name); err != nil {
				return "", fmt.Errorf("error creating sheet %s: %w", sheet.name, err)
			}
		}
		if err := writeSheet(f, sheet.name, sheet.headers, sheet.rows); err != nil {
			return "", err
		}
	}

	if err := f.SaveAs(outputFilename); err != nil {
		return "", fmt.Errorf("error writing XLSX file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func writeSheet(f *excelize.File, sheet string, headers []string, rows [][]interface{}) error {
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("error writing %s header: %w", sheet, err)
		}
		col, _ := excelize.ColumnNumberToName(i + 1)
		_ = f.SetColWidth(sheet, col, col, 22)
	}
	for r, row := range rows {
		for c, value := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("error writing %s!%s: %w", sheet, cell, err)
			}
		}
	}
	return nil
}

func summaryRows(report entity.Report) [][]interface{} {
	flat := flattenReport(report)
	rows := make([][]interface{}, len(flat))
	for i, row := range flat {
		rows[i] = []interface{}{row.Section, row.Label, row.Value}
	}
	return rows
}

func trendRows(trends []entity.YearTrend) [][]interface{} {
	rows := [][]interface{}{}
	for _, trend := range trends {
		for _, m := range trend.Months {
			rows = append(rows, []interface{}{m.Year, m.Date.Format("January"), m.Date.Format("2006-01-02"), m.Count})
		}
	}
	return rows
}

func categoryRows(totals []entity.CategoryTotal) [][]interface{} {
	rows := make([][]interface{}, len(totals))
	for i, c := range totals {
		rows[i] = []interface{}{c.Label, c.Total}
	}
	return rows
}

func temperatureRows(points []entity.TemperaturePoint) [][]interface{} {
	rows := make([][]interface{}, len(points))
	for i, p := range points {
		rows[i] = []interface{}{p.Celsius, p.Count}
	}
	return rows
}

// ExportCharts grava cada gráfico como <id>.svg e <id>.png em outputDir.
func (r *ExportRepositoryImpl) ExportCharts(charts []repository.ChartImage, outputDir string) ([]string, error) {
	if outputDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("could not get current working directory: %w", err)
		}
		outputDir = cwd
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("error creating output directory '%s': %w", outputDir, err)
	}

	written := []string{}
	for _, c := range charts {
		files := []struct {
			ext  string
			data []byte
		}{{"svg", c.SVG}, {"png", c.PNG}}
		for _, file := range files {
			if len(file.data) == 0 {
				continue
			}
			path := filepath.Join(outputDir, fmt.Sprintf("%s.%s", c.ID, file.ext))
			if err := os.WriteFile(path, file.data, 0644); err != nil {
				return written, fmt.Errorf("error writing chart %s: %w", path, err)
			}
			written = append(written, path)
		}
	}

	return written, nil
}

func generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}
