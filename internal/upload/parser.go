package upload

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"welfare-fraud-system/internal/models"
)

// ParseDataset разбирает загруженный файл в обобщенную таблицу.
// CSV распознается по расширению, все остальное пробуем как XLSX.
// Если XLSX не читается, пробуем CSV: пользователи нередко переименовывают
// CSV-файлы в табличные расширения.
func ParseDataset(data []byte, filename string) (*models.RawTable, error) {
	suffix := strings.ToLower(filepath.Ext(filename))

	if suffix == ".csv" {
		table, err := parseCSV(data)
		if err != nil {
			return nil, fmt.Errorf("invalid CSV file: %w", err)
		}
		return table, nil
	}

	table, xlsxErr := parseXLSX(data)
	if xlsxErr == nil {
		return table, nil
	}

	if table, err := parseCSV(data); err == nil {
		return table, nil
	}

	return nil, fmt.Errorf("unable to parse uploaded file, expected .xlsx or .csv dataset: %w", xlsxErr)
}

// parseCSV читает CSV: первая строка — заголовки, остальные — записи
func parseCSV(data []byte) (*models.RawTable, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1 // строки с разным числом ячеек дочищает Cleaner
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("file contains no rows")
	}

	return &models.RawTable{
		Headers: rows[0],
		Rows:    rows[1:],
	}, nil
}

// parseXLSX читает первый лист книги XLSX
func parseXLSX(data []byte) (*models.RawTable, error) {
	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return &models.RawTable{}, nil
	}

	return &models.RawTable{
		Headers: rows[0],
		Rows:    rows[1:],
	}, nil
}
