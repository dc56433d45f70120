package upload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestParseDataset_CSV(t *testing.T) {
	data := []byte("Citizen ID,Aadhaar Verified,Claim Count,Account Status,Scheme Amount\nC-001,TRUE,2,ACTIVE,4500\nC-002,FALSE,5,SUSPENDED,9000\n")

	table, err := ParseDataset(data, "claims.csv")
	require.NoError(t, err)

	assert.Equal(t, []string{"Citizen ID", "Aadhaar Verified", "Claim Count", "Account Status", "Scheme Amount"}, table.Headers)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"C-001", "TRUE", "2", "ACTIVE", "4500"}, table.Rows[0])
}

func TestParseDataset_CSV_UnevenRows(t *testing.T) {
	data := []byte("Citizen ID,Claim Count\nC-001,2,extra\nC-002\n")

	table, err := ParseDataset(data, "claims.csv")
	require.NoError(t, err)
	require.Len(t, table.Rows, 2)
	assert.Len(t, table.Rows[0], 3)
	assert.Len(t, table.Rows[1], 1)
}

func TestParseDataset_CSV_HeaderOnly(t *testing.T) {
	data := []byte("Citizen ID,Claim Count\n")

	table, err := ParseDataset(data, "claims.csv")
	require.NoError(t, err)
	assert.Equal(t, []string{"Citizen ID", "Claim Count"}, table.Headers)
	assert.Empty(t, table.Rows)
}

func TestParseDataset_CSV_Empty(t *testing.T) {
	_, err := ParseDataset([]byte(""), "claims.csv")
	assert.Error(t, err)
}

func TestParseDataset_XLSX(t *testing.T) {
	workbook := excelize.NewFile()
	sheet := workbook.GetSheetName(0)
	require.NoError(t, workbook.SetSheetRow(sheet, "A1", &[]interface{}{"Citizen ID", "Claim Count"}))
	require.NoError(t, workbook.SetSheetRow(sheet, "A2", &[]interface{}{"C-001", 2}))

	buf, err := workbook.WriteToBuffer()
	require.NoError(t, err)

	table, err := ParseDataset(buf.Bytes(), "claims.xlsx")
	require.NoError(t, err)

	assert.Equal(t, []string{"Citizen ID", "Claim Count"}, table.Headers)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, []string{"C-001", "2"}, table.Rows[0])
}

func TestParseDataset_MisnamedCSVFallsBack(t *testing.T) {
	// CSV, переименованный в .xlsx, все равно разбирается
	data := []byte("Citizen ID,Claim Count\nC-001,2\n")

	table, err := ParseDataset(data, "claims.xlsx")
	require.NoError(t, err)
	assert.Equal(t, []string{"Citizen ID", "Claim Count"}, table.Headers)
}

func TestParseDataset_Unparseable(t *testing.T) {
	// Не XLSX и не валидный CSV (незакрытая кавычка)
	_, err := ParseDataset([]byte(`"unterminated`), "claims.xlsx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unable to parse uploaded file")
}
