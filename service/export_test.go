package service

import (
	"strings"
	"testing"

	"taxcalc/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleRows() []models.HomepageRow {
	return []models.HomepageRow{
		{ID: 1, Firstname: "A", Lastname: "B", Email: "a@b.com", SumIncome: decimal.NewNullDecimal(decimal.NewFromInt(500))},
		{ID: 2, Firstname: "C", Lastname: "D", Email: "c@d.com"},
	}
}

func TestHomepageHeaders(t *testing.T) {
	headers := HomepageHeaders()
	assert.Equal(t, "id", headers[0])
	assert.Equal(t, "sum_income", headers[12])
	assert.Equal(t, "other", headers[len(headers)-1])
}

func TestHomepageWorkbook(t *testing.T) {
	buf, err := HomepageWorkbook(sampleRows())
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(homepageSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "email", rows[0][3])
	assert.Equal(t, "a@b.com", rows[1][3])
}

func TestHomepageCSV(t *testing.T) {
	buf, err := HomepageCSV(sampleRows())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(strings.TrimPrefix(buf.String(), "\xEF\xBB\xBF")), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "id,firstname,lastname,email,salary"))
	assert.Equal(t, "1,A,B,a@b.com,,,,,,,,,500.00,,,,,", lines[1])
	assert.Equal(t, "2,C,D,c@d.com,,,,,,,,,,,,,,", lines[2])
}

func TestHomepageCSV_EscapesFormulas(t *testing.T) {
	rows := []models.HomepageRow{
		{ID: 1, Firstname: "=1+1", Lastname: "@SUM(A1)", Email: "-x@y.com",
			Salary: decimal.NewNullDecimal(decimal.NewFromInt(-5))},
		{ID: 2, Firstname: "+cmd", Lastname: "Normal", Email: "n@y.com"},
	}
	buf, err := HomepageCSV(rows)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(strings.TrimPrefix(buf.String(), "\xEF\xBB\xBF")), "\n")
	require.Len(t, lines, 3)
	// 金额列是数字，不加前缀
	assert.True(t, strings.HasPrefix(lines[1], "1,'=1+1,'@SUM(A1),'-x@y.com,-5.00,"), lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "2,'+cmd,Normal,n@y.com,"), lines[2])
}
