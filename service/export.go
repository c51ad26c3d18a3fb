package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"taxcalc/models"

	"github.com/xuri/excelize/v2"
)

const homepageSheet = "Homepage"

// HomepageHeaders 导出表头，去掉表别名前缀
func HomepageHeaders() []string {
	headers := make([]string, len(models.HomepageColumns))
	for i, col := range models.HomepageColumns {
		if idx := strings.IndexByte(col, '.'); idx >= 0 {
			col = col[idx+1:]
		}
		headers[i] = col
	}
	return headers
}

// HomepageWorkbook 将首页数据写入 xlsx
func HomepageWorkbook(rows []models.HomepageRow) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", homepageSheet); err != nil {
		return nil, fmt.Errorf("设置工作表名称失败: %w", err)
	}

	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})
	if err != nil {
		return nil, fmt.Errorf("创建表头样式失败: %w", err)
	}
	dataStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
		NumFmt:    4, // #,##0.00
	})
	if err != nil {
		return nil, fmt.Errorf("创建数据样式失败: %w", err)
	}

	headers := HomepageHeaders()
	lastCol, _ := excelize.ColumnNumberToName(len(headers))
	if err := f.SetColWidth(homepageSheet, "A", lastCol, 16); err != nil {
		return nil, err
	}

	if err := f.SetSheetRow(homepageSheet, "A1", &headers); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(homepageSheet, "A1", lastCol+"1", headerStyle); err != nil {
		return nil, err
	}

	for i, r := range rows {
		cells := r.Cells()
		start := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(homepageSheet, start, &cells); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(homepageSheet, start, fmt.Sprintf("%s%d", lastCol, i+2), dataStyle); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("生成 Excel 失败: %w", err)
	}
	return buf, nil
}

// HomepageCSV 将首页数据写成 CSV，空值写为空字符串
func HomepageCSV(rows []models.HomepageRow) (*bytes.Buffer, error) {
	buf := new(bytes.Buffer)
	// BOM，Excel 打开时能识别 UTF-8
	buf.WriteString("\xEF\xBB\xBF")

	w := csv.NewWriter(buf)
	if err := w.Write(HomepageHeaders()); err != nil {
		return nil, err
	}
	for _, r := range rows {
		cells := r.Cells()
		record := make([]string, len(cells))
		for i, v := range cells {
			switch val := v.(type) {
			case nil:
			case float64:
				record[i] = fmt.Sprintf("%.2f", val)
			case string:
				record[i] = escapeFormula(val)
			default:
				record[i] = fmt.Sprint(val)
			}
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf, nil
}

// escapeFormula 以 = + - @ 开头的文本加单引号前缀，Excel 打开时不会当作公式执行
func escapeFormula(s string) string {
	if s != "" && strings.ContainsRune("=+-@", rune(s[0])) {
		return "'" + s
	}
	return s
}
