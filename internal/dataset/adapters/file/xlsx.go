package file

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"emissions-dashboard-service/internal/dataset/core/domain"
	"emissions-dashboard-service/internal/dataset/core/ports"

	"github.com/xuri/excelize/v2"
)

type XLSXSource struct {
	path  string
	sheet string
}

// NewXLSXSource reads the given sheet; an empty sheet name means the first one.
func NewXLSXSource(path, sheet string) *XLSXSource {
	return &XLSXSource{path: path, sheet: sheet}
}

var _ ports.DatasetSourcePort = (*XLSXSource)(nil)

func (s *XLSXSource) Describe() string {
	if s.sheet == "" {
		return "xlsx:" + s.path
	}
	return fmt.Sprintf("xlsx:%s#%s", s.path, s.sheet)
}

func (s *XLSXSource) Load(ctx context.Context) (*domain.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.path)
	if err != nil {
		return nil, &domain.DataLoadError{Source: s.Describe(), Err: err}
	}
	defer f.Close()

	return ReadXLSX(s.Describe(), f, s.sheet)
}

// ReadXLSX reads one sheet whose first non-empty row is the header.
func ReadXLSX(source string, r io.Reader, sheet string) (*domain.Dataset, error) {
	book, err := excelize.OpenReader(r)
	if err != nil {
		return nil, &domain.DataLoadError{Source: source, Err: fmt.Errorf("open workbook: %w", err)}
	}
	defer book.Close()

	if sheet == "" {
		sheets := book.GetSheetList()
		if len(sheets) == 0 {
			return nil, &domain.DataLoadError{Source: source, Err: fmt.Errorf("workbook has no sheets")}
		}
		sheet = sheets[0]
	}

	rows, err := book.GetRows(sheet)
	if err != nil {
		return nil, &domain.DataLoadError{Source: source, Err: fmt.Errorf("read sheet %s: %w", sheet, err)}
	}

	var header []string
	var body [][]string
	for _, row := range rows {
		if isBlankRow(row) {
			continue
		}
		if header == nil {
			header = row
			continue
		}
		body = append(body, padRow(row, len(header)))
	}
	if header == nil {
		return nil, &domain.DataLoadError{Source: source, Err: fmt.Errorf("sheet %s is empty", sheet)}
	}

	return domain.FromTable(source, header, body)
}

func isBlankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// padRow restores trailing cells excelize drops when they are empty.
func padRow(row []string, width int) []string {
	if len(row) >= width {
		return row
	}
	out := make([]string, width)
	copy(out, row)
	return out
}
