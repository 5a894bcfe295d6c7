package file

import (
	"context"
	"fmt"
	"io"
	"os"

	"emissions-dashboard-service/internal/dataset/core/domain"
	"emissions-dashboard-service/internal/dataset/core/ports"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

type CSVSource struct {
	path string
}

func NewCSVSource(path string) *CSVSource {
	return &CSVSource{path: path}
}

var _ ports.DatasetSourcePort = (*CSVSource)(nil)

func (s *CSVSource) Describe() string { return "csv:" + s.path }

func (s *CSVSource) Load(ctx context.Context) (*domain.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.path)
	if err != nil {
		return nil, &domain.DataLoadError{Source: s.Describe(), Err: err}
	}
	defer f.Close()

	return ReadCSV(s.Describe(), f)
}

// ReadCSV parses CSV with a header row. Every cell is read as text and the
// header is loaded as a plain record, so gota neither renames columns nor
// turns cells such as "NA" into NaN. Typing is left to the domain so
// malformed numbers fail the load instead of becoming NaN.
func ReadCSV(source string, r io.Reader) (*domain.Dataset, error) {
	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(false),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(nil),
	)
	if df.Err != nil {
		return nil, &domain.DataLoadError{Source: source, Err: fmt.Errorf("parse csv: %w", df.Err)}
	}

	// records[0] holds gota's generated names; the file header follows.
	records := df.Records()
	if len(records) < 2 {
		return nil, &domain.DataLoadError{Source: source, Err: fmt.Errorf("parse csv: no header row")}
	}
	return domain.FromTable(source, records[1], records[2:])
}
