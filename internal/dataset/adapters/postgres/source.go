package postgres

import (
	"context"
	"fmt"

	"emissions-dashboard-service/internal/dataset/core/domain"
	"emissions-dashboard-service/internal/dataset/core/ports"

	"github.com/lib/pq"
)

type RowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
}

// VehicleSource reads the whole vehicle table once.
type VehicleSource struct {
	db    DB
	table string
}

func NewVehicleSource(db DB, table string) *VehicleSource {
	return &VehicleSource{db: db, table: table}
}

var _ ports.DatasetSourcePort = (*VehicleSource)(nil)

func (s *VehicleSource) Describe() string { return "postgres:" + s.table }

func (s *VehicleSource) selectSQL() string {
	return `
SELECT
    make,
    model,
    vehicle_class,
    cylinders,
    fuel_type,
    fuelconsumption_city,
    fuelconsumption_hwy,
    fuelconsumption_comb_mpg,
    co2emissions
FROM ` + pq.QuoteIdentifier(s.table) + `
ORDER BY make, model`
}

func (s *VehicleSource) Load(ctx context.Context) (*domain.Dataset, error) {
	rows, err := s.db.QueryContext(ctx, s.selectSQL())
	if err != nil {
		return nil, &domain.DataLoadError{Source: s.Describe(), Err: err}
	}
	defer rows.Close()

	var records []domain.VehicleRecord
	for rows.Next() {
		var r domain.VehicleRecord
		if err := rows.Scan(
			&r.Make,
			&r.Model,
			&r.VehicleClass,
			&r.Cylinders,
			&r.FuelType,
			&r.FuelConsumptionCity,
			&r.FuelConsumptionHwy,
			&r.FuelConsumptionCombMPG,
			&r.CO2Emissions,
		); err != nil {
			return nil, &domain.DataLoadError{
				Source: s.Describe(),
				Err:    fmt.Errorf("scan row %d: %w", len(records)+1, err),
			}
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, &domain.DataLoadError{Source: s.Describe(), Err: err}
	}

	return domain.FromRecords(s.Describe(), records)
}
