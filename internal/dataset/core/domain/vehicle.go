package domain

// Canonical column names. Source headers are trimmed and upper-cased before
// being matched against these.
const (
	ColMake                   = "MAKE"
	ColModel                  = "MODEL"
	ColVehicleClass           = "VEHICLECLASS"
	ColCylinders              = "CYLINDERS"
	ColFuelType               = "FUELTYPE"
	ColFuelConsumptionCity    = "FUELCONSUMPTION_CITY"
	ColFuelConsumptionHwy     = "FUELCONSUMPTION_HWY"
	ColFuelConsumptionCombMPG = "FUELCONSUMPTION_COMB_MPG"
	ColCO2Emissions           = "CO2EMISSIONS"
)

type columnKind int

const (
	kindText columnKind = iota
	kindInt
	kindFloat
)

type requiredColumn struct {
	Name string
	Kind columnKind
}

// requiredColumns is the schema every source has to satisfy, in canonical order.
var requiredColumns = []requiredColumn{
	{ColMake, kindText},
	{ColModel, kindText},
	{ColVehicleClass, kindText},
	{ColCylinders, kindInt},
	{ColFuelType, kindText},
	{ColFuelConsumptionCity, kindFloat},
	{ColFuelConsumptionHwy, kindFloat},
	{ColFuelConsumptionCombMPG, kindFloat},
	{ColCO2Emissions, kindFloat},
}

// RequiredColumns returns the canonical column names every dataset carries.
func RequiredColumns() []string {
	names := make([]string, len(requiredColumns))
	for i, c := range requiredColumns {
		names[i] = c.Name
	}
	return names
}

type VehicleRecord struct {
	Make                   string
	Model                  string
	VehicleClass           string
	Cylinders              int
	FuelType               string
	FuelConsumptionCity    float64 // L/100km
	FuelConsumptionHwy     float64 // L/100km
	FuelConsumptionCombMPG float64
	CO2Emissions           float64 // g/km
}

// ColumnInfo describes one column of a loaded dataset.
type ColumnInfo struct {
	Name    string
	Numeric bool
}
