package domain

// MinVehicleYear is the oldest model year the service accepts.
const MinVehicleYear = 1950

// Vehicle represents a vehicle in the fleet. The ID is assigned by the
// store on creation; updates replace name, brand and year wholesale.
type Vehicle struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Brand string `json:"brand"`
	Year  int    `json:"year"`
}
