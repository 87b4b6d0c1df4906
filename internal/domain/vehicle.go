package domain

import "math"

// Tolerance in miles for the range = mpg x capacity consistency check when
// all three parameters are supplied externally.
const rangeConsistencyToleranceMiles = 1.0

// VehicleProfile describes the vehicle the fuel plan is computed for.
// TankCapacityGal is the derived quantity range / mpg; SafetyMargin is the
// fraction of range preferred when searching for the next stop.
type VehicleProfile struct {
	RangeMiles      float64
	MPG             float64
	TankCapacityGal float64
	SafetyMargin    float64
}

// NewVehicleProfile derives tank capacity from range and fuel efficiency.
func NewVehicleProfile(rangeMiles, mpg, safetyMargin float64) (VehicleProfile, error) {
	if err := validateVehicleParams(rangeMiles, mpg, safetyMargin); err != nil {
		return VehicleProfile{}, err
	}

	return VehicleProfile{
		RangeMiles:      rangeMiles,
		MPG:             mpg,
		TankCapacityGal: rangeMiles / mpg,
		SafetyMargin:    safetyMargin,
	}, nil
}

// NewVehicleProfileWithTank accepts an externally supplied tank capacity and
// verifies it is consistent with range and efficiency.
func NewVehicleProfileWithTank(rangeMiles, mpg, tankCapacityGal, safetyMargin float64) (VehicleProfile, error) {
	if err := validateVehicleParams(rangeMiles, mpg, safetyMargin); err != nil {
		return VehicleProfile{}, err
	}
	if tankCapacityGal <= 0 {
		return VehicleProfile{}, &InvalidVehicleError{Param: "tank_capacity", Value: tankCapacityGal, Reason: "must be positive"}
	}

	if math.Abs(mpg*tankCapacityGal-rangeMiles) > rangeConsistencyToleranceMiles {
		return VehicleProfile{}, &InvalidVehicleError{
			Param:  "tank_capacity",
			Value:  tankCapacityGal,
			Reason: "range does not match mpg x capacity",
		}
	}

	return VehicleProfile{
		RangeMiles:      rangeMiles,
		MPG:             mpg,
		TankCapacityGal: tankCapacityGal,
		SafetyMargin:    safetyMargin,
	}, nil
}

// EffectiveRangeMiles is the margin-reduced range preferred when selecting
// the next stop.
func (v VehicleProfile) EffectiveRangeMiles() float64 {
	return v.RangeMiles * v.SafetyMargin
}

func validateVehicleParams(rangeMiles, mpg, safetyMargin float64) error {
	if mpg <= 0 || math.IsNaN(mpg) || math.IsInf(mpg, 0) {
		return &InvalidVehicleError{Param: "mpg", Value: mpg, Reason: "must be positive"}
	}
	if rangeMiles <= 0 || math.IsNaN(rangeMiles) || math.IsInf(rangeMiles, 0) {
		return &InvalidVehicleError{Param: "range_miles", Value: rangeMiles, Reason: "must be positive"}
	}
	if safetyMargin <= 0 || safetyMargin > 1 {
		return &InvalidVehicleError{Param: "safety_margin", Value: safetyMargin, Reason: "must be in (0, 1]"}
	}
	return nil
}
