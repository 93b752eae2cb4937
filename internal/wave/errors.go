package wave

import "errors"

// Invariant violations reported by Params.Validate.
var (
	// ErrBoundaryOrder indicates boundary1 >= boundary2 or a boundary
	// outside the spatial domain.
	ErrBoundaryOrder = errors.New("wave: medium boundaries out of order")

	// ErrNonPositiveIndex indicates a refractive index <= 0.
	ErrNonPositiveIndex = errors.New("wave: refractive index must be positive")

	// ErrNonPositiveWavelength indicates a wavelength <= 0.
	ErrNonPositiveWavelength = errors.New("wave: wavelength must be positive")
)

// ErrUnknownScenario is returned by ScenarioByName for names not in Scenarios.
var ErrUnknownScenario = errors.New("wave: unknown scenario")
