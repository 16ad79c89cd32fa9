package location

import "context"

// Geocoder resolves human-readable place names. Implementations never return
// an error for "nothing found" — that is an empty string; errors are reserved
// for transport failures, and callers are expected to treat even those as
// best-effort (degrade to an empty name, never abort).
type Geocoder interface {
	// LocationNameFromCoordinates reverse-geocodes a coordinate pair to a
	// city or town name.
	LocationNameFromCoordinates(ctx context.Context, lat, lng float64) (string, error)
	// LocationNameFromPostalCode resolves a postal code to a city or town name.
	LocationNameFromPostalCode(ctx context.Context, code string) (string, error)
}
