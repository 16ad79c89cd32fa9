package booking

import (
	"time"

	"fundi/models"
	"fundi/utils"
)

var bookingStatuses = map[string]bool{
	models.BookingStatusPending:      true,
	models.BookingStatusCompleted:    true,
	models.BookingStatusNotCompleted: true,
}

// Fields a partial update may carry. Everything else on a booking document
// is derived server-side and must not be writable.
var updatableBookingFields = map[string]bool{
	"clientId":     true,
	"workerId":     true,
	"subserviceId": true,
	"dateTime":     true,
	"ratePerUnit":  true,
	"unit":         true,
	"status":       true,
	"location":     true,
}

// validateBookingInput checks required fields and types, returning the
// parsed dateTime on success.
func validateBookingInput(input models.BookingInput) (time.Time, error) {
	switch {
	case input.ClientID == "":
		return time.Time{}, utils.NewRequiredFieldError("clientId")
	case input.WorkerID == "":
		return time.Time{}, utils.NewRequiredFieldError("workerId")
	case input.SubserviceID == "":
		return time.Time{}, utils.NewRequiredFieldError("subserviceId")
	case input.DateTime == "":
		return time.Time{}, utils.NewRequiredFieldError("dateTime")
	case input.Unit == "":
		return time.Time{}, utils.NewRequiredFieldError("unit")
	case input.Status == "":
		return time.Time{}, utils.NewRequiredFieldError("status")
	case input.Location == nil:
		return time.Time{}, utils.NewRequiredFieldError("location")
	}

	if input.RatePerUnit < 0 {
		return time.Time{}, &utils.ValidationError{Field: "ratePerUnit", Reason: "must not be negative"}
	}
	if !bookingStatuses[input.Status] {
		return time.Time{}, &utils.ValidationError{
			Field:  "status",
			Reason: `must be "Pending", "Completed", or "Not Completed"`,
		}
	}

	dateTime, err := time.Parse(time.RFC3339, input.DateTime)
	if err != nil {
		return time.Time{}, &utils.ValidationError{Field: "dateTime", Reason: "must be an RFC 3339 timestamp"}
	}
	return dateTime, nil
}

// validateBookingUpdate checks a partial update's fields and types and
// returns a sanitized copy with dateTime parsed.
func validateBookingUpdate(fields map[string]any) (map[string]any, error) {
	sanitized := make(map[string]any, len(fields))
	for field, value := range fields {
		if !updatableBookingFields[field] {
			return nil, &utils.ValidationError{Field: field, Reason: "field is not updatable"}
		}

		switch field {
		case "clientId", "workerId", "subserviceId", "unit":
			s, ok := value.(string)
			if !ok || s == "" {
				return nil, &utils.ValidationError{Field: field, Reason: "must be a non-empty string"}
			}
			sanitized[field] = s

		case "ratePerUnit":
			rate, ok := toFloat(value)
			if !ok || rate < 0 {
				return nil, &utils.ValidationError{Field: field, Reason: "must be a non-negative number"}
			}
			sanitized[field] = rate

		case "status":
			s, ok := value.(string)
			if !ok || !bookingStatuses[s] {
				return nil, &utils.ValidationError{
					Field:  field,
					Reason: `must be "Pending", "Completed", or "Not Completed"`,
				}
			}
			sanitized[field] = s

		case "dateTime":
			s, ok := value.(string)
			if !ok {
				return nil, &utils.ValidationError{Field: field, Reason: "must be an RFC 3339 timestamp"}
			}
			dateTime, err := time.Parse(time.RFC3339, s)
			if err != nil {
				return nil, &utils.ValidationError{Field: field, Reason: "must be an RFC 3339 timestamp"}
			}
			sanitized[field] = dateTime

		case "location":
			loc, err := toLocation(value)
			if err != nil {
				return nil, err
			}
			sanitized[field] = loc
		}
	}
	return sanitized, nil
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

func toLocation(value any) (*models.Location, error) {
	badLocation := &utils.ValidationError{
		Field:  "location",
		Reason: "must be an object with latitude and longitude as numbers",
	}

	switch v := value.(type) {
	case *models.Location:
		if v == nil {
			return nil, badLocation
		}
		return v, nil
	case models.Location:
		return &v, nil
	case map[string]any:
		lat, latOK := toFloat(v["latitude"])
		lng, lngOK := toFloat(v["longitude"])
		if !latOK || !lngOK {
			return nil, badLocation
		}
		return &models.Location{Latitude: lat, Longitude: lng}, nil
	default:
		return nil, badLocation
	}
}
