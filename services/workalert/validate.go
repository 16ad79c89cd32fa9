package workalert

import (
	"fmt"
	"time"

	"fundi/models"
	"fundi/utils"
)

// updatableAlertFields are the work-alert fields a partial update may touch.
// Identity, type, receiver snapshot, and timestamps are server-owned.
var updatableAlertFields = map[string]bool{
	"subserviceId": true,
	"description":  true,
	"images":       true,
	"location":     true,
}

// updatableApprovalFields extends the alert set with the terms a worker quoted.
var updatableApprovalFields = map[string]bool{
	"subserviceId": true,
	"description":  true,
	"location":     true,
	"dateTime":     true,
	"ratePerUnit":  true,
	"unit":         true,
}

func validateAlertInput(input models.WorkAlertInput) error {
	switch {
	case input.SenderID == "":
		return utils.NewRequiredFieldError("senderId")
	case input.SubserviceID == "":
		return utils.NewRequiredFieldError("subserviceId")
	case input.Description == "":
		return utils.NewRequiredFieldError("description")
	case input.Location == nil:
		return utils.NewRequiredFieldError("location")
	}
	return nil
}

func validateAlertRejection(input models.WorkAlertRejectionInput) error {
	switch {
	case input.SenderID == "":
		return utils.NewRequiredFieldError("senderId")
	case input.WorkAlertID == "":
		return utils.NewRequiredFieldError("workAlertId")
	}
	return nil
}

func validateApprovalInput(input models.WorkApprovalRequestInput) (time.Time, error) {
	switch {
	case input.SenderID == "":
		return time.Time{}, utils.NewRequiredFieldError("senderId")
	case input.WorkAlertID == "":
		return time.Time{}, utils.NewRequiredFieldError("workAlertId")
	case input.SubserviceID == "":
		return time.Time{}, utils.NewRequiredFieldError("subserviceId")
	case input.Description == "":
		return time.Time{}, utils.NewRequiredFieldError("description")
	case input.Location == nil:
		return time.Time{}, utils.NewRequiredFieldError("location")
	case input.DateTime == "":
		return time.Time{}, utils.NewRequiredFieldError("dateTime")
	case input.RatePerUnit <= 0:
		return time.Time{}, &utils.ValidationError{Field: "ratePerUnit", Reason: "must be greater than zero"}
	case input.Unit == "":
		return time.Time{}, utils.NewRequiredFieldError("unit")
	}
	if err := requireReceiver(input.ReceiverIDs); err != nil {
		return time.Time{}, err
	}
	return parseDateTime(input.DateTime)
}

func validateConfirmationInput(input models.WorkConfirmationInput) error {
	switch {
	case input.SenderID == "":
		return utils.NewRequiredFieldError("senderId")
	case input.WorkAlertID == "":
		return utils.NewRequiredFieldError("workAlertId")
	case input.WorkApprovalRequestID == "":
		return utils.NewRequiredFieldError("workApprovalRequestId")
	case input.SubserviceID == "":
		return utils.NewRequiredFieldError("subserviceId")
	case input.DateTime == "":
		return utils.NewRequiredFieldError("dateTime")
	case input.RatePerUnit <= 0:
		return &utils.ValidationError{Field: "ratePerUnit", Reason: "must be greater than zero"}
	case input.Unit == "":
		return utils.NewRequiredFieldError("unit")
	}
	return requireReceiver(input.ReceiverIDs)
}

func validateRejectionInput(input models.WorkRejectionInput) error {
	switch {
	case input.SenderID == "":
		return utils.NewRequiredFieldError("senderId")
	case input.WorkAlertID == "":
		return utils.NewRequiredFieldError("workAlertId")
	case input.WorkApprovalRequestID == "":
		return utils.NewRequiredFieldError("workApprovalRequestId")
	}
	return requireReceiver(input.ReceiverIDs)
}

// requireReceiver enforces the protocol's point-to-point shape: after the
// initial fan-out, every message addresses exactly one party.
func requireReceiver(receiverIDs []string) error {
	if len(receiverIDs) != 1 || receiverIDs[0] == "" {
		return &utils.ValidationError{Field: "receiverIds", Reason: "must contain exactly one id"}
	}
	return nil
}

func parseDateTime(raw string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, &utils.ValidationError{Field: "dateTime", Reason: "must be an RFC 3339 timestamp"}
	}
	return t, nil
}

// validateNotificationUpdate filters a partial update against the allowed
// field set, type-checks values, and rewrites dateTime to a time.Time.
func validateNotificationUpdate(fields map[string]any, allowed map[string]bool) (map[string]any, error) {
	if len(fields) == 0 {
		return nil, &utils.ValidationError{Field: "fields", Reason: "no fields to update"}
	}
	out := make(map[string]any, len(fields))
	for name, value := range fields {
		if !allowed[name] {
			return nil, &utils.ValidationError{Field: name, Reason: "cannot be updated"}
		}
		switch name {
		case "subserviceId", "description", "unit":
			s, ok := value.(string)
			if !ok || s == "" {
				return nil, &utils.ValidationError{Field: name, Reason: "must be a non-empty string"}
			}
			out[name] = s
		case "images":
			imgs, err := toStringSlice(value)
			if err != nil {
				return nil, &utils.ValidationError{Field: name, Reason: "must be a list of strings"}
			}
			out[name] = imgs
		case "location":
			loc, err := toLocation(value)
			if err != nil {
				return nil, err
			}
			out[name] = loc
		case "dateTime":
			s, ok := value.(string)
			if !ok {
				return nil, &utils.ValidationError{Field: name, Reason: "must be an RFC 3339 timestamp"}
			}
			t, err := parseDateTime(s)
			if err != nil {
				return nil, err
			}
			out[name] = t
		case "ratePerUnit":
			f, err := toFloat(value)
			if err != nil || f <= 0 {
				return nil, &utils.ValidationError{Field: name, Reason: "must be a number greater than zero"}
			}
			out[name] = f
		}
	}
	return out, nil
}

func toStringSlice(value any) ([]string, error) {
	switch v := value.(type) {
	case []string:
		return v, nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("non-string element %v", item)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unexpected type %T", value)
	}
}

func toFloat(value any) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("unexpected type %T", value)
	}
}

func toLocation(value any) (*models.Location, error) {
	switch v := value.(type) {
	case *models.Location:
		return v, nil
	case models.Location:
		return &v, nil
	case map[string]any:
		lat, latErr := toFloat(v["latitude"])
		lng, lngErr := toFloat(v["longitude"])
		if latErr != nil || lngErr != nil {
			return nil, &utils.ValidationError{Field: "location", Reason: "must have numeric latitude and longitude"}
		}
		return &models.Location{Latitude: lat, Longitude: lng}, nil
	default:
		return nil, &utils.ValidationError{Field: "location", Reason: "must be a coordinate pair"}
	}
}
