package usecase

import (
	"encoding/json"
	"errors"
	"net/url"
	"strings"
)

var ErrInvalidCallbackData = errors.New("invalid callback data")

// CallbackData carries the identifiers the processor appends to the return URL.
type CallbackData struct {
	PaymentID string `json:"paymentId"`
	PayerID   string `json:"PayerID"`
}

// ParseCallbackData accepts the callback payload either as a mapping
// (map[string]string, map[string]any, url.Values) or as an object
// (CallbackData or any struct JSON-tagged with paymentId / PayerID).
func ParseCallbackData(data any) (CallbackData, error) {
	var out CallbackData
	switch v := data.(type) {
	case nil:
		return out, ErrInvalidCallbackData
	case CallbackData:
		out = v
	case *CallbackData:
		if v == nil {
			return out, ErrInvalidCallbackData
		}
		out = *v
	case url.Values:
		out = CallbackData{PaymentID: v.Get("paymentId"), PayerID: v.Get("PayerID")}
	case map[string]string:
		out = CallbackData{PaymentID: v["paymentId"], PayerID: v["PayerID"]}
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return out, errors.Join(ErrInvalidCallbackData, err)
		}
		if err := json.Unmarshal(b, &out); err != nil {
			return out, errors.Join(ErrInvalidCallbackData, err)
		}
	}

	out.PaymentID = strings.TrimSpace(out.PaymentID)
	out.PayerID = strings.TrimSpace(out.PayerID)
	if out.PaymentID == "" || out.PayerID == "" {
		return out, ErrInvalidCallbackData
	}
	return out, nil
}
