package entries

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/qrcontacts/internal/client/client"
	"github.com/dmitrijs2005/qrcontacts/internal/client/models"
	"github.com/dmitrijs2005/qrcontacts/internal/common"
)

type rejection struct {
	index  int
	reason string
}

// decodeEntries validates the read payload. A body that is not a JSON array
// is a ServerError; individual malformed elements are returned as rejections.
func decodeEntries(resp *client.Response) ([]models.Entry, []rejection, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(resp.Text())))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, nil, common.NewServerError(resp.Status, "unexpected response format")
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, nil, common.NewServerError(resp.Status, "unexpected response format")
	}

	list := make([]models.Entry, 0, len(items))
	var rejected []rejection
	for i, it := range items {
		e, err := decodeEntry(it)
		if err != nil {
			rejected = append(rejected, rejection{index: i, reason: err.Error()})
			continue
		}
		list = append(list, e)
	}
	return list, rejected, nil
}

func decodeEntry(v any) (models.Entry, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return models.Entry{}, fmt.Errorf("%w: element is %s, not an object", common.ErrValidation, kind(v))
	}

	name, err := text(obj, "name")
	if err != nil {
		return models.Entry{}, err
	}
	mobile, err := text(obj, "mobile")
	if err != nil {
		return models.Entry{}, err
	}

	qrv, ok := obj["qr"]
	if !ok || qrv == nil {
		qrv = obj["qrid"]
	}
	qr, err := qrValue(qrv)
	if err != nil {
		return models.Entry{}, err
	}

	return models.Entry{Name: name, Mobile: mobile, QR: qr}, nil
}

// text reads a string-like field. Numbers keep their literal form; a missing
// or null field is empty.
func text(obj map[string]any, key string) (string, error) {
	switch x := obj[key].(type) {
	case nil:
		return "", nil
	case string:
		return x, nil
	case json.Number:
		return x.String(), nil
	default:
		return "", fmt.Errorf("%w: %s is %s", common.ErrValidation, key, kind(x))
	}
}

func qrValue(v any) (models.QR, error) {
	switch x := v.(type) {
	case nil:
		return models.NoQR, nil
	case string:
		return models.QR(x), nil
	case json.Number:
		return models.QRFromNumber(x.String()), nil
	default:
		return models.NoQR, fmt.Errorf("%w: qr is %s", common.ErrValidation, kind(x))
	}
}

func kind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "a boolean"
	case []any:
		return "an array"
	case map[string]any:
		return "an object"
	case string:
		return "a string"
	case json.Number:
		return "a number"
	default:
		return fmt.Sprintf("%T", v)
	}
}
