package gainsight

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/dbsmedya/gsread/internal/types"
)

// envelope is the outer shape of every query response.
type envelope struct {
	Result    bool            `json:"result"`
	Data      json.RawMessage `json:"data"`
	ErrorDesc string          `json:"errorDesc"`
}

// DecodePage parses a 200 response body into a Page. The data member may be
// {"records": [...]} or a bare list; both become the same Page.
func DecodePage(body []byte) (*types.Page, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	if !env.Result {
		desc := env.ErrorDesc
		if desc == "" {
			desc = "Unknown error"
		}
		return nil, &APIError{Description: desc}
	}

	rawRecords, err := recordsOf(env.Data)
	if err != nil {
		return nil, err
	}

	records := make([]types.Record, 0, len(rawRecords))
	for _, raw := range rawRecords {
		rec, err := decodeRecord(raw)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return &types.Page{
		Records: records,
		Count:   len(records),
		Raw:     body,
	}, nil
}

// recordsOf picks the record list out of the data member.
func recordsOf(data json.RawMessage) ([]json.RawMessage, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, nil
	}

	switch data[0] {
	case '[':
		var list []json.RawMessage
		if err := json.Unmarshal(data, &list); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
		return list, nil
	case '{':
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(data, &obj); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
		inner, ok := obj["records"]
		if !ok {
			return nil, ErrUnexpectedFormat
		}
		inner = bytes.TrimSpace(inner)
		if bytes.Equal(inner, []byte("null")) {
			return nil, nil
		}
		var list []json.RawMessage
		if err := json.Unmarshal(inner, &list); err != nil {
			return nil, ErrUnexpectedFormat
		}
		return list, nil
	default:
		return nil, ErrUnexpectedFormat
	}
}

// decodeRecord keeps scalar values as they are and serialises nested objects
// and arrays to JSON strings.
func decodeRecord(raw json.RawMessage) (types.Record, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var m map[string]interface{}
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("%w: record is not an object", ErrUnexpectedFormat)
	}

	rec := make(types.Record, len(m))
	for k, v := range m {
		switch v.(type) {
		case string, json.Number, bool, nil:
			rec[k] = v
		default:
			b, _ := json.Marshal(v)
			rec[k] = string(b)
		}
	}
	return rec, nil
}
