package source

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/catalog-explorer/server/internal/catalog/model"
)

var ErrNotArray = errors.New("catalog document is not a JSON array")

// Decode parses a JSON array of objects, keeping each object's field order.
// A null element decodes to a nil record.
func Decode(data []byte) ([]*model.RawRecord, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, ErrNotArray
	}

	var records []*model.RawRecord
	if err := json.Unmarshal(trimmed, &records); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return records, nil
}
