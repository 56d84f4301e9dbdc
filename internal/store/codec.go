package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"fjacquet/fintrack/internal/models"

	"gopkg.in/yaml.v3"
)

// Format is the serialization of the collection.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat parses a format name; "yml" is accepted for yaml.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown store format %q (expected json or yaml)", s)
}

func (f Format) orDefault() Format {
	if f == "" {
		return FormatJSON
	}
	return f
}

// Encode serializes txs. A nil collection is written as an empty list.
func (f Format) Encode(txs []models.Transaction) ([]byte, error) {
	if txs == nil {
		txs = []models.Transaction{}
	}
	switch f.orDefault() {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(txs); err != nil {
			return nil, fmt.Errorf("failed to encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("failed to encode yaml: %w", err)
		}
		return buf.Bytes(), nil
	case FormatJSON:
		data, err := json.MarshalIndent(txs, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode json: %w", err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("unknown store format %q", f)
}

// Decode parses data. Empty or whitespace-only input decodes to an empty
// collection.
func (f Format) Decode(data []byte) ([]models.Transaction, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return []models.Transaction{}, nil
	}
	var txs []models.Transaction
	switch f.orDefault() {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &txs); err != nil {
			return nil, fmt.Errorf("failed to decode yaml: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &txs); err != nil {
			return nil, fmt.Errorf("failed to decode json: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown store format %q", f)
	}
	if txs == nil {
		txs = []models.Transaction{}
	}
	return txs, nil
}
