package ecvis

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// SignatureParser defines the interface for parsing toy signatures from various sources.
type SignatureParser interface {
	// ParseSignatures parses signatures from a source and returns them.
	ParseSignatures(source string) ([]MessageSignature, error)
}

// JSONParser parses signatures from JSON files.
type JSONParser struct {
	N            int64  // Toy group order, used to hash messages when z is absent
	MessageField string // Field name for message (default: "message")
	RField       string // Field name for r (default: "r")
	SField       string // Field name for s (default: "s")
	ZField       string // Field name for z/hash (default: "z")
}

// ParseSignatures parses signatures from a JSON file.
//
// Expected format:
//
//	[
//	  {"message": "...", "r": 6, "s": 1},
//	  {"z": 4, "r": "0x6", "s": "4"}
//	]
func (p *JSONParser) ParseSignatures(jsonFile string) ([]MessageSignature, error) {
	file, err := os.Open(jsonFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	decoder.UseNumber()

	var items []map[string]interface{}
	if err := decoder.Decode(&items); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	messageField := orDefault(p.MessageField, "message")
	rField := orDefault(p.RField, "r")
	sField := orDefault(p.SField, "s")
	zField := orDefault(p.ZField, "z")

	signatures := make([]MessageSignature, 0, len(items))
	for idx, item := range items {
		var sig MessageSignature

		if zVal, ok := item[zField]; ok {
			z, err := parseInt(zVal)
			if err != nil {
				return nil, fmt.Errorf("signature %d: failed to parse z: %w", idx, err)
			}
			sig.Z = z
		} else if msgVal, ok := item[messageField]; ok {
			message, ok := msgVal.(string)
			if !ok {
				return nil, fmt.Errorf("signature %d: message field must be a string", idx)
			}
			if p.N < 2 {
				return nil, fmt.Errorf("signature %d: hashing a message needs the group order n", idx)
			}
			sig.Z = HashMessage([]byte(message), p.N)
		} else {
			return nil, fmt.Errorf("signature %d: missing message or z field", idx)
		}

		rVal, ok := item[rField]
		if !ok {
			return nil, fmt.Errorf("signature %d: missing r field", idx)
		}
		if sig.R, err = parseInt(rVal); err != nil {
			return nil, fmt.Errorf("signature %d: failed to parse r: %w", idx, err)
		}

		sVal, ok := item[sField]
		if !ok {
			return nil, fmt.Errorf("signature %d: missing s field", idx)
		}
		if sig.S, err = parseInt(sVal); err != nil {
			return nil, fmt.Errorf("signature %d: failed to parse s: %w", idx, err)
		}

		signatures = append(signatures, sig)
	}

	return signatures, nil
}

// CSVParser parses signatures from CSV files.
type CSVParser struct {
	N          int64  // Toy group order, used to hash messages when z is absent
	MessageCol string // Column name for message (default: "message")
	RCol       string // Column name for r (default: "r")
	SCol       string // Column name for s (default: "s")
	ZCol       string // Column name for z/hash (default: "z")
}

// ParseSignatures parses signatures from a CSV file with a header row.
func (p *CSVParser) ParseSignatures(csvFile string) ([]MessageSignature, error) {
	file, err := os.Open(csvFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	columns := map[string]int{}
	for i, col := range header {
		columns[strings.TrimSpace(col)] = i
	}

	rIdx, hasR := columns[orDefault(p.RCol, "r")]
	sIdx, hasS := columns[orDefault(p.SCol, "s")]
	if !hasR || !hasS {
		return nil, fmt.Errorf("missing required columns: r or s")
	}
	zIdx, hasZ := columns[orDefault(p.ZCol, "z")]
	msgIdx, hasMsg := columns[orDefault(p.MessageCol, "message")]

	var signatures []MessageSignature
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		var sig MessageSignature
		switch {
		case hasZ && record[zIdx] != "":
			if sig.Z, err = parseInt(record[zIdx]); err != nil {
				return nil, fmt.Errorf("line %d: failed to parse z: %w", line, err)
			}
		case hasMsg:
			if p.N < 2 {
				return nil, fmt.Errorf("line %d: hashing a message needs the group order n", line)
			}
			sig.Z = HashMessage([]byte(record[msgIdx]), p.N)
		default:
			return nil, fmt.Errorf("line %d: missing message or z column", line)
		}

		if sig.R, err = parseInt(record[rIdx]); err != nil {
			return nil, fmt.Errorf("line %d: failed to parse r: %w", line, err)
		}
		if sig.S, err = parseInt(record[sIdx]); err != nil {
			return nil, fmt.Errorf("line %d: failed to parse s: %w", line, err)
		}

		signatures = append(signatures, sig)
	}

	return signatures, nil
}

// parseInt parses an integer from a decimal or 0x-prefixed hex string, or a JSON number.
func parseInt(val interface{}) (int64, error) {
	switch v := val.(type) {
	case string:
		s := strings.TrimSpace(v)
		if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
			return strconv.ParseInt(s[2:], 16, 64)
		}
		return strconv.ParseInt(s, 10, 64)

	case json.Number:
		return v.Int64()

	case float64:
		if v != float64(int64(v)) {
			return 0, fmt.Errorf("invalid number format: %v", v)
		}
		return int64(v), nil

	case int64:
		return v, nil

	case int:
		return int64(v), nil

	default:
		return 0, fmt.Errorf("unsupported type: %T", val)
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
