package bank

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// bankDoc is the on-disk document shape: a single "questions" array.
type bankDoc struct {
	Questions []Question `json:"questions"`
}

// Load parses raw bank JSON, validates it against the bank schema, then runs
// the per-record checks. Schema violations surface as *SchemaError, record
// violations as *FormatError.
func Load(data []byte) (*Bank, error) {
	if err := validateDocument(data); err != nil {
		return nil, err
	}
	var doc bankDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &SchemaError{Err: err}
	}
	return New(doc.Questions)
}

// LoadFile reads and loads the bank document at path.
func LoadFile(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question bank: %w", err)
	}
	b, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return b, nil
}

// EnsureFile writes the built-in sample bank to path when nothing exists
// there yet, so a first run has questions to play. Reports whether the file
// was created.
func EnsureFile(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("stat question bank: %w", err)
	}

	data, err := json.MarshalIndent(bankDoc{Questions: sampleQuestions()}, "", "  ")
	if err != nil {
		return false, fmt.Errorf("encode sample bank: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return false, fmt.Errorf("write sample bank: %w", err)
	}
	return true, nil
}
