// Package textfile implements storage.Store on a plain comma-delimited file.
//
// Each record is one line holding six fields in a fixed order:
//
//	Make,Model,Year,Price,FuelType,Mileage
//
// There is no header and no escaping, so a comma inside a text field
// corrupts that line.
package textfile

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/mmynk/autogallery/internal/models"
	"github.com/mmynk/autogallery/internal/storage"
)

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

const (
	separator  = ","
	fieldCount = 6
)

// ErrFieldCount is wrapped by parse errors for lines that do not have six fields.
var ErrFieldCount = errors.New("wrong number of fields")

// Store reads and writes records in a delimited text file.
type Store struct {
	path string
}

// New creates a Store backed by the file at path. The file does not need to exist.
func New(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("data file path cannot be empty")
	}
	return &Store{path: path}, nil
}

// Location returns the data file path.
func (s *Store) Location() string {
	return s.path
}

// Load reads all records from the data file.
func (s *Store) Load(ctx context.Context) (*storage.LoadResult, error) {
	result := &storage.LoadResult{}

	file, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return result, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open data file: %w", err)
	}
	defer file.Close()

	reader := bufio.NewReader(file)

	lineNo := 0
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		raw, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return nil, fmt.Errorf("failed to read data file: %w", readErr)
		}
		if raw == "" && readErr != nil {
			break
		}
		lineNo++

		if line := strings.TrimSpace(raw); line != "" {
			record, err := ParseLine(line)
			if err != nil {
				result.Skipped = append(result.Skipped, &storage.RecordError{Line: lineNo, Text: line, Err: err})
			} else {
				result.Records = append(result.Records, record)
			}
		}

		if readErr != nil {
			break
		}
	}

	return result, nil
}

// Save overwrites the data file with records.
func (s *Store) Save(ctx context.Context, records []models.Automobile) error {
	if len(records) == 0 {
		return storage.ErrNothingToSave
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	var b strings.Builder
	for _, a := range records {
		b.WriteString(FormatLine(a))
		b.WriteByte('\n')
	}

	if err := os.WriteFile(s.path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("failed to write data file: %w", err)
	}
	return nil
}

// ParseLine decodes one record line. Text fields are kept verbatim; numeric
// fields may carry surrounding whitespace.
func ParseLine(line string) (models.Automobile, error) {
	fields := strings.Split(line, separator)
	if len(fields) != fieldCount {
		return models.Automobile{}, fmt.Errorf("%w: got %d, want %d", ErrFieldCount, len(fields), fieldCount)
	}

	year, err := models.ParseInt(fields[2])
	if err != nil {
		return models.Automobile{}, fmt.Errorf("failed to parse year: %w", err)
	}
	price, err := models.ParsePrice(fields[3])
	if err != nil {
		return models.Automobile{}, fmt.Errorf("failed to parse price: %w", err)
	}
	mileage, err := models.ParseInt(fields[5])
	if err != nil {
		return models.Automobile{}, fmt.Errorf("failed to parse mileage: %w", err)
	}

	return models.Automobile{
		Make:     fields[0],
		Model:    fields[1],
		Year:     year,
		Price:    price,
		FuelType: fields[4],
		Mileage:  mileage,
	}, nil
}

// FormatLine encodes a record as one line, without the trailing newline.
func FormatLine(a models.Automobile) string {
	return strings.Join([]string{
		a.Make,
		a.Model,
		strconv.Itoa(a.Year),
		models.FormatPrice(a.Price),
		a.FuelType,
		strconv.Itoa(a.Mileage),
	}, separator)
}
