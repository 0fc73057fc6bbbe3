// Package records defines the on-disk character record schema used for bulk
// import and export, and the codecs that read and write it.
//
// Decoding is pure: it never prompts, never touches a roster, and either
// returns every record in the file or an error.
package records

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrUnreadable is returned when the import path cannot be read.
	ErrUnreadable = errors.New("records: path is not readable")
	// ErrMalformed is returned when a file does not match the record schema.
	ErrMalformed = errors.New("records: file does not match the record schema")
	// ErrExists is returned when the export path already exists or cannot be created.
	ErrExists = errors.New("records: path is invalid or already exists")
	// ErrWrite is returned when the export file was created but could not be written.
	ErrWrite = errors.New("records: could not save to file")
)

// Record is one persisted character. The initiative score and combat state
// are not part of the schema.
type Record struct {
	Name string `json:"name" yaml:"name"`
	AC   uint8  `json:"ac" yaml:"ac"`
	HP   uint16 `json:"hp" yaml:"hp"`
}

// name is a record name that must be a string in both formats. YAML would
// otherwise accept a bare scalar such as 123 where JSON rejects it.
type name string

// UnmarshalYAML accepts only string scalars.
func (n *name) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode || value.ShortTag() != "!!str" {
		return fmt.Errorf("line %d: name must be a string", value.Line)
	}
	*n = name(value.Value)
	return nil
}

// partial mirrors Record with every field optional so that missing fields
// can be told apart from zero values.
type partial struct {
	Name *name   `json:"name" yaml:"name"`
	AC   *uint8  `json:"ac" yaml:"ac"`
	HP   *uint16 `json:"hp" yaml:"hp"`
}

func (p partial) record(i int) (Record, error) {
	var missing []string
	if p.Name == nil {
		missing = append(missing, "name")
	}
	if p.AC == nil {
		missing = append(missing, "ac")
	}
	if p.HP == nil {
		missing = append(missing, "hp")
	}
	if len(missing) > 0 {
		return Record{}, fmt.Errorf("record %d: missing %s", i, strings.Join(missing, ", "))
	}
	return Record{Name: string(*p.Name), AC: *p.AC, HP: *p.HP}, nil
}

// Format identifies a record file encoding.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// FormatFor selects the format from a file extension. Anything that is not
// .yaml or .yml is treated as JSON.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Decode parses data as a list of records in the given format.
//
// Postcondition: Returns every record in document order, or an error wrapping
// ErrMalformed and no records.
func Decode(data []byte, f Format) ([]Record, error) {
	var raw []partial
	var err error
	switch f {
	case FormatYAML:
		err = yaml.Unmarshal(data, &raw)
	default:
		err = json.Unmarshal(data, &raw)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: expected a list of records", ErrMalformed)
	}

	recs := make([]Record, 0, len(raw))
	for i, p := range raw {
		rec, err := p.record(i)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// Encode serialises recs in the given format. JSON output is indented with
// two spaces.
func Encode(recs []Record, f Format) ([]byte, error) {
	if recs == nil {
		recs = []Record{}
	}
	switch f {
	case FormatYAML:
		return yaml.Marshal(recs)
	default:
		return json.MarshalIndent(recs, "", "  ")
	}
}
