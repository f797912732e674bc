// SPDX-License-Identifier: MIT

package recording

import (
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/katalvlaran/eegica/matrix"
	"gopkg.in/yaml.v3"
)

// bundleDoc is the on-disk shape of a recording bundle.
// Field presence is checked by struct tags; cross-field shapes by newRecording.
type bundleDoc struct {
	Subject  string      `yaml:"subject,omitempty"`
	Units    string      `yaml:"units,omitempty"`
	Fs       float64     `yaml:"fs" validate:"required,gt=0"`
	Channels []string    `yaml:"channels,flow" validate:"required,min=1,unique,dive,required"`
	EEG      [][]float64 `yaml:"eeg,flow" validate:"required,min=1,dive,min=1"`
	Mixing   [][]float64 `yaml:"mixing_matrix,flow" validate:"required,min=1,dive,min=1"`
	Unmixing [][]float64 `yaml:"unmixing_matrix,flow" validate:"required,min=1,dive,min=1"`
}

// bundleValidate checks bundleDoc tags; error fields are reported by yaml name.
var bundleValidate = newBundleValidator()

func newBundleValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// Load reads and validates the bundle at path.
//
// Errors:
//   - the os error when the file cannot be opened;
//   - ErrDataFormat for anything wrong with its content.
func Load(path string) (*Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("recording: load %s: %w", path, err)
	}
	defer f.Close()

	rec, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	return rec, nil
}

// Decode reads one YAML or JSON bundle document from r.
func Decode(r io.Reader) (*Recording, error) {
	var doc bundleDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, formatErrorf("empty document")
		}
		return nil, formatErrorf("decode: %v", err)
	}

	return fromDoc(&doc)
}

// fromDoc validates doc and converts it into a Recording.
func fromDoc(doc *bundleDoc) (*Recording, error) {
	if err := bundleValidate.Struct(doc); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
			}
			return nil, formatErrorf("invalid fields: %s", strings.Join(fields, ", "))
		}
		return nil, formatErrorf("%v", err)
	}

	eeg, err := denseField("eeg", doc.EEG)
	if err != nil {
		return nil, err
	}
	mixing, err := denseField("mixing_matrix", doc.Mixing)
	if err != nil {
		return nil, err
	}
	unmixing, err := denseField("unmixing_matrix", doc.Unmixing)
	if err != nil {
		return nil, err
	}

	return newRecording(doc.Subject, doc.Units, doc.Fs, doc.Channels, eeg, mixing, unmixing)
}

// denseField converts one matrix field, mapping matrix errors to ErrDataFormat.
func denseField(name string, rows [][]float64) (*matrix.Dense, error) {
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, formatErrorf("%s: %v", name, err)
	}

	return m, nil
}

// Encode writes r as a YAML bundle that Decode reads back unchanged.
func (r *Recording) Encode(w io.Writer) error {
	doc := bundleDoc{
		Subject:  r.subject,
		Units:    r.units,
		Fs:       r.fs,
		Channels: r.Channels(),
		EEG:      r.eeg.ToRows(),
		Mixing:   r.mixing.ToRows(),
		Unmixing: r.unmixing.ToRows(),
	}
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("recording: encode: %w", err)
	}

	return enc.Close()
}

// Save writes r to path, replacing any existing file.
func (r *Recording) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("recording: save %s: %w", path, err)
	}
	if err = r.Encode(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

func formatErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrDataFormat, fmt.Sprintf(format, args...))
}
