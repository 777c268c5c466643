package people

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/valdi/pkg/rules"
)

// DecodeInputs reads a single YAML or JSON list of inputs. Unknown keys,
// further YAML documents and trailing data are rejected. An empty document
// yields no inputs.
func DecodeInputs(r io.Reader) ([]Input, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var inputs []Input
	if err := decoder.Decode(&inputs); err != nil {
		if errors.Is(err, io.EOF) {
			return []Input{}, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var extra yaml.Node
	if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after the input list", ErrInvalidInput)
	}

	if inputs == nil {
		inputs = []Input{}
	}
	return inputs, nil
}

// Record is the outcome for one input of a batch.
type Record struct {
	Index    int                `json:"index"`
	Valid    bool               `json:"valid"`
	Person   *Person            `json:"person,omitempty"`
	Failures []rules.FieldError `json:"failures"`
}

// Report summarises a batch check.
type Report struct {
	Total   int      `json:"total"`
	Valid   int      `json:"valid"`
	Invalid int      `json:"invalid"`
	Records []Record `json:"records"`
}

// OK reports whether every record was valid.
func (r Report) OK() bool {
	return r.Invalid == 0
}

// CheckBatch validates every input in order, evaluating each one once.
func CheckBatch(f *Factory, inputs []Input) Report {
	report := Report{Total: len(inputs), Records: make([]Record, 0, len(inputs))}

	for i, in := range inputs {
		r, failures := f.Inspect(in)
		rec := Record{Index: i, Failures: failures}
		if p, ok := r.Value(); ok {
			rec.Valid = true
			rec.Person = &p
			report.Valid++
		} else {
			report.Invalid++
		}
		report.Records = append(report.Records, rec)
	}
	return report
}
