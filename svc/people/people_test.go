package people_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/valdi/pkg/factory"
	"github.com/dmitrymomot/valdi/pkg/logger"
	"github.com/dmitrymomot/valdi/pkg/result"
	"github.com/dmitrymomot/valdi/pkg/rules"
	"github.com/dmitrymomot/valdi/svc/people"
)

func TestFactory_Scenario(t *testing.T) {
	t.Parallel()
	f := people.NewFactory()

	t.Run("blank name and negative age", func(t *testing.T) {
		t.Parallel()
		in := people.Input{Name: "", Age: -1}

		assert.Equal(t, []rules.FieldError{people.ErrNameBlank, people.ErrAgeNegative}, f.Check(in))

		failure, ok := f.Create(in).Err()
		require.True(t, ok)
		assert.Equal(t, people.ErrNameBlank, failure)
		assert.Equal(t, "name must not be blank", failure.Error())
		assert.Equal(t, "age must be >= 0", people.ErrAgeNegative.Error())
	})

	t.Run("valid input", func(t *testing.T) {
		t.Parallel()
		in := people.Input{Name: "Ada", Age: 30}

		assert.Empty(t, f.Check(in))
		assert.Equal(t, people.Person{Name: "Ada", Age: 30}, f.MustCreate(in))
	})
}

func TestFactory_Name(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "person", people.NewFactory().Name())
}

func TestFactory_OptionalFields(t *testing.T) {
	t.Parallel()
	f := people.NewFactory()

	tests := []struct {
		name string
		in   people.Input
		want []rules.FieldError
	}{
		{
			name: "valid email and website",
			in:   people.Input{Name: "Ada", Age: 36, Email: "ada@example.com", Website: "https://ada.dev"},
			want: []rules.FieldError{},
		},
		{
			name: "invalid email",
			in:   people.Input{Name: "Ada", Age: 36, Email: "ada"},
			want: []rules.FieldError{people.ErrEmailInvalid},
		},
		{
			name: "website with wrong scheme",
			in:   people.Input{Name: "Ada", Age: 36, Website: "ftp://ada.dev"},
			want: []rules.FieldError{people.ErrWebsiteInvalid},
		},
		{
			name: "every failure in declaration order",
			in:   people.Input{Name: " ", Age: -4, Email: "x@", Website: "nope"},
			want: []rules.FieldError{people.ErrNameBlank, people.ErrAgeNegative, people.ErrEmailInvalid, people.ErrWebsiteInvalid},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, f.Check(tt.in))
		})
	}
}

func TestFactory_ExportedFailuresMatchRules(t *testing.T) {
	t.Parallel()
	f := people.NewFactory()

	tests := []struct {
		name string
		want rules.FieldError
		in   people.Input
	}{
		{name: "ErrNameBlank", want: people.ErrNameBlank, in: people.Input{Name: "\t", Age: 1}},
		{name: "ErrAgeNegative", want: people.ErrAgeNegative, in: people.Input{Name: "Ada", Age: -1}},
		{name: "ErrEmailInvalid", want: people.ErrEmailInvalid, in: people.Input{Name: "Ada", Age: 1, Email: "@"}},
		{name: "ErrWebsiteInvalid", want: people.ErrWebsiteInvalid, in: people.Input{Name: "Ada", Age: 1, Website: "mailto:a@b.c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r, failures := f.Inspect(tt.in)
			assert.Equal(t, []rules.FieldError{tt.want}, failures)

			got, failed := r.Err()
			require.True(t, failed)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.Error(), got.Error())
		})
	}
}

func TestFactory_Bounds(t *testing.T) {
	t.Parallel()
	f := people.NewFactory()

	errs := f.Check(people.Input{Name: strings.Repeat("a", 101), Age: 151})
	require.Len(t, errs, 2)
	assert.Equal(t, "max_length", errs[0].Code)
	assert.Equal(t, "name", errs[0].Field)
	assert.Equal(t, "max", errs[1].Code)
	assert.Equal(t, "age", errs[1].Field)

	assert.Empty(t, f.Check(people.Input{Name: strings.Repeat("a", 100), Age: 150}))
}

func TestFactory_Normalises(t *testing.T) {
	t.Parallel()
	f := people.NewFactory()

	p := f.MustCreate(people.Input{Name: "  Ada  ", Age: 36, Email: "Ada@Example.com"})
	assert.Equal(t, people.Person{Name: "Ada", Age: 36, Email: "ada@example.com"}, p)
}

func TestFactory_MustCreatePanicsWithFirstFailure(t *testing.T) {
	t.Parallel()
	f := people.NewFactory()

	defer func() {
		rec := recover()
		require.NotNil(t, rec)
		cv, ok := result.AsContractViolation(rec.(error))
		require.True(t, ok)
		assert.Equal(t, people.ErrNameBlank, cv.Failure)
	}()
	f.MustCreate(people.Input{Age: -1})
}

func TestFactory_LogsWithOptions(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithOutput(buf),
		logger.WithFormat(logger.FormatText),
		logger.WithLevel(slog.LevelDebug),
	)

	f := people.NewFactory(factory.WithLogger(log))
	f.Create(people.Input{Age: -1})

	out := buf.String()
	assert.Contains(t, out, "factory=person")
	assert.Contains(t, out, "failures=2")
	assert.Contains(t, out, `failure="name must not be blank"`)
}
