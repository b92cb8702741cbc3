package segments

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rxkit/ncpdp/codes"
	"github.com/rxkit/ncpdp/emi"
)

const gs = string(emi.GroupSeparator)

func TestParsePatient(t *testing.T) {
	raw := "AM01" + fs + "C419800115" + fs + "C51" + fs + "CASMITH" + fs + "CBJANE" + fs + "CP12345"

	got, err := Parse(raw)
	require.NoError(t, err)

	p, ok := got.(*Patient)
	require.True(t, ok)
	assert.Equal(t, time.Date(1980, time.January, 15, 0, 0, 0, 0, time.UTC), p.DOB)
	assert.Equal(t, codes.GenderMale, p.Gender)
	assert.Equal(t, "SMITH", p.LastName)
	assert.Equal(t, "JANE", p.FirstName)
	assert.Equal(t, "12345", p.ZIP)
}

// The Patient segment's serialized form ends with the group separator.
func TestPatientSerializeGroupSeparator(t *testing.T) {
	p := &Patient{
		DOB:       time.Date(1980, time.January, 15, 0, 0, 0, 0, time.UTC),
		Gender:    codes.GenderMale,
		LastName:  "SMITH",
		FirstName: "JANE",
		ZIP:       "12345",
	}

	want := fs + "AM01" + fs + "C419800115" + fs + "C51" + fs + "CASMITH" + fs + "CBJANE" + fs + "CP12345" + gs
	assert.Equal(t, want, p.Serialize())
}

func TestPatientRoundTrip(t *testing.T) {
	p := &Patient{
		DOB:       time.Date(1955, time.December, 3, 0, 0, 0, 0, time.UTC),
		Gender:    codes.GenderFemale,
		LastName:  "GARCIA",
		FirstName: "MARIA",
		ZIP:       "60601",
	}
	require.NoError(t, p.Validate())

	got, err := Parse(p.Serialize())
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestParsePatientErrors(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		sentinel error
		key      string
	}{
		{
			name:     "malformed date",
			raw:      "AM01" + fs + "C41980-01-15" + fs + "C51" + fs + "CASMITH" + fs + "CBJANE" + fs + "CP12345",
			sentinel: emi.ErrInvalidFormat,
			key:      "C4",
		},
		{
			name:     "impossible date",
			raw:      "AM01" + fs + "C419800230" + fs + "C51" + fs + "CASMITH" + fs + "CBJANE" + fs + "CP12345",
			sentinel: emi.ErrInvalidFormat,
			key:      "C4",
		},
		{
			name:     "unknown gender",
			raw:      "AM01" + fs + "C419800115" + fs + "C5M" + fs + "CASMITH" + fs + "CBJANE" + fs + "CP12345",
			sentinel: emi.ErrUnknownCode,
			key:      "C5",
		},
		{
			name:     "missing zip",
			raw:      "AM01" + fs + "C419800115" + fs + "C51" + fs + "CASMITH" + fs + "CBJANE",
			sentinel: emi.ErrMissingRequiredField,
			key:      "CP",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.raw)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.sentinel), "got %v", err)

			var segErr *emi.SegmentError
			require.True(t, errors.As(err, &segErr))
			assert.Equal(t, tt.key, segErr.Key)
		})
	}
}
