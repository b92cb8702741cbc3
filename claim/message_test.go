package claim_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rxkit/ncpdp/claim"
	"github.com/rxkit/ncpdp/codes"
	"github.com/rxkit/ncpdp/emi"
	"github.com/rxkit/ncpdp/segments"
	"github.com/rxkit/ncpdp/testdata"
)

const (
	fs = string(emi.FieldSeparator)
	gs = string(emi.GroupSeparator)
	rs = string(emi.SegmentSeparator)
)

// A full model survives serialize/parse unchanged.
func TestMessageRoundTrip(t *testing.T) {
	for name, m := range map[string]*claim.Message{
		"all segments":  testdata.BuildMessage(),
		"required only": testdata.BuildMinimalMessage(),
	} {
		t.Run(name, func(t *testing.T) {
			wire, err := m.Serialize()
			require.NoError(t, err)

			got, err := claim.FromString(wire)
			require.NoError(t, err)

			if diff := cmp.Diff(m, got); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// A well-formed wire claim survives parse/serialize byte for byte.
func TestWireRoundTrip(t *testing.T) {
	for _, file := range []string{testdata.FileValidClaim, testdata.FileMinimalClaim} {
		wire := testdata.MustLoad(file)

		m, err := claim.FromString(wire)
		require.NoError(t, err, "file %s", file)

		out, err := m.Serialize()
		require.NoError(t, err)
		assert.Equal(t, wire, out, "file %s", file)
	}
}

// Exactly one group separator, immediately after the Patient payload and
// immediately before the next segment separator.
func TestSerializeGroupSeparatorPlacement(t *testing.T) {
	wire, err := testdata.BuildMessage().Serialize()
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(wire, gs))

	i := strings.Index(wire, gs)
	require.Greater(t, i, 0)
	assert.Equal(t, rs, string(wire[i+1]), "group separator must precede a segment separator")

	patientStart := strings.Index(wire, fs+segments.PatientID)
	require.Greater(t, patientStart, 0)
	assert.Greater(t, i, patientStart)
	assert.NotContains(t, wire[patientStart:i], rs, "group separator belongs to the Patient segment")
}

func TestFromSegmentsDuplicate(t *testing.T) {
	patient := testdata.BuildPatient()
	segs := []segments.Segment{
		&patient, &patient,
	}

	_, err := claim.FromSegments(testdata.BuildHeader(), segs)
	require.Error(t, err)
	assert.True(t, errors.Is(err, emi.ErrDuplicateSegment))

	var segErr *emi.SegmentError
	require.True(t, errors.As(err, &segErr))
	assert.Equal(t, segments.PatientID, segErr.SegmentID)
}

func TestFromSegmentsMissingRequired(t *testing.T) {
	insurance := testdata.BuildInsurance()
	patient := testdata.BuildPatient()
	claimSeg := testdata.BuildClaimSegment()

	// No pricing segment.
	_, err := claim.FromSegments(testdata.BuildHeader(), []segments.Segment{
		&insurance, &patient, &claimSeg,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, emi.ErrMissingRequiredSegment))
}

func TestMessageValidate(t *testing.T) {
	m := testdata.BuildMessage()
	require.NoError(t, m.Validate())

	bad := testdata.BuildMessage()
	bad.Header.RxBIN = "12"
	assert.Error(t, bad.Validate())

	bad = testdata.BuildMessage()
	bad.Claim.RxServiceReferenceNumber = "123"
	assert.Error(t, bad.Validate())

	bad = testdata.BuildMessage()
	bad.Pricing.GrossAmountDue = "NOPE"
	assert.Error(t, bad.Validate())
}

func TestSerializeOverlongHeaderField(t *testing.T) {
	m := testdata.BuildMessage()
	m.Header.CertificationID = "MORETHANTENCHARS"

	_, err := m.Serialize()
	require.Error(t, err)
	assert.True(t, errors.Is(err, emi.ErrInvalidFieldLength))
}

func TestReversal(t *testing.T) {
	m := testdata.BuildMessage()

	r, err := m.Reversal()
	require.NoError(t, err)
	assert.Equal(t, codes.Reversal, r.Header.TransactionCode)

	// The original is untouched.
	assert.Equal(t, codes.Billing, m.Header.TransactionCode)

	// Everything else carries over.
	r.Header.TransactionCode = codes.Billing
	if diff := cmp.Diff(m, r); diff != "" {
		t.Errorf("reversal changed more than the transaction code (-want +got):\n%s", diff)
	}
}

func TestReversalOfReversal(t *testing.T) {
	m := testdata.BuildMessage()
	m.Header.TransactionCode = codes.Reversal

	_, err := m.Reversal()
	require.Error(t, err)
	assert.True(t, errors.Is(err, emi.ErrUnknownCode))
}
