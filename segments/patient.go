package segments

import (
	"fmt"
	"time"

	"github.com/rxkit/ncpdp/codes"
	"github.com/rxkit/ncpdp/emi"
)

// dobFormat is the wire form of the patient date of birth.
const dobFormat = "20060102"

// Patient is the AM01 patient segment carrying demographics.
type Patient struct {
	// DOB is field C4: date of birth, YYYYMMDD on the wire.
	DOB time.Time

	// Gender is field C5.
	Gender codes.Gender

	// LastName is field CA.
	LastName string

	// FirstName is field CB.
	FirstName string

	// ZIP is field CP: patient postal code.
	ZIP string
}

var patientKeys = map[string]bool{
	"C4": true, "C5": true, "CA": true, "CB": true, "CP": true,
}

func parsePatient(fields map[string]string) (Segment, error) {
	s := &Patient{}
	var err error

	rawDOB, err := requireField(PatientID, fields, "C4")
	if err != nil {
		return nil, err
	}
	if s.DOB, err = time.Parse(dobFormat, rawDOB); err != nil {
		return nil, &emi.SegmentError{
			SegmentID: PatientID,
			Key:       "C4",
			Reason:    fmt.Sprintf("date %q is not YYYYMMDD", rawDOB),
			Cause:     emi.ErrInvalidFormat,
		}
	}

	rawGender, err := requireField(PatientID, fields, "C5")
	if err != nil {
		return nil, err
	}
	if s.Gender, err = codes.ParseGender(rawGender); err != nil {
		return nil, &emi.SegmentError{SegmentID: PatientID, Key: "C5", Cause: err}
	}

	if s.LastName, err = requireField(PatientID, fields, "CA"); err != nil {
		return nil, err
	}
	if s.FirstName, err = requireField(PatientID, fields, "CB"); err != nil {
		return nil, err
	}
	if s.ZIP, err = requireField(PatientID, fields, "CP"); err != nil {
		return nil, err
	}

	return s, nil
}

// ID returns the segment identifier "AM01".
func (s *Patient) ID() string { return PatientID }

// Serialize returns the segment's wire form with fields in the canonical
// order C4, C5, CA, CB, CP. The Patient segment is the only one terminated
// by the group separator, which is part of its emitted bytes.
func (s *Patient) Serialize() string {
	return join(PatientID,
		"C4"+s.DOB.Format(dobFormat),
		"C5"+string(s.Gender),
		"CA"+s.LastName,
		"CB"+s.FirstName,
		"CP"+s.ZIP,
	) + string(emi.GroupSeparator)
}

// Validate checks the gender code and required name fields.
func (s *Patient) Validate() error {
	if s.DOB.IsZero() {
		return &emi.SegmentError{SegmentID: PatientID, Key: "C4", Cause: emi.ErrMissingRequiredField}
	}
	if !s.Gender.IsValid() {
		return &emi.SegmentError{SegmentID: PatientID, Key: "C5", Cause: emi.ErrUnknownCode}
	}
	for key, value := range map[string]string{
		"CA": s.LastName,
		"CB": s.FirstName,
		"CP": s.ZIP,
	} {
		if value == "" {
			return &emi.SegmentError{SegmentID: PatientID, Key: key, Cause: emi.ErrMissingRequiredField}
		}
	}
	return nil
}
