package codes

import (
	"fmt"

	"github.com/rxkit/ncpdp/emi"
)

// Version is the Telecommunication standard version code in the header.
type Version string

// Valid version codes.
const (
	// VersionD0 is the current Telecommunication version.
	VersionD0 Version = "D0"
	// Version51 is the legacy 5.1 version.
	Version51 Version = "51"
)

// ParseVersion validates s against the closed set of version codes.
func ParseVersion(s string) (Version, error) {
	switch v := Version(s); v {
	case VersionD0, Version51:
		return v, nil
	}
	return "", fmt.Errorf("version %q: %w", s, emi.ErrUnknownCode)
}

// IsValid reports whether the version is a member of the closed set.
func (v Version) IsValid() bool {
	return v == VersionD0 || v == Version51
}

// Gender is the patient gender code carried in Patient field C5.
type Gender string

// Valid gender codes.
const (
	GenderUnknown Gender = "0"
	GenderMale    Gender = "1"
	GenderFemale  Gender = "2"
)

// ParseGender validates s against the closed set of gender codes.
func ParseGender(s string) (Gender, error) {
	switch g := Gender(s); g {
	case GenderUnknown, GenderMale, GenderFemale:
		return g, nil
	}
	return "", fmt.Errorf("gender %q: %w", s, emi.ErrUnknownCode)
}

// IsValid reports whether the gender is a member of the closed set.
func (g Gender) IsValid() bool {
	switch g {
	case GenderUnknown, GenderMale, GenderFemale:
		return true
	}
	return false
}

// String returns a human-readable representation of the gender code.
func (g Gender) String() string {
	switch g {
	case GenderUnknown:
		return "UNKNOWN"
	case GenderMale:
		return "MALE"
	case GenderFemale:
		return "FEMALE"
	default:
		return string(g)
	}
}
