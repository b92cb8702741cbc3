package codes

import (
	"fmt"

	"github.com/rxkit/ncpdp/emi"
)

// SpecialPackagingIndicator is the Claim field DT dispensing packaging code.
type SpecialPackagingIndicator string

// Valid special packaging indicators.
const (
	PackagingNotSpecified        SpecialPackagingIndicator = "0"
	PackagingNotUnitDose         SpecialPackagingIndicator = "1"
	PackagingManufacturerUnit    SpecialPackagingIndicator = "2"
	PackagingPharmacyUnit        SpecialPackagingIndicator = "3"
	PackagingPharmacyCompliance  SpecialPackagingIndicator = "4"
	PackagingMultiDrugCompliance SpecialPackagingIndicator = "5"
	PackagingRemoteDeviceUnit    SpecialPackagingIndicator = "6"
	PackagingRemoteDeviceMulti   SpecialPackagingIndicator = "7"
	PackagingManufacturerUnitUse SpecialPackagingIndicator = "8"
)

// ParseSpecialPackagingIndicator validates s against the closed set.
func ParseSpecialPackagingIndicator(s string) (SpecialPackagingIndicator, error) {
	i := SpecialPackagingIndicator(s)
	if !i.IsValid() {
		return "", fmt.Errorf("special packaging indicator %q: %w", s, emi.ErrUnknownCode)
	}
	return i, nil
}

// IsValid reports whether the indicator is a member of the closed set.
func (i SpecialPackagingIndicator) IsValid() bool {
	return len(i) == 1 && i[0] >= '0' && i[0] <= '8'
}
