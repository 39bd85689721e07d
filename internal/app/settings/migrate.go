package settings

import (
	"encoding/json"
	"fmt"

	"github.com/sabordacasa/storefront/internal/domain"
)

// Read-time migration: persisted settings may predate fields added
// later, or still carry the single combined "weekend" fields that were
// split into Saturday and Sunday. Reads always return a fully
// populated object; the stored value is only rewritten on the next
// save.

// MergeDelivery merges persisted delivery settings over the defaults.
// Unmarshalling into a prefilled struct leaves absent fields at their
// default, including the nested PIX block.
func MergeDelivery(raw []byte) (domain.DeliverySettings, error) {
	merged := domain.DefaultDeliverySettings()
	if err := json.Unmarshal(raw, &merged); err != nil {
		return domain.DeliverySettings{}, fmt.Errorf("failed to decode delivery settings: %w", err)
	}
	return merged, nil
}

// legacyStoreProbe detects fields that need migration: pointer fields
// distinguish "absent" from "present but empty".
type legacyStoreProbe struct {
	Footer struct {
		SaturdayHours *string `json:"saturdayHours"`
		SundayHours   *string `json:"sundayHours"`
		WeekendHours  *string `json:"weekendHours"`
	} `json:"footer"`
	BusinessHours *struct {
		Saturday *domain.TimeRange `json:"saturday"`
		Sunday   *domain.TimeRange `json:"sunday"`
		Weekend  *domain.TimeRange `json:"weekend"`
	} `json:"businessHours"`
	MobileProductsPerRow *int               `json:"mobileProductsPerRow"`
	ThemeColor           *domain.ThemeColor `json:"themeColor"`
}

// MergeStore merges persisted store settings over the defaults and
// folds the legacy combined weekend fields into the separate Saturday
// and Sunday values when the new fields are absent.
func MergeStore(raw []byte) (domain.StoreSettings, error) {
	merged := domain.DefaultStoreSettings()
	if err := json.Unmarshal(raw, &merged); err != nil {
		return domain.StoreSettings{}, fmt.Errorf("failed to decode store settings: %w", err)
	}

	var probe legacyStoreProbe
	if err := json.Unmarshal(raw, &probe); err != nil {
		return domain.StoreSettings{}, fmt.Errorf("failed to decode store settings: %w", err)
	}

	defaults := domain.DefaultStoreSettings()

	if probe.Footer.SaturdayHours == nil && probe.Footer.WeekendHours != nil {
		merged.Footer.SaturdayHours = *probe.Footer.WeekendHours
	}
	if probe.Footer.SundayHours == nil && probe.Footer.WeekendHours != nil {
		merged.Footer.SundayHours = *probe.Footer.WeekendHours
	}

	if probe.BusinessHours == nil {
		// Absent or null table falls back to the default hours.
		merged.BusinessHours = defaults.BusinessHours
	} else {
		if probe.BusinessHours.Saturday == nil {
			if probe.BusinessHours.Weekend != nil {
				merged.BusinessHours.Saturday = *probe.BusinessHours.Weekend
			} else {
				merged.BusinessHours.Saturday = defaults.BusinessHours.Saturday
			}
		}
		if probe.BusinessHours.Sunday == nil {
			if probe.BusinessHours.Weekend != nil {
				merged.BusinessHours.Sunday = *probe.BusinessHours.Weekend
			} else {
				merged.BusinessHours.Sunday = defaults.BusinessHours.Sunday
			}
		}
	}

	if probe.MobileProductsPerRow == nil || *probe.MobileProductsPerRow == 0 {
		merged.MobileProductsPerRow = defaults.MobileProductsPerRow
	}
	if probe.ThemeColor == nil || *probe.ThemeColor == "" {
		merged.ThemeColor = defaults.ThemeColor
	}

	return merged, nil
}
