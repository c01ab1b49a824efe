package domain

import "strconv"

// WasteQuantityType discriminates the waste quantity value.
type WasteQuantityType string

const (
	QuantityNotApplicable WasteQuantityType = "NotApplicable"
	QuantityEstimateData  WasteQuantityType = "EstimateData"
	QuantityActualData    WasteQuantityType = "ActualData"
)

// QuantityData is one measured or estimated amount of waste.
type QuantityData struct {
	// QuantityType is Volume or Weight.
	QuantityType string  `json:"quantityType,omitempty"`
	Unit         string  `json:"unit,omitempty"`
	Value        float64 `json:"value,omitempty"`
}

// WasteQuantityValue keeps both the estimated and the actual amount so that
// toggling Type does not lose previously entered figures.
type WasteQuantityValue struct {
	Type         WasteQuantityType `json:"type"`
	EstimateData *QuantityData     `json:"estimateData,omitempty"`
	ActualData   *QuantityData     `json:"actualData,omitempty"`
}

// WasteQuantity is the quantity section. It stays CannotStart until the waste
// description has been started.
type WasteQuantity struct {
	Status SectionStatus       `json:"status"`
	Value  *WasteQuantityValue `json:"value,omitempty"`
}

// mergeQuantityValue overlays an incoming quantity value on the existing one,
// retaining whichever variant the incoming payload does not carry.
func mergeQuantityValue(existing, incoming *WasteQuantityValue) *WasteQuantityValue {
	if incoming == nil {
		return existing
	}
	merged := *incoming
	if existing != nil {
		if merged.EstimateData == nil {
			merged.EstimateData = existing.EstimateData
		}
		if merged.ActualData == nil {
			merged.ActualData = existing.ActualData
		}
	}
	return &merged
}

// CollectionDateType discriminates which date sub-record is authoritative.
type CollectionDateType string

const (
	DateEstimate CollectionDateType = "EstimateDate"
	DateActual   CollectionDateType = "ActualDate"
)

// DateParts is a day/month/year triple entered as free text.
type DateParts struct {
	Day   string `json:"day"`
	Month string `json:"month"`
	Year  string `json:"year"`
}

// parsable reports whether every part parses to an integer.
func (d DateParts) parsable() bool {
	for _, part := range []string{d.Day, d.Month, d.Year} {
		if _, err := strconv.Atoi(part); err != nil {
			return false
		}
	}
	return true
}

// CollectionDateValue keeps both the estimated and the actual date so that
// toggling Type does not lose previously entered values.
type CollectionDateValue struct {
	Type         CollectionDateType `json:"type"`
	EstimateDate DateParts          `json:"estimateDate"`
	ActualDate   DateParts          `json:"actualDate"`
}

// selected returns the date parts the Type field points at.
func (v CollectionDateValue) selected() DateParts {
	if v.Type == DateActual {
		return v.ActualDate
	}
	return v.EstimateDate
}

// CollectionDate is the collection-date section. It only moves between
// NotStarted and Complete.
type CollectionDate struct {
	Status SectionStatus        `json:"status"`
	Value  *CollectionDateValue `json:"value,omitempty"`
}

// mergeDateValue overlays an incoming collection date on the existing one,
// keeping the sub-record the incoming payload leaves blank.
func mergeDateValue(existing, incoming *CollectionDateValue) *CollectionDateValue {
	if incoming == nil {
		return existing
	}
	merged := *incoming
	if existing != nil {
		blank := DateParts{}
		if merged.EstimateDate == blank {
			merged.EstimateDate = existing.EstimateDate
		}
		if merged.ActualDate == blank {
			merged.ActualDate = existing.ActualDate
		}
	}
	return &merged
}
