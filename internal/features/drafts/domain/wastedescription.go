package domain

// WasteCodeType is the regulatory category a waste code belongs to.
// NotApplicable identifies small (non-bulk) waste; every other category is
// bulk waste with full transport and recovery-facility requirements.
type WasteCodeType string

const (
	WasteCodeNotApplicable WasteCodeType = "NotApplicable"
	WasteCodeBaselAnnexIX  WasteCodeType = "BaselAnnexIX"
	WasteCodeOECD          WasteCodeType = "OECD"
	WasteCodeAnnexIIIA     WasteCodeType = "AnnexIIIA"
	WasteCodeAnnexIIIB     WasteCodeType = "AnnexIIIB"
)

// WasteCode identifies the waste being exported. Code is empty when the
// category is NotApplicable.
type WasteCode struct {
	Type WasteCodeType `json:"type"`
	Code string        `json:"code,omitempty"`
}

// IsBulk reports whether the code places the waste in the bulk regime.
func (w WasteCode) IsBulk() bool {
	return w.Type != WasteCodeNotApplicable
}

// WasteDescription is the section describing what is being exported.
type WasteDescription struct {
	Status       SectionStatus `json:"status"`
	WasteCode    *WasteCode    `json:"wasteCode,omitempty"`
	EWCCodes     []string      `json:"ewcCodes,omitempty"`
	NationalCode string        `json:"nationalCode,omitempty"`
	Description  string        `json:"description,omitempty"`
}

// WasteCodeTransition classifies how an edit moves the draft between waste
// regimes. Each kind maps to one reset policy for the dependent sections.
type WasteCodeTransition int

const (
	// TransitionNoChange covers first-time population, edits that keep the
	// exact same code, and text-only edits.
	TransitionNoChange WasteCodeTransition = iota
	// TransitionBulkToSmall moves from a bulk category to NotApplicable.
	TransitionBulkToSmall
	// TransitionSmallToBulk moves from NotApplicable to a bulk category.
	TransitionSmallToBulk
	// TransitionBulkDifferentCategory switches between two bulk categories.
	TransitionBulkDifferentCategory
	// TransitionBulkSameCategory keeps the category but changes the code.
	TransitionBulkSameCategory
)

// ClassifyWasteCodeTransition compares the waste codes of two waste
// description snapshots. A missing code on either side is classified as
// NoChange: the dependent-section resets only apply once a code has actually
// been replaced by a different one.
func ClassifyWasteCodeTransition(current, next WasteDescription) WasteCodeTransition {
	if current.WasteCode == nil || next.WasteCode == nil {
		return TransitionNoChange
	}
	before, after := *current.WasteCode, *next.WasteCode
	switch {
	case before.IsBulk() && !after.IsBulk():
		return TransitionBulkToSmall
	case !before.IsBulk() && after.IsBulk():
		return TransitionSmallToBulk
	case before.IsBulk() && after.IsBulk() && before.Type != after.Type:
		return TransitionBulkDifferentCategory
	case before.Type == after.Type && before.Code != after.Code:
		return TransitionBulkSameCategory
	default:
		return TransitionNoChange
	}
}
