package domain

// Country is one destination or transit country offered to the form.
type Country struct {
	// Name is the display name, including the ISO code suffix used by the
	// transit-country picker (e.g. "France [FR]").
	Name string `json:"name"`
}

// WasteCode is one entry in a regulatory waste-code list.
type WasteCode struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// WasteCodeGroup groups waste codes by regulatory category.
type WasteCodeGroup struct {
	// Type is the category the codes belong to (BaselAnnexIX, OECD,
	// AnnexIIIA, AnnexIIIB).
	Type   string      `json:"type"`
	Values []WasteCode `json:"values"`
}

// EWCCode is one European Waste Catalogue entry.
type EWCCode struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// Pop is one persistent organic pollutant.
type Pop struct {
	Name string `json:"name"`
}
