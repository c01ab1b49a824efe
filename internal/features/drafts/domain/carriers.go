package domain

// TransportDetail records how a carrier moves the waste. Only collected for
// bulk waste; small-waste movements skip it.
type TransportDetail struct {
	// Type is Road, Rail, Sea, Air or InlandWaterways.
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
}

// Carrier is one entry in the carriers section.
type Carrier struct {
	ID              string           `json:"id"`
	Address         *Address         `json:"addressDetails,omitempty"`
	Contact         *Contact         `json:"contactDetails,omitempty"`
	TransportDetail *TransportDetail `json:"transportDetails,omitempty"`
}

// Carriers is the ordered carrier collection. Transport records whether
// entries need transport-method detail; it is false exactly when the current
// waste code is NotApplicable.
type Carriers struct {
	Status    SectionStatus `json:"status"`
	Transport bool          `json:"transport"`
	Values    []Carrier     `json:"values,omitempty"`
}

// CreateCarrier appends a blank carrier entry with a fresh id. The incoming
// section must carry status Started: creation always begins in the minimal
// state. maxCarriers is the configured ceiling.
func CreateCarrier(current Carriers, value Carriers, maxCarriers int, ids IDGenerator) (string, Carriers, error) {
	if value.Status != SectionStarted {
		return "", current, ErrEntryNotStarted
	}
	if len(current.Values) >= maxCarriers {
		return "", current, ErrCollectionFull
	}
	id := ids.NewID()
	updated := current
	if updated.Status == SectionNotStarted {
		updated.Status = SectionStarted
	}
	updated.Values = append(append([]Carrier(nil), current.Values...), Carrier{ID: id})
	return id, updated, nil
}

// GetCarrier looks up a carrier entry by id.
func GetCarrier(current Carriers, id string) (Carrier, error) {
	if current.Status == SectionNotStarted || current.Status == SectionCannotStart {
		return Carrier{}, ErrEntryNotFound
	}
	for _, c := range current.Values {
		if c.ID == id {
			return c, nil
		}
	}
	return Carrier{}, ErrEntryNotFound
}

// SetCarrier replaces the entry matching id with the entry of the same id in
// the incoming section. Sending status NotStarted resets the whole collection,
// which is the "remove all and start over" affordance. The relative order of
// untouched entries is preserved.
func SetCarrier(current Carriers, id string, value Carriers) (Carriers, error) {
	if value.Status == SectionNotStarted {
		return Carriers{Status: SectionNotStarted, Transport: current.Transport}, nil
	}
	incomingIdx := carrierIndex(value.Values, id)
	existingIdx := carrierIndex(current.Values, id)
	if incomingIdx < 0 || existingIdx < 0 {
		return current, ErrEntryNotFound
	}
	updated := current
	updated.Status = value.Status
	updated.Values = append([]Carrier(nil), current.Values...)
	updated.Values[existingIdx] = value.Values[incomingIdx]
	return updated, nil
}

// DeleteCarrier removes the entry matching id. An emptied collection reverts
// to NotStarted.
func DeleteCarrier(current Carriers, id string) (Carriers, error) {
	idx := carrierIndex(current.Values, id)
	if idx < 0 || current.Status == SectionNotStarted || current.Status == SectionCannotStart {
		return current, ErrEntryNotFound
	}
	updated := current
	updated.Values = append([]Carrier(nil), current.Values[:idx]...)
	updated.Values = append(updated.Values, current.Values[idx+1:]...)
	if len(updated.Values) == 0 {
		updated.Values = nil
		updated.Status = SectionNotStarted
	}
	return updated, nil
}

func carrierIndex(values []Carrier, id string) int {
	for i, c := range values {
		if c.ID == id {
			return i
		}
	}
	return -1
}
