package domain

import (
	"fmt"
	"time"
)

// seqIDGenerator hands out deterministic ids for tests.
type seqIDGenerator struct {
	next int
}

func (g *seqIDGenerator) NewID() string {
	g.next++
	return fmt.Sprintf("id-%04d", g.next)
}

var testTime = time.Date(2024, time.May, 17, 10, 30, 0, 0, time.UTC)

// completeDraft returns a draft with every section Complete and confirmation
// derived as NotStarted, ready to be confirmed and declared.
func completeDraft(id string) DraftSubmission {
	address := &Address{AddressLine1: "1 Quay Street", TownCity: "Bristol", Postcode: "BS1 4QA", Country: "England"}
	contact := &Contact{OrganisationName: "Acme Reclamation", FullName: "Jo Field", Email: "jo@acme.example", Phone: "0117 000 0000"}
	draft := DraftSubmission{
		ID:        id,
		Reference: "REF-001",
		WasteDescription: WasteDescription{
			Status:      SectionComplete,
			WasteCode:   &WasteCode{Type: WasteCodeBaselAnnexIX, Code: "B1010"},
			EWCCodes:    []string{"010101"},
			Description: "Clean metal scrap",
		},
		WasteQuantity: WasteQuantity{
			Status: SectionComplete,
			Value: &WasteQuantityValue{
				Type:         QuantityEstimateData,
				EstimateData: &QuantityData{QuantityType: "Weight", Unit: "Tonnes", Value: 12.5},
			},
		},
		ExporterDetail: ExporterDetail{Status: SectionComplete, Address: address, Contact: contact},
		ImporterDetail: ImporterDetail{Status: SectionComplete, Address: address, Contact: contact},
		CollectionDate: CollectionDate{
			Status: SectionComplete,
			Value: &CollectionDateValue{
				Type:         DateEstimate,
				EstimateDate: DateParts{Day: "15", Month: "06", Year: "2024"},
			},
		},
		Carriers: Carriers{
			Status:    SectionComplete,
			Transport: true,
			Values: []Carrier{{
				ID:              "carrier-1",
				Address:         address,
				Contact:         contact,
				TransportDetail: &TransportDetail{Type: "Road"},
			}},
		},
		CollectionDetail: CollectionDetail{Status: SectionComplete, Address: address, Contact: contact},
		UKExitLocation: UKExitLocation{
			Status:       SectionComplete,
			ExitLocation: &ExitLocation{Provided: ExitLocationYes, Value: "Dover"},
		},
		TransitCountries: TransitCountries{Status: SectionComplete, Values: []string{"France [FR]"}},
		RecoveryFacilityDetail: RecoveryFacilityDetail{
			Status: SectionComplete,
			Values: []RecoveryFacility{{
				ID:           "facility-1",
				Address:      address,
				Contact:      contact,
				Type:         FacilityRecoveryFacility,
				RecoveryCode: "R4",
			}},
		},
		SubmissionState: SubmissionState{Status: StateInProgress, Timestamp: testTime},
	}
	return draft.withDerivedStatuses()
}

func startedCarriers(transport bool, ids ...string) Carriers {
	carriers := Carriers{Status: SectionStarted, Transport: transport}
	for _, id := range ids {
		carriers.Values = append(carriers.Values, Carrier{ID: id})
	}
	return carriers
}
