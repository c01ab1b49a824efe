package adapters

import (
	"context"

	"waste-movements/internal/features/refdata/domain"
)

// SeededProvider serves the static regulatory lists from memory. These are
// reference tables, not user data; a representative subset is seeded here
// and the remote provider can replace it where a live source is configured.
type SeededProvider struct{}

// NewSeededProvider creates a SeededProvider.
func NewSeededProvider() *SeededProvider {
	return &SeededProvider{}
}

// Countries returns the seeded country list.
func (p *SeededProvider) Countries(ctx context.Context) ([]domain.Country, error) {
	return []domain.Country{
		{Name: "Afghanistan [AF]"},
		{Name: "Belgium [BE]"},
		{Name: "France [FR]"},
		{Name: "Germany [DE]"},
		{Name: "Ireland [IE]"},
		{Name: "Netherlands [NL]"},
		{Name: "Portugal [PT]"},
		{Name: "Spain [ES]"},
		{Name: "United Kingdom (England) [GB-ENG]"},
		{Name: "United Kingdom (Wales) [GB-WLS]"},
	}, nil
}

// WasteCodes returns the seeded waste-code lists grouped by category.
func (p *SeededProvider) WasteCodes(ctx context.Context) ([]domain.WasteCodeGroup, error) {
	return []domain.WasteCodeGroup{
		{
			Type: "BaselAnnexIX",
			Values: []domain.WasteCode{
				{Code: "B1010", Description: "Metal and metal-alloy wastes in metallic, non-dispersible form"},
				{Code: "B1020", Description: "Clean, uncontaminated metal scrap, including alloys, in bulk finished form"},
				{Code: "B1030", Description: "Refractory metals containing residues"},
				{Code: "B3011", Description: "Solid plastic waste destined for recycling"},
			},
		},
		{
			Type: "OECD",
			Values: []domain.WasteCode{
				{Code: "GB040", Description: "Slags from precious metals and copper processing for further refining"},
				{Code: "GC010", Description: "Electrical assemblies consisting only of metals or alloys"},
				{Code: "GC020", Description: "Electronic scrap and reclaimed precious-metal bearing components"},
			},
		},
		{
			Type: "AnnexIIIA",
			Values: []domain.WasteCode{
				{Code: "B1010 and B1050", Description: "Mixtures of wastes classified under Basel entries B1010 and B1050"},
				{Code: "B1010 and B1070", Description: "Mixtures of wastes classified under Basel entries B1010 and B1070"},
			},
		},
		{
			Type: "AnnexIIIB",
			Values: []domain.WasteCode{
				{Code: "BEU04", Description: "Composite packaging consisting of mainly paper and some plastic"},
				{Code: "BEU05", Description: "Clean biodegradable waste from agriculture, horticulture and forestry"},
			},
		},
	}, nil
}

// EWCCodes returns the seeded European Waste Catalogue subset.
func (p *SeededProvider) EWCCodes(ctx context.Context) ([]domain.EWCCode, error) {
	return []domain.EWCCode{
		{Code: "010101", Description: "Wastes from mineral metalliferous excavation"},
		{Code: "010102", Description: "Wastes from mineral non-metalliferous excavation"},
		{Code: "010306", Description: "Tailings other than those mentioned in 01 03 04 and 01 03 05"},
		{Code: "010308", Description: "Dusty and powdery wastes other than those mentioned in 01 03 07"},
		{Code: "010309", Description: "Red mud from alumina production other than 01 03 10"},
		{Code: "010413", Description: "Wastes from stone cutting and sawing other than 01 04 07"},
	}, nil
}

// Pops returns the seeded persistent-organic-pollutant list.
func (p *SeededProvider) Pops(ctx context.Context) ([]domain.Pop, error) {
	return []domain.Pop{
		{Name: "Aldrin"},
		{Name: "Chlordane"},
		{Name: "Dieldrin"},
		{Name: "Endosulfan"},
		{Name: "Endrin"},
		{Name: "Heptachlor"},
		{Name: "Hexachlorobenzene"},
		{Name: "Mirex"},
		{Name: "Toxaphene"},
	}, nil
}
