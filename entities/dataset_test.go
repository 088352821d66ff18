package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDatasetWireShape(t *testing.T) {
	ds := Dataset{
		Farms: []Farm{{
			ID: 1, Name: "Fazenda Teste", State: "Goiás", City: "Mineiros",
			Hectares: 10.5, Status: StatusActive, OwnerName: "Ana",
			RegisteredOn: "2024-01-01",
		}},
		Production: []ProductionRecord{{
			FarmID: 1, Date: "2024-09-01", ProjectedTons: 100, DeliveredTons: 90,
		}},
	}

	raw, err := json.Marshal(ds)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))
	require.Contains(t, got, "fazendas")
	require.Contains(t, got, "producao")

	farm := got["fazendas"].([]any)[0].(map[string]any)
	for _, k := range []string{"id", "nome", "estado", "cidade", "hectares", "status", "proprietario", "telefone", "email", "data_cadastro"} {
		require.Contains(t, farm, k)
	}
	// empty observacoes is omitted, matching documents written by the old app
	require.NotContains(t, farm, "observacoes")

	rec := got["producao"].([]any)[0].(map[string]any)
	for _, k := range []string{"fazenda_id", "data", "toneladas_projetadas", "toneladas_entregues", "observacoes"} {
		require.Contains(t, rec, k)
	}
}

func TestDatasetNilSlicesMarshalAsArrays(t *testing.T) {
	raw, err := json.Marshal(Dataset{})
	require.NoError(t, err)
	require.JSONEq(t, `{"fazendas":[],"producao":[]}`, string(raw))
}

func TestDatasetKeepsUnknownKeys(t *testing.T) {
	in := `{"fazendas":[],"producao":[],"versao":2,"autor":"legado"}`
	var ds Dataset
	require.NoError(t, json.Unmarshal([]byte(in), &ds))

	out, err := json.Marshal(ds)
	require.NoError(t, err)
	require.JSONEq(t, in, string(out))
}

func TestFarmValidate(t *testing.T) {
	valid := Farm{
		Name: "Fazenda Boa", State: "Goiás", City: "Rio Verde",
		Hectares: 1, Status: StatusActive, OwnerName: "Carlos",
	}
	require.NoError(t, valid.Validate())

	cases := []struct {
		name   string
		mutate func(*Farm)
	}{
		{"empty name", func(f *Farm) { f.Name = "" }},
		{"empty state", func(f *Farm) { f.State = "" }},
		{"empty city", func(f *Farm) { f.City = "" }},
		{"zero hectares", func(f *Farm) { f.Hectares = 0 }},
		{"negative hectares", func(f *Farm) { f.Hectares = -3 }},
		{"empty owner", func(f *Farm) { f.OwnerName = "" }},
		{"bad status", func(f *Farm) { f.Status = "pausada" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := valid
			tc.mutate(&f)
			require.Error(t, f.Validate())
		})
	}
}

func TestProductionRecordValidate(t *testing.T) {
	valid := ProductionRecord{FarmID: 1, Date: "2024-09-01", ProjectedTons: 10, DeliveredTons: 12}
	// delivered above projected is allowed
	require.NoError(t, valid.Validate())

	cases := []struct {
		name   string
		mutate func(*ProductionRecord)
	}{
		{"missing farm", func(p *ProductionRecord) { p.FarmID = 0 }},
		{"bad date", func(p *ProductionRecord) { p.Date = "01/09/2024" }},
		{"negative projected", func(p *ProductionRecord) { p.ProjectedTons = -1 }},
		{"negative delivered", func(p *ProductionRecord) { p.DeliveredTons = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := valid
			tc.mutate(&p)
			require.Error(t, p.Validate())
		})
	}
}
