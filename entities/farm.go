package entities

import "errors"

const (
	StatusActive   = "ativa"
	StatusInactive = "inativa"
)

// SuggestedStates is the list offered by registration forms. The store does
// not enforce it; imports and backups may carry any state name.
var SuggestedStates = []string{
	"Goiás", "Mato Grosso", "Mato Grosso do Sul", "Minas Gerais",
	"São Paulo", "Bahia", "Tocantins", "Maranhão", "Piauí",
}

// Farm keeps the legacy wire names so existing backups keep round-tripping.
type Farm struct {
	ID           int     `json:"id"`
	Name         string  `json:"nome"`
	State        string  `json:"estado"`
	City         string  `json:"cidade"`
	Hectares     float64 `json:"hectares"`
	Status       string  `json:"status"` // ativa|inativa
	OwnerName    string  `json:"proprietario"`
	Phone        string  `json:"telefone"`
	Email        string  `json:"email"`
	RegisteredOn string  `json:"data_cadastro"` // YYYY-MM-DD, set once at creation
	Notes        string  `json:"observacoes,omitempty"`
}

// Validate applies the create/edit form rules. Import paths stay lenient and
// do not call this.
func (f *Farm) Validate() error {
	if f.Name == "" {
		return errors.New("nome é obrigatório")
	}
	if f.State == "" {
		return errors.New("estado é obrigatório")
	}
	if f.City == "" {
		return errors.New("cidade é obrigatória")
	}
	if f.Hectares <= 0 {
		return errors.New("hectares deve ser maior que zero")
	}
	if f.OwnerName == "" {
		return errors.New("proprietário é obrigatório")
	}
	if f.Status != StatusActive && f.Status != StatusInactive {
		return errors.New("status deve ser 'ativa' ou 'inativa'")
	}
	return nil
}
