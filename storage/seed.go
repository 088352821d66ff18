package storage

import "florestal/entities"

// Seed is the fixed fallback dataset used when no valid data file exists.
func Seed() *entities.Dataset {
	return &entities.Dataset{
		Farms: []entities.Farm{
			{
				ID:           1,
				Name:         "Fazenda São João",
				State:        "Goiás",
				City:         "Mineiros",
				Hectares:     1200.5,
				Status:       entities.StatusActive,
				OwnerName:    "João Silva",
				Phone:        "(64) 99999-1234",
				Email:        "joao@fazenda.com",
				RegisteredOn: "2024-01-15",
			},
			{
				ID:           2,
				Name:         "Fazenda Santa Maria",
				State:        "Mato Grosso",
				City:         "Sorriso",
				Hectares:     2500.0,
				Status:       entities.StatusActive,
				OwnerName:    "Maria Santos",
				Phone:        "(65) 98888-5678",
				Email:        "maria@fazenda.com",
				RegisteredOn: "2024-02-20",
			},
			{
				ID:           3,
				Name:         "Fazenda Boa Vista",
				State:        "Goiás",
				City:         "Rio Verde",
				Hectares:     800.0,
				Status:       entities.StatusInactive,
				OwnerName:    "Carlos Oliveira",
				Phone:        "(64) 97777-9012",
				Email:        "carlos@fazenda.com",
				RegisteredOn: "2024-03-10",
			},
		},
		Production: []entities.ProductionRecord{
			{
				FarmID:        1,
				Date:          "2024-09-01",
				ProjectedTons: 1500.0,
				DeliveredTons: 1200.0,
				Notes:         "Produção dentro do esperado",
			},
			{
				FarmID:        2,
				Date:          "2024-09-01",
				ProjectedTons: 3000.0,
				DeliveredTons: 2800.0,
				Notes:         "Excelente produtividade",
			},
			{
				FarmID:        1,
				Date:          "2024-09-15",
				ProjectedTons: 1600.0,
				DeliveredTons: 1400.0,
				Notes:         "Pequena redução devido ao clima",
			},
		},
	}
}
