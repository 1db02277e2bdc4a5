// Package store mantiene el snapshot en memoria y lo persiste entero en cada
// mutación. Toda operación de más alto nivel pasa por la primitiva Update:
// transformar el snapshot, serializar, persistir, y recién entonces reemplazar
// el estado en memoria. Si algo falla, el estado anterior queda intacto.
package store

import (
	"encoding/json"
	"sync"

	"printco-backend/internal/database"
	"printco-backend/internal/models"
)

type Store struct {
	mu    sync.RWMutex
	state models.AppState
	db    database.SnapshotStore
}

// New carga el snapshot desde la fachada. Clave ausente o JSON malformado no
// son fatales: se cae al catálogo inicial, campo por campo.
func New(db database.SnapshotStore) (*Store, error) {
	s := &Store{db: db, state: models.InitialState()}

	data, found, err := db.Load()
	if err != nil {
		return nil, err
	}
	if found {
		// datos corruptos degradan al estado inicial, nunca a un arranque fallido
		if state, err := decodeSnapshot(data); err == nil {
			s.state = state
		}
	}
	return s, nil
}

// decodeSnapshot valida campo por campo: cada lista tiene que ser literalmente
// un array JSON o se conserva el valor por defecto; settings se mezclan
// superficialmente sobre los defaults.
func decodeSnapshot(data []byte) (models.AppState, error) {
	var raw struct {
		Products      json.RawMessage `json:"products"`
		Supplies      json.RawMessage `json:"supplies"`
		Sales         json.RawMessage `json:"sales"`
		Expenses      json.RawMessage `json:"expenses"`
		CashRegisters json.RawMessage `json:"cashRegisters"`
		Settings      json.RawMessage `json:"settings"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return models.AppState{}, err
	}

	state := models.AppState{
		Products:      models.InitialProducts(),
		Supplies:      models.InitialSupplies(),
		Sales:         []models.Sale{},
		Expenses:      []models.Expense{},
		CashRegisters: []models.CashRegister{},
		Settings:      models.DefaultSettings(),
	}

	if raw.Products != nil {
		var products []models.Product
		if err := json.Unmarshal(raw.Products, &products); err == nil {
			state.Products = products
		}
	}
	if raw.Supplies != nil {
		var supplies []models.Supply
		if err := json.Unmarshal(raw.Supplies, &supplies); err == nil {
			state.Supplies = supplies
		}
	}
	if raw.Sales != nil {
		var sales []models.Sale
		if err := json.Unmarshal(raw.Sales, &sales); err == nil {
			state.Sales = sales
		}
	}
	if raw.Expenses != nil {
		var expenses []models.Expense
		if err := json.Unmarshal(raw.Expenses, &expenses); err == nil {
			state.Expenses = expenses
		}
	}
	if raw.CashRegisters != nil {
		var registers []models.CashRegister
		if err := json.Unmarshal(raw.CashRegisters, &registers); err == nil {
			state.CashRegisters = registers
		}
	}
	if raw.Settings != nil {
		// Unmarshal sobre los defaults pisa solo las claves presentes
		settings := models.DefaultSettings()
		if err := json.Unmarshal(raw.Settings, &settings); err == nil {
			state.Settings = settings
		}
	}

	return state, nil
}

// State devuelve una copia del snapshot, segura para lectura concurrente.
func (s *Store) State() models.AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Update es la única primitiva de mutación. La transformación recibe una copia
// del snapshot; devolver error aborta sin efectos. El estado en memoria se
// reemplaza solo después de persistir con éxito.
func (s *Store) Update(transform func(models.AppState) (models.AppState, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := transform(s.state.Clone())
	if err != nil {
		return err
	}

	data, err := json.Marshal(next)
	if err != nil {
		return err
	}
	if err := s.db.Save(data); err != nil {
		return err
	}

	s.state = next
	return nil
}

// Export serializa el snapshot completo, con indentación, para backup.
func (s *Store) Export() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return json.MarshalIndent(s.state, "", "  ")
}

// Import valida y adopta un snapshot externo con el mismo defaulting que la
// carga. JSON malformado es un error manejado, no un crash.
func (s *Store) Import(data []byte) (models.AppState, error) {
	state, err := decodeSnapshot(data)
	if err != nil {
		return models.AppState{}, err
	}
	if err := s.Update(func(models.AppState) (models.AppState, error) {
		return state, nil
	}); err != nil {
		return models.AppState{}, err
	}
	return state.Clone(), nil
}

// Reset vuelve al catálogo inicial y borra el snapshot persistido.
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.db.Delete(); err != nil {
		return err
	}
	s.state = models.InitialState()
	return nil
}
