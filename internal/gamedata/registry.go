package gamedata

import (
	"errors"
	"fmt"
)

// ErrNoDifficulties is returned when difficulties.json holds no presets.
var ErrNoDifficulties = errors.New("no difficulties loaded from difficulties.json")

// DifficultyRegistry holds loaded difficulty presets in menu order.
type DifficultyRegistry struct {
	difficulties []DifficultyDef
	byID         map[string]*DifficultyDef
}

// NewDifficultyRegistry creates a registry from loaded presets.
func NewDifficultyRegistry(difficulties []DifficultyDef) (*DifficultyRegistry, error) {
	registry := &DifficultyRegistry{
		difficulties: difficulties,
		byID:         make(map[string]*DifficultyDef, len(difficulties)),
	}
	for i := range difficulties {
		d := &difficulties[i]
		if d.CellSize <= 0 {
			return nil, fmt.Errorf("difficulty %q: cell size must be positive, got %d", d.ID, d.CellSize)
		}
		if _, dup := registry.byID[d.ID]; dup {
			return nil, fmt.Errorf("duplicate difficulty id %q", d.ID)
		}
		registry.byID[d.ID] = d
	}
	return registry, nil
}

// LoadDifficultyRegistry loads and creates a registry from the embedded difficulties.json.
func LoadDifficultyRegistry() (*DifficultyRegistry, error) {
	difficulties, err := LoadDifficulties()
	if err != nil {
		return nil, err
	}
	if len(difficulties) == 0 {
		return nil, ErrNoDifficulties
	}
	return NewDifficultyRegistry(difficulties)
}

// MustLoadDifficultyRegistry loads a registry, panicking on error.
func MustLoadDifficultyRegistry() *DifficultyRegistry {
	registry, err := LoadDifficultyRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the preset with the given ID, or nil if not found.
func (r *DifficultyRegistry) GetByID(id string) *DifficultyDef {
	return r.byID[id]
}

// GetByCellSize returns the first preset using the given cell size, or nil.
func (r *DifficultyRegistry) GetByCellSize(cellSize int) *DifficultyDef {
	for i := range r.difficulties {
		if r.difficulties[i].CellSize == cellSize {
			return &r.difficulties[i]
		}
	}
	return nil
}

// All returns all presets in menu order.
func (r *DifficultyRegistry) All() []DifficultyDef {
	return r.difficulties
}

// Count returns the number of presets in the registry.
func (r *DifficultyRegistry) Count() int {
	return len(r.difficulties)
}
