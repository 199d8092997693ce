package progress

import (
	"encoding/json"
	"errors"
)

// Bellek içi sahte depo: iş kuralları gerçek çerez altyapısı olmadan test edilir.
type memRepo struct {
	data    map[string]string
	saveErr error
	saves   int
}

func newMemRepo() *memRepo {
	return &memRepo{data: map[string]string{}}
}

func (m *memRepo) Load(key string, v any) (bool, error) {
	raw, ok := m.data[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, nil
	}
	return true, nil
}

func (m *memRepo) Save(key string, v any) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.data[key] = string(raw)
	m.saves++
	return nil
}

var errQuota = errors.New("çerez kotası doldu")
