package store

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/MKhiriev/animal-catalog/internal/logger"
	"github.com/MKhiriev/animal-catalog/models"
)

// memoryAnimalRepository is an in-process [AnimalRepository] used for local
// runs and tests. Ids grow monotonically and are never reused, deleted ones
// included.
type memoryAnimalRepository struct {
	mu      sync.RWMutex
	animals map[int64]models.Animal
	lastID  int64
	logger  *logger.Logger
}

// NewMemoryAnimalRepository constructs an empty in-memory [AnimalRepository].
func NewMemoryAnimalRepository(logger *logger.Logger) AnimalRepository {
	logger.Debug().Msg("creating in-memory animal repository")
	return &memoryAnimalRepository{
		animals: make(map[int64]models.Animal),
		logger:  logger,
	}
}

func (m *memoryAnimalRepository) ListAll(_ context.Context) ([]models.Animal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.collect(func(models.Animal) bool { return true }), nil
}

func (m *memoryAnimalRepository) ListByCategory(_ context.Context, category string) ([]models.Animal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.collect(func(a models.Animal) bool {
		return a.Category != nil && *a.Category == category
	}), nil
}

func (m *memoryAnimalRepository) Count(_ context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return int64(len(m.animals)), nil
}

func (m *memoryAnimalRepository) Create(_ context.Context, animal models.Animal) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lastID++
	animal.ID = m.lastID
	m.animals[animal.ID] = cloneAnimal(animal)

	return animal.ID, nil
}

func (m *memoryAnimalRepository) Update(_ context.Context, id int64, fields models.AnimalFields) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	animal, ok := m.animals[id]
	if !ok {
		return 0, nil
	}
	m.animals[id] = cloneAnimal(fields.Apply(animal))

	return 1, nil
}

func (m *memoryAnimalRepository) Delete(_ context.Context, id int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.animals[id]; !ok {
		return 0, nil
	}
	delete(m.animals, id)

	return 1, nil
}

func (m *memoryAnimalRepository) Ping(_ context.Context) error {
	return nil
}

// collect returns copies of the matching animals ordered by id. Caller holds
// the read lock.
func (m *memoryAnimalRepository) collect(match func(models.Animal) bool) []models.Animal {
	result := make([]models.Animal, 0, len(m.animals))
	for _, id := range slices.Sorted(maps.Keys(m.animals)) {
		if animal := m.animals[id]; match(animal) {
			result = append(result, cloneAnimal(animal))
		}
	}

	return result
}

// cloneAnimal deep-copies the optional fields so callers never share memory
// with the stored value.
func cloneAnimal(a models.Animal) models.Animal {
	a.Characteristics = clonePtr(a.Characteristics)
	a.Description = clonePtr(a.Description)
	a.Habitat = clonePtr(a.Habitat)
	a.Diet = clonePtr(a.Diet)
	a.AggressionLevel = clonePtr(a.AggressionLevel)
	a.Category = clonePtr(a.Category)
	a.PictureRef = clonePtr(a.PictureRef)
	return a
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
