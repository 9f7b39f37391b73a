package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/animal-catalog/internal/logger"
	"github.com/MKhiriev/animal-catalog/models"
)

// animalRepository is the SQL implementation of [AnimalRepository]. Every
// statement is built with squirrel and bound parameters; each method runs a
// single statement on the pool, without transactions.
type animalRepository struct {
	*DB
	logger *logger.Logger
}

// NewAnimalRepository constructs an [AnimalRepository] backed by db.
func NewAnimalRepository(db *DB, logger *logger.Logger) AnimalRepository {
	logger.Debug().Str("dialect", db.dialect.Name).Msg("creating animal repository")
	return &animalRepository{
		DB:     db,
		logger: logger,
	}
}

// ListAll returns every animal ordered by id.
func (r *animalRepository) ListAll(ctx context.Context) ([]models.Animal, error) {
	query, args, err := buildListAnimalsQuery(r.dialect)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*animalRepository.ListAll").Msg("failed to build query")
		return nil, err
	}

	return r.queryAnimals(ctx, "*animalRepository.ListAll", query, args)
}

// ListByCategory returns the animals whose animal_cat equals category. An
// unknown category yields an empty, non-nil slice.
func (r *animalRepository) ListByCategory(ctx context.Context, category string) ([]models.Animal, error) {
	query, args, err := buildListAnimalsByCategoryQuery(r.dialect, category)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*animalRepository.ListByCategory").Msg("failed to build query")
		return nil, err
	}

	return r.queryAnimals(ctx, "*animalRepository.ListByCategory", query, args)
}

// Count returns the number of rows in animalweb.
func (r *animalRepository) Count(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountAnimalsQuery(r.dialect)
	if err != nil {
		log.Err(err).Str("func", "*animalRepository.Count").Msg("failed to build query")
		return 0, err
	}

	var count int64
	if err := r.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).
			Str("func", "*animalRepository.Count").
			Str("classification", r.classify(err).String()).
			Msg("failed to count animals")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

// Create inserts animal and returns the generated id.
func (r *animalRepository) Create(ctx context.Context, animal models.Animal) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertAnimalQuery(r.dialect, animal)
	if err != nil {
		log.Err(err).Str("func", "*animalRepository.Create").Msg("failed to build query")
		return 0, err
	}

	if r.dialect.ReturningID {
		var id int64
		if err := r.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
			log.Err(err).
				Str("func", "*animalRepository.Create").
				Str("animal_name", animal.Name).
				Str("classification", r.classify(err).String()).
				Msg("failed to insert animal")
			return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return id, nil
	}

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*animalRepository.Create").
			Str("animal_name", animal.Name).
			Str("classification", r.classify(err).String()).
			Msg("failed to insert animal")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		log.Err(err).Str("func", "*animalRepository.Create").Msg("failed to read inserted id")
		return 0, fmt.Errorf("%w: %w", ErrReadingResult, err)
	}

	return id, nil
}

// Update sets the fields present in fields on the row with the given id and
// returns the number of matched rows.
func (r *animalRepository) Update(ctx context.Context, id int64, fields models.AnimalFields) (int64, error) {
	query, args, err := buildUpdateAnimalQuery(r.dialect, id, fields)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*animalRepository.Update").Int64("id", id).Msg("failed to build query")
		return 0, err
	}

	return r.execAffected(ctx, "*animalRepository.Update", id, query, args)
}

// Delete removes the row with the given id and returns the number of deleted
// rows.
func (r *animalRepository) Delete(ctx context.Context, id int64) (int64, error) {
	query, args, err := buildDeleteAnimalQuery(r.dialect, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*animalRepository.Delete").Int64("id", id).Msg("failed to build query")
		return 0, err
	}

	return r.execAffected(ctx, "*animalRepository.Delete", id, query, args)
}

// Ping checks that a pool connection is usable.
func (r *animalRepository) Ping(ctx context.Context) error {
	if err := r.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrConnectingDatabase, err)
	}

	return nil
}

func (r *animalRepository) queryAnimals(ctx context.Context, funcName, query string, args []any) ([]models.Animal, error) {
	log := logger.FromContext(ctx)

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", funcName).
			Str("classification", r.classify(err).String()).
			Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	animals := make([]models.Animal, 0, 32)
	for rows.Next() {
		animal, scanErr := scanAnimal(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", funcName).Msg("failed to scan animal row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		animals = append(animals, animal)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return animals, nil
}

func (r *animalRepository) execAffected(ctx context.Context, funcName string, id int64, query string, args []any) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", funcName).
			Int64("id", id).
			Str("classification", r.classify(err).String()).
			Msg("failed to execute statement")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", funcName).Int64("id", id).Msg("failed to read affected rows")
		return 0, fmt.Errorf("%w: %w", ErrReadingResult, err)
	}

	return affected, nil
}

// scanAnimal reads one row in animalColumns order. Optional columns go
// through sql.NullString so legacy numeric animal_agg values scan as text.
func scanAnimal(rows *sql.Rows) (models.Animal, error) {
	var animal models.Animal
	var characteristics, description, habitat, diet, agg, cat, pic sql.NullString

	if err := rows.Scan(
		&animal.ID,
		&animal.Name,
		&characteristics,
		&description,
		&habitat,
		&diet,
		&agg,
		&cat,
		&pic,
	); err != nil {
		return models.Animal{}, err
	}

	animal.Characteristics = stringPtr(characteristics)
	animal.Description = stringPtr(description)
	animal.Habitat = stringPtr(habitat)
	animal.Diet = stringPtr(diet)
	animal.Category = stringPtr(cat)
	animal.PictureRef = stringPtr(pic)
	if agg.Valid {
		level := models.AggressionLevel(agg.String)
		animal.AggressionLevel = &level
	}

	return animal, nil
}

func stringPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}
