package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/animal-catalog/models"
)

const animalTable = "animalweb"

// animalColumns is the column order every SELECT returns and scanAnimal
// expects.
var animalColumns = []string{
	"id",
	"animal_name",
	"animal_char",
	"animal_desc",
	"animal_habitat",
	"animal_diet",
	"animal_agg",
	"animal_cat",
	"animal_pic",
}

func buildListAnimalsQuery(d Dialect) (string, []any, error) {
	query, args, err := d.builder().
		Select(animalColumns...).
		From(animalTable).
		OrderBy("id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildListAnimalsByCategoryQuery(d Dialect, category string) (string, []any, error) {
	query, args, err := d.builder().
		Select(animalColumns...).
		From(animalTable).
		Where(sq.Eq{"animal_cat": category}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildCountAnimalsQuery(d Dialect) (string, []any, error) {
	query, args, err := d.builder().
		Select("COUNT(id) AS count").
		From(animalTable).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildInsertAnimalQuery inserts all eight data columns; absent optional
// fields are bound as NULL.
func buildInsertAnimalQuery(d Dialect, animal models.Animal) (string, []any, error) {
	insert := d.builder().
		Insert(animalTable).
		Columns(animalColumns[1:]...).
		Values(
			animal.Name,
			nullable(animal.Characteristics),
			nullable(animal.Description),
			nullable(animal.Habitat),
			nullable(animal.Diet),
			nullable(animal.AggressionLevel),
			nullable(animal.Category),
			nullable(animal.PictureRef),
		)
	if d.ReturningID {
		insert = insert.Suffix("RETURNING id")
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdateAnimalQuery sets only the columns present in fields, in table
// column order.
func buildUpdateAnimalQuery(d Dialect, id int64, fields models.AnimalFields) (string, []any, error) {
	update := d.builder().Update(animalTable)

	if fields.Name != nil {
		update = update.Set("animal_name", *fields.Name)
	}
	if fields.Characteristics != nil {
		update = update.Set("animal_char", *fields.Characteristics)
	}
	if fields.Description != nil {
		update = update.Set("animal_desc", *fields.Description)
	}
	if fields.Habitat != nil {
		update = update.Set("animal_habitat", *fields.Habitat)
	}
	if fields.Diet != nil {
		update = update.Set("animal_diet", *fields.Diet)
	}
	if fields.AggressionLevel != nil {
		update = update.Set("animal_agg", string(*fields.AggressionLevel))
	}
	if fields.Category != nil {
		update = update.Set("animal_cat", *fields.Category)
	}
	if fields.PictureRef != nil {
		update = update.Set("animal_pic", *fields.PictureRef)
	}

	// squirrel refuses an UPDATE without SET clauses
	query, args, err := update.Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildDeleteAnimalQuery(d Dialect, id int64) (string, []any, error) {
	query, args, err := d.builder().
		Delete(animalTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// nullable converts an optional string-like field into a bind value: nil for
// NULL, the plain string otherwise.
func nullable[T ~string](v *T) any {
	if v == nil {
		return nil
	}
	return string(*v)
}
