package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/animal-catalog/internal/logger"
	"github.com/MKhiriev/animal-catalog/models"
	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAnimalRepo(t *testing.T, dialect Dialect, classifier ErrorClassificator) (*animalRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)

	l := logger.Nop()
	repo := &animalRepository{
		DB:     &DB{DB: db, dialect: dialect, errorClassificator: classifier, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func animalRows() *sqlmock.Rows {
	return sqlmock.NewRows(animalColumns)
}

func TestListAll_Success(t *testing.T) {
	repo, mock, db := newTestAnimalRepo(t, MySQLDialect, NewMySQLErrorClassifier())
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, animal_name")).
		WillReturnRows(animalRows().
			AddRow(int64(1), "Lion", "Strong", nil, "Savanna", "Carnivore", "5", "Mammal", "lion.png").
			AddRow(int64(2), "Eagle", nil, nil, nil, nil, int64(3), "Bird", nil))

	animals, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, animals, 2)

	assert.Equal(t, int64(1), animals[0].ID)
	assert.Equal(t, "Lion", animals[0].Name)
	require.NotNil(t, animals[0].Characteristics)
	assert.Equal(t, "Strong", *animals[0].Characteristics)
	assert.Nil(t, animals[0].Description)
	require.NotNil(t, animals[0].AggressionLevel)
	assert.Equal(t, models.AggressionLevel("5"), *animals[0].AggressionLevel)

	require.NotNil(t, animals[1].AggressionLevel, "numeric legacy column scans as text")
	assert.Equal(t, models.AggressionLevel("3"), *animals[1].AggressionLevel)
	assert.Nil(t, animals[1].PictureRef)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListAll_QueryError(t *testing.T) {
	repo, mock, db := newTestAnimalRepo(t, MySQLDialect, NewMySQLErrorClassifier())
	defer db.Close()

	mock.ExpectQuery("SELECT").WillReturnError(&mysql.MySQLError{Number: 1213, Message: "deadlock"})

	animals, err := repo.ListAll(context.Background())
	assert.Nil(t, animals)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestListAll_ScanError(t *testing.T) {
	repo, mock, db := newTestAnimalRepo(t, MySQLDialect, nil)
	defer db.Close()

	mock.ExpectQuery("SELECT").
		WillReturnRows(animalRows().AddRow("not-a-number", "Lion", nil, nil, nil, nil, nil, nil, nil))

	_, err := repo.ListAll(context.Background())
	assert.ErrorIs(t, err, ErrScanningRow)
}

func TestListAll_RowsError(t *testing.T) {
	repo, mock, db := newTestAnimalRepo(t, MySQLDialect, nil)
	defer db.Close()

	mock.ExpectQuery("SELECT").
		WillReturnRows(animalRows().
			AddRow(int64(1), "Lion", nil, nil, nil, nil, nil, nil, nil).
			RowError(0, errors.New("connection reset")))

	_, err := repo.ListAll(context.Background())
	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestListByCategory_Match(t *testing.T) {
	repo, mock, db := newTestAnimalRepo(t, PostgresDialect, NewPostgresErrorClassifier())
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE animal_cat = $1")).
		WithArgs("Mammal").
		WillReturnRows(animalRows().AddRow(int64(1), "Lion", nil, nil, nil, nil, nil, "Mammal", nil))

	animals, err := repo.ListByCategory(context.Background(), "Mammal")
	require.NoError(t, err)
	require.Len(t, animals, 1)
	assert.Equal(t, "Mammal", *animals[0].Category)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByCategory_NoRowsIsEmptyNotNil(t *testing.T) {
	repo, mock, db := newTestAnimalRepo(t, MySQLDialect, nil)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE animal_cat = ?")).
		WithArgs("Dragon").
		WillReturnRows(animalRows())

	animals, err := repo.ListByCategory(context.Background(), "Dragon")
	require.NoError(t, err)
	assert.NotNil(t, animals)
	assert.Empty(t, animals)
}

func TestCount_Success(t *testing.T) {
	repo, mock, db := newTestAnimalRepo(t, MySQLDialect, nil)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(id) AS count FROM animalweb")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(4)))

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}

func TestCount_Error(t *testing.T) {
	repo, mock, db := newTestAnimalRepo(t, PostgresDialect, NewPostgresErrorClassifier())
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT").WillReturnError(&pgconn.PgError{Code: pgerrcode.UndefinedTable})

	_, err := repo.Count(context.Background())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestCreate_MySQLUsesLastInsertID(t *testing.T) {
	repo, mock, db := newTestAnimalRepo(t, MySQLDialect, NewMySQLErrorClassifier())
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO animalweb")).
		WithArgs("Lion", nil, nil, nil, nil, nil, "Mammal", nil).
		WillReturnResult(sqlmock.NewResult(7, 1))

	id, err := repo.Create(context.Background(), models.Animal{Name: "Lion", Category: sp("Mammal")})
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_PostgresUsesReturning(t *testing.T) {
	repo, mock, db := newTestAnimalRepo(t, PostgresDialect, NewPostgresErrorClassifier())
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("RETURNING id")).
		WithArgs("Lion", nil, nil, nil, nil, nil, nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(9)))

	id, err := repo.Create(context.Background(), models.Animal{Name: "Lion"})
	require.NoError(t, err)
	assert.Equal(t, int64(9), id)
}

func TestCreate_ExecError(t *testing.T) {
	repo, mock, db := newTestAnimalRepo(t, MySQLDialect, NewMySQLErrorClassifier())
	defer db.Close()

	mock.ExpectExec("INSERT").WillReturnError(mysql.ErrInvalidConn)

	_, err := repo.Create(context.Background(), models.Animal{Name: "Lion"})
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestCreate_LastInsertIDError(t *testing.T) {
	repo, mock, db := newTestAnimalRepo(t, SQLiteDialect, NewSQLiteErrorClassifier())
	defer db.Close()

	mock.ExpectExec("INSERT").WillReturnResult(sqlmock.NewErrorResult(errors.New("no id")))

	_, err := repo.Create(context.Background(), models.Animal{Name: "Lion"})
	assert.ErrorIs(t, err, ErrReadingResult)
}

func TestUpdate_AffectedRows(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
	}{
		{name: "found", affected: 1},
		{name: "not found", affected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, db := newTestAnimalRepo(t, MySQLDialect, nil)
			defer db.Close()

			mock.ExpectExec(regexp.QuoteMeta("UPDATE animalweb SET animal_name = ? WHERE id = ?")).
				WithArgs("Tiger", int64(3)).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			affected, err := repo.Update(context.Background(), 3, models.AnimalFields{Name: sp("Tiger")})
			require.NoError(t, err)
			assert.Equal(t, tt.affected, affected)
		})
	}
}

func TestUpdate_NoFieldsFailsBeforeDatabase(t *testing.T) {
	repo, mock, db := newTestAnimalRepo(t, MySQLDialect, nil)
	defer db.Close()

	_, err := repo.Update(context.Background(), 3, models.AnimalFields{})
	assert.ErrorIs(t, err, ErrBuildingSQLQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_ExecError(t *testing.T) {
	repo, mock, db := newTestAnimalRepo(t, MySQLDialect, nil)
	defer db.Close()

	mock.ExpectExec("UPDATE").WillReturnError(errors.New("boom"))

	_, err := repo.Update(context.Background(), 3, models.AnimalFields{Name: sp("Tiger")})
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestDelete_AffectedRows(t *testing.T) {
	repo, mock, db := newTestAnimalRepo(t, PostgresDialect, nil)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM animalweb WHERE id = $1")).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM animalweb WHERE id = $1")).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	first, err := repo.Delete(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first)

	second, err := repo.Delete(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, int64(0), second)
}

func TestDelete_RowsAffectedError(t *testing.T) {
	repo, mock, db := newTestAnimalRepo(t, MySQLDialect, nil)
	defer db.Close()

	mock.ExpectExec("DELETE").WillReturnResult(sqlmock.NewErrorResult(errors.New("unknown")))

	_, err := repo.Delete(context.Background(), 5)
	assert.ErrorIs(t, err, ErrReadingResult)
}

func TestPing(t *testing.T) {
	repo, mock, db := newTestAnimalRepo(t, MySQLDialect, nil)
	defer db.Close()

	mock.ExpectPing()
	assert.NoError(t, repo.Ping(context.Background()))

	mock.ExpectPing().WillReturnError(errors.New("down"))
	assert.ErrorIs(t, repo.Ping(context.Background()), ErrConnectingDatabase)
}
