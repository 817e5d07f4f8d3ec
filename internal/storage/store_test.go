package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"neonatal-record-service/internal/domain/entities"
)

func newTestStore(t *testing.T, path string) *Store {
	t.Helper()
	s := New(Options{Path: path, Logger: zerolog.Nop()})
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpenCreatesDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), DatabaseName)
	s := newTestStore(t, path)

	err := s.Open(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, s.MigrationIssues())

	db, err := s.DB(context.Background())
	assert.NoError(t, err)
	assert.True(t, db.Migrator().HasTable(&entities.Paciente{}))
	assert.True(t, db.Migrator().HasIndex(&entities.Paciente{}, "uq_pacientes_numero_historia_clinica"))
	assert.True(t, db.Migrator().HasIndex(&entities.Paciente{}, "idx_pacientes_nombre_apellido"))

	v, err := readSchemaVersion(db)
	assert.NoError(t, err)
	assert.Equal(t, SchemaVersion, v)
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), DatabaseName)
	s := newTestStore(t, path)

	assert.NoError(t, s.Open(context.Background()))
	assert.NoError(t, s.Open(context.Background()))

	// A fresh handle against the same file must not migrate again.
	s2 := newTestStore(t, path)
	assert.NoError(t, s2.Open(context.Background()))
	assert.Nil(t, s2.MigrationIssues())
}

func TestOpenStorageUnavailable(t *testing.T) {
	s := newTestStore(t, filepath.Join(t.TempDir(), "no-such-dir", DatabaseName))

	err := s.Open(context.Background())
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrStorageUnavailable))

	// Fatal for every subsequent operation.
	_, err = s.DB(context.Background())
	assert.True(t, errors.Is(err, ErrStorageUnavailable))
}

func TestOpenRejectsNewerDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), DatabaseName)
	s := newTestStore(t, path)
	assert.NoError(t, s.Open(context.Background()))
	assert.NoError(t, writeSchemaVersion(s.db, SchemaVersion+1))
	assert.NoError(t, s.Close())

	s2 := newTestStore(t, path)
	err := s2.Open(context.Background())
	assert.True(t, errors.Is(err, ErrStorageUnavailable))
}

// createVersion1Database lays out a file the way the first release wrote it:
// the pacientes collection without the fields version 2 introduced, and with
// the legacy grupoFactor column that version 2 renamed.
func createVersion1Database(t *testing.T, path string) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	assert.NoError(t, err)

	ddl := `CREATE TABLE pacientes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		nombre TEXT DEFAULT '',
		apellido TEXT DEFAULT '',
		fechaNacimiento TEXT DEFAULT '',
		horaNacimiento TEXT DEFAULT '',
		numeroHistoriaClinica TEXT DEFAULT '',
		sexo TEXT DEFAULT '',
		peso TEXT DEFAULT '',
		talla TEXT DEFAULT '',
		perimetroCefalico TEXT DEFAULT '',
		edadGestacional TEXT DEFAULT '',
		apgar TEXT DEFAULT '',
		ddv TEXT DEFAULT '',
		hc TEXT DEFAULT '',
		pulsera TEXT DEFAULT '',
		nacidoPor TEXT DEFAULT '',
		presentacion TEXT DEFAULT '',
		liquidoAmniotico TEXT DEFAULT '',
		rupturaMembranas TEXT DEFAULT '',
		clasificacion TEXT DEFAULT '',
		procedencia TEXT DEFAULT '',
		sectorInternacion TEXT DEFAULT '',
		obstetra TEXT DEFAULT '',
		enfermera TEXT DEFAULT '',
		neonatologo TEXT DEFAULT '',
		vacunacionHbsag NUMERIC DEFAULT 0,
		vacunacionBcg NUMERIC DEFAULT 0,
		pesquisaMetabolica NUMERIC DEFAULT 0,
		grupoFactor TEXT DEFAULT '',
		laboratorios TEXT DEFAULT '',
		datosMaternos TEXT DEFAULT '',
		numeroDocumento TEXT DEFAULT '',
		telefono TEXT DEFAULT '',
		obraSocial TEXT DEFAULT '',
		sarsCov2 TEXT DEFAULT '',
		fechaCovid TEXT DEFAULT '',
		chagas TEXT DEFAULT '',
		fechaChagas TEXT DEFAULT '',
		toxoplasmosis TEXT DEFAULT '',
		fechaToxo TEXT DEFAULT '',
		hiv TEXT DEFAULT '',
		fechaHIV TEXT DEFAULT '',
		vdrl TEXT DEFAULT '',
		fechaVDRL TEXT DEFAULT '',
		hepatitisB TEXT DEFAULT '',
		fechaHB TEXT DEFAULT '',
		egb TEXT DEFAULT '',
		fechaEGB TEXT DEFAULT '',
		profilaxisATB TEXT DEFAULT '',
		createdAt INTEGER DEFAULT 0
	)`
	assert.NoError(t, db.Exec(ddl).Error)
	assert.NoError(t, db.Exec(`CREATE INDEX idx_pacientes_nombre_apellido ON pacientes(nombre, apellido)`).Error)
	assert.NoError(t, db.Exec(`CREATE UNIQUE INDEX uq_pacientes_numero_historia_clinica ON pacientes(numeroHistoriaClinica)`).Error)

	assert.NoError(t, db.Exec(
		`INSERT INTO pacientes (nombre, apellido, numeroHistoriaClinica, sexo, grupoFactor, vacunacionHbsag, createdAt)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		"Juan", "Pérez", "HC001", "M", "0+", 1, int64(1700000000000),
	).Error)
	assert.NoError(t, db.Exec(
		`INSERT INTO pacientes (nombre, apellido, numeroHistoriaClinica, createdAt)
		 VALUES (?, ?, ?, ?)`,
		"Ana", "García", "HC003", int64(1700000100000),
	).Error)

	assert.NoError(t, writeSchemaVersion(db, 1))
	sqlDB, err := db.DB()
	assert.NoError(t, err)
	assert.NoError(t, sqlDB.Close())
}

func TestMigrationBackfillsNewFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), DatabaseName)
	createVersion1Database(t, path)

	s := newTestStore(t, path)
	assert.NoError(t, s.Open(context.Background()))
	assert.Nil(t, s.MigrationIssues())

	db, err := s.DB(context.Background())
	assert.NoError(t, err)

	v, err := readSchemaVersion(db)
	assert.NoError(t, err)
	assert.Equal(t, SchemaVersion, v)

	// Fields introduced in version 2 must now be present, not NULL, on every
	// pre-existing record.
	var rows []map[string]any
	assert.NoError(t, db.Table("pacientes").Order("id").Find(&rows).Error)
	assert.Len(t, rows, 2)
	for _, row := range rows {
		for _, f := range fieldsAddedIn[2] {
			assert.NotNil(t, row[f.column], "column %s left NULL", f.column)
		}
	}

	var juan entities.Paciente
	assert.NoError(t, db.First(&juan, 1).Error)
	// Pre-existing fields are untouched.
	assert.Equal(t, "Juan", juan.Nombre)
	assert.Equal(t, "Pérez", juan.Apellido)
	assert.Equal(t, "HC001", juan.NumeroHistoriaClinica)
	assert.True(t, juan.VacunacionHbsag)
	assert.Equal(t, int64(1700000000000), juan.CreatedAt)
	// New fields are defaulted, with the rename fallback applied.
	assert.Equal(t, "0+", juan.GrupoFactorRn)
	assert.Equal(t, "", juan.LoteHbsag)
	assert.Equal(t, "", juan.FechaEgreso)
	assert.Equal(t, "", juan.EvolucionInternacion)

	var ana entities.Paciente
	assert.NoError(t, db.First(&ana, 2).Error)
	// No legacy value to carry over: the plain default applies.
	assert.Equal(t, "", ana.GrupoFactorRn)
}

func TestMigrationIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), DatabaseName)
	createVersion1Database(t, path)

	s := newTestStore(t, path)
	assert.NoError(t, s.Open(context.Background()))

	var before []map[string]any
	assert.NoError(t, s.db.Table("pacientes").Order("id").Find(&before).Error)

	// Force a second pass over the already-migrated records.
	assert.NoError(t, writeSchemaVersion(s.db, 1))
	assert.NoError(t, s.Close())

	s2 := newTestStore(t, path)
	assert.NoError(t, s2.Open(context.Background()))
	assert.Nil(t, s2.MigrationIssues())

	var after []map[string]any
	assert.NoError(t, s2.db.Table("pacientes").Order("id").Find(&after).Error)
	assert.Equal(t, before, after)
}

func TestSharedReturnsSameInstance(t *testing.T) {
	path := filepath.Join(t.TempDir(), DatabaseName)
	a := Shared(Options{Path: path, Logger: zerolog.Nop()})
	b := Shared(Options{Path: "ignored.db", Logger: zerolog.Nop()})
	assert.Same(t, a, b)
}
