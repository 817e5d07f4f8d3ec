package storage

import (
	"fmt"

	"gorm.io/gorm"

	"neonatal-record-service/internal/domain/entities"
)

// fieldDefault is a column introduced by a schema version together with its
// type-appropriate default: '' for strings, false for booleans.
type fieldDefault struct {
	column  string
	missing any
}

// fieldsAddedIn lists, per schema version, the columns that version
// introduced. Records written by older releases lack them; migration
// backfills the defaults so that a stored record always carries every field
// the current schema knows.
var fieldsAddedIn = map[int][]fieldDefault{
	2: {
		{"loteHbsag", ""}, {"fechaHbsag", ""},
		{"loteBcg", ""}, {"fechaBcg", ""},
		{"protocoloPesquisa", ""}, {"fechaPesquisa", ""}, {"horaPesquisa", ""},
		{"grupoFactorRn", ""}, {"grupoFactorMaterno", ""}, {"pcd", ""},
		{"bilirrubinaTotalValor", ""}, {"bilirrubinaDirectaValor", ""}, {"hematocritoValor", ""},
		{"fechaEgreso", ""}, {"horaEgreso", ""}, {"pesoEgreso", ""},
		{"evolucionInternacion", ""}, {"diagnosticos", ""},
		{"indicacionesEgreso", ""}, {"observaciones", ""},
		{"enfermeraEgreso", ""}, {"neonatologoEgreso", ""},
	},
}

// fieldsRenamedIn maps, per schema version, a new column name to the legacy
// column it replaces. The legacy value is carried over when it is the only
// one present; otherwise the default applies.
var fieldsRenamedIn = map[int]map[string]string{
	2: {"grupoFactorRn": "grupoFactor"},
}

// migrate brings the database from storedVersion up to SchemaVersion. It
// always ensures the collection and its two indexes exist; when the
// collection predates this open it additionally rewrites every record,
// best-effort, so that fields introduced since storedVersion are present with
// their defaults.
//
// The returned *MigrationPartialFailure is nil when every record migrated;
// the error return is reserved for failures that prevent opening at all.
func migrate(db *gorm.DB, storedVersion int) (*MigrationPartialFailure, error) {
	hadTable := db.Migrator().HasTable(&entities.Paciente{})

	// Creates the table plus the (nombre, apellido) and unique
	// numeroHistoriaClinica indexes, or adds the missing columns on upgrade.
	if err := db.AutoMigrate(&entities.Paciente{}); err != nil {
		return nil, fmt.Errorf("ensuring collection: %w", err)
	}
	if !hadTable {
		return nil, nil
	}

	// A pre-pragma file carries user_version 0 but was written at the first
	// schema; treat it as such so only genuinely new fields are defaulted.
	if storedVersion < 1 {
		storedVersion = 1
	}
	return backfillRecords(db, storedVersion), nil
}

// backfillRecords rewrites each existing record with defaults for every field
// newly introduced after storedVersion. A record is either fully migrated or
// left untouched; one record's failure does not block the others.
func backfillRecords(db *gorm.DB, storedVersion int) *MigrationPartialFailure {
	var rows []map[string]any
	if err := db.Table(entities.Paciente{}.TableName()).Order("id").Find(&rows).Error; err != nil {
		return &MigrationPartialFailure{Records: []RecordMigrationError{{Err: err}}}
	}

	var failed []RecordMigrationError
	for _, row := range rows {
		id, ok := rowID(row)
		if !ok {
			failed = append(failed, RecordMigrationError{Err: fmt.Errorf("row without id: %v", row)})
			continue
		}

		updates := map[string]any{}
		for v := storedVersion + 1; v <= SchemaVersion; v++ {
			renames := fieldsRenamedIn[v]
			for _, f := range fieldsAddedIn[v] {
				if !isMissing(row[f.column]) {
					continue
				}
				if legacy, ok := carriedOver(row, renames[f.column]); ok {
					updates[f.column] = legacy
					continue
				}
				updates[f.column] = f.missing
			}
		}
		if len(updates) == 0 {
			// Already at the current shape; rerunning migration is a no-op.
			continue
		}

		err := db.Table(entities.Paciente{}.TableName()).
			Where("id = ?", id).
			Updates(updates).Error
		if err != nil {
			failed = append(failed, RecordMigrationError{ID: id, Err: err})
		}
	}

	if len(failed) == 0 {
		return nil
	}
	return &MigrationPartialFailure{Records: failed}
}

// isMissing reports whether a scanned column value represents a field the old
// record never had. Empty strings count as present: they are valid values.
func isMissing(v any) bool {
	return v == nil
}

// carriedOver resolves the rename fallback: the legacy column's value is used
// when that column exists and holds a non-empty value.
func carriedOver(row map[string]any, legacyColumn string) (string, bool) {
	if legacyColumn == "" {
		return "", false
	}
	s, ok := asString(row[legacyColumn])
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

func asString(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case []byte:
		return string(s), true
	default:
		return "", false
	}
}

func rowID(row map[string]any) (int64, bool) {
	switch id := row["id"].(type) {
	case int64:
		return id, true
	case int:
		return int64(id), true
	case uint64:
		return int64(id), true
	default:
		return 0, false
	}
}
