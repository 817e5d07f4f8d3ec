package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	// DatabaseName is the default file name of the local database.
	DatabaseName = "clinica.db"

	// SchemaVersion is the shape of records the code expects. Bumped on every
	// field addition, rename or structural change; the version a database file
	// was written at lives in SQLite's user_version pragma.
	SchemaVersion = 2
)

// state models the open lifecycle: Closed -> Opening -> (Migrating) -> Ready.
// Migrating is only reachable when the stored version is behind SchemaVersion.
type state int

const (
	stateClosed state = iota
	stateOpening
	stateMigrating
	stateReady
)

// Options configures a Store. The embedding application owns configuration;
// the store itself reads no environment and no files beyond the database.
type Options struct {
	// Path of the database file. Defaults to DatabaseName in the working
	// directory.
	Path string

	Logger zerolog.Logger
}

// Store owns the single local patient database. Open is idempotent and every
// operation path opens lazily, so call sites never need to coordinate
// initialization. One Store is meant to exist per process; see Shared.
type Store struct {
	mu    sync.Mutex
	db    *gorm.DB
	state state
	path  string
	log   zerolog.Logger

	// Last best-effort migration outcome, nil when every record migrated.
	migrationIssues *MigrationPartialFailure
}

func New(opts Options) *Store {
	path := opts.Path
	if path == "" {
		path = DatabaseName
	}
	return &Store{path: path, log: opts.Logger}
}

var (
	sharedStore *Store
	sharedOnce  sync.Once
)

// Shared returns the process-wide store, constructing it on first call. Later
// calls ignore opts, mirroring the single connection every view reuses.
func Shared(opts Options) *Store {
	sharedOnce.Do(func() { sharedStore = New(opts) })
	return sharedStore
}

// Open establishes the connection at SchemaVersion, creating the database and
// its indexes on first use and migrating existing records when the file was
// written by an older release. Returns immediately when already open.
//
// A failure to reach the file at all wraps ErrStorageUnavailable and is fatal
// for the session.
func (s *Store) Open(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.openLocked(ctx)
}

func (s *Store) openLocked(ctx context.Context) error {
	if s.state == stateReady {
		return nil
	}
	s.state = stateOpening

	db, err := gorm.Open(sqlite.Open(s.path), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		s.state = stateClosed
		return fmt.Errorf("%w: opening %s: %v", ErrStorageUnavailable, s.path, err)
	}

	stored, err := readSchemaVersion(db.WithContext(ctx))
	if err != nil {
		s.state = stateClosed
		return fmt.Errorf("%w: reading schema version of %s: %v", ErrStorageUnavailable, s.path, err)
	}
	if stored > SchemaVersion {
		s.state = stateClosed
		return fmt.Errorf("%w: %s is at schema version %d, newer than supported %d",
			ErrStorageUnavailable, s.path, stored, SchemaVersion)
	}

	if stored < SchemaVersion {
		s.state = stateMigrating
		partial, err := migrate(db.WithContext(ctx), stored)
		if err != nil {
			s.state = stateClosed
			return fmt.Errorf("migrating %s from version %d: %w", s.path, stored, err)
		}
		if err := writeSchemaVersion(db.WithContext(ctx), SchemaVersion); err != nil {
			s.state = stateClosed
			return fmt.Errorf("recording schema version on %s: %w", s.path, err)
		}
		s.migrationIssues = partial
		if partial != nil {
			// Not fatal: affected records keep their old shape until a later
			// successful pass.
			s.log.Warn().Err(partial).Int("from", stored).Int("to", SchemaVersion).
				Msg("schema migration completed partially")
		} else {
			s.log.Info().Int("from", stored).Int("to", SchemaVersion).
				Msg("schema migration completed")
		}
	}

	s.db = db
	s.state = stateReady
	s.log.Info().Str("path", s.path).Int("schemaVersion", SchemaVersion).
		Msg("patient database ready")
	return nil
}

// DB returns the live handle, opening the store first when needed.
func (s *Store) DB(ctx context.Context) (*gorm.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.openLocked(ctx); err != nil {
		return nil, err
	}
	return s.db, nil
}

// MigrationIssues reports the per-record failures of the last migration pass,
// nil when the last open migrated cleanly or needed no migration.
func (s *Store) MigrationIssues() *MigrationPartialFailure {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.migrationIssues
}

// Close releases the underlying file. The running application never needs
// this (the store lives for the whole session); it exists for tests and for
// orderly process shutdown.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		s.state = stateClosed
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	s.db = nil
	s.state = stateClosed
	return sqlDB.Close()
}

func readSchemaVersion(db *gorm.DB) (int, error) {
	var v int
	if err := db.Raw("PRAGMA user_version").Scan(&v).Error; err != nil {
		return 0, err
	}
	return v, nil
}

func writeSchemaVersion(db *gorm.DB, v int) error {
	return db.Exec(fmt.Sprintf("PRAGMA user_version = %d", v)).Error
}
