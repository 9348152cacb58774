// Package store implements the durable document store that every feature
// module uses as the system of record: named collections of JSON documents
// addressed by collection name and primary key.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	// Register pgx as a database/sql driver
	_ "github.com/jackc/pgx/v5/stdlib"
	// Load .env file to environments
	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Document is the physical row backing one stored document. The
// (collection, key) pair carries the uniqueness index that makes each
// collection's key field unique. Data holds the document verbatim.
type Document struct {
	ID         uint            `gorm:"primaryKey;autoIncrement"`
	Collection string          `gorm:"type:text;not null;uniqueIndex:idx_documents_collection_key,priority:1"`
	Key        string          `gorm:"type:text;not null;uniqueIndex:idx_documents_collection_key,priority:2"`
	Data       json.RawMessage `gorm:"type:jsonb;not null"`
	UpdatedAt  time.Time
}

// Store is a handle over the opened document database.
type Store struct {
	*gorm.DB
	// Config
	Config *Config
	// cached raw DB and mutex for lazy-init
	sqlDB *sql.DB
	mu    sync.RWMutex
}

// Config holds the configuration parameters for connecting to the storage
// backend.
type Config struct {
	Host      string
	Port      string
	User      string
	Password  string
	DBName    string
	Constr    string
	useConstr bool
}

func (c *Config) getDsn() string {
	if c.useConstr {
		if c.Constr == "" {
			logrus.Fatal("DB_CONNECTION_STR is empty")
		}
		return c.Constr
	}
	if c.Host == "" || c.Port == "" || c.User == "" || c.Password == "" || c.DBName == "" {
		logrus.Fatal("Storage configuration is incomplete")
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", c.User, c.Password, c.Host, c.Port, c.DBName)
}

var (
	database      = os.Getenv("DB_DATABASE")
	password      = os.Getenv("DB_PASSWORD")
	username      = os.Getenv("DB_USERNAME")
	port          = os.Getenv("DB_PORT")
	host          = os.Getenv("DB_HOST")
	useEnvConnStr = os.Getenv("USE_CONNECTION_STR")
	envConStr     = os.Getenv("DB_CONNECTION_STR")
	// storeInstance is the shared handle returned by GetMainStore
	storeInstance *Store
)

// Open connects to the storage backend and idempotently declares every known
// collection. Opening an already-initialized database is a no-op beyond the
// connection itself: existing collections and their data are left untouched.
func Open(config *Config) (*Store, error) {
	gdb, err := gorm.Open(postgres.Open(config.getDsn()), &gorm.Config{})
	if err != nil {
		return nil, &ConnectionError{Op: "open", Err: err}
	}

	s := &Store{
		DB:     gdb,
		Config: config,
	}

	if err := s.Migrate(); err != nil {
		return nil, err
	}
	if err := s.declareIndexes(); err != nil {
		return nil, err
	}

	return s, nil
}

// GetMainStore returns the main store handle, opening it if necessary. It
// reads configuration from environment variables and ensures a single handle
// is reused across the process lifetime.
func GetMainStore() (*Store, error) {
	// Reuse connection
	if storeInstance != nil {
		return storeInstance, nil
	}

	useConstr := false
	if useEnvConnStr != "" {
		parsed, err := strconv.ParseBool(useEnvConnStr)
		if err != nil {
			logrus.Fatalf("USE_CONNECTION_STR environment variable is invalid %v", err)
		}
		useConstr = parsed
	}

	config := &Config{
		Host:      host,
		Port:      port,
		User:      username,
		Password:  password,
		DBName:    database,
		useConstr: useConstr,
		Constr:    envConStr,
	}

	s, err := Open(config)
	if err != nil {
		return nil, err
	}
	storeInstance = s
	return s, nil
}

// Migrate idempotently declares the documents table and its uniqueness index.
func (s *Store) Migrate() error {
	if err := s.AutoMigrate(&Document{}); err != nil {
		return &ConnectionError{Op: "migrate", Err: err}
	}
	return nil
}

// declareIndexes creates the secondary expression indexes declared by the
// collection registry. Re-declaring an existing index is a no-op.
func (s *Store) declareIndexes() error {
	for _, c := range Collections {
		for _, field := range c.Secondary {
			stmt := fmt.Sprintf(
				`CREATE INDEX IF NOT EXISTS idx_documents_%s_%s ON documents ((data->>'%s')) WHERE collection = '%s'`,
				c.Name, field, field, c.Name,
			)
			if err := s.WithContext(context.Background()).Exec(stmt).Error; err != nil {
				return &ConnectionError{Op: "declare index " + c.Name + "." + field, Err: err}
			}
		}
	}
	return nil
}

// GetOne does a point lookup by primary key. An absent key yields (nil, nil),
// never an error.
func (s *Store) GetOne(collection, key string) (json.RawMessage, error) {
	if _, ok := specFor(collection); !ok {
		return nil, &SchemaError{Collection: collection, Detail: "unknown collection"}
	}

	var doc Document
	err := s.Where("collection = ? AND key = ?", collection, key).First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, &ConnectionError{Op: "getOne " + collection, Err: err}
	}
	return doc.Data, nil
}

// GetAll returns every document of a collection. The order is unspecified and
// must not be relied upon. An empty or never-written collection yields an
// empty slice.
func (s *Store) GetAll(collection string) ([]json.RawMessage, error) {
	if _, ok := specFor(collection); !ok {
		return nil, &SchemaError{Collection: collection, Detail: "unknown collection"}
	}

	var docs []Document
	if err := s.Where("collection = ?", collection).Order("id ASC").Find(&docs).Error; err != nil {
		return nil, &ConnectionError{Op: "getAll " + collection, Err: err}
	}

	out := make([]json.RawMessage, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.Data)
	}
	return out, nil
}

// FindByField returns every document of a collection whose top-level field
// equals value. For fields declared as secondary indexes the lookup is
// index-backed; for anything else it degrades to a scan.
func (s *Store) FindByField(collection, field, value string) ([]json.RawMessage, error) {
	if _, ok := specFor(collection); !ok {
		return nil, &SchemaError{Collection: collection, Detail: "unknown collection"}
	}

	var docs []Document
	err := s.Where("collection = ? AND data->>? = ?", collection, field, value).
		Order("id ASC").Find(&docs).Error
	if err != nil {
		return nil, &ConnectionError{Op: "findByField " + collection + "." + field, Err: err}
	}

	out := make([]json.RawMessage, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.Data)
	}
	return out, nil
}

// Upsert writes document keyed by its collection's declared key field,
// replacing any existing document with the same key in full. The write of a
// single document is atomic. Numeric key values are normalized to their
// string form, so id 7 and id "7" address the same document.
func (s *Store) Upsert(collection string, document any) error {
	spec, ok := specFor(collection)
	if !ok {
		return &SchemaError{Collection: collection, Detail: "unknown collection"}
	}

	data, err := toJSON(document)
	if err != nil {
		return &SchemaError{Collection: collection, Detail: fmt.Sprintf("document not encodable: %v", err)}
	}

	key := gjson.GetBytes(data, spec.KeyField)
	if !key.Exists() || key.String() == "" {
		return &SchemaError{Collection: collection, Detail: fmt.Sprintf("document missing key field %q", spec.KeyField)}
	}

	row := Document{
		Collection: collection,
		Key:        key.String(),
		Data:       data,
		UpdatedAt:  time.Now(),
	}
	err = s.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "collection"}, {Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return &ConnectionError{Op: "upsert " + collection, Err: err}
	}
	return nil
}

// DeleteOne removes the document with that key if present. Deleting an absent
// key is a no-op, not an error.
func (s *Store) DeleteOne(collection, key string) error {
	if _, ok := specFor(collection); !ok {
		return &SchemaError{Collection: collection, Detail: "unknown collection"}
	}

	err := s.Where("collection = ? AND key = ?", collection, key).Delete(&Document{}).Error
	if err != nil {
		return &ConnectionError{Op: "deleteOne " + collection, Err: err}
	}
	return nil
}

func toJSON(document any) (json.RawMessage, error) {
	switch d := document.(type) {
	case json.RawMessage:
		return d, nil
	case []byte:
		return json.RawMessage(d), nil
	case string:
		return json.RawMessage(d), nil
	default:
		return json.Marshal(document)
	}
}

// Raw returns the underlying *sql.DB, caching it after the first successful
// retrieval. It is safe for concurrent use.
func (s *Store) Raw() (*sql.DB, error) {
	if s == nil {
		return nil, fmt.Errorf("store is nil")
	}

	// fast path: cached value
	s.mu.RLock()
	if s.sqlDB != nil {
		raw := s.sqlDB
		s.mu.RUnlock()
		return raw, nil
	}
	s.mu.RUnlock()

	// slow path: initialize
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sqlDB != nil {
		return s.sqlDB, nil
	}
	if s.DB == nil {
		return nil, fmt.Errorf("gorm DB is nil")
	}
	raw, err := s.DB.DB()
	if err != nil {
		return nil, err
	}
	s.sqlDB = raw
	return raw, nil
}

// Health checks the health of the storage connection by pinging the backend.
// It returns a map with keys indicating various health statistics.
func (s *Store) Health() map[string]string {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	stats := make(map[string]string)

	oriDB, err := s.Raw()
	if err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("storage down: %v", err)
		logrus.Errorf("storage down: %v", err)
		return stats
	}

	if err := oriDB.PingContext(ctx); err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("storage down: %v", err)
		logrus.Errorf("storage down: %v", err)
		return stats
	}

	stats["status"] = "up"
	stats["message"] = "It's healthy"

	dbStats := oriDB.Stats()
	stats["open_connections"] = strconv.Itoa(dbStats.OpenConnections)
	stats["in_use"] = strconv.Itoa(dbStats.InUse)
	stats["idle"] = strconv.Itoa(dbStats.Idle)
	stats["wait_count"] = strconv.FormatInt(dbStats.WaitCount, 10)
	stats["wait_duration"] = dbStats.WaitDuration.String()

	if dbStats.OpenConnections > 40 {
		stats["message"] = "The storage backend is experiencing heavy load."
	}
	if dbStats.WaitCount > 1000 {
		stats["message"] = "The storage backend has a high number of wait events, indicating potential bottlenecks."
	}

	return stats
}

// Close closes the storage connection.
func (s *Store) Close() error {
	logrus.Infof("Disconnected from storage: %s", s.Config.DBName)
	oriDB, err := s.Raw()
	if err != nil {
		return err
	}
	return oriDB.Close()
}
