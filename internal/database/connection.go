package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// DB is the global database connection
var DB *sqlx.DB

// Connect establishes a connection to the database. The engine is selected
// by DB_TYPE ("sqlite" by default, "postgres" with DATABASE_URL set).
func Connect() error {
	dbType := os.Getenv("DB_TYPE")
	if dbType == "" {
		dbType = "sqlite"
	}

	var db *sqlx.DB
	var err error

	if dbType == "postgres" {
		dsn := os.Getenv("DATABASE_URL")
		if dsn == "" {
			return fmt.Errorf("DATABASE_URL environment variable is not set")
		}
		db, err = sqlx.Connect("postgres", dsn)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %v", err)
		}
	} else {
		dataDir := os.Getenv("DATA_DIR")
		if dataDir == "" {
			dataDir = "data"
		}
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return fmt.Errorf("failed to create data directory: %v", err)
		}

		dbPath := filepath.Join(dataDir, "lingocoach.db")
		db, err = sqlx.Connect("sqlite3", dbPath)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %v", err)
		}

		if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
			return fmt.Errorf("failed to enable foreign keys: %v", err)
		}

		// SQLite doesn't support multiple writers
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	DB = db

	return initializeSchema()
}

// Close closes the database connection
func Close() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}

// initializeSchema creates necessary tables if they don't exist
func initializeSchema() error {
	serial := "INTEGER PRIMARY KEY AUTOINCREMENT"
	if DB.DriverName() == "postgres" {
		serial = "SERIAL PRIMARY KEY"
	}

	statements := []string{
		fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS topics (
			id %s,
			name TEXT NOT NULL,
			language TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(name, language)
		)`, serial),
		fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS words (
			id %s,
			word TEXT NOT NULL,
			language TEXT NOT NULL DEFAULT '',
			translation TEXT NOT NULL DEFAULT '',
			context TEXT DEFAULT '',
			topic_id INTEGER NOT NULL,
			difficulty INTEGER DEFAULT 5,
			pronunciation TEXT DEFAULT '',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (topic_id) REFERENCES topics(id),
			UNIQUE(word, language, topic_id)
		)`, serial),
		fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS word_progress (
			id %s,
			word TEXT NOT NULL,
			language TEXT NOT NULL,
			total_attempts INTEGER DEFAULT 0,
			correct_attempts INTEGER DEFAULT 0,
			ease_factor REAL DEFAULT 2.5,
			interval INTEGER DEFAULT 0,
			last_review TIMESTAMP,
			next_review TIMESTAMP,
			mastery_level REAL DEFAULT 0,
			reinforce BOOLEAN DEFAULT FALSE,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(word, language)
		)`, serial),
		fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS practice_sessions (
			id %s,
			practice_id TEXT NOT NULL UNIQUE,
			timestamp TIMESTAMP NOT NULL,
			language TEXT NOT NULL DEFAULT '',
			source_article TEXT DEFAULT '',
			words_learned TEXT DEFAULT '[]',
			question_count INTEGER DEFAULT 0,
			correct_count INTEGER DEFAULT 0,
			accuracy REAL DEFAULT 0,
			difficulty INTEGER DEFAULT 5,
			time_spent INTEGER DEFAULT 0,
			abandoned BOOLEAN DEFAULT FALSE,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`, serial),
		fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS question_history (
			id %s,
			question_id TEXT NOT NULL UNIQUE,
			practice_id TEXT NOT NULL,
			timestamp TIMESTAMP NOT NULL,
			question_type TEXT NOT NULL,
			word TEXT NOT NULL DEFAULT '',
			question_content TEXT DEFAULT '',
			hint TEXT DEFAULT '',
			options TEXT DEFAULT '[]',
			correct_answer TEXT DEFAULT '',
			user_answer TEXT DEFAULT '',
			is_correct BOOLEAN DEFAULT FALSE,
			explanation TEXT DEFAULT '',
			difficulty INTEGER DEFAULT 5,
			language TEXT NOT NULL DEFAULT ''
		)`, serial),
		fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS user_profile (
			id %s,
			user_id TEXT NOT NULL,
			learning_languages TEXT DEFAULT '{}',
			current_language TEXT DEFAULT '',
			total_practice_count INTEGER DEFAULT 0,
			total_words_learned INTEGER DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			last_practice TIMESTAMP
		)`, serial),
	}

	for _, stmt := range statements {
		if _, err := DB.Exec(stmt); err != nil {
			return fmt.Errorf("failed to initialize schema: %v", err)
		}
	}

	return nil
}
