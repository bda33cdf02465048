package database

import (
	"gorm.io/gorm"
)

type Database struct {
	postStore PostStore
	gorm      *gorm.DB
}

// New initializes a Database backed by a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		postStore: NewPostRepo(db),
		gorm:      db,
	}
}

// NewInMemory initializes a Database that keeps posts in process memory.
// Nothing survives a restart.
func NewInMemory() Database {
	return Database{
		postStore: NewMemoryPostRepo(),
	}
}

func (d Database) PostStore() PostStore {
	return d.postStore
}

// Persistent reports whether the database is backed by durable storage.
func (d Database) Persistent() bool {
	return d.gorm != nil
}
