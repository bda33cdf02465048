package database

import (
	"sync"

	"github.com/bikeoff/blog-backend/errs"
	"github.com/bikeoff/blog-backend/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// postsMigrator is the slice of gorm's Migrator that reconciliation needs.
type postsMigrator interface {
	HasTable(dst interface{}) bool
	CreateTable(dst ...interface{}) error
	DropTable(dst ...interface{}) error
	ColumnTypes(dst interface{}) ([]gorm.ColumnType, error)
	AddColumn(dst interface{}, field string) error
}

// ReconcileSchema brings the posts table in line with the Post model. It
// runs once at startup, before the server accepts traffic.
//
// Three outcomes:
//   - table absent: create it with the full current field set
//   - table present: add any model column the table is missing, keeping rows
//   - column inspection fails: the table is incompatible with the model.
//     Rebuilding drops every row, so it only happens when allowDestructive
//     is set; otherwise reconciliation fails and startup stops.
func (d Database) ReconcileSchema(allowDestructive bool) error {
	if d.gorm == nil {
		return nil
	}
	return reconcilePostsTable(d.gorm.Migrator(), d.gorm.NamingStrategy, allowDestructive)
}

func reconcilePostsTable(migrator postsMigrator, namer schema.Namer, allowDestructive bool) error {
	if !migrator.HasTable(&models.Post{}) {
		log.Info().Msg("posts table missing, creating it")
		if err := migrator.CreateTable(&models.Post{}); err != nil {
			return errs.NewDatabaseError("create table for", "posts", err)
		}
		return nil
	}

	columns, err := migrator.ColumnTypes(&models.Post{})
	if err != nil {
		if !allowDestructive {
			log.Error().Err(err).
				Str("table", "posts").
				Msg("column inspection failed and destructive rebuild is not allowed")
			return errs.NewSchemaDriftError("posts", err)
		}

		log.Error().Err(err).
			Str("table", "posts").
			Bool("data_loss", true).
			Msg("DESTRUCTIVE schema rebuild: dropping and recreating posts table, all rows will be lost")

		if err := migrator.DropTable(&models.Post{}); err != nil {
			return errs.NewDatabaseError("drop table for", "posts", err)
		}
		if err := migrator.CreateTable(&models.Post{}); err != nil {
			return errs.NewDatabaseError("recreate table for", "posts", err)
		}
		return nil
	}

	existing := make(map[string]bool, len(columns))
	for _, column := range columns {
		existing[column.Name()] = true
	}

	parsed, err := schema.Parse(&models.Post{}, &sync.Map{}, namer)
	if err != nil {
		return errs.NewDatabaseError("parse model for", "posts", err)
	}

	for _, field := range parsed.Fields {
		if field.DBName == "" || existing[field.DBName] {
			continue
		}
		log.Info().
			Str("table", "posts").
			Str("column", field.DBName).
			Msg("adding missing column")
		if err := migrator.AddColumn(&models.Post{}, field.Name); err != nil {
			return errs.NewDatabaseError("add column to", "posts", err)
		}
	}

	return nil
}
