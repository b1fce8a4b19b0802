package db

import "gorm.io/gorm"

func EnsureSchema(d *gorm.DB, schema string) error {
	return d.Exec(`CREATE SCHEMA IF NOT EXISTS "` + schema + `"`).Error
}

// DropSchema destroys a schema and everything in it. Only reachable behind
// the explicit reset_on_start opt-in; never called by default.
func DropSchema(d *gorm.DB, schema string) error {
	return d.Exec(`DROP SCHEMA IF EXISTS "` + schema + `" CASCADE`).Error
}
