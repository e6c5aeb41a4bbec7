package infra

import (
	"fmt"

	"aguanueva/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and runs AutoMigrate
// over the six-table schema. TranslateError is enabled so unique and FK
// violations surface as gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated and
// can be mapped to the API error taxonomy instead of leaking SQLSTATE codes.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	return db, nil
}

// RunMigrations creates or updates all tables. Reference tables first: the
// composite FK from datos_expedientes requires the (expediente, hoja) unique
// index on expedientes to exist before the child table is created.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Municipio{},
		&model.Materia{},
		&model.DatosPersonales{},
		&model.Expediente{},
		&model.DatosExpediente{},
	)
}
