package main

import (
	"os"
	"time"

	"aguanueva/internal/config"
	"aguanueva/internal/infra"
	"aguanueva/internal/model"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Seeds the reference catalogs (municipios and materias). Idempotent:
// re-running it updates nothing that already exists.
func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	if err := seedMunicipios(db); err != nil {
		log.Fatal().Err(err).Msg("failed to seed municipios")
	}
	if err := seedMaterias(db); err != nil {
		log.Fatal().Err(err).Msg("failed to seed materias")
	}

	log.Info().Msg("seed completed")
}

func seedMunicipios(db *gorm.DB) error {
	provincia := "Las Palmas"
	nombres := []string{
		"Puerto del Rosario",
		"La Oliva",
		"Antigua",
		"Betancuria",
		"Pájara",
		"Tuineje",
	}
	for _, nombre := range nombres {
		m := model.Municipio{Nombre: nombre, Provincia: &provincia}
		if err := db.Where(model.Municipio{Nombre: nombre}).FirstOrCreate(&m).Error; err != nil {
			return err
		}
	}
	log.Info().Int("count", len(nombres)).Msg("municipios seeded")
	return nil
}

func seedMaterias(db *gorm.DB) error {
	dec := func(s string) decimal.Decimal { return decimal.RequireFromString(s) }
	ptr := func(d decimal.Decimal) *decimal.Decimal { return &d }

	materias := []model.Materia{
		{Orden: 1, Tipo: "AGRICOLA", Descripcion: "Riego de cultivos al aire libre", Multiplicador: dec("1.00"), Minimo: ptr(dec("0.00")), Maximo: ptr(dec("500.00"))},
		{Orden: 2, Tipo: "AGRICOLA", Descripcion: "Riego de cultivos bajo invernadero", Multiplicador: dec("1.25"), Minimo: ptr(dec("0.00")), Maximo: ptr(dec("750.00"))},
		{Orden: 3, Tipo: "AGRICOLA", Descripcion: "Riego de frutales", Multiplicador: dec("1.10"), Minimo: ptr(dec("0.00")), Maximo: ptr(dec("600.00"))},
		{Orden: 1, Tipo: "GANADERA", Descripcion: "Abrevado de ganado caprino", Multiplicador: dec("0.90"), Minimo: ptr(dec("0.00")), Maximo: ptr(dec("400.00"))},
		{Orden: 2, Tipo: "GANADERA", Descripcion: "Abrevado de ganado bovino", Multiplicador: dec("1.00"), Minimo: ptr(dec("0.00")), Maximo: ptr(dec("450.00"))},
		{Orden: 3, Tipo: "GANADERA", Descripcion: "Limpieza de instalaciones ganaderas", Multiplicador: dec("0.75"), Maximo: ptr(dec("300.00"))},
	}
	for i := range materias {
		cond := model.Materia{Orden: materias[i].Orden, Tipo: materias[i].Tipo}
		if err := db.Where(cond).FirstOrCreate(&materias[i]).Error; err != nil {
			return err
		}
	}
	log.Info().Int("count", len(materias)).Msg("materias seeded")
	return nil
}
