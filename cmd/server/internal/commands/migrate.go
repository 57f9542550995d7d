package commands

import (
	"github.com/yukikurage/erp-api/internal/database"
)

type MigrateCmd struct{}

func (m *MigrateCmd) Run(globals *Globals) error {
	cfg, log, err := bootstrap(globals)
	if err != nil {
		return err
	}

	db, err := database.Connect(cfg, log)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	return database.Migrate(db, log)
}
