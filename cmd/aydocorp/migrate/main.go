package main

import (
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/DasBluEyedDevil/AltAydoSite-sub004/internal/app/config"
	"github.com/DasBluEyedDevil/AltAydoSite-sub004/internal/app/ds"
	"github.com/DasBluEyedDevil/AltAydoSite-sub004/internal/app/dsn"
)

func main() {
	_, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("error loading config: %v", err)
	}

	postgresString := dsn.FromEnv()
	db, err := gorm.Open(postgres.Open(postgresString), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("error connecting to database: %v", err)
	}

	err = db.AutoMigrate(&ds.ShipDocument{})
	if err != nil {
		logrus.Fatalf("error migrating ships: %v", err)
	}
	err = db.AutoMigrate(&ds.SyncMeta{})
	if err != nil {
		logrus.Fatalf("error migrating sync_meta: %v", err)
	}

	logrus.Info("Database migration completed")
}
