package main

import (
	"log"

	"imobiliaria-crm-be/internal/bootstrap"
	"imobiliaria-crm-be/internal/config"
	"imobiliaria-crm-be/internal/server"
	"imobiliaria-crm-be/pkg/database"
)

func main() {
	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)

	srv := server.New(cfg, container)

	log.Fatal(srv.Run())
}
