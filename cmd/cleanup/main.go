package main

import (
	"context"
	"log"
	"time"

	"github.com/BruksfildServices01/trainer-marketplace/internal/config"
	dbpkg "github.com/BruksfildServices01/trainer-marketplace/internal/db"
	infraRepo "github.com/BruksfildServices01/trainer-marketplace/internal/infra/repository"
	"github.com/BruksfildServices01/trainer-marketplace/internal/jobs"
)

// cleanup runs the expired password reset sweep once and exits.
func main() {
	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	n, err := jobs.NewResetSweeper(infraRepo.NewUserGormRepository(db)).Run(ctx)
	if err != nil {
		log.Fatalf("cleanup failed: %v", err)
	}
	log.Printf("cleanup done, removed %d expired reset tokens", n)
}
