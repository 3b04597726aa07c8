package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"plantapp/config"
	"plantapp/pkg/helpers"
)

// Seeds a demo user with two plants so the reminder pipeline has something to
// chew on locally.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "demo@plantapp.local"
	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var userID int64
	err = db.QueryRow(`
		INSERT INTO users (email, password_hash, name)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, email, hash, "Demo Gardener").Scan(&userID)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%d email=%s password=%s\n", userID, email, password)

	plants := []struct {
		permapeopleID int64
		name          string
		water         string
		light         string
	}{
		{142, "Monstera deliciosa", "Moist", "Partial sun"},
		{377, "Aloe vera", "Dry, Moist", "Full sun"},
	}

	for _, p := range plants {
		var plantID int64
		err = db.QueryRow(`
			INSERT INTO plants (permapeople_id, name, water_requirement, light_requirement)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (permapeople_id) DO UPDATE SET name = EXCLUDED.name
			RETURNING id
		`, p.permapeopleID, p.name, p.water, p.light).Scan(&plantID)
		if err != nil {
			log.Fatalf("failed to seed plant %s: %v", p.name, err)
		}

		if _, err := db.Exec(`
			INSERT INTO user_plants (user_id, plant_id)
			VALUES ($1, $2)
			ON CONFLICT (user_id, plant_id) DO NOTHING
		`, userID, plantID); err != nil {
			log.Fatalf("failed to seed relationship for %s: %v", p.name, err)
		}
		fmt.Printf("seeded plant: id=%d name=%s\n", plantID, p.name)
	}
}
