// seed inserts the default operator account and the service-area /
// delivery-platform catalog into an empty database. Safe to run twice:
// everything is inserted with ON CONFLICT DO NOTHING.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/Dastan7k/gig-track-system/config"
	"github.com/Dastan7k/gig-track-system/pkg/passhash"
	"github.com/Dastan7k/gig-track-system/pkg/postgres"
	"github.com/Dastan7k/gig-track-system/pkg/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	configPath = flag.String("config-path", "config.yaml", "Path to the config yaml file")
)

func main() {
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.NewConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	client, err := postgres.New(ctx, cfg.Database)
	if err != nil {
		log.Fatal(err)
	}

	seedDefaultUsers(client.Pool)
	seedCatalog(client.Pool)
}

func seedDefaultUsers(db *pgxpool.Pool) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	type defaultUser struct {
		Name      string
		Email     string
		Role      string
		PlainPass string
	}

	users := []defaultUser{
		{
			Name:      "Dastan",
			Email:     "dastan@gigtrack.kz",
			Role:      "admin",
			PlainPass: "password",
		},
		{
			Name:      "Aizhan",
			Email:     "aizhan@gigtrack.kz",
			Role:      "operator",
			PlainPass: "password",
		},
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		log.Fatalf("seedDefaultUsers: begin tx: %v", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	const q = `
INSERT INTO users (id, name, email, role, password_hash)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (email) DO NOTHING;
`

	for _, u := range users {
		hashed, err := passhash.HashPassword(u.PlainPass)
		if err != nil {
			log.Fatalf("seedDefaultUsers: hash password: %v", err)
		}

		if _, err := tx.Exec(ctx, q, uuid.New(), u.Name, u.Email, u.Role, hashed); err != nil {
			log.Fatalf("seedDefaultUsers: insert user %s: %v", u.Email, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		log.Fatalf("seedDefaultUsers: commit: %v", err)
	}

	log.Printf("seedDefaultUsers: inserted/ensured %d default users", len(users))
}

func seedCatalog(db *pgxpool.Pool) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	areas := []string{"Koramangala", "Indiranagar", "HSR Layout", "Whitefield", "Jayanagar"}
	platforms := map[string]string{
		"Swiggy":  "food",
		"Zomato":  "food",
		"Blinkit": "grocery",
		"Zepto":   "grocery",
		"Dunzo":   "parcel",
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		log.Fatalf("seedCatalog: begin tx: %v", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	const areaQ = `
INSERT INTO service_areas (id, name)
VALUES ($1, $2)
ON CONFLICT (name) DO NOTHING;
`
	for _, name := range areas {
		if _, err := tx.Exec(ctx, areaQ, uuid.New(), name); err != nil {
			log.Fatalf("seedCatalog: insert area %s: %v", name, err)
		}
	}

	const platformQ = `
INSERT INTO delivery_platforms (id, name, category)
VALUES ($1, $2, $3)
ON CONFLICT (name) DO NOTHING;
`
	for name, category := range platforms {
		if _, err := tx.Exec(ctx, platformQ, uuid.New(), name, category); err != nil {
			log.Fatalf("seedCatalog: insert platform %s: %v", name, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		log.Fatalf("seedCatalog: commit: %v", err)
	}

	log.Printf("seedCatalog: inserted/ensured %d areas, %d platforms", len(areas), len(platforms))
}
