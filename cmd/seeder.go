package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		sqlDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		defer sqlDB.Close()

		db, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: sqlDB.DB}), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to init orm: %v", err)
		}

		if clearData {
			fmt.Println("Clearing existing data...")
			for _, table := range []string{"checkins", "project_assignments", "projects", "users", "teams"} {
				if err := db.Exec("DELETE FROM " + table).Error; err != nil {
					log.Fatalf("failed to clear %s: %v", table, err)
				}
			}
		}

		hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), cfg.Security.BCryptCost)

		teams := []struct {
			Name string
			Desc string
		}{
			{"Engineering", "Product engineering team"},
			{"Design", "Product design team"},
		}
		for _, t := range teams {
			var exists int
			if err := db.Raw("SELECT 1 FROM teams WHERE name = ?", t.Name).Row().Scan(&exists); err == nil {
				continue
			}
			if err := db.Exec("INSERT INTO teams (name, description, created_at, updated_at) VALUES (?, ?, now(), now())", t.Name, t.Desc).Error; err != nil {
				log.Fatalf("failed to insert team %s: %v", t.Name, err)
			}
			fmt.Println("Seeded team:", t.Name)
		}

		var engineeringID int64
		if err := db.Raw("SELECT id FROM teams WHERE name = ?", "Engineering").Row().Scan(&engineeringID); err != nil {
			log.Fatalf("failed to resolve Engineering team: %v", err)
		}

		users := []struct {
			Email     string
			FirstName string
			LastName  string
			Role      string
			TeamID    *int64
		}{
			{"admin@teampulse.local", "Ava", "Admin", "admin", nil},
			{"dewi@teampulse.local", "Dewi", "Lestari", "employee", &engineeringID},
			{"budi@teampulse.local", "Budi", "Santoso", "employee", &engineeringID},
		}
		for _, u := range users {
			var exists int
			if err := db.Raw("SELECT 1 FROM users WHERE email = ?", u.Email).Row().Scan(&exists); err == nil {
				fmt.Println("user already exists:", u.Email)
				continue
			}
			err := db.Exec(
				"INSERT INTO users (email, password_hash, first_name, last_name, role, is_active, team_id, created_at, updated_at) VALUES (?, ?, ?, ?, ?, true, ?, now(), now())",
				u.Email, string(hash), u.FirstName, u.LastName, u.Role, u.TeamID,
			).Error
			if err != nil {
				log.Fatalf("failed to insert user %s: %v", u.Email, err)
			}
			fmt.Println("Seeded user:", u.Email)
		}

		var projectID int64
		if err := db.Raw("SELECT id FROM projects WHERE title = ?", "Mobile App").Row().Scan(&projectID); err != nil {
			err := db.Exec(
				"INSERT INTO projects (title, description, status, priority, team_id, created_at, updated_at) VALUES (?, ?, 'active', 'high', ?, now(), now())",
				"Mobile App", "Customer-facing mobile application", engineeringID,
			).Error
			if err != nil {
				log.Fatalf("failed to insert project: %v", err)
			}
			if err := db.Raw("SELECT id FROM projects WHERE title = ?", "Mobile App").Row().Scan(&projectID); err != nil {
				log.Fatalf("failed to resolve project: %v", err)
			}
			fmt.Println("Seeded project: Mobile App")
		}

		for _, email := range []string{"dewi@teampulse.local", "budi@teampulse.local"} {
			var userID int64
			if err := db.Raw("SELECT id FROM users WHERE email = ?", email).Row().Scan(&userID); err != nil {
				continue
			}

			var exists int
			if err := db.Raw("SELECT 1 FROM project_assignments WHERE project_id = ? AND user_id = ?", projectID, userID).Row().Scan(&exists); err == nil {
				continue
			}
			err := db.Exec(
				"INSERT INTO project_assignments (project_id, user_id, assigned_at) VALUES (?, ?, now())",
				projectID, userID,
			).Error
			if err != nil {
				log.Fatalf("failed to assign %s: %v", email, err)
			}

			err = db.Exec(
				"INSERT INTO checkins (user_id, project_id, check_in_date, mood_rating, work_load_rating, stress_level, comment, created_at, updated_at) VALUES (?, ?, CURRENT_DATE, 4, 3, 2, 'Feeling good', now(), now()) ON CONFLICT (user_id, check_in_date) DO NOTHING",
				userID, projectID,
			).Error
			if err != nil {
				log.Fatalf("failed to seed check-in for %s: %v", email, err)
			}
			fmt.Println("Seeded assignment and check-in for:", email)
		}

		fmt.Println("Seeding complete")
	},
}
