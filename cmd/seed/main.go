package main

import (
	"fmt"
	"log"
	"time"

	"cinegold/internal/movies"
	"cinegold/internal/shared/config"
	"cinegold/internal/shared/database"
	"cinegold/internal/showtimes"
	"cinegold/internal/theaters"
	"cinegold/internal/users"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

type Seeder struct {
	db      *database.DB
	catalog movies.Catalog
}

func main() {
	fmt.Println("Starting CineGold database seeder...")

	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db, catalog: movies.NewCatalog()}

	fmt.Println("Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}

	fmt.Println("Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	fmt.Println("Done.")
}

func (s *Seeder) CleanDatabase() error {
	pg := s.db.GetPostgreSQL()
	for _, table := range []string{"payments", "booking_seats", "bookings", "showtimes", "theaters", "users"} {
		if err := pg.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clean %s: %w", table, err)
		}
	}
	return nil
}

func (s *Seeder) SeedAll() error {
	if err := s.seedUsers(); err != nil {
		return err
	}

	seeded, err := s.seedTheaters()
	if err != nil {
		return err
	}

	return s.seedShowtimes(seeded)
}

func (s *Seeder) seedUsers() error {
	pg := s.db.GetPostgreSQL()

	adminHash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	userHash, err := bcrypt.GenerateFromPassword([]byte("user123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	seedUsers := []users.User{
		{
			ID:       uuid.New(),
			Name:     "Admin",
			Email:    "admin@cinegold.local",
			Password: string(adminHash),
			Role:     users.RoleAdmin,
		},
		{
			ID:       uuid.New(),
			Name:     "Demo User",
			Email:    "demo@cinegold.local",
			Password: string(userHash),
			Role:     users.RoleUser,
		},
	}

	for i := range seedUsers {
		if err := pg.Create(&seedUsers[i]).Error; err != nil {
			return fmt.Errorf("failed to seed user %s: %w", seedUsers[i].Email, err)
		}
	}
	fmt.Printf("  seeded %d users\n", len(seedUsers))
	return nil
}

func (s *Seeder) seedTheaters() ([]theaters.Theater, error) {
	pg := s.db.GetPostgreSQL()

	seedTheaters := []theaters.Theater{
		{ID: uuid.New(), Name: "Galaxy Cinemas", Location: "Downtown", Address: "12 Main Street, Downtown", ScreenCount: 5},
		{ID: uuid.New(), Name: "Starlight Multiplex", Location: "Westside Mall", Address: "88 Mall Avenue, Westside", ScreenCount: 8},
		{ID: uuid.New(), Name: "Regal Picture House", Location: "Old Town", Address: "3 Heritage Lane, Old Town", ScreenCount: 3},
	}

	for i := range seedTheaters {
		if err := pg.Create(&seedTheaters[i]).Error; err != nil {
			return nil, fmt.Errorf("failed to seed theater %s: %w", seedTheaters[i].Name, err)
		}
	}
	fmt.Printf("  seeded %d theaters\n", len(seedTheaters))
	return seedTheaters, nil
}

func (s *Seeder) seedShowtimes(seedTheaters []theaters.Theater) error {
	pg := s.db.GetPostgreSQL()

	slots := []string{"10:00", "13:30", "17:00", "20:30"}
	prices := []float64{180, 220, 250, 300}
	dates := upcomingDates(3)

	count := 0
	for _, movie := range s.catalog.ListAll() {
		for ti, theater := range seedTheaters {
			// Spread movies across theaters instead of duplicating everything
			// everywhere.
			if (movie.ID+ti)%2 != 0 {
				continue
			}
			for _, date := range dates {
				slot := slots[(movie.ID+ti)%len(slots)]
				st := showtimes.Showtime{
					ID:             uuid.New(),
					MovieID:        movie.ID,
					MovieTitle:     movie.Title,
					TheaterID:      theater.ID,
					ScreenName:     fmt.Sprintf("Screen %d", (movie.ID%theater.ScreenCount)+1),
					ShowDate:       date,
					ShowTime:       slot,
					Price:          prices[(movie.ID+ti)%len(prices)],
					AvailableSeats: showtimes.TotalSeats,
				}
				if err := pg.Create(&st).Error; err != nil {
					return fmt.Errorf("failed to seed showtime for %s: %w", movie.Title, err)
				}
				count++
			}
		}
	}
	fmt.Printf("  seeded %d showtimes\n", count)
	return nil
}

func upcomingDates(days int) []string {
	dates := make([]string, 0, days)
	now := time.Now()
	for i := 0; i < days; i++ {
		dates = append(dates, now.AddDate(0, 0, i).Format("2006-01-02"))
	}
	return dates
}
