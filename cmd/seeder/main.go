package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/mauv0809/scorebook/internal/database"
	"github.com/mauv0809/scorebook/internal/roster"
	"github.com/mauv0809/scorebook/internal/schedule"
	"github.com/mauv0809/scorebook/internal/stats"
)

type battingLine struct {
	player string
	game   string
	ab     int
	hits   int
	hr     int
	rbi    int
}

type pitchingLine struct {
	player  string
	game    string
	innings float64
	er      int
	so      int
	bb      int
}

func main() {
	log.Info("Starting database seeder...")

	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}
	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "scorebook.db"
	}

	db, teardown, err := database.InitDB(dbName, "", "", "./migrations")
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer teardown()

	players := roster.New(db)
	games := schedule.New(db)
	statsStore := stats.New(db)

	playerIDs := make(map[string]int64)
	seedPlayers := []roster.NewPlayer{
		{Name: "Kim Minsoo", Position: strPtr("SS")},
		{Name: "Lee Jiho", Position: strPtr("1B")},
		{Name: "Park Dohyun", Position: strPtr("P")},
		{Name: "Choi Hana", Position: strPtr("CF")},
	}
	for _, p := range seedPlayers {
		created, err := players.AddPlayer(p)
		if err != nil {
			log.Fatalf("Failed to insert player %s: %s", p.Name, err)
		}
		playerIDs[p.Name] = created.ID
	}
	log.Info("Seeded players", "count", len(seedPlayers))

	gameIDs := make(map[string]int64)
	seedGames := []schedule.NewGame{
		{Name: "Season opener", Date: strPtr("2024-04-06"), Location: strPtr("Riverside field")},
		{Name: "Week two", Date: strPtr("2024-04-13"), Location: strPtr("Riverside field")},
		{Name: "Week three", Date: strPtr("2024-04-20")},
	}
	for _, g := range seedGames {
		created, err := games.AddGame(g)
		if err != nil {
			log.Fatalf("Failed to insert game %s: %s", g.Name, err)
		}
		gameIDs[g.Name] = created.ID
	}
	log.Info("Seeded games", "count", len(seedGames))

	// Insert out of chronological order on purpose so the seeded data
	// exercises the snapshot recompute.
	battingLines := []battingLine{
		{"Kim Minsoo", "Week two", 4, 2, 1, 3},
		{"Kim Minsoo", "Season opener", 5, 1, 0, 0},
		{"Kim Minsoo", "Week three", 3, 2, 0, 1},
		{"Lee Jiho", "Season opener", 4, 3, 1, 2},
		{"Lee Jiho", "Week two", 4, 0, 0, 0},
		{"Choi Hana", "Week three", 4, 2, 0, 1},
	}
	for _, line := range battingLines {
		gid := gameIDs[line.game]
		_, err := statsStore.AddBattingRecord(stats.NewBattingRecord{
			PlayerID:     playerIDs[line.player],
			GameID:       &gid,
			AtBats:       line.ab,
			Hits:         line.hits,
			HomeRuns:     line.hr,
			RunsBattedIn: line.rbi,
		})
		if err != nil {
			log.Fatalf("Failed to insert batting line for %s: %s", line.player, err)
		}
	}
	log.Info("Seeded batting records", "count", len(battingLines))

	pitchingLines := []pitchingLine{
		{"Park Dohyun", "Week two", 5.0, 3, 4, 2},
		{"Park Dohyun", "Season opener", 6.0, 2, 7, 1},
		{"Choi Hana", "Week three", 2.0, 0, 3, 0},
	}
	for _, line := range pitchingLines {
		gid := gameIDs[line.game]
		_, err := statsStore.AddPitchingRecord(stats.NewPitchingRecord{
			PlayerID:   playerIDs[line.player],
			GameID:     &gid,
			Innings:    line.innings,
			EarnedRuns: line.er,
			Strikeouts: line.so,
			Walks:      line.bb,
		})
		if err != nil {
			log.Fatalf("Failed to insert pitching line for %s: %s", line.player, err)
		}
	}
	log.Info("Seeded pitching records", "count", len(pitchingLines))

	log.Info("Seeding complete", "db", dbName)
}

func strPtr(s string) *string { return &s }
