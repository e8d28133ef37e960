// Loads the player directory from YAML files into the database. Run after a
// fresh deploy or a directory re-import, before association discovery.
package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"rally-backend/internal/config"
	"rally-backend/internal/database"
	"rally-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type LeagueData struct {
	LeagueID   string `yaml:"league_id"`
	LeagueName string `yaml:"league_name"`
	LeagueURL  string `yaml:"league_url,omitempty"`
}

type PlayerData struct {
	TenniscoresPlayerID string `yaml:"tenniscores_player_id"`
	LeagueID            string `yaml:"league_id"`
	Club                string `yaml:"club"`
	Series              string `yaml:"series"`
	FirstName           string `yaml:"first_name"`
	LastName            string `yaml:"last_name"`
	Email               string `yaml:"email,omitempty"`
	IsActive            *bool  `yaml:"is_active,omitempty"`
}

// File structures
type LeaguesFile struct {
	Leagues []LeagueData `yaml:"leagues"`
}

type PlayersFile struct {
	Players []PlayerData `yaml:"players"`
}

func main() {
	log.Println("Loading player directory from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Player directory loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent, // suppress SQL noise during bulk loading
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	leagues, err := loadLeagues(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load leagues: %w", err)
	}

	players, err := loadPlayers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load players: %w", err)
	}

	// Create leagues first, keyed by their external code
	leagueMap := make(map[string]*models.League)
	leaguesCreated := 0
	for _, leagueData := range leagues {
		league, created, err := createLeague(db, leagueData)
		if err != nil {
			return fmt.Errorf("failed to create league %s: %w", leagueData.LeagueID, err)
		}
		leagueMap[leagueData.LeagueID] = league
		if created {
			leaguesCreated++
		}
	}
	log.Printf("Leagues: %d created, %d total", leaguesCreated, len(leagues))

	// Clubs and series are created on demand from the player rows
	clubMap := make(map[string]*models.Club)
	seriesMap := make(map[string]*models.Series)
	playersCreated := 0
	for _, playerData := range players {
		created, err := createPlayer(db, playerData, leagueMap, clubMap, seriesMap)
		if err != nil {
			return fmt.Errorf("failed to create player %s: %w", playerData.TenniscoresPlayerID, err)
		}
		if created {
			playersCreated++
		}
	}
	log.Printf("Players: %d created, %d total", playersCreated, len(players))

	return nil
}

func loadLeagues(dataDir string) ([]LeagueData, error) {
	var allLeagues []LeagueData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "leagues") {
			var file LeaguesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allLeagues = append(allLeagues, file.Leagues...)
		}
		return nil
	})

	return allLeagues, err
}

func loadPlayers(dataDir string) ([]PlayerData, error) {
	var allPlayers []PlayerData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "players") {
			var file PlayersFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allPlayers = append(allPlayers, file.Players...)
		}
		return nil
	})

	return allPlayers, err
}

func createLeague(db *gorm.DB, leagueData LeagueData) (*models.League, bool, error) {
	var league models.League
	if err := db.Where("league_id = ?", leagueData.LeagueID).First(&league).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			league = models.League{
				LeagueID:   leagueData.LeagueID,
				LeagueName: leagueData.LeagueName,
				LeagueURL:  leagueData.LeagueURL,
			}

			if err := db.Create(&league).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create league: %w", err)
			}
			return &league, true, nil
		}
		return nil, false, fmt.Errorf("failed to query league: %w", err)
	}

	return &league, false, nil
}

func getOrCreateClub(db *gorm.DB, name string, clubMap map[string]*models.Club) (*models.Club, error) {
	if club, ok := clubMap[name]; ok {
		return club, nil
	}

	var club models.Club
	if err := db.Where("name = ?", name).First(&club).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			return nil, err
		}
		club = models.Club{Name: name}
		if err := db.Create(&club).Error; err != nil {
			return nil, err
		}
	}
	clubMap[name] = &club
	return &club, nil
}

func getOrCreateSeries(db *gorm.DB, name string, seriesMap map[string]*models.Series) (*models.Series, error) {
	if series, ok := seriesMap[name]; ok {
		return series, nil
	}

	var series models.Series
	if err := db.Where("name = ?", name).First(&series).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			return nil, err
		}
		series = models.Series{Name: name}
		if err := db.Create(&series).Error; err != nil {
			return nil, err
		}
	}
	seriesMap[name] = &series
	return &series, nil
}

func createPlayer(db *gorm.DB, playerData PlayerData, leagueMap map[string]*models.League, clubMap map[string]*models.Club, seriesMap map[string]*models.Series) (bool, error) {
	league := leagueMap[playerData.LeagueID]
	if league == nil {
		return false, fmt.Errorf("league %s not found for player %s", playerData.LeagueID, playerData.TenniscoresPlayerID)
	}

	var existing models.Player
	err := db.Where("tenniscores_player_id = ? AND league_id = ?", playerData.TenniscoresPlayerID, league.ID).First(&existing).Error
	if err == nil {
		return false, nil // already imported
	}
	if err != gorm.ErrRecordNotFound {
		return false, fmt.Errorf("failed to query player: %w", err)
	}

	club, err := getOrCreateClub(db, playerData.Club, clubMap)
	if err != nil {
		return false, fmt.Errorf("failed to resolve club %s: %w", playerData.Club, err)
	}
	series, err := getOrCreateSeries(db, playerData.Series, seriesMap)
	if err != nil {
		return false, fmt.Errorf("failed to resolve series %s: %w", playerData.Series, err)
	}

	isActive := true
	if playerData.IsActive != nil {
		isActive = *playerData.IsActive
	}

	player := models.Player{
		TenniscoresPlayerID: playerData.TenniscoresPlayerID,
		LeagueID:            league.ID,
		ClubID:              club.ID,
		SeriesID:            series.ID,
		FirstName:           playerData.FirstName,
		LastName:            playerData.LastName,
		Email:               playerData.Email,
		IsActive:            isActive,
	}
	if err := db.Create(&player).Error; err != nil {
		return false, fmt.Errorf("failed to create player: %w", err)
	}

	return true, nil
}
