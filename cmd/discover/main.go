// Command discover runs association discovery from the command line, for
// maintenance runs after a player directory import.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"rally-backend/internal/config"
	"rally-backend/internal/database"
	"rally-backend/internal/repository"
	"rally-backend/internal/service"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	var (
		userIDFlag = flag.String("user-id", "", "run discovery for a single user (UUID)")
		emailFlag  = flag.String("email", "", "email override for single-user runs")
		allFlag    = flag.Bool("all", false, "run discovery across users")
		limitFlag  = flag.Int("limit", 100, "maximum users to process with -all")
	)
	flag.Parse()

	if (*userIDFlag == "" && !*allFlag) || (*userIDFlag != "" && *allFlag) {
		fmt.Fprintln(os.Stderr, "exactly one of -user-id or -all is required")
		flag.Usage()
		os.Exit(2)
	}

	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}
	logrus.SetFormatter(&logrus.JSONFormatter{})

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	discoveryService := service.NewDiscoveryService(
		repository.NewUserRepository(db),
		repository.NewPlayerRepository(db),
		repository.NewAssociationRepository(db),
		repository.NewLeagueRepository(db),
	)
	discoveryService.SetMinConfidence(cfg.DiscoveryMinConfidence)

	if *allFlag {
		runBatch(discoveryService, *limitFlag)
		return
	}
	runSingle(discoveryService, *userIDFlag, *emailFlag)
}

func runSingle(svc *service.DiscoveryService, rawID, email string) {
	userID, err := uuid.Parse(rawID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid -user-id %q: %v\n", rawID, err)
		os.Exit(2)
	}

	result, err := svc.DiscoverMissingAssociations(userID, email)
	if err != nil {
		fmt.Fprintf(os.Stderr, "discovery failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("user %s: %s\n", userID, result.Summary)
	for _, assoc := range result.NewAssociations {
		fmt.Printf("  + %s  league=%s club=%s series=%s confidence=%d\n",
			assoc.TenniscoresPlayerID, assoc.League, assoc.Club, assoc.Series, assoc.Confidence)
	}
	for _, e := range result.Errors {
		fmt.Printf("  ! %s\n", e)
	}
}

func runBatch(svc *service.DiscoveryService, limit int) {
	batch, err := svc.DiscoverForAllUsers(limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "batch discovery failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("processed %d users (%d failed), created %d associations\n",
		batch.UsersProcessed, batch.UsersFailed, batch.AssociationsCreated)
	for _, e := range batch.Errors {
		fmt.Printf("  ! %s\n", e)
	}
}
