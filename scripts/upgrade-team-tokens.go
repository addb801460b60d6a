package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/deckbuilder-api/internal/repositories/library"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "report what would change without writing")
	flag.Parse()

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	defer func() {
		_ = client.Close()
	}()
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning saved libraries for v1 team tokens...")

	report, err := library.UpgradeLegacyTeams(ctx, client, *dryRun)
	if err != nil {
		log.Fatal("Upgrade stopped:", err)
	}

	fmt.Printf("\nLibraries scanned: %d\n", report.Owners)
	fmt.Printf("Team entries:      %d\n", report.Teams)
	fmt.Printf("Upgraded to v2:    %d\n", report.Upgraded)
	fmt.Printf("Unreadable tokens: %d\n", report.Failed)
	if *dryRun {
		fmt.Println("\nDry run: nothing was written. Run without --dry-run to apply.")
	}
}
