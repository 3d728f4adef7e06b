/* main.go
 * The "main" method for running the pool bot. For details see `readme.md`
 * Usage: go run main.go -season=2025 -pool="office-pool" [options]
 */

package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	api "survivor-pool/api/api"
	"survivor-pool/api/feed"
	"survivor-pool/api/shared"
	bot "survivor-pool/bot"
)

func main() {
	err := godotenv.Load()

	// Flags
	poolPtr := flag.String("pool", "survivor-pool", "Pool (database) name")
	seasonPtr := flag.Int("season", 2025, "Season year")
	feedURLPtr := flag.String("feedUrl", "https://site.api.espn.com/apis/site/v2/sports/football/nfl", "Score feed base URL")
	fallbackWeekPtr := flag.Int("fallbackWeek", 1, "Week to assume when the score feed is unreachable")
	tiebreakerPtr := flag.String("tiebreaker", "true", "Resolve weekly ties by combined-score guess: true or false")
	bonusPtr := flag.String("bonus", "false", "Allow per-game bonus weights: true or false")
	mnfDoublePtr := flag.String("mnfDouble", "false", "Double Monday night games by default: true or false")
	tnfPtr := flag.String("tnfCounts", "true", "Count Thursday games for latecomers: true or false")
	survivorStartPtr := flag.Int("survivorStart", 1, "First week evaluated for survivor elimination")
	testPtr := flag.String("test", "false", "Use main or test bot: takes true or false as argument")

	flag.Parse()

	if err != nil {
		log.Fatal("Error loading .env file")
	}

	cfg := shared.PoolConfig{SurvivorStart: *survivorStartPtr}
	if cfg.TiebreakerEnabled, err = convertStrToBool(*tiebreakerPtr); err != nil {
		log.Fatalf("invalid \"tiebreaker\" flag: %v", err)
	}
	if cfg.BonusEnabled, err = convertStrToBool(*bonusPtr); err != nil {
		log.Fatalf("invalid \"bonus\" flag: %v", err)
	}
	if cfg.MNFDouble, err = convertStrToBool(*mnfDoublePtr); err != nil {
		log.Fatalf("invalid \"mnfDouble\" flag: %v", err)
	}
	if cfg.TNFCountsForLatecomers, err = convertStrToBool(*tnfPtr); err != nil {
		log.Fatalf("invalid \"tnfCounts\" flag: %v", err)
	}

	useTestBot, err := convertStrToBool(*testPtr)
	if err != nil {
		log.Fatalf("invalid \"test\" flag: %v", err)
	}
	discordToken := os.Getenv("DISCORD_PROD_TOKEN")
	if useTestBot {
		discordToken = os.Getenv("DISCORD_BETA_TOKEN")
	}

	feedClient := feed.NewClient(*feedURLPtr, *seasonPtr, *fallbackWeekPtr)
	poolAPI, err := api.NewAPI(*poolPtr, os.Getenv("MONGO_URI"), *seasonPtr, feedClient, cfg)
	if err != nil {
		log.Fatalf("failed to initialize API: %v", err)
	}
	defer func() {
		if err = poolAPI.Store.GetClient().Disconnect(context.TODO()); err != nil {
			panic(err)
		}
	}()

	poolBot, err := bot.NewBot(discordToken, poolAPI)
	if err != nil {
		log.Fatalf("failed to initialize bot: %v", err)
	}
	if err := poolBot.Run(); err != nil {
		log.Fatalf("bot exited: %v", err)
	}
}
