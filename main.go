package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"tridraw/config"
	"tridraw/controllers/play"
	"tridraw/database"
	"tridraw/game"
	"tridraw/jobs"
	"tridraw/ledger"
	"tridraw/payout"
	"tridraw/routes"
	"tridraw/services"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, using process environment")
	}

	cfg := config.Load()
	database.Connect()

	audit := &services.GormAuditStore{DB: database.DB}
	recorder := services.NewRecorder(audit)

	gateway := payout.NewWalletClient(cfg.WalletURL, cfg.WalletAPIKey)
	led := ledger.New(ledger.Config{
		Gateway: gateway,
		Sink:    &services.LedgerSink{Store: audit},
	})

	dispatcher := &services.Dispatcher{Ledger: led, Recorder: recorder}
	core := game.NewManager(game.Config{
		MaxRounds:         cfg.MaxRounds,
		SessionTimeout:    cfg.SessionTimeout,
		EndedGraceWindow:  cfg.EndedGraceWindow,
		InactivityCeiling: cfg.InactivityCeiling,
		Rewards:           cfg.Rewards,
	}, game.SystemClock(), dispatcher, recorder)
	dispatcher.MarkPaid = core.MarkRewardPaid

	app := fiber.New()
	routes.Setup(app, &play.Handler{Core: core})
	jobs.StartSweepScheduler(game.NewSupervisor(core), led, recorder, cfg)

	addr := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)
	log.Println("Server running at", addr)

	go func() {
		if err := app.Listen(addr); err != nil {
			log.Panicf("Failed to start server: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	log.Println("Gracefully shutting down...")
	if err := app.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited cleanly")
}
