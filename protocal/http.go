package protocal

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"whatsapp-feedback-bot/configs"
	httpAdapter "whatsapp-feedback-bot/internal/adapters/input/http"
	"whatsapp-feedback-bot/internal/adapters/output/gmaps"
	"whatsapp-feedback-bot/internal/adapters/output/memory"
	"whatsapp-feedback-bot/internal/adapters/output/postgres"
	twilioAdapter "whatsapp-feedback-bot/internal/adapters/output/twilio"
	"whatsapp-feedback-bot/internal/application"
	"whatsapp-feedback-bot/internal/domain"
	"whatsapp-feedback-bot/internal/ports/output"
	gormDriver "whatsapp-feedback-bot/pkg/database_driver/gorm"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"
)

type config struct {
	ENV string `mapstructure:"env"`
}

// ServeHTTP func
func ServeHTTP() error {
	app := fiber.New()
	var cfg config
	flag.StringVar(&cfg.ENV, "env", "", "the environment to use")
	flag.Parse()
	configs.InitViper("./configs", cfg.ENV)
	logrus.Info(configs.GetViper().Env)
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept,Authorization",
	}))

	// Review history is optional: without postgres the bot still works,
	// submission attempts just are not persisted.
	var history output.ReviewHistoryRepository
	var dbCon *gormDriver.DB
	if configs.GetViper().Postgres.Enabled {
		var err error
		dbCon, err = gormDriver.ConnectToPostgreSQL(
			configs.GetViper().Postgres.Host,
			configs.GetViper().Postgres.Port,
			configs.GetViper().Postgres.Username,
			configs.GetViper().Postgres.Password,
			configs.GetViper().Postgres.DbName,
			configs.GetViper().Postgres.SSLMode,
		)
		if err != nil {
			return err
		}
		domain.MigrateDatabase(dbCon.Postgres)
		history = postgres.NewReviewHistoryRepository(dbCon.Postgres)
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go func() {
		for range c {
			log.Println("Gracefull shut down ...")
			if dbCon != nil {
				gormDriver.DisconnectPostgres(dbCon.Postgres)
			}
			err := app.Shutdown()
			if err != nil {
				log.Println("Error when shutdown server: ", err)
			}
		}
	}()

	// Wire up the hexagonal architecture layers
	// Output adapter (WhatsApp client)
	whatsappClient, err := twilioAdapter.NewClientAdapter(
		configs.GetViper().Twilio.AccountSID,
		configs.GetViper().Twilio.AuthToken,
		configs.GetViper().Twilio.WhatsAppNumber,
	)
	if err != nil {
		logrus.Fatalf("Failed to create Twilio client: %v", err)
	}

	// Output adapter (browser automation factory)
	automationFactory := gmaps.NewFactory(gmaps.Config{
		Email:       configs.GetViper().Google.Email,
		Password:    configs.GetViper().Google.Password,
		Headless:    configs.GetViper().Automation.Headless,
		NoSandbox:   configs.GetViper().Automation.NoSandbox,
		StepTimeout: time.Duration(configs.GetViper().Automation.StepTimeout) * time.Second,
	})

	// Output adapter (session store)
	sessionStore := memory.NewSessionStore()

	// Normalize the configured allow-list so it matches normalized senders
	allowed := make([]string, 0)
	for _, number := range configs.GetViper().Bot.AllowedNumberList() {
		normalized, err := domain.ValidatePhoneNumber(number)
		if err != nil {
			logrus.Warnf("Ignoring invalid allowed number %q: %v", number, err)
			continue
		}
		allowed = append(allowed, normalized)
	}

	// Application services (use cases)
	pipeline := application.NewSubmissionPipeline(automationFactory, history)
	botSrv := application.NewReviewBotService(sessionStore, whatsappClient, pipeline, allowed)

	// Input adapters (HTTP handlers)
	hdl := httpAdapter.New()
	webhookHdl := httpAdapter.NewWhatsAppWebhookHandler(botSrv)

	app.Get("/", hdl.Index)
	app.Get("/health", hdl.HealthCheck)

	// WhatsApp webhook endpoint
	webhook := app.Group("/webhook")
	{
		webhook.Post("/whatsapp", webhookHdl.HandleWebhook)
	}

	err = app.Listen(":" + configs.GetViper().App.Port)
	if err != nil {
		return err
	}

	logrus.Println("Listerning on port: ", configs.GetViper().App.Port)
	return nil
}
