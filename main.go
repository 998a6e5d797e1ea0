package main

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/slugline/slugline-go/lib"
	"github.com/slugline/slugline-go/lib/ai"
	api2 "github.com/slugline/slugline-go/lib/api"
	"github.com/slugline/slugline-go/lib/history"
	"github.com/slugline/slugline-go/lib/script"
	settings2 "github.com/slugline/slugline-go/lib/settings"
	"github.com/slugline/slugline-go/lib/utils"
)

func main() {
	setupLogger := utils.SetupLogger()
	defer setupLogger.Sync()

	retrievedSettings, err := settings2.ReadConfig("")
	if err != nil {
		setupLogger.Fatal("Error reading settings: " + err.Error())
		return
	}
	validatorEvaluator := validator.New(validator.WithRequiredStructEnabled())

	setupLogger.Info("Starting Slugline...")

	dataStore, err := utils.GetDB(*retrievedSettings, setupLogger)
	if err != nil {
		setupLogger.Fatal("Error connecting to database: " + err.Error())
		return
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	scriptManager := script.NewManager(dataStore, setupLogger)
	historyStore := history.NewStore(dataStore, setupLogger)
	generator := ai.NewHTTPGenerator(retrievedSettings.AI)

	initStore := &lib.InitStore{
		C:                 app,
		RetrievedSettings: retrievedSettings,
		Store:             dataStore,
		ScriptManager:     scriptManager,
		History:           historyStore,
		Generator:         generator,
		Validator:         validatorEvaluator,
		Logger:            setupLogger,
	}

	api2.InitAPI(initStore)

	fiberString := fmt.Sprintf("%s:%s", retrievedSettings.IP, retrievedSettings.Port)
	setupLogger.Info("Listening on " + fiberString)
	if err := app.Listen(fiberString); err != nil {
		setupLogger.Fatal("Server error: " + err.Error())
	}
}
