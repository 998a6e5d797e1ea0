package lib

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/slugline/slugline-go/lib/ai"
	"github.com/slugline/slugline-go/lib/db"
	"github.com/slugline/slugline-go/lib/history"
	"github.com/slugline/slugline-go/lib/script"
	"github.com/slugline/slugline-go/lib/settings"
)

// InitStore bundles the wired-up engine components the API handlers
// share.
type InitStore struct {
	C                 *fiber.App
	RetrievedSettings *settings.Settings
	Store             db.DataStore
	ScriptManager     *script.Manager
	History           *history.Store
	Generator         *ai.HTTPGenerator
	Validator         *validator.Validate
	Logger            *zap.SugaredLogger
}
