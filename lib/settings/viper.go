package settings

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

const (
	Title                 = "title"
	IP                    = "ip"
	Port                  = "port"
	DBType                = "dbType"
	DBSettingsFilename    = "dbSettings.filename"
	DBSettingsHost        = "dbSettings.host"
	DBSettingsPort        = "dbSettings.port"
	DBSettingsDatabase    = "dbSettings.database"
	DBSettingsUser        = "dbSettings.user"
	DBSettingsPassword    = "dbSettings.password"
	AIEndpoint            = "ai.endpoint"
	AIAPIKey              = "ai.apiKey"
	AIModel               = "ai.model"
	AutoSaveSnapshotNotes = "autoSave.snapshotNotes"
)

// ReadConfig loads settings from an optional JSON document, a settings
// file in the working directory and SLUGLINE_* environment variables, in
// that order of precedence.
func ReadConfig(jsonStr string) (*Settings, error) {
	viper.SetConfigName("settings")
	viper.SetConfigType("json")

	viper.AddConfigPath(".")
	viper.AutomaticEnv()
	viper.SetEnvPrefix("slugline")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	if jsonStr != "" {
		if err := viper.ReadConfig(strings.NewReader(jsonStr)); err != nil {
			return nil, err
		}
	} else {
		if err := viper.ReadInConfig(); err != nil {
			var configFileNotFoundError viper.ConfigFileNotFoundError
			if !errors.As(err, &configFileNotFoundError) {
				return nil, err
			}
			// missing file is fine, defaults apply
		}
	}

	viper.SetDefault(Title, "Slugline")
	viper.SetDefault(IP, "0.0.0.0")
	viper.SetDefault(Port, "9002")

	viper.SetDefault(DBType, SQLITE)
	viper.SetDefault(DBSettingsFilename, "var/slugline.db")
	viper.SetDefault(DBSettingsHost, "")
	viper.SetDefault(DBSettingsPort, "5432")
	viper.SetDefault(DBSettingsDatabase, "slugline")
	viper.SetDefault(DBSettingsUser, "")
	viper.SetDefault(DBSettingsPassword, "")

	viper.SetDefault(AIEndpoint, "")
	viper.SetDefault(AIAPIKey, "")
	viper.SetDefault(AIModel, "")

	viper.SetDefault(AutoSaveSnapshotNotes, "Auto-save")

	dbType, err := ParseDBType(viper.GetString(DBType))
	if err != nil {
		return nil, err
	}

	return &Settings{
		Title:  viper.GetString(Title),
		IP:     viper.GetString(IP),
		Port:   viper.GetString(Port),
		DBType: dbType,
		DBSettings: DBSettings{
			Filename: viper.GetString(DBSettingsFilename),
			Host:     viper.GetString(DBSettingsHost),
			Port:     viper.GetString(DBSettingsPort),
			Database: viper.GetString(DBSettingsDatabase),
			User:     viper.GetString(DBSettingsUser),
			Password: viper.GetString(DBSettingsPassword),
		},
		AI: AISettings{
			Endpoint: viper.GetString(AIEndpoint),
			APIKey:   viper.GetString(AIAPIKey),
			Model:    viper.GetString(AIModel),
		},
		AutoSaveSnapshotNotes: viper.GetString(AutoSaveSnapshotNotes),
	}, nil
}
