package config

const (
	defaultEveRoot          = "~/.local/share/eve"
	defaultProjectsDir      = "~/projects"
	defaultDatabasePath     = "~/.local/share/eve/eve.db"
	defaultLogDir           = "~/.local/share/eve/logs"
	defaultSceneExtension   = "hip"
	defaultOnConflict       = ConflictPrompt
	defaultHoudiniBinary    = "houdinifx"
	defaultHoudiniBuild     = "19.5.640"
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
	defaultLogRetentionDays = 30
	defaultLogMaxSizeMB     = 10
	defaultLogMaxBackups    = 5
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			EveRoot:      defaultEveRoot,
			ProjectsDir:  defaultProjectsDir,
			DatabasePath: defaultDatabasePath,
			LogDir:       defaultLogDir,
		},
		Naming: Naming{
			SceneExtension: defaultSceneExtension,
			OnConflict:     defaultOnConflict,
		},
		Houdini: Houdini{
			Binary: defaultHoudiniBinary,
			Build:  defaultHoudiniBuild,
		},
		Logging: Logging{
			Format:        defaultLogFormat,
			Level:         defaultLogLevel,
			RetentionDays: defaultLogRetentionDays,
			MaxSizeMB:     defaultLogMaxSizeMB,
			MaxBackups:    defaultLogMaxBackups,
			Compress:      true,
		},
	}
}
