package config

// Config holds all configuration for the application.
type Config struct {
	DBName        string
	MigrationsDir string
	LogFormat     string
	Turso         TursoConfig
}

// TursoConfig configures the optional remote database. Both fields empty
// means a local-only SQLite file.
type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}
