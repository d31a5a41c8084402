package config

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	Database    Database
	Display     Display
	Auth        Auth

	SeedDemoData bool `env:"SEED_DEMO_DATA" envDefault:"false"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}

type Database struct {
	Driver string `env:"DATABASE_DRIVER" envDefault:"mysql"` // mysql | sqlite
	URL    string `env:"DATABASE_URL"`
}

type Display struct {
	TimeZone string `env:"DISPLAY_TIMEZONE" envDefault:"Asia/Bangkok"`
	Locale   string `env:"DISPLAY_LOCALE" envDefault:"th"`
}

// Auth holds the session and admin allow-list settings. An empty
// AdminEmails means nobody is an administrator.
type Auth struct {
	AdminEmails   []string `env:"ADMIN_EMAILS" envSeparator:","`
	SessionSecret string   `env:"SESSION_SECRET"`
	SessionCookie string   `env:"SESSION_COOKIE" envDefault:"session"`
	LoginPath     string   `env:"LOGIN_PATH" envDefault:"/login"`
}
