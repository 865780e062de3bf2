package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Remote    RemoteConfig
	Local     LocalConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Printer   PrinterConfig
}

type AppConfig struct {
	Name     string
	Env      string
	Port     string
	Debug    bool
	Timezone string
}

// RemoteConfig describes the optional remote backends. At most one is used;
// see Kind.
type RemoteConfig struct {
	Supabase       SupabaseConfig
	Appwrite       AppwriteConfig
	PageSize       int
	Timeout        time.Duration
	FallbackPolicy string
}

type SupabaseConfig struct {
	DatabaseURL string
	AutoMigrate bool
}

type AppwriteConfig struct {
	Endpoint    string
	ProjectID   string
	APIKey      string
	DatabaseID  string
	Collections AppwriteCollections
}

type AppwriteCollections struct {
	Services        string
	Orders          string
	Incomes         string
	Expenses        string
	Profile         string
	PrintedInvoices string
}

type LocalConfig struct {
	Path string
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

type PrinterConfig struct {
	Type    string // "usb", "network" or "none"
	USBPath string
	Address string
	Width   int
}

// BackendKind names the remote backend chosen at startup
type BackendKind string

const (
	BackendLocal    BackendKind = "local"
	BackendAppwrite BackendKind = "appwrite"
	BackendSupabase BackendKind = "supabase"
)

// Kind selects the remote backend from which values are present.
// A Supabase database URL wins over an Appwrite project; neither means local only.
func (r *RemoteConfig) Kind() BackendKind {
	switch {
	case r.Supabase.DatabaseURL != "":
		return BackendSupabase
	case r.Appwrite.ProjectID != "" && r.Appwrite.Endpoint != "":
		return BackendAppwrite
	default:
		return BackendLocal
	}
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "laundrypro-api")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("APP_TIMEZONE", "America/Lima")
	viper.SetDefault("SUPABASE_DB_URL", "")
	viper.SetDefault("SUPABASE_AUTO_MIGRATE", false)
	viper.SetDefault("APPWRITE_ENDPOINT", "https://cloud.appwrite.io/v1")
	viper.SetDefault("APPWRITE_PROJECT_ID", "")
	viper.SetDefault("APPWRITE_API_KEY", "")
	viper.SetDefault("APPWRITE_DATABASE_ID", "lavanderia_db")
	viper.SetDefault("APPWRITE_COLLECTION_SERVICIOS", "servicios")
	viper.SetDefault("APPWRITE_COLLECTION_PEDIDOS", "pedidos")
	viper.SetDefault("APPWRITE_COLLECTION_INGRESOS", "ingresos")
	viper.SetDefault("APPWRITE_COLLECTION_EGRESOS", "egresos")
	viper.SetDefault("APPWRITE_COLLECTION_CONFIG", "configuracion")
	viper.SetDefault("APPWRITE_COLLECTION_FACTURAS", "facturas_impresas")
	viper.SetDefault("REMOTE_PAGE_SIZE", 100)
	viper.SetDefault("REMOTE_TIMEOUT_SECONDS", 15)
	viper.SetDefault("STORE_FALLBACK_POLICY", "always")
	viper.SetDefault("LOCAL_DB_PATH", "./data/laundrypro.db")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)
	viper.SetDefault("PRINTER_TYPE", "none")
	viper.SetDefault("PRINTER_USB_PATH", "/dev/usb/lp0")
	viper.SetDefault("PRINTER_ADDRESS", "")
	viper.SetDefault("PRINTER_WIDTH", 32)

	return &Config{
		App: AppConfig{
			Name:     viper.GetString("APP_NAME"),
			Env:      viper.GetString("APP_ENV"),
			Port:     viper.GetString("APP_PORT"),
			Debug:    viper.GetBool("APP_DEBUG"),
			Timezone: viper.GetString("APP_TIMEZONE"),
		},
		Remote: RemoteConfig{
			Supabase: SupabaseConfig{
				DatabaseURL: viper.GetString("SUPABASE_DB_URL"),
				AutoMigrate: viper.GetBool("SUPABASE_AUTO_MIGRATE"),
			},
			Appwrite: AppwriteConfig{
				Endpoint:   viper.GetString("APPWRITE_ENDPOINT"),
				ProjectID:  viper.GetString("APPWRITE_PROJECT_ID"),
				APIKey:     viper.GetString("APPWRITE_API_KEY"),
				DatabaseID: viper.GetString("APPWRITE_DATABASE_ID"),
				Collections: AppwriteCollections{
					Services:        viper.GetString("APPWRITE_COLLECTION_SERVICIOS"),
					Orders:          viper.GetString("APPWRITE_COLLECTION_PEDIDOS"),
					Incomes:         viper.GetString("APPWRITE_COLLECTION_INGRESOS"),
					Expenses:        viper.GetString("APPWRITE_COLLECTION_EGRESOS"),
					Profile:         viper.GetString("APPWRITE_COLLECTION_CONFIG"),
					PrintedInvoices: viper.GetString("APPWRITE_COLLECTION_FACTURAS"),
				},
			},
			PageSize:       viper.GetInt("REMOTE_PAGE_SIZE"),
			Timeout:        time.Duration(viper.GetInt("REMOTE_TIMEOUT_SECONDS")) * time.Second,
			FallbackPolicy: viper.GetString("STORE_FALLBACK_POLICY"),
		},
		Local: LocalConfig{
			Path: viper.GetString("LOCAL_DB_PATH"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
		Printer: PrinterConfig{
			Type:    viper.GetString("PRINTER_TYPE"),
			USBPath: viper.GetString("PRINTER_USB_PATH"),
			Address: viper.GetString("PRINTER_ADDRESS"),
			Width:   viper.GetInt("PRINTER_WIDTH"),
		},
	}
}

// Location returns the business timezone used to decide what "today" is
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		log.Printf("Warning: unknown timezone %q, using UTC: %v", c.Timezone, err)
		return time.UTC
	}
	return loc
}
