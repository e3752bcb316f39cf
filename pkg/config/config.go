package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config agrupa la configuración del cliente y del backend de desarrollo (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	API     APIConfig
	Session SessionConfig
	Catalog CatalogConfig
	DB      DBConfig
	HTTP    HTTPConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// APIConfig configuración del cliente REST hacia el backend de inventario.
type APIConfig struct {
	BaseURL string
	// Timeout cero = sin límite explícito (valor por defecto del cliente HTTP).
	Timeout time.Duration
}

// SessionConfig ubicación de la caché local del operario autenticado.
type SessionConfig struct {
	File string
}

// CatalogConfig preferencias del listado de productos.
type CatalogConfig struct {
	CollationLang string // etiqueta BCP 47 usada para ordenar por nombre
}

// DBConfig conexión PostgreSQL del backend de desarrollo; sin URL ni host se usa memoria.
type DBConfig struct {
	URL      string // DATABASE_URL; si está definida ignora los campos sueltos
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	SeedFile string // db.json opcional para poblar el almacén
}

// Enabled indica si hay una base de datos configurada.
func (c DBConfig) Enabled() bool {
	return c.URL != "" || c.Host != ""
}

// DSN cadena de conexión para pgx, con las credenciales escapadas.
func (c DBConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:     "/" + c.Name,
		RawQuery: url.Values{"sslmode": {c.SSLMode}}.Encode(),
	}
	return u.String()
}

// HTTPConfig escucha del backend de desarrollo.
type HTTPConfig struct {
	Host string
	Port int
}

func (c HTTPConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, API_BASE_URL, SESSION_FILE, DB_HOST, etc.
func Load() (*Config, error) {
	// .env al entorno del proceso; si no existe no es un error.
	_ = godotenv.Load()

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return build(v)
}

func build(v *viper.Viper) (*Config, error) {
	timeout := getInt(v, "API_TIMEOUT_SECONDS", 0)
	if timeout < 0 {
		return nil, fmt.Errorf("API_TIMEOUT_SECONDS no puede ser negativo: %d", timeout)
	}

	baseURL := strings.TrimRight(getString(v, "API_BASE_URL", "http://localhost:3000"), "/")
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("API_BASE_URL inválida: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "invex"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		API: APIConfig{
			BaseURL: baseURL,
			Timeout: time.Duration(timeout) * time.Second,
		},
		Session: SessionConfig{
			File: getString(v, "SESSION_FILE", defaultSessionFile()),
		},
		Catalog: CatalogConfig{
			CollationLang: getString(v, "COLLATION_LANG", "fr"),
		},
		DB: DBConfig{
			URL:      getString(v, "DATABASE_URL", ""),
			Host:     getString(v, "DB_HOST", ""),
			Port:     getInt(v, "DB_PORT", 5432),
			User:     getString(v, "DB_USER", "postgres"),
			Password: getString(v, "DB_PASSWORD", ""),
			Name:     getString(v, "DB_NAME", "invex"),
			SSLMode:  getString(v, "DB_SSLMODE", "disable"),
			SeedFile: getString(v, "SEED_FILE", ""),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 3000),
		},
	}
	return cfg, nil
}

// defaultSessionFile ~/.invex/session.json, o ./.invex/session.json sin HOME.
func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".invex", "session.json")
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if !v.IsSet(key) {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
	if err != nil {
		return def
	}
	return n
}
