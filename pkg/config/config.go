package config

import (
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde
// variables de entorno y opcionalmente un archivo .env).
type Config struct {
	App  AppConfig
	Data DataConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, production
	Name     string
	LogLevel string
}

// DataConfig ubicación de los archivos de datos y de exportación.
type DataConfig struct {
	Dir           string // directorio de los archivos JSON
	CustomersFile string
	InvoicesFile  string
	ExportDir     string // destino de los PDF exportados
}

// CustomersPath ruta completa del archivo de clientes.
func (c DataConfig) CustomersPath() string {
	return filepath.Join(c.Dir, c.CustomersFile)
}

// InvoicesPath ruta completa del archivo de facturas.
func (c DataConfig) InvoicesPath() string {
	return filepath.Join(c.Dir, c.InvoicesFile)
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde
// un archivo .env en el directorio actual). Las env vars tienen prioridad.
// Nombres esperados: APP_ENV, LOG_LEVEL, CRM_DATA_DIR, CRM_CUSTOMERS_FILE, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo .env junto al binario
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "crm-clientes"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		Data: DataConfig{
			Dir:           getString(v, "CRM_DATA_DIR", "."),
			CustomersFile: getString(v, "CRM_CUSTOMERS_FILE", "clientes.json"),
			InvoicesFile:  getString(v, "CRM_INVOICES_FILE", "facturas.json"),
			ExportDir:     getString(v, "CRM_EXPORT_DIR", "exports"),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}
