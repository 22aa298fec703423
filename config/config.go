package config

import (
	"bytes"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
)

// Config configuración de la aplicación
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Email     EmailConfig     `mapstructure:"email"`
	Reminders RemindersConfig `mapstructure:"reminders"`
}

// ServerConfig configuración del servidor HTTP
type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// DatabaseConfig configuración de la base de datos
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	Charset  string `mapstructure:"charset"`
}

// EmailConfig configuración del correo saliente
type EmailConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Host      string `mapstructure:"host"`
	Port      int    `mapstructure:"port"`
	Username  string `mapstructure:"username"`
	Password  string `mapstructure:"password"`
	From      string `mapstructure:"from"`
	Recipient string `mapstructure:"recipient"`
}

// RemindersConfig configuración del job de notificaciones
type RemindersConfig struct {
	// Days ventana de anticipación por defecto para el job de correos
	Days int `mapstructure:"days"`
}

var (
	// GlobalConfig instancia global de configuración
	GlobalConfig *Config
)

// LoadConfig carga la configuración.
// Prioridad: variables de entorno > archivo externo > YAML embebido.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	// 1. Defaults embebidos
	if err := v.ReadConfig(bytes.NewReader(DefaultConfigYAML)); err != nil {
		return nil, fmt.Errorf("error leyendo configuración embebida: %w", err)
	}

	// 2. Archivo externo opcional
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.MergeInConfig(); err != nil {
			log.Printf("aviso: no se pudo leer el archivo de configuración %s: %v", configPath, err)
		} else {
			log.Printf("configuración externa cargada: %s", configPath)
		}
	} else {
		external := viper.New()
		external.SetConfigName("config")
		external.SetConfigType("yaml")
		external.AddConfigPath(".")
		external.AddConfigPath("./config")
		external.AddConfigPath("/etc/autogasto")
		external.AddConfigPath("$HOME/.autogasto")

		if err := external.ReadInConfig(); err == nil {
			if err := v.MergeConfigMap(external.AllSettings()); err != nil {
				log.Printf("aviso: no se pudo combinar la configuración externa: %v", err)
			} else {
				log.Printf("configuración externa cargada: %s", external.ConfigFileUsed())
			}
		}
	}

	// 3. Variables de entorno AUTOGASTO_*
	v.SetEnvPrefix("AUTOGASTO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error interpretando la configuración: %w", err)
	}

	if cfg.Reminders.Days <= 0 {
		cfg.Reminders.Days = 7
	}
	if cfg.Email.Recipient == "" {
		cfg.Email.Recipient = "admin@example.com"
	}

	GlobalConfig = &cfg

	return &cfg, nil
}

// MustLoadConfig carga la configuración o hace panic
func MustLoadConfig(configPath string) *Config {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		panic(fmt.Sprintf("error cargando configuración: %v", err))
	}
	return cfg
}

// GetConfig devuelve la configuración global
func GetConfig() *Config {
	if GlobalConfig == nil {
		panic("configuración no inicializada, llamar LoadConfig primero")
	}
	return GlobalConfig
}

// PrintConfig imprime la configuración actual (sin datos sensibles)
func PrintConfig() {
	if GlobalConfig == nil {
		return
	}
	log.Printf("configuración actual:")
	log.Printf("  servidor: %s (modo: %s)", GlobalConfig.Server.Port, GlobalConfig.Server.Mode)
	log.Printf("  base de datos: %s@%s:%s/%s",
		GlobalConfig.Database.Username,
		GlobalConfig.Database.Host,
		GlobalConfig.Database.Port,
		GlobalConfig.Database.DBName)
	log.Printf("  correo: habilitado=%v destinatario=%s", GlobalConfig.Email.Enabled, GlobalConfig.Email.Recipient)
}

// SafeErrorMessage devuelve el detalle del error sólo fuera del modo
// release; en producción devuelve el mensaje genérico para no filtrar
// información interna.
func SafeErrorMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	if GlobalConfig != nil && GlobalConfig.Server.Mode == "release" {
		return fallback
	}
	return err.Error()
}
