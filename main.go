package main

import (
	"flag"
	"log"
	"strings"
	"time"

	"autogasto/config"
	"autogasto/database"
	"autogasto/router"
	"autogasto/service"
)

// @title AutoGasto API
// @version 1.0
// @description API de control de gastos del vehículo: gastos, combustible, recordatorios y reportes
// @host localhost:8080
// @BasePath /

var (
	configFile    string
	port          string
	showVersion   bool
	sendReminders bool
	reminderDays  int
)

func init() {
	flag.StringVar(&configFile, "config", "", "ruta del archivo de configuración externo (opcional)")
	flag.StringVar(&configFile, "c", "", "ruta del archivo de configuración (abreviado)")
	flag.StringVar(&port, "port", "", "puerto de escucha, ej: 8080 o :8080")
	flag.StringVar(&port, "p", "", "puerto de escucha (abreviado)")
	flag.BoolVar(&showVersion, "version", false, "mostrar versión")
	flag.BoolVar(&showVersion, "v", false, "mostrar versión (abreviado)")
	flag.BoolVar(&sendReminders, "send-reminders", false, "enviar correos de recordatorios y salir (para cron)")
	flag.IntVar(&reminderDays, "days", 0, "días de anticipación para -send-reminders (por defecto el valor configurado)")
}

func main() {
	flag.Parse()

	if showVersion {
		log.Println("AutoGasto v1.0.0")
		return
	}

	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatalf("error cargando configuración: %v", err)
	}

	if port != "" {
		if !strings.HasPrefix(port, ":") {
			port = ":" + port
		}
		cfg.Server.Port = port
		log.Printf("puerto indicado por línea de comandos: %s", port)
	}

	config.PrintConfig()

	if err := database.Init(cfg); err != nil {
		log.Fatalf("error inicializando base de datos: %v", err)
	}

	// modo batch: una corrida del notificador y salir
	if sendReminders {
		days := reminderDays
		if days <= 0 {
			days = cfg.Reminders.Days
		}
		log.Printf("buscando recordatorios de los próximos %d días...", days)

		notifier := service.NewReminderNotifier(service.NewEmailService(&cfg.Email))
		result, err := notifier.Run(time.Now(), days)
		if err != nil {
			log.Fatalf("error en la corrida de notificaciones: %v", err)
		}
		log.Printf("correos enviados: %d", result.Sent)
		log.Printf("recordatorios próximos: %d", result.Upcoming)
		log.Printf("recordatorios vencidos: %d", result.Overdue)
		return
	}

	r := router.SetupRouter(cfg)

	log.Printf("==========================================")
	log.Printf("  🚗 AutoGasto iniciado")
	log.Printf("==========================================")
	log.Printf("  API:      http://localhost%s/", cfg.Server.Port)
	log.Printf("  Swagger:  http://localhost%s/swagger/index.html", cfg.Server.Port)
	log.Printf("==========================================")

	if err := r.Run(cfg.Server.Port); err != nil {
		log.Fatalf("error iniciando el servidor: %v", err)
	}
}
