package main

import (
	"context"
	"log"

	"remi-card/internal/adapters/input/http"
	"remi-card/internal/adapters/output/eventlog"
	"remi-card/internal/adapters/output/homeassistant"
	"remi-card/internal/adapters/output/persistence"
	"remi-card/internal/adapters/output/translations"
	"remi-card/internal/config"
	"remi-card/internal/domain/icons"
	"remi-card/internal/domain/localizer"
	"remi-card/internal/domain/service"
	"remi-card/internal/ports"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// Translations
	var source ports.TranslationSource = translations.NewEmbeddedSource()
	if cfg.TranslationsDir != "" {
		source = translations.NewDirSource(cfg.TranslationsDir)
	}
	table, err := source.Load(context.Background())
	if err != nil {
		log.Fatalf("Failed to load translations: %v", err)
	}
	loc := localizer.New(table)
	log.Printf("Translations loaded: %v", loc.Languages())

	// HA Client
	var ha ports.HomeAssistantPort
	var publisher ports.ConfigChangedPublisher = eventlog.NewPublisher(nil)
	if cfg.HassConfigured() {
		client := homeassistant.NewClient()
		client.Configure(cfg.HassURL, cfg.HassToken)
		ha = client
		publisher = client
	} else {
		log.Println("HASS_URL/HASS_TOKEN not set, config changes are only logged")
	}

	configRepo := persistence.NewJSONConfigRepository(cfg.ConfigPath)
	editor := service.NewEditorService(configRepo, publisher, loc)
	faces := service.NewFaceService(icons.NewResolver(cfg.AssetBase), loc)

	server := http.NewServer(editor, faces, loc, ha)
	log.Printf("HTTP Server listening on %s", cfg.Addr)
	if err := server.ListenAndServe(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
