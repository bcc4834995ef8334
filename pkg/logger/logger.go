// Package logger, global zerolog logger'ını kurar.
//
// Development ortamında okunabilir console çıktısı, diğer ortamlarda
// timestamp + caller içeren JSON satırları üretilir.
package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init, global logger'ı servis adı ve ortama göre yapılandırır.
func Init(service, env string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if env == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}).With().
			Str("service", service).
			Logger()
		return
	}

	log.Logger = zerolog.New(os.Stdout).
		With().
		Timestamp().
		Caller().
		Str("service", service).
		Logger()
}

// For, "component" alanı eklenmiş bir alt logger döner.
//
//	log := logger.For("stats")
//	log.Warn().Err(err).Msg("increment failed")
func For(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}
