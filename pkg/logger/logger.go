package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/tienda-api/pkg/config"
)

// Logger logger estructurado del servicio. Envuelve zerolog para que el resto
// del código dependa de este paquete y no de la librería directamente.
type Logger struct {
	zl zerolog.Logger
}

// New construye el logger a partir de la configuración de la app: consola
// legible en development, JSON en el resto de entornos, y el nombre del
// servicio estampado en cada evento. También redirige el logger global de
// zerolog, que usan los paquetes que loguean sin inyección (ej. el mapeo de
// errores HTTP).
func New(cfg config.AppConfig) *Logger {
	return newWithWriter(cfg, pickWriter(cfg.Env))
}

func newWithWriter(cfg config.AppConfig, w io.Writer) *Logger {
	zl := zerolog.New(w).
		Level(parseLevel(cfg.LogLevel)).
		With().
		Timestamp().
		Str("service", cfg.Name).
		Logger()

	log.Logger = zl
	return &Logger{zl: zl}
}

func pickWriter(env string) io.Writer {
	if env == "development" {
		return zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	}
	return os.Stdout
}

// parseLevel traduce el nivel configurado (APP_LOG_LEVEL). Un valor
// desconocido o vacío cae en info, nunca en panic.
func parseLevel(s string) zerolog.Level {
	switch s {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Eventos delegados a zerolog.
func (l *Logger) Trace() *zerolog.Event { return l.zl.Trace() }
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// With crea un sublogger con campos fijos adicionales.
func (l *Logger) With() zerolog.Context {
	return l.zl.With()
}

// Zerolog expone el logger interno cuando hace falta la API directa.
func (l *Logger) Zerolog() zerolog.Logger {
	return l.zl
}
