package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log является глобальным экземпляром логгера для всего приложения.
// Он создан заранее, чтобы пакеты и тесты могли писать в него до Init.
var Log = logrus.New()

// Options описывает явную настройку логгера (флаги командной строки).
// Пустые поля означают "взять из окружения".
type Options struct {
	Level  string
	Format string
	Output io.Writer
}

// Init инициализирует глобальный логгер из переменных окружения.
// Эта функция должна быть вызвана один раз при старте приложения в main.go.
func Init() {
	Configure(Options{})
}

// Configure настраивает логгер. Значения Options имеют приоритет над
// LOG_LEVEL и LOG_FORMAT.
func Configure(opts Options) {
	// 1. Уровень логирования. По умолчанию - "info", для отладки - "debug".
	logLevel := opts.Level
	if logLevel == "" {
		var ok bool
		logLevel, ok = os.LookupEnv("LOG_LEVEL")
		if !ok {
			logLevel = "info"
		}
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	// 2. Форматтер. "json" - для сбора логов, "text" - для разработки.
	logFormat := opts.Format
	if logFormat == "" {
		logFormat = os.Getenv("LOG_FORMAT")
	}
	if strings.ToLower(logFormat) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   opts.Output == nil,
		})
	}

	// 3. Куда писать. Терминальный интерфейс перенаправляет логи в файл.
	if opts.Output != nil {
		Log.SetOutput(opts.Output)
	} else {
		Log.SetOutput(os.Stdout)
	}
}
