package cli

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"github.com/joanpaneque/new-project-script/logger"
)

var (
	log  logger.Logger
	once sync.Once
)

// InitLogger initializes the logger
func InitLogger() {
	once.Do(func() {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			panic("Failed to get user home directory: " + err.Error())
		}

		logDir := filepath.Join(homeDir, ".newproject")
		err = os.MkdirAll(logDir, 0755)
		if err != nil {
			panic("Failed to create .newproject directory: " + err.Error())
		}

		logFile, err := os.OpenFile(filepath.Join(logDir, "newproject.log"), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
		if err != nil {
			panic("Failed to open log file: " + err.Error())
		}

		zerologLogger := zerolog.New(logFile).With().Timestamp().Logger()
		log = logger.NewZerologAdapter(&zerologLogger)
	})
}

// GetLogger returns the logger instance
func GetLogger() logger.Logger {
	return log
}
