package config

import (
	"pdf-extract-service/internal/domain"
	"pdf-extract-service/internal/service"
	"pdf-extract-service/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config            domain.Config
	Logger            domain.Logger
	Parser            domain.DocumentParser
	ExtractionService *service.ExtractionService
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	return NewContainerWithConfig(NewConfig())
}

// NewContainerWithConfig wires the application around an existing configuration
func NewContainerWithConfig(config domain.Config) *Container {
	appLogger := logger.NewLogger(config.GetLogLevel())

	parser := service.NewParser(config.GetPDFBackend(), appLogger)
	extractionService := service.NewExtractionService(parser, appLogger)

	return &Container{
		Config:            config,
		Logger:            appLogger,
		Parser:            parser,
		ExtractionService: extractionService,
	}
}

// GetConfig returns the configuration instance
func (c *Container) GetConfig() domain.Config {
	return c.Config
}

// GetLogger returns the logger instance
func (c *Container) GetLogger() domain.Logger {
	return c.Logger
}
