// Package container provides dependency injection for the csv-ofx application.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"fmt"

	"fjacquet/csv-ofx/internal/config"
	"fjacquet/csv-ofx/internal/converter"
	"fjacquet/csv-ofx/internal/logging"
	"fjacquet/csv-ofx/internal/ofxgen"
	"fjacquet/csv-ofx/internal/resolver"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation: all fields are private and can only
// be accessed through getter methods.
type Container struct {
	logger    logging.Logger
	config    *config.Config
	resolver  *resolver.Resolver
	converter *converter.Converter
}

// NewContainer creates and wires all application dependencies.
//
// Parameters:
//   - cfg: Application configuration
//   - opts: Options applied to every generated OFX document
//
// Returns:
//   - *Container: Fully wired container with all dependencies
//   - error: Any error encountered during dependency creation
func NewContainer(cfg *config.Config, opts ...ofxgen.Option) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	// Create logger first as it's needed by other components
	logger := cfg.NewLogger()

	res := resolver.New(cfg.Source(), logger)
	conv := converter.New(res, logger, opts...)

	logger.Debug("Container initialized successfully",
		logging.Field{Key: logging.FieldConfigFile, Value: cfg.File},
		logging.Field{Key: logging.FieldCount, Value: len(res.Models())})

	return &Container{
		logger:    logger,
		config:    cfg,
		resolver:  res,
		converter: conv,
	}, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetResolver returns the configuration resolver.
func (c *Container) GetResolver() *resolver.Resolver {
	return c.resolver
}

// GetConverter returns the conversion pipeline.
func (c *Container) GetConverter() *converter.Converter {
	return c.converter
}

// Close performs cleanup of container resources.
func (c *Container) Close() error {
	c.logger.Debug("Container closed")
	return nil
}
