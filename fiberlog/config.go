package fiberlog

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// Config selects the logger, the fields written per request and the requests left out.
type Config struct {
	Logger *logrus.Logger
	Tags   []string
	// SkipPaths are path prefixes that are not logged, e.g. /swagger.
	SkipPaths []string
	// MaxBodyLog caps the logged request and response bodies, 0 means 4096 bytes.
	MaxBodyLog int
}

var ConfigDefault = Config{
	Tags: []string{
		TagStatus,
		TagLatency,
		TagMethod,
		TagPath,
	},
}

func (cfg Config) skip(c *fiber.Ctx) bool {
	if c.Method() == fiber.MethodOptions {
		return true
	}
	for _, prefix := range cfg.SkipPaths {
		if strings.HasPrefix(c.Path(), prefix) {
			return true
		}
	}
	return false
}

func (cfg Config) bodyLimit() int {
	if cfg.MaxBodyLog > 0 {
		return cfg.MaxBodyLog
	}
	return 4096
}
