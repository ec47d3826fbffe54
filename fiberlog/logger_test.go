package fiberlog

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	logger, hook := test.NewNullLogger()
	app := fiber.New()
	app.Use(New(Config{
		Logger:     logger,
		Tags:       []string{TagStatus, TagPath, TagBody},
		SkipPaths:  []string{"/swagger"},
		MaxBodyLog: 4,
	}))
	app.Post("/echo", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/bad", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "fail"})
	})
	app.Get("/swagger/index.html", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	t.Run(`request fields check`, func(t *testing.T) {
		hook.Reset()
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader("hello world")), -1)
		require.Nil(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.Len(t, hook.Entries, 1)
		entry := hook.LastEntry()
		require.Equal(t, logrus.InfoLevel, entry.Level)
		require.Equal(t, "POST /echo", entry.Message)
		require.Equal(t, "hell...", entry.Data[TagBody])
		require.Equal(t, fiber.StatusOK, entry.Data[TagStatus])
	})
	t.Run(`client error level check`, func(t *testing.T) {
		hook.Reset()
		_, err := app.Test(httptest.NewRequest(http.MethodGet, "/bad", nil), -1)
		require.Nil(t, err)
		require.Len(t, hook.Entries, 1)
		require.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	})
	t.Run(`skipped path check`, func(t *testing.T) {
		hook.Reset()
		_, err := app.Test(httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil), -1)
		require.Nil(t, err)
		require.Empty(t, hook.Entries)
	})
}
