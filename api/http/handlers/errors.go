package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/thedenisnikulin/nocsdegree.ru/api/http/presenter"
	"github.com/thedenisnikulin/nocsdegree.ru/pkg/listing"
)

// upstreamError maps hh.ru failures to 502/504 and everything else to 500.
func upstreamError(c *fiber.Ctx, log *slog.Logger, err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		log.Warn("upstream timeout", "path", c.Path(), "err", err)
		return presenter.Error(c, http.StatusGatewayTimeout, "hh.ru: timeout")
	case errors.Is(err, listing.ErrNetwork), errors.Is(err, listing.ErrParse), errors.Is(err, listing.ErrMissingField):
		log.Warn("upstream error", "path", c.Path(), "err", err)
		return presenter.Error(c, http.StatusBadGateway, "hh.ru: "+err.Error())
	default:
		log.Error("request failed", "path", c.Path(), "err", err)
		return presenter.Error(c, http.StatusInternalServerError, "internal error")
	}
}
