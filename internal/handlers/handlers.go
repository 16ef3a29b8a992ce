// Package handlers turns an info response into terminal output.
package handlers

import (
	"context"
	"fmt"
	"io"

	"github.com/amaumene/nyaainfo/internal/models"
	"github.com/amaumene/nyaainfo/internal/services"
	"github.com/amaumene/nyaainfo/pkg/logger"
)

// Options selects the output mode.
type Options struct {
	Raw     bool
	Details bool
}

// Handler runs one info query and writes the result.
type Handler struct {
	service services.InfoService
	out     io.Writer
	logger  logger.Logger
}

// New creates a new Handler writing to out.
func New(service services.InfoService, out io.Writer, log logger.Logger) *Handler {
	if log == nil {
		log = logger.Discard()
	}
	return &Handler{
		service: service,
		out:     out,
		logger:  log,
	}
}

// HandleInfo fetches target and prints it. Raw mode prints the body as is
// and never fails on content. Otherwise a body that is not JSON or that
// carries an errors field is returned as a RESPONSE_PARSE or API_ERROR error.
func (h *Handler) HandleInfo(ctx context.Context, target models.QueryTarget, opts Options) error {
	resp, err := h.service.FetchInfo(ctx, target)
	if err != nil {
		return err
	}

	if opts.Raw {
		_, err := fmt.Fprintln(h.out, resp.Text())
		return err
	}

	doc, err := ParseDocument(resp.Body)
	if err != nil {
		h.logger.Debugf("[NYAA] response with status %d is not JSON: %v", resp.StatusCode, err)
		return err
	}

	summary, err := FormatSummary(doc, resp.Text())
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintln(h.out, summary); err != nil {
		return err
	}

	if opts.Details {
		details, err := h.formatDetails(resp.Body)
		if err != nil {
			h.logger.Warnf("[NYAA] details unavailable: %v", err)
			return nil
		}
		if _, err := io.WriteString(h.out, details); err != nil {
			return err
		}
	}

	return nil
}
