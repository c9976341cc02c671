package run

import (
	"context"
	"fmt"
	"net/http"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/aletkin/carminder/internal/api/respond"
	"github.com/aletkin/carminder/internal/engine"
)

type runner interface {
	Run(ctx context.Context) (engine.Summary, error)
}

// Handler exposes the engine run trigger for an external scheduler.
type Handler struct {
	engine runner
}

// NewHandler creates a new run handler.
func NewHandler(e runner) *Handler {
	return &Handler{engine: e}
}

// Trigger starts one evaluation run and reports its summary. Configuration
// and unhandled failures surface as 500 with the error string; the scheduler
// only needs the status code.
func (h *Handler) Trigger(c *ginext.Context) {
	summary, err := h.engine.Run(c.Request.Context())
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("engine run failed")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("engine run failed: %s", err))
		return
	}

	respond.OK(c.Writer, summary.String())
}
