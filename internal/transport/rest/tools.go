package rest

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/dataharbor/inquiry-backend/internal/tool"
)

// maxToolBodyBytes caps the request body for a tool call. Inquiry documents
// and summaries are small; anything bigger is a client bug.
const maxToolBodyBytes = 1 << 20

// ToolsHandler exposes the tool registry over HTTP so agent runtimes can
// list and invoke tools without linking the service directly.
type ToolsHandler struct {
	registry *tool.Registry
	log      *slog.Logger
}

// NewToolsHandler creates a ToolsHandler.
func NewToolsHandler(registry *tool.Registry, log *slog.Logger) *ToolsHandler {
	return &ToolsHandler{registry: registry, log: log}
}

// ToolInfo describes one registered tool in the listing response.
type ToolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CallResponse wraps the tool's string result.
type CallResponse struct {
	Result string `json:"result"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// List returns all registered tools with their descriptions.
func (h *ToolsHandler) List(w http.ResponseWriter, r *http.Request) {
	tools := h.registry.List()
	out := make([]ToolInfo, 0, len(tools))
	for _, t := range tools {
		out = append(out, ToolInfo{Name: t.Name, Description: t.Description})
	}
	writeJSON(w, http.StatusOK, out)
}

// Call invokes the tool named in the path with the JSON body as arguments.
// An empty body means no arguments. The tool result is always a string,
// even when the operation failed; only an unknown tool name or a malformed
// body produce an HTTP-level error.
func (h *ToolsHandler) Call(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	body, err := io.ReadAll(io.LimitReader(r.Body, maxToolBodyBytes))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "read body: " + err.Error()})
		return
	}

	args := map[string]any{}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &args); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body: " + err.Error()})
			return
		}
	}

	result, err := h.registry.Dispatch(r.Context(), name, args)
	if err != nil {
		if errors.Is(err, tool.ErrUnknownTool) {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
			return
		}
		h.log.ErrorContext(r.Context(), "tool dispatch failed",
			slog.String("tool", name),
			slog.Any("error", err),
		)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}

	writeJSON(w, http.StatusOK, CallResponse{Result: result})
}
