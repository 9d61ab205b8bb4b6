package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/kanban-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/kanban-service/internal/domain"
	"github.com/jsamuelsen11/kanban-service/internal/platform/logging"
)

// maxJSONBodyBytes caps request bodies at 1 MiB.
const maxJSONBodyBytes = 1 << 20

// parseID reads a positive int64 URL parameter.
func parseID(r *http.Request, param string) (int64, error) {
	raw := chi.URLParam(r, param)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, &domain.ValidationError{
			Fields: map[string]string{"path." + param: "must be a positive integer"},
		}
	}
	return id, nil
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	ctx := r.Context()
	body, err := sonic.Marshal(v)
	if err != nil {
		logging.FromContext(ctx).ErrorContext(ctx, "failed to encode response", slog.Any("error", err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		logging.FromContext(ctx).WarnContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

// decodeJSONBody decodes the request body into dst, writing a 400 and
// returning false when the body is oversized or not JSON.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return true
	}

	msg := "invalid JSON"
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		msg = "must not exceed " + strconv.FormatInt(tooLarge.Limit, 10) + " bytes"
	}
	dto.WriteErrorResponse(w, r, &domain.ValidationError{Fields: map[string]string{"body": msg}})
	return false
}

type validatable interface {
	Validate() error
}

// decodeAndValidate is decodeJSONBody followed by dst.Validate.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
