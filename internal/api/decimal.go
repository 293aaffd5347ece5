package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/dmitrymomot/matchkit/pkg/i18n"
	"github.com/dmitrymomot/matchkit/pkg/logger"
	"github.com/dmitrymomot/matchkit/pkg/matcher"
	"github.com/dmitrymomot/matchkit/pkg/validator"
)

const maxBodySize = 64 << 10

type decimalRequest struct {
	Value  *string `json:"value"`
	Params []int   `json:"params"`
}

type issue struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type matchResponse struct {
	Valid  bool    `json:"valid"`
	Errors []issue `json:"errors"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) matchDecimal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lang := i18n.GetLocale(ctx)

	var req decimalRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.logger.DebugContext(ctx, "bad request body", logger.Error(err))
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: h.translator.T(lang, "api.invalid_body")})
		return
	}

	m := h.matcher
	if req.Params != nil {
		var err error
		m, err = matcher.NewDecimalNumber(req.Params...)
		if err != nil {
			h.logger.DebugContext(ctx, "bad matcher params", logger.Error(err))
			writeJSON(w, http.StatusBadRequest, errorResponse{
				Error: h.translator.T(lang, "api.invalid_params", "reason", strings.ReplaceAll(err.Error(), "\n", "; ")),
			})
			return
		}
	}

	resp := matchResponse{Valid: true, Errors: []issue{}}
	if err := validator.Match("value", req.Value, m); err != nil {
		verrs := validator.ExtractValidationErrors(err)
		resp.Valid = false
		for _, e := range verrs.GetErrors("value") {
			msg := e.Message
			if h.translator.HasTranslation(lang, e.TranslationKey) {
				msg = h.translator.T(lang, e.TranslationKey)
			}
			resp.Errors = append(resp.Errors, issue{Code: e.Code, Message: msg})
		}
		h.logger.DebugContext(ctx, "value rejected", logger.Codes(verrs.Codes("value")))
	}

	writeJSON(w, http.StatusOK, resp)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.Join(ErrInvalidBody, errors.New("empty body"))
		}
		return errors.Join(ErrInvalidBody, err)
	}

	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return errors.Join(ErrInvalidBody, errors.New("unexpected data after JSON object"))
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
