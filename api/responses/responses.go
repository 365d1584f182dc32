package responses

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	pkgerrors "github.com/angelmondragon/shopcart-backend/pkg/errors"
	"github.com/angelmondragon/shopcart-backend/pkg/logger"
	"github.com/angelmondragon/shopcart-backend/pkg/types"
)

// softStatus lists error codes that cart mutations report inside a 200 response.
var softStatus = map[pkgerrors.Code]int{
	pkgerrors.CodeNotFound: http.StatusOK,
}

// WriteSuccess writes data as a bare JSON document with status 200.
func WriteSuccess(w http.ResponseWriter, data any) {
	WriteSuccessStatus(w, http.StatusOK, data)
}

func WriteSuccessStatus(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, data)
}

// WriteStatus writes the {"status": ...} acknowledgement used by cart mutations.
func WriteStatus(w http.ResponseWriter, status string) {
	writeJSON(w, http.StatusOK, types.StatusBody{Status: status})
}

// WriteCartResult acknowledges a cart mutation. Codes listed in softStatus are
// written with their soft HTTP status; anything else goes through WriteError.
func WriteCartResult(ctx context.Context, logg *logger.Logger, w http.ResponseWriter, err error, status string) {
	if err == nil {
		WriteStatus(w, status)
		return
	}

	typed := pkgerrors.As(err)
	if typed != nil {
		if httpStatus, ok := softStatus[typed.Code()]; ok {
			if logg != nil {
				ctx = logg.WithFields(ctx, map[string]any{
					"error":      typed.Message(),
					"error_code": typed.Code(),
				})
				logg.Warn(ctx, "cart.soft_failure")
			}
			writeJSON(w, httpStatus, types.ErrorBody{
				Error: typed.Message(),
				Code:  string(typed.Code()),
			})
			return
		}
	}
	WriteError(ctx, logg, w, err)
}

func WriteError(ctx context.Context, logg *logger.Logger, w http.ResponseWriter, err error) {
	if err == nil {
		err = errors.New("unknown error")
	}

	typed := pkgerrors.As(err)
	if typed == nil {
		typed = pkgerrors.Wrap(pkgerrors.CodeInternal, err, "unexpected error")
	}

	meta := pkgerrors.MetadataFor(typed.Code())

	msg := meta.PublicMessage
	switch typed.Code() {
	case pkgerrors.CodeValidation,
		pkgerrors.CodeNotFound,
		pkgerrors.CodeIdempotency:
		if m := typed.Message(); m != "" {
			msg = m
		}
	case pkgerrors.CodeUpstreamUnavailable:
		if m := typed.Diagnostic(); m != "" {
			msg = m
		}
	}

	payload := types.ErrorBody{
		Error: msg,
		Code:  string(typed.Code()),
	}

	if meta.DetailsAllowed {
		if details := typed.Details(); details != nil {
			payload.Details = details
		}
	}

	if logg != nil {
		dump := pkgerrors.Dump(err)
		ctx = logg.WithFields(ctx, map[string]any{
			"error":       dump.TopMessage,
			"error_code":  dump.Code,
			"error_chain": dump.Chain,
		})
		logg.Error(ctx, "request.error", err)
	}

	writeJSON(w, meta.HTTPStatus, payload)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf(`{"level":"error","msg":"failed to encode response","err":"%v"}`, err)
	}
}
