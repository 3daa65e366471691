package http

import (
	"errors"
	"net/http"
	"strconv"

	"ordering/internal/generated/servers"
	"ordering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// RetryAfterSeconds is advertised on 503 answers to concurrency conflicts.
const RetryAfterSeconds = 1

const kindInternal = "internal"

var statusByKind = map[errs.Kind]int{
	errs.KindValidation:            http.StatusBadRequest,
	errs.KindNotFound:              http.StatusNotFound,
	errs.KindInvalidTransition:     http.StatusConflict,
	errs.KindInsufficientInventory: http.StatusConflict,
	errs.KindOperationNotAllowed:   http.StatusConflict,
	errs.KindConcurrencyConflict:   http.StatusServiceUnavailable,
}

// StatusFor maps an application error to its HTTP status code.
func StatusFor(err error) int {
	if code, ok := statusByKind[errs.KindOf(err)]; ok {
		return code
	}
	return http.StatusInternalServerError
}

func (s *Server) fail(ctx echo.Context, err error) error {
	return writeError(ctx, s.logger, err)
}

func writeError(ctx echo.Context, logger *zap.Logger, err error) error {
	code := StatusFor(err)
	body := servers.Error{Code: code, Kind: string(errs.KindOf(err)), Message: err.Error()}

	switch code {
	case http.StatusInternalServerError:
		logger.Error("request failed",
			zap.String("method", ctx.Request().Method),
			zap.String("path", ctx.Path()),
			zap.Error(err))
		body.Kind = kindInternal
		body.Message = "internal error"
	case http.StatusServiceUnavailable:
		ctx.Response().Header().Set(echo.HeaderRetryAfter, strconv.Itoa(RetryAfterSeconds))
	}

	return ctx.JSON(code, body)
}

// ErrorHandler renders errors escaping the handlers, such as routing and
// parameter binding failures, in the same body shape as use case errors.
func ErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			msg, ok := he.Message.(string)
			if !ok {
				msg = http.StatusText(he.Code)
			}
			err = ctx.JSON(he.Code, servers.Error{Code: he.Code, Kind: kindForStatus(he.Code), Message: msg})
		} else {
			err = writeError(ctx, logger, err)
		}

		if err != nil {
			logger.Error("failed to write error response", zap.Error(err))
		}
	}
}

func kindForStatus(code int) string {
	switch code {
	case http.StatusBadRequest:
		return string(errs.KindValidation)
	case http.StatusNotFound:
		return string(errs.KindNotFound)
	case http.StatusMethodNotAllowed:
		return string(errs.KindOperationNotAllowed)
	default:
		return kindInternal
	}
}

// bindBody decodes the JSON body and reports malformed input as a validation error.
func bindBody(ctx echo.Context, dst any) error {
	if err := ctx.Bind(dst); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request body", err)
	}
	return nil
}
