package middleware

import (
	"errors"
	stdhttp "net/http"
	"runtime/debug"

	perr "mastoshim/internal/platform/errors"
	"mastoshim/internal/platform/logger"
	"mastoshim/internal/platform/metrics"
	pnet "mastoshim/internal/platform/net"

	"github.com/bytedance/sonic"
)

// RecoverJSON turns a handler panic into the Mastodon 500 body and logs the stack.
// http.ErrAbortHandler is re-raised so net/http can drop the connection
func RecoverJSON(next stdhttp.Handler) stdhttp.Handler {
	return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if err, ok := v.(error); ok && errors.Is(err, stdhttp.ErrAbortHandler) {
				panic(v)
			}

			fault := perr.Newf(perr.ErrorCodePanic, "%v", v)
			logger.C(r.Context()).Error().
				Err(fault).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Bytes("stack", debug.Stack()).
				Msg("handler panic")

			if id := pnet.RequestID(r.Context()); id != "" {
				w.Header().Set("X-Request-ID", id)
			}
			body, _ := sonic.Marshal(map[string]string{"error": publicOf(fault)})
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(stdhttp.StatusInternalServerError)
			_, _ = w.Write(body)
			metrics.RESTResponse(stdhttp.StatusInternalServerError)
		}()
		next.ServeHTTP(w, r)
	})
}

func publicOf(err error) string {
	if e, ok := perr.As(err); ok {
		return e.Public()
	}
	return "Internal server error"
}
