package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/hlog"
)

// Recovery turns a handler panic into a 500 and logs it with the stack.
// http.ErrAbortHandler is re-raised so net/http can abort the connection.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}

			err, ok := rvr.(error)
			if !ok {
				err = fmt.Errorf("%v", rvr)
			}

			hlog.FromRequest(r).Error().
				Err(err).
				Bytes("stack", debug.Stack()).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Msg("panic recovered")

			body := map[string]string{"error": "internal server error"}
			if id := chimiddleware.GetReqID(r.Context()); id != "" {
				body["request_id"] = id
			}

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(body)
		}()

		next.ServeHTTP(w, r)
	})
}
