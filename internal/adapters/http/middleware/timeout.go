package middleware

import (
	"context"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/taskboard/internal/adapters/http/dto"
)

// Timeout bounds each request to d. The handler runs against a buffered
// writer with a deadline on its context; if it has not returned when the
// deadline passes, the client gets a 504 problem and anything the handler
// writes afterwards fails with http.ErrHandlerTimeout.
//
// A panic in the handler is carried back to the serving goroutine so that
// Recovery, which sits outside Timeout, still sees it.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			bw := &bufferedWriter{header: make(http.Header)}
			done := make(chan struct{})
			panicked := make(chan any, 1)

			go func() {
				defer func() {
					if v := recover(); v != nil {
						panicked <- v
					}
				}()
				next.ServeHTTP(bw, r.WithContext(ctx))
				close(done)
			}()

			select {
			case v := <-panicked:
				panic(v)
			case <-done:
				bw.commit(w)
			case <-ctx.Done():
				bw.expire()
				dto.WriteProblem(w, r, http.StatusGatewayTimeout, ctx.Err())
			}
		})
	}
}

// bufferedWriter holds the handler's response until Timeout decides
// whether it reaches the client.
type bufferedWriter struct {
	mu      sync.Mutex
	header  http.Header
	body    []byte
	status  int
	expired bool
}

func (bw *bufferedWriter) Header() http.Header {
	return bw.header
}

func (bw *bufferedWriter) WriteHeader(code int) {
	bw.mu.Lock()
	defer bw.mu.Unlock()

	if bw.expired || bw.status != 0 {
		return
	}
	bw.status = code
}

func (bw *bufferedWriter) Write(b []byte) (int, error) {
	bw.mu.Lock()
	defer bw.mu.Unlock()

	if bw.expired {
		return 0, http.ErrHandlerTimeout
	}
	if bw.status == 0 {
		bw.status = http.StatusOK
	}
	bw.body = append(bw.body, b...)
	return len(b), nil
}

func (bw *bufferedWriter) expire() {
	bw.mu.Lock()
	bw.expired = true
	bw.mu.Unlock()
}

// commit copies the buffered response to w. The handler has returned, so
// the header map is no longer written concurrently.
func (bw *bufferedWriter) commit(w http.ResponseWriter) {
	bw.mu.Lock()
	defer bw.mu.Unlock()

	maps.Copy(w.Header(), bw.header)
	if bw.status != 0 {
		w.WriteHeader(bw.status)
	}
	if len(bw.body) > 0 {
		_, _ = w.Write(bw.body)
	}
}
