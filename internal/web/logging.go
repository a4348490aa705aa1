package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/zeromicro/go-zero/core/logx"
)

func accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		// the upgrader needs the raw writer to hijack
		if websocket.IsWebSocketUpgrade(r) {
			next.ServeHTTP(w, r)
			logx.WithContext(r.Context()).WithDuration(time.Since(start)).Infow("ws closed",
				logx.Field("path", r.URL.Path),
				logx.Field("request_id", middleware.GetReqID(r.Context())))
			return
		}
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		logx.WithContext(r.Context()).WithDuration(time.Since(start)).Infow("http",
			logx.Field("method", r.Method),
			logx.Field("path", r.URL.Path),
			logx.Field("status", ww.Status()),
			logx.Field("bytes", ww.BytesWritten()),
			logx.Field("request_id", middleware.GetReqID(r.Context())))
	})
}
