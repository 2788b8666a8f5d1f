package handler

import (
	"net"
	"net/http"

	"github.com/gorilla/websocket"

	"dmchat/internal/app/chat"
	"dmchat/internal/pkg/errs"
	"dmchat/internal/pkg/limiter"
	"dmchat/internal/pkg/logx"
	"dmchat/internal/pkg/resp"
)

// HandleWebSocket upgrades the connection and binds it to the identity supplied
// in the userId query parameter. The parameter is trusted as pre-validated by
// the login flow; a handshake without it is rejected before the upgrade, so no
// connection ever exists in an unidentified state.
func HandleWebSocket(upgrader *websocket.Upgrader, rateLimiter *limiter.IPRateLimiter, deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		if !rateLimiter.GetLimiter(ip).Allow() {
			logx.Warn("WebSocket connection rate limit exceeded", "ip", ip)
			resp.RespondError(w, r, errs.NewError(errs.ErrRateLimitExceeded))
			return
		}

		userID := r.URL.Query().Get("userId")
		if userID == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}

		wsConn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			// Upgrade has already written the handshake error response.
			logx.Error(err, "WebSocket upgrade failed", "ip", ip)
			return
		}

		client := chat.NewClient(deps.Hub, deps.Transport, wsConn, userID)

		client.Start()

		// Block on the read pump; it performs all cleanup when the connection drops.
		client.ReadPump()
	}
}
