package server

import (
	"net"
	"net/http"
	"os"
	"time"

	"github.com/campusdir/campusdir/engine/core"
	"github.com/campusdir/campusdir/engine/infra/server/router"
	"github.com/campusdir/campusdir/engine/infra/server/routes"
	"github.com/gin-gonic/gin"
)

// healthBody reports liveness: a fixed status, the current time, the resolved
// host address, and an echo of whatever the caller supplied. There is no
// failure path.
type healthBody struct {
	Status        int     `json:"status"`
	StatusMessage string  `json:"status_message"`
	Timestamp     string  `json:"timestamp"`
	IPAddress     string  `json:"ip_address"`
	Echo          *string `json:"echo"`
	PathEcho      *string `json:"path_echo"`
}

func registerHealthRoutes(r *gin.Engine) {
	r.GET(routes.Health(), healthHandler)
	r.GET(routes.Health()+"/:path_echo", healthHandler)
}

// healthHandler serves both health routes; the path echo segment is only
// bound on the parameterized one.
//
//	@Summary		Get server health
//	@Description	Always returns 200 with a timestamp, the resolved host address, and optional echoes
//	@Tags			health
//	@Produce		json
//	@Param			path_echo	path	string	false	"Echo in the URL path"
//	@Param			echo		query	string	false	"Optional echo string"
//	@Success		200	{object}	healthBody	"Service is alive"
//	@Router			/health [get]
func healthHandler(c *gin.Context) {
	var pathEcho *string
	if v := c.Param("path_echo"); v != "" {
		pathEcho = &v
	}
	c.JSON(http.StatusOK, healthBody{
		Status:        http.StatusOK,
		StatusMessage: "OK",
		Timestamp:     core.Now().Format(time.RFC3339Nano),
		IPAddress:     resolveHostAddress(),
		Echo:          router.QueryValue(c, "echo"),
		PathEcho:      pathEcho,
	})
}

// resolveHostAddress returns the first address the hostname resolves to,
// falling back to loopback when resolution is unavailable.
func resolveHostAddress() string {
	host, err := os.Hostname()
	if err != nil {
		return hostLoopback
	}
	addrs, err := net.LookupHost(host)
	if err != nil || len(addrs) == 0 {
		return hostLoopback
	}
	return addrs[0]
}
