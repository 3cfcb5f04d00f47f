package http_fx

import (
	"net/http"

	"go.uber.org/fx"

	"plingplan/internal/infra"
)

var Module = fx.Provide(ProvideHTTPClient)

// ProvideHTTPClient is the shared client for every upstream proxy call.
func ProvideHTTPClient(cfg *infra.Config) *http.Client {
	return &http.Client{Timeout: cfg.UpstreamTimeout}
}
