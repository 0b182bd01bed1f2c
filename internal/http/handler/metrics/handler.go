package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handler struct {
	http.Handler
}

func NewHandler() *Handler {
	return &Handler{promhttp.Handler()}
}
