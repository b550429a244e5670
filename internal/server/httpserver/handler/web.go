// Package handler provides HTTP request handlers for DocFold.
package handler

import "net/http"

const infoPage = `<html>
  <head>
    <title>DocFold</title>
  </head>
  <body style='font-family: Verdana,sans-serif;'>
    <h2>
      DocFold
    </h2>
    <i>For development &amp; educational purposes only.<i>
  </body>
</html>
`

// handleInfo handles GET /, serving a static info page.
func (h *Handler) handleInfo(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(infoPage)); err != nil {
		h.logger.Error("failed to write info page", "error", err)
	}
}
