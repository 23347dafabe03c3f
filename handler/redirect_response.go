package handler

import "net/http"

type redirectResponse struct {
	url    string
	status int
}

func (r redirectResponse) Render(w http.ResponseWriter, req *http.Request) error {
	w.Header().Set("Cache-Control", "no-store")
	http.Redirect(w, req, r.url, r.status)
	return nil
}

// Redirect responds with 302 Found pointing at url.
func Redirect(url string) Response {
	return redirectResponse{url: url, status: http.StatusFound}
}

// RedirectWithStatus responds with a custom 3xx status.
func RedirectWithStatus(url string, status int) Response {
	if status < 300 || status > 399 {
		status = http.StatusFound
	}
	return redirectResponse{url: url, status: status}
}
