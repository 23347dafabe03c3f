package generator

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/qrkit/handler"
	"github.com/dmitrymomot/qrkit/pkg/links"
)

type linkService struct {
	links        *links.Service
	trackingURL  string
	errorHandler handler.ErrorHandler
}

// CreateLinkRequest is the POST /links body.
type CreateLinkRequest struct {
	Destination string `json:"destination" form:"destination"`
}

// LinkResponse describes a tracked link.
type LinkResponse struct {
	Code        string    `json:"code"`
	Destination string    `json:"destination"`
	TrackingURL string    `json:"tracking_url"`
	Visits      int64     `json:"visits"`
	CreatedAt   time.Time `json:"created_at"`
}

type codeRequest struct{}

func (s *linkService) createHandler() http.HandlerFunc {
	return handler.Wrap(s.create,
		handler.WithBinders[CreateLinkRequest](bindBody),
		handler.WithErrorHandler[CreateLinkRequest](s.errorHandler),
	)
}

func (s *linkService) showHandler() http.HandlerFunc {
	return handler.Wrap(s.show,
		handler.WithErrorHandler[codeRequest](s.errorHandler),
	)
}

func (s *linkService) redirectHandler() http.HandlerFunc {
	return handler.Wrap(s.redirect,
		handler.WithErrorHandler[codeRequest](s.errorHandler),
	)
}

func (s *linkService) create(ctx handler.Context, req CreateLinkRequest) handler.Response {
	link, err := s.links.Create(ctx, req.Destination)
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(s.response(link), handler.WithJSONStatus(http.StatusCreated))
}

func (s *linkService) show(ctx handler.Context, _ codeRequest) handler.Response {
	link, err := s.links.Resolve(ctx, chi.URLParam(ctx.Request(), "code"))
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(s.response(link))
}

func (s *linkService) redirect(ctx handler.Context, _ codeRequest) handler.Response {
	link, err := s.links.RecordVisit(ctx, chi.URLParam(ctx.Request(), "code"))
	if err != nil {
		return handler.Error(err)
	}
	return handler.Redirect(link.Destination)
}

func (s *linkService) response(link links.Link) LinkResponse {
	return LinkResponse{
		Code:        link.Code,
		Destination: link.Destination,
		TrackingURL: links.TrackingURL(s.trackingURL, link.Code),
		Visits:      link.Visits,
		CreatedAt:   link.CreatedAt,
	}
}
