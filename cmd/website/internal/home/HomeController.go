package home

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/adampresley/adamgokit/httphelpers"
	"github.com/adampresley/adamgokit/rendering"
	"github.com/adampresley/scoutgallery/cmd/website/internal/linkcheck"
	internalmodels "github.com/adampresley/scoutgallery/cmd/website/internal/models"
	"github.com/adampresley/scoutgallery/cmd/website/internal/pages"
	"github.com/adampresley/scoutgallery/cmd/website/internal/viewmodels"
	"github.com/adampresley/scoutgallery/pkg/services"
)

const (
	visibleImagesPerAlbum = 7
)

type HomeHandlers interface {
	HomePage(w http.ResponseWriter, r *http.Request)
	ContactAction(w http.ResponseWriter, r *http.Request)
}

type HomeControllerConfig struct {
	ContactService services.ContactServicer
	GalleryService services.GalleryServicer
	LinkChecker    linkcheck.LinkChecker
	Renderer       pages.Renderer
}

type HomeController struct {
	contactService services.ContactServicer
	galleryService services.GalleryServicer
	linkChecker    linkcheck.LinkChecker
	renderer       pages.Renderer
}

func NewHomeController(config HomeControllerConfig) HomeController {
	return HomeController{
		contactService: config.ContactService,
		galleryService: config.GalleryService,
		linkChecker:    config.LinkChecker,
		renderer:       config.Renderer,
	}
}

/*
GET /
*/
func (c HomeController) HomePage(w http.ResponseWriter, r *http.Request) {
	viewData := c.newHomePage(r)
	c.renderer.Render("pages/home", viewData, w)
}

/*
POST /contact
*/
func (c HomeController) ContactAction(w http.ResponseWriter, r *http.Request) {
	viewData := c.newHomePage(r)

	message := services.ContactMessage{
		Name:    httphelpers.GetFromRequest[string](r, "name"),
		Email:   httphelpers.GetFromRequest[string](r, "email"),
		Message: httphelpers.GetFromRequest[string](r, "message"),
	}

	err := c.contactService.Send(message)

	if errors.Is(err, services.ErrEmptyContactMessage) {
		viewData.IsWarning = true
		viewData.Message = "Please write a message first."

		c.renderer.Render("pages/home", viewData, w)
		return
	}

	if err != nil {
		slog.Error("error sending contact message", "error", err)
		viewData.IsError = true
		viewData.Message = "Your message could not be sent. Please try again later."

		c.renderer.Render("pages/home", viewData, w)
		return
	}

	viewData.Message = "Message sent!"
	c.renderer.Render("pages/home", viewData, w)
}

func (c HomeController) newHomePage(r *http.Request) viewmodels.HomePage {
	gallery := c.galleryService.Read(r.Context())

	viewData := viewmodels.HomePage{
		BaseViewModel: viewmodels.BaseViewModel{
			IsHtmx: httphelpers.IsHtmx(r),
			JavascriptIncludes: []rendering.JavascriptInclude{
				{Type: "module", Src: "/static/js/pages/gallery.js"},
			},
		},
		Albums:       internalmodels.AlbumsFromGallery(gallery, visibleImagesPerAlbum, c.linkChecker.IsBroken),
		Placeholders: []string{},
	}

	if len(viewData.Albums) == 0 {
		viewData.Placeholders = internalmodels.EmptyGalleryPlaceholders
	}

	return viewData
}
