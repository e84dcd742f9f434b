package admin

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/adampresley/adamgokit/httphelpers"
	"github.com/adampresley/adamgokit/rendering"
	"github.com/adampresley/adamgokit/sessions"
	"github.com/adampresley/scoutgallery/cmd/website/internal/linkcheck"
	internalmodels "github.com/adampresley/scoutgallery/cmd/website/internal/models"
	"github.com/adampresley/scoutgallery/cmd/website/internal/pages"
	"github.com/adampresley/scoutgallery/cmd/website/internal/viewmodels"
	"github.com/adampresley/scoutgallery/pkg/models"
	"github.com/adampresley/scoutgallery/pkg/services"
)

const (
	imageGoneMessage = "That image is no longer in the gallery."
)

type AdminControllerConfig struct {
	BatchUploadService services.BatchUploadServicer
	GalleryService     services.GalleryServicer
	LinkChecker        linkcheck.LinkChecker
	MaxUploadBytes     int64
	Password           string
	Renderer           pages.Renderer
	SessionService     sessions.Session[*models.Admin]
	Username           string
}

/*
AdminController serves the admin dashboard. The username/password pair is
a fixed literal from configuration and only hides the dashboard from
casual visitors.
*/
type AdminController struct {
	batchUploadService services.BatchUploadServicer
	galleryService     services.GalleryServicer
	linkChecker        linkcheck.LinkChecker
	maxUploadBytes     int64
	password           string
	renderer           pages.Renderer
	sessionService     sessions.Session[*models.Admin]
	username           string
}

func NewAdminController(config AdminControllerConfig) AdminController {
	if config.MaxUploadBytes <= 0 {
		config.MaxUploadBytes = 50 << 20
	}

	return AdminController{
		batchUploadService: config.BatchUploadService,
		galleryService:     config.GalleryService,
		linkChecker:        config.LinkChecker,
		maxUploadBytes:     config.MaxUploadBytes,
		password:           config.Password,
		renderer:           config.Renderer,
		sessionService:     config.SessionService,
		username:           config.Username,
	}
}

/*
GET /admin/login
*/
func (c AdminController) LoginPage(w http.ResponseWriter, r *http.Request) {
	viewData := viewmodels.AdminLogin{
		BaseViewModel: viewmodels.BaseViewModel{
			IsHtmx: httphelpers.IsHtmx(r),
		},
	}

	c.renderer.Render("pages/admin/login", viewData, w)
}

/*
POST /admin/login
*/
func (c AdminController) LoginAction(w http.ResponseWriter, r *http.Request) {
	var (
		err error
	)

	viewData := viewmodels.AdminLogin{
		BaseViewModel: viewmodels.BaseViewModel{
			IsHtmx: httphelpers.IsHtmx(r),
		},
		Username: httphelpers.GetFromRequest[string](r, "username"),
	}

	password := httphelpers.GetFromRequest[string](r, "password")

	if viewData.Username != c.username || password != c.password {
		viewData.IsWarning = true
		viewData.Message = "Wrong username or password!"

		c.renderer.Render("pages/admin/login", viewData, w)
		return
	}

	if err = c.sessionService.Set(r, &models.Admin{Username: viewData.Username}); err != nil {
		slog.Error("error setting admin session", "error", err)
	}

	if err = c.sessionService.Save(w, r); err != nil {
		slog.Error("error saving session", "error", err)
	}

	http.Redirect(w, r, "/admin", http.StatusFound)
}

/*
GET /admin/logout
*/
func (c AdminController) LogoutAction(w http.ResponseWriter, r *http.Request) {
	var (
		err error
	)

	if err = c.sessionService.Destroy(w, r); err != nil {
		slog.Error("error destroying admin session", "error", err)
	}

	if err = c.sessionService.Save(w, r); err != nil {
		slog.Error("error saving session", "error", err)
	}

	http.Redirect(w, r, "/admin/login", http.StatusFound)
}

/*
GET /admin
*/
func (c AdminController) DashboardPage(w http.ResponseWriter, r *http.Request) {
	viewData := c.newDashboard(r)
	c.render(w, r, viewData)
}

/*
POST /admin/upload
*/
func (c AdminController) UploadAction(w http.ResponseWriter, r *http.Request) {
	var (
		err    error
		files  []services.ImageFile
		result services.BatchResult
	)

	viewData := c.newDashboard(r)

	if err = r.ParseMultipartForm(c.maxUploadBytes); err != nil {
		slog.Error("error parsing upload form", "error", err)
		viewData.IsError = true
		viewData.Message = "The selected files could not be read. They may be too large."

		c.render(w, r, viewData)
		return
	}

	albumID, ok := models.ParseAlbumID(r.FormValue("album"))
	viewData.SelectedAlbum = string(albumID)

	if !ok {
		viewData.IsWarning = true
		viewData.Message = fmt.Sprintf("Unknown album '%s'.", albumID)

		c.render(w, r, viewData)
		return
	}

	if files, err = readImageFiles(r.MultipartForm.File["files"]); err != nil {
		slog.Error("error reading uploaded files", "error", err)
		viewData.IsError = true
		viewData.Message = "The selected files could not be read."

		c.render(w, r, viewData)
		return
	}

	notifier := &services.CollectingNotifier{}
	result, err = c.batchUploadService.UploadBatch(r.Context(), albumID, files, notifier)
	viewData.Notifications = notifier.Messages

	switch {
	case errors.Is(err, services.ErrNoFilesSelected):
		viewData.IsWarning = true
		viewData.Message = "Select at least one image first!"

	case errors.Is(err, services.ErrBatchInProgress):
		viewData.IsWarning = true
		viewData.Message = "Another upload is still running. Please wait for it to finish."

	case err != nil:
		slog.Error("error running upload batch", "error", err, "album", albumID)
		viewData.IsError = true
		viewData.Message = "The images were uploaded but the gallery could not be saved."

	default:
		slog.Info("upload batch complete", "album", albumID, "uploaded", result.Uploaded, "failed", len(result.Failed))
	}

	c.render(w, r, viewData)
}

/*
POST /admin/albums/{album}/images/{index}/delete
*/
func (c AdminController) DeleteImageAction(w http.ResponseWriter, r *http.Request) {
	var (
		err   error
		index int
	)

	viewData := c.newDashboard(r)

	albumID := models.AlbumID(httphelpers.GetFromRequest[string](r, "album"))
	rawIndex := httphelpers.GetFromRequest[string](r, "index")

	if index, err = strconv.Atoi(rawIndex); err != nil {
		slog.Warn("delete request with a bad image index", "album", albumID, "index", rawIndex)
		viewData.IsWarning = true
		viewData.Message = imageGoneMessage

		c.render(w, r, viewData)
		return
	}

	_, err = c.galleryService.RemoveImage(r.Context(), albumID, index)

	switch {
	case errors.Is(err, models.ErrImageIndexOutOfRange):
		viewData.IsWarning = true
		viewData.Message = imageGoneMessage

	case err != nil:
		slog.Error("error deleting image", "error", err, "album", albumID, "index", index)
		viewData.IsError = true
		viewData.Message = "The image could not be deleted."

	default:
		slog.Info("deleted image", "album", albumID, "index", index)
		viewData.Message = "Image deleted."
	}

	c.render(w, r, viewData)
}

func (c AdminController) newDashboard(r *http.Request) viewmodels.AdminDashboard {
	viewData := viewmodels.AdminDashboard{
		BaseViewModel: viewmodels.BaseViewModel{
			IsHtmx: httphelpers.IsHtmx(r),
			JavascriptIncludes: []rendering.JavascriptInclude{
				{Type: "module", Src: "/static/js/pages/admin.js"},
			},
			Notifications: []string{},
		},
		Admin:         viewmodels.GetAdminFromContext(r),
		Catalog:       models.Catalog,
		SelectedAlbum: string(models.DefaultAlbum),
	}

	return viewData
}

func (c AdminController) refreshAlbums(r *http.Request, viewData *viewmodels.AdminDashboard) {
	gallery := c.galleryService.Read(r.Context())
	viewData.Albums = internalmodels.AlbumsFromGallery(gallery, 0, c.linkChecker.IsBroken)
}

/*
render always reads the gallery again so the page reflects any mutation
made by the action.
*/
func (c AdminController) render(w http.ResponseWriter, r *http.Request, viewData viewmodels.AdminDashboard) {
	c.refreshAlbums(r, &viewData)

	if viewData.IsHtmx {
		c.renderer.Render("pages/admin/image-list", viewData, w)
		return
	}

	c.renderer.Render("pages/admin/dashboard", viewData, w)
}

func readImageFiles(headers []*multipart.FileHeader) ([]services.ImageFile, error) {
	result := make([]services.ImageFile, 0, len(headers))

	for _, header := range headers {
		file, err := readImageFile(header)
		if err != nil {
			return nil, err
		}

		result = append(result, file)
	}

	return result, nil
}

func readImageFile(header *multipart.FileHeader) (services.ImageFile, error) {
	var (
		err  error
		f    multipart.File
		data []byte
	)

	if f, err = header.Open(); err != nil {
		return services.ImageFile{}, fmt.Errorf("error opening uploaded file '%s': %w", header.Filename, err)
	}

	defer f.Close()

	if data, err = io.ReadAll(f); err != nil {
		return services.ImageFile{}, fmt.Errorf("error reading uploaded file '%s': %w", header.Filename, err)
	}

	return services.ImageFile{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
