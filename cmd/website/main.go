package main

import (
	"context"
	"embed"
	"encoding/gob"
	"log/slog"
	"net/http"
	"os"
	"sync/atomic"
	"time"

	"github.com/adampresley/adamgokit/awsconfig"
	"github.com/adampresley/adamgokit/httphelpers"
	"github.com/adampresley/adamgokit/mux"
	"github.com/adampresley/adamgokit/rendering"
	"github.com/adampresley/adamgokit/retrier"
	"github.com/adampresley/adamgokit/s3"
	"github.com/adampresley/adamgokit/sessions"
	"github.com/adampresley/scoutgallery/cmd/website/internal/admin"
	"github.com/adampresley/scoutgallery/cmd/website/internal/configuration"
	"github.com/adampresley/scoutgallery/cmd/website/internal/home"
	"github.com/adampresley/scoutgallery/cmd/website/internal/linkcheck"
	"github.com/adampresley/scoutgallery/cmd/website/internal/pages"
	"github.com/adampresley/scoutgallery/pkg/imagehost"
	"github.com/adampresley/scoutgallery/pkg/models"
	"github.com/adampresley/scoutgallery/pkg/services"
	"github.com/adampresley/scoutgallery/pkg/storage"
	"github.com/joho/godotenv"
)

var (
	Version string = "development"
	appName string = "scoutgallery"

	//go:embed app
	appFS embed.FS

	config configuration.Config

	/* Services */
	batchUploadService   services.BatchUploadServicer
	contactService       services.ContactServicer
	galleryService       services.GalleryServicer
	imagePipelineService services.ImagePipelineServicer
	linkChecker          linkcheck.LinkChecker
	renderer             rendering.TemplateRenderer
	sessionService       sessions.Session[*models.Admin]

	/* Controllers */
	adminController admin.AdminController
	homeController  home.HomeHandlers
)

func main() {
	var (
		err      error
		s3Client s3.S3Client
		backend  storage.Backend
		host     imagehost.Host
	)

	if err = godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Error("error loading .env file", "error", err)
	}

	config = configuration.LoadConfig()
	setupLogger(&config, Version)

	slog.Info("configuration loaded",
		slog.String("app", appName),
		slog.String("version", Version),
		slog.String("loglevel", config.LogLevel),
		slog.String("host", config.Host),
		slog.String("storageBackend", config.StorageBackend),
		slog.String("imageHost", config.ImageHost),
	)

	slog.Debug("setting up...")

	shutdownCtx, cancel := context.WithCancel(context.Background())

	/*
	 * Setup services
	 */
	if config.StorageBackend == storage.KindS3 || config.ImageHost == imagehost.KindS3 {
		s3Client = setupS3Client()
	}

	backend, err = storage.Open(storage.OpenConfig{
		Kind:     config.StorageBackend,
		DataDir:  config.DataDir,
		DSN:      config.DSN,
		Bucket:   config.AwsBucket,
		Prefix:   config.GalleryPrefix,
		S3Client: s3Client,
	})

	if err != nil {
		panic(err)
	}

	host, err = imagehost.New(imagehost.NewConfig{
		Kind:          config.ImageHost,
		CloudName:     config.CloudName,
		UploadPreset:  config.UploadPreset,
		Bucket:        config.AwsBucket,
		Folder:        config.ImageFolder,
		PublicBaseURL: config.ImagePublicBaseURL,
		S3Client:      s3Client,
	})

	if err != nil {
		panic(err)
	}

	gob.Register(&models.Admin{})

	cookieStore := sessions.NewCookieStore(config.CookieSecret)
	sessionService = sessions.NewSessionWrapper[*models.Admin](cookieStore, "scoutgalleryadmin", "admin")

	renderer, err = rendering.NewGoTemplateRenderer(rendering.GoTemplateRendererConfig{
		TemplateDir:       "app",
		TemplateExtension: ".html",
		TemplateFS:        appFS,
		PagesDir:          "pages",
	})

	if err != nil {
		panic(err)
	}

	galleryService = services.NewGalleryService(services.GalleryServiceConfig{
		Backend: backend,
		Slot:    config.GallerySlot,
	})

	imagePipelineService = services.NewImagePipelineService(services.ImagePipelineServiceConfig{
		Host:     host,
		MaxWidth: services.DefaultMaxWidth,
		Quality:  services.DefaultQuality,
	})

	batchUploadService = services.NewBatchUploadService(services.BatchUploadServiceConfig{
		GalleryService:       galleryService,
		ImagePipelineService: imagePipelineService,
	})

	contactService = services.NewContactService(services.ContactServiceConfig{
		EmailApiKey: config.EmailApiKey,
		FromName:    "Scout Gallery",
		FromEmail:   "noreply@scoutgallery.example.com",
		ToName:      config.ContactToName,
		ToEmail:     config.ContactToEmail,
	})

	linkChecker = linkcheck.NewLinkCheckerService(linkcheck.LinkCheckerConfig{
		GalleryService: galleryService,
		MaxWorkers:     config.MaxLinkCheckWorkers,
		ShutdownCtx:    shutdownCtx,
	})

	/*
	 * Setup controllers
	 */
	adminController = admin.NewAdminController(admin.AdminControllerConfig{
		BatchUploadService: batchUploadService,
		GalleryService:     galleryService,
		LinkChecker:        linkChecker,
		MaxUploadBytes:     int64(config.MaxUploadMB) << 20,
		Password:           config.AdminPassword,
		Renderer:           pages.FromTemplates(renderer),
		SessionService:     sessionService,
		Username:           config.AdminUsername,
	})

	homeController = home.NewHomeController(home.HomeControllerConfig{
		ContactService: contactService,
		GalleryService: galleryService,
		LinkChecker:    linkChecker,
		Renderer:       pages.FromTemplates(renderer),
	})

	/*
	 * Setup router and http server
	 */
	slog.Debug("setting up routes...")

	adminMiddleware := newAdminMiddleware(
		sessionService,
		[]string{
			"/static",
			"/admin/login",
		},
	)

	routes := []mux.Route{
		{Path: "GET /heartbeat", HandlerFunc: heartbeat},
		{Path: "GET /", HandlerFunc: homeController.HomePage},
		{Path: "POST /contact", HandlerFunc: homeController.ContactAction},
		{Path: "GET /admin/login", HandlerFunc: adminController.LoginPage},
		{Path: "POST /admin/login", HandlerFunc: adminController.LoginAction},
		{Path: "GET /admin/logout", HandlerFunc: adminController.LogoutAction},
		{Path: "GET /admin", HandlerFunc: adminController.DashboardPage, Middlewares: []mux.MiddlewareFunc{adminMiddleware}},
		{Path: "GET /admin/", HandlerFunc: adminController.DashboardPage, Middlewares: []mux.MiddlewareFunc{adminMiddleware}},
		{Path: "POST /admin/upload", HandlerFunc: adminController.UploadAction, Middlewares: []mux.MiddlewareFunc{adminMiddleware}},
		{Path: "POST /admin/albums/{album}/images/{index}/delete", HandlerFunc: adminController.DeleteImageAction, Middlewares: []mux.MiddlewareFunc{adminMiddleware}},
	}

	routerConfig := mux.RouterConfig{
		Address:              config.Host,
		Debug:                Version == "development",
		ServeStaticContent:   true,
		StaticContentRootDir: "app",
		StaticContentPrefix:  "/static/",
		StaticFS:             appFS,
		HttpWriteTimeout:     300,
	}

	m := mux.SetupRouter(routerConfig, routes)
	httpServer, quit := mux.SetupServer(routerConfig, m)

	/*
	 * Start the link checker job
	 */
	setupLinkChecker(quit, time.Duration(config.LinkCheckMinutes)*time.Minute)

	/*
	 * Wait for graceful shutdown
	 */
	slog.Info("server started")

	<-quit

	cancel()
	mux.Shutdown(httpServer)
	slog.Info("server stopped")
}

func heartbeat(w http.ResponseWriter, r *http.Request) {
	httphelpers.TextOK(w, "OK")
}

func setupS3Client() s3.S3Client {
	var (
		err error
	)

	awsConfig := &awsconfig.Config{
		Endpoint:        config.AwsEndpointUrl,
		Region:          config.AwsRegion,
		AccessKeyID:     config.AwsAccessKeyId,
		SecretAccessKey: config.AwsSecretAccessKey,
	}

	retrier.Retry(func() error {
		if err = awsConfig.Load(); err != nil {
			slog.Error("failed to load AWS config. trying again", "error", err)
			return err
		}

		return nil
	})

	if err != nil {
		panic(err)
	}

	s3Client, err := s3.NewClient(awsConfig)

	if err != nil {
		panic(err)
	}

	return s3Client
}

func setupLinkChecker(quit chan os.Signal, interval time.Duration) {
	if interval <= 0 {
		interval = time.Hour
	}

	go func() {
		var running atomic.Bool

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		runner := func() {
			running.Store(true)
			defer running.Store(false)

			linkChecker.CheckLinks()
		}

		runner()

		for {
			select {
			case <-quit:
				return

			case <-ticker.C:
				if running.Load() {
					slog.Info("link checker already running. skipping...")
					continue
				}

				runner()
			}
		}
	}()
}
