package linkcheck

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/adampresley/scoutgallery/pkg/services"
	"github.com/alitto/pond/v2"
)

type LinkChecker interface {
	CheckLinks()
	IsBroken(url string) bool
}

type LinkCheckerConfig struct {
	GalleryService services.GalleryServicer
	HttpClient     *http.Client
	MaxWorkers     int
	ShutdownCtx    context.Context
}

/*
LinkCheckerService remembers which gallery URLs stopped resolving so the
pages can show a placeholder in their place.
*/
type LinkCheckerService struct {
	galleryService services.GalleryServicer
	httpClient     *http.Client
	maxWorkers     int
	shutdownCtx    context.Context

	lock   *sync.RWMutex
	broken map[string]struct{}
}

func NewLinkCheckerService(config LinkCheckerConfig) LinkCheckerService {
	if config.HttpClient == nil {
		config.HttpClient = &http.Client{Timeout: time.Second * 15}
	}

	if config.MaxWorkers <= 0 {
		config.MaxWorkers = 1
	}

	if config.ShutdownCtx == nil {
		config.ShutdownCtx = context.Background()
	}

	return LinkCheckerService{
		galleryService: config.GalleryService,
		httpClient:     config.HttpClient,
		maxWorkers:     config.MaxWorkers,
		shutdownCtx:    config.ShutdownCtx,
		lock:           &sync.RWMutex{},
		broken:         map[string]struct{}{},
	}
}

func (c LinkCheckerService) CheckLinks() {
	var (
		resultLock sync.Mutex
	)

	urls := c.galleryService.Read(c.shutdownCtx).AllURLs()
	broken := map[string]struct{}{}

	slog.Info("starting link check...", "numLinks", len(urls))

	pool := pond.NewPool(c.maxWorkers, pond.WithContext(c.shutdownCtx))

	for _, u := range urls {
		pool.Submit(func() {
			if err := c.check(u); err != nil {
				slog.Warn("image link is broken", "url", u, "error", err)

				resultLock.Lock()
				broken[u] = struct{}{}
				resultLock.Unlock()
			}
		})
	}

	_ = pool.Stop().Wait()

	if c.shutdownCtx.Err() != nil {
		slog.Info("link check interrupted by shutdown. keeping previous results")
		return
	}

	c.lock.Lock()
	clear(c.broken)
	for u := range broken {
		c.broken[u] = struct{}{}
	}
	c.lock.Unlock()

	slog.Info("link check finished", "numLinks", len(urls), "numBroken", len(broken))
}

func (c LinkCheckerService) IsBroken(url string) bool {
	c.lock.RLock()
	defer c.lock.RUnlock()

	_, ok := c.broken[url]
	return ok
}

func (c LinkCheckerService) check(url string) error {
	var (
		err      error
		request  *http.Request
		response *http.Response
	)

	if request, err = http.NewRequestWithContext(c.shutdownCtx, http.MethodHead, url, nil); err != nil {
		return fmt.Errorf("error creating request for '%s': %w", url, err)
	}

	if response, err = c.httpClient.Do(request); err != nil {
		return fmt.Errorf("error requesting '%s': %w", url, err)
	}

	defer response.Body.Close()

	if response.StatusCode == http.StatusNotFound || response.StatusCode == http.StatusGone || response.StatusCode >= 500 {
		return fmt.Errorf("unexpected status for '%s': %s", url, response.Status)
	}

	return nil
}
