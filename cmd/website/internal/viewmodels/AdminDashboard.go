package viewmodels

import (
	internalmodels "github.com/adampresley/scoutgallery/cmd/website/internal/models"
	"github.com/adampresley/scoutgallery/pkg/models"
)

type AdminDashboard struct {
	BaseViewModel

	Admin         *models.Admin
	Catalog       []models.Album
	SelectedAlbum string
	Albums        []internalmodels.Album
}

type AdminLogin struct {
	BaseViewModel

	Username string
}
