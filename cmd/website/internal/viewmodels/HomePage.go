package viewmodels

import (
	internalmodels "github.com/adampresley/scoutgallery/cmd/website/internal/models"
)

type HomePage struct {
	BaseViewModel

	Albums       []internalmodels.Album
	Placeholders []string
}
