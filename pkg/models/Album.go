package models

import "github.com/adampresley/adamgokit/slices"

/*
AlbumID identifies one of the fixed album buckets images are filed under.
*/
type AlbumID string

const (
	AlbumPerkemahan     AlbumID = "perkemahan"
	AlbumLomba          AlbumID = "lomba"
	AlbumPelantikan     AlbumID = "pelantikan"
	AlbumKegiatanSosial AlbumID = "kegiatan-sosial"
	AlbumLatgab         AlbumID = "latgab"
	AlbumUpacara        AlbumID = "upacara"
	AlbumHariBesar      AlbumID = "hari-besar"
	AlbumKreativitas    AlbumID = "kreativitas"
	AlbumLainnya        AlbumID = "lainnya"
)

// DefaultAlbum is used when an upload doesn't name an album.
const DefaultAlbum = AlbumLainnya

type Album struct {
	ID   AlbumID
	Name string
}

/*
Catalog is the closed list of albums, in display order.
*/
var Catalog = []Album{
	{ID: AlbumPerkemahan, Name: "Perkemahan"},
	{ID: AlbumLomba, Name: "Lomba Pramuka"},
	{ID: AlbumPelantikan, Name: "Pelantikan"},
	{ID: AlbumKegiatanSosial, Name: "Kegiatan Sosial"},
	{ID: AlbumLatgab, Name: "Latihan Gabungan"},
	{ID: AlbumUpacara, Name: "Upacara Bendera"},
	{ID: AlbumHariBesar, Name: "Hari Besar Nasional"},
	{ID: AlbumKreativitas, Name: "Kreativitas Anggota"},
	{ID: AlbumLainnya, Name: "Lainnya"},
}

func CatalogIDs() []AlbumID {
	return slices.Map(Catalog, func(input Album, index int) AlbumID {
		return input.ID
	})
}

func (id AlbumID) IsKnown() bool {
	return slices.IsInSlice(id, CatalogIDs())
}

/*
ParseAlbumID turns user input into a catalog album. Empty input maps to
DefaultAlbum. The second return is false for anything outside the catalog.
*/
func ParseAlbumID(s string) (AlbumID, bool) {
	if s == "" {
		return DefaultAlbum, true
	}

	id := AlbumID(s)
	return id, id.IsKnown()
}

func FindAlbum(id AlbumID) (Album, bool) {
	for _, album := range Catalog {
		if album.ID == id {
			return album, true
		}
	}

	return Album{}, false
}
