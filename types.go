package songlink

// EntityType represents the kind of music entity a query resolves
type EntityType string

const (
	// EntityTypeSong represents a single track
	EntityTypeSong EntityType = "song"
	// EntityTypeAlbum represents a full album
	EntityTypeAlbum EntityType = "album"
)

// PlatformName identifies a streaming platform supported by the API
type PlatformName string

// Platform keys recognized by the v1-alpha.1 API.
const (
	PlatformSpotify      PlatformName = "spotify"
	PlatformItunes       PlatformName = "itunes"
	PlatformAppleMusic   PlatformName = "appleMusic"
	PlatformYoutube      PlatformName = "youtube"
	PlatformYoutubeMusic PlatformName = "youtubeMusic"
	PlatformGoogle       PlatformName = "google"
	PlatformGoogleStore  PlatformName = "googleStore"
	PlatformPandora      PlatformName = "pandora"
	PlatformDeezer       PlatformName = "deezer"
	PlatformTidal        PlatformName = "tidal"
	PlatformAmazonStore  PlatformName = "amazonStore"
	PlatformAmazonMusic  PlatformName = "amazonMusic"
	PlatformSoundcloud   PlatformName = "soundcloud"
	PlatformNapster      PlatformName = "napster"
	PlatformYandex       PlatformName = "yandex"
	PlatformSpinrilla    PlatformName = "spinrilla"
	PlatformAudius       PlatformName = "audius"
	PlatformAudiomack    PlatformName = "audiomack"
	PlatformAnghami      PlatformName = "anghami"
	PlatformBoomplay     PlatformName = "boomplay"
)

var knownPlatforms = map[PlatformName]struct{}{
	PlatformSpotify:      {},
	PlatformItunes:       {},
	PlatformAppleMusic:   {},
	PlatformYoutube:      {},
	PlatformYoutubeMusic: {},
	PlatformGoogle:       {},
	PlatformGoogleStore:  {},
	PlatformPandora:      {},
	PlatformDeezer:       {},
	PlatformTidal:        {},
	PlatformAmazonStore:  {},
	PlatformAmazonMusic:  {},
	PlatformSoundcloud:   {},
	PlatformNapster:      {},
	PlatformYandex:       {},
	PlatformSpinrilla:    {},
	PlatformAudius:       {},
	PlatformAudiomack:    {},
	PlatformAnghami:      {},
	PlatformBoomplay:     {},
}

// Known reports whether the name is one of the recognized platform keys
func (p PlatformName) Known() bool {
	_, ok := knownPlatforms[p]
	return ok
}

// APIProvider identifies the upstream data source that supplied entity metadata
type APIProvider string

// Providers recognized by the v1-alpha.1 API.
const (
	ProviderSpotify    APIProvider = "spotify"
	ProviderItunes     APIProvider = "itunes"
	ProviderYoutube    APIProvider = "youtube"
	ProviderGoogle     APIProvider = "google"
	ProviderPandora    APIProvider = "pandora"
	ProviderDeezer     APIProvider = "deezer"
	ProviderTidal      APIProvider = "tidal"
	ProviderAmazon     APIProvider = "amazon"
	ProviderSoundcloud APIProvider = "soundcloud"
	ProviderNapster    APIProvider = "napster"
	ProviderYandex     APIProvider = "yandex"
	ProviderSpinrilla  APIProvider = "spinrilla"
	ProviderAudius     APIProvider = "audius"
	ProviderAudiomack  APIProvider = "audiomack"
	ProviderAnghami    APIProvider = "anghami"
	ProviderBoomplay   APIProvider = "boomplay"
)

var knownProviders = map[APIProvider]struct{}{
	ProviderSpotify:    {},
	ProviderItunes:     {},
	ProviderYoutube:    {},
	ProviderGoogle:     {},
	ProviderPandora:    {},
	ProviderDeezer:     {},
	ProviderTidal:      {},
	ProviderAmazon:     {},
	ProviderSoundcloud: {},
	ProviderNapster:    {},
	ProviderYandex:     {},
	ProviderSpinrilla:  {},
	ProviderAudius:     {},
	ProviderAudiomack:  {},
	ProviderAnghami:    {},
	ProviderBoomplay:   {},
}

// Known reports whether the name is one of the recognized provider values
func (p APIProvider) Known() bool {
	_, ok := knownProviders[p]
	return ok
}

// Thumbnail holds entity artwork metadata
type Thumbnail struct {
	URL    string
	Width  int
	Height int
}

// Entity represents one canonical music entity resolved by a query
type Entity struct {
	UniqueID   string
	Type       EntityType
	Title      string
	ArtistName string
	Thumbnail  Thumbnail
	Provider   APIProvider
	Platforms  []PlatformName
}

// PlatformLink represents one platform's link for a queried entity
type PlatformLink struct {
	Platform PlatformName
	Country  string
	// EntityUniqueID references an entry in Response.EntitiesByUniqueID
	EntityUniqueID      string
	URL                 string
	NativeAppURIMobile  string
	NativeAppURIDesktop string
}

// Response is the typed result of one links query
type Response struct {
	EntityUniqueID     string
	UserCountry        string
	PageURL            string
	EntitiesByUniqueID map[string]Entity
	LinksByPlatform    map[PlatformName]PlatformLink
}

// apiEnvelope mirrors the JSON body of a links response. Failure bodies
// reuse the same envelope and only carry Code.
type apiEnvelope struct {
	EntityUniqueID     string               `json:"entityUniqueId"`
	UserCountry        string               `json:"userCountry"`
	PageURL            string               `json:"pageUrl"`
	EntitiesByUniqueID map[string]apiEntity `json:"entitiesByUniqueId"`
	LinksByPlatform    map[string]apiLink   `json:"linksByPlatform"`
	Code               string               `json:"code"`
}

type apiEntity struct {
	ID              string   `json:"id"`
	Type            string   `json:"type"`
	Title           string   `json:"title"`
	ArtistName      string   `json:"artistName"`
	ThumbnailURL    string   `json:"thumbnailUrl"`
	ThumbnailWidth  int      `json:"thumbnailWidth"`
	ThumbnailHeight int      `json:"thumbnailHeight"`
	APIProvider     string   `json:"apiProvider"`
	Platforms       []string `json:"platforms"`
}

type apiLink struct {
	Country             string `json:"country"`
	EntityUniqueID      string `json:"entityUniqueId"`
	URL                 string `json:"url"`
	NativeAppURIMobile  string `json:"nativeAppUriMobile"`
	NativeAppURIDesktop string `json:"nativeAppUriDesktop"`
}

// empty reports whether the body carries neither result data nor an error
// code. Success bodies always carry entityUniqueId.
func (e *apiEnvelope) empty() bool {
	return e.EntityUniqueID == "" && e.Code == "" &&
		len(e.EntitiesByUniqueID) == 0 && len(e.LinksByPlatform) == 0
}

// newResponse maps a decoded links body onto the typed model. Entities from
// unrecognized providers and links for unrecognized platforms are dropped
// silently; an entity's platform list is filtered the same way.
func newResponse(body *apiEnvelope, sentCountry string) *Response {
	country := body.UserCountry
	if country == "" {
		country = sentCountry
	}
	if country == "" {
		country = "US"
	}

	resp := &Response{
		EntityUniqueID:     body.EntityUniqueID,
		UserCountry:        country,
		PageURL:            body.PageURL,
		EntitiesByUniqueID: make(map[string]Entity, len(body.EntitiesByUniqueID)),
		LinksByPlatform:    make(map[PlatformName]PlatformLink, len(body.LinksByPlatform)),
	}

	for id, entity := range body.EntitiesByUniqueID {
		provider := APIProvider(entity.APIProvider)
		if !provider.Known() {
			continue
		}

		platforms := make([]PlatformName, 0, len(entity.Platforms))
		for _, name := range entity.Platforms {
			if platform := PlatformName(name); platform.Known() {
				platforms = append(platforms, platform)
			}
		}

		uniqueID := entity.ID
		if uniqueID == "" {
			uniqueID = id
		}

		resp.EntitiesByUniqueID[id] = Entity{
			UniqueID:   uniqueID,
			Type:       EntityType(entity.Type),
			Title:      entity.Title,
			ArtistName: entity.ArtistName,
			Thumbnail: Thumbnail{
				URL:    entity.ThumbnailURL,
				Width:  entity.ThumbnailWidth,
				Height: entity.ThumbnailHeight,
			},
			Provider:  provider,
			Platforms: platforms,
		}
	}

	for name, link := range body.LinksByPlatform {
		platform := PlatformName(name)
		if !platform.Known() {
			continue
		}

		resp.LinksByPlatform[platform] = PlatformLink{
			Platform:            platform,
			Country:             link.Country,
			EntityUniqueID:      link.EntityUniqueID,
			URL:                 link.URL,
			NativeAppURIMobile:  link.NativeAppURIMobile,
			NativeAppURIDesktop: link.NativeAppURIDesktop,
		}
	}

	return resp
}
