package usecase

import (
	"time"

	"statistics/internal/domain/entity"

	"github.com/paulmach/orb/geojson"
)

// LocationDTO is the flat location shape used in reports
type LocationDTO struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
}

// RemarkStateDTO is the flat transport shape of a remark's statistics
type RemarkStateDTO struct {
	State       string      `json:"state"`
	UserID      string      `json:"userId"`
	Description string      `json:"description"`
	Location    LocationDTO `json:"location"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// NewRemarkStateDTO flattens the aggregate into its transport shape.
func NewRemarkStateDTO(stats *entity.RemarkStatistics) *RemarkStateDTO {
	location := stats.Location()

	return &RemarkStateDTO{
		State:       stats.State().String(),
		UserID:      stats.Author().ID(),
		Description: stats.Description(),
		Location: LocationDTO{
			Latitude:  location.Latitude(),
			Longitude: location.Longitude(),
			Address:   location.Address(),
		},
		CreatedAt: stats.CreatedAt(),
	}
}

// NewRemarkFeature renders the aggregate as a GeoJSON feature for map consumers.
func NewRemarkFeature(stats *entity.RemarkStatistics) *geojson.Feature {
	feature := geojson.NewFeature(stats.Location().Point())
	feature.ID = stats.RemarkID().String()
	feature.Properties["remarkId"] = stats.RemarkID().String()
	feature.Properties["category"] = stats.Category()
	feature.Properties["state"] = stats.State().String()
	feature.Properties["userId"] = stats.Author().ID()
	feature.Properties["address"] = stats.Location().Address()
	feature.Properties["tags"] = stats.Tags()
	feature.Properties["votes"] = len(stats.Votes())
	feature.Properties["createdAt"] = stats.CreatedAt()

	return feature
}
