package vegalite

// ProjectionType enumerates the cartographic projections for geoshape marks.
type ProjectionType string

const (
	AlbersUsa      ProjectionType = "albersUsa"
	Albers         ProjectionType = "albers"
	AzimuthalEqual ProjectionType = "azimuthalEqualArea"
	ConicEqualArea ProjectionType = "conicEqualArea"
	EqualEarth     ProjectionType = "equalEarth"
	Equirect       ProjectionType = "equirectangular"
	Gnomonic       ProjectionType = "gnomonic"
	Mercator       ProjectionType = "mercator"
	NaturalEarth1  ProjectionType = "naturalEarth1"
	Orthographic   ProjectionType = "orthographic"
	Stereographic  ProjectionType = "stereographic"
	TransverseMerc ProjectionType = "transverseMercator"
)

var projectionTypes = map[ProjectionType]struct{}{
	AlbersUsa: {}, Albers: {}, AzimuthalEqual: {}, ConicEqualArea: {},
	EqualEarth: {}, Equirect: {}, Gnomonic: {}, Mercator: {},
	NaturalEarth1: {}, Orthographic: {}, Stereographic: {}, TransverseMerc: {},
}

// Projection maps geographic coordinates onto the plane for geoshape marks.
type Projection struct {
	Type      ProjectionType `json:"type,omitempty"`
	Scale     *float64       `json:"scale,omitempty"`
	Center    []float64      `json:"center,omitempty"`
	Rotate    []float64      `json:"rotate,omitempty"`
	Translate []float64      `json:"translate,omitempty"`
}
