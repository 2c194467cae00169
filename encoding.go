package vegalite

// FieldType is the semantic type of an encoded field.
type FieldType string

const (
	Quantitative FieldType = "quantitative"
	Nominal      FieldType = "nominal"
	Ordinal      FieldType = "ordinal"
	Temporal     FieldType = "temporal"
	GeoJSONType  FieldType = "geojson"
)

var fieldTypes = map[FieldType]struct{}{
	Quantitative: {}, Nominal: {}, Ordinal: {}, Temporal: {}, GeoJSONType: {},
}

// Aggregate enumerates the aggregation operations a channel may request.
type Aggregate string

const (
	Count    Aggregate = "count"
	Sum      Aggregate = "sum"
	Mean     Aggregate = "mean"
	Median   Aggregate = "median"
	Min      Aggregate = "min"
	Max      Aggregate = "max"
	Stdev    Aggregate = "stdev"
	Variance Aggregate = "variance"
	Distinct Aggregate = "distinct"
)

var aggregates = map[Aggregate]struct{}{
	Count: {}, Sum: {}, Mean: {}, Median: {}, Min: {}, Max: {},
	Stdev: {}, Variance: {}, Distinct: {},
}

// TimeUnit enumerates the temporal binning units a channel may request.
type TimeUnit string

const (
	Year         TimeUnit = "year"
	YearMonth    TimeUnit = "yearmonth"
	YearMonthDay TimeUnit = "yearmonthdate"
	Quarter      TimeUnit = "quarter"
	Month        TimeUnit = "month"
	Date         TimeUnit = "date"
	Day          TimeUnit = "day"
	Hours        TimeUnit = "hours"
	Minutes      TimeUnit = "minutes"
)

var timeUnits = map[TimeUnit]struct{}{
	Year: {}, YearMonth: {}, YearMonthDay: {}, Quarter: {}, Month: {},
	Date: {}, Day: {}, Hours: {}, Minutes: {},
}

// Encoding maps data fields to the visual channels of the mark.
type Encoding struct {
	X       *Channel `json:"x,omitempty"`
	Y       *Channel `json:"y,omitempty"`
	X2      *Channel `json:"x2,omitempty"`
	Y2      *Channel `json:"y2,omitempty"`
	Color   *Channel `json:"color,omitempty"`
	Opacity *Channel `json:"opacity,omitempty"`
	Shape   *Channel `json:"shape,omitempty"`
	Size    *Channel `json:"size,omitempty"`
	Order   *Channel `json:"order,omitempty"`
	Tooltip *Channel `json:"tooltip,omitempty"`
	Text    *Channel `json:"text,omitempty"`
}

// Channel maps one field (or a constant value) to a visual property.
type Channel struct {
	Field     string     `json:"field,omitempty"`
	Type      FieldType  `json:"type,omitempty"`
	Aggregate Aggregate  `json:"aggregate,omitempty"`
	TimeUnit  TimeUnit   `json:"timeUnit,omitempty"`
	Bin       any        `json:"bin,omitempty"` // bool or *BinParams
	Scale     *Scale     `json:"scale,omitempty"`
	Axis      *Axis      `json:"axis,omitempty"`
	Legend    *Legend    `json:"legend,omitempty"`
	Sort      string     `json:"sort,omitempty"`
	Title     string     `json:"title,omitempty"`
	Value     any        `json:"value,omitempty"`
	Condition *Condition `json:"condition,omitempty"`
}

// Condition switches a channel between an encoding and a constant value based
// on a test expression.
type Condition struct {
	Test  string    `json:"test,omitempty"`
	Field string    `json:"field,omitempty"`
	Type  FieldType `json:"type,omitempty"`
	Value any       `json:"value,omitempty"`
}

// BinParams tunes binning when a plain Bin: true is not enough.
type BinParams struct {
	MaxBins *int     `json:"maxbins,omitempty"`
	Step    *float64 `json:"step,omitempty"`
}

// Axis mirrors the per-channel axis guide.
type Axis struct {
	Title      string   `json:"title,omitempty"`
	Grid       *bool    `json:"grid,omitempty"`
	Format     string   `json:"format,omitempty"`
	LabelAngle *float64 `json:"labelAngle,omitempty"`
	TickCount  *int     `json:"tickCount,omitempty"`
}

// Legend mirrors the per-channel legend guide.
type Legend struct {
	Title  string `json:"title,omitempty"`
	Orient string `json:"orient,omitempty"`
}

// Scale maps data values into the visual range of a channel.
type Scale struct {
	Type   string   `json:"type,omitempty"`
	Domain []any    `json:"domain,omitempty"`
	Range  []any    `json:"range,omitempty"`
	Scheme string   `json:"scheme,omitempty"`
	Zero   *bool    `json:"zero,omitempty"`
	Base   *float64 `json:"base,omitempty"`
}
