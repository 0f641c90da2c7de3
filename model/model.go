package model

// Case describes one exchanger to size, as read from a case file or a websocket
// request. Temperatures in K, lengths in m, duty in W.
type Case struct {
	Name          string       `json:"name" yaml:"name"`
	Duty          float64      `json:"duty" yaml:"duty"`
	Hot           StreamCase   `json:"hot" yaml:"hot"`
	Cold          StreamCase   `json:"cold" yaml:"cold"`
	Geometry      GeometryCase `json:"geometry" yaml:"geometry"`
	MaxPassLength float64      `json:"max_pass_length,omitempty" yaml:"max_pass_length,omitempty"`
	Arrangement   string       `json:"arrangement,omitempty" yaml:"arrangement,omitempty"`
	Shells        int          `json:"shells,omitempty" yaml:"shells,omitempty"`
}

// StreamCase names a tabulated fluid and/or gives explicit properties. Explicit
// non-zero properties override the table.
type StreamCase struct {
	Fluid string  `json:"fluid,omitempty" yaml:"fluid,omitempty"`
	TIn   float64 `json:"t_in" yaml:"t_in"`
	TOut  float64 `json:"t_out" yaml:"t_out"`
	Mode  string  `json:"mode,omitempty" yaml:"mode,omitempty"`

	// Temperature the table is read at, default the mean of TIn and TOut.
	PropertyTemperature float64 `json:"property_temperature,omitempty" yaml:"property_temperature,omitempty"`

	Density            float64 `json:"density,omitempty" yaml:"density,omitempty"`
	SpecificHeat       float64 `json:"specific_heat,omitempty" yaml:"specific_heat,omitempty"`
	DynamicViscosity   float64 `json:"dynamic_viscosity,omitempty" yaml:"dynamic_viscosity,omitempty"`
	KinematicViscosity float64 `json:"kinematic_viscosity,omitempty" yaml:"kinematic_viscosity,omitempty"`
	Conductivity       float64 `json:"conductivity,omitempty" yaml:"conductivity,omitempty"`
}

type GeometryCase struct {
	PipeInnerDiameter    float64 `json:"pipe_inner_diameter" yaml:"pipe_inner_diameter"`
	PipeOuterDiameter    float64 `json:"pipe_outer_diameter" yaml:"pipe_outer_diameter"`
	AnnulusInnerDiameter float64 `json:"annulus_inner_diameter" yaml:"annulus_inner_diameter"`
	WallConductivity     float64 `json:"wall_conductivity,omitempty" yaml:"wall_conductivity,omitempty"`
	FoulingInner         float64 `json:"fouling_inner,omitempty" yaml:"fouling_inner,omitempty"`
	FoulingOuter         float64 `json:"fouling_outer,omitempty" yaml:"fouling_outer,omitempty"`
}

// SweepCase sizes Case at Steps duties evenly spaced over [DutyFrom, DutyTo].
type SweepCase struct {
	Case     Case    `json:"case" yaml:"case"`
	DutyFrom float64 `json:"duty_from" yaml:"duty_from"`
	DutyTo   float64 `json:"duty_to" yaml:"duty_to"`
	Steps    int     `json:"steps" yaml:"steps"`
}

// Msg is the websocket envelope exchanged with clients.
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

const (
	MsgSize    = "size"
	MsgSized   = "sized"
	MsgSweep   = "sweep"
	MsgSwept   = "swept"
	MsgHistory = "history"
	MsgError   = "error"
)
