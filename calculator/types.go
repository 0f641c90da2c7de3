package calculator

import "heatx/fluid"

// Side names the stream path through the exchanger.
type Side string

const (
	SideHot  Side = "hot"  // pipe interior
	SideCold Side = "cold" // annulus
)

// Mode selects the Dittus-Boelter Prandtl exponent.
type Mode string

const (
	ModeAuto   Mode = "auto" // derived from TIn/TOut
	ModeHeated Mode = "heated"
	ModeCooled Mode = "cooled"
)

// Regime classifies the flow by Reynolds number.
type Regime string

const (
	RegimeLaminar      Regime = "laminar"
	RegimeTransitional Regime = "transitional"
	RegimeTurbulent    Regime = "turbulent"
)

// Arrangement selects how a multi-pass exchanger is corrected.
type Arrangement string

const (
	ArrangementSeriesCounterflow Arrangement = "series-counterflow"
	ArrangementShellAndTube      Arrangement = "shell-and-tube"
)

// FluidStream is one of the two streams exchanging heat. Cp is taken as constant
// between TIn and TOut; callers keep that range narrow.
type FluidStream struct {
	fluid.Properties
	TIn  float64 `json:"t_in"`  // K
	TOut float64 `json:"t_out"` // K
	Mode Mode    `json:"mode"`
}

// TubeGeometry of a double-pipe exchanger. A zero WallConductivity neglects the
// wall conduction resistance.
type TubeGeometry struct {
	PipeInnerDiameter    float64 `json:"pipe_inner_diameter"`    // m
	PipeOuterDiameter    float64 `json:"pipe_outer_diameter"`    // m
	AnnulusInnerDiameter float64 `json:"annulus_inner_diameter"` // m
	WallConductivity     float64 `json:"wall_conductivity"`      // W/(m·K)
	FoulingInner         float64 `json:"fouling_inner"`          // m²·K/W
	FoulingOuter         float64 `json:"fouling_outer"`          // m²·K/W
}

// Input is everything a single sizing run needs.
type Input struct {
	Duty     float64 // W
	Hot      FluidStream
	Cold     FluidStream
	Geometry TubeGeometry

	// Zero values fall back to the Sizer's Config.
	MaxPassLength float64
	Arrangement   Arrangement
	Shells        int
}

// FlowRegimeResult is derived per stream.
type FlowRegimeResult struct {
	Side                 Side    `json:"side"`
	MassFlow             float64 `json:"mass_flow"`
	FlowArea             float64 `json:"flow_area"`
	Velocity             float64 `json:"velocity"`
	HydraulicDiameter    float64 `json:"hydraulic_diameter"`
	HeatTransferDiameter float64 `json:"heat_transfer_diameter"`
	Reynolds             float64 `json:"reynolds"`
	Prandtl              float64 `json:"prandtl"`
	NusseltExponent      float64 `json:"nusselt_exponent"`
	Nusselt              float64 `json:"nusselt"`
	H                    float64 `json:"h"`
	Regime               Regime  `json:"regime"`
	FrictionFactor       float64 `json:"friction_factor"`
	PressureDrop         float64 `json:"pressure_drop"`
	PumpingPower         float64 `json:"pumping_power"`
}

// VolumeResult holds the fluid inventories of the sized exchanger.
type VolumeResult struct {
	PipeSide    float64 `json:"pipe_side"`    // m³
	AnnulusSide float64 `json:"annulus_side"` // m³
	CoolantTank float64 `json:"coolant_tank"` // m³ of coolant carried for one mission
}

// MultiPassResult is present when the single-pass length exceeds MaxPassLength.
type MultiPassResult struct {
	Arrangement      Arrangement `json:"arrangement"`
	Shells           int         `json:"shells"`
	Passes           int         `json:"passes"`
	R                float64     `json:"r"`
	P                float64     `json:"p"`
	CorrectionFactor float64     `json:"correction_factor"`
	CorrectedLMTD    float64     `json:"corrected_lmtd"`
	TotalLength      float64     `json:"total_length"`
	PassLength       float64     `json:"pass_length"`
	LowCorrection    bool        `json:"low_correction"`
}

// ExchangerSizingResult is the terminal output of a sizing run.
type ExchangerSizingResult struct {
	Uo         float64          `json:"uo"`
	LMTD       float64          `json:"lmtd"`
	Length     float64          `json:"length"`
	Area       float64          `json:"area"`
	Iterations int              `json:"iterations"`
	Hot        FlowRegimeResult `json:"hot"`
	Cold       FlowRegimeResult `json:"cold"`
	Volume     VolumeResult     `json:"volume"`
	MultiPass  *MultiPassResult `json:"multi_pass,omitempty"`
	Warnings   []RegimeWarning  `json:"warnings,omitempty"`
}
