package fluid

// Dry air at 1 atm.
var airRows = []Row{
	{250, 1.3947, 1006, 159.6e-7, 0.0223},
	{300, 1.1614, 1007, 184.6e-7, 0.0263},
	{350, 0.9950, 1009, 208.2e-7, 0.0300},
	{400, 0.8711, 1014, 230.1e-7, 0.0338},
	{450, 0.7740, 1021, 250.7e-7, 0.0373},
	{500, 0.6964, 1030, 270.1e-7, 0.0407},
	{550, 0.6329, 1040, 288.4e-7, 0.0439},
	{600, 0.5804, 1051, 305.8e-7, 0.0469},
	{650, 0.5356, 1063, 322.5e-7, 0.0497},
	{700, 0.4975, 1075, 338.8e-7, 0.0524},
	{750, 0.4643, 1087, 354.6e-7, 0.0549},
	{800, 0.4354, 1099, 369.8e-7, 0.0573},
}

var airTable = mustTable("air", airRows)

// Air returns the dry air table at atmospheric pressure, 250–800 K.
func Air() *Table {
	return airTable
}
