package fluid

// Saturated liquid water. ρ from the specific volume, μ in Pa·s.
var waterRows = []Row{
	{275, 1000.0, 4211, 1652e-6, 0.574},
	{280, 1000.0, 4198, 1422e-6, 0.582},
	{285, 1000.0, 4189, 1225e-6, 0.590},
	{290, 999.0, 4184, 1080e-6, 0.598},
	{295, 998.0, 4181, 959e-6, 0.606},
	{300, 997.0, 4179, 855e-6, 0.613},
	{305, 995.0, 4178, 769e-6, 0.620},
	{310, 993.0, 4178, 695e-6, 0.628},
	{315, 991.1, 4179, 631e-6, 0.634},
	{320, 989.1, 4180, 577e-6, 0.640},
	{325, 987.2, 4182, 528e-6, 0.645},
	{330, 984.3, 4184, 489e-6, 0.650},
	{335, 982.3, 4186, 453e-6, 0.656},
	{340, 979.4, 4188, 420e-6, 0.660},
	{345, 976.6, 4191, 389e-6, 0.664},
	{350, 973.7, 4195, 365e-6, 0.668},
	{355, 970.9, 4199, 343e-6, 0.671},
	{360, 967.1, 4203, 324e-6, 0.674},
	{365, 963.4, 4209, 306e-6, 0.677},
	{370, 960.6, 4214, 289e-6, 0.679},
}

var waterTable = mustTable("water", waterRows)

// Water returns the saturated liquid water table, 275–370 K.
func Water() *Table {
	return waterTable
}
