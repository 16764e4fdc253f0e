package terrain

// Switchback is a two-lane path winding through four switchbacks, entering and leaving on the east-west axis
var Switchback = []string{
	"##########################",
	"##########################",
	"##                      ##",
	"#>>>x x>>>x    x>>>x x>>>#",
	"#>>xv nx>xv    nx>xv nx>>#",
	"## vx>xn vv    nn vx>xn ##",
	"## x>>>x vv    nn x>>>x ##",
	"##       vv    nn       ##",
	"## x<<<x vv    nn x<<<x ##",
	"## vx<xn vv    nn vx<xn ##",
	"## vv nx<xv    nx<xv nn ##",
	"## vv x<<<x    x<<<x nn ##",
	"## vv                nn ##",
	"## vv                nn ##",
	"## vv  x>>>x  x>>>x  nn ##",
	"## vv  nx>xv  nx>xv  nn ##",
	"## vv  nn vx>>xn vv  nn ##",
	"## vx>>xn x>>>>x vx>>xn ##",
	"## x>>>>x        x>>>>x ##",
	"##                      ##",
	"##########################",
	"##########################",
}

// Straights has two opposing three-lane roads with no turns
var Straights = []string{
	"##########################",
	"##########################",
	"##                      ##",
	"##                      ##",
	"##                      ##",
	"##                      ##",
	"##                      ##",
	"#<<<<<<<<<<<<<<<<<<<<<<<<#",
	"#<<<<<<<<<<<<<<<<<<<<<<<<#",
	"#<<<<<<<<<<<<<<<<<<<<<<<<#",
	"##                      ##",
	"##                      ##",
	"#>>>>>>>>>>>>>>>>>>>>>>>>#",
	"#>>>>>>>>>>>>>>>>>>>>>>>>#",
	"#>>>>>>>>>>>>>>>>>>>>>>>>#",
	"##                      ##",
	"##                      ##",
	"##                      ##",
	"##                      ##",
	"##                      ##",
	"##########################",
	"##########################",
}

// Builtin maps by name
var Builtin = map[string][]string{
	"switchback": Switchback,
	"straights":  Straights,
}
