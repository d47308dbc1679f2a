package device

// Static is an Environment with fixed values. Zero dimensions mean unknown.
type Static struct {
	OuterWidth   int
	OuterHeight  int
	ScreenWidth  int
	ScreenHeight int
	Lang         string
}

var _ Environment = Static{}

func (s Static) OuterSize() (int, int, bool) {
	return s.OuterWidth, s.OuterHeight, s.OuterWidth > 0 && s.OuterHeight > 0
}

func (s Static) ScreenSize() (int, int, bool) {
	return s.ScreenWidth, s.ScreenHeight, s.ScreenWidth > 0 && s.ScreenHeight > 0
}

func (s Static) Language() string {
	return s.Lang
}
