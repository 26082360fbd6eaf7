package constants

// Classification enums shared by ministers and media tags.
const (
	CoreTypeMusic       = "music"
	CoreTypeSermon      = "sermon"
	CoreTypeMusicSermon = "music-sermon"
)

const (
	OfficeApostle    = "apostle"
	OfficeProphet    = "prophet"
	OfficeEvangelist = "evangelist"
	OfficePastor     = "pastor"
	OfficeTeacher    = "teacher"
)

var (
	CoreTypes = []string{CoreTypeMusic, CoreTypeSermon, CoreTypeMusicSermon}
	Offices   = []string{OfficeApostle, OfficeProphet, OfficeEvangelist, OfficePastor, OfficeTeacher}
)
