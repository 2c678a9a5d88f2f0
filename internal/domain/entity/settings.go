package entity

type BriefingSettings struct {
	Enabled bool   `json:"enabled" db:"enabled"`
	Time    string `json:"time" db:"time" validate:"required,datetime=15:04"` // HH:MM format
	Days    []int  `json:"days" db:"days" validate:"dive,min=0,max=6"`        // 0=Sunday
}

func (b *BriefingSettings) Validate() error {
	return validate.Struct(b)
}

func (b *BriefingSettings) Clone() *BriefingSettings {
	cp := *b
	cp.Days = append([]int(nil), b.Days...)
	return &cp
}

// HasDay reports whether weekday is one of the configured days.
func (b *BriefingSettings) HasDay(weekday int) bool {
	for _, d := range b.Days {
		if d == weekday {
			return true
		}
	}
	return false
}

type Region struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

type Weather struct {
	Temperature      float64  `json:"temperature"`
	ConditionCode    int      `json:"condition_code"`
	ConditionText    string   `json:"condition_text"`
	MinTemp          float64  `json:"min_temp"`
	MaxTemp          float64  `json:"max_temp"`
	YesterdayMaxTemp *float64 `json:"yesterday_max_temp,omitempty"`
}
