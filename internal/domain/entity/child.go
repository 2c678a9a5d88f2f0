package entity

// VoiceName identifies one of the prebuilt synthesis voices.
type VoiceName string

const (
	VoicePuck   VoiceName = "Puck"
	VoiceCharon VoiceName = "Charon"
	VoiceKore   VoiceName = "Kore"
	VoiceFenrir VoiceName = "Fenrir"
	VoiceZephyr VoiceName = "Zephyr"
)

// Voices lists every available voice in display order.
var Voices = []VoiceName{VoicePuck, VoiceCharon, VoiceKore, VoiceFenrir, VoiceZephyr}

// Valid reports whether v is one of the prebuilt voices.
func (v VoiceName) Valid() bool {
	for _, known := range Voices {
		if v == known {
			return true
		}
	}
	return false
}

type Child struct {
	ID    string    `json:"id" db:"id" validate:"required"`
	Name  string    `json:"name" db:"name" validate:"required"`
	Age   *int      `json:"age,omitempty" db:"age" validate:"omitempty,min=0,max=120"`
	Color string    `json:"color" db:"color"`
	Voice VoiceName `json:"voice" db:"voice" validate:"required,oneof=Puck Charon Kore Fenrir Zephyr"`
}

func (c *Child) Validate() error {
	return validate.Struct(c)
}

func (c *Child) Clone() *Child {
	cp := *c
	if c.Age != nil {
		age := *c.Age
		cp.Age = &age
	}
	return &cp
}
