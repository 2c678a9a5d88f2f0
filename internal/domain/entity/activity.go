package entity

// Category classifies an activity template.
type Category string

const (
	CategoryAcademy      Category = "ACADEMY"
	CategorySchool       Category = "SCHOOL"
	CategoryKindergarten Category = "KINDERGARTEN"
	CategoryOther        Category = "OTHER"
)

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryAcademy, CategorySchool, CategoryKindergarten, CategoryOther:
		return true
	}
	return false
}

// Activity is a template used to create schedule items. Items copy its fields
// at creation time, so deleting an activity never touches them.
type Activity struct {
	ID                string   `json:"id" db:"id" validate:"required"`
	Name              string   `json:"name" db:"name" validate:"required"`
	Category          Category `json:"category" db:"category" validate:"required,oneof=ACADEMY SCHOOL KINDERGARTEN OTHER"`
	DefaultFee        int      `json:"default_fee" db:"default_fee" validate:"min=0"`
	DefaultPaymentDay int      `json:"default_payment_day" db:"default_payment_day" validate:"min=0,max=31"`
	Supplies          string   `json:"supplies,omitempty" db:"supplies"`
	Teacher           string   `json:"teacher,omitempty" db:"teacher"`
	Phone             string   `json:"phone,omitempty" db:"phone"`
	Address           string   `json:"address,omitempty" db:"address"`
}

func (a *Activity) Validate() error {
	return validate.Struct(a)
}
