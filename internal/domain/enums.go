package domain

// Category is a family of exercises sharing one progression ladder.
type Category string

const (
	CategoryPushups   Category = "pushups"
	CategorySquats    Category = "squats"
	CategoryPullups   Category = "pullups"
	CategoryCore      Category = "core"
	CategoryDips      Category = "dips"
	CategoryCardio    Category = "cardio"
	CategoryYoga      Category = "yoga"
	CategoryStretches Category = "stretches"
)

// Categories lists all ladders in display order.
var Categories = []Category{
	CategoryPushups,
	CategorySquats,
	CategoryPullups,
	CategoryCore,
	CategoryDips,
	CategoryCardio,
	CategoryYoga,
	CategoryStretches,
}

// ValidCategories is the canonical set of accepted category strings.
var ValidCategories = map[string]bool{
	"pushups": true, "squats": true, "pullups": true, "core": true,
	"dips": true, "cardio": true, "yoga": true, "stretches": true,
}

// Equipment identifies a piece of equipment an exercise may require.
type Equipment string

const (
	EquipmentPullupBar Equipment = "pullup_bar"
	EquipmentDumbbells Equipment = "dumbbells"
	EquipmentBarbell   Equipment = "barbell"
	EquipmentTreadmill Equipment = "treadmill"
)

// AllEquipment lists every equipment kind the setup flow can offer.
var AllEquipment = []Equipment{
	EquipmentPullupBar,
	EquipmentDumbbells,
	EquipmentBarbell,
	EquipmentTreadmill,
}

// ValidEquipment is the canonical set of accepted equipment strings.
var ValidEquipment = map[string]bool{
	"pullup_bar": true, "dumbbells": true, "barbell": true, "treadmill": true,
}
