package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Ingredient is one entry of a recipe's ingredient list. All fields are free
// text as entered by the author.
type Ingredient struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Unit     string `json:"unit"`
}

// Instruction is one ordered step of a recipe.
type Instruction struct {
	StepNumber int    `json:"step_number"`
	Text       string `json:"text"`
}

// IngredientList stores ingredients as a JSONB document.
type IngredientList []Ingredient

// Value implements the driver.Valuer interface
func (l IngredientList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return json.Marshal(l)
}

// Scan implements the sql.Scanner interface
func (l *IngredientList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

// InstructionList stores instructions as a JSONB document.
type InstructionList []Instruction

// Value implements the driver.Valuer interface
func (l InstructionList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return json.Marshal(l)
}

// Scan implements the sql.Scanner interface
func (l *InstructionList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

func scanJSON(value interface{}, dest interface{}) error {
	if value == nil {
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, dest)
}

// Recipe is a user-authored recipe. The creator is set once and never changes.
type Recipe struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	DeletedAt    gorm.DeletedAt  `gorm:"index" json:"-"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	User         *User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Title        string          `gorm:"size:100;not null" json:"title"`
	Description  string          `gorm:"size:1000;not null" json:"description"`
	Category     string          `gorm:"size:50;not null" json:"category"`
	Ingredients  IngredientList  `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	Instructions InstructionList `gorm:"type:jsonb;not null;default:'[]'" json:"instructions"`
	ImageURL     string          `gorm:"size:255" json:"image_url"`
	CookingTime  int             `json:"cooking_time"`
	Servings     int             `json:"servings"`
	Difficulty   string          `gorm:"size:10;default:'Medium'" json:"difficulty"`
	Views        int64           `gorm:"not null;default:0" json:"views"`
	Slug         string          `gorm:"size:160;uniqueIndex" json:"slug"`
}

func (Recipe) TableName() string {
	return "recipes"
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
