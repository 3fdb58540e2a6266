package field

import (
	"time"

	"gorm.io/datatypes"
)

// Type tags as stored in the fields table.
const (
	TypePlainText    = "plainText"
	TypeNumber       = "number"
	TypeEmail        = "email"
	TypeAssets       = "assets"
	TypeEntries      = "entries"
	TypeCategories   = "categories"
	TypeUsers        = "users"
	TypeTags         = "tags"
	TypeCheckboxes   = "checkboxes"
	TypeMultiSelect  = "multiSelect"
	TypeDropdown     = "dropdown"
	TypeRadioButtons = "radioButtons"
	TypeLightswitch  = "lightswitch"
	TypeMatrix       = "matrix"
	TypeTable        = "table"
	TypeDate         = "date"
)

// Kind is the closed set of value shapes the export pipeline knows about.
type Kind int

const (
	// KindUnknown is a type tag outside the known set. It is never filtered
	// on and exports as plain text.
	KindUnknown Kind = iota
	KindPlain
	KindAsset
	KindRelation
	KindMultiChoice
	KindSingleChoice
	KindBoolean
	KindRepeating
	KindTable
	KindDateTime
)

var kinds = map[string]Kind{
	TypePlainText:    KindPlain,
	TypeNumber:       KindPlain,
	TypeEmail:        KindPlain,
	TypeAssets:       KindAsset,
	TypeEntries:      KindRelation,
	TypeCategories:   KindRelation,
	TypeUsers:        KindRelation,
	TypeTags:         KindRelation,
	TypeCheckboxes:   KindMultiChoice,
	TypeMultiSelect:  KindMultiChoice,
	TypeDropdown:     KindSingleChoice,
	TypeRadioButtons: KindSingleChoice,
	TypeLightswitch:  KindBoolean,
	TypeMatrix:       KindRepeating,
	TypeTable:        KindTable,
	TypeDate:         KindDateTime,
}

func KindOf(typ string) Kind {
	if k, ok := kinds[typ]; ok {
		return k
	}
	return KindUnknown
}

func ValidType(typ string) bool {
	_, ok := kinds[typ]
	return ok
}

type Option struct {
	Label   string `json:"label"`
	Value   string `json:"value"`
	Default bool   `json:"default,omitempty"`
}

// SubField is a field nested in a repeating block type.
type SubField struct {
	Handle string `json:"handle"`
	Name   string `json:"name"`
	Type   string `json:"type"`
}

type BlockType struct {
	Handle string     `json:"handle"`
	Name   string     `json:"name"`
	Fields []SubField `json:"fields"`
}

type Column struct {
	Handle  string `json:"handle"`
	Heading string `json:"heading"`
}

type Settings struct {
	Options    []Option    `json:"options,omitempty"`
	BlockTypes []BlockType `json:"block_types,omitempty"`
	Columns    []Column    `json:"columns,omitempty"`
}

type Field struct {
	ID        uint                         `gorm:"primaryKey" json:"id"`
	FormID    uint                         `gorm:"not null;index" json:"form_id"`
	Handle    string                       `gorm:"size:64;not null" json:"handle"`
	Name      string                       `gorm:"size:255;not null" json:"name"`
	Type      string                       `gorm:"size:32;not null" json:"type"`
	Required  bool                         `json:"required"`
	SortOrder int                          `json:"sort_order"`
	Settings  datatypes.JSONType[Settings] `gorm:"type:jsonb" json:"settings"`
	CreatedAt time.Time                    `json:"created_at"`
	UpdatedAt time.Time                    `json:"updated_at"`
}

func (Field) TableName() string {
	return "fields"
}

func (f Field) Kind() Kind {
	return KindOf(f.Type)
}

func (f Field) BlockTypes() []BlockType {
	return f.Settings.Data().BlockTypes
}

// AsField lifts a block sub-field so it can be formatted like a top-level field.
func (s SubField) AsField() Field {
	return Field{Handle: s.Handle, Name: s.Name, Type: s.Type}
}
