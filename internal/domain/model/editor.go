package model

type FieldKind string

const (
	FieldKindText   FieldKind = "text"
	FieldKindSwitch FieldKind = "switch"
	FieldKindNumber FieldKind = "number"
)

// EditorField is one row of the card editor form.
type EditorField struct {
	Name  string      `json:"name"`
	Kind  FieldKind   `json:"kind"`
	Label string      `json:"label"`
	Value interface{} `json:"value"`
}

type EditorForm struct {
	Language string        `json:"language"`
	Config   CardConfig    `json:"config"`
	Fields   []EditorField `json:"fields"`
}
