package models

type Property struct {
	Base
	FieldID     string  `json:"-"`
	Type        string  `json:"type" validate:"oneof=string int float bool"`
	StringValue string  `json:"-"`
	IntValue    int     `json:"-"`
	FloatValue  float64 `json:"-"`
	BoolValue   bool    `json:"-"`
}

// Value returns the slot selected by Type
func (p Property) Value() any {
	switch p.Type {
	case "string":
		return p.StringValue
	case "int":
		return p.IntValue
	case "float":
		return p.FloatValue
	case "bool":
		return p.BoolValue
	}
	return nil
}
