//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package domain

// FieldKind represents the input element of a form field
// ENUM(radio_buttons,multi_channels_select,plain_text_input)
type FieldKind string

// ValueKind represents the shape of a submitted form value
// ENUM(text,list,option)
type ValueKind string
