package domain

// FieldValue is a value submitted through the configuration form. Kind
// selects which of Text, List or Option carries the value.
type FieldValue struct {
	Kind   ValueKind
	Text   string
	List   []string
	Option string
}

func TextValue(s string) FieldValue {
	return FieldValue{Kind: ValueKindText, Text: s}
}

func ListValue(items []string) FieldValue {
	return FieldValue{Kind: ValueKindList, List: items}
}

func OptionValue(value string) FieldValue {
	return FieldValue{Kind: ValueKindOption, Option: value}
}

// SubmittedValues maps form block ids to the values the user submitted
type SubmittedValues map[string]FieldValue

// String returns the scalar value of key. A missing value, or one whose
// kind carries no scalar, yields nil.
func (v SubmittedValues) String(key string) *string {
	value, ok := v[key]
	if !ok {
		return nil
	}

	switch value.Kind {
	case ValueKindText:
		return &value.Text
	case ValueKindOption:
		return &value.Option
	case ValueKindList:
		return nil
	default:
		return nil
	}
}

// List returns the list value of key, or nil when it is missing
func (v SubmittedValues) List(key string) []string {
	value, ok := v[key]
	if !ok {
		return nil
	}

	switch value.Kind {
	case ValueKindList:
		return value.List
	case ValueKindText, ValueKindOption:
		return nil
	default:
		return nil
	}
}
