package domain

// Option is one choice of a single-select field
type Option struct {
	Text  string
	Value string
}

// Field is one input of the step configuration form
type Field struct {
	BlockID     string
	Kind        FieldKind
	Label       string
	Placeholder string
	Optional    bool
	Options     []Option

	InitialOption   *Option
	InitialChannels []string
	InitialValue    string
}

// Form is the ordered list of fields shown while configuring the step
type Form []Field
