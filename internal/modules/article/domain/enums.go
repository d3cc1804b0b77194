//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package domain

// BlockKind represents the type of a message block
// ENUM(header,context,section)
type BlockKind string
