package block

//go:generate go tool go-enum --marshal --nocase

// Semantic type of a footnote body, recognized as an optional
// `<type>:` prefix of the definition text.
// ENUM(note, warning, info, reference, idea, question)
type FootnoteType int
