package ports

// Tokenizer defines the interface for splitting a line of text into raw tokens.
// A token is a maximal run of ASCII letters and digits, optionally followed by
// a single apostrophe-joined run of letters and digits ("don't" is one token).
// Tokens never span line boundaries; punctuation and whitespace are discarded.
type Tokenizer interface {
	// Tokens returns the raw tokens of a single line, in order of appearance.
	Tokens(line string) []string
}
