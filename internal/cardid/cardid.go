package cardid

import "strings"

// BlockSize is the grouping printed on the card face.
const BlockSize = 4

// Blocks splits id into consecutive runs of size characters. The last run
// keeps whatever is left and is not padded.
func Blocks(id string, size int) []string {
	if id == "" {
		return nil
	}
	if size <= 0 {
		return []string{id}
	}
	runes := []rune(id)
	out := make([]string, 0, (len(runes)+size-1)/size)
	for start := 0; start < len(runes); start += size {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		out = append(out, string(runes[start:end]))
	}
	return out
}

// Group returns id with a single space after every size characters. Whitespace
// at either edge of the result is trimmed, so a blank leading or trailing
// character of id is dropped too. The id itself is never validated.
func Group(id string, size int) string {
	return strings.TrimSpace(strings.Join(Blocks(id, size), " "))
}
