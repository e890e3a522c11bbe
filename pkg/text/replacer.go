package text

import (
	"bytes"
	"sort"

	"gitlab.com/tozd/go/errors"
)

// Replacement maps one placeholder token to its substitution value.
type Replacement struct {
	Token string // literal text to find (never empty)
	Value string // text to substitute (may be empty)
}

// Result reports what a replacement pass did to one piece of content.
// ReplacementCount is the number of token occurrences matched; WasModified is
// false when every match substituted identical text (a token mapping to
// itself leaves the content unchanged).
type Result struct {
	OriginalContent  []byte
	ModifiedContent  []byte
	WasModified      bool
	ReplacementCount int
}

// Replacer applies a fixed replacement table to content in a single pass.
//
// All tokens are matched simultaneously while scanning left to right: at each
// position the longest matching token wins, its value is emitted, and the
// scan resumes after the token. Substituted output is never rescanned, so the
// outcome does not depend on table order and a value containing another token
// cannot cascade into further replacements. Tokens that share a prefix (for
// example a project-name token that is a prefix of the description token) are
// resolved in favor of the longer match.
type Replacer struct {
	table []Replacement
}

// NewReplacer creates a Replacer for the given table.
func NewReplacer(table []Replacement) (*Replacer, error) {
	if err := ValidateTable(table); err != nil {
		return nil, err
	}

	// Longest token first so prefix-overlapping tokens resolve deterministically.
	// Distinct tokens of equal length cannot match at the same position, so the
	// sort fully determines matching behavior.
	sorted := make([]Replacement, len(table))
	copy(sorted, table)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i].Token) > len(sorted[j].Token)
	})

	return &Replacer{table: sorted}, nil
}

// ValidateTable checks that a replacement table is usable.
func ValidateTable(table []Replacement) error {
	seen := make(map[string]int, len(table))
	for i, r := range table {
		if r.Token == "" {
			return errors.Errorf("replacement %d: token is required", i)
		}
		if prev, ok := seen[r.Token]; ok {
			return errors.Errorf("replacement %d: token %q already defined by replacement %d", i, r.Token, prev)
		}
		seen[r.Token] = i
	}
	return nil
}

// Replace applies the table to content and returns the result.
func (r *Replacer) Replace(content []byte) *Result {
	result := &Result{
		OriginalContent: content,
		ModifiedContent: content,
	}
	if len(r.table) == 0 || len(content) == 0 {
		return result
	}

	var out bytes.Buffer
	out.Grow(len(content))

	i := 0
	for i < len(content) {
		rep, ok := r.matchAt(content, i)
		if !ok {
			out.WriteByte(content[i])
			i++
			continue
		}
		out.WriteString(rep.Value)
		result.ReplacementCount++
		i += len(rep.Token)
	}

	if result.ReplacementCount > 0 {
		result.ModifiedContent = out.Bytes()
		result.WasModified = !bytes.Equal(result.ModifiedContent, content)
	}
	return result
}

// matchAt returns the longest table entry whose token starts at content[i].
func (r *Replacer) matchAt(content []byte, i int) (Replacement, bool) {
	rest := content[i:]
	for _, rep := range r.table {
		if len(rep.Token) <= len(rest) && bytes.HasPrefix(rest, []byte(rep.Token)) {
			return rep, true
		}
	}
	return Replacement{}, false
}
