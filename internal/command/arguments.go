// Package command builds the argument vectors of tf client invocations and
// parses their console output. Running the client is left to the caller.
package command

import (
	"slices"

	"github.com/kballard/go-shellquote"
)

// MaskedToken replaces masked arguments in rendered command lines.
const MaskedToken = "********"

// Arguments is an ordered argument list where each token may be marked as
// sensitive. Sensitive tokens must not reach logs verbatim.
type Arguments struct {
	args []string
	mask []bool
}

// NewArguments returns an empty argument list.
func NewArguments() *Arguments {
	return &Arguments{}
}

// Add appends unmasked tokens.
func (a *Arguments) Add(args ...string) *Arguments {
	for _, arg := range args {
		a.args = append(a.args, arg)
		a.mask = append(a.mask, false)
	}
	return a
}

// AddMasked appends a token that must be redacted when displayed.
func (a *Arguments) AddMasked(arg string) *Arguments {
	a.args = append(a.args, arg)
	a.mask = append(a.mask, true)
	return a
}

// Len returns the number of tokens.
func (a *Arguments) Len() int {
	return len(a.args)
}

// Args returns a copy of the tokens.
func (a *Arguments) Args() []string {
	return slices.Clone(a.args)
}

// Mask returns a copy of the mask; Mask()[i] is true when Args()[i] is
// sensitive.
func (a *Arguments) Mask() []bool {
	return slices.Clone(a.mask)
}

// Redacted returns the tokens with masked ones replaced by MaskedToken.
func (a *Arguments) Redacted() []string {
	out := make([]string, len(a.args))
	for i, arg := range a.args {
		if a.mask[i] {
			out[i] = MaskedToken
		} else {
			out[i] = arg
		}
	}
	return out
}

// String renders the redacted tokens as a shell-quoted command line.
func (a *Arguments) String() string {
	return shellquote.Join(a.Redacted()...)
}
