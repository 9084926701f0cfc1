// Package gesture classifies hand landmarks into ASL phrases and stabilizes
// the result across frames.
package gesture

// Label names a recognized phrase. The zero value means no gesture.
type Label string

// The closed set of phrases the classifier can produce.
const (
	None        Label = ""
	GoodMorning Label = "Good Morning!"
	ThankYou    Label = "Thank you!"
	Goodbye     Label = "Goodbye!"
	HowAreYou   Label = "How are you?"
	NiceToMeet  Label = "Nice to meet"
)

// Labels lists every non-empty label in classifier priority order,
// single-hand phrases first.
var Labels = []Label{GoodMorning, ThankYou, Goodbye, HowAreYou, NiceToMeet}

// IsNone reports whether l is the empty label.
func (l Label) IsNone() bool {
	return l == None
}

// String implements fmt.Stringer.
func (l Label) String() string {
	if l == None {
		return "none"
	}
	return string(l)
}
