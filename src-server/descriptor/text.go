package descriptor

// DefaultText is what an unset Text renders as.
const DefaultText = "<default>"

// Text is a string that remembers whether it was set explicitly.
// The zero value is unset.
type Text struct {
	value string
	set   bool
}

// Explicit returns a set Text holding s, even when s equals DefaultText.
func Explicit(s string) Text {
	return Text{value: s, set: true}
}

func (t Text) IsSet() bool { return t.set }

func (t Text) String() string {
	if !t.set {
		return DefaultText
	}
	return t.value
}
