package types

// TextOptions control how an operator's message is prepared and presented.
type TextOptions struct {
	// LettersOnly drops everything but A-Z/a-z before encoding instead of
	// rejecting the message.
	LettersOnly bool
	// Group splits output into blocks of this many letters; 0 disables.
	Group int `validate:"min=0,max=26"`
	// Continuous keeps rotor positions between messages rather than
	// returning to the key sheet's start positions.
	Continuous bool
}
