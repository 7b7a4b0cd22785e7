package core

import "math/rand"

var inspirationPrompts = []string{
	"A cozy treehouse cafe floating among rainbow clouds",
	"A steampunk city where plants have taken over the machinery",
	"An underwater library visited by mermaids and sea creatures",
	"A crystal palace where time stands still",
	"A garden where musical flowers bloom under starlight",
}

// InspirationPrompts returns the built-in creative prompts.
func InspirationPrompts() []string {
	out := make([]string, len(inspirationPrompts))
	copy(out, inspirationPrompts)
	return out
}

// Pick returns one element of prompts chosen by seed.
// The same seed and list always yield the same element.
// An empty list yields "".
func Pick(seed int64, prompts []string) string {
	if len(prompts) == 0 {
		return ""
	}
	r := rand.New(rand.NewSource(seed))
	return prompts[r.Intn(len(prompts))]
}
