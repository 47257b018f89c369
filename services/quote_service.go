package services

import "math/rand"

type Quote struct {
	Quote  string `json:"quote"`
	Author string `json:"author"`
}

var healthQuotes = []Quote{
	{Quote: "Take care of your body. It's the only place you have to live.", Author: "Jim Rohn"},
	{Quote: "The groundwork for all happiness is good health.", Author: "Leigh Hunt"},
	{Quote: "Health is not about the weight you lose, but about the life you gain.", Author: "Josh Axe"},
	{Quote: "Your body hears everything your mind says.", Author: "Naomi Judd"},
	{Quote: "A healthy outside starts from the inside.", Author: "Robert Urich"},
}

// PickQuote selects a quote with the caller's randomness source so tests
// can seed it.
func PickQuote(r *rand.Rand) Quote {
	return healthQuotes[r.Intn(len(healthQuotes))]
}
