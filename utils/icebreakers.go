package utils

import "math/rand"

// interestIcebreakers maps an interest to its canned opening question.
var interestIcebreakers = map[string]string{
	"Music":       "What's on your playlist right now?",
	"Travel":      "What's your favorite place you've traveled to?",
	"Food":        "What's the best dish you can cook?",
	"Sports":      "Which sport do you enjoy most?",
	"Art":         "What kind of art inspires you?",
	"Reading":     "What book are you reading right now?",
	"Movies":      "What's your all-time favorite movie?",
	"Gaming":      "What game are you currently playing?",
	"Fitness":     "What's your favorite workout?",
	"Photography": "What do you love photographing most?",
	"Technology":  "What's the coolest tech you own?",
	"Nature":      "What's your favorite outdoor activity?",
}

// genericIcebreakers is the fallback pool for pairs with no shared interest.
var genericIcebreakers = []string{
	"What's the best adventure you've been on?",
	"If you could have dinner with anyone, who would it be?",
	"What's something you're passionate about?",
	"What's your go-to karaoke song?",
	"Beach vacation or mountain retreat?",
	"What's the last book that made you think?",
	"Coffee or tea? And how do you take it?",
	"What's your hidden talent?",
	"If you could live anywhere, where would it be?",
	"What's your favorite way to spend a weekend?",
	"What's something on your bucket list?",
	"Early bird or night owl?",
	"What's the best meal you've ever had?",
	"What's your favorite childhood memory?",
	"If you could master any skill instantly, what would it be?",
	"What's your guilty pleasure TV show?",
	"Dogs or cats? (Or neither?)",
	"What's the most spontaneous thing you've done?",
	"What's your favorite season and why?",
	"What's something that always makes you smile?",
}

// PickIcebreaker returns the canned question for the first interest the two
// users share, in the order of the first list. Pairs sharing nothing, or
// sharing only an interest without a canned question, get one from the
// generic pool.
func PickIcebreaker(interests, otherInterests []string) string {
	other := make(map[string]struct{}, len(otherInterests))
	for _, interest := range otherInterests {
		other[interest] = struct{}{}
	}
	for _, interest := range interests {
		if _, shared := other[interest]; shared {
			if question, ok := interestIcebreakers[interest]; ok {
				return question
			}
			return RandomIcebreaker()
		}
	}
	return RandomIcebreaker()
}

// RandomIcebreaker returns a question from the generic pool.
func RandomIcebreaker() string {
	return genericIcebreakers[rand.Intn(len(genericIcebreakers))]
}

// GenericIcebreakers exposes the fallback pool, read-only by convention.
func GenericIcebreakers() []string {
	return genericIcebreakers
}
