package workflows

import (
	"context"
	"math/rand/v2"
)

var greetings = []string{
	"Welcome",
	"Hello",
	"Good day",
	"Glad to see you",
	"Welcome back",
}

// Greeting returns a random greeting, addressed to one of the stored logins
// that is not an e-mail address when there is one.
func Greeting(ctx context.Context, v *Vault) (string, error) {
	greet := greetings[rand.IntN(len(greetings))]

	logins, err := v.Store.Logins(ctx)
	if err != nil {
		return "", err
	}
	if len(logins) == 0 {
		return greet + "!", nil
	}
	return greet + ", " + logins[rand.IntN(len(logins))], nil
}
