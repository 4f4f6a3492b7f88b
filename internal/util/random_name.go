package util

import (
	"fmt"
	"math/rand"
	"time"
)

var adjectives = []string{
	"Fast", "Slow", "Quick", "Speedy", "Trotting", "Weaving", "Gracious", "Healthy", "Happy", "Funny",
	"Red", "Blue", "Green", "Orange", "Purple", "Fuzzy", "Smiling", "Tall", "Grand", "Ultimate", "Prime",
	"Alpha", "Growling", "Slithering", "Swimming", "Flying", "Jumping", "Running", "Charging", "Bouncing",
	"Bounding", "Leaping", "Roaming", "Stalking", "Grazing",
}

var animals = []string{
	"Lion", "Elephant", "Leopard", "Buffalo", "Rhino", "Giraffe", "Zebra", "Crocodile", "Vulture",
	"Chameleon", "Hippo", "Antelope", "Cheetah", "Hyena", "Warthog", "Meerkat", "Gazelle", "Impala",
	"Ostrich", "Baboon", "Mongoose", "Jackal", "Serval", "Kudu", "Oryx", "Wildebeest", "Pangolin",
}

var random = rand.New(rand.NewSource(time.Now().UnixNano())) // nolint:gosec

// GetRandomName returns a random name by combining an adjective with an animal.
// It is used for players who connect without a name.
func GetRandomName() string {
	adjectivesIndex := random.Intn(len(adjectives))
	animalsIndex := random.Intn(len(animals))

	return fmt.Sprintf("%s %s", adjectives[adjectivesIndex], animals[animalsIndex])
}
