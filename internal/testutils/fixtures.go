// Package testutils holds shared fixtures for orchestrator and runner tests
package testutils

import (
	"github.com/KirkDiggler/habitica-actions/internal/clients/habitica"
)

// TestUserID is the account the fixtures belong to
const TestUserID = "1234"

// Stable returns a mixed stable: feedable pets, quest pets, species that do
// not eat preferred food and colors without one
func Stable() habitica.Counts {
	return habitica.Counts{
		{Name: "PandaCub-Skeleton", Value: 27},
		{Name: "BearCub-Shade", Value: 5},
		{Name: "Jackalope-RoyalPurple", Value: 5},
		{Name: "Phoenix-Base", Value: 5},
		{Name: "Wolf-Red", Value: 30},
		{Name: "PandaCub-CottonCandyPink", Value: 40},
		{Name: "BearCub-Skeleton", Value: 5},
		{Name: "PandaCub-Shade", Value: 30},
		{Name: "Cactus-CottonCandyBlue", Value: 15},
		{Name: "Dragon-Skeleton", Value: 5},
		{Name: "TigerCub-Golden", Value: 20},
		{Name: "FlyingPig-Base", Value: 20},
		{Name: "Fox-Desert", Value: 15},
		{Name: "LionCub-BlackPearl", Value: 5},
		{Name: "LionCub-Zombie", Value: 25},
		{Name: "Fox-White", Value: 15},
		{Name: "SeaSerpent-Golden", Value: 5},
	}
}

// PendingQuest returns a quest the test user was invited to but has not
// answered
func PendingQuest() habitica.Quest {
	accepted := true
	return habitica.Quest{
		Key: "dilatory",
		Members: map[string]*bool{
			TestUserID: nil,
			"leader":   &accepted,
		},
	}
}
