package actions

import (
	"github.com/KirkDiggler/habitica-actions/internal/clients/habitica"
	"github.com/KirkDiggler/habitica-actions/internal/config"
)

// BuyArmoireInput defines the request for an armoire purchase
type BuyArmoireInput struct{}

// BuyArmoireOutput defines the response for an armoire purchase
type BuyArmoireOutput struct {
	Bought   bool
	Gold     float64
	Drop     *habitica.ArmoireDrop
	Messages []string
}

// CastSpellInput defines the request for casting a spell
type CastSpellInput struct {
	Spell config.Spell
}

// CastSpellOutput defines the response for casting a spell
type CastSpellOutput struct {
	Cast     bool
	Mana     float64
	Messages []string
}

// HatchPetsInput defines the request for hatching pets
type HatchPetsInput struct{}

// Hatching is one egg/potion pair sent to the hatch endpoint
type Hatching struct {
	Egg    string
	Potion string
}

// HatchPetsOutput defines the response for hatching pets
type HatchPetsOutput struct {
	Hatched  []Hatching
	Messages []string
}

// FeedPetsInput defines the request for feeding pets
type FeedPetsInput struct{}

// Feeding is one food given to a pet. Amount is at least one.
type Feeding struct {
	Pet    string
	Food   string
	Amount int
}

// FeedPetsOutput defines the response for feeding pets
type FeedPetsOutput struct {
	Fed      []Feeding
	Messages []string
}

// JoinQuestInput defines the request for joining the party quest
type JoinQuestInput struct{}

// JoinQuestOutput defines the response for joining the party quest
type JoinQuestOutput struct {
	Joined   bool
	QuestKey string
	Messages []string
}

// HealthPotionInput defines the request for a health potion purchase
type HealthPotionInput struct{}

// HealthPotionOutput defines the response for a health potion purchase
type HealthPotionOutput struct {
	Bought bool
	// HP is the reported health: the fetched value, plus the potion's heal
	// when one was bought
	HP       float64
	Messages []string
}
