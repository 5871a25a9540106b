package actions

import (
	"regexp"

	"github.com/KirkDiggler/habitica-actions/internal/clients/habitica"
)

const (
	// MaxPetExperience is the experience at which a pet becomes a mount
	MaxPetExperience = 50
	// ExperiencePerFeeding is gained for each preferred food
	ExperiencePerFeeding = 5
)

// preferredFood maps a pet color to the food it likes
var preferredFood = map[string]string{
	"Base":            "Meat",
	"CottonCandyBlue": "CottonCandyBlue",
	"CottonCandyPink": "CottonCandyPink",
	"Desert":          "Potatoe",
	"Golden":          "Honey",
	"Red":             "Strawberry",
	"Shade":           "Chocolate",
	"Skeleton":        "Fish",
	"White":           "Milk",
	"Zombie":          "RottenMeat",
}

// feedableSpecies are the species that can eat preferred food. Quest and
// event pets are excluded.
var feedableSpecies = map[string]bool{
	"BearCub":   true,
	"Cactus":    true,
	"Dragon":    true,
	"FlyingPig": true,
	"Fox":       true,
	"LionCub":   true,
	"PandaCub":  true,
	"TigerCub":  true,
	"Wolf":      true,
}

// Themed foods such as Cake_Skeleton carry the color they feed
var foodColorRegex = regexp.MustCompile(`(?:^|_)(Base|CottonCandyBlue|CottonCandyPink|Desert|Golden|Red|Shade|Skeleton|White|Zombie)$`)

// matchHatchings pairs every egg with the first potion whose pet is not
// owned yet. Potion counts are not decremented, so one potion may be paired
// with several eggs.
func matchHatchings(items habitica.Items) ([]Hatching, string) {
	eggs := items.Eggs.Available()
	if len(eggs) == 0 {
		return nil, "All out of eggs"
	}

	potions := items.HatchingPotions.Available()
	if len(potions) == 0 {
		return nil, "All out of potions"
	}

	owned := make(map[string]bool)
	for _, pet := range items.Pets.Available() {
		owned[pet] = true
	}

	var hatchings []Hatching
	for _, egg := range eggs {
		for _, potion := range potions {
			if owned[habitica.PetKey(egg, potion)] {
				continue
			}
			hatchings = append(hatchings, Hatching{Egg: egg, Potion: potion})
			break
		}
	}
	return hatchings, ""
}

type feedCandidate struct {
	pet        string
	likes      string
	experience int
}

// feedCandidates lists, in order, the pets that can still eat their
// preferred food
func feedCandidates(items habitica.Items) []*feedCandidate {
	var candidates []*feedCandidate
	for _, pet := range items.Pets {
		if pet.Value <= 0 || items.Mounts[pet.Name] {
			continue
		}
		species, color, ok := habitica.SplitPetKey(pet.Name)
		if !ok || !feedableSpecies[species] {
			continue
		}
		likes, ok := preferredFood[color]
		if !ok {
			continue
		}
		candidates = append(candidates, &feedCandidate{
			pet:        pet.Name,
			likes:      likes,
			experience: pet.Value,
		})
	}
	return candidates
}

// resolveFood returns the preferred-food name a food counts as
func resolveFood(food string) string {
	if m := foodColorRegex.FindStringSubmatch(food); m != nil {
		return preferredFood[m[1]]
	}
	return food
}

// maxFeed is how many preferred foods a pet can eat before it would pass
// MaxPetExperience
func maxFeed(experience int) int {
	if experience >= MaxPetExperience {
		return 0
	}
	return (MaxPetExperience - experience) / ExperiencePerFeeding
}

// matchFeedings gives every food to the first candidate that likes it and
// still has room. Experience gained earlier in the same plan counts against
// a pet's room. noFood reports that the inventory holds no food at all.
func matchFeedings(items habitica.Items) (feedings []Feeding, noFood bool) {
	foods := make([]habitica.Count, 0, len(items.Food))
	for _, food := range items.Food {
		if food.Value > 0 {
			foods = append(foods, food)
		}
	}

	candidates := feedCandidates(items)
	for _, food := range foods {
		wanted := resolveFood(food.Name)
		for _, c := range candidates {
			if c.likes != wanted {
				continue
			}
			room := maxFeed(c.experience)
			if room < 1 {
				continue
			}
			amount := min(food.Value, room)
			c.experience += amount * ExperiencePerFeeding
			feedings = append(feedings, Feeding{Pet: c.pet, Food: food.Name, Amount: amount})
			break
		}
	}
	return feedings, len(foods) == 0
}
