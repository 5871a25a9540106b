// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/habitica-actions/internal/clients/habitica"
)

// UserBuilder provides a fluent interface for building test User snapshots
type UserBuilder struct {
	user *habitica.User
}

// NewUserBuilder creates a builder for a healthy user with an empty inventory
func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		user: &habitica.User{
			Stats: habitica.Stats{HP: 50},
			Items: habitica.Items{Mounts: map[string]bool{}},
		},
	}
}

// WithGold sets stats.gp
func (b *UserBuilder) WithGold(gp float64) *UserBuilder {
	b.user.Stats.GP = gp
	return b
}

// WithMana sets stats.mp
func (b *UserBuilder) WithMana(mp float64) *UserBuilder {
	b.user.Stats.MP = mp
	return b
}

// WithHealth sets stats.hp
func (b *UserBuilder) WithHealth(hp float64) *UserBuilder {
	b.user.Stats.HP = hp
	return b
}

// WithEgg appends an egg count, keeping call order
func (b *UserBuilder) WithEgg(species string, count int) *UserBuilder {
	b.user.Items.Eggs = append(b.user.Items.Eggs, habitica.Count{Name: species, Value: count})
	return b
}

// WithPotion appends a hatching potion count
func (b *UserBuilder) WithPotion(color string, count int) *UserBuilder {
	b.user.Items.HatchingPotions = append(b.user.Items.HatchingPotions, habitica.Count{Name: color, Value: count})
	return b
}

// WithPet appends a pet with its experience. Use -1 for a pet raised to a
// mount.
func (b *UserBuilder) WithPet(key string, experience int) *UserBuilder {
	b.user.Items.Pets = append(b.user.Items.Pets, habitica.Count{Name: key, Value: experience})
	return b
}

// WithPets appends several pets in order
func (b *UserBuilder) WithPets(pets habitica.Counts) *UserBuilder {
	b.user.Items.Pets = append(b.user.Items.Pets, pets...)
	return b
}

// WithFood appends a food count
func (b *UserBuilder) WithFood(name string, count int) *UserBuilder {
	b.user.Items.Food = append(b.user.Items.Food, habitica.Count{Name: name, Value: count})
	return b
}

// WithMount marks a mount as owned
func (b *UserBuilder) WithMount(key string) *UserBuilder {
	b.user.Items.Mounts[key] = true
	return b
}

// Build returns the built user
func (b *UserBuilder) Build() *habitica.User {
	return b.user
}
