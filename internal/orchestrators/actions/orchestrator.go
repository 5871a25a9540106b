// Package actions implements the account automation rules. Every action
// fetches a fresh snapshot, decides and then performs at most the calls the
// snapshot justifies.
package actions

//go:generate mockgen -destination=mock/mock_service.go -package=actionsmock github.com/KirkDiggler/habitica-actions/internal/orchestrators/actions Service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/KirkDiggler/habitica-actions/internal/clients/habitica"
	"github.com/KirkDiggler/habitica-actions/internal/config"
	"github.com/KirkDiggler/habitica-actions/internal/errors"
)

const (
	// HealthPotionCost is the fixed gold price of a health potion
	HealthPotionCost = 25
	// HealthPotionHeal is the health a potion restores
	HealthPotionHeal = 15
)

// Service defines the interface for account actions
type Service interface {
	// Threshold actions
	BuyArmoire(ctx context.Context, input *BuyArmoireInput) (*BuyArmoireOutput, error)
	CastSpell(ctx context.Context, input *CastSpellInput) (*CastSpellOutput, error)
	HealthPotion(ctx context.Context, input *HealthPotionInput) (*HealthPotionOutput, error)

	// Inventory actions
	HatchPets(ctx context.Context, input *HatchPetsInput) (*HatchPetsOutput, error)
	FeedPets(ctx context.Context, input *FeedPetsInput) (*FeedPetsOutput, error)

	JoinQuest(ctx context.Context, input *JoinQuestInput) (*JoinQuestOutput, error)
}

// Config holds the dependencies for the actions orchestrator
type Config struct {
	Client habitica.Client
	// UserID is matched against the quest member list
	UserID     string
	Thresholds config.Thresholds
	// Logger receives the outcome lines (optional, defaults to slog.Default())
	Logger *slog.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}
	errors.ValidateRequired("UserID", c.UserID, vb)
	errors.ValidateNonNegative("Thresholds.ArmoireGold", c.Thresholds.ArmoireGold, vb)
	errors.ValidateNonNegative("Thresholds.Health", c.Thresholds.Health, vb)

	return vb.Build()
}

type orchestrator struct {
	client     habitica.Client
	userID     string
	thresholds config.Thresholds
	logger     *slog.Logger
}

// NewOrchestrator creates a new actions orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &orchestrator{
		client:     cfg.Client,
		userID:     cfg.UserID,
		thresholds: cfg.Thresholds,
		logger:     logger,
	}, nil
}

// report logs one outcome line and returns it for the caller's output
func (o *orchestrator) report(ctx context.Context, action, msg string, args ...any) string {
	o.logger.InfoContext(ctx, msg, append([]any{"action", action}, args...)...)
	return msg
}

func (o *orchestrator) BuyArmoire(ctx context.Context, _ *BuyArmoireInput) (*BuyArmoireOutput, error) {
	user, err := o.client.GetUser(ctx)
	if err != nil {
		return nil, err
	}

	gold := user.Stats.GP
	threshold := o.thresholds.ArmoireGold
	output := &BuyArmoireOutput{Gold: gold}

	if gold <= threshold {
		msg := fmt.Sprintf("Wallet contains %s coins. Threshold = %s", formatNumber(gold), formatNumber(threshold))
		output.Messages = append(output.Messages,
			o.report(ctx, config.ActionArmoire, msg, "gold", gold, "threshold", threshold))
		return output, nil
	}

	result, err := o.client.BuyArmoire(ctx)
	if err != nil {
		return nil, err
	}

	drop := result.Armoire
	output.Bought = true
	output.Drop = &drop

	var msg string
	if drop.Type == habitica.FoodType {
		msg = "You gained " + drop.DropText
	} else {
		msg = fmt.Sprintf("You gained %s %s", formatNumber(drop.Value), drop.Type)
	}
	output.Messages = append(output.Messages,
		o.report(ctx, config.ActionArmoire, msg, "type", drop.Type, "gold", gold))

	return output, nil
}

func (o *orchestrator) CastSpell(ctx context.Context, input *CastSpellInput) (*CastSpellOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	spell := input.Spell
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Spell.ID", spell.ID, vb)
	errors.ValidateNonNegative("Spell.ManaThreshold", spell.ManaThreshold, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	name := spell.Name
	if name == "" {
		name = spell.ID
	}
	action := config.CastActionPrefix + spell.ID

	user, err := o.client.GetUser(ctx)
	if err != nil {
		return nil, err
	}

	mana := user.Stats.MP
	output := &CastSpellOutput{Mana: mana}

	if mana <= spell.ManaThreshold {
		msg := fmt.Sprintf("Mana is at %s. Threshold = %s", formatNumber(mana), formatNumber(spell.ManaThreshold))
		output.Messages = append(output.Messages,
			o.report(ctx, action, msg, "mana", mana, "threshold", spell.ManaThreshold))
		return output, nil
	}

	if err := o.client.CastSpell(ctx, spell.ID); err != nil {
		return nil, err
	}

	output.Cast = true
	output.Messages = append(output.Messages,
		o.report(ctx, action, fmt.Sprintf("Casting *%s*", name), "spell", spell.ID, "mana", mana))

	return output, nil
}

func (o *orchestrator) HealthPotion(ctx context.Context, _ *HealthPotionInput) (*HealthPotionOutput, error) {
	user, err := o.client.GetUser(ctx)
	if err != nil {
		return nil, err
	}

	hp, gold := user.Stats.HP, user.Stats.GP
	output := &HealthPotionOutput{HP: hp}

	if hp > o.thresholds.Health {
		output.Messages = append(output.Messages,
			o.report(ctx, config.ActionHealthPotion, "You are healthy enough",
				"hp", hp, "threshold", o.thresholds.Health))
		return output, nil
	}

	if gold < HealthPotionCost {
		output.Messages = append(output.Messages,
			o.report(ctx, config.ActionHealthPotion, "Not enough gold to buy a health potion", "gold", gold))
		return output, nil
	}

	if err := o.client.BuyHealthPotion(ctx); err != nil {
		return nil, err
	}

	// reported from the snapshot, not re-fetched
	output.Bought = true
	output.HP = hp + HealthPotionHeal
	msg := "You are healed up. Current hp = " + formatNumber(output.HP)
	output.Messages = append(output.Messages,
		o.report(ctx, config.ActionHealthPotion, msg, "hp", output.HP))

	return output, nil
}

func (o *orchestrator) HatchPets(ctx context.Context, _ *HatchPetsInput) (*HatchPetsOutput, error) {
	user, err := o.client.GetUser(ctx)
	if err != nil {
		return nil, err
	}

	output := &HatchPetsOutput{}

	hatchings, outOfStock := matchHatchings(user.Items)
	if outOfStock != "" {
		output.Messages = append(output.Messages,
			o.report(ctx, config.ActionHatch, outOfStock))
		return output, nil
	}

	for _, h := range hatchings {
		if err := o.client.Hatch(ctx, h.Egg, h.Potion); err != nil {
			return output, err
		}
		output.Hatched = append(output.Hatched, h)
		output.Messages = append(output.Messages,
			o.report(ctx, config.ActionHatch, fmt.Sprintf("Hatching %s %s", h.Potion, h.Egg),
				"egg", h.Egg, "potion", h.Potion))
	}

	return output, nil
}

func (o *orchestrator) FeedPets(ctx context.Context, _ *FeedPetsInput) (*FeedPetsOutput, error) {
	user, err := o.client.GetUser(ctx)
	if err != nil {
		return nil, err
	}

	output := &FeedPetsOutput{}

	feedings, noFood := matchFeedings(user.Items)
	if noFood {
		output.Messages = append(output.Messages,
			o.report(ctx, config.ActionFeed, "All out of food"))
	}

	for _, f := range feedings {
		if err := o.client.Feed(ctx, f.Pet, f.Food, f.Amount); err != nil {
			return output, err
		}
		output.Fed = append(output.Fed, f)

		food := f.Food
		if f.Amount > 1 {
			food = strconv.Itoa(f.Amount) + " " + food
		}
		output.Messages = append(output.Messages,
			o.report(ctx, config.ActionFeed, fmt.Sprintf("Feeding %s to %s", food, f.Pet),
				"pet", f.Pet, "food", f.Food, "amount", f.Amount))
	}

	return output, nil
}

func (o *orchestrator) JoinQuest(ctx context.Context, _ *JoinQuestInput) (*JoinQuestOutput, error) {
	party, err := o.client.GetParty(ctx)
	if err != nil {
		return nil, err
	}

	quest := party.Quest
	output := &JoinQuestOutput{QuestKey: quest.Key}

	var msg string
	switch {
	case quest.Key == "":
		msg = "No current quest"
	case quest.Active:
		msg = "Quest has already started"
	case quest.HasJoined(o.userID):
		msg = "You have already joined the quest"
	}
	if msg != "" {
		output.Messages = append(output.Messages,
			o.report(ctx, config.ActionJoinQuest, msg, "quest", quest.Key))
		return output, nil
	}

	if err := o.client.AcceptQuest(ctx); err != nil {
		return nil, err
	}

	output.Joined = true
	output.Messages = append(output.Messages,
		o.report(ctx, config.ActionJoinQuest, "You have joined the quest! Happy hunting", "quest", quest.Key))

	return output, nil
}

// formatNumber prints whole numbers without a fraction and others in their
// shortest form
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
