package main

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/habitica-actions/internal/config"
)

// actionCmd builds a subcommand that runs exactly one named action
func actionCmd(use, short, action string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeActions(cmd, []string{action})
		},
	}
}

var (
	armoireCmd = actionCmd("armoire",
		"Buy from the enchanted armoire when gold is above the threshold", config.ActionArmoire)
	earthquakeCmd = actionCmd("earthquake",
		"Cast earthquake when mana is above its threshold", config.ActionEarthquake)
	toolsOfTradeCmd = actionCmd("tools-of-trade",
		"Cast tools of the trade when mana is above its threshold", config.ActionToolsOfTrade)
	hatchCmd = actionCmd("hatch",
		"Hatch every egg that has a potion for a pet not owned yet", config.ActionHatch)
	feedCmd = actionCmd("feed",
		"Feed pets their preferred food", config.ActionFeed)
	joinQuestCmd = actionCmd("join-quest",
		"Accept the pending party quest", config.ActionJoinQuest)
	healthPotionCmd = actionCmd("health-potion",
		"Buy a health potion when health is at or below the threshold", config.ActionHealthPotion)
)

var castCmd = &cobra.Command{
	Use:   "cast <spell-id>",
	Short: "Cast a configured spell when mana is above its threshold",
	Long: `Cast any spell listed under "spells" in the config file, e.g.

  habitica-actions cast earth`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return executeActions(cmd, []string{config.CastActionPrefix + args[0]})
	},
}

var runCmd = &cobra.Command{
	Use:   "run [actions...]",
	Short: "Run several actions one after another",
	Long: `Run the given actions in order. Without arguments the "actions" list from the
config is used. A failing action does not stop the ones after it, but the
command exits non-zero.

Action names: join-quest, health-potion, armoire, earthquake, tools-of-trade,
hatch, feed and cast:<spell-id>.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return executeActions(cmd, args)
	},
}
