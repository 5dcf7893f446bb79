// Package mod provides moderation commands organized as subcommands under /mod
// Each command is in its own file for better organization
package mod

import (
	"github.com/PancyStudios/PancyServerManager/pkg/discord"
)

// RegisterModCommands registers all moderation commands as /mod subcommands
func RegisterModCommands(client *discord.ExtendedClient) {
	modGroup := client.CommandHandler.BuildCommandGroup(
		"mod",
		"🛡️ Comandos de moderación",
		createKickCommand(),
		createBanCommand(),
		createUnbanCommand(),
		createWarnCommand(),
		createWarnsCommand(),
		createClearWarnsCommand(),
		createClearCommand(),
		createSlowmodeCommand(),
	)

	client.CommandHandler.AddGlobalCommand(modGroup)
}
