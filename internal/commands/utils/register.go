// Package utils provides the informational commands under /utils and /poll
package utils

import (
	"github.com/PancyStudios/PancyServerManager/pkg/discord"
)

// RegisterUtilsCommands registers /utils, its help menu, /poll and the dev
// guild /debug
func RegisterUtilsCommands(client *discord.ExtendedClient) {
	utilsGroup := client.CommandHandler.BuildCommandGroup(
		"utils",
		"🧰 Comandos de utilidad",
		createServerInfoCommand(),
		createUserInfoCommand(),
		createAvatarCommand(),
		createBotInfoCommand(),
		createPingCommand(),
		createHelpCommand(),
	)
	client.CommandHandler.AddGlobalCommand(utilsGroup)

	client.CommandHandler.RegisterCommand(createPollCommand())
	client.CommandHandler.RegisterCommand(createDebugCommand())
	client.Components.Handle("help", discord.AccessEveryone, helpSelectHandler)
}
