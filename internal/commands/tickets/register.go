package tickets

import (
	"github.com/PancyStudios/PancyServerManager/pkg/discord"
)

// RegisterTicketCommands registers /ticket and its buttons
func RegisterTicketCommands(client *discord.ExtendedClient) {
	ticketGroup := client.CommandHandler.BuildCommandGroup(
		"ticket",
		"🎫 Sistema de tickets",
		createSetupCommand(),
	)
	client.CommandHandler.AddGlobalCommand(ticketGroup)

	client.Components.Handle(CreateButtonID, discord.AccessEveryone, createHandler)
	client.Components.Handle(CloseButtonID, discord.AccessEveryone, closeHandler)
}
