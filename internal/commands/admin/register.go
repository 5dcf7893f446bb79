package admin

import (
	"github.com/PancyStudios/PancyServerManager/pkg/discord"
)

// RegisterAdminCommands registers the management commands and the panel
// components they use
func RegisterAdminCommands(client *discord.ExtendedClient) {
	for _, cmd := range []*discord.Command{
		createSetupCommand(),
		createStatusCommand(),
		createServerStatusCommand(),
		createAnnounceCommand(),
		createEmbedCommand(),
		createNoteCommand(),
		createNotesCommand(),
	} {
		client.CommandHandler.RegisterCommand(cmd)
	}

	settingsGroup := client.CommandHandler.BuildCommandGroup(
		"settings",
		"⚙️ Configuración del bot",
		createSettingsCommands()...,
	)
	client.CommandHandler.AddGlobalCommand(settingsGroup)

	client.Components.Handle("setup", discord.AccessAdmin, setupButtonHandler)
	client.Components.Handle("status", discord.AccessAdmin, statusSelectHandler)

	client.Modals.Handle(welcomeModalID, discord.AccessAdmin, welcomeModalHandler)
	client.Modals.Handle(colorModalID, discord.AccessAdmin, colorModalHandler)
	client.Modals.Handle("status", discord.AccessAdmin, statusModalHandler)
}
