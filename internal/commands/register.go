// Package commands wires every command category into the Discord client.
// Commands are organized in subdirectories by category (admin, mod, tickets, utils)
package commands

import (
	"github.com/PancyStudios/PancyServerManager/internal/commands/admin"
	"github.com/PancyStudios/PancyServerManager/internal/commands/mod"
	"github.com/PancyStudios/PancyServerManager/internal/commands/tickets"
	"github.com/PancyStudios/PancyServerManager/internal/commands/utils"
	"github.com/PancyStudios/PancyServerManager/pkg/discord"
)

// RegisterAll registers all commands with the Discord client
func RegisterAll(client *discord.ExtendedClient) {
	// /setup, /settings, /status, /serverstatus, /announce, /embed, /note, /notes
	admin.RegisterAdminCommands(client)

	// /mod kick|ban|unban|warn|warns|clearwarns|clear|slowmode
	mod.RegisterModCommands(client)

	// /ticket setup and the ticket buttons
	tickets.RegisterTicketCommands(client)

	// /utils ... and /poll
	utils.RegisterUtilsCommands(client)
}
