// Package events provides a registry for organizing bot events.
// Events are organized by category (ready, guild, member, message, shard)
package events

import (
	"github.com/PancyStudios/PancyServerManager/pkg/discord"
	"github.com/PancyStudios/PancyServerManager/pkg/logger"
)

// RegisterAll registers all events with the Discord client
func RegisterAll(client *discord.ExtendedClient) {
	logger.System("📋 Registrando eventos del bot...", "Events")

	// Ready event (bot startup, presence)
	RegisterReadyEvent(client)

	// Guild events (server join/leave)
	RegisterGuildEvents(client)

	// Member events (welcome, autorole, leave log)
	RegisterMemberEvents(client)

	// Message events (mention help)
	RegisterMessageEvents(client)

	// Gateway connection
	RegisterShardEvents(client)

	logger.Success("✅ Todos los eventos registrados correctamente", "Events")
}
