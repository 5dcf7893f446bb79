package utils

import (
	"fmt"
	"runtime"

	"github.com/PancyStudios/PancyServerManager/internal/commands/common"
	"github.com/PancyStudios/PancyServerManager/pkg/config"
	"github.com/PancyStudios/PancyServerManager/pkg/database"
	"github.com/PancyStudios/PancyServerManager/pkg/discord"
	"github.com/PancyStudios/PancyServerManager/pkg/mqtt"
)

// createDebugCommand creates /debug, registered only in the dev guild
func createDebugCommand() *discord.Command {
	return discord.NewCommand(
		"debug",
		"🔧 Diagnóstico interno",
		"dev",
		debugHandler,
	).AsDev()
}

func onOff(ok bool) string {
	if ok {
		return "🟢"
	}
	return "🔴"
}

// debugHandler reports store, broker and router state to bot owners
func debugHandler(ctx *discord.CommandContext) error {
	if !config.Get().IsOwner(ctx.User().ID) {
		return ctx.ReplyEphemeral("❌ Solo para los propietarios del bot.")
	}

	backend, ok, records := "-", false, 0
	if store := database.Get(); store != nil {
		backend, ok = store.Status()
		records = len(store.LoadAll())
	}

	e := common.Embed(ctx.GuildID(), "🔧  Diagnóstico", "")
	discord.AddField(e, "Almacenamiento", fmt.Sprintf("%s `%s` (%d servidores)", onOff(ok), backend, records), false)
	discord.AddField(e, "MQTT", onOff(mqtt.Get().IsConnected()), true)
	discord.AddField(e, "Gateway", onOff(ctx.Client.IsReady()), true)
	discord.AddField(e, "Goroutines", fmt.Sprintf("```%d```", runtime.NumGoroutine()), true)
	discord.AddField(e, "Router", fmt.Sprintf("%d comandos │ %d componentes │ %d modales",
		ctx.Client.Commands.Size(), ctx.Client.Components.Size(), ctx.Client.Modals.Size()), false)
	return ctx.ReplyEphemeralEmbed(e)
}
