// Command sync-commands reconciles the slash commands Discord has registered
// with the ones the bot defines.
//
//	sync-commands [-list | -clean] [-guild <id>]
//
// With no action flag it syncs. -guild targets one server instead of the
// global scope; guild syncs also carry the dev commands.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/PancyStudios/PancyServerManager/internal/commands"
	"github.com/PancyStudios/PancyServerManager/pkg/config"
	"github.com/PancyStudios/PancyServerManager/pkg/discord"
	"github.com/PancyStudios/PancyServerManager/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

const scope = "SyncCommands"

type action func(h *discord.CommandHandler, guildID string) error

var actions = map[string]action{
	"list":  listCommands,
	"clean": cleanCommands,
	"sync":  syncCommands,
}

// pickAction resolves the action flags; sync wins when none is given
func pickAction(list, clean bool) string {
	switch {
	case list:
		return "list"
	case clean:
		return "clean"
	default:
		return "sync"
	}
}

func target(guildID string) string {
	if guildID == "" {
		return "globales"
	}
	return "del servidor " + guildID
}

func main() {
	list := flag.Bool("list", false, "Lista los comandos registrados")
	clean := flag.Bool("clean", false, "Elimina todos los comandos registrados")
	flag.Bool("sync", true, "Sincroniza los comandos (por defecto)")
	guildID := flag.String("guild", "", "Servidor destino; vacío para el ámbito global")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuración inválida: %v\n", err)
		os.Exit(1)
	}

	log := logger.Init(cfg.ErrorWebhook, cfg.LogsWebhook)
	defer log.Close()

	client, err := discord.NewClient(cfg.BotToken)
	if err != nil {
		logger.Critical(fmt.Sprintf("No se pudo crear el cliente: %v", err), scope)
		os.Exit(1)
	}
	if err := client.Session.Open(); err != nil {
		logger.Critical(fmt.Sprintf("No se pudo conectar a Discord: %v", err), scope)
		os.Exit(1)
	}
	defer client.Session.Close()

	commands.RegisterAll(client)

	name := pickAction(*list, *clean)
	logger.System(fmt.Sprintf("Acción %q sobre comandos %s", name, target(*guildID)), scope)
	if err := actions[name](client.CommandHandler, *guildID); err != nil {
		logger.Error(fmt.Sprintf("La acción %q falló: %v", name, err), scope)
		os.Exit(1)
	}
	logger.Success("✅ Listo", scope)
}

func listCommands(h *discord.CommandHandler, guildID string) error {
	var (
		cmds []*discordgo.ApplicationCommand
		err  error
	)
	if guildID == "" {
		cmds, err = h.ListGlobalCommands()
	} else {
		cmds, err = h.ListGuildCommands(guildID)
	}
	if err != nil {
		return err
	}

	logger.Info(fmt.Sprintf("📋 %d comandos registrados", len(cmds)), scope)
	for _, cmd := range cmds {
		logger.Info(fmt.Sprintf("  /%s (%s): %s", cmd.Name, cmd.ID, cmd.Description), scope)
	}
	return nil
}

func cleanCommands(h *discord.CommandHandler, guildID string) error {
	if guildID == "" {
		return h.UnregisterCommands()
	}
	return h.UnregisterGuildCommands(guildID)
}

func syncCommands(h *discord.CommandHandler, guildID string) error {
	if guildID == "" {
		return h.SyncCommands()
	}
	cmds := make([]*discordgo.ApplicationCommand, 0, len(h.GlobalCommands())+len(h.DevCommands()))
	cmds = append(cmds, h.GlobalCommands()...)
	cmds = append(cmds, h.DevCommands()...)
	logger.Info(fmt.Sprintf("🔄 Registrando %d comandos", len(cmds)), scope)
	return h.SyncGuildCommands(guildID, cmds)
}
