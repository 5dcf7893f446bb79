package events

import (
	"fmt"

	"github.com/PancyStudios/PancyServerManager/pkg/discord"
	"github.com/PancyStudios/PancyServerManager/pkg/logger"
	"github.com/PancyStudios/PancyServerManager/pkg/metrics"
	"github.com/bwmarrin/discordgo"
)

// RegisterShardEvents tracks the gateway connection
func RegisterShardEvents(client *discord.ExtendedClient) {
	client.EventHandler.RegisterEvent(onShardConnect)
	client.EventHandler.RegisterEvent(onShardDisconnect)
	client.EventHandler.RegisterEvent(onShardResumed)
}

func onShardConnect(s *discordgo.Session, event *discordgo.Connect) {
	metrics.GatewayConnected.Set(1)
	logger.Debug(fmt.Sprintf("Shard %d conectado.", s.ShardID), "Shard")
}

func onShardDisconnect(s *discordgo.Session, event *discordgo.Disconnect) {
	metrics.GatewayConnected.Set(0)
	logger.Info(fmt.Sprintf("🔌 Shard %d desconectado.", s.ShardID), "Shard")
}

func onShardResumed(s *discordgo.Session, event *discordgo.Resumed) {
	metrics.GatewayConnected.Set(1)
	logger.Success(fmt.Sprintf("✅ Shard %d reanudado.", s.ShardID), "Shard")
}
