// Package tickets opens support tickets as private channels from a panel
// button and closes them from a button inside the ticket.
package tickets

import (
	"github.com/PancyStudios/PancyServerManager/pkg/guild"
	"github.com/bwmarrin/discordgo"
)

const (
	requesterAllow = discordgo.PermissionViewChannel |
		discordgo.PermissionSendMessages |
		discordgo.PermissionAttachFiles |
		discordgo.PermissionReadMessageHistory

	botAllow = discordgo.PermissionViewChannel |
		discordgo.PermissionSendMessages |
		discordgo.PermissionManageChannels
)

// channelProvisioner creates ticket channels through the Discord API
type channelProvisioner struct {
	session *discordgo.Session
}

// NewProvisioner returns the guild.Provisioner backed by s
func NewProvisioner(s *discordgo.Session) guild.Provisioner {
	return &channelProvisioner{session: s}
}

// overwrites hides the channel from @everyone and opens it to the requester
// and the bot
func overwrites(guildID, requesterID, botID string) []*discordgo.PermissionOverwrite {
	list := []*discordgo.PermissionOverwrite{
		{ID: guildID, Type: discordgo.PermissionOverwriteTypeRole, Deny: discordgo.PermissionViewChannel},
		{ID: requesterID, Type: discordgo.PermissionOverwriteTypeMember, Allow: requesterAllow},
	}
	if botID != "" {
		list = append(list, &discordgo.PermissionOverwrite{ID: botID, Type: discordgo.PermissionOverwriteTypeMember, Allow: botAllow})
	}
	return list
}

func (p *channelProvisioner) CreateTicketChannel(guildID string, t *guild.Ticket, categoryID string) (string, error) {
	botID := ""
	if p.session.State != nil && p.session.State.User != nil {
		botID = p.session.State.User.ID
	}

	ch, err := p.session.GuildChannelCreateComplex(guildID, discordgo.GuildChannelCreateData{
		Name:                 t.Name(),
		Type:                 discordgo.ChannelTypeGuildText,
		Topic:                t.Topic(),
		ParentID:             categoryID,
		PermissionOverwrites: overwrites(guildID, t.RequesterID, botID),
	})
	if err != nil {
		return "", err
	}
	return ch.ID, nil
}

func (p *channelProvisioner) DeleteTicketChannel(channelID string) error {
	_, err := p.session.ChannelDelete(channelID)
	return err
}
