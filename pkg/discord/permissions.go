package discord

import (
	"errors"

	"github.com/bwmarrin/discordgo"
)

// ErrPermissionDenied is returned when the acting member lacks the access a
// command or component requires
var ErrPermissionDenied = errors.New("permission denied")

// modPermissions grants moderator access when any bit is present
const modPermissions = discordgo.PermissionAdministrator |
	discordgo.PermissionManageGuild |
	discordgo.PermissionManageMessages |
	discordgo.PermissionKickMembers |
	discordgo.PermissionBanMembers

// Actor is who triggered an interaction, as seen by the permission checks
type Actor struct {
	UserID       string
	GuildOwnerID string
	Permissions  int64
}

// IsAdmin reports whether the actor owns the guild, is a configured bot
// owner, or has the administrator permission
func IsAdmin(a Actor, ownerIDs []string) bool {
	if a.UserID == "" {
		return false
	}
	if a.UserID == a.GuildOwnerID || contains(ownerIDs, a.UserID) {
		return true
	}
	return a.Permissions&discordgo.PermissionAdministrator != 0
}

// IsMod reports whether the actor is an admin or holds any moderation
// permission
func IsMod(a Actor, ownerIDs []string) bool {
	if IsAdmin(a, ownerIDs) {
		return true
	}
	return a.Permissions&modPermissions != 0
}

// CheckAccess returns ErrPermissionDenied unless the actor meets level
func CheckAccess(level AccessLevel, a Actor, ownerIDs []string) error {
	switch level {
	case AccessAdmin:
		if !IsAdmin(a, ownerIDs) {
			return ErrPermissionDenied
		}
	case AccessMod:
		if !IsMod(a, ownerIDs) {
			return ErrPermissionDenied
		}
	}
	return nil
}

// Actor builds the permission subject of the interaction
func (ctx *CommandContext) Actor() Actor {
	a := Actor{}
	if user := ctx.User(); user != nil {
		a.UserID = user.ID
	}
	if member := ctx.Member(); member != nil {
		a.Permissions = member.Permissions
	}
	if guild := ctx.Guild(); guild != nil {
		a.GuildOwnerID = guild.OwnerID
	}
	return a
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

// MissingBotPermissions returns the bits of required the bot lacks in the
// channel of the interaction. Administrator satisfies every bit.
func MissingBotPermissions(required, granted int64) int64 {
	if required == 0 || granted&discordgo.PermissionAdministrator != 0 {
		return 0
	}
	return required &^ granted
}
