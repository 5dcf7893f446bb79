package discord

import (
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
)

func TestIsAdmin(t *testing.T) {
	owners := []string{"900"}

	tests := []struct {
		name  string
		actor Actor
		want  bool
	}{
		{"guild owner", Actor{UserID: "1", GuildOwnerID: "1"}, true},
		{"bot owner", Actor{UserID: "900", GuildOwnerID: "1"}, true},
		{"administrator", Actor{UserID: "2", GuildOwnerID: "1", Permissions: discordgo.PermissionAdministrator}, true},
		{"manage guild only", Actor{UserID: "3", GuildOwnerID: "1", Permissions: discordgo.PermissionManageGuild}, false},
		{"nobody", Actor{UserID: "4", GuildOwnerID: "1"}, false},
		{"empty user", Actor{GuildOwnerID: ""}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAdmin(tt.actor, owners); got != tt.want {
				t.Errorf("IsAdmin() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsMod(t *testing.T) {
	tests := []struct {
		name  string
		perms int64
		want  bool
	}{
		{"manage guild", discordgo.PermissionManageGuild, true},
		{"manage messages", discordgo.PermissionManageMessages, true},
		{"kick", discordgo.PermissionKickMembers, true},
		{"ban", discordgo.PermissionBanMembers, true},
		{"send messages", discordgo.PermissionSendMessages, false},
		{"none", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Actor{UserID: "5", GuildOwnerID: "1", Permissions: tt.perms}
			if got := IsMod(a, nil); got != tt.want {
				t.Errorf("IsMod() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCheckAccess(t *testing.T) {
	member := Actor{UserID: "5", GuildOwnerID: "1"}
	mod := Actor{UserID: "6", GuildOwnerID: "1", Permissions: discordgo.PermissionKickMembers}

	if err := CheckAccess(AccessEveryone, member, nil); err != nil {
		t.Errorf("CheckAccess(everyone) = %v, want nil", err)
	}
	if err := CheckAccess(AccessMod, member, nil); !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("CheckAccess(mod, member) = %v, want ErrPermissionDenied", err)
	}
	if err := CheckAccess(AccessMod, mod, nil); err != nil {
		t.Errorf("CheckAccess(mod, mod) = %v, want nil", err)
	}
	if err := CheckAccess(AccessAdmin, mod, nil); !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("CheckAccess(admin, mod) = %v, want ErrPermissionDenied", err)
	}
	if err := CheckAccess(AccessAdmin, mod, []string{"6"}); err != nil {
		t.Errorf("CheckAccess(admin, bot owner) = %v, want nil", err)
	}
}

func TestMissingBotPermissions(t *testing.T) {
	kickBan := int64(discordgo.PermissionKickMembers | discordgo.PermissionBanMembers)

	tests := []struct {
		name     string
		required int64
		granted  int64
		want     int64
	}{
		{"nothing required", 0, 0, 0},
		{"all granted", kickBan, kickBan | discordgo.PermissionSendMessages, 0},
		{"one missing", kickBan, discordgo.PermissionKickMembers, discordgo.PermissionBanMembers},
		{"administrator", kickBan, discordgo.PermissionAdministrator, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MissingBotPermissions(tt.required, tt.granted); got != tt.want {
				t.Errorf("MissingBotPermissions() = %d, want %d", got, tt.want)
			}
		})
	}
}
