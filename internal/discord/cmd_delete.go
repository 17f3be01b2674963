package discord

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/kiroku-dev/sensekibot/internal/metrics"
	"github.com/kiroku-dev/sensekibot/internal/record"
)

// DeleteCommand returns the delete command definition and handler (admin only).
// Removes a player's record from the current channel.
func DeleteCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "delete",
		Description: "[管理者] プレイヤーの戦績を削除します",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "name",
				Description: "プレイヤー名",
				Required:    true,
			},
		},
		DefaultMemberPermissions: adminPermission(),
	}

	handler := requireAdmin(func(s *discordgo.Session, i *discordgo.InteractionCreate, svc record.Service) {
		if !deferResponse(s, i) {
			return
		}

		options := getOptions(i)
		name := options[0].StringValue()

		removed, err := svc.DeleteRecord(commandContext(), i.ChannelID, name)
		if err != nil {
			slog.Error("Failed to delete record", "error", err, "player", name)
			metrics.CommandErrors.WithLabelValues(cmd.Name).Inc()
			respondFriendlyError(s, i, err)
			return
		}

		if !removed {
			respondContent(s, i, fmt.Sprintf(MsgRecordNotFound, name))
			return
		}

		metrics.RecordMutations.WithLabelValues(metrics.OperationDelete).Inc()
		respondContent(s, i, fmt.Sprintf(MsgRecordDeleted, name))
	})

	return cmd, handler
}
