package discord

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/kiroku-dev/sensekibot/internal/metrics"
	"github.com/kiroku-dev/sensekibot/internal/record"
)

// PlayCommand returns the play command definition and handler (admin only).
// Bumps the game count by one for each named player.
func PlayCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "play",
		Description: "[管理者] 参加プレイヤー全員の試合数を +1 します",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "names",
				Description: "プレイヤー名（スペース区切り）",
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
		names := strings.Fields(options[0].StringValue())

		if err := svc.AddGamePlayed(commandContext(), i.ChannelID, names); err != nil {
			slog.Error("Failed to add game played", "error", err, "names", names)
			metrics.CommandErrors.WithLabelValues(cmd.Name).Inc()
			respondFriendlyError(s, i, err)
			return
		}

		metrics.RecordMutations.WithLabelValues(metrics.OperationPlay).Inc()
		respondContent(s, i, fmt.Sprintf(MsgGamePlayed, strings.Join(names, ", ")))
	})

	return cmd, handler
}
