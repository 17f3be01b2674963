package discord

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/kiroku-dev/sensekibot/internal/metrics"
	"github.com/kiroku-dev/sensekibot/internal/record"
)

// RecordCommand returns the record command definition and handler.
// Adds win/lose counts to a player's record in the current channel.
func RecordCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "record",
		Description: "プレイヤーの勝敗を記録します",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "name",
				Description: "プレイヤー名",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "win",
				Description: "勝ち数",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "lose",
				Description: "負け数",
				Required:    true,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, svc record.Service) {
		if !deferResponse(s, i) {
			return
		}

		options := getOptions(i)
		name := options[0].StringValue()
		win := int(options[1].IntValue())
		lose := int(options[2].IntValue())

		if err := svc.AddResult(commandContext(), i.ChannelID, name, win, lose); err != nil {
			slog.Error("Failed to add result", "error", err, "player", name)
			metrics.CommandErrors.WithLabelValues(cmd.Name).Inc()
			respondFriendlyError(s, i, err)
			return
		}

		metrics.RecordMutations.WithLabelValues(metrics.OperationIncrement).Inc()
		respondContent(s, i, fmt.Sprintf(MsgRecordAdded, name, win, lose))
	}

	return cmd, handler
}
