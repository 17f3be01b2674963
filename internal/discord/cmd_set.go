package discord

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/kiroku-dev/sensekibot/internal/metrics"
	"github.com/kiroku-dev/sensekibot/internal/record"
)

// SetCommand returns the set command definition and handler.
// Overwrites all three counters with absolute values.
func SetCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "set",
		Description: "プレイヤーの戦績を絶対値で設定します",
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
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "games",
				Description: "試合数",
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
		games := int(options[3].IntValue())

		if err := svc.SetRecord(commandContext(), i.ChannelID, name, win, lose, games); err != nil {
			slog.Error("Failed to set record", "error", err, "player", name)
			metrics.CommandErrors.WithLabelValues(cmd.Name).Inc()
			respondFriendlyError(s, i, err)
			return
		}

		metrics.RecordMutations.WithLabelValues(metrics.OperationSet).Inc()
		respondContent(s, i, fmt.Sprintf(MsgRecordSet, name, win, lose, games))
	}

	return cmd, handler
}
