package discord

// Reply message constants for Discord responses. The bot answers in
// Japanese; these strings are part of the command contract.
const (
	// /record
	MsgRecordAdded = "✅ %s に勝ち: %d / 負け: %d を加算しました"

	// /play
	MsgGamePlayed = "🎮 %s の試合数を +1 しました"

	// /set
	MsgRecordSet = "📝 %s の戦績を 勝ち: %d / 負け: %d / 試合数: %d に設定しました"

	// /delete
	MsgRecordDeleted  = "🗑️ %s の戦績を削除しました"
	MsgRecordNotFound = "❓ %s の戦績が見つかりません"

	// /stats
	MsgStatsTitle = "📊 戦績一覧"
	MsgStatsEmpty = "まだ戦績が登録されていません"
	MsgStatsLine  = "**%s** — 勝ち: %d / 負け: %d / 試合数: %d / 勝率: %.1f%%"

	// Authorization and errors
	MsgAdminOnly    = "⛔ このコマンドは管理者のみ使用できます"
	MsgInvalidInput = "⚠️ 入力が正しくありません"
	MsgGenericError = "❌ エラーが発生しました"
)
