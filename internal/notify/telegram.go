package notify

import (
	"fmt"
	"time"

	"go-autoapply/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramReporter mirrors the digest to a Telegram chat, one message
// per match. Optional; only wired up when a bot token is configured.
type TelegramReporter struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramReporter(token string, chatID int64) (*TelegramReporter, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}

	return &TelegramReporter{
		bot:    bot,
		chatID: chatID,
	}, nil
}

func (t *TelegramReporter) SendMessage(text string) error {
	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = "HTML" //use HTML for bold/italic
	_, err := t.bot.Send(msg)
	return err
}

func (t *TelegramReporter) SendMatch(m models.ScoredMatch) error {
	job := m.Posting
	location := job.Location
	if location == "" {
		location = "N/A"
	}
	text := fmt.Sprintf(
		"🔥 <b>%s</b>\n"+
			"🏢 %s\n"+
			"📍 %s\n"+
			"🤖 Score: %d\n"+
			"🔗 <a href=\"%s\">Apply Now</a>",
		job.Title,
		job.Company,
		location,
		m.Score,
		job.URL,
	)
	return t.SendMessage(text)
}

func (t *TelegramReporter) Name() string { return "telegram" }

// Deliver sends one message per match. Stops at the first failure so a
// dead bot token doesn't spam the log once per job.
func (t *TelegramReporter) Deliver(matches []models.ScoredMatch) error {
	for _, m := range matches {
		if err := t.SendMatch(m); err != nil {
			return err
		}
		//1 second delay to avoid 429
		time.Sleep(1 * time.Second)
	}
	return nil
}

func (t *TelegramReporter) SendError(errReq error) error {
	text := fmt.Sprintf("⚠️ <b>Pipeline Error</b>:\n%v", errReq)
	return t.SendMessage(text)
}
